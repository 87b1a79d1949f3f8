package hub

type GetUserDeleteStatsReq struct {
	UserId string `protobuf:"bytes,1,opt,name=userId,proto3" form:"userId" json:"userId" query:"userId"`
}

type GetUserDeleteStatsResp struct {
	Assignments        int64     `protobuf:"varint,1,opt,name=assignments,proto3" form:"assignments" json:"assignments" query:"assignments"`
	AssignmentStudents int64     `protobuf:"varint,2,opt,name=assignmentStudents,proto3" form:"assignmentStudents" json:"assignmentStudents" query:"assignmentStudents"`
	Submissions        int64     `protobuf:"varint,3,opt,name=submissions,proto3" form:"submissions" json:"submissions" query:"submissions"`
	Comments           int64     `protobuf:"varint,4,opt,name=comments,proto3" form:"comments" json:"comments" query:"comments"`
	UserInfo           *UserInfo `protobuf:"bytes,5,opt,name=userInfo,proto3" form:"userInfo" json:"userInfo" query:"userInfo"`
}

type DeletedData struct {
	Assignments        int64 `protobuf:"varint,1,opt,name=assignments,proto3" form:"assignments" json:"assignments" query:"assignments"`
	AssignmentStudents int64 `protobuf:"varint,2,opt,name=assignmentStudents,proto3" form:"assignmentStudents" json:"assignmentStudents" query:"assignmentStudents"`
	Submissions        int64 `protobuf:"varint,3,opt,name=submissions,proto3" form:"submissions" json:"submissions" query:"submissions"`
	Comments           int64 `protobuf:"varint,4,opt,name=comments,proto3" form:"comments" json:"comments" query:"comments"`
	AuthIdentity       bool  `protobuf:"varint,5,opt,name=authIdentity,proto3" form:"authIdentity" json:"authIdentity" query:"authIdentity"`
}

type DeleteUserCompletelyReq struct {
	UserId string `protobuf:"bytes,1,opt,name=userId,proto3" form:"userId" json:"userId" query:"userId"`
}

type DeleteUserCompletelyResp struct {
	Success     bool         `protobuf:"varint,1,opt,name=success,proto3" form:"success" json:"success" query:"success"`
	Message     string       `protobuf:"bytes,2,opt,name=message,proto3" form:"message" json:"message" query:"message"`
	DeletedData *DeletedData `protobuf:"bytes,3,opt,name=deletedData,proto3" form:"deletedData" json:"deletedData" query:"deletedData"`
}
