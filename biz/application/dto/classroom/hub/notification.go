package hub

type NotificationInfo struct {
	CommentId    string `protobuf:"bytes,1,opt,name=commentId,proto3" form:"commentId" json:"commentId" query:"commentId"`
	SubmissionId string `protobuf:"bytes,2,opt,name=submissionId,proto3" form:"submissionId" json:"submissionId" query:"submissionId"`
	AuthorId     string `protobuf:"bytes,3,opt,name=authorId,proto3" form:"authorId" json:"authorId" query:"authorId"`
	AuthorName   string `protobuf:"bytes,4,opt,name=authorName,proto3" form:"authorName" json:"authorName" query:"authorName"`
	Content      string `protobuf:"bytes,5,opt,name=content,proto3" form:"content" json:"content" query:"content"`
	CreateTime   int64  `protobuf:"varint,6,opt,name=createTime,proto3" form:"createTime" json:"createTime" query:"createTime"`
	Unread       bool   `protobuf:"varint,7,opt,name=unread,proto3" form:"unread" json:"unread" query:"unread"`
}

type GetNotificationsReq struct {
}

type GetNotificationsResp struct {
	Notifications []*NotificationInfo `protobuf:"bytes,1,rep,name=notifications,proto3" form:"notifications" json:"notifications" query:"notifications"`
	UnreadCount   int64               `protobuf:"varint,2,opt,name=unreadCount,proto3" form:"unreadCount" json:"unreadCount" query:"unreadCount"`
}

type MarkAllReadReq struct {
}

type SetFocusSubmissionReq struct {
	SubmissionId string `protobuf:"bytes,1,opt,name=submissionId,proto3" form:"submissionId" json:"submissionId" query:"submissionId" vd:"len($)>0"`
}

type TakeFocusSubmissionReq struct {
}

type TakeFocusSubmissionResp struct {
	SubmissionId string `protobuf:"bytes,1,opt,name=submissionId,proto3" form:"submissionId" json:"submissionId" query:"submissionId"`
}
