package hub

import "classroom-hub/biz/application/dto/basic"

type AssignmentInfo struct {
	Id          string      `protobuf:"bytes,1,opt,name=id,proto3" form:"id" json:"id" query:"id"`
	Title       string      `protobuf:"bytes,2,opt,name=title,proto3" form:"title" json:"title" query:"title"`
	Description string      `protobuf:"bytes,3,opt,name=description,proto3" form:"description" json:"description" query:"description"`
	TeacherId   string      `protobuf:"bytes,4,opt,name=teacherId,proto3" form:"teacherId" json:"teacherId" query:"teacherId"`
	TeacherName string      `protobuf:"bytes,5,opt,name=teacherName,proto3" form:"teacherName" json:"teacherName" query:"teacherName"`
	Files       []*FileInfo `protobuf:"bytes,6,rep,name=files,proto3" form:"files" json:"files" query:"files"`
	DueDate     int64       `protobuf:"varint,7,opt,name=dueDate,proto3" form:"dueDate" json:"dueDate" query:"dueDate"`
	CreateTime  int64       `protobuf:"varint,8,opt,name=createTime,proto3" form:"createTime" json:"createTime" query:"createTime"`

	// 教师端统计
	AssignedCount  int64 `protobuf:"varint,9,opt,name=assignedCount,proto3" form:"assignedCount" json:"assignedCount" query:"assignedCount"`
	SubmittedCount int64 `protobuf:"varint,10,opt,name=submittedCount,proto3" form:"submittedCount" json:"submittedCount" query:"submittedCount"`
	GradedCount    int64 `protobuf:"varint,11,opt,name=gradedCount,proto3" form:"gradedCount" json:"gradedCount" query:"gradedCount"`

	// 学生端个人状态
	MyStatus string `protobuf:"bytes,12,opt,name=myStatus,proto3" form:"myStatus" json:"myStatus" query:"myStatus"`
	MyGrade  *int64 `protobuf:"varint,13,opt,name=myGrade,proto3,oneof" form:"myGrade" json:"myGrade" query:"myGrade"`
}

type CreateAssignmentReq struct {
	Title       string      `protobuf:"bytes,1,opt,name=title,proto3" form:"title" json:"title" query:"title" vd:"len($)>0"`
	Description string      `protobuf:"bytes,2,opt,name=description,proto3" form:"description" json:"description" query:"description"`
	Files       []*FileInfo `protobuf:"bytes,3,rep,name=files,proto3" form:"files" json:"files" query:"files"`
	DueDate     int64       `protobuf:"varint,4,opt,name=dueDate,proto3" form:"dueDate" json:"dueDate" query:"dueDate"`
}

type CreateAssignmentResp struct {
	AssignmentId string `protobuf:"bytes,1,opt,name=assignmentId,proto3" form:"assignmentId" json:"assignmentId" query:"assignmentId"`
	ShareUrl     string `protobuf:"bytes,2,opt,name=shareUrl,proto3" form:"shareUrl" json:"shareUrl" query:"shareUrl"`
}

type UpdateAssignmentReq struct {
	AssignmentId string      `protobuf:"bytes,1,opt,name=assignmentId,proto3" form:"assignmentId" json:"assignmentId" query:"assignmentId" vd:"len($)>0"`
	Title        string      `protobuf:"bytes,2,opt,name=title,proto3" form:"title" json:"title" query:"title" vd:"len($)>0"`
	Description  string      `protobuf:"bytes,3,opt,name=description,proto3" form:"description" json:"description" query:"description"`
	Files        []*FileInfo `protobuf:"bytes,4,rep,name=files,proto3" form:"files" json:"files" query:"files"`
	DueDate      int64       `protobuf:"varint,5,opt,name=dueDate,proto3" form:"dueDate" json:"dueDate" query:"dueDate"`
}

type DeleteAssignmentReq struct {
	AssignmentId string `protobuf:"bytes,1,opt,name=assignmentId,proto3" form:"assignmentId" json:"assignmentId" query:"assignmentId" vd:"len($)>0"`
}

type GetAssignmentReq struct {
	AssignmentId string `protobuf:"bytes,1,opt,name=assignmentId,proto3" form:"assignmentId" json:"assignmentId" query:"assignmentId" vd:"len($)>0"`
}

type GetAssignmentResp struct {
	Assignment *AssignmentInfo `protobuf:"bytes,1,opt,name=assignment,proto3" form:"assignment" json:"assignment" query:"assignment"`
}

type ListAssignmentsReq struct {
	PaginationOptions *basic.PaginationOptions `protobuf:"bytes,1,opt,name=paginationOptions,proto3" form:"paginationOptions" json:"paginationOptions" query:"paginationOptions"`
}

type ListAssignmentsResp struct {
	Assignments []*AssignmentInfo `protobuf:"bytes,1,rep,name=assignments,proto3" form:"assignments" json:"assignments" query:"assignments"`
	Total       int64             `protobuf:"varint,2,opt,name=total,proto3" form:"total" json:"total" query:"total"`
}

type AssignStudentsReq struct {
	AssignmentId string   `protobuf:"bytes,1,opt,name=assignmentId,proto3" form:"assignmentId" json:"assignmentId" query:"assignmentId" vd:"len($)>0"`
	StudentIds   []string `protobuf:"bytes,2,rep,name=studentIds,proto3" form:"studentIds" json:"studentIds" query:"studentIds" vd:"len($)>0"`
}

type AssignStudentsResp struct {
	Assigned int64 `protobuf:"varint,1,opt,name=assigned,proto3" form:"assigned" json:"assigned" query:"assigned"`
	Skipped  int64 `protobuf:"varint,2,opt,name=skipped,proto3" form:"skipped" json:"skipped" query:"skipped"`
}

type UnassignStudentReq struct {
	AssignmentId string `protobuf:"bytes,1,opt,name=assignmentId,proto3" form:"assignmentId" json:"assignmentId" query:"assignmentId" vd:"len($)>0"`
	StudentId    string `protobuf:"bytes,2,opt,name=studentId,proto3" form:"studentId" json:"studentId" query:"studentId" vd:"len($)>0"`
}
