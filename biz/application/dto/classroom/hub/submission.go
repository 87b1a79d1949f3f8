package hub

import "classroom-hub/biz/application/dto/basic"

type SubmissionInfo struct {
	Id              string      `protobuf:"bytes,1,opt,name=id,proto3" form:"id" json:"id" query:"id"`
	AssignmentId    string      `protobuf:"bytes,2,opt,name=assignmentId,proto3" form:"assignmentId" json:"assignmentId" query:"assignmentId"`
	AssignmentTitle string      `protobuf:"bytes,3,opt,name=assignmentTitle,proto3" form:"assignmentTitle" json:"assignmentTitle" query:"assignmentTitle"`
	StudentId       string      `protobuf:"bytes,4,opt,name=studentId,proto3" form:"studentId" json:"studentId" query:"studentId"`
	StudentName     string      `protobuf:"bytes,5,opt,name=studentName,proto3" form:"studentName" json:"studentName" query:"studentName"`
	Files           []*FileInfo `protobuf:"bytes,6,rep,name=files,proto3" form:"files" json:"files" query:"files"`
	Status          string      `protobuf:"bytes,7,opt,name=status,proto3" form:"status" json:"status" query:"status"`
	Grade           *int64      `protobuf:"varint,8,opt,name=grade,proto3,oneof" form:"grade" json:"grade" query:"grade"`
	Feedback        *string     `protobuf:"bytes,9,opt,name=feedback,proto3,oneof" form:"feedback" json:"feedback" query:"feedback"`
	SubmitTime      int64       `protobuf:"varint,10,opt,name=submitTime,proto3" form:"submitTime" json:"submitTime" query:"submitTime"`
	GradeTime       *int64      `protobuf:"varint,11,opt,name=gradeTime,proto3,oneof" form:"gradeTime" json:"gradeTime" query:"gradeTime"`
}

type SubmitAssignmentReq struct {
	AssignmentId string      `protobuf:"bytes,1,opt,name=assignmentId,proto3" form:"assignmentId" json:"assignmentId" query:"assignmentId" vd:"len($)>0"`
	Files        []*FileInfo `protobuf:"bytes,2,rep,name=files,proto3" form:"files" json:"files" query:"files" vd:"len($)>0"`
}

type SubmitAssignmentResp struct {
	SubmissionId string `protobuf:"bytes,1,opt,name=submissionId,proto3" form:"submissionId" json:"submissionId" query:"submissionId"`
}

type GradeSubmissionReq struct {
	SubmissionId string `protobuf:"bytes,1,opt,name=submissionId,proto3" form:"submissionId" json:"submissionId" query:"submissionId" vd:"len($)>0"`
	Grade        int64  `protobuf:"varint,2,opt,name=grade,proto3" form:"grade" json:"grade" query:"grade"`
	Feedback     string `protobuf:"bytes,3,opt,name=feedback,proto3" form:"feedback" json:"feedback" query:"feedback"`
}

type GetSubmissionReq struct {
	SubmissionId string `protobuf:"bytes,1,opt,name=submissionId,proto3" form:"submissionId" json:"submissionId" query:"submissionId" vd:"len($)>0"`
}

type GetSubmissionResp struct {
	Submission *SubmissionInfo `protobuf:"bytes,1,opt,name=submission,proto3" form:"submission" json:"submission" query:"submission"`
}

type ListSubmissionsReq struct {
	AssignmentId      string                   `protobuf:"bytes,1,opt,name=assignmentId,proto3" form:"assignmentId" json:"assignmentId" query:"assignmentId" vd:"len($)>0"`
	PaginationOptions *basic.PaginationOptions `protobuf:"bytes,2,opt,name=paginationOptions,proto3" form:"paginationOptions" json:"paginationOptions" query:"paginationOptions"`
}

type ListSubmissionsResp struct {
	Submissions []*SubmissionInfo `protobuf:"bytes,1,rep,name=submissions,proto3" form:"submissions" json:"submissions" query:"submissions"`
	Total       int64             `protobuf:"varint,2,opt,name=total,proto3" form:"total" json:"total" query:"total"`
}

type CommentInfo struct {
	Id           string `protobuf:"bytes,1,opt,name=id,proto3" form:"id" json:"id" query:"id"`
	SubmissionId string `protobuf:"bytes,2,opt,name=submissionId,proto3" form:"submissionId" json:"submissionId" query:"submissionId"`
	UserId       string `protobuf:"bytes,3,opt,name=userId,proto3" form:"userId" json:"userId" query:"userId"`
	UserName     string `protobuf:"bytes,4,opt,name=userName,proto3" form:"userName" json:"userName" query:"userName"`
	Content      string `protobuf:"bytes,5,opt,name=content,proto3" form:"content" json:"content" query:"content"`
	CreateTime   int64  `protobuf:"varint,6,opt,name=createTime,proto3" form:"createTime" json:"createTime" query:"createTime"`
}

type AddCommentReq struct {
	SubmissionId string `protobuf:"bytes,1,opt,name=submissionId,proto3" form:"submissionId" json:"submissionId" query:"submissionId" vd:"len($)>0"`
	Content      string `protobuf:"bytes,2,opt,name=content,proto3" form:"content" json:"content" query:"content" vd:"len($)>0"`
}

type AddCommentResp struct {
	CommentId string `protobuf:"bytes,1,opt,name=commentId,proto3" form:"commentId" json:"commentId" query:"commentId"`
}

type ListCommentsReq struct {
	SubmissionId string `protobuf:"bytes,1,opt,name=submissionId,proto3" form:"submissionId" json:"submissionId" query:"submissionId" vd:"len($)>0"`
}

type ListCommentsResp struct {
	Comments []*CommentInfo `protobuf:"bytes,1,rep,name=comments,proto3" form:"comments" json:"comments" query:"comments"`
}
