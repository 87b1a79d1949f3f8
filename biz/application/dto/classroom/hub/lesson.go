package hub

import "classroom-hub/biz/application/dto/basic"

type LessonInfo struct {
	Id          string  `protobuf:"bytes,1,opt,name=id,proto3" form:"id" json:"id" query:"id"`
	TeacherId   string  `protobuf:"bytes,2,opt,name=teacherId,proto3" form:"teacherId" json:"teacherId" query:"teacherId"`
	TeacherName string  `protobuf:"bytes,3,opt,name=teacherName,proto3" form:"teacherName" json:"teacherName" query:"teacherName"`
	Title       string  `protobuf:"bytes,4,opt,name=title,proto3" form:"title" json:"title" query:"title"`
	Description string  `protobuf:"bytes,5,opt,name=description,proto3" form:"description" json:"description" query:"description"`
	LessonType  string  `protobuf:"bytes,6,opt,name=lessonType,proto3" form:"lessonType" json:"lessonType" query:"lessonType"`
	Content     *string `protobuf:"bytes,7,opt,name=content,proto3,oneof" form:"content" json:"content" query:"content"`
	FileUrl     *string `protobuf:"bytes,8,opt,name=fileUrl,proto3,oneof" form:"fileUrl" json:"fileUrl" query:"fileUrl"`
	FileName    *string `protobuf:"bytes,9,opt,name=fileName,proto3,oneof" form:"fileName" json:"fileName" query:"fileName"`
	YoutubeUrl  *string `protobuf:"bytes,10,opt,name=youtubeUrl,proto3,oneof" form:"youtubeUrl" json:"youtubeUrl" query:"youtubeUrl"`
	IsPublished bool    `protobuf:"varint,11,opt,name=isPublished,proto3" form:"isPublished" json:"isPublished" query:"isPublished"`
	CreateTime  int64   `protobuf:"varint,12,opt,name=createTime,proto3" form:"createTime" json:"createTime" query:"createTime"`
	UpdateTime  int64   `protobuf:"varint,13,opt,name=updateTime,proto3" form:"updateTime" json:"updateTime" query:"updateTime"`
}

type CreateLessonReq struct {
	Title       string  `protobuf:"bytes,1,opt,name=title,proto3" form:"title" json:"title" query:"title" vd:"len($)>0"`
	Description string  `protobuf:"bytes,2,opt,name=description,proto3" form:"description" json:"description" query:"description"`
	LessonType  string  `protobuf:"bytes,3,opt,name=lessonType,proto3" form:"lessonType" json:"lessonType" query:"lessonType" vd:"$=='text'||$=='file'||$=='video'"`
	Content     *string `protobuf:"bytes,4,opt,name=content,proto3,oneof" form:"content" json:"content" query:"content"`
	FileUrl     *string `protobuf:"bytes,5,opt,name=fileUrl,proto3,oneof" form:"fileUrl" json:"fileUrl" query:"fileUrl"`
	FileName    *string `protobuf:"bytes,6,opt,name=fileName,proto3,oneof" form:"fileName" json:"fileName" query:"fileName"`
	YoutubeUrl  *string `protobuf:"bytes,7,opt,name=youtubeUrl,proto3,oneof" form:"youtubeUrl" json:"youtubeUrl" query:"youtubeUrl"`
}

type CreateLessonResp struct {
	LessonId string `protobuf:"bytes,1,opt,name=lessonId,proto3" form:"lessonId" json:"lessonId" query:"lessonId"`
}

type UpdateLessonReq struct {
	LessonId    string  `protobuf:"bytes,1,opt,name=lessonId,proto3" form:"lessonId" json:"lessonId" query:"lessonId" vd:"len($)>0"`
	Title       string  `protobuf:"bytes,2,opt,name=title,proto3" form:"title" json:"title" query:"title" vd:"len($)>0"`
	Description string  `protobuf:"bytes,3,opt,name=description,proto3" form:"description" json:"description" query:"description"`
	LessonType  string  `protobuf:"bytes,4,opt,name=lessonType,proto3" form:"lessonType" json:"lessonType" query:"lessonType" vd:"$=='text'||$=='file'||$=='video'"`
	Content     *string `protobuf:"bytes,5,opt,name=content,proto3,oneof" form:"content" json:"content" query:"content"`
	FileUrl     *string `protobuf:"bytes,6,opt,name=fileUrl,proto3,oneof" form:"fileUrl" json:"fileUrl" query:"fileUrl"`
	FileName    *string `protobuf:"bytes,7,opt,name=fileName,proto3,oneof" form:"fileName" json:"fileName" query:"fileName"`
	YoutubeUrl  *string `protobuf:"bytes,8,opt,name=youtubeUrl,proto3,oneof" form:"youtubeUrl" json:"youtubeUrl" query:"youtubeUrl"`
}

type DeleteLessonReq struct {
	LessonId string `protobuf:"bytes,1,opt,name=lessonId,proto3" form:"lessonId" json:"lessonId" query:"lessonId" vd:"len($)>0"`
}

type PublishLessonReq struct {
	LessonId    string `protobuf:"bytes,1,opt,name=lessonId,proto3" form:"lessonId" json:"lessonId" query:"lessonId" vd:"len($)>0"`
	IsPublished bool   `protobuf:"varint,2,opt,name=isPublished,proto3" form:"isPublished" json:"isPublished" query:"isPublished"`
}

type GetLessonReq struct {
	LessonId string `protobuf:"bytes,1,opt,name=lessonId,proto3" form:"lessonId" json:"lessonId" query:"lessonId" vd:"len($)>0"`
}

type GetLessonResp struct {
	Lesson *LessonInfo `protobuf:"bytes,1,opt,name=lesson,proto3" form:"lesson" json:"lesson" query:"lesson"`
}

type ListLessonsReq struct {
	PaginationOptions *basic.PaginationOptions `protobuf:"bytes,1,opt,name=paginationOptions,proto3" form:"paginationOptions" json:"paginationOptions" query:"paginationOptions"`
}

type ListLessonsResp struct {
	Lessons []*LessonInfo `protobuf:"bytes,1,rep,name=lessons,proto3" form:"lessons" json:"lessons" query:"lessons"`
	Total   int64         `protobuf:"varint,2,opt,name=total,proto3" form:"total" json:"total" query:"total"`
}
