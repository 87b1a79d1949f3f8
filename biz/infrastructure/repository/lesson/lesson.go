package lesson

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lesson 教学内容，按类型携带文本、文件或视频链接
type Lesson struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TeacherID   string             `bson:"teacher_id" json:"teacherId"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	LessonType  string             `bson:"lesson_type" json:"lessonType"` // text/file/video

	Content    *string `bson:"content,omitempty" json:"content,omitempty"`
	FileURL    *string `bson:"file_url,omitempty" json:"fileUrl,omitempty"`
	FileName   *string `bson:"file_name,omitempty" json:"fileName,omitempty"`
	YoutubeURL *string `bson:"youtube_url,omitempty" json:"youtubeUrl,omitempty"`

	IsPublished bool      `bson:"is_published" json:"isPublished"`
	CreateTime  time.Time `bson:"create_time" json:"createTime"`
	UpdateTime  time.Time `bson:"update_time" json:"updateTime"`
}
