package assignment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AssignmentFile 作业附件，文件本体存放在外部媒体存储
type AssignmentFile struct {
	FileURL     string    `bson:"file_url" json:"fileUrl"`
	FileName    string    `bson:"file_name" json:"fileName"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	UploadTime  time.Time `bson:"upload_time" json:"uploadTime"`
}

type Assignment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	TeacherID   string             `bson:"teacher_id" json:"teacherId"`
	Files       []AssignmentFile   `bson:"files,omitempty" json:"files,omitempty"`
	DueDate     time.Time          `bson:"due_date" json:"dueDate"`
	CreateTime  time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime  time.Time          `bson:"update_time" json:"updateTime"`
}
