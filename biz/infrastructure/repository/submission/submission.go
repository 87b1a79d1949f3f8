package submission

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubmissionFile 提交附件，文件本体存放在外部媒体存储
type SubmissionFile struct {
	FileURL    string    `bson:"file_url" json:"fileUrl"`
	FileName   string    `bson:"file_name" json:"fileName"`
	UploadTime time.Time `bson:"upload_time" json:"uploadTime"`
}

// Submission 学生对某次作业的提交，(assignment_id, student_id) 业务上唯一
type Submission struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AssignmentID string             `bson:"assignment_id" json:"assignmentId"`
	StudentID    string             `bson:"student_id" json:"studentId"`
	TeacherID    string             `bson:"teacher_id" json:"teacherId"`
	Files        []SubmissionFile   `bson:"files,omitempty" json:"files,omitempty"`
	Status       string             `bson:"status" json:"status"` // submitted/graded

	Grade    *int64  `bson:"grade,omitempty" json:"grade,omitempty"`
	Feedback *string `bson:"feedback,omitempty" json:"feedback,omitempty"`

	SubmitTime time.Time  `bson:"submit_time" json:"submitTime"`
	GradeTime  *time.Time `bson:"grade_time,omitempty" json:"gradeTime,omitempty"`
	UpdateTime time.Time  `bson:"update_time" json:"updateTime"`
}
