package assignment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AssignmentStudent 作业与学生的多对多关联记录
type AssignmentStudent struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AssignmentID string             `bson:"assignment_id" json:"assignmentId"`
	StudentID    string             `bson:"student_id" json:"studentId"`
	AssignTime   time.Time          `bson:"assign_time" json:"assignTime"`
}
