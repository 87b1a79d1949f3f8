package submission

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment 提交下的讨论，只增不改
type Comment struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SubmissionID string             `bson:"submission_id" json:"submissionId"`
	UserID       string             `bson:"user_id" json:"userId"`
	Content      string             `bson:"content" json:"content"`
	CreateTime   time.Time          `bson:"create_time" json:"createTime"`
}
