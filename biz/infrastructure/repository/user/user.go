package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User 用户档案，_id 为认证中台下发的uid
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	Username string             `bson:"username" json:"username"`
	Role     string             `bson:"role" json:"role"` // admin/teacher/student
	Disabled bool               `bson:"disabled" json:"disabled"`

	// LastNotificationReadAt 通知已读水位线，仅本人可写
	LastNotificationReadAt *time.Time `bson:"last_notification_read_at,omitempty" json:"lastNotificationReadAt,omitempty"`

	CreateTime time.Time `bson:"create_time" json:"createTime"`
	UpdateTime time.Time `bson:"update_time" json:"updateTime"`
}
