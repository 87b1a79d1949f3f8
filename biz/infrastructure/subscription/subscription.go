package subscription

import (
	"context"
	"time"
)

// CommentEvent 订阅推送的单条评论
type CommentEvent struct {
	ID           string
	SubmissionID string
	UserID       string
	Content      string
	CreateTime   time.Time
}

// Stream 单个批次的实时订阅。每次推送携带该批次当前的完整结果集，
// 由调用方整体替换对应批次的本地切片。通道关闭表示订阅已结束。
type Stream interface {
	Changes() <-chan []*CommentEvent
	Close()
}

// Subscriber 对一组提交id打开一条持续更新的评论订阅。
// 每条订阅携带的id数量不能超过后端成员查询上限，分批由调用方负责。
type Subscriber interface {
	Subscribe(ctx context.Context, submissionIDs []string) (Stream, error)
}
