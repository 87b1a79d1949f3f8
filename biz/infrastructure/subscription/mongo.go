package subscription

import (
	"context"
	"sort"

	"classroom-hub/biz/infrastructure/config"
	"classroom-hub/biz/infrastructure/consts"
	"classroom-hub/biz/infrastructure/repository/submission"
	"classroom-hub/biz/infrastructure/util/log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSubscriber 基于mongo change stream的实时订阅。
// monc不暴露Watch，这里直接持有评论集合的原生连接。
type MongoSubscriber struct {
	coll *mongo.Collection
}

func NewMongoSubscriber(config *config.Config) *MongoSubscriber {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(config.Mongo.URL))
	if err != nil {
		log.Error("连接mongo失败: %v", err)
		panic(err)
	}
	return &MongoSubscriber{
		coll: client.Database(config.Mongo.DB).Collection(submission.CommentCollectionName),
	}
}

func (s *MongoSubscriber) Subscribe(ctx context.Context, submissionIDs []string) (Stream, error) {
	ctx, cancel := context.WithCancel(ctx)

	// 初始结果集
	cur, err := s.coll.Find(ctx, bson.M{consts.SubmissionID: bson.M{consts.In: submissionIDs}})
	if err != nil {
		cancel()
		return nil, err
	}
	var initial []*submission.Comment
	if err = cur.All(ctx, &initial); err != nil {
		cancel()
		return nil, err
	}

	// 只关注本批次提交下新增的评论，评论只增不改
	pipeline := mongo.Pipeline{bson.D{{Key: "$match", Value: bson.D{
		{Key: "operationType", Value: "insert"},
		{Key: "fullDocument.submission_id", Value: bson.D{{Key: consts.In, Value: submissionIDs}}},
	}}}}
	cs, err := s.coll.Watch(ctx, pipeline)
	if err != nil {
		cancel()
		return nil, err
	}

	st := &mongoStream{
		ch:     make(chan []*CommentEvent, 8),
		cancel: cancel,
	}
	go st.run(ctx, cs, initial)
	return st, nil
}

type mongoStream struct {
	ch     chan []*CommentEvent
	cancel context.CancelFunc
}

func (st *mongoStream) Changes() <-chan []*CommentEvent {
	return st.ch
}

func (st *mongoStream) Close() {
	st.cancel()
}

func (st *mongoStream) run(ctx context.Context, cs *mongo.ChangeStream, initial []*submission.Comment) {
	defer close(st.ch)
	defer func() {
		if err := cs.Close(context.Background()); err != nil {
			log.Error("关闭change stream失败: %v", err)
		}
	}()

	events := make([]*CommentEvent, 0, len(initial))
	for _, c := range initial {
		events = append(events, toEvent(c))
	}
	st.push(ctx, events)

	for cs.Next(ctx) {
		var changeDoc struct {
			FullDocument submission.Comment `bson:"fullDocument"`
		}
		if err := cs.Decode(&changeDoc); err != nil {
			log.Error("解析change stream事件失败: %v", err)
			continue
		}
		events = append(events, toEvent(&changeDoc.FullDocument))
		st.push(ctx, events)
	}
	if err := cs.Err(); err != nil && ctx.Err() == nil {
		log.Error("change stream中断: %v", err)
	}
}

// push 推送当前完整结果集的副本，按创建时间降序
func (st *mongoStream) push(ctx context.Context, events []*CommentEvent) {
	snapshot := make([]*CommentEvent, len(events))
	copy(snapshot, events)
	sort.Slice(snapshot, func(i, j int) bool {
		return snapshot[i].CreateTime.After(snapshot[j].CreateTime)
	})
	select {
	case st.ch <- snapshot:
	case <-ctx.Done():
	}
}

func toEvent(c *submission.Comment) *CommentEvent {
	return &CommentEvent{
		ID:           c.ID.Hex(),
		SubmissionID: c.SubmissionID,
		UserID:       c.UserID,
		Content:      c.Content,
		CreateTime:   c.CreateTime,
	}
}
