package submission

import (
	"context"
	"time"

	"classroom-hub/biz/infrastructure/config"
	"classroom-hub/biz/infrastructure/consts"
	"classroom-hub/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixCommentCacheKey = "cache:comment"
	CommentCollectionName = "comment"
)

type CommentMongoMapper struct {
	conn *monc.Model
}

func NewCommentMongoMapper(config *config.Config) *CommentMongoMapper {
	log.Info("NewCommentMongoMapper collection: %s", CommentCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CommentCollectionName, config.Cache)
	return &CommentMongoMapper{
		conn: conn,
	}
}

func (m *CommentMongoMapper) Insert(ctx context.Context, comment *Comment) error {
	if comment.ID.IsZero() {
		comment.ID = primitive.NewObjectID()
	}
	if comment.CreateTime.IsZero() {
		comment.CreateTime = time.Now()
	}
	_, err := m.conn.InsertOneNoCache(ctx, comment)
	return err
}

// FindBySubmissionID 按时间升序返回讨论串
func (m *CommentMongoMapper) FindBySubmissionID(ctx context.Context, submissionID string) ([]*Comment, error) {
	var comments []*Comment
	err := m.conn.Find(ctx, &comments, bson.M{consts.SubmissionID: submissionID}, &options.FindOptions{
		Sort: bson.M{consts.CreateTime: 1},
	})
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// FindBySubmissionIDs 按提交id批量查询，调用方负责分批
func (m *CommentMongoMapper) FindBySubmissionIDs(ctx context.Context, submissionIDs []string) ([]*Comment, error) {
	var comments []*Comment
	err := m.conn.Find(ctx, &comments, bson.M{consts.SubmissionID: bson.M{consts.In: submissionIDs}}, &options.FindOptions{
		Sort: bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (m *CommentMongoMapper) CountByUserID(ctx context.Context, userID string) (int64, error) {
	return m.conn.CountDocuments(ctx, bson.M{consts.UserID: userID})
}

// CountBySubmissionIDs 统计提交集合下的评论数量，调用方负责分批
func (m *CommentMongoMapper) CountBySubmissionIDs(ctx context.Context, submissionIDs []string) (int64, error) {
	return m.conn.CountDocuments(ctx, bson.M{consts.SubmissionID: bson.M{consts.In: submissionIDs}})
}

// DeleteByUserID 删除用户发表的全部评论，返回删除数量
func (m *CommentMongoMapper) DeleteByUserID(ctx context.Context, userID string) (int64, error) {
	return m.conn.DeleteMany(ctx, bson.M{consts.UserID: userID})
}

// DeleteBySubmissionIDs 删除提交集合下的全部评论，调用方负责分批
func (m *CommentMongoMapper) DeleteBySubmissionIDs(ctx context.Context, submissionIDs []string) (int64, error) {
	return m.conn.DeleteMany(ctx, bson.M{consts.SubmissionID: bson.M{consts.In: submissionIDs}})
}
