package lesson

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
	prefixLessonCacheKey = "cache:lesson"
	LessonCollectionName = "lesson"
)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewLessonMongoMapper collection: %s", LessonCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, LessonCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, lesson *Lesson) error {
	if lesson.ID.IsZero() {
		lesson.ID = primitive.NewObjectID()
		lesson.CreateTime = time.Now()
		lesson.UpdateTime = lesson.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, lesson)
	return err
}

func (m *MongoMapper) Update(ctx context.Context, lesson *Lesson) error {
	lesson.UpdateTime = time.Now()
	_, err := m.conn.UpdateByIDNoCache(ctx, lesson.ID, updateDoc(lesson))
	return err
}

// updateDoc 切换课程类型会把不再使用的omitempty指针置空，$set不携带这些字段，
// 需要显式$unset清掉旧值
func updateDoc(lesson *Lesson) bson.M {
	update := bson.M{consts.Set: lesson}
	unset := bson.M{}
	if lesson.Content == nil {
		unset[consts.Content] = ""
	}
	if lesson.FileURL == nil {
		unset[consts.FileURL] = ""
	}
	if lesson.FileName == nil {
		unset[consts.FileName] = ""
	}
	if lesson.YoutubeURL == nil {
		unset[consts.YoutubeURL] = ""
	}
	if len(unset) > 0 {
		update[consts.Unset] = unset
	}
	return update
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Lesson, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var l Lesson
	err = m.conn.FindOneNoCache(ctx, &l, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &l, nil
}

func (m *MongoMapper) FindByTeacherID(ctx context.Context, teacherID string, page, pageSize int64) ([]*Lesson, int64, error) {
	var lessons []*Lesson
	filter := bson.M{consts.TeacherID: teacherID}

	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := (page - 1) * pageSize
	err = m.conn.Find(ctx, &lessons, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &pageSize,
		Sort:  bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, 0, err
	}

	return lessons, total, nil
}

// FindPublished 学生端只能看到已发布课程
func (m *MongoMapper) FindPublished(ctx context.Context, page, pageSize int64) ([]*Lesson, int64, error) {
	var lessons []*Lesson
	filter := bson.M{consts.IsPublished: true}

	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := (page - 1) * pageSize
	err = m.conn.Find(ctx, &lessons, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &pageSize,
		Sort:  bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, 0, err
	}

	return lessons, total, nil
}

func (m *MongoMapper) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
	return err
}
