package assignment

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
	prefixStudentCacheKey = "cache:assignment_student"
	StudentCollectionName = "assignment_student"
)

type StudentMongoMapper struct {
	conn *monc.Model
}

func NewStudentMongoMapper(config *config.Config) *StudentMongoMapper {
	log.Info("NewAssignmentStudentMongoMapper collection: %s", StudentCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, StudentCollectionName, config.Cache)
	return &StudentMongoMapper{
		conn: conn,
	}
}

func (m *StudentMongoMapper) Insert(ctx context.Context, link *AssignmentStudent) error {
	if link.ID.IsZero() {
		link.ID = primitive.NewObjectID()
	}
	if link.AssignTime.IsZero() {
		link.AssignTime = time.Now()
	}
	_, err := m.conn.InsertOneNoCache(ctx, link)
	return err
}

func (m *StudentMongoMapper) FindByAssignmentID(ctx context.Context, assignmentID string) ([]*AssignmentStudent, error) {
	var links []*AssignmentStudent
	err := m.conn.Find(ctx, &links, bson.M{consts.AssignmentID: assignmentID}, &options.FindOptions{
		Sort: bson.M{"assign_time": -1},
	})
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (m *StudentMongoMapper) FindByStudentID(ctx context.Context, studentID string) ([]*AssignmentStudent, error) {
	var links []*AssignmentStudent
	err := m.conn.Find(ctx, &links, bson.M{consts.StudentID: studentID}, &options.FindOptions{
		Sort: bson.M{"assign_time": -1},
	})
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (m *StudentMongoMapper) FindByAssignmentAndStudent(ctx context.Context, assignmentID, studentID string) (*AssignmentStudent, error) {
	var link AssignmentStudent
	err := m.conn.FindOneNoCache(ctx, &link, bson.M{
		consts.AssignmentID: assignmentID,
		consts.StudentID:    studentID,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &link, nil
}

// CountByAssignmentIDs 按作业id批量统计，调用方负责分批
func (m *StudentMongoMapper) CountByAssignmentIDs(ctx context.Context, assignmentIDs []string) (int64, error) {
	return m.conn.CountDocuments(ctx, bson.M{consts.AssignmentID: bson.M{consts.In: assignmentIDs}})
}

func (m *StudentMongoMapper) CountByStudentID(ctx context.Context, studentID string) (int64, error) {
	return m.conn.CountDocuments(ctx, bson.M{consts.StudentID: studentID})
}

// DeleteByAssignmentID 删除作业下全部关联记录，返回删除数量
func (m *StudentMongoMapper) DeleteByAssignmentID(ctx context.Context, assignmentID string) (int64, error) {
	n, err := m.conn.DeleteMany(ctx, bson.M{consts.AssignmentID: assignmentID})
	return n, err
}

// DeleteByStudentID 删除学生的全部关联记录，返回删除数量
func (m *StudentMongoMapper) DeleteByStudentID(ctx context.Context, studentID string) (int64, error) {
	n, err := m.conn.DeleteMany(ctx, bson.M{consts.StudentID: studentID})
	return n, err
}

func (m *StudentMongoMapper) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
	return err
}
