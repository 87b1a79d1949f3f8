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
	prefixSubmissionCacheKey = "cache:submission"
	SubmissionCollectionName = "submission"
)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewSubmissionMongoMapper collection: %s", SubmissionCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, SubmissionCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, submission *Submission) error {
	if submission.ID.IsZero() {
		submission.ID = primitive.NewObjectID()
		submission.SubmitTime = time.Now()
		submission.UpdateTime = submission.SubmitTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, submission)
	return err
}

func (m *MongoMapper) Update(ctx context.Context, submission *Submission) error {
	submission.UpdateTime = time.Now()
	_, err := m.conn.UpdateByIDNoCache(ctx, submission.ID, updateDoc(submission))
	return err
}

// updateDoc omitempty指针置空时$set不会携带对应字段，需要显式$unset清掉旧值
func updateDoc(submission *Submission) bson.M {
	update := bson.M{consts.Set: submission}
	unset := bson.M{}
	if submission.Grade == nil {
		unset[consts.Grade] = ""
	}
	if submission.Feedback == nil {
		unset[consts.Feedback] = ""
	}
	if submission.GradeTime == nil {
		unset[consts.GradeTime] = ""
	}
	if len(unset) > 0 {
		update[consts.Unset] = unset
	}
	return update
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Submission, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var s Submission
	err = m.conn.FindOneNoCache(ctx, &s, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &s, nil
}

func (m *MongoMapper) FindByStudentAndAssignment(ctx context.Context, studentID, assignmentID string) (*Submission, error) {
	var s Submission
	err := m.conn.FindOneNoCache(ctx, &s, bson.M{
		consts.StudentID:    studentID,
		consts.AssignmentID: assignmentID,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &s, nil
}

func (m *MongoMapper) FindByAssignmentID(ctx context.Context, assignmentID string) ([]*Submission, error) {
	var submissions []*Submission
	err := m.conn.Find(ctx, &submissions, bson.M{consts.AssignmentID: assignmentID}, &options.FindOptions{
		Sort: bson.M{"submit_time": -1},
	})
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

// FindByAssignmentIDs 按作业id批量查询，调用方负责分批
func (m *MongoMapper) FindByAssignmentIDs(ctx context.Context, assignmentIDs []string) ([]*Submission, error) {
	var submissions []*Submission
	err := m.conn.Find(ctx, &submissions, bson.M{consts.AssignmentID: bson.M{consts.In: assignmentIDs}})
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

func (m *MongoMapper) FindByStudentID(ctx context.Context, studentID string) ([]*Submission, error) {
	var submissions []*Submission
	err := m.conn.Find(ctx, &submissions, bson.M{consts.StudentID: studentID}, &options.FindOptions{
		Sort: bson.M{"submit_time": -1},
	})
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

func (m *MongoMapper) CountByAssignmentID(ctx context.Context, assignmentID string, status string) (int64, error) {
	filter := bson.M{consts.AssignmentID: assignmentID}
	if status != "" {
		filter[consts.Status] = status
	}
	return m.conn.CountDocuments(ctx, filter)
}

func (m *MongoMapper) CountByStudentID(ctx context.Context, studentID string) (int64, error) {
	return m.conn.CountDocuments(ctx, bson.M{consts.StudentID: studentID})
}

// CountByAssignmentIDs 统计作业集合下的提交数量，调用方负责分批
func (m *MongoMapper) CountByAssignmentIDs(ctx context.Context, assignmentIDs []string) (int64, error) {
	return m.conn.CountDocuments(ctx, bson.M{consts.AssignmentID: bson.M{consts.In: assignmentIDs}})
}

// DeleteByStudentID 删除学生的全部提交，返回删除数量
func (m *MongoMapper) DeleteByStudentID(ctx context.Context, studentID string) (int64, error) {
	return m.conn.DeleteMany(ctx, bson.M{consts.StudentID: studentID})
}

// DeleteByAssignmentIDs 删除作业集合下的全部提交，调用方负责分批
func (m *MongoMapper) DeleteByAssignmentIDs(ctx context.Context, assignmentIDs []string) (int64, error) {
	return m.conn.DeleteMany(ctx, bson.M{consts.AssignmentID: bson.M{consts.In: assignmentIDs}})
}

func (m *MongoMapper) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
	return err
}
