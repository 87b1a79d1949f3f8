package service

import (
	"context"
	"testing"

	"classroom-hub/biz/application/dto/classroom/hub"
	"classroom-hub/biz/infrastructure/consts"
	"classroom-hub/biz/infrastructure/repository/submission"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// gradeSubmissionFakeStore 记录读写次数，用于断言越界分数不触发任何数据访问
type gradeSubmissionFakeStore struct {
	subs    []*submission.Submission
	finds   int
	updates int
	inserts int
}

func (s *gradeSubmissionFakeStore) Insert(ctx context.Context, sub *submission.Submission) error {
	s.inserts++
	s.subs = append(s.subs, sub)
	return nil
}

func (s *gradeSubmissionFakeStore) Update(ctx context.Context, sub *submission.Submission) error {
	s.updates++
	return nil
}

func (s *gradeSubmissionFakeStore) FindOne(ctx context.Context, id string) (*submission.Submission, error) {
	s.finds++
	for _, sub := range s.subs {
		if sub.ID.Hex() == id {
			return sub, nil
		}
	}
	return nil, consts.ErrNotFound
}

func (s *gradeSubmissionFakeStore) FindByStudentAndAssignment(ctx context.Context, studentID, assignmentID string) (*submission.Submission, error) {
	s.finds++
	for _, sub := range s.subs {
		if sub.StudentID == studentID && sub.AssignmentID == assignmentID {
			return sub, nil
		}
	}
	return nil, consts.ErrNotFound
}

func newGradeFixture() (*SubmissionService, *gradeSubmissionFakeStore, *submission.Submission) {
	sub := &submission.Submission{
		ID:           primitive.NewObjectID(),
		AssignmentID: "assignment-1",
		StudentID:    "student-1",
		TeacherID:    "teacher-1",
		Status:       consts.StatusSubmitted,
	}
	store := &gradeSubmissionFakeStore{subs: []*submission.Submission{sub}}
	return &SubmissionService{SubmissionMapper: store}, store, sub
}

func TestApplyGrade(t *testing.T) {
	svc, store, sub := newGradeFixture()

	resp, err := svc.applyGrade(context.Background(), "teacher-1", &hub.GradeSubmissionReq{
		SubmissionId: sub.ID.Hex(),
		Grade:        8,
		Feedback:     "Good job",
	})
	require.NoError(t, err)
	assert.NotNil(t, resp)

	assert.Equal(t, consts.StatusGraded, sub.Status)
	require.NotNil(t, sub.Grade)
	assert.EqualValues(t, 8, *sub.Grade)
	require.NotNil(t, sub.Feedback)
	assert.Equal(t, "Good job", *sub.Feedback)
	assert.NotNil(t, sub.GradeTime)
	assert.Equal(t, 1, store.updates)
}

// 越界分数在任何读写之前就被拒绝，提交保持原状
func TestApplyGradeOutOfRangeNoWrite(t *testing.T) {
	svc, store, sub := newGradeFixture()

	for _, grade := range []int64{-1, 11} {
		_, err := svc.applyGrade(context.Background(), "teacher-1", &hub.GradeSubmissionReq{
			SubmissionId: sub.ID.Hex(),
			Grade:        grade,
		})
		assert.ErrorIs(t, err, consts.ErrInvalidGrade)
	}

	assert.Equal(t, 0, store.finds)
	assert.Equal(t, 0, store.updates)
	assert.Equal(t, consts.StatusSubmitted, sub.Status)
	assert.Nil(t, sub.Grade)
	assert.Nil(t, sub.GradeTime)
}

func TestApplyGradeNotOwner(t *testing.T) {
	svc, store, sub := newGradeFixture()

	_, err := svc.applyGrade(context.Background(), "teacher-2", &hub.GradeSubmissionReq{
		SubmissionId: sub.ID.Hex(),
		Grade:        8,
	})
	assert.ErrorIs(t, err, consts.ErrForbidden)
	assert.Equal(t, 0, store.updates)
	assert.Equal(t, consts.StatusSubmitted, sub.Status)
}

func TestValidateGrade(t *testing.T) {
	tests := []struct {
		name    string
		grade   int64
		wantErr bool
	}{
		{name: "下界", grade: 0},
		{name: "中间值", grade: 5},
		{name: "上界", grade: 10},
		{name: "负数", grade: -1, wantErr: true},
		{name: "超过上界", grade: 11, wantErr: true},
		{name: "远超范围", grade: 100, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateGrade(tt.grade)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, consts.ErrInvalidGrade)
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
		})
	}
}
