package service

import (
	"context"
	"errors"
	"testing"

	"classroom-hub/biz/infrastructure/consts"
	"classroom-hub/biz/infrastructure/repository/assignment"
	"classroom-hub/biz/infrastructure/repository/submission"
	"classroom-hub/biz/infrastructure/repository/user"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// cascadeStore 内存中的全部集合，各个fake mapper共享
type cascadeStore struct {
	users       map[string]*user.User
	assignments []*assignment.Assignment
	links       []*assignment.AssignmentStudent
	submissions []*submission.Submission
	comments    []*submission.Comment

	deleteSubmissionErr error
	identityErr         error
	identityDeleted     []string
}

type fakeUserStore struct{ s *cascadeStore }

func (f *fakeUserStore) FindOne(_ context.Context, id string) (*user.User, error) {
	if u, ok := f.s.users[id]; ok {
		return u, nil
	}
	return nil, consts.ErrNotFound
}

func (f *fakeUserStore) Delete(_ context.Context, id string) error {
	delete(f.s.users, id)
	return nil
}

type fakeAssignmentStore struct{ s *cascadeStore }

func (f *fakeAssignmentStore) FindAllByTeacherID(_ context.Context, teacherID string) ([]*assignment.Assignment, error) {
	return lo.Filter(f.s.assignments, func(a *assignment.Assignment, _ int) bool {
		return a.TeacherID == teacherID
	}), nil
}

func (f *fakeAssignmentStore) CountByTeacherID(_ context.Context, teacherID string) (int64, error) {
	all, _ := f.FindAllByTeacherID(context.Background(), teacherID)
	return int64(len(all)), nil
}

func (f *fakeAssignmentStore) Delete(_ context.Context, id string) error {
	f.s.assignments = lo.Filter(f.s.assignments, func(a *assignment.Assignment, _ int) bool {
		return a.ID.Hex() != id
	})
	return nil
}

type fakeLinkStore struct{ s *cascadeStore }

func (f *fakeLinkStore) CountByAssignmentIDs(_ context.Context, assignmentIDs []string) (int64, error) {
	return int64(lo.CountBy(f.s.links, func(l *assignment.AssignmentStudent) bool {
		return lo.Contains(assignmentIDs, l.AssignmentID)
	})), nil
}

func (f *fakeLinkStore) CountByStudentID(_ context.Context, studentID string) (int64, error) {
	return int64(lo.CountBy(f.s.links, func(l *assignment.AssignmentStudent) bool {
		return l.StudentID == studentID
	})), nil
}

func (f *fakeLinkStore) DeleteByAssignmentID(_ context.Context, assignmentID string) (int64, error) {
	before := len(f.s.links)
	f.s.links = lo.Filter(f.s.links, func(l *assignment.AssignmentStudent, _ int) bool {
		return l.AssignmentID != assignmentID
	})
	return int64(before - len(f.s.links)), nil
}

func (f *fakeLinkStore) DeleteByStudentID(_ context.Context, studentID string) (int64, error) {
	before := len(f.s.links)
	f.s.links = lo.Filter(f.s.links, func(l *assignment.AssignmentStudent, _ int) bool {
		return l.StudentID != studentID
	})
	return int64(before - len(f.s.links)), nil
}

type fakeSubmissionStore struct{ s *cascadeStore }

func (f *fakeSubmissionStore) FindByAssignmentIDs(_ context.Context, assignmentIDs []string) ([]*submission.Submission, error) {
	return lo.Filter(f.s.submissions, func(sub *submission.Submission, _ int) bool {
		return lo.Contains(assignmentIDs, sub.AssignmentID)
	}), nil
}

func (f *fakeSubmissionStore) FindByStudentID(_ context.Context, studentID string) ([]*submission.Submission, error) {
	return lo.Filter(f.s.submissions, func(sub *submission.Submission, _ int) bool {
		return sub.StudentID == studentID
	}), nil
}

func (f *fakeSubmissionStore) CountByAssignmentIDs(_ context.Context, assignmentIDs []string) (int64, error) {
	found, _ := f.FindByAssignmentIDs(context.Background(), assignmentIDs)
	return int64(len(found)), nil
}

func (f *fakeSubmissionStore) CountByStudentID(_ context.Context, studentID string) (int64, error) {
	found, _ := f.FindByStudentID(context.Background(), studentID)
	return int64(len(found)), nil
}

func (f *fakeSubmissionStore) DeleteByAssignmentIDs(_ context.Context, assignmentIDs []string) (int64, error) {
	if f.s.deleteSubmissionErr != nil {
		return 0, f.s.deleteSubmissionErr
	}
	before := len(f.s.submissions)
	f.s.submissions = lo.Filter(f.s.submissions, func(sub *submission.Submission, _ int) bool {
		return !lo.Contains(assignmentIDs, sub.AssignmentID)
	})
	return int64(before - len(f.s.submissions)), nil
}

func (f *fakeSubmissionStore) DeleteByStudentID(_ context.Context, studentID string) (int64, error) {
	if f.s.deleteSubmissionErr != nil {
		return 0, f.s.deleteSubmissionErr
	}
	before := len(f.s.submissions)
	f.s.submissions = lo.Filter(f.s.submissions, func(sub *submission.Submission, _ int) bool {
		return sub.StudentID != studentID
	})
	return int64(before - len(f.s.submissions)), nil
}

type fakeCommentStore struct{ s *cascadeStore }

func (f *fakeCommentStore) CountBySubmissionIDs(_ context.Context, submissionIDs []string) (int64, error) {
	return int64(lo.CountBy(f.s.comments, func(c *submission.Comment) bool {
		return lo.Contains(submissionIDs, c.SubmissionID)
	})), nil
}

func (f *fakeCommentStore) CountByUserID(_ context.Context, userID string) (int64, error) {
	return int64(lo.CountBy(f.s.comments, func(c *submission.Comment) bool {
		return c.UserID == userID
	})), nil
}

func (f *fakeCommentStore) DeleteBySubmissionIDs(_ context.Context, submissionIDs []string) (int64, error) {
	before := len(f.s.comments)
	f.s.comments = lo.Filter(f.s.comments, func(c *submission.Comment, _ int) bool {
		return !lo.Contains(submissionIDs, c.SubmissionID)
	})
	return int64(before - len(f.s.comments)), nil
}

func (f *fakeCommentStore) DeleteByUserID(_ context.Context, userID string) (int64, error) {
	before := len(f.s.comments)
	f.s.comments = lo.Filter(f.s.comments, func(c *submission.Comment, _ int) bool {
		return c.UserID != userID
	})
	return int64(before - len(f.s.comments)), nil
}

type fakeIdentityStore struct{ s *cascadeStore }

func (f *fakeIdentityStore) DeleteIdentity(_ context.Context, userId string) (map[string]interface{}, error) {
	if f.s.identityErr != nil {
		return nil, f.s.identityErr
	}
	f.s.identityDeleted = append(f.s.identityDeleted, userId)
	return map[string]interface{}{"code": 0}, nil
}

func newCascadeService(s *cascadeStore) *AdminService {
	return &AdminService{
		UserMapper:       &fakeUserStore{s: s},
		AssignmentMapper: &fakeAssignmentStore{s: s},
		StudentMapper:    &fakeLinkStore{s: s},
		SubmissionMapper: &fakeSubmissionStore{s: s},
		CommentMapper:    &fakeCommentStore{s: s},
		Identity:         &fakeIdentityStore{s: s},
	}
}

func newTestUser(role string) *user.User {
	return &user.User{ID: primitive.NewObjectID(), Username: role, Role: role}
}

// 教师T名下作业A1分配给S1、S2，S1提交一次并被批为8分
func exampleScenario() (*cascadeStore, *user.User) {
	teacher := newTestUser(consts.RoleTeacher)
	s1 := newTestUser(consts.RoleStudent)
	s2 := newTestUser(consts.RoleStudent)
	a1 := primitive.NewObjectID()
	grade := int64(8)
	feedback := "Good job"

	store := &cascadeStore{
		users: map[string]*user.User{
			teacher.ID.Hex(): teacher,
			s1.ID.Hex():      s1,
			s2.ID.Hex():      s2,
		},
		assignments: []*assignment.Assignment{
			{ID: a1, Title: "A1", TeacherID: teacher.ID.Hex()},
		},
		links: []*assignment.AssignmentStudent{
			{ID: primitive.NewObjectID(), AssignmentID: a1.Hex(), StudentID: s1.ID.Hex()},
			{ID: primitive.NewObjectID(), AssignmentID: a1.Hex(), StudentID: s2.ID.Hex()},
		},
		submissions: []*submission.Submission{
			{
				ID:           primitive.NewObjectID(),
				AssignmentID: a1.Hex(),
				StudentID:    s1.ID.Hex(),
				TeacherID:    teacher.ID.Hex(),
				Status:       consts.StatusGraded,
				Grade:        &grade,
				Feedback:     &feedback,
			},
		},
	}
	return store, teacher
}

func TestDeleteStatsExampleScenario(t *testing.T) {
	store, teacher := exampleScenario()
	svc := newCascadeService(store)

	resp, err := svc.computeDeleteStats(context.Background(), teacher)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.Assignments)
	assert.Equal(t, int64(2), resp.AssignmentStudents)
	assert.Equal(t, int64(1), resp.Submissions)
	assert.Equal(t, int64(0), resp.Comments)
	require.NotNil(t, resp.UserInfo)
	assert.Equal(t, teacher.ID.Hex(), resp.UserInfo.Id)
}

func TestDeleteTeacherCompletely(t *testing.T) {
	store, teacher := exampleScenario()
	subId := store.submissions[0].ID.Hex()
	studentId := store.submissions[0].StudentID
	store.comments = []*submission.Comment{
		{ID: primitive.NewObjectID(), SubmissionID: subId, UserID: teacher.ID.Hex(), Content: "再检查一下第二题"},
		{ID: primitive.NewObjectID(), SubmissionID: subId, UserID: studentId, Content: "收到"},
	}
	svc := newCascadeService(store)

	resp, err := svc.deleteCompletely(context.Background(), teacher)
	require.NoError(t, err)
	require.True(t, resp.Success)

	assert.Equal(t, int64(1), resp.DeletedData.Assignments)
	assert.Equal(t, int64(2), resp.DeletedData.AssignmentStudents)
	assert.Equal(t, int64(1), resp.DeletedData.Submissions)
	assert.Equal(t, int64(2), resp.DeletedData.Comments)
	assert.True(t, resp.DeletedData.AuthIdentity)

	// 无悬挂引用
	assert.Empty(t, store.assignments)
	assert.Empty(t, store.links)
	assert.Empty(t, store.submissions)
	assert.Empty(t, store.comments)
	assert.NotContains(t, store.users, teacher.ID.Hex())
	assert.Equal(t, []string{teacher.ID.Hex()}, store.identityDeleted)
}

func TestDeleteStudentCompletely(t *testing.T) {
	store, teacher := exampleScenario()
	target := store.users[store.submissions[0].StudentID]
	subId := store.submissions[0].ID.Hex()
	store.comments = []*submission.Comment{
		{ID: primitive.NewObjectID(), SubmissionID: subId, UserID: teacher.ID.Hex(), Content: "不错"},
		{ID: primitive.NewObjectID(), SubmissionID: subId, UserID: target.ID.Hex(), Content: "谢谢老师"},
	}
	svc := newCascadeService(store)

	resp, err := svc.deleteCompletely(context.Background(), target)
	require.NoError(t, err)
	require.True(t, resp.Success)

	// 教师和另一名学生的数据不受影响
	assert.Equal(t, int64(0), resp.DeletedData.Assignments)
	assert.Equal(t, int64(1), resp.DeletedData.AssignmentStudents)
	assert.Equal(t, int64(1), resp.DeletedData.Submissions)
	assert.Equal(t, int64(2), resp.DeletedData.Comments)

	assert.Len(t, store.assignments, 1)
	assert.Len(t, store.links, 1)
	assert.Empty(t, store.submissions)
	assert.Empty(t, store.comments)
	assert.NotContains(t, store.users, target.ID.Hex())
}

func TestDeleteCompletelyPartialFailure(t *testing.T) {
	store, teacher := exampleScenario()
	subId := store.submissions[0].ID.Hex()
	store.comments = []*submission.Comment{
		{ID: primitive.NewObjectID(), SubmissionID: subId, UserID: teacher.ID.Hex(), Content: "不错"},
	}
	store.deleteSubmissionErr = errors.New("connection reset")
	svc := newCascadeService(store)

	_, err := svc.deleteCompletely(context.Background(), teacher)
	require.Error(t, err)
	assert.Equal(t, codes.Internal, status.Code(err))

	// 已执行的删除不回滚
	assert.Empty(t, store.comments)
	assert.Len(t, store.submissions, 1)
	assert.Empty(t, store.identityDeleted)
}

func TestDeleteCompletelyIdentityFailureNonFatal(t *testing.T) {
	store, teacher := exampleScenario()
	store.identityErr = errors.New("platform unavailable")
	svc := newCascadeService(store)

	resp, err := svc.deleteCompletely(context.Background(), teacher)
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.False(t, resp.DeletedData.AuthIdentity)
	assert.Contains(t, resp.Message, "认证身份")
	assert.NotContains(t, store.users, teacher.ID.Hex())
}

func TestDeleteStatsStudent(t *testing.T) {
	store, _ := exampleScenario()
	target := store.users[store.submissions[0].StudentID]
	svc := newCascadeService(store)

	resp, err := svc.computeDeleteStats(context.Background(), target)
	require.NoError(t, err)

	assert.Equal(t, int64(0), resp.Assignments)
	assert.Equal(t, int64(1), resp.AssignmentStudents)
	assert.Equal(t, int64(1), resp.Submissions)
	assert.Equal(t, int64(0), resp.Comments)
}
