package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"classroom-hub/biz/infrastructure/consts"
	"classroom-hub/biz/infrastructure/repository/assignment"
	"classroom-hub/biz/infrastructure/repository/submission"
	"classroom-hub/biz/infrastructure/repository/user"
	"classroom-hub/biz/infrastructure/subscription"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeStream struct {
	ch chan []*subscription.CommentEvent
}

func (f *fakeStream) Changes() <-chan []*subscription.CommentEvent { return f.ch }
func (f *fakeStream) Close()                                       {}

type fakeSubscriber struct {
	mu      sync.Mutex
	chunks  [][]string
	streams []*fakeStream
}

func (f *fakeSubscriber) Subscribe(ctx context.Context, submissionIDs []string) (subscription.Stream, error) {
	st := &fakeStream{ch: make(chan []*subscription.CommentEvent, 16)}
	go func() {
		<-ctx.Done()
		close(st.ch)
	}()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chunks = append(f.chunks, submissionIDs)
	f.streams = append(f.streams, st)
	return st, nil
}

func (f *fakeSubscriber) subscribeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.chunks)
}

type fakeFeedStore struct {
	mu          sync.Mutex
	users       map[string]*user.User
	assignments []*assignment.Assignment
	submissions []*submission.Submission
	watermarks  map[string]time.Time
}

func (f *fakeFeedStore) FindOne(_ context.Context, id string) (*user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, consts.ErrNotFound
}

func (f *fakeFeedStore) FindByIDs(_ context.Context, ids []string) ([]*user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	found := make([]*user.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			found = append(found, u)
		}
	}
	return found, nil
}

func (f *fakeFeedStore) UpdateWatermark(_ context.Context, id string, readAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.watermarks == nil {
		f.watermarks = make(map[string]time.Time)
	}
	f.watermarks[id] = readAt
	return nil
}

func (f *fakeFeedStore) FindAllByTeacherID(_ context.Context, teacherID string) ([]*assignment.Assignment, error) {
	return lo.Filter(f.assignments, func(a *assignment.Assignment, _ int) bool {
		return a.TeacherID == teacherID
	}), nil
}

func (f *fakeFeedStore) FindByStudentID(_ context.Context, studentID string) ([]*submission.Submission, error) {
	return lo.Filter(f.submissions, func(s *submission.Submission, _ int) bool {
		return s.StudentID == studentID
	}), nil
}

func (f *fakeFeedStore) FindByAssignmentIDs(_ context.Context, assignmentIDs []string) ([]*submission.Submission, error) {
	return lo.Filter(f.submissions, func(s *submission.Submission, _ int) bool {
		return lo.Contains(assignmentIDs, s.AssignmentID)
	}), nil
}

func newFeedService(store *fakeFeedStore, subscriber *fakeSubscriber) *NotificationService {
	return &NotificationService{
		UserMapper:       store,
		AssignmentMapper: store,
		SubmissionMapper: store,
		Subscriber:       subscriber,
	}
}

// 学生本人加n份提交
func feedFixture(n int) (*fakeFeedStore, *user.User) {
	student := &user.User{ID: primitive.NewObjectID(), Username: "小明", Role: consts.RoleStudent}
	store := &fakeFeedStore{
		users: map[string]*user.User{student.ID.Hex(): student},
	}
	for i := 0; i < n; i++ {
		store.submissions = append(store.submissions, &submission.Submission{
			ID:        primitive.NewObjectID(),
			StudentID: student.ID.Hex(),
		})
	}
	return store, student
}

func makeEvents(authorId string, base time.Time, n int) []*subscription.CommentEvent {
	events := make([]*subscription.CommentEvent, 0, n)
	for i := 0; i < n; i++ {
		events = append(events, &subscription.CommentEvent{
			ID:         fmt.Sprintf("comment-%03d", i),
			UserID:     authorId,
			Content:    fmt.Sprintf("第%d条", i),
			CreateTime: base.Add(time.Duration(i) * time.Minute),
		})
	}
	return events
}

func TestFeedChunkedSubscriptions(t *testing.T) {
	store, student := feedFixture(25)
	subscriber := &fakeSubscriber{}
	svc := newFeedService(store, subscriber)
	defer svc.Shutdown()

	_, err := svc.openFeed(context.Background(), student.ID.Hex())
	require.NoError(t, err)

	// ceil(25/10)条订阅，每条不超过成员查询上限，并集覆盖全部提交
	require.Len(t, subscriber.chunks, 3)
	seen := make([]string, 0, 25)
	for _, chunk := range subscriber.chunks {
		assert.LessOrEqual(t, len(chunk), consts.QueryBatchSize)
		seen = append(seen, chunk...)
	}
	want := lo.Map(store.submissions, func(s *submission.Submission, _ int) string { return s.ID.Hex() })
	assert.ElementsMatch(t, want, seen)
}

func TestFeedCapAndDescendingOrder(t *testing.T) {
	store, student := feedFixture(1)
	author := &user.User{ID: primitive.NewObjectID(), Username: "王老师", Role: consts.RoleTeacher}
	store.users[author.ID.Hex()] = author

	subscriber := &fakeSubscriber{}
	svc := newFeedService(store, subscriber)
	defer svc.Shutdown()

	f, err := svc.openFeed(context.Background(), student.ID.Hex())
	require.NoError(t, err)
	require.Len(t, subscriber.streams, 1)

	subscriber.streams[0].ch <- makeEvents(author.ID.Hex(), time.Now().Add(-time.Hour), 12)

	require.Eventually(t, func() bool {
		entries, _ := f.snapshot()
		return len(entries) == consts.FeedCapacity
	}, time.Second, 10*time.Millisecond)

	entries, unread := f.snapshot()
	assert.Equal(t, int64(consts.FeedCapacity), unread)
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].CreateTime, entries[i].CreateTime)
	}
	for _, e := range entries {
		assert.True(t, e.Unread)
		assert.Equal(t, "王老师", e.AuthorName)
	}
	// 最旧的两条被挤出
	assert.Equal(t, "comment-011", entries[0].CommentId)
	assert.Equal(t, "comment-002", entries[len(entries)-1].CommentId)
}

func TestFeedSkipsPrincipalComments(t *testing.T) {
	store, student := feedFixture(1)
	author := &user.User{ID: primitive.NewObjectID(), Username: "王老师", Role: consts.RoleTeacher}
	store.users[author.ID.Hex()] = author

	subscriber := &fakeSubscriber{}
	svc := newFeedService(store, subscriber)
	defer svc.Shutdown()

	f, err := svc.openFeed(context.Background(), student.ID.Hex())
	require.NoError(t, err)

	events := makeEvents(author.ID.Hex(), time.Now().Add(-time.Hour), 2)
	events = append(events, makeEvents(student.ID.Hex(), time.Now(), 3)...)
	subscriber.streams[0].ch <- events

	require.Eventually(t, func() bool {
		entries, _ := f.snapshot()
		return len(entries) == 2
	}, time.Second, 10*time.Millisecond)

	entries, _ := f.snapshot()
	for _, e := range entries {
		assert.NotEqual(t, student.ID.Hex(), e.AuthorId)
	}
}

func TestFeedBatchReplace(t *testing.T) {
	store, student := feedFixture(1)
	author := &user.User{ID: primitive.NewObjectID(), Username: "王老师", Role: consts.RoleTeacher}
	store.users[author.ID.Hex()] = author

	subscriber := &fakeSubscriber{}
	svc := newFeedService(store, subscriber)
	defer svc.Shutdown()

	f, err := svc.openFeed(context.Background(), student.ID.Hex())
	require.NoError(t, err)

	subscriber.streams[0].ch <- makeEvents(author.ID.Hex(), time.Now().Add(-time.Hour), 3)
	require.Eventually(t, func() bool {
		entries, _ := f.snapshot()
		return len(entries) == 3
	}, time.Second, 10*time.Millisecond)

	// 新推送携带完整结果集，整体替换而非追加
	subscriber.streams[0].ch <- makeEvents(author.ID.Hex(), time.Now(), 1)
	require.Eventually(t, func() bool {
		entries, _ := f.snapshot()
		return len(entries) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestFeedWatermark(t *testing.T) {
	store, student := feedFixture(1)
	author := &user.User{ID: primitive.NewObjectID(), Username: "王老师", Role: consts.RoleTeacher}
	store.users[author.ID.Hex()] = author

	base := time.Now().Add(-time.Hour)
	watermark := base.Add(4*time.Minute + 30*time.Second)
	student.LastNotificationReadAt = &watermark

	subscriber := &fakeSubscriber{}
	svc := newFeedService(store, subscriber)
	defer svc.Shutdown()

	f, err := svc.openFeed(context.Background(), student.ID.Hex())
	require.NoError(t, err)

	subscriber.streams[0].ch <- makeEvents(author.ID.Hex(), base, 8)
	require.Eventually(t, func() bool {
		entries, _ := f.snapshot()
		return len(entries) == 8
	}, time.Second, 10*time.Millisecond)

	// 水位线之前的5条不计未读
	_, unread := f.snapshot()
	assert.Equal(t, int64(3), unread)

	f.setWatermark(time.Now())
	entries, unread := f.snapshot()
	assert.Equal(t, int64(0), unread)
	for _, e := range entries {
		assert.False(t, e.Unread)
	}
}

// 同一秒内跨水位线的评论，推送重算与标记已读重算必须给出一致的未读判定
func TestFeedWatermarkSubSecond(t *testing.T) {
	store, student := feedFixture(1)
	author := &user.User{ID: primitive.NewObjectID(), Username: "王老师", Role: consts.RoleTeacher}
	store.users[author.ID.Hex()] = author

	base := time.Now().Add(-time.Hour).Truncate(time.Second)
	watermark := base.Add(300 * time.Millisecond)
	student.LastNotificationReadAt = &watermark

	subscriber := &fakeSubscriber{}
	svc := newFeedService(store, subscriber)
	defer svc.Shutdown()

	f, err := svc.openFeed(context.Background(), student.ID.Hex())
	require.NoError(t, err)

	subscriber.streams[0].ch <- []*subscription.CommentEvent{
		{ID: "comment-before", UserID: author.ID.Hex(), CreateTime: base},
		{ID: "comment-after", UserID: author.ID.Hex(), CreateTime: base.Add(600 * time.Millisecond)},
	}
	require.Eventually(t, func() bool {
		entries, _ := f.snapshot()
		return len(entries) == 2
	}, time.Second, 10*time.Millisecond)

	_, unread := f.snapshot()
	assert.Equal(t, int64(1), unread)

	// 用同一水位线重算，判定不变
	f.setWatermark(watermark)
	entries, unread := f.snapshot()
	assert.Equal(t, int64(1), unread)
	for _, e := range entries {
		assert.Equal(t, e.CommentId == "comment-after", e.Unread)
	}
}

func TestCloseFeedCancelsSubscriptions(t *testing.T) {
	store, student := feedFixture(15)
	subscriber := &fakeSubscriber{}
	svc := newFeedService(store, subscriber)

	_, err := svc.openFeed(context.Background(), student.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, 2, subscriber.subscribeCount())

	// 注销后重新打开会建立新的订阅
	svc.CloseFeed(student.ID.Hex())
	_, err = svc.openFeed(context.Background(), student.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 4, subscriber.subscribeCount())
	svc.Shutdown()
}
