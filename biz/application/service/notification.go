package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"classroom-hub/biz/adaptor"
	"classroom-hub/biz/application/dto/classroom/hub"
	"classroom-hub/biz/infrastructure/cache"
	"classroom-hub/biz/infrastructure/consts"
	"classroom-hub/biz/infrastructure/repository/assignment"
	"classroom-hub/biz/infrastructure/repository/submission"
	"classroom-hub/biz/infrastructure/repository/user"
	"classroom-hub/biz/infrastructure/subscription"
	"classroom-hub/biz/infrastructure/util/batch"
	"classroom-hub/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/samber/lo"
)

type INotificationService interface {
	GetNotifications(ctx context.Context, req *hub.GetNotificationsReq) (*hub.GetNotificationsResp, error)
	MarkAllRead(ctx context.Context, req *hub.MarkAllReadReq) (*hub.Response, error)
	SetFocusSubmission(ctx context.Context, req *hub.SetFocusSubmissionReq) (*hub.Response, error)
	TakeFocusSubmission(ctx context.Context, req *hub.TakeFocusSubmissionReq) (*hub.TakeFocusSubmissionResp, error)
	CloseFeed(userId string)
	Shutdown()
}

// 聚合器依赖的数据访问面，便于在测试中替换
type notificationUserMapper interface {
	FindOne(ctx context.Context, id string) (*user.User, error)
	FindByIDs(ctx context.Context, ids []string) ([]*user.User, error)
	UpdateWatermark(ctx context.Context, id string, readAt time.Time) error
}

type notificationAssignmentMapper interface {
	FindAllByTeacherID(ctx context.Context, teacherID string) ([]*assignment.Assignment, error)
}

type notificationSubmissionMapper interface {
	FindByStudentID(ctx context.Context, studentID string) ([]*submission.Submission, error)
	FindByAssignmentIDs(ctx context.Context, assignmentIDs []string) ([]*submission.Submission, error)
}

type NotificationService struct {
	UserMapper       notificationUserMapper
	AssignmentMapper notificationAssignmentMapper
	SubmissionMapper notificationSubmissionMapper
	Subscriber       subscription.Subscriber
	FocusCache       cache.IFocusCacheMapper

	mu    sync.Mutex
	feeds map[string]*notificationFeed
}

var NotificationServiceSet = wire.NewSet(
	wire.Struct(new(NotificationService), "UserMapper", "AssignmentMapper", "SubmissionMapper", "Subscriber", "FocusCache"),
	wire.Bind(new(INotificationService), new(*NotificationService)),
	wire.Bind(new(notificationUserMapper), new(*user.MongoMapper)),
	wire.Bind(new(notificationAssignmentMapper), new(*assignment.MongoMapper)),
	wire.Bind(new(notificationSubmissionMapper), new(*submission.MongoMapper)),
	wire.Bind(new(subscription.Subscriber), new(*subscription.MongoSubscriber)),
	wire.Bind(new(cache.IFocusCacheMapper), new(*cache.FocusCacheMapper)),
)

// notificationFeed 单个用户的通知聚合状态
type notificationFeed struct {
	userId string
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu        sync.Mutex
	batches   map[int][]*subscription.CommentEvent
	authors   map[string]string
	entries   []*hub.NotificationInfo
	unread    int64
	watermark *time.Time
}

// GetNotifications 返回通知面板快照，首次调用时建立实时订阅
func (s *NotificationService) GetNotifications(ctx context.Context, req *hub.GetNotificationsReq) (*hub.GetNotificationsResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	f, err := s.openFeed(ctx, userMeta.GetUserId())
	if err != nil {
		return nil, err
	}

	entries, unread := f.snapshot()
	return &hub.GetNotificationsResp{
		Notifications: entries,
		UnreadCount:   unread,
	}, nil
}

// MarkAllRead 持久化已读水位线并清零未读数。持久化与本地清零之间
// 新到达的评论会在下一次推送时重新计入未读
func (s *NotificationService) MarkAllRead(ctx context.Context, req *hub.MarkAllReadReq) (*hub.Response, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	now := time.Now()
	if err := s.UserMapper.UpdateWatermark(ctx, userMeta.GetUserId(), now); err != nil {
		log.Error("保存已读水位线失败: %v", err)
		return nil, consts.ErrMarkAllRead
	}

	s.mu.Lock()
	f := s.feeds[userMeta.GetUserId()]
	s.mu.Unlock()
	if f != nil {
		f.setWatermark(now)
	}

	return &hub.Response{Msg: "已全部标记为已读"}, nil
}

// SetFocusSubmission 通知跳转前暂存目标提交id
func (s *NotificationService) SetFocusSubmission(ctx context.Context, req *hub.SetFocusSubmissionReq) (*hub.Response, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if err := s.FocusCache.Set(ctx, userMeta.GetUserId(), req.SubmissionId); err != nil {
		log.Error("暂存目标提交失败: %v", err)
		return nil, consts.ErrCall
	}
	return &hub.Response{Msg: "ok"}, nil
}

// TakeFocusSubmission 取出暂存的提交id，读取一次后即清除
func (s *NotificationService) TakeFocusSubmission(ctx context.Context, req *hub.TakeFocusSubmissionReq) (*hub.TakeFocusSubmissionResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	submissionId, err := s.FocusCache.Take(ctx, userMeta.GetUserId())
	if err != nil {
		// 没有暂存值不算错误
		return &hub.TakeFocusSubmissionResp{}, nil
	}
	return &hub.TakeFocusSubmissionResp{SubmissionId: submissionId}, nil
}

// CloseFeed 注销某个用户的全部订阅，用户登出或切换时调用
func (s *NotificationService) CloseFeed(userId string) {
	s.mu.Lock()
	f := s.feeds[userId]
	delete(s.feeds, userId)
	s.mu.Unlock()

	if f != nil {
		f.close()
	}
}

// Shutdown 服务退出时注销全部订阅
func (s *NotificationService) Shutdown() {
	s.mu.Lock()
	feeds := s.feeds
	s.feeds = nil
	s.mu.Unlock()

	for _, f := range feeds {
		f.close()
	}
}

// openFeed 为用户建立聚合状态：按角色解析相关提交id，分批订阅
func (s *NotificationService) openFeed(ctx context.Context, userId string) (*notificationFeed, error) {
	s.mu.Lock()
	if s.feeds == nil {
		s.feeds = make(map[string]*notificationFeed)
	}
	if f, ok := s.feeds[userId]; ok {
		s.mu.Unlock()
		return f, nil
	}
	s.mu.Unlock()

	u, err := s.UserMapper.FindOne(ctx, userId)
	if err != nil {
		log.Error("获取用户信息失败: %v", err)
		return nil, consts.ErrNotFound
	}

	submissionIds, err := s.resolveSubmissionIds(ctx, u)
	if err != nil {
		log.Error("解析相关提交失败: %v", err)
		return nil, consts.ErrOpenFeed
	}

	feedCtx, cancel := context.WithCancel(context.Background())
	f := &notificationFeed{
		userId:    userId,
		cancel:    cancel,
		batches:   make(map[int][]*subscription.CommentEvent),
		authors:   make(map[string]string),
		watermark: u.LastNotificationReadAt,
	}

	// 每个批次一条订阅，单条订阅携带的id数不超过成员查询上限
	for i, chunk := range batch.Chunks(submissionIds) {
		stream, err := s.Subscriber.Subscribe(feedCtx, chunk)
		if err != nil {
			log.Error("建立评论订阅失败: %v", err)
			cancel()
			f.wg.Wait()
			return nil, consts.ErrOpenFeed
		}
		f.wg.Add(1)
		go func(index int, stream subscription.Stream) {
			defer f.wg.Done()
			defer stream.Close()
			for changeSet := range stream.Changes() {
				s.applyBatch(f, index, changeSet)
			}
		}(i, stream)
	}

	s.mu.Lock()
	if s.feeds == nil {
		s.feeds = make(map[string]*notificationFeed)
	}
	if existing, ok := s.feeds[userId]; ok {
		// 并发打开时保留先建立的订阅
		s.mu.Unlock()
		f.close()
		return existing, nil
	}
	s.feeds[userId] = f
	s.mu.Unlock()
	return f, nil
}

// resolveSubmissionIds 学生取自己的提交，教师取名下作业的全部提交
func (s *NotificationService) resolveSubmissionIds(ctx context.Context, u *user.User) ([]string, error) {
	switch u.Role {
	case consts.RoleTeacher:
		assignments, err := s.AssignmentMapper.FindAllByTeacherID(ctx, u.ID.Hex())
		if err != nil {
			return nil, err
		}
		assignmentIds := lo.Map(assignments, func(a *assignment.Assignment, _ int) string {
			return a.ID.Hex()
		})
		submissions, err := batch.FetchAll(ctx, assignmentIds, s.SubmissionMapper.FindByAssignmentIDs)
		if err != nil {
			return nil, err
		}
		return lo.Map(submissions, func(sub *submission.Submission, _ int) string {
			return sub.ID.Hex()
		}), nil
	default:
		submissions, err := s.SubmissionMapper.FindByStudentID(ctx, u.ID.Hex())
		if err != nil {
			return nil, err
		}
		return lo.Map(submissions, func(sub *submission.Submission, _ int) string {
			return sub.ID.Hex()
		}), nil
	}
}

// applyBatch 用一个批次的最新结果集整体替换其本地切片并重建合并视图
func (s *NotificationService) applyBatch(f *notificationFeed, index int, changeSet []*subscription.CommentEvent) {
	// 排除本人发表的评论
	relevant := lo.Filter(changeSet, func(e *subscription.CommentEvent, _ int) bool {
		return e.UserID != f.userId
	})

	// 在锁外解析作者名
	authorIds := lo.Uniq(lo.Map(relevant, func(e *subscription.CommentEvent, _ int) string {
		return e.UserID
	}))
	authorNames := make(map[string]string, len(authorIds))
	authors, err := batch.FetchAll(context.Background(), authorIds, s.UserMapper.FindByIDs)
	if err != nil {
		log.Error("解析评论作者失败: %v", err)
	} else {
		for _, author := range authors {
			authorNames[author.ID.Hex()] = author.Username
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for id, name := range authorNames {
		f.authors[id] = name
	}
	f.batches[index] = relevant
	f.rebuildLocked()
}

// rebuildLocked 合并全部批次，按创建时间降序，只保留最近若干条。
// 未读判定始终在事件原始时间上进行，调用方持有f.mu
func (f *notificationFeed) rebuildLocked() {
	merged := make([]*subscription.CommentEvent, 0)
	for _, events := range f.batches {
		merged = append(merged, events...)
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].CreateTime.After(merged[j].CreateTime)
	})
	if len(merged) > consts.FeedCapacity {
		merged = merged[:consts.FeedCapacity]
	}

	entries := make([]*hub.NotificationInfo, 0, len(merged))
	var unread int64
	for _, e := range merged {
		isUnread := f.watermark == nil || e.CreateTime.After(*f.watermark)
		if isUnread {
			unread++
		}
		entries = append(entries, &hub.NotificationInfo{
			CommentId:    e.ID,
			SubmissionId: e.SubmissionID,
			AuthorId:     e.UserID,
			AuthorName:   f.authors[e.UserID],
			Content:      e.Content,
			CreateTime:   e.CreateTime.Unix(),
			Unread:       isUnread,
		})
	}
	f.entries = entries
	f.unread = unread
}

func (f *notificationFeed) snapshot() ([]*hub.NotificationInfo, int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entries := make([]*hub.NotificationInfo, len(f.entries))
	copy(entries, f.entries)
	return entries, f.unread
}

// setWatermark 更新水位线并基于原始事件时间重算未读
func (f *notificationFeed) setWatermark(readAt time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.watermark = &readAt
	f.rebuildLocked()
}

func (f *notificationFeed) close() {
	f.cancel()
	f.wg.Wait()
}
