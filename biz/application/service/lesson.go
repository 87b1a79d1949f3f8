package service

import (
	"context"
	"time"

	"classroom-hub/biz/adaptor"
	"classroom-hub/biz/application/dto/classroom/hub"
	"classroom-hub/biz/infrastructure/consts"
	"classroom-hub/biz/infrastructure/repository/lesson"
	"classroom-hub/biz/infrastructure/repository/user"
	"classroom-hub/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
)

type ILessonService interface {
	CreateLesson(ctx context.Context, req *hub.CreateLessonReq) (*hub.CreateLessonResp, error)
	UpdateLesson(ctx context.Context, req *hub.UpdateLessonReq) (*hub.Response, error)
	DeleteLesson(ctx context.Context, req *hub.DeleteLessonReq) (*hub.Response, error)
	PublishLesson(ctx context.Context, req *hub.PublishLessonReq) (*hub.Response, error)
	GetLesson(ctx context.Context, req *hub.GetLessonReq) (*hub.GetLessonResp, error)
	ListLessons(ctx context.Context, req *hub.ListLessonsReq) (*hub.ListLessonsResp, error)
}

type LessonService struct {
	LessonMapper *lesson.MongoMapper
	UserMapper   *user.MongoMapper
}

var LessonServiceSet = wire.NewSet(
	wire.Struct(new(LessonService), "*"),
	wire.Bind(new(ILessonService), new(*LessonService)),
)

// CreateLesson 教师创建课程，默认未发布
func (s *LessonService) CreateLesson(ctx context.Context, req *hub.CreateLessonReq) (*hub.CreateLessonResp, error) {
	teacher, err := s.requireTeacher(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	l := &lesson.Lesson{
		TeacherID:   teacher.ID.Hex(),
		Title:       req.Title,
		Description: req.Description,
		LessonType:  req.LessonType,
		Content:     req.Content,
		FileURL:     req.FileUrl,
		FileName:    req.FileName,
		YoutubeURL:  req.YoutubeUrl,
		CreateTime:  now,
		UpdateTime:  now,
	}
	if err := s.LessonMapper.Insert(ctx, l); err != nil {
		log.Error("创建课程失败: %v", err)
		return nil, consts.ErrCreateLesson
	}
	return &hub.CreateLessonResp{LessonId: l.ID.Hex()}, nil
}

func (s *LessonService) UpdateLesson(ctx context.Context, req *hub.UpdateLessonReq) (*hub.Response, error) {
	teacher, err := s.requireTeacher(ctx)
	if err != nil {
		return nil, err
	}

	l, err := s.LessonMapper.FindOne(ctx, req.LessonId)
	if err != nil {
		log.Error("课程不存在: %v", err)
		return nil, consts.ErrNotFound
	}
	if l.TeacherID != teacher.ID.Hex() {
		return nil, consts.ErrForbidden
	}

	l.Title = req.Title
	l.Description = req.Description
	l.LessonType = req.LessonType
	l.Content = req.Content
	l.FileURL = req.FileUrl
	l.FileName = req.FileName
	l.YoutubeURL = req.YoutubeUrl
	if err := s.LessonMapper.Update(ctx, l); err != nil {
		log.Error("更新课程失败: %v", err)
		return nil, consts.ErrUpdateLesson
	}
	return &hub.Response{Msg: "课程已更新"}, nil
}

func (s *LessonService) DeleteLesson(ctx context.Context, req *hub.DeleteLessonReq) (*hub.Response, error) {
	teacher, err := s.requireTeacher(ctx)
	if err != nil {
		return nil, err
	}

	l, err := s.LessonMapper.FindOne(ctx, req.LessonId)
	if err != nil {
		log.Error("课程不存在: %v", err)
		return nil, consts.ErrNotFound
	}
	if l.TeacherID != teacher.ID.Hex() {
		return nil, consts.ErrForbidden
	}

	if err := s.LessonMapper.Delete(ctx, req.LessonId); err != nil {
		log.Error("删除课程失败: %v", err)
		return nil, consts.ErrDeleteLesson
	}
	return &hub.Response{Msg: "课程已删除"}, nil
}

// PublishLesson 发布后对全部学生可见
func (s *LessonService) PublishLesson(ctx context.Context, req *hub.PublishLessonReq) (*hub.Response, error) {
	teacher, err := s.requireTeacher(ctx)
	if err != nil {
		return nil, err
	}

	l, err := s.LessonMapper.FindOne(ctx, req.LessonId)
	if err != nil {
		log.Error("课程不存在: %v", err)
		return nil, consts.ErrNotFound
	}
	if l.TeacherID != teacher.ID.Hex() {
		return nil, consts.ErrForbidden
	}

	l.IsPublished = req.IsPublished
	if err := s.LessonMapper.Update(ctx, l); err != nil {
		log.Error("更新发布状态失败: %v", err)
		return nil, consts.ErrUpdateLesson
	}
	return &hub.Response{Msg: "发布状态已更新"}, nil
}

func (s *LessonService) GetLesson(ctx context.Context, req *hub.GetLessonReq) (*hub.GetLessonResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	u, err := s.UserMapper.FindOne(ctx, userMeta.GetUserId())
	if err != nil {
		log.Error("获取用户信息失败: %v", err)
		return nil, consts.ErrNotFound
	}

	l, err := s.LessonMapper.FindOne(ctx, req.LessonId)
	if err != nil {
		log.Error("课程不存在: %v", err)
		return nil, consts.ErrNotFound
	}

	// 学生只能查看已发布课程
	if u.Role == consts.RoleStudent && !l.IsPublished {
		return nil, consts.ErrForbidden
	}

	return &hub.GetLessonResp{Lesson: s.toLessonInfo(ctx, l)}, nil
}

// ListLessons 教师看自己的全部课程（含草稿），学生看全部已发布课程
func (s *LessonService) ListLessons(ctx context.Context, req *hub.ListLessonsReq) (*hub.ListLessonsResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	u, err := s.UserMapper.FindOne(ctx, userMeta.GetUserId())
	if err != nil {
		log.Error("获取用户信息失败: %v", err)
		return nil, consts.ErrNotFound
	}

	page := int64(1)
	pageSize := consts.DefaultPageSize
	if req.PaginationOptions != nil {
		if req.PaginationOptions.Page != nil {
			page = *req.PaginationOptions.Page
		}
		if req.PaginationOptions.Limit != nil {
			pageSize = *req.PaginationOptions.Limit
		}
	}

	var lessons []*lesson.Lesson
	var total int64
	if u.Role == consts.RoleTeacher {
		lessons, total, err = s.LessonMapper.FindByTeacherID(ctx, u.ID.Hex(), page, pageSize)
	} else {
		lessons, total, err = s.LessonMapper.FindPublished(ctx, page, pageSize)
	}
	if err != nil {
		log.Error("获取课程列表失败: %v", err)
		return nil, consts.ErrListLessons
	}

	infos := make([]*hub.LessonInfo, 0, len(lessons))
	for _, l := range lessons {
		infos = append(infos, s.toLessonInfo(ctx, l))
	}
	return &hub.ListLessonsResp{Lessons: infos, Total: total}, nil
}

func (s *LessonService) toLessonInfo(ctx context.Context, l *lesson.Lesson) *hub.LessonInfo {
	info := new(hub.LessonInfo)
	if err := copier.Copy(info, l); err != nil {
		log.Error("转换课程信息失败: %v", err)
	}
	info.Id = l.ID.Hex()
	info.FileUrl = l.FileURL
	info.YoutubeUrl = l.YoutubeURL
	info.CreateTime = l.CreateTime.Unix()
	info.UpdateTime = l.UpdateTime.Unix()
	if t, err := s.UserMapper.FindOne(ctx, l.TeacherID); err == nil {
		info.TeacherName = t.Username
	}
	return info
}

func (s *LessonService) requireTeacher(ctx context.Context) (*user.User, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	u, err := s.UserMapper.FindOne(ctx, userMeta.GetUserId())
	if err != nil {
		log.Error("获取用户信息失败: %v", err)
		return nil, consts.ErrNotFound
	}
	if u.Role != consts.RoleTeacher {
		return nil, consts.ErrForbidden
	}
	return u, nil
}
