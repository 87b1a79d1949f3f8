package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"classroom-hub/biz/adaptor"
	"classroom-hub/biz/application/dto/classroom/hub"
	"classroom-hub/biz/infrastructure/config"
	"classroom-hub/biz/infrastructure/consts"
	"classroom-hub/biz/infrastructure/repository/assignment"
	"classroom-hub/biz/infrastructure/repository/submission"
	"classroom-hub/biz/infrastructure/repository/user"
	"classroom-hub/biz/infrastructure/util/batch"
	"classroom-hub/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/samber/lo"
)

type IAssignmentService interface {
	CreateAssignment(ctx context.Context, req *hub.CreateAssignmentReq) (*hub.CreateAssignmentResp, error)
	UpdateAssignment(ctx context.Context, req *hub.UpdateAssignmentReq) (*hub.Response, error)
	DeleteAssignment(ctx context.Context, req *hub.DeleteAssignmentReq) (*hub.Response, error)
	GetAssignment(ctx context.Context, req *hub.GetAssignmentReq) (*hub.GetAssignmentResp, error)
	ListAssignments(ctx context.Context, req *hub.ListAssignmentsReq) (*hub.ListAssignmentsResp, error)
	AssignStudents(ctx context.Context, req *hub.AssignStudentsReq) (*hub.AssignStudentsResp, error)
	UnassignStudent(ctx context.Context, req *hub.UnassignStudentReq) (*hub.Response, error)
}

type AssignmentService struct {
	AssignmentMapper *assignment.MongoMapper
	StudentMapper    *assignment.StudentMongoMapper
	SubmissionMapper *submission.MongoMapper
	CommentMapper    *submission.CommentMongoMapper
	UserMapper       *user.MongoMapper
}

var AssignmentServiceSet = wire.NewSet(
	wire.Struct(new(AssignmentService), "*"),
	wire.Bind(new(IAssignmentService), new(*AssignmentService)),
)

// CreateAssignment 教师创建作业
func (s *AssignmentService) CreateAssignment(ctx context.Context, req *hub.CreateAssignmentReq) (*hub.CreateAssignmentResp, error) {
	teacher, err := s.requireTeacher(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	a := &assignment.Assignment{
		Title:       req.Title,
		Description: req.Description,
		TeacherID:   teacher.ID.Hex(),
		Files:       toAssignmentFiles(req.Files),
		DueDate:     time.Unix(req.DueDate, 0),
		CreateTime:  now,
		UpdateTime:  now,
	}

	if err := s.AssignmentMapper.Insert(ctx, a); err != nil {
		log.Error("创建作业失败: %v", err)
		return nil, consts.ErrCreateAssignment
	}

	return &hub.CreateAssignmentResp{
		AssignmentId: a.ID.Hex(),
		ShareUrl:     fmt.Sprintf("%s/assignment/%s", config.GetConfig().Api.AppShareURL, a.ID.Hex()),
	}, nil
}

// UpdateAssignment 教师更新自己的作业
func (s *AssignmentService) UpdateAssignment(ctx context.Context, req *hub.UpdateAssignmentReq) (*hub.Response, error) {
	teacher, err := s.requireTeacher(ctx)
	if err != nil {
		return nil, err
	}

	a, err := s.AssignmentMapper.FindOne(ctx, req.AssignmentId)
	if err != nil {
		log.Error("作业不存在: %v", err)
		return nil, consts.ErrNotFound
	}
	if a.TeacherID != teacher.ID.Hex() {
		return nil, consts.ErrForbidden
	}

	a.Title = req.Title
	a.Description = req.Description
	a.Files = toAssignmentFiles(req.Files)
	a.DueDate = time.Unix(req.DueDate, 0)
	if err := s.AssignmentMapper.Update(ctx, a); err != nil {
		log.Error("更新作业失败: %v", err)
		return nil, consts.ErrUpdateAssignment
	}
	return &hub.Response{Msg: "作业已更新"}, nil
}

// DeleteAssignment 删除作业并清理其下的关联、提交与评论
func (s *AssignmentService) DeleteAssignment(ctx context.Context, req *hub.DeleteAssignmentReq) (*hub.Response, error) {
	teacher, err := s.requireTeacher(ctx)
	if err != nil {
		return nil, err
	}

	a, err := s.AssignmentMapper.FindOne(ctx, req.AssignmentId)
	if err != nil {
		log.Error("作业不存在: %v", err)
		return nil, consts.ErrNotFound
	}
	if a.TeacherID != teacher.ID.Hex() {
		return nil, consts.ErrForbidden
	}

	// 依赖顺序：评论 → 提交 → 关联 → 作业本体
	submissions, err := s.SubmissionMapper.FindByAssignmentID(ctx, req.AssignmentId)
	if err != nil {
		log.Error("获取作业提交失败: %v", err)
		return nil, consts.ErrDeleteAssignment
	}
	submissionIds := lo.Map(submissions, func(sub *submission.Submission, _ int) string {
		return sub.ID.Hex()
	})
	if _, err := batch.CountAll(ctx, submissionIds, s.CommentMapper.DeleteBySubmissionIDs); err != nil {
		log.Error("删除作业评论失败: %v", err)
		return nil, consts.ErrDeleteAssignment
	}
	if _, err := s.SubmissionMapper.DeleteByAssignmentIDs(ctx, []string{req.AssignmentId}); err != nil {
		log.Error("删除作业提交失败: %v", err)
		return nil, consts.ErrDeleteAssignment
	}
	if _, err := s.StudentMapper.DeleteByAssignmentID(ctx, req.AssignmentId); err != nil {
		log.Error("删除作业关联失败: %v", err)
		return nil, consts.ErrDeleteAssignment
	}
	if err := s.AssignmentMapper.Delete(ctx, req.AssignmentId); err != nil {
		log.Error("删除作业失败: %v", err)
		return nil, consts.ErrDeleteAssignment
	}
	return &hub.Response{Msg: "作业已删除"}, nil
}

func (s *AssignmentService) GetAssignment(ctx context.Context, req *hub.GetAssignmentReq) (*hub.GetAssignmentResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	u, err := s.UserMapper.FindOne(ctx, userMeta.GetUserId())
	if err != nil {
		log.Error("获取用户信息失败: %v", err)
		return nil, consts.ErrNotFound
	}

	a, err := s.AssignmentMapper.FindOne(ctx, req.AssignmentId)
	if err != nil {
		log.Error("作业不存在: %v", err)
		return nil, consts.ErrNotFound
	}

	// 学生只能查看分配给自己的作业
	if u.Role == consts.RoleStudent {
		if _, err := s.StudentMapper.FindByAssignmentAndStudent(ctx, req.AssignmentId, u.ID.Hex()); err != nil {
			return nil, consts.ErrNotAssigned
		}
	}

	info, err := s.buildAssignmentInfo(ctx, a, u)
	if err != nil {
		return nil, consts.ErrGetAssignment
	}
	return &hub.GetAssignmentResp{Assignment: info}, nil
}

// ListAssignments 教师看自己的作业及提交统计，学生看分配给自己的作业
func (s *AssignmentService) ListAssignments(ctx context.Context, req *hub.ListAssignmentsReq) (*hub.ListAssignmentsResp, error) {
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

	if u.Role == consts.RoleTeacher {
		assignments, total, err := s.AssignmentMapper.FindByTeacherID(ctx, u.ID.Hex(), page, pageSize)
		if err != nil {
			log.Error("获取作业列表失败: %v", err)
			return nil, consts.ErrListAssignments
		}
		infos := make([]*hub.AssignmentInfo, 0, len(assignments))
		for _, a := range assignments {
			info, err := s.buildAssignmentInfo(ctx, a, u)
			if err != nil {
				log.Error("统计作业提交情况失败: %v", err)
				return nil, consts.ErrListAssignments
			}
			infos = append(infos, info)
		}
		return &hub.ListAssignmentsResp{Assignments: infos, Total: total}, nil
	}

	// 学生端：通过关联记录分批取作业
	links, err := s.StudentMapper.FindByStudentID(ctx, u.ID.Hex())
	if err != nil {
		log.Error("获取作业关联失败: %v", err)
		return nil, consts.ErrListAssignments
	}
	assignmentIds := lo.Map(links, func(l *assignment.AssignmentStudent, _ int) string {
		return l.AssignmentID
	})
	assignments, err := batch.FetchAll(ctx, assignmentIds, s.AssignmentMapper.FindByIDs)
	if err != nil {
		log.Error("获取作业列表失败: %v", err)
		return nil, consts.ErrListAssignments
	}

	infos := make([]*hub.AssignmentInfo, 0, len(assignments))
	for _, a := range assignments {
		info, err := s.buildAssignmentInfo(ctx, a, u)
		if err != nil {
			log.Error("获取作业提交状态失败: %v", err)
			return nil, consts.ErrListAssignments
		}
		infos = append(infos, info)
	}
	return &hub.ListAssignmentsResp{Assignments: infos, Total: int64(len(infos))}, nil
}

// AssignStudents 将作业分配给一组学生，已分配与非学生账号跳过
func (s *AssignmentService) AssignStudents(ctx context.Context, req *hub.AssignStudentsReq) (*hub.AssignStudentsResp, error) {
	teacher, err := s.requireTeacher(ctx)
	if err != nil {
		return nil, err
	}

	a, err := s.AssignmentMapper.FindOne(ctx, req.AssignmentId)
	if err != nil {
		log.Error("作业不存在: %v", err)
		return nil, consts.ErrNotFound
	}
	if a.TeacherID != teacher.ID.Hex() {
		return nil, consts.ErrForbidden
	}

	var assigned, skipped int64
	for _, studentId := range lo.Uniq(req.StudentIds) {
		stu, err := s.UserMapper.FindOne(ctx, studentId)
		if err != nil || stu.Role != consts.RoleStudent {
			skipped++
			continue
		}
		if _, err := s.StudentMapper.FindByAssignmentAndStudent(ctx, req.AssignmentId, studentId); err == nil {
			skipped++
			continue
		}
		link := &assignment.AssignmentStudent{
			AssignmentID: req.AssignmentId,
			StudentID:    studentId,
			AssignTime:   time.Now(),
		}
		if err := s.StudentMapper.Insert(ctx, link); err != nil {
			log.Error("创建作业关联失败: %v", err)
			return nil, consts.ErrAssignStudents
		}
		assigned++
	}

	return &hub.AssignStudentsResp{Assigned: assigned, Skipped: skipped}, nil
}

func (s *AssignmentService) UnassignStudent(ctx context.Context, req *hub.UnassignStudentReq) (*hub.Response, error) {
	teacher, err := s.requireTeacher(ctx)
	if err != nil {
		return nil, err
	}

	a, err := s.AssignmentMapper.FindOne(ctx, req.AssignmentId)
	if err != nil {
		log.Error("作业不存在: %v", err)
		return nil, consts.ErrNotFound
	}
	if a.TeacherID != teacher.ID.Hex() {
		return nil, consts.ErrForbidden
	}

	link, err := s.StudentMapper.FindByAssignmentAndStudent(ctx, req.AssignmentId, req.StudentId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if err := s.StudentMapper.Delete(ctx, link.ID.Hex()); err != nil {
		log.Error("删除作业关联失败: %v", err)
		return nil, consts.ErrAssignStudents
	}
	return &hub.Response{Msg: "已取消分配"}, nil
}

// buildAssignmentInfo 按查看者角色填充统计或个人状态
func (s *AssignmentService) buildAssignmentInfo(ctx context.Context, a *assignment.Assignment, viewer *user.User) (*hub.AssignmentInfo, error) {
	teacherName := ""
	if t, err := s.UserMapper.FindOne(ctx, a.TeacherID); err == nil {
		teacherName = t.Username
	}

	info := &hub.AssignmentInfo{
		Id:          a.ID.Hex(),
		Title:       a.Title,
		Description: a.Description,
		TeacherId:   a.TeacherID,
		TeacherName: teacherName,
		Files:       fromAssignmentFiles(a.Files),
		DueDate:     a.DueDate.Unix(),
		CreateTime:  a.CreateTime.Unix(),
	}

	switch viewer.Role {
	case consts.RoleStudent:
		sub, err := s.SubmissionMapper.FindByStudentAndAssignment(ctx, viewer.ID.Hex(), a.ID.Hex())
		switch {
		case errors.Is(err, consts.ErrNotFound):
			info.MyStatus = ""
		case err != nil:
			return nil, err
		default:
			info.MyStatus = sub.Status
			info.MyGrade = sub.Grade
		}
	default:
		assignedCount, err := s.StudentMapper.CountByAssignmentIDs(ctx, []string{a.ID.Hex()})
		if err != nil {
			return nil, err
		}
		submittedCount, err := s.SubmissionMapper.CountByAssignmentID(ctx, a.ID.Hex(), "")
		if err != nil {
			return nil, err
		}
		gradedCount, err := s.SubmissionMapper.CountByAssignmentID(ctx, a.ID.Hex(), consts.StatusGraded)
		if err != nil {
			return nil, err
		}
		info.AssignedCount = assignedCount
		info.SubmittedCount = submittedCount
		info.GradedCount = gradedCount
	}
	return info, nil
}

func (s *AssignmentService) requireTeacher(ctx context.Context) (*user.User, error) {
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

func toAssignmentFiles(files []*hub.FileInfo) []assignment.AssignmentFile {
	return lo.Map(files, func(f *hub.FileInfo, _ int) assignment.AssignmentFile {
		uploadTime := time.Unix(f.UploadTime, 0)
		if f.UploadTime == 0 {
			uploadTime = time.Now()
		}
		return assignment.AssignmentFile{
			FileURL:     f.FileUrl,
			FileName:    f.FileName,
			Description: f.Description,
			UploadTime:  uploadTime,
		}
	})
}

func fromAssignmentFiles(files []assignment.AssignmentFile) []*hub.FileInfo {
	return lo.Map(files, func(f assignment.AssignmentFile, _ int) *hub.FileInfo {
		return &hub.FileInfo{
			FileUrl:     f.FileURL,
			FileName:    f.FileName,
			Description: f.Description,
			UploadTime:  f.UploadTime.Unix(),
		}
	})
}
