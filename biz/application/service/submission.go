package service

import (
	"context"
	"time"

	"classroom-hub/biz/adaptor"
	"classroom-hub/biz/application/dto/classroom/hub"
	"classroom-hub/biz/infrastructure/consts"
	"classroom-hub/biz/infrastructure/repository/assignment"
	"classroom-hub/biz/infrastructure/repository/submission"
	"classroom-hub/biz/infrastructure/repository/user"
	"classroom-hub/biz/infrastructure/util/batch"
	"classroom-hub/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/samber/lo"
)

type ISubmissionService interface {
	SubmitAssignment(ctx context.Context, req *hub.SubmitAssignmentReq) (*hub.SubmitAssignmentResp, error)
	GradeSubmission(ctx context.Context, req *hub.GradeSubmissionReq) (*hub.Response, error)
	GetSubmission(ctx context.Context, req *hub.GetSubmissionReq) (*hub.GetSubmissionResp, error)
	ListSubmissions(ctx context.Context, req *hub.ListSubmissionsReq) (*hub.ListSubmissionsResp, error)
	AddComment(ctx context.Context, req *hub.AddCommentReq) (*hub.AddCommentResp, error)
	ListComments(ctx context.Context, req *hub.ListCommentsReq) (*hub.ListCommentsResp, error)
}

// 提交与批改路径依赖的提交数据访问面，便于在测试中替换
type submissionStoreMapper interface {
	Insert(ctx context.Context, sub *submission.Submission) error
	Update(ctx context.Context, sub *submission.Submission) error
	FindOne(ctx context.Context, id string) (*submission.Submission, error)
	FindByStudentAndAssignment(ctx context.Context, studentID, assignmentID string) (*submission.Submission, error)
}

type SubmissionService struct {
	AssignmentMapper *assignment.MongoMapper
	StudentMapper    *assignment.StudentMongoMapper
	SubmissionMapper submissionStoreMapper
	CommentMapper    *submission.CommentMongoMapper
	UserMapper       *user.MongoMapper
}

var SubmissionServiceSet = wire.NewSet(
	wire.Struct(new(SubmissionService), "*"),
	wire.Bind(new(ISubmissionService), new(*SubmissionService)),
	wire.Bind(new(submissionStoreMapper), new(*submission.MongoMapper)),
)

// SubmitAssignment 学生提交作业。重复提交覆盖此前的附件并重置批改状态
func (s *SubmissionService) SubmitAssignment(ctx context.Context, req *hub.SubmitAssignmentReq) (*hub.SubmitAssignmentResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	u, err := s.UserMapper.FindOne(ctx, userMeta.GetUserId())
	if err != nil {
		log.Error("获取用户信息失败: %v", err)
		return nil, consts.ErrNotFound
	}
	if u.Role != consts.RoleStudent {
		return nil, consts.ErrForbidden
	}

	a, err := s.AssignmentMapper.FindOne(ctx, req.AssignmentId)
	if err != nil {
		log.Error("作业不存在: %v", err)
		return nil, consts.ErrNotFound
	}

	// 校验作业确实分配给了该学生
	if _, err := s.StudentMapper.FindByAssignmentAndStudent(ctx, req.AssignmentId, u.ID.Hex()); err != nil {
		return nil, consts.ErrNotAssigned
	}

	files := lo.Map(req.Files, func(f *hub.FileInfo, _ int) submission.SubmissionFile {
		return submission.SubmissionFile{
			FileURL:    f.FileUrl,
			FileName:   f.FileName,
			UploadTime: time.Now(),
		}
	})

	// 同一(作业,学生)最多一条提交
	existing, err := s.SubmissionMapper.FindByStudentAndAssignment(ctx, u.ID.Hex(), req.AssignmentId)
	if err == nil {
		existing.Files = files
		existing.Status = consts.StatusSubmitted
		existing.Grade = nil
		existing.Feedback = nil
		existing.GradeTime = nil
		existing.SubmitTime = time.Now()
		if err := s.SubmissionMapper.Update(ctx, existing); err != nil {
			log.Error("覆盖提交失败: %v", err)
			return nil, consts.ErrSubmitAssignment
		}
		log.CtxInfo(ctx, "作业重新提交成功 [SubmissionID: %s, StudentID: %s]", existing.ID.Hex(), u.ID.Hex())
		return &hub.SubmitAssignmentResp{SubmissionId: existing.ID.Hex()}, nil
	}

	sub := &submission.Submission{
		AssignmentID: req.AssignmentId,
		StudentID:    u.ID.Hex(),
		TeacherID:    a.TeacherID,
		Files:        files,
		Status:       consts.StatusSubmitted,
	}
	if err := s.SubmissionMapper.Insert(ctx, sub); err != nil {
		log.Error("提交作业失败: %v", err)
		return nil, consts.ErrSubmitAssignment
	}

	log.CtxInfo(ctx, "作业提交成功 [SubmissionID: %s, StudentID: %s, AssignmentID: %s]",
		sub.ID.Hex(), u.ID.Hex(), req.AssignmentId)

	return &hub.SubmitAssignmentResp{SubmissionId: sub.ID.Hex()}, nil
}

// GradeSubmission 作业归属教师批改，分数必须是[0,10]内的整数，越界时不产生任何写入
func (s *SubmissionService) GradeSubmission(ctx context.Context, req *hub.GradeSubmissionReq) (*hub.Response, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	return s.applyGrade(ctx, userMeta.GetUserId(), req)
}

// applyGrade 批改主体，调用方负责鉴权。分数校验先于任何读写，越界直接拒绝
func (s *SubmissionService) applyGrade(ctx context.Context, teacherId string, req *hub.GradeSubmissionReq) (*hub.Response, error) {
	if err := validateGrade(req.Grade); err != nil {
		return nil, err
	}

	sub, err := s.SubmissionMapper.FindOne(ctx, req.SubmissionId)
	if err != nil {
		log.Error("提交不存在: %v", err)
		return nil, consts.ErrNotFound
	}
	if sub.TeacherID != teacherId {
		return nil, consts.ErrForbidden
	}

	now := time.Now()
	grade := req.Grade
	feedback := req.Feedback
	sub.Status = consts.StatusGraded
	sub.Grade = &grade
	sub.Feedback = &feedback
	sub.GradeTime = &now
	if err := s.SubmissionMapper.Update(ctx, sub); err != nil {
		log.Error("保存批改结果失败: %v", err)
		return nil, consts.ErrGradeSubmission
	}

	log.CtxInfo(ctx, "批改完成 [SubmissionID: %s, Grade: %d]", sub.ID.Hex(), grade)
	return &hub.Response{Msg: "批改完成"}, nil
}

func (s *SubmissionService) GetSubmission(ctx context.Context, req *hub.GetSubmissionReq) (*hub.GetSubmissionResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	sub, err := s.SubmissionMapper.FindOne(ctx, req.SubmissionId)
	if err != nil {
		log.Error("提交不存在: %v", err)
		return nil, consts.ErrNotFound
	}

	// 仅归属教师与提交学生可见
	if sub.TeacherID != userMeta.GetUserId() && sub.StudentID != userMeta.GetUserId() {
		return nil, consts.ErrForbidden
	}

	info, err := s.buildSubmissionInfo(ctx, sub)
	if err != nil {
		log.Error("组装提交详情失败: %v", err)
		return nil, consts.ErrGetSubmission
	}
	return &hub.GetSubmissionResp{Submission: info}, nil
}

// ListSubmissions 教师查看某次作业的提交花名册
func (s *SubmissionService) ListSubmissions(ctx context.Context, req *hub.ListSubmissionsReq) (*hub.ListSubmissionsResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	a, err := s.AssignmentMapper.FindOne(ctx, req.AssignmentId)
	if err != nil {
		log.Error("作业不存在: %v", err)
		return nil, consts.ErrNotFound
	}
	if a.TeacherID != userMeta.GetUserId() {
		return nil, consts.ErrForbidden
	}

	links, err := s.StudentMapper.FindByAssignmentID(ctx, req.AssignmentId)
	if err != nil {
		log.Error("获取作业关联失败: %v", err)
		return nil, consts.ErrListSubmissions
	}

	infos := make([]*hub.SubmissionInfo, 0, len(links))
	for _, link := range links {
		stu, err := s.UserMapper.FindOne(ctx, link.StudentID)
		if err != nil {
			log.Error("获取学生信息失败: %v", err)
			return nil, consts.ErrListSubmissions
		}

		info := &hub.SubmissionInfo{
			AssignmentId:    req.AssignmentId,
			AssignmentTitle: a.Title,
			StudentId:       link.StudentID,
			StudentName:     stu.Username,
		}

		sub, err := s.SubmissionMapper.FindByStudentAndAssignment(ctx, link.StudentID, req.AssignmentId)
		switch {
		case err == consts.ErrNotFound:
			info.Status = ""
		case err != nil:
			log.Error("获取学生提交记录失败: %v", err)
			return nil, consts.ErrListSubmissions
		default:
			info.Id = sub.ID.Hex()
			info.Files = fromSubmissionFiles(sub.Files)
			info.Status = sub.Status
			info.Grade = sub.Grade
			info.Feedback = sub.Feedback
			info.SubmitTime = sub.SubmitTime.Unix()
			if sub.GradeTime != nil {
				gradeTime := sub.GradeTime.Unix()
				info.GradeTime = &gradeTime
			}
		}

		infos = append(infos, info)
	}

	return &hub.ListSubmissionsResp{
		Submissions: infos,
		Total:       int64(len(infos)),
	}, nil
}

// AddComment 提交讨论串追加评论，仅归属师生可参与
func (s *SubmissionService) AddComment(ctx context.Context, req *hub.AddCommentReq) (*hub.AddCommentResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	sub, err := s.SubmissionMapper.FindOne(ctx, req.SubmissionId)
	if err != nil {
		log.Error("提交不存在: %v", err)
		return nil, consts.ErrNotFound
	}
	if sub.TeacherID != userMeta.GetUserId() && sub.StudentID != userMeta.GetUserId() {
		return nil, consts.ErrNotThreadMember
	}

	comment := &submission.Comment{
		SubmissionID: req.SubmissionId,
		UserID:       userMeta.GetUserId(),
		Content:      req.Content,
		CreateTime:   time.Now(),
	}
	if err := s.CommentMapper.Insert(ctx, comment); err != nil {
		log.Error("发表评论失败: %v", err)
		return nil, consts.ErrAddComment
	}

	return &hub.AddCommentResp{CommentId: comment.ID.Hex()}, nil
}

func (s *SubmissionService) ListComments(ctx context.Context, req *hub.ListCommentsReq) (*hub.ListCommentsResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	sub, err := s.SubmissionMapper.FindOne(ctx, req.SubmissionId)
	if err != nil {
		log.Error("提交不存在: %v", err)
		return nil, consts.ErrNotFound
	}
	if sub.TeacherID != userMeta.GetUserId() && sub.StudentID != userMeta.GetUserId() {
		return nil, consts.ErrNotThreadMember
	}

	comments, err := s.CommentMapper.FindBySubmissionID(ctx, req.SubmissionId)
	if err != nil {
		log.Error("获取评论列表失败: %v", err)
		return nil, consts.ErrListComments
	}

	// 分批解析评论作者
	authorIds := lo.Uniq(lo.Map(comments, func(c *submission.Comment, _ int) string {
		return c.UserID
	}))
	authors, err := batch.FetchAll(ctx, authorIds, s.UserMapper.FindByIDs)
	if err != nil {
		log.Error("获取评论作者失败: %v", err)
		return nil, consts.ErrListComments
	}
	authorNames := make(map[string]string, len(authors))
	for _, author := range authors {
		authorNames[author.ID.Hex()] = author.Username
	}

	infos := lo.Map(comments, func(c *submission.Comment, _ int) *hub.CommentInfo {
		return &hub.CommentInfo{
			Id:           c.ID.Hex(),
			SubmissionId: c.SubmissionID,
			UserId:       c.UserID,
			UserName:     authorNames[c.UserID],
			Content:      c.Content,
			CreateTime:   c.CreateTime.Unix(),
		}
	})

	return &hub.ListCommentsResp{Comments: infos}, nil
}

func (s *SubmissionService) buildSubmissionInfo(ctx context.Context, sub *submission.Submission) (*hub.SubmissionInfo, error) {
	a, err := s.AssignmentMapper.FindOne(ctx, sub.AssignmentID)
	if err != nil {
		return nil, err
	}
	stu, err := s.UserMapper.FindOne(ctx, sub.StudentID)
	if err != nil {
		return nil, err
	}

	info := &hub.SubmissionInfo{
		Id:              sub.ID.Hex(),
		AssignmentId:    sub.AssignmentID,
		AssignmentTitle: a.Title,
		StudentId:       sub.StudentID,
		StudentName:     stu.Username,
		Files:           fromSubmissionFiles(sub.Files),
		Status:          sub.Status,
		Grade:           sub.Grade,
		Feedback:        sub.Feedback,
		SubmitTime:      sub.SubmitTime.Unix(),
	}
	if sub.GradeTime != nil {
		gradeTime := sub.GradeTime.Unix()
		info.GradeTime = &gradeTime
	}
	return info, nil
}

func validateGrade(grade int64) error {
	if grade < consts.GradeMin || grade > consts.GradeMax {
		return consts.ErrInvalidGrade
	}
	return nil
}

func fromSubmissionFiles(files []submission.SubmissionFile) []*hub.FileInfo {
	return lo.Map(files, func(f submission.SubmissionFile, _ int) *hub.FileInfo {
		return &hub.FileInfo{
			FileUrl:    f.FileURL,
			FileName:   f.FileName,
			UploadTime: f.UploadTime.Unix(),
		}
	})
}
