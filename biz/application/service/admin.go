package service

import (
	"context"
	"fmt"

	"classroom-hub/biz/adaptor"
	"classroom-hub/biz/application/dto/classroom/hub"
	"classroom-hub/biz/infrastructure/consts"
	"classroom-hub/biz/infrastructure/repository/assignment"
	"classroom-hub/biz/infrastructure/repository/submission"
	"classroom-hub/biz/infrastructure/repository/user"
	"classroom-hub/biz/infrastructure/util"
	"classroom-hub/biz/infrastructure/util/batch"
	"classroom-hub/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/samber/lo"
	"google.golang.org/grpc/codes"
)

type IAdminService interface {
	GetUserDeleteStats(ctx context.Context, req *hub.GetUserDeleteStatsReq) (*hub.GetUserDeleteStatsResp, error)
	DeleteUserCompletely(ctx context.Context, req *hub.DeleteUserCompletelyReq) (*hub.DeleteUserCompletelyResp, error)
}

// 级联删除依赖的数据访问面，便于在测试中替换
type adminUserMapper interface {
	FindOne(ctx context.Context, id string) (*user.User, error)
	Delete(ctx context.Context, id string) error
}

type adminAssignmentMapper interface {
	FindAllByTeacherID(ctx context.Context, teacherID string) ([]*assignment.Assignment, error)
	CountByTeacherID(ctx context.Context, teacherID string) (int64, error)
	Delete(ctx context.Context, id string) error
}

type adminStudentLinkMapper interface {
	CountByAssignmentIDs(ctx context.Context, assignmentIDs []string) (int64, error)
	CountByStudentID(ctx context.Context, studentID string) (int64, error)
	DeleteByAssignmentID(ctx context.Context, assignmentID string) (int64, error)
	DeleteByStudentID(ctx context.Context, studentID string) (int64, error)
}

type adminSubmissionMapper interface {
	FindByAssignmentIDs(ctx context.Context, assignmentIDs []string) ([]*submission.Submission, error)
	FindByStudentID(ctx context.Context, studentID string) ([]*submission.Submission, error)
	CountByAssignmentIDs(ctx context.Context, assignmentIDs []string) (int64, error)
	CountByStudentID(ctx context.Context, studentID string) (int64, error)
	DeleteByAssignmentIDs(ctx context.Context, assignmentIDs []string) (int64, error)
	DeleteByStudentID(ctx context.Context, studentID string) (int64, error)
}

type adminCommentMapper interface {
	CountBySubmissionIDs(ctx context.Context, submissionIDs []string) (int64, error)
	CountByUserID(ctx context.Context, userID string) (int64, error)
	DeleteBySubmissionIDs(ctx context.Context, submissionIDs []string) (int64, error)
	DeleteByUserID(ctx context.Context, userID string) (int64, error)
}

type identityDeleter interface {
	DeleteIdentity(ctx context.Context, userId string) (map[string]interface{}, error)
}

type AdminService struct {
	UserMapper       adminUserMapper
	AssignmentMapper adminAssignmentMapper
	StudentMapper    adminStudentLinkMapper
	SubmissionMapper adminSubmissionMapper
	CommentMapper    adminCommentMapper
	Identity         identityDeleter
}

var AdminServiceSet = wire.NewSet(
	wire.Struct(new(AdminService), "*"),
	wire.Bind(new(IAdminService), new(*AdminService)),
	wire.Bind(new(adminUserMapper), new(*user.MongoMapper)),
	wire.Bind(new(adminAssignmentMapper), new(*assignment.MongoMapper)),
	wire.Bind(new(adminStudentLinkMapper), new(*assignment.StudentMongoMapper)),
	wire.Bind(new(adminSubmissionMapper), new(*submission.MongoMapper)),
	wire.Bind(new(adminCommentMapper), new(*submission.CommentMongoMapper)),
	wire.Bind(new(identityDeleter), new(*util.HttpClient)),
	util.GetHttpClient,
)

// GetUserDeleteStats 删除确认前统计将被波及的记录数量，只读不写
func (s *AdminService) GetUserDeleteStats(ctx context.Context, req *hub.GetUserDeleteStatsReq) (*hub.GetUserDeleteStatsResp, error) {
	if err := s.requireAdmin(ctx); err != nil {
		return nil, err
	}
	if req.UserId == "" {
		return nil, consts.ErrInvalidArgument
	}

	target, err := s.UserMapper.FindOne(ctx, req.UserId)
	if err != nil {
		return nil, consts.ErrUserNotFound
	}
	return s.computeDeleteStats(ctx, target)
}

// computeDeleteStats 统计将被级联删除的记录数量，调用方负责鉴权
func (s *AdminService) computeDeleteStats(ctx context.Context, target *user.User) (*hub.GetUserDeleteStatsResp, error) {
	resp := &hub.GetUserDeleteStatsResp{UserInfo: toUserInfo(target)}
	userId := target.ID.Hex()
	var err error

	switch target.Role {
	case consts.RoleTeacher:
		assignments, err := s.AssignmentMapper.FindAllByTeacherID(ctx, userId)
		if err != nil {
			log.Error("统计教师作业失败: %v", err)
			return nil, consts.ErrDeleteInternal
		}
		assignmentIds := lo.Map(assignments, func(a *assignment.Assignment, _ int) string {
			return a.ID.Hex()
		})
		resp.Assignments = int64(len(assignments))

		if resp.AssignmentStudents, err = batch.CountAll(ctx, assignmentIds, s.StudentMapper.CountByAssignmentIDs); err != nil {
			log.Error("统计作业分配记录失败: %v", err)
			return nil, consts.ErrDeleteInternal
		}
		if resp.Submissions, err = batch.CountAll(ctx, assignmentIds, s.SubmissionMapper.CountByAssignmentIDs); err != nil {
			log.Error("统计提交记录失败: %v", err)
			return nil, consts.ErrDeleteInternal
		}

		// 评论只存在于提交之下，统计作业名下全部提交的评论即覆盖教师本人的评论
		submissions, err := batch.FetchAll(ctx, assignmentIds, s.SubmissionMapper.FindByAssignmentIDs)
		if err != nil {
			log.Error("查询提交记录失败: %v", err)
			return nil, consts.ErrDeleteInternal
		}
		submissionIds := lo.Map(submissions, func(sub *submission.Submission, _ int) string {
			return sub.ID.Hex()
		})
		if resp.Comments, err = batch.CountAll(ctx, submissionIds, s.CommentMapper.CountBySubmissionIDs); err != nil {
			log.Error("统计评论失败: %v", err)
			return nil, consts.ErrDeleteInternal
		}
	default:
		if resp.AssignmentStudents, err = s.StudentMapper.CountByStudentID(ctx, userId); err != nil {
			log.Error("统计作业分配记录失败: %v", err)
			return nil, consts.ErrDeleteInternal
		}
		if resp.Submissions, err = s.SubmissionMapper.CountByStudentID(ctx, userId); err != nil {
			log.Error("统计提交记录失败: %v", err)
			return nil, consts.ErrDeleteInternal
		}

		// 学生提交之下的评论包含师生双方，全部随删除一并消失
		submissions, err := s.SubmissionMapper.FindByStudentID(ctx, userId)
		if err != nil {
			log.Error("查询提交记录失败: %v", err)
			return nil, consts.ErrDeleteInternal
		}
		submissionIds := lo.Map(submissions, func(sub *submission.Submission, _ int) string {
			return sub.ID.Hex()
		})
		if resp.Comments, err = batch.CountAll(ctx, submissionIds, s.CommentMapper.CountBySubmissionIDs); err != nil {
			log.Error("统计评论失败: %v", err)
			return nil, consts.ErrDeleteInternal
		}
	}

	return resp, nil
}

// DeleteUserCompletely 不可逆地删除用户及其全部关联记录。逐条删除且
// 没有事务，中途失败不回滚，已删除的部分随计数一并返回
func (s *AdminService) DeleteUserCompletely(ctx context.Context, req *hub.DeleteUserCompletelyReq) (*hub.DeleteUserCompletelyResp, error) {
	if err := s.requireAdmin(ctx); err != nil {
		return nil, err
	}
	if req.UserId == "" {
		return nil, consts.ErrInvalidArgument
	}

	target, err := s.UserMapper.FindOne(ctx, req.UserId)
	if err != nil {
		return nil, consts.ErrUserNotFound
	}
	return s.deleteCompletely(ctx, target)
}

// deleteCompletely 按依赖顺序逐类删除，调用方负责鉴权
func (s *AdminService) deleteCompletely(ctx context.Context, target *user.User) (*hub.DeleteUserCompletelyResp, error) {
	userId := target.ID.Hex()
	deleted := new(hub.DeletedData)

	if target.Role == consts.RoleTeacher {
		if err := s.deleteTeacherOwned(ctx, userId, deleted); err != nil {
			log.Error("删除教师关联数据失败: %v", err)
			return nil, s.partialFailure(deleted)
		}
	}
	if target.Role == consts.RoleStudent {
		n, err := s.StudentMapper.DeleteByStudentID(ctx, userId)
		if err != nil {
			log.Error("删除学生分配记录失败: %v", err)
			return nil, s.partialFailure(deleted)
		}
		deleted.AssignmentStudents += n
	}

	if err := s.deleteAuthored(ctx, userId, deleted); err != nil {
		log.Error("删除用户提交与评论失败: %v", err)
		return nil, s.partialFailure(deleted)
	}

	if err := s.UserMapper.Delete(ctx, userId); err != nil {
		log.Error("删除用户档案失败: %v", err)
		return nil, s.partialFailure(deleted)
	}

	// 认证身份删除失败不影响整体结果，仅在消息中提示
	message := "用户已彻底删除"
	if _, err := s.Identity.DeleteIdentity(ctx, userId); err != nil {
		log.Error("删除认证身份失败: %v", err)
		message = "用户数据已删除，但认证身份清理失败，请手动处理"
	} else {
		deleted.AuthIdentity = true
	}

	return &hub.DeleteUserCompletelyResp{
		Success:     true,
		Message:     message,
		DeletedData: deleted,
	}, nil
}

// deleteTeacherOwned 逐个作业先删分配记录再删作业本体，提交与评论按
// 依赖顺序先行清理
func (s *AdminService) deleteTeacherOwned(ctx context.Context, teacherId string, deleted *hub.DeletedData) error {
	assignments, err := s.AssignmentMapper.FindAllByTeacherID(ctx, teacherId)
	if err != nil {
		return err
	}
	assignmentIds := lo.Map(assignments, func(a *assignment.Assignment, _ int) string {
		return a.ID.Hex()
	})

	submissions, err := batch.FetchAll(ctx, assignmentIds, s.SubmissionMapper.FindByAssignmentIDs)
	if err != nil {
		return err
	}
	submissionIds := lo.Map(submissions, func(sub *submission.Submission, _ int) string {
		return sub.ID.Hex()
	})

	n, err := batch.CountAll(ctx, submissionIds, s.CommentMapper.DeleteBySubmissionIDs)
	deleted.Comments += n
	if err != nil {
		return err
	}

	n, err = batch.CountAll(ctx, assignmentIds, s.SubmissionMapper.DeleteByAssignmentIDs)
	deleted.Submissions += n
	if err != nil {
		return err
	}

	for _, assignmentId := range assignmentIds {
		n, err := s.StudentMapper.DeleteByAssignmentID(ctx, assignmentId)
		deleted.AssignmentStudents += n
		if err != nil {
			return err
		}
		if err := s.AssignmentMapper.Delete(ctx, assignmentId); err != nil {
			return err
		}
		deleted.Assignments++
	}
	return nil
}

// deleteAuthored 删除用户自己的提交（连同其下评论）和发表过的评论
func (s *AdminService) deleteAuthored(ctx context.Context, userId string, deleted *hub.DeletedData) error {
	submissions, err := s.SubmissionMapper.FindByStudentID(ctx, userId)
	if err != nil {
		return err
	}
	submissionIds := lo.Map(submissions, func(sub *submission.Submission, _ int) string {
		return sub.ID.Hex()
	})

	n, err := batch.CountAll(ctx, submissionIds, s.CommentMapper.DeleteBySubmissionIDs)
	deleted.Comments += n
	if err != nil {
		return err
	}

	n, err = s.SubmissionMapper.DeleteByStudentID(ctx, userId)
	deleted.Submissions += n
	if err != nil {
		return err
	}

	n, err = s.CommentMapper.DeleteByUserID(ctx, userId)
	deleted.Comments += n
	return err
}

// partialFailure 中途失败时带上已删除的计数，便于人工排查残留
func (s *AdminService) partialFailure(deleted *hub.DeletedData) error {
	return consts.NewErrno(codes.Internal, fmt.Errorf("internal: 删除中断，已删除 %d 个作业、%d 条分配记录、%d 份提交、%d 条评论",
		deleted.Assignments, deleted.AssignmentStudents, deleted.Submissions, deleted.Comments))
}

// requireAdmin 校验调用方已登录且持有管理员角色
func (s *AdminService) requireAdmin(ctx context.Context) error {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return consts.ErrUnauthenticated
	}
	caller, err := s.UserMapper.FindOne(ctx, userMeta.GetUserId())
	if err != nil {
		return consts.ErrUnauthenticated
	}
	if caller.Role != consts.RoleAdmin {
		return consts.ErrPermissionDenied
	}
	return nil
}
