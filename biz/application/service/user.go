package service

import (
	"context"
	"errors"
	"time"

	"classroom-hub/biz/adaptor"
	"classroom-hub/biz/application/dto/classroom/hub"
	"classroom-hub/biz/infrastructure/config"
	"classroom-hub/biz/infrastructure/consts"
	"classroom-hub/biz/infrastructure/repository/user"
	"classroom-hub/biz/infrastructure/util"
	"classroom-hub/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IUserService interface {
	SignIn(ctx context.Context, req *hub.SignInReq) (*hub.SignInResp, error)
	SignUp(ctx context.Context, req *hub.SignUpReq) (*hub.SignInResp, error)
	GetUserInfo(ctx context.Context, req *hub.GetUserInfoReq) (*hub.GetUserInfoResp, error)
	UpdateUserInfo(ctx context.Context, req *hub.UpdateUserInfoReq) (*hub.Response, error)
	ListUsers(ctx context.Context, req *hub.ListUsersReq) (*hub.ListUsersResp, error)
	ListStudents(ctx context.Context, req *hub.ListStudentsReq) (*hub.ListUsersResp, error)
	UpdateUserRole(ctx context.Context, req *hub.UpdateUserRoleReq) (*hub.Response, error)
	SetUserDisabled(ctx context.Context, req *hub.SetUserDisabledReq) (*hub.Response, error)
}

type UserService struct {
	UserMapper *user.MongoMapper
}

var UserServiceSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),
)

// platformAuth 中台认证返回的数据段
type platformAuth struct {
	UserId string `mapstructure:"userId"`
	Email  string `mapstructure:"email"`
}

// SignIn 登录，首次登录时创建用户档案
func (s *UserService) SignIn(ctx context.Context, req *hub.SignInReq) (*hub.SignInResp, error) {
	httpClient := util.GetHttpClient()
	signInResponse, err := httpClient.SignIn(ctx, req.Email, req.Password)
	if err != nil || cast.ToFloat64(signInResponse["code"]) != 0 {
		return nil, consts.ErrSignIn
	}
	auth := new(platformAuth)
	if dataMap, ok := signInResponse["data"].(map[string]any); ok {
		if err := mapstructure.Decode(dataMap, auth); err != nil {
			return nil, consts.ErrSignIn
		}
	} else {
		return nil, consts.ErrSignIn
	}
	if auth.Email == "" {
		auth.Email = req.Email
	}

	u, err := s.ensureProfile(ctx, auth.UserId, auth.Email, "")
	if err != nil {
		return nil, err
	}
	if u.Disabled {
		return nil, consts.ErrUserDisabled
	}

	accessToken, accessExpire, err := adaptor.GenerateJwtToken(auth.UserId)
	if err != nil {
		return nil, consts.ErrSignIn
	}

	return &hub.SignInResp{
		Id:           auth.UserId,
		AccessToken:  accessToken,
		AccessExpire: accessExpire,
		Name:         u.Username,
		Role:         u.Role,
	}, nil
}

// SignUp 注册，中台创建认证身份后立即建档
func (s *UserService) SignUp(ctx context.Context, req *hub.SignUpReq) (*hub.SignInResp, error) {
	httpClient := util.GetHttpClient()
	signUpResponse, err := httpClient.SignUp(ctx, req.Email, req.Password, req.FullName)
	if err != nil || cast.ToFloat64(signUpResponse["code"]) != 0 {
		return nil, consts.ErrSignUp
	}
	auth := new(platformAuth)
	if dataMap, ok := signUpResponse["data"].(map[string]any); ok {
		if err := mapstructure.Decode(dataMap, auth); err != nil {
			return nil, consts.ErrSignUp
		}
	} else {
		return nil, consts.ErrSignUp
	}

	u, err := s.ensureProfile(ctx, auth.UserId, req.Email, req.FullName)
	if err != nil {
		return nil, err
	}

	accessToken, accessExpire, err := adaptor.GenerateJwtToken(auth.UserId)
	if err != nil {
		return nil, consts.ErrSignUp
	}

	return &hub.SignInResp{
		Id:           auth.UserId,
		AccessToken:  accessToken,
		AccessExpire: accessExpire,
		Name:         u.Username,
		Role:         u.Role,
	}, nil
}

// ensureProfile 确保档案存在。默认角色为学生，白名单邮箱首次登录即为管理员
func (s *UserService) ensureProfile(ctx context.Context, userId, email, fullName string) (*user.User, error) {
	u, err := s.UserMapper.FindOne(ctx, userId)
	if errors.Is(err, consts.ErrNotFound) || u == nil {
		oid, err2 := primitive.ObjectIDFromHex(userId)
		if err2 != nil {
			return nil, err2
		}
		role := consts.RoleStudent
		if config.GetConfig().IsAdminEmail(email) {
			role = consts.RoleAdmin
		}
		username := fullName
		if username == "" {
			username = consts.DefaultUsername
		}
		now := time.Now()
		u = &user.User{
			ID:         oid,
			Email:      email,
			Username:   username,
			Role:       role,
			CreateTime: now,
			UpdateTime: now,
		}
		if err := s.UserMapper.Insert(ctx, u); err != nil {
			log.Error("创建用户档案失败: %v", err)
			return nil, consts.ErrSignUp
		}
		return u, nil
	} else if err != nil {
		return nil, consts.ErrSignIn
	}
	return u, nil
}

func (s *UserService) GetUserInfo(ctx context.Context, req *hub.GetUserInfoReq) (*hub.GetUserInfoResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	u, err := s.UserMapper.FindOne(ctx, userMeta.GetUserId())
	if err != nil {
		log.Error("获取用户信息失败: %v", err)
		return nil, consts.ErrNotFound
	}

	return &hub.GetUserInfoResp{
		User: toUserInfo(u),
	}, nil
}

func (s *UserService) UpdateUserInfo(ctx context.Context, req *hub.UpdateUserInfoReq) (*hub.Response, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	u, err := s.UserMapper.FindOne(ctx, userMeta.GetUserId())
	if err != nil {
		log.Error("获取用户信息失败: %v", err)
		return nil, consts.ErrNotFound
	}

	u.Username = req.Username
	if err := s.UserMapper.Update(ctx, u); err != nil {
		log.Error("更新用户信息失败: %v", err)
		return nil, consts.ErrUpdateUser
	}
	return &hub.Response{Msg: "更新成功"}, nil
}

// ListUsers 管理员查看全部用户
func (s *UserService) ListUsers(ctx context.Context, req *hub.ListUsersReq) (*hub.ListUsersResp, error) {
	if _, err := s.requireRole(ctx, consts.RoleAdmin); err != nil {
		return nil, err
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

	users, total, err := s.UserMapper.List(ctx, page, pageSize)
	if err != nil {
		log.Error("获取用户列表失败: %v", err)
		return nil, consts.ErrListUsers
	}

	userInfos := make([]*hub.UserInfo, 0, len(users))
	for _, u := range users {
		userInfos = append(userInfos, toUserInfo(u))
	}

	return &hub.ListUsersResp{
		Users: userInfos,
		Total: total,
	}, nil
}

// ListStudents 教师分配作业时查询学生名单
func (s *UserService) ListStudents(ctx context.Context, req *hub.ListStudentsReq) (*hub.ListUsersResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	u, err := s.UserMapper.FindOne(ctx, userMeta.GetUserId())
	if err != nil {
		log.Error("获取用户信息失败: %v", err)
		return nil, consts.ErrNotFound
	}
	if u.Role != consts.RoleTeacher && u.Role != consts.RoleAdmin {
		return nil, consts.ErrForbidden
	}

	students, err := s.UserMapper.FindByRole(ctx, consts.RoleStudent)
	if err != nil {
		log.Error("获取学生列表失败: %v", err)
		return nil, consts.ErrListUsers
	}

	userInfos := make([]*hub.UserInfo, 0, len(students))
	for _, stu := range students {
		userInfos = append(userInfos, toUserInfo(stu))
	}

	return &hub.ListUsersResp{
		Users: userInfos,
		Total: int64(len(userInfos)),
	}, nil
}

// UpdateUserRole 管理员调整角色，不允许修改自己的管理员角色
func (s *UserService) UpdateUserRole(ctx context.Context, req *hub.UpdateUserRoleReq) (*hub.Response, error) {
	admin, err := s.requireRole(ctx, consts.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if admin.ID.Hex() == req.UserId {
		return nil, consts.ErrDemoteSelf
	}

	target, err := s.UserMapper.FindOne(ctx, req.UserId)
	if err != nil {
		log.Error("目标用户不存在: %v", err)
		return nil, consts.ErrNotFound
	}

	target.Role = req.Role
	if err := s.UserMapper.Update(ctx, target); err != nil {
		log.Error("更新用户角色失败: %v", err)
		return nil, consts.ErrUpdateUser
	}
	return &hub.Response{Msg: "角色已更新"}, nil
}

// SetUserDisabled 管理员禁用或恢复账号
func (s *UserService) SetUserDisabled(ctx context.Context, req *hub.SetUserDisabledReq) (*hub.Response, error) {
	admin, err := s.requireRole(ctx, consts.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if admin.ID.Hex() == req.UserId {
		return nil, consts.ErrDemoteSelf
	}

	target, err := s.UserMapper.FindOne(ctx, req.UserId)
	if err != nil {
		log.Error("目标用户不存在: %v", err)
		return nil, consts.ErrNotFound
	}

	target.Disabled = req.Disabled
	if err := s.UserMapper.Update(ctx, target); err != nil {
		log.Error("更新禁用状态失败: %v", err)
		return nil, consts.ErrUpdateUser
	}
	return &hub.Response{Msg: "禁用状态已更新"}, nil
}

// requireRole 校验当前用户角色
func (s *UserService) requireRole(ctx context.Context, role string) (*user.User, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	u, err := s.UserMapper.FindOne(ctx, userMeta.GetUserId())
	if err != nil {
		log.Error("获取用户信息失败: %v", err)
		return nil, consts.ErrNotFound
	}
	if u.Role != role {
		return nil, consts.ErrForbidden
	}
	return u, nil
}

func toUserInfo(u *user.User) *hub.UserInfo {
	info := new(hub.UserInfo)
	if err := copier.Copy(info, u); err != nil {
		log.Error("转换用户信息失败: %v", err)
	}
	info.Id = u.ID.Hex()
	info.CreateTime = u.CreateTime.Unix()
	return info
}
