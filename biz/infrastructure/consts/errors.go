package consts

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Errno struct {
	err  error
	code codes.Code
}

// GRPCStatus 实现 GRPCStatus 方法
func (en *Errno) GRPCStatus() *status.Status {
	return status.New(en.code, en.err.Error())
}

// 实现 Error 方法
func (en *Errno) Error() string {
	return en.err.Error()
}

// NewErrno 创建自定义错误
func NewErrno(code codes.Code, err error) *Errno {
	return &Errno{
		err:  err,
		code: code,
	}
}

// 定义常量错误
var (
	ErrForbidden         = NewErrno(codes.PermissionDenied, errors.New("forbidden"))
	ErrNotAuthentication = NewErrno(codes.Unauthenticated, errors.New("not authentication"))
	ErrSignIn            = NewErrno(codes.Code(1001), errors.New("登录失败，请检查邮箱和密码"))
	ErrSignUp            = NewErrno(codes.Code(1002), errors.New("创建用户档案失败，请重试"))
	ErrUserDisabled      = NewErrno(codes.Code(1003), errors.New("账号已被禁用，请联系管理员"))
	ErrUpdateUser        = NewErrno(codes.Code(1004), errors.New("更新用户信息失败"))
	ErrListUsers         = NewErrno(codes.Code(1005), errors.New("获取用户列表失败"))
	ErrDemoteSelf        = NewErrno(codes.Code(1006), errors.New("不能修改自己的管理员角色"))

	ErrCreateAssignment = NewErrno(codes.Code(1101), errors.New("创建作业失败"))
	ErrUpdateAssignment = NewErrno(codes.Code(1102), errors.New("更新作业失败"))
	ErrDeleteAssignment = NewErrno(codes.Code(1103), errors.New("删除作业失败"))
	ErrGetAssignment    = NewErrno(codes.Code(1104), errors.New("获取作业详情失败"))
	ErrListAssignments  = NewErrno(codes.Code(1105), errors.New("获取作业列表失败"))
	ErrAssignStudents   = NewErrno(codes.Code(1106), errors.New("分配作业失败"))
	ErrNotAssigned      = NewErrno(codes.Code(1107), errors.New("该作业未分配给当前学生"))

	ErrSubmitAssignment = NewErrno(codes.Code(1201), errors.New("提交作业失败"))
	ErrGradeSubmission  = NewErrno(codes.Code(1202), errors.New("批改作业失败"))
	ErrGetSubmission    = NewErrno(codes.Code(1203), errors.New("获取提交详情失败"))
	ErrListSubmissions  = NewErrno(codes.Code(1204), errors.New("获取提交列表失败"))
	ErrInvalidGrade     = NewErrno(codes.InvalidArgument, errors.New("分数必须是0到10之间的整数"))

	ErrAddComment      = NewErrno(codes.Code(1301), errors.New("发表评论失败"))
	ErrListComments    = NewErrno(codes.Code(1302), errors.New("获取评论列表失败"))
	ErrNotThreadMember = NewErrno(codes.Code(1303), errors.New("仅作业师生可以参与讨论"))

	ErrCreateLesson = NewErrno(codes.Code(1401), errors.New("创建课程失败"))
	ErrUpdateLesson = NewErrno(codes.Code(1402), errors.New("更新课程失败"))
	ErrDeleteLesson = NewErrno(codes.Code(1403), errors.New("删除课程失败"))
	ErrGetLesson    = NewErrno(codes.Code(1404), errors.New("获取课程详情失败"))
	ErrListLessons  = NewErrno(codes.Code(1405), errors.New("获取课程列表失败"))

	ErrOpenFeed    = NewErrno(codes.Code(1501), errors.New("打开通知面板失败"))
	ErrMarkAllRead = NewErrno(codes.Code(1502), errors.New("标记已读失败"))

	ErrApplyUploadUrl = NewErrno(codes.Code(1601), errors.New("申请上传地址失败"))
)

// 特权接口错误，对应中台可调用函数的错误码
var (
	ErrUnauthenticated  = NewErrno(codes.Unauthenticated, errors.New("unauthenticated"))
	ErrPermissionDenied = NewErrno(codes.PermissionDenied, errors.New("permission-denied"))
	ErrInvalidArgument  = NewErrno(codes.InvalidArgument, errors.New("invalid-argument"))
	ErrUserNotFound     = NewErrno(codes.NotFound, errors.New("not-found"))
	ErrDeleteInternal   = NewErrno(codes.Internal, errors.New("internal"))
)

// ErrInvalidParams 调用时错误
var (
	ErrInvalidParams = NewErrno(codes.InvalidArgument, errors.New("参数错误"))
	ErrCall          = NewErrno(codes.Unknown, errors.New("调用接口失败，请重试"))
)

// 数据库相关错误
var (
	ErrNotFound        = NewErrno(codes.NotFound, errors.New("not found"))
	ErrInvalidObjectId = NewErrno(codes.InvalidArgument, errors.New("无效的id "))
	ErrUpdate          = NewErrno(codes.Code(2001), errors.New("更新失败"))
)
