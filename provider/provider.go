package provider

import (
	"classroom-hub/biz/application/service"
	"classroom-hub/biz/infrastructure/cache"
	"classroom-hub/biz/infrastructure/config"
	"classroom-hub/biz/infrastructure/repository/assignment"
	"classroom-hub/biz/infrastructure/repository/lesson"
	"classroom-hub/biz/infrastructure/repository/submission"
	"classroom-hub/biz/infrastructure/repository/user"
	"classroom-hub/biz/infrastructure/subscription"

	"github.com/google/wire"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config              *config.Config
	UserService         service.IUserService
	AssignmentService   service.IAssignmentService
	SubmissionService   service.ISubmissionService
	LessonService       service.ILessonService
	NotificationService service.INotificationService
	AdminService        service.IAdminService
	MediaService        service.IMediaService
}

func Get() *Provider {
	return provider
}

var ApplicationSet = wire.NewSet(
	service.UserServiceSet,
	service.AssignmentServiceSet,
	service.SubmissionServiceSet,
	service.LessonServiceSet,
	service.NotificationServiceSet,
	service.AdminServiceSet,
	service.MediaServiceSet,
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	user.NewMongoMapper,
	assignment.NewMongoMapper,
	assignment.NewStudentMongoMapper,
	submission.NewMongoMapper,
	submission.NewCommentMongoMapper,
	lesson.NewMongoMapper,
	cache.NewFocusCacheMapper,
	subscription.NewMongoSubscriber,
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)
