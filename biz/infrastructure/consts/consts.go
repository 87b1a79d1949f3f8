package consts

// 数据库相关
const (
	ID           = "_id"
	UserID       = "user_id"
	StudentID    = "student_id"
	TeacherID    = "teacher_id"
	AssignmentID = "assignment_id"
	SubmissionID = "submission_id"
	Status       = "status"
	Grade        = "grade"
	Feedback     = "feedback"
	GradeTime    = "grade_time"
	Content      = "content"
	FileURL      = "file_url"
	FileName     = "file_name"
	YoutubeURL   = "youtube_url"
	CreateTime   = "create_time"
	IsPublished  = "is_published"
	In           = "$in"
	NotEqual     = "$ne"
	Set          = "$set"
	Unset        = "$unset"
)

// 用户角色
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// 提交状态
const (
	StatusSubmitted = "submitted"
	StatusGraded    = "graded"
)

// 课程类型
const (
	LessonTypeText  = "text"
	LessonTypeFile  = "file"
	LessonTypeVideo = "video"
)

// 成员查询单次最多携带10个id，通知面板只保留最近10条
const (
	QueryBatchSize = 10
	FeedCapacity   = 10
)

// 评分范围
const (
	GradeMin = 0
	GradeMax = 10
)

// http
const (
	Post            = "POST"
	ContentTypeJson = "application/json"
	CharSetUTF8     = "UTF-8"
)

// 默认值
const (
	AppId           = 17
	DefaultUsername = "未设置用户名"
	DefaultPageSize = int64(10)
)
