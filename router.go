package main

import (
	handler "classroom-hub/biz/adaptor/controller"
	"classroom-hub/biz/adaptor/controller/classroom"

	"github.com/cloudwego/hertz/pkg/app/server"
)

// customizeRegister registers customize routers.
func customizedRegister(r *server.Hertz) {
	r.GET("/ping", handler.Ping)

	user := r.Group("/user")
	{
		user.POST("/sign_in", classroom.SignIn)
		user.POST("/sign_up", classroom.SignUp)
		user.GET("/info", classroom.GetUserInfo)
		user.POST("/update", classroom.UpdateUserInfo)
		user.POST("/list", classroom.ListUsers)
		user.POST("/students", classroom.ListStudents)
		user.POST("/role", classroom.UpdateUserRole)
		user.POST("/disable", classroom.SetUserDisabled)
	}

	assignment := r.Group("/assignment")
	{
		assignment.POST("/create", classroom.CreateAssignment)
		assignment.POST("/update", classroom.UpdateAssignment)
		assignment.POST("/delete", classroom.DeleteAssignment)
		assignment.GET("/detail", classroom.GetAssignment)
		assignment.POST("/list", classroom.ListAssignments)
		assignment.POST("/assign", classroom.AssignStudents)
		assignment.POST("/unassign", classroom.UnassignStudent)
	}

	submission := r.Group("/submission")
	{
		submission.POST("/submit", classroom.SubmitAssignment)
		submission.POST("/grade", classroom.GradeSubmission)
		submission.GET("/detail", classroom.GetSubmission)
		submission.POST("/list", classroom.ListSubmissions)

		comment := submission.Group("/comment")
		comment.POST("/add", classroom.AddComment)
		comment.POST("/list", classroom.ListComments)
	}

	lesson := r.Group("/lesson")
	{
		lesson.POST("/create", classroom.CreateLesson)
		lesson.POST("/update", classroom.UpdateLesson)
		lesson.POST("/delete", classroom.DeleteLesson)
		lesson.POST("/publish", classroom.PublishLesson)
		lesson.GET("/detail", classroom.GetLesson)
		lesson.POST("/list", classroom.ListLessons)
	}

	notification := r.Group("/notification")
	{
		notification.GET("/list", classroom.GetNotifications)
		notification.POST("/read_all", classroom.MarkAllRead)
		notification.POST("/close", classroom.CloseFeed)

		focus := notification.Group("/focus")
		focus.POST("/set", classroom.SetFocusSubmission)
		focus.POST("/take", classroom.TakeFocusSubmission)
	}

	admin := r.Group("/admin")
	{
		admin.GET("/user/delete_stats", classroom.GetUserDeleteStats)
		admin.POST("/user/delete", classroom.DeleteUserCompletely)
	}

	media := r.Group("/media")
	{
		media.POST("/apply_upload_url", classroom.ApplyUploadUrl)
	}
}
