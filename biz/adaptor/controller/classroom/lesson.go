package classroom

import (
	"context"

	"classroom-hub/biz/adaptor"
	"classroom-hub/biz/application/dto/classroom/hub"
	"classroom-hub/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// CreateLesson .
// @router /lesson/create [POST]
func CreateLesson(ctx context.Context, c *app.RequestContext) {
	var req hub.CreateLessonReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.LessonService.CreateLesson(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// UpdateLesson .
// @router /lesson/update [POST]
func UpdateLesson(ctx context.Context, c *app.RequestContext) {
	var req hub.UpdateLessonReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.LessonService.UpdateLesson(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DeleteLesson .
// @router /lesson/delete [POST]
func DeleteLesson(ctx context.Context, c *app.RequestContext) {
	var req hub.DeleteLessonReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.LessonService.DeleteLesson(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// PublishLesson .
// @router /lesson/publish [POST]
func PublishLesson(ctx context.Context, c *app.RequestContext) {
	var req hub.PublishLessonReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.LessonService.PublishLesson(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetLesson .
// @router /lesson/detail [GET]
func GetLesson(ctx context.Context, c *app.RequestContext) {
	var req hub.GetLessonReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.LessonService.GetLesson(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListLessons .
// @router /lesson/list [POST]
func ListLessons(ctx context.Context, c *app.RequestContext) {
	var req hub.ListLessonsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.LessonService.ListLessons(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
