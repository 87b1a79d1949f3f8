package classroom

import (
	"context"

	"classroom-hub/biz/adaptor"
	"classroom-hub/biz/application/dto/classroom/hub"
	"classroom-hub/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// SubmitAssignment .
// @router /submission/submit [POST]
func SubmitAssignment(ctx context.Context, c *app.RequestContext) {
	var req hub.SubmitAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.SubmissionService.SubmitAssignment(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GradeSubmission .
// @router /submission/grade [POST]
func GradeSubmission(ctx context.Context, c *app.RequestContext) {
	var req hub.GradeSubmissionReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.SubmissionService.GradeSubmission(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetSubmission .
// @router /submission/detail [GET]
func GetSubmission(ctx context.Context, c *app.RequestContext) {
	var req hub.GetSubmissionReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.SubmissionService.GetSubmission(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListSubmissions .
// @router /submission/list [POST]
func ListSubmissions(ctx context.Context, c *app.RequestContext) {
	var req hub.ListSubmissionsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.SubmissionService.ListSubmissions(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// AddComment .
// @router /submission/comment/add [POST]
func AddComment(ctx context.Context, c *app.RequestContext) {
	var req hub.AddCommentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.SubmissionService.AddComment(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListComments .
// @router /submission/comment/list [POST]
func ListComments(ctx context.Context, c *app.RequestContext) {
	var req hub.ListCommentsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.SubmissionService.ListComments(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
