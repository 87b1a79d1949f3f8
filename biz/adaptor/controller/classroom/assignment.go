package classroom

import (
	"context"

	"classroom-hub/biz/adaptor"
	"classroom-hub/biz/application/dto/classroom/hub"
	"classroom-hub/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// CreateAssignment .
// @router /assignment/create [POST]
func CreateAssignment(ctx context.Context, c *app.RequestContext) {
	var req hub.CreateAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AssignmentService.CreateAssignment(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// UpdateAssignment .
// @router /assignment/update [POST]
func UpdateAssignment(ctx context.Context, c *app.RequestContext) {
	var req hub.UpdateAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AssignmentService.UpdateAssignment(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DeleteAssignment .
// @router /assignment/delete [POST]
func DeleteAssignment(ctx context.Context, c *app.RequestContext) {
	var req hub.DeleteAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AssignmentService.DeleteAssignment(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetAssignment .
// @router /assignment/detail [GET]
func GetAssignment(ctx context.Context, c *app.RequestContext) {
	var req hub.GetAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AssignmentService.GetAssignment(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListAssignments .
// @router /assignment/list [POST]
func ListAssignments(ctx context.Context, c *app.RequestContext) {
	var req hub.ListAssignmentsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AssignmentService.ListAssignments(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// AssignStudents .
// @router /assignment/assign [POST]
func AssignStudents(ctx context.Context, c *app.RequestContext) {
	var req hub.AssignStudentsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AssignmentService.AssignStudents(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// UnassignStudent .
// @router /assignment/unassign [POST]
func UnassignStudent(ctx context.Context, c *app.RequestContext) {
	var req hub.UnassignStudentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AssignmentService.UnassignStudent(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
