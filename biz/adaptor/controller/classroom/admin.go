package classroom

import (
	"context"

	"classroom-hub/biz/adaptor"
	"classroom-hub/biz/application/dto/classroom/hub"
	"classroom-hub/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// GetUserDeleteStats .
// @router /admin/user/delete_stats [GET]
func GetUserDeleteStats(ctx context.Context, c *app.RequestContext) {
	var req hub.GetUserDeleteStatsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AdminService.GetUserDeleteStats(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DeleteUserCompletely .
// @router /admin/user/delete [POST]
func DeleteUserCompletely(ctx context.Context, c *app.RequestContext) {
	var req hub.DeleteUserCompletelyReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AdminService.DeleteUserCompletely(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ApplyUploadUrl .
// @router /media/apply_upload_url [POST]
func ApplyUploadUrl(ctx context.Context, c *app.RequestContext) {
	var req hub.ApplyUploadUrlReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.MediaService.ApplyUploadUrl(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
