package classroom

import (
	"context"

	"classroom-hub/biz/adaptor"
	"classroom-hub/biz/application/dto/classroom/hub"
	"classroom-hub/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// GetNotifications .
// @router /notification/list [GET]
func GetNotifications(ctx context.Context, c *app.RequestContext) {
	var req hub.GetNotificationsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.NotificationService.GetNotifications(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// MarkAllRead .
// @router /notification/read_all [POST]
func MarkAllRead(ctx context.Context, c *app.RequestContext) {
	var req hub.MarkAllReadReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.NotificationService.MarkAllRead(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// CloseFeed 登出或切换账号时注销实时订阅
// @router /notification/close [POST]
func CloseFeed(ctx context.Context, c *app.RequestContext) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() != "" {
		provider.Get().NotificationService.CloseFeed(userMeta.GetUserId())
	}
	adaptor.PostProcess(ctx, c, nil, &hub.Response{Msg: "ok"}, nil)
}

// SetFocusSubmission .
// @router /notification/focus/set [POST]
func SetFocusSubmission(ctx context.Context, c *app.RequestContext) {
	var req hub.SetFocusSubmissionReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.NotificationService.SetFocusSubmission(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// TakeFocusSubmission .
// @router /notification/focus/take [POST]
func TakeFocusSubmission(ctx context.Context, c *app.RequestContext) {
	var req hub.TakeFocusSubmissionReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.NotificationService.TakeFocusSubmission(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
