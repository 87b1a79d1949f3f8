package adaptor

import (
	"context"
	"net/http"

	"classroom-hub/biz/application/dto/classroom/hub"
	"classroom-hub/biz/infrastructure/util"
	"classroom-hub/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"google.golang.org/grpc/status"
)

// PostProcess 统一处理响应，错误时透出Errno的状态码与消息
func PostProcess(ctx context.Context, c *app.RequestContext, req, resp any, err error) {
	log.CtxInfo(ctx, "[%s] req=%s, resp=%s, err=%v", c.Path(), util.JSONF(req), util.JSONF(resp), err)

	if err == nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	s, ok := status.FromError(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, &hub.Response{
			Code: int64(http.StatusInternalServerError),
			Msg:  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, &hub.Response{
		Code: int64(s.Code()),
		Msg:  s.Message(),
	})
}
