package main

import (
	"context"

	"classroom-hub/biz/adaptor"
	"classroom-hub/biz/infrastructure/config"
	"classroom-hub/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	prometheus "github.com/hertz-contrib/monitor-prometheus"
	hertztracing "github.com/hertz-contrib/obs-opentelemetry/tracing"
)

func main() {
	provider.Init()
	c := config.GetConfig()

	tracer, cfg := hertztracing.NewServerTracer()
	h := server.New(
		server.WithHostPorts(c.ListenOn),
		server.WithTracer(prometheus.NewServerTracer(":9091", "/metrics")),
		tracer,
	)
	h.Use(hertztracing.ServerMiddleware(cfg))
	h.Use(func(ctx context.Context, c *app.RequestContext) {
		ctx = adaptor.InjectContext(ctx, c)
		c.Next(ctx)
	})

	h.OnShutdown = append(h.OnShutdown, func(ctx context.Context) {
		provider.Get().NotificationService.Shutdown()
	})

	customizedRegister(h)
	h.Spin()
}
