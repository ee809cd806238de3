package main

import (
	"github.com/cloudwego/hertz/pkg/app/server"
	hertztracing "github.com/hertz-contrib/obs-opentelemetry/tracing"
	"github.com/xh-polaris/psych-wellness/biz/adaptor/router"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/config"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/mq"
	"github.com/xh-polaris/psych-wellness/provider"
)

func main() {
	provider.Init()
	c := config.GetConfig()

	tracer, cfg := hertztracing.NewServerTracer()
	h := server.Default(tracer, server.WithHostPorts(c.ListenOn))
	h.Use(hertztracing.ServerMiddleware(cfg))

	router.Register(h)

	// 危机预警消费者, 收到高危消息后发送邮件通知
	go mq.Consume()

	h.Spin()
}
