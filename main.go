package main

import (
	"class-booking/biz/infrastructure/util/log"
	"class-booking/provider"
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	prometheus "github.com/hertz-contrib/monitor-prometheus"
	"github.com/hertz-contrib/obs-opentelemetry/tracing"
	"github.com/zeromicro/go-zero/core/logx"
	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

const exitWaitTime = 5 * time.Second

func main() {
	provider.Init()
	p := provider.Get()
	c := p.Config

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
		b3.New(),
	))
	tracer, cfg := tracing.NewServerTracer()

	h := server.Default(
		server.WithHostPorts(c.ListenOn),
		server.WithExitWaitTime(exitWaitTime),
		server.WithTracer(prometheus.NewServerTracer(c.Monitor.Addr, c.Monitor.Path)),
		tracer,
	)
	h.Use(tracing.ServerMiddleware(cfg))
	h.OnShutdown = append(h.OnShutdown, func(ctx context.Context) {
		log.Info("server shutting down")
		if err := p.Close(ctx); err != nil {
			log.Error("disconnect mongo failed: %v", err)
		}
		_ = logx.Close()
	})

	customizedRegister(h, p)
	log.Info("listening on %s", c.ListenOn)
	h.Spin()
}
