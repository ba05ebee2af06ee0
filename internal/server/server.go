package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmorgan81/fluxgate/internal/config"
	"github.com/dmorgan81/fluxgate/internal/image"
	"github.com/dmorgan81/fluxgate/internal/log"
	"github.com/dmorgan81/fluxgate/internal/metrics"
	"github.com/dmorgan81/fluxgate/internal/page"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/do"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	cfg       config.Config
	generator image.Generator
	templator *page.Templator
	collector *metrics.Collector
	token     string
}

func New(i *do.Injector) (*Server, error) {
	return &Server{
		cfg:       do.MustInvoke[config.Config](i),
		generator: do.MustInvoke[image.Generator](i),
		templator: do.MustInvoke[*page.Templator](i),
		collector: do.MustInvoke[*metrics.Collector](i),
		token:     do.MustInvokeNamed[string](i, "token"),
	}, nil
}

func (s *Server) Routes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), securityHeaders(), s.measure())

	r.GET("/", s.IndexHandler)
	r.GET("/health", s.HealthHandler)
	r.POST("/generate-image", s.GenerateHandler)
	r.GET("/metrics", gin.WrapH(s.collector.Handler()))

	return r
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.Routes(),
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	log.FromContextOrDiscard(ctx).Info("listening", "addr", s.cfg.Addr)

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return group.Wait()
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		logger := log.FromContextOrDiscard(c.Request.Context()).With("request", id)
		c.Request = c.Request.WithContext(log.NewContext(c.Request.Context(), logger))
		c.Header("X-Request-Id", id)
		c.Next()
	}
}

func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "no-referrer")
		c.Header("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		c.Next()
	}
}

func (s *Server) measure() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		s.collector.ObserveRequest(route, c.Writer.Status(), time.Since(start))
	}
}
