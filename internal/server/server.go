package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/salescope/internal/config"
	"github.com/smallbiznis/salescope/internal/insight"
	insightdomain "github.com/smallbiznis/salescope/internal/insight/domain"
	"github.com/smallbiznis/salescope/internal/observability"
	obsmiddleware "github.com/smallbiznis/salescope/internal/observability/logger"
	"github.com/smallbiznis/salescope/internal/report"
	reportdomain "github.com/smallbiznis/salescope/internal/report/domain"
	"github.com/smallbiznis/salescope/internal/warehouse"
	"go.uber.org/fx"
)

var Module = fx.Module("http.server",
	warehouse.Module,
	report.Module,
	insight.Module,
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(registerRoutes),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine     *gin.Engine
	cfg        config.Config
	reportSvc  reportdomain.Service
	insightSvc insightdomain.Service
}

type ServerParams struct {
	fx.In

	Gin        *gin.Engine
	Cfg        config.Config
	ReportSvc  reportdomain.Service
	InsightSvc insightdomain.Service
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:     p.Gin,
		cfg:        p.Cfg,
		reportSvc:  p.ReportSvc,
		insightSvc: p.InsightSvc,
	}
}

func registerRoutes(s *Server) {
	s.RegisterAPIRoutes()
}

// RegisterAPIRoutes mounts the report and insight endpoints under /api.
func (s *Server) RegisterAPIRoutes() {
	api := s.engine.Group("/api")

	reports := api.Group("/reports")
	reports.GET("/products", s.GetProductReports)
	reports.GET("/customers", s.GetCustomerReports)

	insights := api.Group("/insights")
	insights.GET("/products/top", s.GetTopProducts)
	insights.GET("/products/bottom", s.GetBottomProducts)
	insights.GET("/products/performance", s.GetProductPerformance)
	insights.GET("/customers/top", s.GetTopCustomers)
	insights.GET("/customers/fewest-orders", s.GetCustomersByFewestOrders)
	insights.GET("/sales/yearly", s.GetYearlySales)
	insights.GET("/sales/monthly", s.GetMonthlySales)
	insights.GET("/sales/running", s.GetRunningYearlySales)
	insights.GET("/categories/share", s.GetCategoryShare)
}
