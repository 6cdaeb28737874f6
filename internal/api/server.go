package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/maxaizer/jobboard/internal/auth"
	"github.com/maxaizer/jobboard/internal/config"
	"github.com/maxaizer/jobboard/internal/services"
	"golang.org/x/time/rate"
)

type Deps struct {
	Config       config.ServerConfig
	AppName      string
	Tokens       *auth.TokenIssuer
	Auth         *auth.Service
	Jobs         *services.JobService
	Applications *services.ApplicationService
}

type Server struct {
	engine *gin.Engine
	http   *http.Server
}

func NewServer(deps Deps) *Server {

	engine := gin.New()
	engine.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = deps.Config.AllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "X-Requested-With", "Content-Type", "Accept", "Authorization"}
	engine.Use(cors.New(corsConfig))

	limiter := rate.NewLimiter(rate.Limit(deps.Config.RequestsPerSecond), deps.Config.RequestsBurst)
	engine.Use(requestMetrics(), rateLimit(limiter), requestTimeout(deps.Config.RequestTimeout))

	userHandler := NewUserHandler(deps.Auth)
	jobHandler := NewJobHandler(deps.Jobs)
	applicationHandler := NewApplicationHandler(deps.Applications)

	engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": deps.AppName + " API is running"})
	})

	authRequired := requireAuth(deps.Tokens)

	apiGroup := engine.Group("/api")
	{
		apiGroup.POST("/users/register", userHandler.Register)
		apiGroup.POST("/users/login", userHandler.Login)

		jobs := apiGroup.Group("/jobs")
		{
			jobs.GET("", jobHandler.List)
			jobs.GET("/:id", jobHandler.Get)
			jobs.POST("", authRequired, jobHandler.Create)
			jobs.GET("/user", authRequired, jobHandler.ListMine)
			jobs.PUT("/:id", authRequired, jobHandler.Update)
			jobs.DELETE("/:id", authRequired, jobHandler.Delete)
		}

		applications := apiGroup.Group("/applications", authRequired)
		{
			applications.POST("", applicationHandler.Apply)
			applications.GET("", applicationHandler.List)
			applications.GET("/:id", applicationHandler.Get)
			applications.PUT("/:id/status", applicationHandler.SetStatus)
		}
	}

	return &Server{
		engine: engine,
		http: &http.Server{
			Addr:    fmt.Sprintf(":%d", deps.Config.Port),
			Handler: engine,
		},
	}
}

func (s *Server) Run() error {
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Handler exposes the routing tree for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}
