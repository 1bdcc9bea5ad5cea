package server

import (
	"context"
	"net/http"

	"github.com/beyondborder/backend/internal/config"
	"github.com/beyondborder/backend/internal/event"
	"github.com/beyondborder/backend/internal/handler"
	"github.com/beyondborder/backend/internal/mailer"
	appmw "github.com/beyondborder/backend/internal/middleware"
	"github.com/beyondborder/backend/internal/repository"
	"github.com/beyondborder/backend/internal/service"
	"github.com/beyondborder/backend/internal/sse"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

type Server struct {
	e        *echo.Echo
	registry *sse.Registry
}

func New(cfg *config.Config, db *gorm.DB) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{"Content-Type", "Authorization"},
		AllowOrigins: []string{"*"},
	}))

	bus := event.NewBus()
	registry := sse.NewRegistry()
	mail := mailer.New(cfg)

	adminRepo := repository.NewAdminRepository(db)
	authSvc := service.NewAuthService(adminRepo, cfg.JWTSecret)
	authHandler := handler.NewAuthHandler(authSvc)

	pageSvc := service.NewPageService(repository.NewPageRepository(db))
	pageHandler := handler.NewPageHandler(pageSvc)

	contentHandler := handler.NewContentHandler(
		service.NewBreadcrumbService(repository.NewBreadcrumbRepository(db)),
		service.NewTestimonialService(repository.NewTestimonialRepository(db)),
		service.NewTeamService(repository.NewTeamMemberRepository(db)),
		service.NewWhyChooseUsService(repository.NewWhyChooseUsRepository(db)),
		service.NewAboutService(repository.NewAboutUsRepository(db)),
	)

	leadSvc := service.NewLeadService(
		repository.NewContactRepository(db),
		repository.NewConsultantRequestRepository(db),
		repository.NewCommunityMemberRepository(db),
	)
	leadHandler := handler.NewLeadHandler(leadSvc, bus)

	notificationSvc := service.NewNotificationService(
		repository.NewNotificationRepository(db), registry, mail, bus,
	)
	notificationHandler := handler.NewNotificationHandler(notificationSvc, registry)

	uploadHandler := handler.NewUploadHandler(cfg.UploadDir)

	authMw := appmw.NewAuthMiddleware(cfg.JWTSecret)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "true"})
	})
	e.Static("/uploads", cfg.UploadDir)

	api := e.Group("/api")

	// public surface
	api.POST("/auth/login", authHandler.Login)
	api.POST("/contact", leadHandler.CreateContact)
	api.POST("/consultant-requests", leadHandler.CreateConsultantRequest)
	api.POST("/community-members", leadHandler.CreateCommunityMember)
	api.GET("/pages", pageHandler.ListPublic)
	api.GET("/pages/:slug", pageHandler.GetBySlug)
	api.GET("/breadcrumbs", contentHandler.ListBreadcrumbs)
	api.GET("/testimonials", contentHandler.ListTestimonialsPublic)
	api.GET("/team", contentHandler.ListTeam)
	api.GET("/why-choose-us", contentHandler.ListWhyChooseUs)
	api.GET("/about", contentHandler.GetAbout)

	// admin surface
	admin := api.Group("", authMw.RequireAuth)
	admin.GET("/auth/me", authHandler.Me)

	admin.GET("/admin/pages", pageHandler.ListAdmin)
	admin.POST("/pages", pageHandler.Create)
	admin.PUT("/pages/:id", pageHandler.Update)
	admin.DELETE("/pages/:id", pageHandler.Delete)

	admin.POST("/breadcrumbs", contentHandler.CreateBreadcrumb)
	admin.PUT("/breadcrumbs/:id", contentHandler.UpdateBreadcrumb)
	admin.DELETE("/breadcrumbs/:id", contentHandler.DeleteBreadcrumb)

	admin.GET("/admin/testimonials", contentHandler.ListTestimonialsAdmin)
	admin.POST("/testimonials", contentHandler.CreateTestimonial)
	admin.PUT("/testimonials/:id", contentHandler.UpdateTestimonial)
	admin.DELETE("/testimonials/:id", contentHandler.DeleteTestimonial)

	admin.POST("/team", contentHandler.CreateTeamMember)
	admin.PUT("/team/:id", contentHandler.UpdateTeamMember)
	admin.DELETE("/team/:id", contentHandler.DeleteTeamMember)

	admin.POST("/why-choose-us", contentHandler.CreateWhyChooseUs)
	admin.PUT("/why-choose-us/:id", contentHandler.UpdateWhyChooseUs)
	admin.DELETE("/why-choose-us/:id", contentHandler.DeleteWhyChooseUs)

	admin.PUT("/about", contentHandler.UpdateAbout)

	admin.GET("/admin/contacts", leadHandler.ListContacts)
	admin.DELETE("/contacts/:id", leadHandler.DeleteContact)
	admin.GET("/admin/consultant-requests", leadHandler.ListConsultantRequests)
	admin.DELETE("/consultant-requests/:id", leadHandler.DeleteConsultantRequest)
	admin.GET("/admin/community-members", leadHandler.ListCommunityMembers)
	admin.DELETE("/community-members/:id", leadHandler.DeleteCommunityMember)

	admin.GET("/notifications", notificationHandler.List)
	admin.GET("/notifications/unread-count", notificationHandler.UnreadCount)
	admin.GET("/notifications/stream", notificationHandler.Stream)
	admin.GET("/notifications/stats", notificationHandler.Stats)
	admin.PATCH("/notifications/mark-all-read", notificationHandler.MarkAllRead)
	admin.PATCH("/notifications/:id/read", notificationHandler.MarkRead)
	admin.DELETE("/notifications/:id", notificationHandler.Delete)

	admin.POST("/uploads", uploadHandler.Upload)

	return &Server{e: e, registry: registry}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

// RunHeartbeat drives the SSE stale-connection sweep until ctx is canceled.
func (s *Server) RunHeartbeat(ctx context.Context) {
	s.registry.Run(ctx)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.registry.CloseAll()
	return s.e.Shutdown(ctx)
}
