// Package http wires the HTTP transport: repositories, use cases, handlers,
// middleware and routes.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	ticketUC "ticketdesk/internal/application/ticket/usecases"
	userUC "ticketdesk/internal/application/user/usecases"
	"ticketdesk/internal/infrastructure/auth"
	"ticketdesk/internal/infrastructure/classifier"
	"ticketdesk/internal/infrastructure/config"
	"ticketdesk/internal/infrastructure/email"
	"ticketdesk/internal/infrastructure/repository"
	"ticketdesk/internal/interfaces/http/handlers"
	"ticketdesk/internal/interfaces/http/middleware"
	"ticketdesk/internal/interfaces/http/routes"
	"ticketdesk/internal/shared/logger"
)

// Router holds the configured gin engine.
type Router struct {
	engine *gin.Engine
}

// NewRouter builds the full dependency graph from configuration downward and
// registers every route. The classifier service is constructed by the caller
// because model loading can fail at startup.
func NewRouter(cfg *config.Config, db *gorm.DB, classifierService *classifier.Service, log logger.Interface) *Router {
	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	userRepo := repository.NewUserRepository(db, log.Named("repository.user"))
	ticketRepo := repository.NewTicketRepository(db, log.Named("repository.ticket"))

	passwordHasher := auth.NewPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	googleVerifier := auth.NewGoogleTokenVerifier(cfg.Google.ClientID)

	var emailService userUC.EmailService
	if cfg.Email.Enabled() {
		emailService = email.NewSMTPEmailService(cfg.Email)
	} else {
		emailService = email.NewNoopEmailService(log.Named("email"))
	}

	authHandler := handlers.NewAuthHandler(
		userUC.NewRegisterUseCase(userRepo, passwordHasher, log.Named("usecase.register")),
		userUC.NewRegisterAdminUseCase(userRepo, passwordHasher, cfg.Auth.AdminSignupCode, log.Named("usecase.register_admin")),
		userUC.NewLoginUseCase(userRepo, passwordHasher, jwtService, log.Named("usecase.login")),
		userUC.NewGoogleLoginUseCase(userRepo, passwordHasher, googleVerifier, jwtService, log.Named("usecase.google_login")),
		userUC.NewForgotPasswordUseCase(userRepo, emailService, cfg.Auth.Token.ResetExpiresMinutes, log.Named("usecase.forgot_password")),
		userUC.NewResetPasswordUseCase(userRepo, passwordHasher, log.Named("usecase.reset_password")),
		userUC.NewGetCurrentUserUseCase(userRepo, log.Named("usecase.get_current_user")),
		log.Named("handler.auth"),
	)

	ticketHandler := handlers.NewTicketHandler(
		ticketUC.NewCreateTicketUseCase(ticketRepo, classifierService, log.Named("usecase.create_ticket")),
		ticketUC.NewListTicketsUseCase(ticketRepo, log.Named("usecase.list_tickets")),
		ticketUC.NewUpdateTicketStatusUseCase(ticketRepo, log.Named("usecase.update_ticket_status")),
		ticketUC.NewDeleteTicketUseCase(ticketRepo, log.Named("usecase.delete_ticket")),
		log.Named("handler.ticket"),
	)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, userRepo, log.Named("middleware.auth"))

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler:    authHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler:  ticketHandler,
		AuthMiddleware: authMiddleware,
	})

	return &Router{engine: engine}
}

// GetEngine returns the underlying gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
