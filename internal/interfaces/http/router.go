package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authusecases "devdesk/internal/application/auth/usecases"
	profileusecases "devdesk/internal/application/profile/usecases"
	projectusecases "devdesk/internal/application/project/usecases"
	ticketusecases "devdesk/internal/application/ticket/usecases"
	"devdesk/internal/infrastructure/auth"
	"devdesk/internal/infrastructure/config"
	"devdesk/internal/infrastructure/repository"
	authhandlers "devdesk/internal/interfaces/http/handlers/auth"
	profilehandlers "devdesk/internal/interfaces/http/handlers/profile"
	projecthandlers "devdesk/internal/interfaces/http/handlers/project"
	tickethandlers "devdesk/internal/interfaces/http/handlers/ticket"
	"devdesk/internal/interfaces/http/middleware"
	"devdesk/internal/interfaces/http/routes"
	"devdesk/internal/shared/logger"
)

// Router wires repositories, use cases and handlers into a gin engine.
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	logger logger.Interface

	authHandler    *authhandlers.AuthHandler
	profileHandler *profilehandlers.ProfileHandler
	projectHandler *projecthandlers.ProjectHandler
	ticketHandler  *tickethandlers.TicketHandler
	authMiddleware *middleware.AuthMiddleware
}

func NewRouter(cfg *config.Config, db *gorm.DB, log logger.Interface) *Router {
	gin.SetMode(ginMode(cfg.Server.Mode))

	r := &Router{
		engine: gin.New(),
		cfg:    cfg,
		logger: log,
	}

	r.wireHandlers(db)
	r.setupRoutes()

	return r
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

func (r *Router) wireHandlers(db *gorm.DB) {
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	jwtService := auth.NewJWTService(
		r.cfg.Auth.JWT.Secret,
		r.cfg.Auth.JWT.AccessExpMinutes,
		r.cfg.Auth.JWT.RefreshExpDays,
	)
	hasher := auth.NewBcryptPasswordHasher(r.cfg.Auth.Password.BcryptCost)

	jwtAdapter := &jwtServiceAdapter{jwtService}

	r.authHandler = authhandlers.NewAuthHandler(
		authusecases.NewSignupUseCase(userRepo, hasher, jwtAdapter, r.logger),
		authusecases.NewLoginUseCase(userRepo, hasher, jwtAdapter, r.logger),
		r.logger,
	)

	r.profileHandler = profilehandlers.NewProfileHandler(
		profileusecases.NewCreateProfileUseCase(profileRepo, r.logger),
		profileusecases.NewGetProfileUseCase(profileRepo, r.logger),
		profileusecases.NewListProfilesUseCase(profileRepo, r.logger),
		profileusecases.NewUpdateProfileUseCase(profileRepo, r.logger),
		profileusecases.NewDeleteProfileUseCase(profileRepo, r.logger),
		r.logger,
	)

	r.projectHandler = projecthandlers.NewProjectHandler(
		projectusecases.NewCreateProjectUseCase(projectRepo, r.logger),
		projectusecases.NewListProjectsUseCase(projectRepo, r.logger),
		projectusecases.NewGetProjectUseCase(projectRepo, r.logger),
		projectusecases.NewUpdateProjectUseCase(projectRepo, r.logger),
		projectusecases.NewDeleteProjectUseCase(projectRepo, r.logger),
		r.logger,
	)

	r.ticketHandler = tickethandlers.NewTicketHandler(
		ticketusecases.NewCreateTicketUseCase(ticketRepo, projectRepo, r.logger),
		ticketusecases.NewListTicketsUseCase(ticketRepo, projectRepo, r.logger),
		ticketusecases.NewGetTicketUseCase(ticketRepo, projectRepo, r.logger),
		ticketusecases.NewUpdateTicketUseCase(ticketRepo, projectRepo, r.logger),
		ticketusecases.NewDeleteTicketUseCase(ticketRepo, projectRepo, r.logger),
		ticketusecases.NewAddCommentUseCase(commentRepo, ticketRepo, r.logger),
		ticketusecases.NewListCommentsUseCase(commentRepo, ticketRepo, r.logger),
		ticketusecases.NewDeleteCommentUseCase(commentRepo, ticketRepo, r.logger),
		ticketusecases.NewRecordActivityUseCase(activityRepo, ticketRepo, r.logger),
		ticketusecases.NewListActivitiesUseCase(activityRepo, ticketRepo, r.logger),
		ticketusecases.NewDeleteActivityUseCase(activityRepo, ticketRepo, r.logger),
		r.logger,
	)

	r.authMiddleware = middleware.NewAuthMiddleware(jwtService, r.logger)
}

func (r *Router) setupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", r.healthCheck)

	api := r.engine.Group("/api/v1")

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler: r.authHandler,
	})
	routes.SetupProfileRoutes(api, &routes.ProfileRouteConfig{
		ProfileHandler: r.profileHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupProjectRoutes(api, &routes.ProjectRouteConfig{
		ProjectHandler: r.projectHandler,
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

func (r *Router) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "devdesk",
	})
}

// Handler exposes the underlying engine for the HTTP server.
func (r *Router) Handler() http.Handler {
	return r.engine
}
