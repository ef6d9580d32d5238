package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	articleusecases "github.com/resolvia-inc/resolvia/internal/application/article/usecases"
	"github.com/resolvia-inc/resolvia/internal/application/notification"
	ticketusecases "github.com/resolvia-inc/resolvia/internal/application/ticket/usecases"
	"github.com/resolvia-inc/resolvia/internal/domain/authz"
	"github.com/resolvia-inc/resolvia/internal/domain/shared/events"
	"github.com/resolvia-inc/resolvia/internal/infrastructure/auth"
	"github.com/resolvia-inc/resolvia/internal/infrastructure/config"
	"github.com/resolvia-inc/resolvia/internal/infrastructure/email"
	"github.com/resolvia-inc/resolvia/internal/infrastructure/prediction"
	"github.com/resolvia-inc/resolvia/internal/infrastructure/ratelimit"
	"github.com/resolvia-inc/resolvia/internal/infrastructure/repository"
	"github.com/resolvia-inc/resolvia/internal/infrastructure/services"
	"github.com/resolvia-inc/resolvia/internal/infrastructure/storage"
	articlehandlers "github.com/resolvia-inc/resolvia/internal/interfaces/http/handlers/article"
	tickethandlers "github.com/resolvia-inc/resolvia/internal/interfaces/http/handlers/ticket"
	"github.com/resolvia-inc/resolvia/internal/interfaces/http/middleware"
	"github.com/resolvia-inc/resolvia/internal/interfaces/http/routes"
	"github.com/resolvia-inc/resolvia/internal/shared/db"
	"github.com/resolvia-inc/resolvia/internal/shared/logger"
	"github.com/resolvia-inc/resolvia/internal/shared/services/markdown"
)

// Router owns the gin engine and the long-lived collaborators that need an
// explicit shutdown.
type Router struct {
	engine      *gin.Engine
	dispatcher  *events.InMemoryEventDispatcher
	redisClient *redis.Client

	ticketHandler     *tickethandlers.TicketHandler
	responseHandler   *tickethandlers.ResponseHandler
	attachmentHandler *tickethandlers.AttachmentHandler
	articleHandler    *articlehandlers.ArticleHandler
	authMiddleware    *middleware.AuthMiddleware

	log logger.Interface
}

// NewRouter wires repositories, use cases, and handlers onto a fresh engine.
// The event dispatcher is started here; callers must Shutdown when done.
func NewRouter(gormDB *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	// Persistence
	ticketRepo := repository.NewTicketRepository(gormDB)
	responseRepo := repository.NewResponseRepository(gormDB)
	attachmentRepo := repository.NewAttachmentRepository(gormDB)
	articleRepo := repository.NewArticleRepository(gormDB)
	articleCategoryRepo := repository.NewArticleCategoryRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	areaRepo := repository.NewAreaRepository(gormDB)
	followRepo := repository.NewFollowRepository(gormDB)
	roleRepo := repository.NewRoleRepository(gormDB)
	userDirectory := repository.NewUserDirectory(gormDB)
	companyDirectory := repository.NewCompanyDirectory(gormDB)

	txMgr := db.NewTransactionManager(gormDB)

	// Domain services
	visibility := authz.NewVisibilityResolver(followRepo)
	codeGenerator := services.NewTicketCodeGenerator(gormDB)
	renderer := markdown.NewRenderer()
	fileStorage := storage.NewLocalFileStorage(cfg.Storage.BasePath)

	var areaPredictor ticketusecases.AreaPredictor
	if cfg.Prediction.Enabled {
		areaPredictor = prediction.NewHTTPAreaPredictor(
			cfg.Prediction.Endpoint,
			cfg.Prediction.APIKey,
			time.Duration(cfg.Prediction.TimeoutSeconds)*time.Second,
			areaRepo,
			log,
		)
	} else {
		areaPredictor = prediction.NewNoopAreaPredictor()
	}

	// Notification fan-out
	dispatcher := events.NewInMemoryEventDispatcher(256)
	if err := dispatcher.Start(); err != nil {
		return nil, fmt.Errorf("failed to start event dispatcher: %w", err)
	}

	emailService := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.Host,
		Port:        cfg.Email.Port,
		Username:    cfg.Email.Username,
		Password:    cfg.Email.Password,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		BaseURL:     cfg.Email.BaseURL,
	})

	ticketEmails := notification.NewTicketEmailHandler(emailService, userDirectory, log)
	if err := ticketEmails.Subscribe(dispatcher); err != nil {
		return nil, fmt.Errorf("failed to subscribe ticket email handler: %w", err)
	}
	articleEmails := notification.NewArticleEmailHandler(emailService, userDirectory, companyDirectory, log)
	if err := articleEmails.Subscribe(dispatcher); err != nil {
		return nil, fmt.Errorf("failed to subscribe article email handler: %w", err)
	}

	// Ticket use cases
	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, categoryRepo, areaRepo, codeGenerator, areaPredictor, txMgr, dispatcher, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, responseRepo, attachmentRepo, visibility, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, visibility, log)
	updateTicketUC := ticketusecases.NewUpdateTicketUseCase(ticketRepo, categoryRepo, areaRepo, visibility, log)
	deleteTicketUC := ticketusecases.NewDeleteTicketUseCase(ticketRepo, responseRepo, attachmentRepo, visibility, txMgr, log)
	resolveTicketUC := ticketusecases.NewResolveTicketUseCase(ticketRepo, visibility, txMgr, dispatcher, log)
	closeTicketUC := ticketusecases.NewCloseTicketUseCase(ticketRepo, visibility, txMgr, dispatcher, log)
	reopenTicketUC := ticketusecases.NewReopenTicketUseCase(ticketRepo, visibility, txMgr, dispatcher, log)
	assignTicketUC := ticketusecases.NewAssignTicketUseCase(ticketRepo, visibility, txMgr, dispatcher, log)
	sendReminderUC := ticketusecases.NewSendReminderUseCase(ticketRepo, visibility, dispatcher, log)

	addResponseUC := ticketusecases.NewAddResponseUseCase(ticketRepo, responseRepo, visibility, txMgr, dispatcher, log)
	listResponsesUC := ticketusecases.NewListResponsesUseCase(ticketRepo, responseRepo, visibility, log)
	updateResponseUC := ticketusecases.NewUpdateResponseUseCase(ticketRepo, responseRepo, log)
	deleteResponseUC := ticketusecases.NewDeleteResponseUseCase(ticketRepo, responseRepo, attachmentRepo, fileStorage, txMgr, log)

	uploadAttachmentUC := ticketusecases.NewUploadAttachmentUseCase(ticketRepo, responseRepo, attachmentRepo, visibility, fileStorage, txMgr, log)
	listAttachmentsUC := ticketusecases.NewListAttachmentsUseCase(ticketRepo, attachmentRepo, visibility, log)
	deleteAttachmentUC := ticketusecases.NewDeleteAttachmentUseCase(ticketRepo, attachmentRepo, fileStorage, log)

	// Article use cases
	createArticleUC := articleusecases.NewCreateArticleUseCase(articleRepo, articleCategoryRepo, log)
	getArticleUC := articleusecases.NewGetArticleUseCase(articleRepo, visibility, renderer, log)
	listArticlesUC := articleusecases.NewListArticlesUseCase(articleRepo, visibility, log)
	updateArticleUC := articleusecases.NewUpdateArticleUseCase(articleRepo, articleCategoryRepo, visibility, txMgr, log)
	publishArticleUC := articleusecases.NewPublishArticleUseCase(articleRepo, visibility, txMgr, dispatcher, log)
	unpublishArticleUC := articleusecases.NewUnpublishArticleUseCase(articleRepo, visibility, txMgr, dispatcher, log)
	deleteArticleUC := articleusecases.NewDeleteArticleUseCase(articleRepo, visibility, txMgr, log)

	// Handlers
	ticketHandler := tickethandlers.NewTicketHandler(
		createTicketUC, getTicketUC, listTicketsUC, updateTicketUC, deleteTicketUC,
		resolveTicketUC, closeTicketUC, reopenTicketUC, assignTicketUC, sendReminderUC,
		log,
	)
	responseHandler := tickethandlers.NewResponseHandler(addResponseUC, listResponsesUC, updateResponseUC, deleteResponseUC, log)
	attachmentHandler := tickethandlers.NewAttachmentHandler(uploadAttachmentUC, listAttachmentsUC, deleteAttachmentUC, log)
	articleHandler := articlehandlers.NewArticleHandler(
		createArticleUC, getArticleUC, listArticlesUC, updateArticleUC,
		publishArticleUC, unpublishArticleUC, deleteArticleUC,
		log,
	)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, roleRepo, log)

	var redisClient *redis.Client
	if cfg.RateLimit.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	r := &Router{
		engine:            engine,
		dispatcher:        dispatcher,
		redisClient:       redisClient,
		ticketHandler:     ticketHandler,
		responseHandler:   responseHandler,
		attachmentHandler: attachmentHandler,
		articleHandler:    articleHandler,
		authMiddleware:    authMiddleware,
		log:               log,
	}
	r.setupRoutes(cfg)
	return r, nil
}

func (r *Router) setupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	if r.redisClient != nil {
		limiter := ratelimit.NewRedisRateLimiter(
			r.redisClient,
			cfg.RateLimit.Requests,
			time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
		)
		r.engine.Use(middleware.RateLimit(limiter, r.log))
	}

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:     r.ticketHandler,
		ResponseHandler:   r.responseHandler,
		AttachmentHandler: r.attachmentHandler,
		AuthMiddleware:    r.authMiddleware,
	})
	routes.SetupArticleRoutes(r.engine, &routes.ArticleRouteConfig{
		ArticleHandler: r.articleHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

// Shutdown stops the event dispatcher and closes the Redis connection.
// Queued notification events are drained before it returns.
func (r *Router) Shutdown() error {
	if err := r.dispatcher.Stop(); err != nil {
		return fmt.Errorf("failed to stop event dispatcher: %w", err)
	}
	if r.redisClient != nil {
		if err := r.redisClient.Close(); err != nil {
			return fmt.Errorf("failed to close redis client: %w", err)
		}
	}
	return nil
}
