package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"quotation-system/internal/controllers"
	"quotation-system/internal/listeners"
	"quotation-system/internal/repositories"
	"quotation-system/internal/services"
	"quotation-system/pkg/config"
	"quotation-system/pkg/eventbus"
	"quotation-system/pkg/filestorage"
	"quotation-system/pkg/middleware"
	"quotation-system/pkg/service"
)

// InitRouter собирает весь граф зависимостей приложения и регистрирует
// маршруты. Репозитории, сервисы и контроллеры создаются в одном месте,
// чтобы каждый компонент существовал в единственном экземпляре.
func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	cacheRepo repositories.CacheRepositoryInterface,
	jwtSvc service.JWTService,
	cfg *config.Config,
	logger *zap.Logger,
) error {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	fileStorage, err := filestorage.NewLocalFileStorage(cfg.Upload.BasePath)
	if err != nil {
		return err
	}

	bus := eventbus.New(logger)

	// --- РЕПОЗИТОРИИ ---
	userRepo := repositories.NewUserRepository(dbConn, logger)
	customerRepo := repositories.NewCustomerRepository(dbConn, logger)
	inquiryRepo := repositories.NewInquiryRepository(dbConn, logger)
	itemRepo := repositories.NewItemRepository(dbConn, logger)
	quoteRepo := repositories.NewQuoteRepository(dbConn, logger)
	attachmentRepo := repositories.NewAttachmentRepository(dbConn, logger)
	dashboardRepo := repositories.NewDashboardRepository(dbConn, logger)
	reportRepo := repositories.NewReportRepository(dbConn, logger)

	// --- СЕРВИСЫ ---
	sessionCache := services.NewSessionCacheService(cacheRepo, userRepo, cfg.Board.SessionCacheTTL, logger)
	authService := services.NewAuthService(userRepo, sessionCache, jwtSvc, logger)
	userService := services.NewUserService(userRepo, logger)
	customerService := services.NewCustomerService(customerRepo, logger)
	inquiryService := services.NewInquiryService(dbConn, inquiryRepo, itemRepo, logger)
	itemService := services.NewItemService(itemRepo, logger)
	boardService := services.NewAssignmentBoardService(
		itemRepo, userRepo, customerRepo, inquiryRepo, bus, cfg.Board, logger)
	quoteService := services.NewQuoteService(
		dbConn, quoteRepo, itemRepo, inquiryRepo, bus, cfg.Quote, logger)
	attachmentService := services.NewAttachmentService(
		attachmentRepo, inquiryRepo, fileStorage, cfg.Upload, logger)
	dashboardService := services.NewDashboardService(dashboardRepo, boardService, logger)
	reportService := services.NewReportService(reportRepo, logger)

	// --- СЛУШАТЕЛИ СОБЫТИЙ ---
	listeners.NewNotificationListener(userRepo, logger).Register(bus)

	// --- КОНТРОЛЛЕРЫ ---
	authCtrl := controllers.NewAuthController(authService, logger)
	userCtrl := controllers.NewUserController(userService, logger)
	customerCtrl := controllers.NewCustomerController(customerService, logger)
	inquiryCtrl := controllers.NewInquiryController(inquiryService, logger)
	itemCtrl := controllers.NewItemController(itemService, logger)
	assignmentCtrl := controllers.NewAssignmentController(boardService, logger)
	quoteCtrl := controllers.NewQuoteController(quoteService, logger)
	attachmentCtrl := controllers.NewAttachmentController(attachmentService, logger)
	dashboardCtrl := controllers.NewDashboardController(dashboardService, logger)
	reportCtrl := controllers.NewReportController(reportService, logger)

	// --- МАРШРУТЫ ---
	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, secureGroup, authCtrl)
	runUserRouter(secureGroup, userCtrl, logger)
	runCustomerRouter(secureGroup, customerCtrl, logger)
	runInquiryRouter(secureGroup, inquiryCtrl, attachmentCtrl, logger)
	runItemRouter(secureGroup, itemCtrl)
	runAssignmentRouter(secureGroup, assignmentCtrl, logger)
	runQuoteRouter(secureGroup, quoteCtrl, logger)
	runDashboardRouter(secureGroup, dashboardCtrl)
	runReportRouter(secureGroup, reportCtrl, logger)

	return nil
}
