package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/EcoGuardHQ/EcoGuard/app/controllers"
	"github.com/EcoGuardHQ/EcoGuard/app/repository"
	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/audit"
	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/auth"
	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/cache"
	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/constants"
	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/middleware"
	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/photostore"
	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/reporting"
	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/rewards"
	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/security"
	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/session"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// Wire the core services
	repos := repository.GetGlobalRepositories()
	recorder := audit.NewRecorder(repos.Audit)
	limiter := security.NewRateLimiter(cache.GetClient())
	authManager := auth.NewManager(repos.User, limiter, recorder)

	var photos reporting.PhotoStore
	if store, err := photostore.NewS3Store(photostore.LoadConfig()); err != nil {
		log.Warnf("[Router] photo storage unavailable, photo uploads disabled: %v", err)
	} else if store != nil {
		photos = store
	}

	reportService := reporting.NewService(repos.Report, repos.User, recorder, photos)
	rewardService := rewards.NewService(repos.Reward, repos.User, recorder)

	if err := rewardService.SeedCatalog(); err != nil {
		log.Errorf("[Router] failed to seed reward catalog: %v", err)
	}

	controllers.InitializeControllers(authManager, reportService, rewardService)
	controllers.InitializeAdminController(repos)

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	// Auth
	app.Post(constants.AuthRegisterRoute, controllers.HandleAuthRegister)
	app.Post(constants.AuthLoginRoute, controllers.HandleAuthLogin)
	app.Post(constants.AuthLogoutRoute, controllers.HandleAuthLogout)
	app.Get(constants.MeRoute, middleware.RequireAuth, controllers.HandleGetMe)

	// Reports
	app.Get(constants.ReportsRoute, controllers.HandleListReports)
	app.Post(constants.ReportsRoute, middleware.RequireAuth, controllers.HandleCreateReport)
	app.Get(constants.MyReportsRoute, middleware.RequireAuth, controllers.HandleMyReports)

	// Rewards store
	app.Get(constants.RewardsRoute, controllers.HandleListRewards)
	app.Post(constants.RedeemRoute, middleware.RequireAuth, controllers.HandleRedeemReward)
	app.Get(constants.MeRewardsRoute, middleware.RequireAuth, controllers.HandleMyRewards)

	// Admin panel
	admin := app.Group(constants.AdminGroupRoute, middleware.RequireAdmin)
	admin.Get("/overview", controllers.HandleAdminOverview)
	admin.Get("/users", controllers.HandleAdminListUsers)
	admin.Get("/reports", controllers.HandleListReports)
	admin.Get("/audit", controllers.HandleAdminAuditLog)
	admin.Put("/reports/:id/status", controllers.HandleUpdateReportStatus)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
