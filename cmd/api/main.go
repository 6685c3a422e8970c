package main

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	httpadp "loanmarket-backend/internal/adapter/http"
	"loanmarket-backend/internal/adapter/middleware"
	checkout "loanmarket-backend/internal/adapter/payment"
	"loanmarket-backend/internal/adapter/repository/mysql"
	"loanmarket-backend/internal/config"
	userDomain "loanmarket-backend/internal/domain/user"
	"loanmarket-backend/internal/infrastructure/cache"
	"loanmarket-backend/internal/infrastructure/db"
	"loanmarket-backend/internal/usecase/catalog"
	"loanmarket-backend/internal/usecase/lifecycle"
	"loanmarket-backend/internal/usecase/registry"
	"loanmarket-backend/internal/usecase/stats"
	"loanmarket-backend/pkg/logger"
	"loanmarket-backend/pkg/token"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.AppEnv, cfg.LogLevel)
	defer logger.Sync()
	log := logger.L()

	if err := cfg.Validate(); err != nil {
		log.Fatal("config invalid", zap.Error(err))
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal("mysql connect failed", zap.Error(err))
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal("redis connect failed", zap.Error(err))
	}

	users := mysql.NewUserRepository(gdb)
	products := mysql.NewProductRepository(gdb)
	apps := mysql.NewApplicationRepository(gdb)
	arch := mysql.NewArchiveRepository(gdb)
	tx := mysql.NewGormUoW(gdb)
	bridge := checkout.NewClient(cfg.CheckoutBaseURL, cfg.CheckoutSecret)

	registryUC := registry.NewUsecase(users, apps, log)
	catalogUC := catalog.NewUsecase(products)
	lifecycleUC := lifecycle.NewUsecase(apps, products, users, arch, tx, bridge, lifecycle.Options{
		FeeAmountCents: cfg.FeeAmountCents,
		FeeCurrency:    cfg.FeeCurrency,
		SuccessURL:     cfg.SuccessURL,
		CancelURL:      cfg.CancelURL,
	}, log)
	statsUC := stats.NewUsecase(users, products, apps, arch)

	h := httpadp.NewHandler()
	uh := httpadp.NewUserHandler(registryUC)
	ph := httpadp.NewProductHandler(catalogUC)
	ah := httpadp.NewApplicationHandler(lifecycleUC)
	pay := httpadp.NewPaymentHandler(lifecycleUC)
	sh := httpadp.NewStatsHandler(statsUC)

	verifier := token.NewVerifier(cfg.JWTSigningKey)
	authn := middleware.Authenticate(verifier)
	admin := middleware.RequireRole(users, userDomain.RoleAdmin)
	manager := middleware.RequireRole(users, userDomain.RoleManager)
	managerOrAdmin := middleware.RequireRole(users, userDomain.RoleManager, userDomain.RoleAdmin)
	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Recover(), middleware.RequestID, middleware.Metrics)

	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// loan products
	e.POST("/loans", ph.Create, authn, managerOrAdmin)
	e.GET("/loans", ph.ListAvailable)
	e.GET("/loans/all", ph.ListAll, authn, admin)
	e.GET("/loans/:id", ph.Get)
	e.PUT("/loans/:id", ph.Update, authn, admin)
	e.DELETE("/loans/:id", ph.Delete, authn, admin)
	e.PATCH("/loans/toggle-availability/:id", ph.ToggleAvailability, authn, admin)

	// loan applications
	e.POST("/apply-loans", ah.Submit, authn, idemp)
	e.GET("/apply-loans", ah.ListAll, authn, admin)
	e.GET("/apply-loans/user/:email", ah.ListOwn, authn)
	e.GET("/apply-loans/:id", ah.Get, authn)
	e.PATCH("/apply-loans/:id", ah.Decide, authn, manager)
	e.DELETE("/apply-loans/:id", ah.Cancel, authn)

	// fee payment
	e.POST("/create-checkout-session", pay.CreateCheckoutSession, authn)
	e.PATCH("/apply-loans/:id/pay-fee", pay.PayFee, authn, idemp)
	e.GET("/payment-details/:sessionId", pay.PaymentDetails, authn)

	// manager review queues
	e.GET("/pending-loans", ah.ListPending, authn, manager)
	e.GET("/approved-loans", ah.ListApproved, authn, manager)
	e.GET("/approved-loans/:id", ah.GetApproved, authn, manager)
	e.DELETE("/approved-loans/:id", ah.RevokeApproval, authn, manager)

	// stats
	e.GET("/admin-stats", sh.Admin, authn, admin)
	e.GET("/manager-stats", sh.Manager, authn, manager)
	e.GET("/borrower-stats", sh.Borrower, authn)

	// users
	e.POST("/user", uh.RegisterOrTouch)
	e.GET("/user", uh.List, authn, admin)
	e.GET("/user/role", uh.OwnRole, authn)
	e.GET("/user/:email", uh.GetByEmail)
	e.PATCH("/user/suspend/:id", uh.Suspend, authn, admin)
	e.PATCH("/user/role/:id", uh.SetRole, authn, admin)
	e.POST("/user/reconcile/:email", uh.Reconcile, authn, admin)

	addr := ":" + cfg.AppPort
	log.Info("listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
