package main

import (
	"context"
	"log"
	"os"

	"github.com/RBMarketing1011/restaunax/external/abstractapi"
	"github.com/RBMarketing1011/restaunax/external/resend"

	"github.com/RBMarketing1011/restaunax/internal/config"
	"github.com/RBMarketing1011/restaunax/internal/db"
	"github.com/RBMarketing1011/restaunax/internal/repository"
	"github.com/RBMarketing1011/restaunax/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func main() {
	// ======================
	// INFRA
	// ======================
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	pool, err := db.Connect(context.Background(), cfg.Database)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	// ======================
	// EXTERNALS
	// ======================
	useReputation := os.Getenv("USE_EMAIL_REPUTATION") == "true"

	var emailValidator services.EmailValidator
	if useReputation {
		emailValidator, err = abstractapi.NewReputationValidator()
		if err != nil {
			log.Fatal(err)
		}
	} else {
		emailValidator = services.NewLocalValidator()
	}

	mailer, err := resend.NewMailer("RestaunaX<onboarding@resend.dev>")
	if err != nil {
		log.Fatal(err)
	}

	// ======================
	// REPOSITORIES
	// ======================
	userRepo := repository.NewUserRepository(pool)
	accountRepo := repository.NewAccountRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	verifyRepo := repository.NewVerificationRepository(pool)
	devRepo := repository.NewDevRepository(pool)

	// ======================
	// SERVICES
	// ======================
	authSvc := services.NewAuthService(userRepo, accountRepo, verifyRepo, emailValidator, mailer, cfg.App.BaseURL)
	userSvc := services.NewUserService(userRepo, accountRepo, verifyRepo, mailer, cfg.App.BaseURL)
	accountSvc := services.NewAccountService(userRepo, accountRepo)
	orderSvc := services.NewOrderService(orderRepo)
	devSvc := services.NewDevService(devRepo)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	api := e.Group("")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerAuthRoutes(api, authSvc)
	registerUserRoutes(api, userSvc)
	registerAccountRoutes(api, accountSvc)
	registerOrderRoutes(api, orderSvc)
	registerDevRoutes(api, devSvc, cfg)

	// ======================
	// SERVER
	// ======================
	e.Logger.Fatal(e.Start(":" + cfg.Server.Port))
}
