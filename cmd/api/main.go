package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"huiqs/internal/adapter/api"
	"huiqs/internal/adapter/api/handler"
	apimiddleware "huiqs/internal/adapter/api/middleware"
	"huiqs/internal/adapter/api/router"
	"huiqs/internal/adapter/repository"
	"huiqs/internal/domain/service"
	"huiqs/internal/infrastructure/ratelimit"
	"huiqs/internal/usecase"
	"huiqs/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	// Service account from environment variable (production), file path
	// fallback for local development.
	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	} else {
		log.Printf("Using application default credentials")
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	profileRepo := repository.NewFirestoreProfileRepository(firestoreClient)
	messageRepo := repository.NewFirestoreMessageRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	messageLogRepo := repository.NewFirestoreMessageLogRepository(firestoreClient, orderRepo)
	packageRepo := repository.NewFirestoreTravelPackageRepository(firestoreClient)
	enterpriseRepo := repository.NewFirestoreEnterpriseOrderRepository(firestoreClient)
	codeRepo := repository.NewFirestoreVerificationCodeRepository(firestoreClient)

	alipayService, err := service.NewAlipayPaymentService(
		cfg.AlipayAppID,
		cfg.AlipayGateway,
		cfg.AlipayReturnURL,
		cfg.AlipayNotifyURL,
		cfg.AlipayPrivateKey,
	)
	if err != nil {
		log.Fatalf("Failed to initialize Alipay service: %v", err)
	}

	smsService := service.NewTencentSmsService(
		cfg.SmsSecretID,
		cfg.SmsSecretKey,
		cfg.SmsSdkAppID,
		cfg.SmsTemplateID,
		cfg.SmsSignName,
		cfg.SmsRegion,
	)

	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()

	messageUseCase := usecase.NewMessageUseCase(profileRepo, messageRepo, messageLogRepo, orderRepo, packageRepo, enterpriseRepo)
	paymentUseCase := usecase.NewPaymentUseCase(alipayService, rateLimiter)
	smsUseCase := usecase.NewSmsUseCase(smsService, codeRepo, rateLimiter)
	planUseCase := usecase.NewPlanUseCase()
	packageUseCase := usecase.NewPackageUseCase(packageRepo)
	userUseCase := usecase.NewUserUseCase(profileRepo)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status": "ok",
		})
	})

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(profileRepo)

	router.Setup(e, router.Handlers{
		Message: handler.NewMessageHandler(messageUseCase),
		Payment: handler.NewPaymentHandler(paymentUseCase),
		Sms:     handler.NewSmsHandler(smsUseCase),
		Plan:    handler.NewPlanHandler(planUseCase),
		Package: handler.NewPackageHandler(packageUseCase),
		User:    handler.NewUserHandler(userUseCase),
	}, authMiddleware, adminMiddleware)

	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
