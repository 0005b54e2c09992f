package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"pdf-share-server/config"
	_ "pdf-share-server/docs"
	"pdf-share-server/internal/handler"
	"pdf-share-server/internal/repository"
	"pdf-share-server/internal/security"
	"pdf-share-server/internal/service"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title PDF-share-server
// @version 1.0
// @description REST API для загрузки PDF документов, комментариев и совместного доступа

// @host localhost:8080

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	configPath := os.Getenv("PDF_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	logger, err := config.SetupLogger(&cfg.Log)
	if err != nil {
		log.Fatalf("Ошибка настройки логгера: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := config.SetupDatabase(&cfg.DatabaseConfig)
	if err != nil {
		logger.Fatal("Не удалось подключиться к БД", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("Ошибка при закрытии БД", zap.Error(err))
		}
	}()

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		logger.Fatal("Ошибка подключения к Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("Ошибка при закрытии Redis", zap.Error(err))
		}
	}()

	fileStorage, err := service.NewFileStorage(ctx, cfg)
	if err != nil {
		logger.Fatal("Ошибка создания файлового хранилища", zap.Error(err))
	}

	srv, router := config.SetupServer(cfg.Server.Addr)

	userRepo := repository.NewUserRepository(db)
	jwtRepo := repository.NewJWTRepository(db)
	docRepo := repository.NewDocumentRepository(db)
	grantRepo := repository.NewGrantDocumentRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, cfg.CacheTTL())

	metrics := service.NewMetricsService()
	jwtService := security.NewJWTService(&cfg.JWT)

	docService := service.NewDocumentService(docRepo, cacheRepo, fileStorage, metrics)
	sharingService := service.NewSharingService(docRepo, grantRepo, userRepo, cacheRepo, fileStorage, metrics, cfg.Sharing.PublicBaseURL)
	commentService := service.NewCommentService(commentRepo, docRepo, cacheRepo, metrics)
	userService := service.NewUserService(userRepo, jwtService, jwtRepo)
	authService := service.NewAuthenticationService(jwtRepo, jwtService, userRepo)

	authHandler := handler.NewAuthenticationHandler(authService, jwtService, userService)
	userHandler := handler.NewUserHandler(userService)
	docHandler := handler.NewDocumentHandler(docService)
	sharingHandler := handler.NewSharingHandler(sharingService)
	commentHandler := handler.NewCommentHandler(commentService)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(handler.RequestLogger(logger))
	router.Use(handler.Metrics(metrics))
	router.Use(middleware.Recoverer)

	router.Handle("/metrics", metrics.Handler())
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	requireJWT := security.JWTMiddleware(jwtService, jwtRepo)
	optionalJWT := security.OptionalJWTMiddleware(jwtService, jwtRepo)

	setupAuthRoutes(router, authHandler, userHandler, requireJWT)
	setupDocumentRoutes(router, docHandler, sharingHandler, commentHandler, requireJWT, optionalJWT)

	runServer(ctx, srv, logger, cfg)
}

func setupAuthRoutes(r chi.Router, h *handler.AuthenticationHandler, u *handler.UserHandler, requireJWT func(http.Handler) http.Handler) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(requireJWT)
			r.Get("/me", h.Me)
		})
		r.Group(func(r chi.Router) {
			r.Post("/register", u.Register)
			r.Post("/login", h.Login)
			r.Post("/refresh", h.RefreshToken)
			r.Delete("/{token}", h.Logout)
		})
	})
}

func setupDocumentRoutes(
	r chi.Router,
	docs *handler.DocumentHandler,
	sharing *handler.SharingHandler,
	comments *handler.CommentHandler,
	requireJWT, optionalJWT func(http.Handler) http.Handler,
) {
	r.Route("/api/docs", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(requireJWT)
			r.Get("/", docs.ListDocuments)
			r.Post("/", docs.UploadDocument)
			r.Get("/shared-with-me", sharing.ListSharedWithMe)

			r.Get("/{doc_id}", docs.GetDocument)
			r.Put("/{doc_id}", docs.RenameDocument)
			r.Delete("/{doc_id}", docs.DeleteDocument)
			r.Post("/{doc_id}/share/user", sharing.ShareWithUser)
			r.Post("/{doc_id}/share/public", sharing.CreatePublicLink)
			r.Get("/{doc_id}/external-access", sharing.GetExternalDocument)
			r.Post("/{doc_id}/comments", comments.CreateComment)
		})

		// без JWT комментарии доступны по публичному токену
		r.With(optionalJWT).Get("/{doc_id}/comments", comments.ListComments)
	})

	r.Route("/api/comments/{comment_id}", func(r chi.Router) {
		r.Use(requireJWT)
		r.Put("/", comments.UpdateComment)
		r.Delete("/", comments.DeleteComment)
	})

	r.With(requireJWT).Get("/api/users/share-candidates", sharing.ListShareCandidates)

	r.Get("/public/docs/{doc_id}", sharing.GetPublicDocument)
}

func runServer(ctx context.Context, server *http.Server, logger *zap.Logger, cfg *config.AppConfig) {
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("сервер запущен", zap.String("addr", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("ошибка работы сервера", zap.Error(err))
		}
	case sig := <-signalChannel:
		logger.Info("получен сигнал остановки работы сервера", zap.String("signal", sig.String()))
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, cfg.ShutdownTimeout())
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		logger.Warn("ошибка при остановке сервера", zap.Error(err))
	} else {
		logger.Info("сервер успешно остановлен")
	}
}
