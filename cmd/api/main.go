package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "planboard/internal/adapter/db"
	httpadapter "planboard/internal/adapter/http"
	"planboard/internal/adapter/http/handlers"
	httpmiddleware "planboard/internal/adapter/http/middleware"
	"planboard/internal/adapter/ws"
	"planboard/internal/app/service"
	"planboard/internal/config"
	"planboard/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageDe, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	taskRepo := dbadapter.NewTaskRepository(db)
	columnRepo := dbadapter.NewColumnRepository(db)
	boardRepo := dbadapter.NewBoardRepository(db)
	commentRepo := dbadapter.NewCommentRepository(db)

	hub := ws.NewHub()
	go hub.Run()

	taskService := service.NewTaskService(taskRepo, columnRepo, commentRepo, hub)
	boardService := service.NewBoardService(boardRepo, columnRepo, taskRepo, hub)
	scheduleService := service.NewScheduleService(taskRepo, hub)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:   handlers.NewHealthHandler(db),
		Boards:   handlers.NewBoardHandler(boardService),
		Columns:  handlers.NewColumnHandler(boardService),
		Tasks:    handlers.NewTaskHandler(taskService),
		Schedule: handlers.NewScheduleHandler(scheduleService),
		Hub:      hub,
	})

	addr := ":" + cfg.AppPort
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
