package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golfsync/internal/clickup"
	"golfsync/internal/config"
	"golfsync/internal/database"
	httpapi "golfsync/internal/http"
	"golfsync/internal/logger"
	mqtttrigger "golfsync/internal/mqtt"
	"golfsync/internal/repository"
	"golfsync/internal/service"
	"golfsync/internal/store"
	syncsvc "golfsync/internal/sync"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "golfsync")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	kv := store.NewRedisKV(redisClient)

	coursesRepo := repository.NewPostgresCoursesRepository(db)
	contactsRepo := repository.NewPostgresContactsRepository(db)
	outreachRepo := repository.NewPostgresOutreachRepository(db)

	fields := clickup.DefaultFieldMap()
	fields.CoursesListID = cfg.ClickUp.CoursesListID
	fields.ContactsListID = cfg.ClickUp.ContactsListID
	fields.OutreachListID = cfg.ClickUp.OutreachListID

	clickupClient := clickup.NewClient(cfg.ClickUp.BaseURL, cfg.ClickUp.APIKey, log)
	orchestrator := syncsvc.NewOrchestrator(coursesRepo, contactsRepo, outreachRepo, clickupClient, fields, log)

	router := httpapi.NewRouter(log)
	router.RegisterSyncRoutes(httpapi.NewSyncHandler(orchestrator, kv, log))
	router.RegisterExportRoutes(httpapi.NewExportHandler(coursesRepo, contactsRepo, log))
	router.RegisterHealthRoute()

	srv := service.NewServer(cfg.HTTP.Addr, router, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Optional trigger path: the enrichment pipeline can publish
	// completion events instead of calling the webhook.
	var trigger *mqtttrigger.Trigger
	if cfg.MQTT.Enabled {
		mqttClient, err := mqtttrigger.NewClient(&cfg.MQTT, log)
		if err != nil {
			log.Fatal("Failed to connect to MQTT broker", zap.Error(err))
		}
		defer mqttClient.Disconnect()

		trigger = mqtttrigger.NewTrigger(mqttClient, cfg.MQTT.Topic, orchestrator, kv, log)
		go func() {
			if err := trigger.Start(ctx); err != nil {
				log.Error("MQTT trigger stopped", zap.Error(err))
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
		cancel()
	case <-errCh:
		cancel()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Stop(shutdownCtx)
	if trigger != nil {
		_ = trigger.Stop(shutdownCtx)
	}
	_ = redisClient.Close()
	_ = database.Close(db)
}
