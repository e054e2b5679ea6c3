package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/bookreview-service/bookreview/config"
	"github.com/Astemirdum/bookreview-service/bookreview/internal/handler"
	"github.com/Astemirdum/bookreview-service/bookreview/internal/repository"
	"github.com/Astemirdum/bookreview-service/bookreview/internal/server"
	"github.com/Astemirdum/bookreview-service/bookreview/internal/service"
	"github.com/Astemirdum/bookreview-service/bookreview/migrations"
	"github.com/Astemirdum/bookreview-service/pkg/auth"
	"github.com/Astemirdum/bookreview-service/pkg/logger"
	"github.com/Astemirdum/bookreview-service/pkg/postgres"
	"go.uber.org/zap"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "bookreview")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}
	svc := service.NewService(repo, auth.NewTokenManager(cfg.JWT), log)

	h := handler.New(svc, svc, cfg.Pagination, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
