package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/avk-dev/netguard/internal/config"
	"github.com/avk-dev/netguard/internal/core/model"
	"github.com/avk-dev/netguard/internal/core/service"
	"github.com/avk-dev/netguard/internal/core/storage/mem"
	grpcserver "github.com/avk-dev/netguard/internal/grpc/server"
	"github.com/avk-dev/netguard/internal/logger"
)

func Run(cfgPath string, logLvl string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if logLvl != "" {
		cfg.Log.Level = logLvl
	}

	appLogger := logger.NewLogger(cfg.Log.Level)
	ruleStorage := mem.NewRuleMemStorage()
	quotaStorage := mem.NewQuotaMemStorage()
	screensrv := service.New(
		ruleStorage,
		quotaStorage,
		service.QuotaSettings{Capacity: cfg.Screen.Quota.Capacity, Window: cfg.Screen.Quota.Window},
		service.DefaultPolicy(cfg.Screen.DefaultPolicy),
	)

	for _, cidr := range cfg.Screen.Allow {
		if err := screensrv.AddRule(cidr, model.Allow); err != nil {
			return fmt.Errorf("bad allow rule in config: %w", err)
		}
	}
	for _, cidr := range cfg.Screen.Deny {
		if err := screensrv.AddRule(cidr, model.Deny); err != nil {
			return fmt.Errorf("bad deny rule in config: %w", err)
		}
	}

	appServer := grpcserver.Start(screensrv, appLogger, cfg.Server.Addr, cfg.Server.ShutdownTimeout)

	// Waiting signal
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)

	select {
	case oss := <-signalCh:
		appLogger.Info(fmt.Sprintf("app stops after receiving a signal %s", oss.String()))
	case err := <-appServer.ErrCh():
		appLogger.Error(fmt.Sprintf("app stops after an err %s", err.Error()))
	}

	// Shutdown
	if err := appServer.Shutdown(); err != nil {
		appLogger.Error(fmt.Sprintf("app stoped with err %s", err.Error()))
		return err
	}
	return nil
}
