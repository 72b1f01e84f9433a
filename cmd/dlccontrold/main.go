package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/amdora/dlccontrol/config"
	"github.com/amdora/dlccontrol/internal/adminapi"
	"github.com/amdora/dlccontrol/internal/app"
)

var (
	cfile   = flag.String("c", "/etc/dlccontrol.yml", "config file")
	showVer = flag.Bool("v", false, "print version and exit")
)

var buildVersion = "dev"

func main() {
	flag.Parse()

	if *showVer {
		fmt.Println("dlccontrold", buildVersion)
		return
	}

	cfg := config.LoadConfig(*cfile)
	application := app.NewApplication(cfg)
	if err := application.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "init failed:", err)
		os.Exit(1)
	}
	defer application.Release()

	// Reminder events land in the log even with no UI attached.
	_ = application.Bus().Subscribe(app.TopicVerificationReminder, func(event app.ReminderEvent) {
		if event.LastVerification != nil {
			zap.S().Warnf("verification pending, last recorded %s by %s",
				event.LastVerification.Date, orUnknown(event.LastVerification.VerifiedBy))
		} else {
			zap.S().Warn("verification pending, no verification recorded yet")
		}
	})

	server := adminapi.NewServer(application)
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		zap.S().Errorf("admin api stopped: %v", err)
	case sig := <-quit:
		zap.S().Infof("received %s, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			zap.S().Errorf("shutdown error: %v", err)
		}
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
