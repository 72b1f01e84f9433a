package app

import (
	"os"
	"path/filepath"
	"sync"
	"time"
	_ "time/tzdata"

	"github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/amdora/dlccontrol/config"
	"github.com/amdora/dlccontrol/internal/catalog"
	"github.com/amdora/dlccontrol/internal/domain"
	"github.com/amdora/dlccontrol/internal/ledger"
	"github.com/amdora/dlccontrol/internal/store"
)

// Application wires configuration, the local store, the scheduler and the
// in-memory state together. It owns the single mutable product collection and
// verification ledger; every state transition is persisted to the store right
// after the in-memory update.
type Application struct {
	appConfig *config.AppConfig
	store     *store.Store
	sched     *cron.Cron
	bus       EventBus.Bus
	nowFn     func() time.Time

	mu       sync.Mutex
	products []domain.Product
	ledger   *ledger.Ledger
}

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{
		appConfig: appConfig,
		bus:       EventBus.New(),
		nowFn:     time.Now,
	}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

// Bus exposes the application event bus; the presentation layer subscribes to
// reminder events here.
func (a *Application) Bus() EventBus.Bus {
	return a.bus
}

// Scheduler returns the cron scheduler.
func (a *Application) Scheduler() *cron.Cron {
	return a.sched
}

// OverrideClock replaces the application's time source (used in tests).
func (a *Application) OverrideClock(nowFn func() time.Time) {
	a.nowFn = nowFn
}

func (a *Application) Init() error {
	cfg := a.appConfig
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	a.initLogger()

	if err := os.MkdirAll(cfg.System.Workdir, 0o755); err != nil {
		return err
	}

	a.store, err = store.Open(filepath.Join(cfg.System.Workdir, "dlccontrol.db"))
	if err != nil {
		return err
	}
	zap.S().Infof("store opened under %s", cfg.System.Workdir)

	if err := a.loadState(); err != nil {
		return err
	}

	a.initJob()
	return nil
}

func (a *Application) initLogger() {
	cfg := a.appConfig
	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.OutputPaths = []string{"stdout"}

	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}
		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	} else {
		var err error
		logger, err = zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
		if err != nil {
			panic(err)
		}
	}
	zap.ReplaceGlobals(logger)
}

// loadState loads both store keys, reconciles the product collection against
// the seed catalogs and persists the merged result, so defaults the user has
// not touched are restored on every start.
func (a *Application) loadState() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.nowFn()
	merged, err := catalog.Reconcile(a.store.LoadProducts(), now)
	if err != nil {
		return err
	}
	a.products = merged
	if err := a.store.SaveProducts(merged); err != nil {
		return err
	}

	a.ledger = ledger.New(a.store.LoadVerifications())
	zap.L().Info("state loaded",
		zap.Int("products", len(merged)),
		zap.Int("verifications", a.ledger.Len()))
	return nil
}

// Release releases application resources.
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}
	if a.store != nil {
		_ = a.store.Close()
	}
	_ = zap.L().Sync()
}
