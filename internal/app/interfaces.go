package app

import (
	"github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"

	"github.com/amdora/dlccontrol/config"
	"github.com/amdora/dlccontrol/internal/domain"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// BusProvider provides event bus access
type BusProvider interface {
	Bus() EventBus.Bus
}

// ProductService is the product-collection contract consumed by the admin API.
type ProductService interface {
	Products(f ProductFilter) []domain.Product
	CreateProduct(draft domain.Product) (domain.Product, error)
	UpdateProduct(id string, draft domain.Product) (domain.Product, error)
	DeleteProduct(id string) error
	ResetCatalog() ([]domain.Product, error)
	RenewSecundaria() (int, error)
	Summary(dlcType domain.DLCType) domain.Summary
	Categories() []string
	ExportProductsCSV() (filename, content string, err error)
}

// VerificationService is the ledger contract consumed by the admin API.
type VerificationService interface {
	ConfirmVerification(verifiedBy, observation string) (domain.VerificationLog, error)
	Verifications() []domain.VerificationLog
	LastVerification() (domain.VerificationLog, bool)
	VerifiedToday() bool
	ReminderDue() bool
	ExportVerificationsCSV() (filename, content string)
}

// Ensure Application implements all interfaces
var (
	_ ConfigProvider      = (*Application)(nil)
	_ SchedulerProvider   = (*Application)(nil)
	_ BusProvider         = (*Application)(nil)
	_ ProductService      = (*Application)(nil)
	_ VerificationService = (*Application)(nil)
)
