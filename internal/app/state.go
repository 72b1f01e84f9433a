package app

import (
	"errors"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"
	"go.uber.org/zap"

	"github.com/amdora/dlccontrol/internal/catalog"
	"github.com/amdora/dlccontrol/internal/dlc"
	"github.com/amdora/dlccontrol/internal/domain"
	"github.com/amdora/dlccontrol/internal/ledger"
	"github.com/amdora/dlccontrol/pkg/common"
)

// ErrProductNotFound reports an operation against an id absent from the
// collection.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows the product listing. Zero values match everything.
type ProductFilter struct {
	Q        string
	Category string
	Status   domain.Status
	DLCType  domain.DLCType
}

func (f ProductFilter) matches(p domain.Product) bool {
	if f.Q != "" {
		q := strings.ToLower(f.Q)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Category), q) &&
			!strings.Contains(strings.ToLower(p.SubCategory), q) {
			return false
		}
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.DLCType != "" && p.DLCType != f.DLCType {
		return false
	}
	return true
}

// Products returns the products matching the filter.
func (a *Application) Products(f ProductFilter) []domain.Product {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]domain.Product, 0, len(a.products))
	for _, p := range a.products {
		if f.matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// CreateProduct registers a user-created product under a fresh random id.
func (a *Application) CreateProduct(draft domain.Product) (domain.Product, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	draft.ID = common.UUID()
	p, err := dlc.Recompute(draft, a.nowFn())
	if err != nil {
		return domain.Product{}, err
	}
	a.products = append(a.products, p)
	if err := a.store.SaveProducts(a.products); err != nil {
		return domain.Product{}, err
	}
	zap.L().Info("product created", zap.String("id", p.ID), zap.String("name", p.Name))
	return p, nil
}

// UpdateProduct replaces the product identified by id with the draft,
// recomputing the derived fields.
func (a *Application) UpdateProduct(id string, draft domain.Product) (domain.Product, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.products {
		if a.products[i].ID != id {
			continue
		}
		draft.ID = id
		p, err := dlc.Recompute(draft, a.nowFn())
		if err != nil {
			return domain.Product{}, err
		}
		a.products[i] = p
		if err := a.store.SaveProducts(a.products); err != nil {
			return domain.Product{}, err
		}
		return p, nil
	}
	return domain.Product{}, ErrProductNotFound
}

// DeleteProduct removes a product by id.
func (a *Application) DeleteProduct(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.products {
		if a.products[i].ID == id {
			a.products = append(a.products[:i], a.products[i+1:]...)
			return a.store.SaveProducts(a.products)
		}
	}
	return ErrProductNotFound
}

// ResetCatalog discards the stored collection and ledger entirely and reseeds
// from the default catalogs. It never depends on prior in-memory state.
func (a *Application) ResetCatalog() ([]domain.Product, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.store.Reset(); err != nil {
		return nil, err
	}
	seeded, err := catalog.Reconcile(nil, a.nowFn())
	if err != nil {
		return nil, err
	}
	a.products = seeded
	if err := a.store.SaveProducts(seeded); err != nil {
		return nil, err
	}
	a.ledger = ledger.New(nil)
	zap.L().Info("catalog reset to seed state", zap.Int("products", len(seeded)))
	return seeded, nil
}

// RenewSecundaria stamps every Secundária product with the current instant as
// its primary expiry date and recomputes it. Returns the number of products
// touched.
func (a *Application) RenewSecundaria() (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.nowFn()
	stamp := now.Format("2006-01-02T15:04")
	renewed := 0
	for i := range a.products {
		if a.products[i].DLCType != domain.DLCSecundaria {
			continue
		}
		draft := a.products[i]
		draft.ExpiryDate = stamp
		p, err := dlc.Recompute(draft, now)
		if err != nil {
			return renewed, err
		}
		a.products[i] = p
		renewed++
	}
	if renewed > 0 {
		if err := a.store.SaveProducts(a.products); err != nil {
			return renewed, err
		}
	}
	return renewed, nil
}

// Summary aggregates the collection, optionally restricted to one DLC type.
func (a *Application) Summary(dlcType domain.DLCType) domain.Summary {
	a.mu.Lock()
	defer a.mu.Unlock()

	if dlcType == "" {
		return dlc.Summarize(a.products)
	}
	subset := make([]domain.Product, 0, len(a.products))
	for _, p := range a.products {
		if p.DLCType == dlcType {
			subset = append(subset, p)
		}
	}
	return dlc.Summarize(subset)
}

// Categories returns the distinct category labels, sorted.
func (a *Application) Categories() []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	set := make(map[string]struct{})
	for _, p := range a.products {
		set[p.Category] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// ConfirmVerification appends a verification event for the current Secundária
// collection and persists the ledger.
func (a *Application) ConfirmVerification(verifiedBy, observation string) (domain.VerificationLog, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	count := 0
	for _, p := range a.products {
		if p.DLCType == domain.DLCSecundaria {
			count++
		}
	}
	entry := a.ledger.Record(verifiedBy, observation, count, a.nowFn())
	if err := a.store.SaveVerifications(a.ledger.Entries()); err != nil {
		return domain.VerificationLog{}, err
	}
	zap.L().Info("daily verification recorded",
		zap.String("id", entry.ID),
		zap.Int("products", entry.ProductsCount))
	return entry, nil
}

// Verifications returns the ledger entries, newest first.
func (a *Application) Verifications() []domain.VerificationLog {
	a.mu.Lock()
	defer a.mu.Unlock()

	entries := a.ledger.Entries()
	out := make([]domain.VerificationLog, len(entries))
	copy(out, entries)
	return out
}

// LastVerification returns the most recent ledger entry.
func (a *Application) LastVerification() (domain.VerificationLog, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ledger.Last()
}

// VerifiedToday reports whether a verification was recorded on the current
// local calendar date.
func (a *Application) VerifiedToday() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ledger.IsVerifiedToday(a.nowFn())
}

// ReminderDue reports whether the daily-verification reminder should fire.
func (a *Application) ReminderDue() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ledger.ReminderDue(a.nowFn())
}

// ExportVerificationsCSV renders the ledger as CSV along with the dated
// download filename.
func (a *Application) ExportVerificationsCSV() (filename, content string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return ledger.ExportFilename(a.nowFn()), a.ledger.ExportCSV()
}

// productExportRow is the CSV projection of a product.
type productExportRow struct {
	Category     string `csv:"Categoria"`
	SubCategory  string `csv:"Subcategoria"`
	Name         string `csv:"Produto"`
	ExpiryDate   string `csv:"Validade"`
	DLCType      string `csv:"Tipo DLC"`
	DaysToExpiry int    `csv:"Dias"`
	Status       string `csv:"Estado"`
	Observation  string `csv:"Observações"`
}

// ExportProductsCSV renders the product table as CSV.
func (a *Application) ExportProductsCSV() (filename, content string, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	rows := make([]productExportRow, 0, len(a.products))
	for _, p := range a.products {
		rows = append(rows, productExportRow{
			Category:     p.Category,
			SubCategory:  p.SubCategory,
			Name:         p.Name,
			ExpiryDate:   p.ExpiryDate,
			DLCType:      string(p.DLCType),
			DaysToExpiry: p.DaysToExpiry,
			Status:       dlc.StatusLabel(p.Status),
			Observation:  p.Observation,
		})
	}
	content, err = gocsv.MarshalString(&rows)
	if err != nil {
		return "", "", err
	}
	filename = "produtos_dlc_" + a.nowFn().Format("2006-01-02") + ".csv"
	return filename, content, nil
}
