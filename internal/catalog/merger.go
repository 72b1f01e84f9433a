package catalog

import (
	"encoding/base64"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/amdora/dlccontrol/internal/dlc"
	"github.com/amdora/dlccontrol/internal/domain"
)

// StableID derives a deterministic identifier from the business key of a seed
// product, so the same default is recognized across reseeds. The encoding is
// order-sensitive and carries no collision resolution beyond uniqueness of
// the triple.
func StableID(category, name string, dlcType domain.DLCType) string {
	key := fmt.Sprintf("%s-%s-%s", category, name, dlcType)
	return base64.StdEncoding.EncodeToString([]byte(key))
}

// Reconcile merges a persisted product collection with the default catalogs.
// Stored products keep precedence by id, so user edits survive a reseed;
// any default absent from the stored set is injected with seed values. Every
// product passes through Recompute since "now" has moved since the last load.
//
// A stored record that can no longer be computed (malformed or empty expiry
// data) is dropped with a warning rather than failing the whole load.
func Reconcile(stored []domain.Product, now time.Time) ([]domain.Product, error) {
	seen := make(map[string]int, len(stored))
	merged := make([]domain.Product, 0, len(stored)+48)

	for _, p := range stored {
		refreshed, err := dlc.Recompute(p, now)
		if err != nil {
			zap.L().Warn("dropping stored product with unusable expiry data",
				zap.String("id", p.ID),
				zap.String("name", p.Name),
				zap.Error(err))
			continue
		}
		if idx, ok := seen[refreshed.ID]; ok {
			merged[idx] = refreshed
			continue
		}
		seen[refreshed.ID] = len(merged)
		merged = append(merged, refreshed)
	}

	for _, item := range DefaultProducts() {
		if _, ok := seen[item.ID]; ok {
			continue
		}
		expiry := item.ExpiryDate
		if expiry == "" {
			expiry = DefaultExpiryDate
		}
		seeded, err := dlc.Recompute(domain.Product{
			ID:          item.ID,
			Category:    item.Category,
			SubCategory: item.SubCategory,
			Name:        item.Name,
			ExpiryDate:  expiry,
			DLCType:     item.DLCType,
			Observation: item.Observation,
		}, now)
		if err != nil {
			return nil, fmt.Errorf("seed product %q: %w", item.Name, err)
		}
		seen[item.ID] = len(merged)
		merged = append(merged, seeded)
	}

	return merged, nil
}
