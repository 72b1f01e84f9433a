package dlc

import (
	"errors"
	"time"

	"github.com/amdora/dlccontrol/internal/domain"
)

// ErrInvalidProduct reports a product with no expiry instant at all. That is
// a contract violation by the caller, not a user-facing condition.
var ErrInvalidProduct = errors.New("dlc: product has no expiry date")

// Recompute derives DaysToExpiry and Status from the product's candidate
// expiry instants and normalizes ExpiryDate to the soonest of them. When
// ExpiryDates is non-empty it is the authoritative candidate set, otherwise
// the single ExpiryDate is used. The soonest expiry dominates: a product with
// any overdue instant is expired even if other instants are fine. Ties
// resolve to the first candidate in list order.
func Recompute(p domain.Product, now time.Time) (domain.Product, error) {
	candidates := p.ExpiryDates
	if len(candidates) == 0 {
		if p.ExpiryDate == "" {
			return domain.Product{}, ErrInvalidProduct
		}
		candidates = []string{p.ExpiryDate}
	}

	minDays := 0
	closest := ""
	for i, candidate := range candidates {
		days, err := DaysToExpiry(candidate, now)
		if err != nil {
			return domain.Product{}, err
		}
		if i == 0 || days < minDays {
			minDays = days
			closest = candidate
		}
	}

	p.ExpiryDate = closest
	p.DaysToExpiry = minDays
	p.Status = Classify(minDays)
	return p, nil
}
