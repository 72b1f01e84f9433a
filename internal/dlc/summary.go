package dlc

import (
	"math"

	"github.com/amdora/dlccontrol/internal/domain"
)

// Summarize reduces a product collection into per-status counts plus a
// conformity rate. ExpiringIn7Days is a rollup of warning and critical, it
// deliberately overlaps the individual buckets. The conformity rate is the
// rounded percentage of products in ok status, 0 for an empty collection.
func Summarize(products []domain.Product) domain.Summary {
	s := domain.Summary{Total: len(products)}
	for _, p := range products {
		switch p.Status {
		case domain.StatusExpired:
			s.Expired++
		case domain.StatusToday:
			s.ExpiringToday++
		case domain.StatusCritical:
			s.ExpiringIn7Days++
		case domain.StatusWarning:
			s.ExpiringIn7Days++
		case domain.StatusOK:
			s.OK++
		}
	}
	if s.Total > 0 {
		s.ConformityRate = int(math.Round(float64(s.OK) / float64(s.Total) * 100))
	}
	return s
}
