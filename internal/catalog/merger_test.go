package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amdora/dlccontrol/internal/domain"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.Local)

func TestStableID(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := StableID("Molhos do Dia", "Molho Tártaro", domain.DLCSecundaria)
		b := StableID("Molhos do Dia", "Molho Tártaro", domain.DLCSecundaria)
		assert.Equal(t, a, b)
	})

	t.Run("order sensitive", func(t *testing.T) {
		a := StableID("Frios", "Queijo", domain.DLCPrimaria)
		b := StableID("Queijo", "Frios", domain.DLCPrimaria)
		assert.NotEqual(t, a, b)
	})

	t.Run("dlc type is part of the key", func(t *testing.T) {
		a := StableID("Frios", "Queijo", domain.DLCPrimaria)
		b := StableID("Frios", "Queijo", domain.DLCSecundaria)
		assert.NotEqual(t, a, b)
	})
}

func TestReconcile_EmptyStore(t *testing.T) {
	products, err := Reconcile(nil, testNow)
	require.NoError(t, err)
	require.NotEmpty(t, products)

	t.Run("one product per unique triple", func(t *testing.T) {
		ids := make(map[string]struct{}, len(products))
		for _, p := range products {
			_, dup := ids[p.ID]
			assert.False(t, dup, "duplicate id for %s/%s", p.Category, p.Name)
			ids[p.ID] = struct{}{}
			assert.Equal(t, StableID(p.Category, p.Name, p.DLCType), p.ID)
		}
	})

	t.Run("secundaria seeds forced to secundária with default date", func(t *testing.T) {
		var seenSecundaria bool
		for _, p := range products {
			if p.DLCType != domain.DLCSecundaria {
				continue
			}
			seenSecundaria = true
			assert.Equal(t, DefaultExpiryDate, p.ExpiryDate)
		}
		assert.True(t, seenSecundaria)
	})

	t.Run("derived fields are populated", func(t *testing.T) {
		for _, p := range products {
			assert.NotEmpty(t, p.Status)
		}
	})
}

func TestReconcile_Idempotent(t *testing.T) {
	first, err := Reconcile(nil, testNow)
	require.NoError(t, err)
	second, err := Reconcile(first, testNow)
	require.NoError(t, err)
	assert.Len(t, second, len(first), "reseeding never duplicates an existing id")
}

func TestReconcile_PreservesUserEdits(t *testing.T) {
	seeded, err := Reconcile(nil, testNow)
	require.NoError(t, err)

	edited := seeded[0]
	edited.ExpiryDate = "2025-06-16"
	edited.ExpiryDates = nil
	edited.Observation = "lote trocado"

	merged, err := Reconcile([]domain.Product{edited}, testNow)
	require.NoError(t, err)

	var found *domain.Product
	for i := range merged {
		if merged[i].ID == edited.ID {
			found = &merged[i]
			break
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "2025-06-16", found.ExpiryDate, "seed defaults must not overwrite the edit")
	assert.Equal(t, "lote trocado", found.Observation)
	assert.Equal(t, 1, found.DaysToExpiry, "derived fields recomputed on load")
	assert.Equal(t, domain.StatusCritical, found.Status)
	assert.Len(t, merged, len(seeded), "missing defaults injected around the edit")
}

func TestReconcile_KeepsUserCreatedProducts(t *testing.T) {
	user := domain.Product{
		ID:         "user-created-1",
		Category:   "Extras",
		Name:       "Molho Picante Caseiro",
		ExpiryDate: "2025-06-20",
		DLCType:    domain.DLCPrimaria,
	}
	merged, err := Reconcile([]domain.Product{user}, testNow)
	require.NoError(t, err)

	var found bool
	for _, p := range merged {
		if p.ID == user.ID {
			found = true
		}
	}
	assert.True(t, found)
}

func TestReconcile_DropsUnusableStoredRecords(t *testing.T) {
	broken := domain.Product{
		ID:         "broken-1",
		Category:   "Extras",
		Name:       "Sem Data",
		ExpiryDate: "",
		DLCType:    domain.DLCPrimaria,
	}
	merged, err := Reconcile([]domain.Product{broken}, testNow)
	require.NoError(t, err)
	for _, p := range merged {
		assert.NotEqual(t, "broken-1", p.ID)
	}
}
