// Package catalog owns the fixed seed lists and the reconciliation between
// persisted products and those defaults.
package catalog

import (
	"github.com/amdora/dlccontrol/internal/domain"
)

// SeedItem is one entry of a default catalog. Zero-value fields fall back to
// the seed defaults at merge time.
type SeedItem struct {
	Category    string
	SubCategory string
	Name        string
	ExpiryDate  string
	Observation string
}

// DefaultExpiryDate is assigned to seed entries that carry no explicit date.
const DefaultExpiryDate = "2025-12-01T00:00"

// primariaDefaults is the base Primária catalog.
var primariaDefaults = []SeedItem{
	{Category: "DLC Positiva", SubCategory: "Frescos", Name: "Tomate Fatiado"},
	{Category: "DLC Positiva", SubCategory: "Frescos", Name: "Cebola Laminada"},
	{Category: "DLC Positiva", SubCategory: "Frescos", Name: "Mistura de Saladas"},
	{Category: "DLC Positiva", SubCategory: "Frios", Name: "Queijo Fatiado"},
	{Category: "DLC Positiva", SubCategory: "Frios", Name: "Fiambre Fatiado"},
	{Category: "DLC Positiva", SubCategory: "Frios", Name: "Bacon Cozido"},
	{Category: "DLC Positiva", SubCategory: "Congelados", Name: "Pão de Hambúrguer"},
	{Category: "DLC Positiva", SubCategory: "Congelados", Name: "Onion Rings"},
	{Category: "DLC Positiva", Name: "Molho de Alho", Observation: "Conservar entre 0-4ºC"},
	{Category: "DLC Positiva", Name: "Molho Barbecue"},
	{Category: "DLC Positiva", Name: "Ketchup Aberto"},
	{Category: "DLC Positiva", Name: "Maionese Aberta"},
}

// negativaProteinasDefaults covers the frozen protein catalog, also Primária.
var negativaProteinasDefaults = []SeedItem{
	{Category: "DLC Negativa", SubCategory: "Proteínas", Name: "Hambúrguer de Vaca"},
	{Category: "DLC Negativa", SubCategory: "Proteínas", Name: "Peito de Frango Panado"},
	{Category: "DLC Negativa", SubCategory: "Proteínas", Name: "Nuggets de Frango"},
	{Category: "DLC Negativa", SubCategory: "Proteínas", Name: "Filete de Pescada"},
	{Category: "DLC Negativa", SubCategory: "Proteínas", Name: "Tiras de Frango"},
	{Category: "DLC Negativa", SubCategory: "Proteínas", Name: "Salsicha de Peru"},
}

// secundariaDefaults is the daily re-verification catalog. At merge time every
// entry is forced to DLC Secundária with the default expiry date, regardless
// of what the item itself says.
var secundariaDefaults = []SeedItem{
	{Category: "Molhos do Dia", Name: "Molho Tártaro"},
	{Category: "Molhos do Dia", Name: "Molho Cocktail"},
	{Category: "Molhos do Dia", Name: "Molho César"},
	{Category: "Preparados do Dia", Name: "Alface Preparada"},
	{Category: "Preparados do Dia", Name: "Tomate Preparado"},
	{Category: "Preparados do Dia", Name: "Ovo Cozido"},
	{Category: "Preparados do Dia", Name: "Guacamole"},
	{Category: "Sobremesas", Name: "Base de Sundae"},
	{Category: "Sobremesas", Name: "Topping de Caramelo"},
	{Category: "Sobremesas", Name: "Topping de Chocolate"},
}

// showcaseDefaults carries the sub-category display examples.
var showcaseDefaults = []SeedItem{
	{Category: "DLC Positiva", SubCategory: "Frescos", Name: "Alface L6",
		ExpiryDate: "2025-12-10T18:00", Observation: "Exemplo com subcategoria"},
	{Category: "DLC Positiva", SubCategory: "Congelados", Name: "Batata Frita",
		ExpiryDate: "2025-12-20T00:00", Observation: "Outro exemplo"},
}

// DefaultProduct is a seed item resolved to a concrete product draft with its
// stable id and DLC type.
type DefaultProduct struct {
	ID          string
	DLCType     domain.DLCType
	SeedItem
}

// DefaultProducts assembles every seed list into product drafts with stable
// ids. Two entries sharing (category, name, dlcType) collide on id, and the
// later one wins at insertion, an accepted constraint of the stable-id scheme.
func DefaultProducts() []DefaultProduct {
	out := make([]DefaultProduct, 0,
		len(primariaDefaults)+len(negativaProteinasDefaults)+len(secundariaDefaults)+len(showcaseDefaults))

	for _, item := range primariaDefaults {
		out = append(out, DefaultProduct{
			ID:       StableID(item.Category, item.Name, domain.DLCPrimaria),
			DLCType:  domain.DLCPrimaria,
			SeedItem: item,
		})
	}
	for _, item := range negativaProteinasDefaults {
		out = append(out, DefaultProduct{
			ID:       StableID(item.Category, item.Name, domain.DLCPrimaria),
			DLCType:  domain.DLCPrimaria,
			SeedItem: item,
		})
	}
	for _, item := range secundariaDefaults {
		item.ExpiryDate = DefaultExpiryDate
		out = append(out, DefaultProduct{
			ID:       StableID(item.Category, item.Name, domain.DLCSecundaria),
			DLCType:  domain.DLCSecundaria,
			SeedItem: item,
		})
	}
	for _, item := range showcaseDefaults {
		out = append(out, DefaultProduct{
			ID:       StableID(item.Category, item.Name, domain.DLCPrimaria),
			DLCType:  domain.DLCPrimaria,
			SeedItem: item,
		})
	}
	return out
}
