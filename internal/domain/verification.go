package domain

// VerificationLog is one daily-verification event. Entries are immutable once
// created; the ledger only ever prepends.
type VerificationLog struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	VerifiedBy    string `json:"verifiedBy,omitempty"`
	Observation   string `json:"observation,omitempty"`
	ProductsCount int    `json:"productsCount"`
}
