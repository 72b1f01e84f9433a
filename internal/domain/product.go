package domain

// DLCType partitions products between the shelf-life workflows.
type DLCType string

const (
	DLCPrimaria   DLCType = "Primária"
	DLCSecundaria DLCType = "Secundária"
	DLCStock      DLCType = "Stock"
)

// Valid reports whether t is one of the known DLC types.
func (t DLCType) Valid() bool {
	switch t {
	case DLCPrimaria, DLCSecundaria, DLCStock:
		return true
	}
	return false
}

// Status is the expiry classification of a product.
type Status string

const (
	StatusExpired  Status = "expired"
	StatusToday    Status = "today"
	StatusCritical Status = "critical"
	StatusWarning  Status = "warning"
	StatusOK       Status = "ok"
)

// Product represents a tracked perishable item. DaysToExpiry and Status are
// derived fields, recomputed whenever any expiry instant changes; they are
// never an independent source of truth.
type Product struct {
	ID           string   `json:"id" form:"id"`
	Category     string   `json:"category" form:"category"`
	SubCategory  string   `json:"subCategory,omitempty" form:"subCategory"`
	Name         string   `json:"name" form:"name"`
	ExpiryDate   string   `json:"expiryDate" form:"expiryDate"`
	ExpiryDates  []string `json:"expiryDates,omitempty" form:"expiryDates"`
	DLCType      DLCType  `json:"dlcType" form:"dlcType"`
	DaysToExpiry int      `json:"daysToExpiry"`
	Status       Status   `json:"status"`
	Observation  string   `json:"observation,omitempty" form:"observation"`
}

// Summary is a pure reduction over a product collection at one instant.
// It is never persisted, always recomputed.
type Summary struct {
	Total           int `json:"total"`
	Expired         int `json:"expired"`
	ExpiringToday   int `json:"expiringToday"`
	ExpiringIn7Days int `json:"expiringIn7Days"`
	OK              int `json:"ok"`
	ConformityRate  int `json:"conformityRate"`
}
