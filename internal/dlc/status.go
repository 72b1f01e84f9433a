package dlc

import (
	"fmt"

	"github.com/amdora/dlccontrol/internal/domain"
)

// Classify maps a day count to a status bucket. Thresholds are fixed and
// evaluated in order, first match wins.
func Classify(days int) domain.Status {
	switch {
	case days < 0:
		return domain.StatusExpired
	case days == 0:
		return domain.StatusToday
	case days <= 3:
		return domain.StatusCritical
	case days <= 7:
		return domain.StatusWarning
	default:
		return domain.StatusOK
	}
}

var statusLabels = map[domain.Status]string{
	domain.StatusExpired:  "Vencido",
	domain.StatusToday:    "Vence Hoje",
	domain.StatusCritical: "Alerta Crítico",
	domain.StatusWarning:  "Vence em Breve",
	domain.StatusOK:       "OK",
}

var statusColors = map[domain.Status]string{
	domain.StatusExpired:  "bg-expired text-expired-foreground",
	domain.StatusToday:    "bg-warning text-warning-foreground",
	domain.StatusCritical: "bg-destructive text-destructive-foreground animate-pulse",
	domain.StatusWarning:  "bg-warning/80 text-warning-foreground",
	domain.StatusOK:       "bg-success/20 text-success border border-success/30",
}

// StatusLabel returns the display label for a status. Asking for an unmapped
// status is a programming error and panics.
func StatusLabel(s domain.Status) string {
	label, ok := statusLabels[s]
	if !ok {
		panic(fmt.Sprintf("dlc: no label for status %q", s))
	}
	return label
}

// StatusColor returns the style class for a status. Panics on an unmapped
// status, same as StatusLabel.
func StatusColor(s domain.Status) string {
	color, ok := statusColors[s]
	if !ok {
		panic(fmt.Sprintf("dlc: no color for status %q", s))
	}
	return color
}
