package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/amdora/dlccontrol/internal/domain"
)

type verificationPayload struct {
	VerifiedBy  string `json:"verifiedBy"`
	Observation string `json:"observation"`
}

func (s *Server) listVerifications(c echo.Context) error {
	logs := s.app.Verifications()
	page, pageSize := parsePagination(c)
	lo, hi := pageSlice(len(logs), page, pageSize)
	return paged(c, logs[lo:hi], len(logs), page, pageSize)
}

// lastVerification returns the ledger head plus the derived badge and
// reminder flags consumed by the status card.
func (s *Server) lastVerification(c echo.Context) error {
	var last *domain.VerificationLog
	if entry, found := s.app.LastVerification(); found {
		last = &entry
	}
	return ok(c, map[string]interface{}{
		"last":          last,
		"verifiedToday": s.app.VerifiedToday(),
		"reminderDue":   s.app.ReminderDue(),
	})
}

func (s *Server) confirmVerification(c echo.Context) error {
	var payload verificationPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse verification", err.Error())
	}
	entry, err := s.app.ConfirmVerification(payload.VerifiedBy, payload.Observation)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to record verification", err.Error())
	}
	return ok(c, entry)
}

func (s *Server) exportVerifications(c echo.Context) error {
	filename, content := s.app.ExportVerificationsCSV()
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(content))
}
