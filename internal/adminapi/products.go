package adminapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/amdora/dlccontrol/internal/app"
	"github.com/amdora/dlccontrol/internal/dlc"
	"github.com/amdora/dlccontrol/internal/domain"
)

type productPayload struct {
	Category    string   `json:"category"`
	SubCategory string   `json:"subCategory"`
	Name        string   `json:"name"`
	ExpiryDate  string   `json:"expiryDate"`
	ExpiryDates []string `json:"expiryDates"`
	DLCType     string   `json:"dlcType"`
	Observation string   `json:"observation"`
}

// toDraft validates the payload and shapes it into a product draft without
// derived fields.
func (p *productPayload) toDraft() (domain.Product, error) {
	p.Category = strings.TrimSpace(p.Category)
	p.Name = strings.TrimSpace(p.Name)
	p.ExpiryDate = strings.TrimSpace(p.ExpiryDate)

	if p.Name == "" {
		return domain.Product{}, errors.New("name is required")
	}
	if p.Category == "" {
		return domain.Product{}, errors.New("category is required")
	}
	if p.ExpiryDate == "" && len(p.ExpiryDates) == 0 {
		return domain.Product{}, errors.New("at least one expiry date is required")
	}

	dlcType := domain.DLCType(p.DLCType)
	if p.DLCType == "" {
		dlcType = domain.DLCPrimaria
	}
	if !dlcType.Valid() {
		return domain.Product{}, errors.New("dlcType must be Primária, Secundária or Stock")
	}

	return domain.Product{
		Category:    p.Category,
		SubCategory: strings.TrimSpace(p.SubCategory),
		Name:        p.Name,
		ExpiryDate:  p.ExpiryDate,
		ExpiryDates: p.ExpiryDates,
		DLCType:     dlcType,
		Observation: strings.TrimSpace(p.Observation),
	}, nil
}

func (s *Server) listProducts(c echo.Context) error {
	filter := app.ProductFilter{
		Q:        strings.TrimSpace(c.QueryParam("q")),
		Category: strings.TrimSpace(c.QueryParam("category")),
		Status:   domain.Status(strings.TrimSpace(c.QueryParam("status"))),
		DLCType:  domain.DLCType(strings.TrimSpace(c.QueryParam("dlcType"))),
	}
	products := s.app.Products(filter)

	page, pageSize := parsePagination(c)
	lo, hi := pageSlice(len(products), page, pageSize)
	return paged(c, products[lo:hi], len(products), page, pageSize)
}

func (s *Server) createProduct(c echo.Context) error {
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}
	draft, err := payload.toDraft()
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
	}
	product, err := s.app.CreateProduct(draft)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to compute expiry", err.Error())
	}
	return ok(c, product)
}

func (s *Server) updateProduct(c echo.Context) error {
	id := c.Param("id")
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}
	draft, err := payload.toDraft()
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
	}
	product, err := s.app.UpdateProduct(id, draft)
	switch {
	case errors.Is(err, app.ErrProductNotFound):
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	case err != nil:
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to compute expiry", err.Error())
	}
	return ok(c, product)
}

func (s *Server) deleteProduct(c echo.Context) error {
	id := c.Param("id")
	err := s.app.DeleteProduct(id)
	switch {
	case errors.Is(err, app.ErrProductNotFound):
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	case err != nil:
		return fail(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to delete product", err.Error())
	}
	return ok(c, map[string]interface{}{"id": id})
}

func (s *Server) resetProducts(c echo.Context) error {
	seeded, err := s.app.ResetCatalog()
	if err != nil {
		return fail(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to reset catalog", err.Error())
	}
	return ok(c, map[string]interface{}{"products": len(seeded)})
}

func (s *Server) renewSecundaria(c echo.Context) error {
	count, err := s.app.RenewSecundaria()
	if err != nil {
		return fail(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to renew secundária products", err.Error())
	}
	return ok(c, map[string]interface{}{"renewed": count})
}

func (s *Server) exportProducts(c echo.Context) error {
	filename, content, err := s.app.ExportProductsCSV()
	if err != nil {
		return fail(c, http.StatusInternalServerError, "EXPORT_ERROR", "Failed to export products", err.Error())
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(content))
}

func (s *Server) getSummary(c echo.Context) error {
	dlcType := domain.DLCType(strings.TrimSpace(c.QueryParam("dlcType")))
	if dlcType != "" && !dlcType.Valid() {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unknown dlcType", nil)
	}
	return ok(c, s.app.Summary(dlcType))
}

func (s *Server) listCategories(c echo.Context) error {
	return ok(c, s.app.Categories())
}

// statusView decorates a status with its fixed display metadata.
type statusView struct {
	Status domain.Status `json:"status"`
	Label  string        `json:"label"`
	Color  string        `json:"color"`
}

func (s *Server) listStatuses(c echo.Context) error {
	return ok(c, statusViews())
}

func statusViews() []statusView {
	all := []domain.Status{
		domain.StatusExpired,
		domain.StatusToday,
		domain.StatusCritical,
		domain.StatusWarning,
		domain.StatusOK,
	}
	out := make([]statusView, 0, len(all))
	for _, s := range all {
		out = append(out, statusView{Status: s, Label: dlc.StatusLabel(s), Color: dlc.StatusColor(s)})
	}
	return out
}
