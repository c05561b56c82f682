package person

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Ananya-Nair20/T-Care/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/persons", h.Register)
	api.GET("/persons/:id", h.Get)
	api.GET("/persons", h.ListDonors)
	api.DELETE("/persons/:id", h.Deactivate)
	api.POST("/persons/:id/donations", h.RecordDonation)
}

type registerRequest struct {
	ID                string   `json:"id"`
	Role              string   `json:"role"`
	BloodType         string   `json:"blood_type"`
	Latitude          *float64 `json:"latitude"`
	Longitude         *float64 `json:"longitude"`
	EligibilityStatus string   `json:"eligibility_status"`
	TotalCalls        int      `json:"total_calls"`
}

func (h *Handler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	bt, err := ParseBloodType(req.BloodType)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p := &Person{
		ID:                req.ID,
		Role:              Role(req.Role),
		BloodType:         bt,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		EligibilityStatus: EligibilityStatus(req.EligibilityStatus),
		TotalCalls:        req.TotalCalls,
	}
	if err := h.svc.Register(c.Request().Context(), p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) Get(c echo.Context) error {
	p, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "person not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) ListDonors(c echo.Context) error {
	pg := pagination.FromContext(c)
	f := DonorFilter{
		ExcludeInactive: c.QueryParam("include_inactive") != "true",
		EligibleOnly:    c.QueryParam("eligible_only") == "true",
	}
	if bg := c.QueryParam("blood_type"); bg != "" {
		bt, err := ParseBloodType(bg)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		f.BloodTypes = []BloodType{bt}
	}
	items, total, err := h.svc.ListDonors(c.Request().Context(), f, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg))
}

func (h *Handler) Deactivate(c echo.Context) error {
	err := h.svc.Deactivate(c.Request().Context(), c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "person not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

type donationRequest struct {
	BridgeID  *uuid.UUID `json:"bridge_id"`
	DonatedAt *time.Time `json:"donated_at"`
}

func (h *Handler) RecordDonation(c echo.Context) error {
	var req donationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	donatedAt := time.Now()
	if req.DonatedAt != nil {
		donatedAt = *req.DonatedAt
	}
	donor, err := h.svc.RecordDonation(c.Request().Context(), c.Param("id"), req.BridgeID, donatedAt)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "donor not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, donor)
}
