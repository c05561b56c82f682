package bridge

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Ananya-Nair20/T-Care/internal/domain/person"
)

type Handler struct {
	registry *Registry
}

func NewHandler(registry *Registry) *Handler {
	return &Handler{registry: registry}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/bridges", h.CreateOrGet)
	api.DELETE("/bridges/:id", h.Deactivate)
	api.GET("/bridges/patient/:id", h.ListForPatient)
	api.GET("/bridges/donor/:id", h.ListForDonor)
}

type createRequest struct {
	PatientID          string   `json:"patient_id"`
	DonorID            string   `json:"donor_id"`
	CompatibilityScore *float64 `json:"compatibility_score"`
}

func (h *Handler) CreateOrGet(c echo.Context) error {
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.PatientID == "" || req.DonorID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "patient_id and donor_id are required")
	}
	b, err := h.registry.CreateOrGet(c.Request().Context(), req.PatientID, req.DonorID, req.CompatibilityScore)
	if errors.Is(err, person.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) Deactivate(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	err = h.registry.Deactivate(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "bridge not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListForPatient(c echo.Context) error {
	items, err := h.registry.ListForPatient(c.Request().Context(), c.Param("id"), activeOnly(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListForDonor(c echo.Context) error {
	items, err := h.registry.ListForDonor(c.Request().Context(), c.Param("id"), activeOnly(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

// activeOnly defaults to true unless active_only=false is passed.
func activeOnly(c echo.Context) bool {
	return c.QueryParam("active_only") != "false"
}
