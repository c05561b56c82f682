package matching

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Ananya-Nair20/T-Care/internal/domain/person"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/matching/find-donors", h.FindDonors)
	api.GET("/matching/compatibility/:blood_group", h.Compatibility)
}

type matchRequest struct {
	PatientID string `json:"patient_id"`
	Limit     int    `json:"limit"`
	Emergency bool   `json:"emergency"`
}

func (h *Handler) FindDonors(c echo.Context) error {
	var req matchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Limit == 0 {
		req.Limit = 10
	}
	matches, err := h.svc.FindMatches(c.Request().Context(), req.PatientID, req.Limit, req.Emergency)
	if errors.Is(err, ErrInvalidInput) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, matches)
}

func (h *Handler) Compatibility(c echo.Context) error {
	bt, err := person.ParseBloodType(c.Param("blood_group"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"patient_blood_group":     bt,
		"compatible_donor_groups": CompatibleDonorTypes(bt),
	})
}
