package scheduling

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Ananya-Nair20/T-Care/internal/domain/matching"
	"github.com/Ananya-Nair20/T-Care/internal/domain/person"
)

type Handler struct {
	scheduler *Scheduler
}

func NewHandler(scheduler *Scheduler) *Handler {
	return &Handler{scheduler: scheduler}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/scheduler/emergency-donors", h.EmergencyDonors)
	api.POST("/scheduler/schedule", h.Schedule)
}

func (h *Handler) EmergencyDonors(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid lat")
	}
	lon, err := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid lon")
	}
	bt, err := person.ParseBloodType(c.QueryParam("blood_group"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	topN := 10
	if raw := c.QueryParam("top_n"); raw != "" {
		topN, err = strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid top_n")
		}
	}

	donors, err := h.scheduler.NearestEmergencyDonors(c.Request().Context(),
		matching.GeoPoint{Latitude: lat, Longitude: lon}, bt, topN)
	if errors.Is(err, ErrInvalidInput) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, donors)
}

type scheduleRequest struct {
	PatientID       string    `json:"patient_id"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	BloodGroup      string    `json:"blood_group"`
	TransfusionDate time.Time `json:"transfusion_date"`
	UnitsNeeded     int       `json:"units_needed"`
}

func (h *Handler) Schedule(c echo.Context) error {
	var req scheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	bt, err := person.ParseBloodType(req.BloodGroup)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.UnitsNeeded == 0 {
		req.UnitsNeeded = 1
	}

	assignments, err := h.scheduler.ScheduleRecurring(c.Request().Context(), ScheduleRequest{
		PatientID:       req.PatientID,
		Location:        matching.GeoPoint{Latitude: req.Latitude, Longitude: req.Longitude},
		BloodType:       bt,
		TransfusionDate: req.TransfusionDate,
		UnitsNeeded:     req.UnitsNeeded,
	})
	if errors.Is(err, ErrInvalidInput) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, assignments)
}
