package matching

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Ananya-Nair20/T-Care/internal/domain/person"
)

func postJSON(t *testing.T, h echo.HandlerFunc, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, h(e.NewContext(req, rec))
}

func TestFindDonorsHandler_UnknownPatientReturnsEmpty200(t *testing.T) {
	h := NewHandler(newTestService(newMockRepo()))

	rec, err := postJSON(t, h.FindDonors, `{"patient_id":"missing"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var matches []*MatchCandidate
	if err := json.Unmarshal(rec.Body.Bytes(), &matches); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("expected empty list, got %d matches", len(matches))
	}
}

func TestFindDonorsHandler_InvalidLimitIs400(t *testing.T) {
	h := NewHandler(newTestService(newMockRepo()))

	_, err := postJSON(t, h.FindDonors, `{"patient_id":"P1","limit":-1}`)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", httpErr.Code)
	}
}

func TestFindDonorsHandler_ReturnsRankedMatches(t *testing.T) {
	repo := newMockRepo()
	patient := located("P1", person.APositive, 28.61, 77.20)
	patient.Role = person.RolePatient
	repo.addPatient(patient)
	repo.addDonor(located("D1", person.APositive, 28.61, 77.20))
	h := NewHandler(newTestService(repo))

	rec, err := postJSON(t, h.FindDonors, `{"patient_id":"P1"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var matches []*MatchCandidate
	if err := json.Unmarshal(rec.Body.Bytes(), &matches); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(matches) != 1 || matches[0].Donor.ID != "D1" {
		t.Fatalf("expected one match for D1, got %v", matches)
	}
	if matches[0].Score <= 0 {
		t.Errorf("expected positive score, got %f", matches[0].Score)
	}
}

func TestCompatibilityHandler(t *testing.T) {
	h := NewHandler(newTestService(newMockRepo()))
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("blood_group")
	c.SetParamValues("AB POSITIVE")

	if err := h.Compatibility(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		PatientBloodGroup     string   `json:"patient_blood_group"`
		CompatibleDonorGroups []string `json:"compatible_donor_groups"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.PatientBloodGroup != "AB+" {
		t.Errorf("expected normalized AB+, got %q", body.PatientBloodGroup)
	}
	if len(body.CompatibleDonorGroups) != 8 {
		t.Errorf("AB+ should accept all 8 groups, got %d", len(body.CompatibleDonorGroups))
	}
}

func TestCompatibilityHandler_BadGroupIs400(t *testing.T) {
	h := NewHandler(newTestService(newMockRepo()))
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("blood_group")
	c.SetParamValues("Z+")

	err := h.Compatibility(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", httpErr.Code)
	}
}
