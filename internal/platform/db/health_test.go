package db

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestPoolStats_Fields(t *testing.T) {
	stats := &PoolStats{
		TotalConns:      10,
		IdleConns:       5,
		AcquiredConns:   5,
		MaxConns:        20,
		AcquireCount:    100,
		AcquireDuration: "1.5s",
		Healthy:         true,
	}

	if stats.TotalConns != 10 {
		t.Errorf("expected TotalConns 10, got %d", stats.TotalConns)
	}
	if stats.IdleConns != 5 {
		t.Errorf("expected IdleConns 5, got %d", stats.IdleConns)
	}
	if stats.AcquiredConns != 5 {
		t.Errorf("expected AcquiredConns 5, got %d", stats.AcquiredConns)
	}
	if stats.MaxConns != 20 {
		t.Errorf("expected MaxConns 20, got %d", stats.MaxConns)
	}
	if !stats.Healthy {
		t.Error("expected Healthy to be true")
	}
}

func TestHealthResponse_JSON(t *testing.T) {
	resp := HealthResponse{
		Status: "healthy",
		Pool: &PoolStats{
			TotalConns:      2,
			MaxConns:        10,
			AcquireDuration: "250ms",
			Healthy:         true,
		},
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	body := string(data)

	if !strings.Contains(body, `"status":"healthy"`) {
		t.Errorf("missing status field: %s", body)
	}
	if !strings.Contains(body, `"total_conns":2`) {
		t.Errorf("missing pool stats: %s", body)
	}
	if strings.Contains(body, `"error"`) {
		t.Errorf("error field should be omitted when empty: %s", body)
	}
}

func TestHealthResponse_UnhealthyJSON(t *testing.T) {
	resp := HealthResponse{
		Status: "unhealthy",
		Error:  "connection refused",
		Pool:   &PoolStats{Healthy: false},
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	body := string(data)

	if !strings.Contains(body, `"error":"connection refused"`) {
		t.Errorf("missing error field: %s", body)
	}
	if !strings.Contains(body, `"healthy":false`) {
		t.Errorf("missing healthy flag: %s", body)
	}
}
