package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handler := NewHealthHandler("test-service", "1.0.0", "stub")
	handler.RegisterRoutes(router)

	for _, path := range []string{"/health", "/healthz"} {
		req, err := http.NewRequest("GET", path, nil)
		if err != nil {
			t.Fatal(err)
		}

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if status := rr.Code; status != http.StatusOK {
			t.Errorf("handler returned wrong status code: got %v want %v",
				status, http.StatusOK)
		}

		var response HealthResponse
		if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
			t.Errorf("failed to unmarshal response: %v", err)
		}

		if response.Status != "healthy" {
			t.Errorf("expected status 'healthy', got %s", response.Status)
		}

		if response.Service != "test-service" {
			t.Errorf("expected service 'test-service', got %s", response.Service)
		}

		if response.Version != "1.0.0" {
			t.Errorf("expected version '1.0.0', got %s", response.Version)
		}

		if response.Scorer != "stub" {
			t.Errorf("expected scorer 'stub', got %s", response.Scorer)
		}
	}
}

func TestHealthCheckMethodNotAllowed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.HandleMethodNotAllowed = true

	handler := NewHealthHandler("test-service", "1.0.0", "stub")
	handler.RegisterRoutes(router)

	req, err := http.NewRequest("POST", "/health", nil)
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusMethodNotAllowed {
		t.Errorf("handler returned wrong status code: got %v want %v",
			status, http.StatusMethodNotAllowed)
	}
}
