package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"garagepro-backend/services"

	"github.com/gin-gonic/gin"
)

func TestRespondDomainError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        *services.Error
		wantStatus int
	}{
		{"validation", &services.Error{Kind: services.KindValidation, Message: "bad date"}, http.StatusBadRequest},
		{"insufficient stock", &services.Error{Kind: services.KindInsufficientStock, Message: "2 in stock"}, http.StatusBadRequest},
		{"not found", &services.Error{Kind: services.KindNotFound, Message: "no booking"}, http.StatusNotFound},
		{"forbidden", &services.Error{Kind: services.KindForbidden, Message: "admin only"}, http.StatusForbidden},
		{"conflict", &services.Error{Kind: services.KindConflict, Message: "plate taken"}, http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			respondDomainError(c, tt.err)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if !strings.Contains(w.Body.String(), tt.err.Message) {
				t.Errorf("body %q does not carry the domain message", w.Body.String())
			}
		})
	}
}

// Server errors hide their cause from the client but keep it on the context
// for the request logger.
func TestRespondDomainErrorServerError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cause := errors.New("connection refused")
	err := &services.Error{Kind: services.KindUnavailable, Message: "storage unavailable", Err: cause}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondDomainError(c, err)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	if strings.Contains(w.Body.String(), "connection refused") ||
		strings.Contains(w.Body.String(), "storage unavailable") {
		t.Errorf("body %q leaks internals", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "internal server error") {
		t.Errorf("body %q missing the generic message", w.Body.String())
	}
	if len(c.Errors) != 1 || !errors.Is(c.Errors[0].Err, cause) {
		t.Errorf("context errors = %v, want the wrapped cause attached", c.Errors)
	}
}
