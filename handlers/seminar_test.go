package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"seminarhall/services/schedule"
	"seminarhall/services/seminar"
)

func TestSubmitSeminarHandlerUnknownHallIsBadRequest(t *testing.T) {
	svc := &stubSeminarService{
		submitErr: schedule.NewInvalidRequest("hall", `hall "No Such Hall" is not available for booking`),
	}
	r := newTestRouter()
	r.POST("/seminars", SubmitSeminarHandler(svc))

	body := `{"hallName":"No Such Hall","date":"2025-03-10","startTime":"10:00","endTime":"11:00"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/seminars", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body: %s", w.Code, w.Body.String())
	}
}

func TestUpdateStatusHandlerUnknownIDIsNotFound(t *testing.T) {
	svc := &stubSeminarService{
		updateErr: fmt.Errorf("seminar %q: %w", "missing", seminar.ErrNotFound),
	}
	r := newTestRouter()
	r.PATCH("/seminars/:id/status", UpdateSeminarStatusHandler(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/seminars/missing/status", strings.NewReader(`{"status":"APPROVED"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404; body: %s", w.Code, w.Body.String())
	}
}

func TestDeleteSeminarHandlerUnknownIDIsNotFound(t *testing.T) {
	svc := &stubSeminarService{
		deleteErr: fmt.Errorf("seminar %q: %w", "missing", seminar.ErrNotFound),
	}
	r := newTestRouter()
	r.DELETE("/seminars/:id", DeleteSeminarHandler(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/seminars/missing", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404; body: %s", w.Code, w.Body.String())
	}
}

func TestSubmitSeminarHandlerConflictIsConflict(t *testing.T) {
	svc := &stubSeminarService{
		submitErr: &seminar.ConflictError{},
	}
	r := newTestRouter()
	r.POST("/seminars", SubmitSeminarHandler(svc))

	body := `{"hallName":"Main Auditorium","date":"2025-03-10","startTime":"10:00","endTime":"11:00"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/seminars", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409; body: %s", w.Code, w.Body.String())
	}
}
