package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"seminarhall/models"
	"seminarhall/services/schedule"
)

type stubSeminarService struct {
	checkResult models.CheckResult
	checkErr    error
	day         *models.DayAvailability
	days        []models.DaySummary
	submitErr   error
	updateErr   error
	deleteErr   error
}

func (s *stubSeminarService) CheckAvailability(req models.AvailabilityRequest) (models.CheckResult, error) {
	return s.checkResult, s.checkErr
}

func (s *stubSeminarService) DayAvailability(hall, date string) (*models.DayAvailability, error) {
	return s.day, nil
}

func (s *stubSeminarService) MonthSummary(hall string, year, month int) ([]models.DaySummary, error) {
	return s.days, nil
}

func (s *stubSeminarService) Submit(sem *models.Seminar, role string) (*models.Seminar, error) {
	if s.submitErr != nil {
		return nil, s.submitErr
	}
	return sem, nil
}

func (s *stubSeminarService) List(status string) ([]models.Seminar, error) { return nil, nil }

func (s *stubSeminarService) UpdateStatus(id, status, remarks string) (*models.Seminar, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &models.Seminar{ID: id, Status: status}, nil
}

func (s *stubSeminarService) Delete(id string) error { return s.deleteErr }

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	RegisterValidators()
	return gin.New()
}

func TestCheckAvailabilityHandlerReturnsResult(t *testing.T) {
	svc := &stubSeminarService{
		checkResult: models.CheckResult{OK: true, Message: "Available on 2025-03-10: 09:00 AM — 10:00 AM"},
	}
	r := newTestRouter()
	r.POST("/check", CheckAvailabilityHandler(svc))

	body := `{"hall":"Main Auditorium","mode":"time","date":"2025-03-10","startTime":"09:00","endTime":"10:00"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/check", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"ok":true`) {
		t.Errorf("body missing ok=true: %s", w.Body.String())
	}
}

func TestCheckAvailabilityHandlerRejectsBadTime(t *testing.T) {
	r := newTestRouter()
	r.POST("/check", CheckAvailabilityHandler(&stubSeminarService{}))

	body := `{"hall":"Main Auditorium","mode":"time","date":"2025-03-10","startTime":"not a time","endTime":"10:00"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/check", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body: %s", w.Code, w.Body.String())
	}
}

func TestCheckAvailabilityHandlerMapsInvalidRequest(t *testing.T) {
	svc := &stubSeminarService{checkErr: schedule.NewInvalidRequest("date", "missing or malformed date")}
	r := newTestRouter()
	r.POST("/check", CheckAvailabilityHandler(svc))

	body := `{"hall":"Main Auditorium","mode":"day"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/check", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body: %s", w.Code, w.Body.String())
	}
}

func TestDayAvailabilityHandlerRequiresParams(t *testing.T) {
	r := newTestRouter()
	r.GET("/day", DayAvailabilityHandler(&stubSeminarService{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/day?hall=Main+Auditorium", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestMonthSummaryHandlerValidatesMonth(t *testing.T) {
	r := newTestRouter()
	r.GET("/month", MonthSummaryHandler(&stubSeminarService{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/month?hall=A&year=2025&month=13", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
