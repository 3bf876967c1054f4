package seminar

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"seminarhall/config"
	"seminarhall/models"
	"seminarhall/services/schedule"
	"seminarhall/services/tasks"
	"seminarhall/utils"
)

// ErrNotFound marks lookups of seminar ids that have no record.
var ErrNotFound = errors.New("seminar not found")

// Submit runs a conflict check for the candidate booking and persists it.
// Admin submissions are approved immediately; everyone else starts PENDING
// and waits for review.
func (svc *DefaultSeminarService) Submit(s *models.Seminar, submitterRole string) (*models.Seminar, error) {
	if s == nil {
		return nil, fmt.Errorf("seminar payload is required")
	}
	hallName, hallID := s.HallKeys()
	if hallName == "" && hallID == "" {
		return nil, schedule.NewInvalidRequest("hall", "hall is required")
	}

	if svc.HallRepo != nil {
		key := firstNonEmptyStr(hallID, hallName)
		hall, err := svc.HallRepo.GetByKey(key)
		if err != nil {
			return nil, fmt.Errorf("failed to look up hall %q: %w", key, err)
		}
		if hall == nil || !hall.Active {
			return nil, schedule.NewInvalidRequest("hall", fmt.Sprintf("hall %q is not available for booking", key))
		}
	}

	req, err := requestFromSeminar(s)
	if err != nil {
		return nil, err
	}
	set, err := svc.snapshot()
	if err != nil {
		return nil, err
	}
	result, err := schedule.CheckAvailability(req, set, bookingOptions())
	if err != nil {
		return nil, err
	}
	if !result.OK {
		return nil, &ConflictError{Result: result}
	}

	s.ID = uuid.New().String()
	s.AppliedAt = time.Now()
	if submitterRole == models.RoleAdmin {
		s.Status = models.StatusApproved
	} else {
		s.Status = models.StatusPending
	}

	if err := svc.Repo.Create(s); err != nil {
		return nil, fmt.Errorf("failed to save seminar: %w", err)
	}
	if s.Status == models.StatusApproved {
		svc.scheduleReminder(s)
	}
	utils.GetLogger().Info("seminar submitted",
		zap.String("id", s.ID), zap.String("status", s.Status), zap.String("hall", firstNonEmptyStr(hallName, hallID)))
	return s, nil
}

// List returns all seminars, or only those in the given status.
func (svc *DefaultSeminarService) List(status string) ([]models.Seminar, error) {
	if status == "" {
		return svc.Repo.ListAll()
	}
	return svc.Repo.ListByStatus(status)
}

// UpdateStatus moves a seminar through the review workflow. Approving a
// PENDING request re-checks availability first: other requests may have been
// approved since it was submitted.
func (svc *DefaultSeminarService) UpdateStatus(id, status, remarks string) (*models.Seminar, error) {
	existing, err := svc.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("seminar %q: %w", id, ErrNotFound)
	}
	if !validTransition(existing.Status, status) {
		return nil, schedule.NewInvalidRequest("status",
			fmt.Sprintf("cannot move seminar from %s to %s", existing.Status, status))
	}

	if status == models.StatusApproved {
		req, err := requestFromSeminar(existing)
		if err != nil {
			return nil, err
		}
		set, err := svc.snapshot()
		if err != nil {
			return nil, err
		}
		result, err := schedule.CheckAvailability(req, set, bookingOptions())
		if err != nil {
			return nil, err
		}
		if !result.OK {
			return nil, &ConflictError{Result: result}
		}
	}

	if err := svc.Repo.UpdateStatus(id, status, remarks); err != nil {
		return nil, fmt.Errorf("failed to update seminar %q: %w", id, err)
	}
	existing.Status = status
	if remarks != "" {
		existing.Remarks = remarks
	}
	if status == models.StatusApproved {
		svc.scheduleReminder(existing)
	}
	utils.GetLogger().Info("seminar status updated",
		zap.String("id", id), zap.String("status", status))
	return existing, nil
}

// Delete removes a seminar record outright. Reserved for admins; departments
// request cancellation through UpdateStatus instead.
func (svc *DefaultSeminarService) Delete(id string) error {
	existing, err := svc.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("seminar %q: %w", id, ErrNotFound)
	}
	return svc.Repo.Delete(id)
}

// validTransition is the status workflow: PENDING is the hub, cancellation
// goes through a request step, and terminal states stay terminal.
func validTransition(from, to string) bool {
	switch from {
	case models.StatusPending:
		return to == models.StatusApproved || to == models.StatusRejected || to == models.StatusCancelled
	case models.StatusApproved:
		return to == models.StatusCancelRequested || to == models.StatusCancelled
	case models.StatusCancelRequested:
		return to == models.StatusCancelled || to == models.StatusApproved
	default:
		return false
	}
}

// scheduleReminder enqueues a reminder ahead of the seminar's first slot.
// Failures are logged and swallowed; reminders are best-effort.
func (svc *DefaultSeminarService) scheduleReminder(s *models.Seminar) {
	if svc.AsynqClient == nil {
		return
	}
	logger := utils.GetLogger()

	date := firstNonEmptyStr(s.Date, s.StartDate, s.DateFrom)
	if date == "" {
		return
	}
	startMin := 0
	if m, ok := schedule.ParseTimeOfDay(s.StartTime); ok {
		startMin = m
	} else {
		startMin = config.AppConfig.BookingDayStart
	}

	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		logger.Warn("cannot schedule reminder: bad date", zap.String("seminarId", s.ID), zap.String("date", date))
		return
	}
	fireAt := day.Add(time.Duration(startMin-config.AppConfig.ReminderLeadMin) * time.Minute)
	if fireAt.Before(time.Now()) {
		return
	}

	hallName, hallID := s.HallKeys()
	payload := models.ReminderPayload{
		SeminarID: s.ID,
		Hall:      firstNonEmptyStr(hallName, hallID),
		Title:     s.SlotTitle,
		Email:     s.Email,
		Date:      date,
		StartTime: s.StartTime,
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		logger.Error("failed to build reminder task", zap.Error(err), zap.String("seminarId", s.ID))
		return
	}
	if _, err := svc.AsynqClient.Enqueue(task, opts...); err != nil {
		logger.Error("failed to enqueue reminder task", zap.Error(err), zap.String("seminarId", s.ID))
	}
}

// requestFromSeminar maps a raw booking record onto the checker's request
// shape, picking time mode or day mode from the record's fields.
func requestFromSeminar(s *models.Seminar) (models.AvailabilityRequest, error) {
	hallName, hallID := s.HallKeys()
	hall := firstNonEmptyStr(hallName, hallID)

	startDate := firstNonEmptyStr(s.StartDate, s.DateFrom)
	endDate := firstNonEmptyStr(s.EndDate, s.DateTo)
	multiDay := len(s.DaySlots) > 0 ||
		(startDate != "" && endDate != "" && (startDate != endDate || s.Slot == "Day"))

	if multiDay {
		return models.AvailabilityRequest{
			Hall:      hall,
			Mode:      "day",
			StartDate: startDate,
			EndDate:   endDate,
			DaySlots:  s.DaySlots,
		}, nil
	}

	date := firstNonEmptyStr(s.Date, startDate)
	if date == "" {
		return models.AvailabilityRequest{}, schedule.NewInvalidRequest("date", "a booking date is required")
	}
	return models.AvailabilityRequest{
		Hall:      hall,
		Mode:      "time",
		Date:      date,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
	}, nil
}

func firstNonEmptyStr(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// ConflictError carries the checker result when a submission or approval is
// rejected for overlapping an existing booking.
type ConflictError struct {
	Result models.CheckResult
}

func (e *ConflictError) Error() string {
	return e.Result.Message
}
