package seminar

import (
	"github.com/hibiken/asynq"

	hallRepo "seminarhall/database/repository/hall"
	seminarRepo "seminarhall/database/repository/seminar"
	"seminarhall/models"
)

// SeminarService is the booking workflow around the schedule engine: it
// fetches the raw record snapshot, runs availability checks, and persists
// requests and status changes.
type SeminarService interface {
	CheckAvailability(req models.AvailabilityRequest) (models.CheckResult, error)
	DayAvailability(hall, date string) (*models.DayAvailability, error)
	MonthSummary(hall string, year, month int) ([]models.DaySummary, error)

	Submit(s *models.Seminar, submitterRole string) (*models.Seminar, error)
	List(status string) ([]models.Seminar, error)
	UpdateStatus(id, status, remarks string) (*models.Seminar, error)
	Delete(id string) error
}

// DefaultSeminarService implements SeminarService.
type DefaultSeminarService struct {
	Repo        seminarRepo.SeminarRepository
	HallRepo    hallRepo.HallRepository
	AsynqClient *asynq.Client // reminder queue; optional
}
