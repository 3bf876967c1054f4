package seminarRepo

import "seminarhall/models"

// SeminarRepository is the booking store collaborator: it supplies the full
// current list of raw seminar records and persists workflow changes. The
// availability engine never reads the store itself; callers fetch a snapshot
// here and pass it down. GetByID returns (nil, nil) when no record matches.
type SeminarRepository interface {
	ListAll() ([]models.Seminar, error)
	ListByStatus(status string) ([]models.Seminar, error)
	GetByID(id string) (*models.Seminar, error)
	Create(s *models.Seminar) error
	UpdateStatus(id, status, remarks string) error
	Delete(id string) error
}
