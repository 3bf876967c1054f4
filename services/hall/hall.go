package hall

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	hallRepo "seminarhall/database/repository/hall"
	"seminarhall/models"
	"seminarhall/utils"
)

// HallService manages the hall directory.
type HallService interface {
	List(activeOnly bool) ([]models.Hall, error)
	Get(key string) (*models.Hall, error)
	Create(h *models.Hall) (*models.Hall, error)
	Update(h *models.Hall) (*models.Hall, error)
	Delete(id string) error
}

// DefaultHallService implements HallService.
type DefaultHallService struct {
	Repo hallRepo.HallRepository
}

func (svc *DefaultHallService) List(activeOnly bool) ([]models.Hall, error) {
	halls, err := svc.Repo.ListAll()
	if err != nil {
		return nil, err
	}
	if !activeOnly {
		return halls, nil
	}
	out := make([]models.Hall, 0, len(halls))
	for _, h := range halls {
		if h.Active {
			out = append(out, h)
		}
	}
	return out, nil
}

// Get looks a hall up by id or name.
func (svc *DefaultHallService) Get(key string) (*models.Hall, error) {
	if key == "" {
		return nil, fmt.Errorf("hall key is required")
	}
	return svc.Repo.GetByKey(key)
}

func (svc *DefaultHallService) Create(h *models.Hall) (*models.Hall, error) {
	if h.Name == "" {
		return nil, fmt.Errorf("hall name is required")
	}
	if existing, err := svc.Repo.GetByKey(h.Name); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("a hall named %q already exists", h.Name)
	}
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	h.Active = true
	if err := svc.Repo.Create(h); err != nil {
		return nil, fmt.Errorf("failed to create hall: %w", err)
	}
	utils.GetLogger().Info("hall created", zap.String("id", h.ID), zap.String("name", h.Name))
	return h, nil
}

func (svc *DefaultHallService) Update(h *models.Hall) (*models.Hall, error) {
	if h.ID == "" {
		return nil, fmt.Errorf("hall id is required")
	}
	if err := svc.Repo.Update(h); err != nil {
		return nil, fmt.Errorf("failed to update hall: %w", err)
	}
	return h, nil
}

func (svc *DefaultHallService) Delete(id string) error {
	if id == "" {
		return fmt.Errorf("hall id is required")
	}
	return svc.Repo.Delete(id)
}
