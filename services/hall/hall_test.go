package hall

import (
	"testing"

	"seminarhall/models"
)

// fakeHallRepo follows the repository contract: lookups of unknown keys
// return (nil, nil).
type fakeHallRepo struct {
	halls []models.Hall
}

func (r *fakeHallRepo) ListAll() ([]models.Hall, error) { return r.halls, nil }

func (r *fakeHallRepo) GetByKey(key string) (*models.Hall, error) {
	for i := range r.halls {
		if r.halls[i].ID == key || r.halls[i].Name == key {
			h := r.halls[i]
			return &h, nil
		}
	}
	return nil, nil
}

func (r *fakeHallRepo) Create(h *models.Hall) error { r.halls = append(r.halls, *h); return nil }
func (r *fakeHallRepo) Update(h *models.Hall) error { return nil }
func (r *fakeHallRepo) Delete(id string) error      { return nil }

func TestCreateFreshHall(t *testing.T) {
	repo := &fakeHallRepo{}
	svc := &DefaultHallService{Repo: repo}

	created, err := svc.Create(&models.Hall{Name: "Main Auditorium", Capacity: 300})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Error("expected a generated id")
	}
	if !created.Active {
		t.Error("new halls should start active")
	}
	if len(repo.halls) != 1 {
		t.Fatalf("persisted %d halls, want 1", len(repo.halls))
	}
}

func TestCreateDuplicateHallName(t *testing.T) {
	repo := &fakeHallRepo{halls: []models.Hall{{ID: "h-1", Name: "Main Auditorium", Active: true}}}
	svc := &DefaultHallService{Repo: repo}

	if _, err := svc.Create(&models.Hall{Name: "Main Auditorium"}); err == nil {
		t.Fatal("expected an error for a duplicate name")
	}
	if len(repo.halls) != 1 {
		t.Errorf("duplicate must not be persisted; have %d halls", len(repo.halls))
	}
}

func TestListActiveOnly(t *testing.T) {
	repo := &fakeHallRepo{halls: []models.Hall{
		{ID: "h-1", Name: "Main Auditorium", Active: true},
		{ID: "h-2", Name: "Old Annex", Active: false},
	}}
	svc := &DefaultHallService{Repo: repo}

	active, err := svc.List(true)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(active) != 1 || active[0].ID != "h-1" {
		t.Errorf("active halls = %+v, want only h-1", active)
	}
}

func TestGetUnknownHall(t *testing.T) {
	svc := &DefaultHallService{Repo: &fakeHallRepo{}}

	h, err := svc.Get("nowhere")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if h != nil {
		t.Errorf("expected nil for an unknown hall, got %+v", h)
	}
}
