package user

import (
	"testing"

	"seminarhall/models"
)

// fakeUserRepo follows the repository contract: lookups of unknown emails
// or ids return (nil, nil).
type fakeUserRepo struct {
	users []models.User
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Create(u *models.User) error {
	r.users = append(r.users, *u)
	return nil
}

func TestRegisterFreshAccount(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := &DefaultUserService{Repo: repo}

	u, token, err := svc.Register("new@uni.edu", "sufficiently-long", "", "Physics")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if token == "" {
		t.Error("expected a signed token")
	}
	if u.Role != models.RoleDepartment {
		t.Errorf("role = %q, want %q", u.Role, models.RoleDepartment)
	}
	if u.PasswordHash == "sufficiently-long" {
		t.Error("password must be stored hashed")
	}
	if len(repo.users) != 1 {
		t.Fatalf("persisted %d accounts, want 1", len(repo.users))
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := &DefaultUserService{Repo: repo}

	if _, _, err := svc.Register("dup@uni.edu", "sufficiently-long", "", ""); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, _, err := svc.Register("dup@uni.edu", "another-password", "", ""); err == nil {
		t.Fatal("expected an error for a duplicate email")
	}
	if len(repo.users) != 1 {
		t.Errorf("duplicate must not be persisted; have %d accounts", len(repo.users))
	}
}

func TestLoginRoundTrip(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := &DefaultUserService{Repo: repo}

	if _, _, err := svc.Register("dean@uni.edu", "correct-horse", models.RoleAdmin, ""); err != nil {
		t.Fatalf("Register: %v", err)
	}

	u, token, err := svc.Login("dean@uni.edu", "correct-horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" || u.Role != models.RoleAdmin {
		t.Errorf("got token %q role %q", token, u.Role)
	}

	if _, _, err := svc.Login("dean@uni.edu", "wrong"); err == nil {
		t.Error("expected an error for a wrong password")
	}
	if _, _, err := svc.Login("ghost@uni.edu", "correct-horse"); err == nil {
		t.Error("expected an error for an unknown email")
	}
}
