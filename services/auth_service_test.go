package services

import (
	"errors"
	"testing"
	"time"

	"servibook/entity"
	"servibook/utils"

	"golang.org/x/crypto/bcrypt"
)

type memUsers struct {
	byID   map[uint]*entity.User
	nextID uint
}

func newMemUsers() *memUsers { return &memUsers{byID: map[uint]*entity.User{}} }

func (m *memUsers) Create(u *entity.User) error {
	m.nextID++
	u.ID = m.nextID
	m.byID[u.ID] = u
	return nil
}

func (m *memUsers) FindByEmail(email string) (*entity.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.New("record not found")
}

func (m *memUsers) FindByID(id uint) (*entity.User, error) {
	if u, ok := m.byID[id]; ok {
		return u, nil
	}
	return nil, errors.New("record not found")
}

func (m *memUsers) CountByEmail(email string) (int64, error) {
	var n int64
	for _, u := range m.byID {
		if u.Email == email {
			n++
		}
	}
	return n, nil
}

func (m *memUsers) Update(userID uint, updates map[string]any) error {
	u, ok := m.byID[userID]
	if !ok {
		return errors.New("record not found")
	}
	if v, ok := updates["full_name"]; ok {
		u.FullName = v.(string)
	}
	if v, ok := updates["phone_number"]; ok {
		u.PhoneNumber = v.(string)
	}
	if v, ok := updates["profile_picture_url"]; ok {
		u.ProfilePictureURL = v.(string)
	}
	return nil
}

type memApplications struct {
	apps []*entity.OwnerApplication
}

func (m *memApplications) Create(app *entity.OwnerApplication) error {
	m.apps = append(m.apps, app)
	return nil
}

func (m *memApplications) CountPendingByUser(userID uint) (int64, error) {
	var n int64
	for _, a := range m.apps {
		if a.UserID == userID && a.Status == entity.RequestPending {
			n++
		}
	}
	return n, nil
}

func newAuthService() (*AuthService, *memUsers, *memApplications) {
	users := newMemUsers()
	apps := &memApplications{}
	return NewAuthService(users, apps, "test-secret", time.Hour), users, apps
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, _, _ := newAuthService()

	user, err := svc.Register("Ana@Example.COM", "s3cret99", "Ana P", "555-1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "ana@example.com" {
		t.Errorf("email not normalized: %q", user.Email)
	}
	if user.Role != entity.RoleCustomer {
		t.Errorf("role = %q, want customer", user.Role)
	}
	if user.Password == "s3cret99" {
		t.Fatal("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cret99")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthService()

	if _, err := svc.Register("ana@example.com", "s3cret99", "Ana", ""); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, err := svc.Register("ANA@example.com", "other", "Ana Again", "")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc, _, _ := newAuthService()
	user, err := svc.Register("ana@example.com", "s3cret99", "Ana", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, got, err := svc.Login("ana@example.com", "s3cret99")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("logged in as user %d, want %d", got.ID, user.ID)
	}

	claims, err := utils.ParseToken(token, "test-secret")
	if err != nil {
		t.Fatalf("token does not parse: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != entity.RoleCustomer {
		t.Errorf("claims = %+v", claims)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _, _ := newAuthService()
	if _, err := svc.Register("ana@example.com", "s3cret99", "Ana", ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := svc.Login("ana@example.com", "wrong"); !errors.Is(err, ErrInvalid) {
		t.Errorf("wrong password: expected ErrInvalid, got %v", err)
	}
	if _, _, err := svc.Login("nobody@example.com", "s3cret99"); !errors.Is(err, ErrInvalid) {
		t.Errorf("unknown email: expected ErrInvalid, got %v", err)
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	svc, _, _ := newAuthService()
	user, _ := svc.Register("ana@example.com", "s3cret99", "Ana", "555-1234")

	name := "Ana Perez"
	got, err := svc.UpdateProfile(user.ID, &name, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FullName != "Ana Perez" {
		t.Errorf("full name = %q", got.FullName)
	}
	if got.PhoneNumber != "555-1234" {
		t.Errorf("phone changed unexpectedly: %q", got.PhoneNumber)
	}
}

func TestRequestOwner(t *testing.T) {
	svc, users, _ := newAuthService()
	user, _ := svc.Register("ana@example.com", "s3cret99", "Ana", "")

	app, err := svc.RequestOwner(user.ID, &entity.OwnerApplication{BusinessName: "Ana's Salon"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.Status != entity.RequestPending || app.UserID != user.ID {
		t.Errorf("application = %+v", app)
	}

	// A second request while one is pending conflicts.
	_, err = svc.RequestOwner(user.ID, &entity.OwnerApplication{BusinessName: "Second Try"})
	if !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}

	// Owners cannot apply again.
	users.byID[user.ID].Role = entity.RoleOwner
	_, err = svc.RequestOwner(user.ID, &entity.OwnerApplication{BusinessName: "Third Try"})
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}
