package services

import (
	"strings"
	"time"

	"servibook/entity"
	"servibook/utils"

	"golang.org/x/crypto/bcrypt"
)

// UserStore is what the auth flow needs from the user repository.
type UserStore interface {
	Create(u *entity.User) error
	FindByEmail(email string) (*entity.User, error)
	FindByID(id uint) (*entity.User, error)
	CountByEmail(email string) (int64, error)
	Update(userID uint, updates map[string]any) error
}

type OwnerApplicationStore interface {
	Create(app *entity.OwnerApplication) error
	CountPendingByUser(userID uint) (int64, error)
}

// AuthService handles register/login and the user's own profile.
type AuthService struct {
	Users        UserStore
	Applications OwnerApplicationStore
	JWTSecret    string
	JWTTTL       time.Duration
}

func NewAuthService(users UserStore, applications OwnerApplicationStore, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		Users:        users,
		Applications: applications,
		JWTSecret:    secret,
		JWTTTL:       ttl,
	}
}

// Register creates a new customer account; duplicate emails are rejected.
func (s *AuthService) Register(email, password, fullName, phone string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, invalidf("email and password are required")
	}

	count, err := s.Users.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, conflictf("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:       email,
		Password:    string(hashed),
		FullName:    strings.TrimSpace(fullName),
		PhoneNumber: strings.TrimSpace(phone),
		Role:        entity.RoleCustomer,
	}
	if err := s.Users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials and issues a JWT.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.Users.FindByEmail(email)
	if err != nil {
		return "", nil, invalidf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, invalidf("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.JWTSecret, s.JWTTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	user, err := s.Users.FindByID(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// UpdateProfile changes full name / phone / picture only.
func (s *AuthService) UpdateProfile(userID uint, fullName, phone, pictureURL *string) (*entity.User, error) {
	updates := map[string]any{}
	if fullName != nil {
		updates["full_name"] = strings.TrimSpace(*fullName)
	}
	if phone != nil {
		updates["phone_number"] = strings.TrimSpace(*phone)
	}
	if pictureURL != nil {
		updates["profile_picture_url"] = *pictureURL
	}
	if len(updates) > 0 {
		if err := s.Users.Update(userID, updates); err != nil {
			return nil, err
		}
	}
	return s.GetProfile(userID)
}

// RequestOwner files an owner application. Only plain customers may apply,
// and only one pending application is allowed at a time.
func (s *AuthService) RequestOwner(userID uint, app *entity.OwnerApplication) (*entity.OwnerApplication, error) {
	user, err := s.Users.FindByID(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	if user.Role != entity.RoleCustomer {
		return nil, invalidf("only customers can request owner status")
	}
	if strings.TrimSpace(app.BusinessName) == "" {
		return nil, invalidf("business name is required")
	}

	pending, err := s.Applications.CountPendingByUser(userID)
	if err != nil {
		return nil, err
	}
	if pending > 0 {
		return nil, conflictf("a pending owner request already exists")
	}

	app.UserID = userID
	app.Status = entity.RequestPending
	if err := s.Applications.Create(app); err != nil {
		return nil, err
	}
	return app, nil
}
