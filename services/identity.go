package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	models "Playko/models/postgres"
	"Playko/services/redis"
	"Playko/store"
	"Playko/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// IdentityService owns registration, multi-field login and profile updates.
// It is also the single owner of the account validation rules (see
// utils/checks.go); no handler re-implements them.
type IdentityService struct {
	Users    store.UserStore
	Presence Presence // optional, marks users online after login
}

func NewIdentityService(users store.UserStore, rc *redis.RedisClient) *IdentityService {
	s := &IdentityService{Users: users}
	// keep the interface field truly nil when there is no client
	if rc != nil {
		s.Presence = rc
	}
	return s
}

type RegisterInput struct {
	Nombre   string
	Apellido string
	Edad     int
	Email    string
	Phone    string
	Username string
	Password string
}

// login tries the identity fields in this fixed order; first match wins.
var loginFields = []string{"username", "email", "phone"}

func (s *IdentityService) Register(in RegisterInput) (*models.User, error) {
	in.Nombre = strings.TrimSpace(in.Nombre)
	in.Apellido = strings.TrimSpace(in.Apellido)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Username = strings.TrimSpace(in.Username)

	if in.Nombre == "" || in.Apellido == "" {
		return nil, validationErrorf("nombre and apellido are required")
	}
	if in.Edad < utils.MinAge {
		return nil, validationErrorf("edad must be at least %d", utils.MinAge)
	}
	if !utils.IsValidEmail(in.Email) {
		return nil, validationErrorf("email is not a valid address")
	}
	if !utils.IsValidPhone(in.Phone) {
		return nil, validationErrorf("phone must be 9 to 15 digits")
	}
	if !utils.IsValidUsername(in.Username) {
		return nil, validationErrorf("username must be at least %d characters", utils.MinUsernameLength)
	}
	if !utils.IsValidPassword(in.Password) {
		return nil, validationErrorf(
			"password must be at least %d characters with an uppercase letter, a lowercase letter, a digit and a symbol",
			utils.MinPasswordLength)
	}

	// Pre-checks per field so the caller learns which one collides. The
	// unique indexes remain the authority; a concurrent insert still fails
	// below with the generic conflict.
	for _, field := range loginFields {
		value := map[string]string{
			"username": in.Username,
			"email":    in.Email,
			"phone":    in.Phone,
		}[field]
		_, err := s.Users.FindBy(field, value)
		if err == nil {
			return nil, fmt.Errorf("%s %w", field, store.ErrConflict)
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, validationErrorf("password must be at most 72 bytes")
		}
		return nil, fmt.Errorf("error hashing password: %v", err)
	}

	user := models.User{
		Username:     in.Username,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: string(hash),
		Nombre:       in.Nombre,
		Apellido:     in.Apellido,
		Edad:         in.Edad,
		HighScore:    0,
		Level:        1,
		Achievements: datatypes.JSON("[]"),
	}
	if err := s.Users.Insert(&user); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, fmt.Errorf("account %w", store.ErrConflict)
		}
		return nil, err
	}
	return &user, nil
}

// Login matches the given field against username, then email, then phone.
// Each of the three is globally unique, so at most one user can match.
func (s *IdentityService) Login(field, password string) (*models.User, error) {
	field = strings.TrimSpace(field)
	if field == "" || password == "" {
		return nil, validationErrorf("field and password are required")
	}

	for _, column := range loginFields {
		user, err := s.Users.FindBy(column, field)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
			return nil, ErrUnauthorized
		}
		if s.Presence != nil {
			if err := s.Presence.MarkUserOnline(user.ID); err != nil {
				log.Printf("Error marking user %s online: %v", user.ID, err)
			}
		}
		return user, nil
	}
	return nil, fmt.Errorf("user %w", store.ErrNotFound)
}

// UpdateUserInput carries partial-update fields: nil means "leave untouched".
type UpdateUserInput struct {
	ProfilePhotoURL *string
	HighScore       *int
	Level           *int
}

func (s *IdentityService) UpdateUser(userID string, in UpdateUserInput) (*models.User, error) {
	fields := map[string]interface{}{}
	if in.ProfilePhotoURL != nil {
		fields["profile_photo_url"] = *in.ProfilePhotoURL
	}
	if in.HighScore != nil {
		if *in.HighScore < 0 {
			return nil, validationErrorf("highScore cannot be negative")
		}
		fields["high_score"] = *in.HighScore
	}
	if in.Level != nil {
		if *in.Level < 1 {
			return nil, validationErrorf("level must be at least 1")
		}
		fields["level"] = *in.Level
	}
	if len(fields) == 0 {
		return nil, validationErrorf("no updatable fields supplied")
	}

	user, err := s.Users.Update(userID, fields)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("user %w", store.ErrNotFound)
	}
	return user, err
}

func (s *IdentityService) GetUser(userID string) (*models.User, error) {
	user, err := s.Users.FindByID(userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("user %w", store.ErrNotFound)
	}
	return user, err
}

// ListUsers returns the leaderboard: users ordered by high score descending.
func (s *IdentityService) ListUsers(limit int) ([]models.User, error) {
	return s.Users.FindAll(limit)
}
