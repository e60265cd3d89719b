package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Klit-Bucinca/SkillHire/internal/core/domain"
	"github.com/Klit-Bucinca/SkillHire/internal/core/ports"
)

const defaultTokenTTL = 2 * time.Hour

// AuthService implements registration and login.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidRegistration
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:           in.Name,
		Surname:        in.Surname,
		PersonalNumber: in.PersonalNumber,
		Username:       in.Username,
		Email:          in.Email,
		PasswordHash:   string(hash),
		Role:           role,
		CreatedAt:      time.Now().UTC(),
	}

	// A worker must never exist without a profile: the repository inserts
	// both rows in one transaction.
	var profile *domain.WorkerProfile
	if role == domain.RoleWorker {
		profile = domain.NewDefaultWorkerProfile(0)
	}

	created, err := s.repo.Create(ctx, user, profile)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Login authenticates by username or email. An unknown identifier and a wrong
// password both surface domain.ErrInvalidCredentials so callers cannot probe
// which accounts exist.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (string, *domain.User, error) {
	if identifier == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      strconv.FormatInt(user.ID, 10),
		"username": user.Username,
		"role":     string(user.Role),
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
