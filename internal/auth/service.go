package auth

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
)

const minPasswordLen = 8

type Service struct {
	repo UserRepository
}

func NewService(repo UserRepository) *Service {
	return &Service{repo: repo}
}

// Register creates a nutritionist account. Emails are case-insensitive.
// Admin accounts are promoted out of band, never self-registered.
func (s *Service) Register(name, email, password string) (*User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)

	if name == "" || email == "" || password == "" {
		return nil, errors.New("name, email and password are required")
	}
	if len(password) < minPasswordLen {
		return nil, errors.New("password must be at least 8 characters")
	}

	exists, err := s.repo.ExistsByEmail(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     RoleNutritionist,
	}

	if err := s.repo.Save(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) Login(email, password string) (*User, error) {
	user, err := s.repo.FindByEmail(normalizeEmail(email))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
