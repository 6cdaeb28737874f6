package auth

import (
	"context"

	"github.com/maxaizer/jobboard/internal/domain/models"
	"golang.org/x/crypto/bcrypt"
)

type userRepository interface {
	Add(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type Service struct {
	users  userRepository
	tokens *TokenIssuer
}

func NewService(users userRepository, tokens *TokenIssuer) *Service {
	return &Service{users: users, tokens: tokens}
}

// Register creates the user and returns it with a fresh token. Email
// uniqueness is checked up front and backed by the store's unique index.
func (s *Service) Register(ctx context.Context, name, email, password, mobile string, skills []string) (*models.User, string, error) {

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", models.NewConflictError("User with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := models.NewUser(name, email, string(hash), mobile, skills)
	if err = s.users.Add(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login checks the credentials and returns the user with a fresh token.
// Unknown email and wrong password fail identically.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, string, error) {

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", models.NewForbiddenError("Invalid credentials")
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", models.NewForbiddenError("Invalid credentials")
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
