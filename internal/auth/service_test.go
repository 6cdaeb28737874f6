package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

type mockUserRepo struct {
	users  []models.User
	nextID uint
}

func (m *mockUserRepo) Add(_ context.Context, user *models.User) error {
	m.nextID++
	user.ID = m.nextID
	m.users = append(m.users, *user)
	return nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for i := range m.users {
		if m.users[i].Email == strings.ToLower(strings.TrimSpace(email)) {
			return &m.users[i], nil
		}
	}
	return nil, nil
}

func newTestService(t *testing.T) (*Service, *mockUserRepo) {
	tokens, err := NewTokenIssuer("test-secret", time.Hour)
	assert.NoError(t, err)

	repo := &mockUserRepo{}
	return NewService(repo, tokens), repo
}

func Test_Register_ShouldHashPasswordAndIssueToken(t *testing.T) {
	service, repo := newTestService(t)

	user, token, err := service.Register(context.Background(), "Ada", "ada@example.com", "secret123", "", []string{"Go"})

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.Len(t, repo.users, 1)
}

func Test_Register_WhenEmailTaken_ShouldFailWithConflict(t *testing.T) {
	service, _ := newTestService(t)

	_, _, err := service.Register(context.Background(), "Ada", "ada@example.com", "secret123", "", nil)
	assert.NoError(t, err)

	_, _, err = service.Register(context.Background(), "Eve", "ADA@example.com", "other-pass", "", nil)

	var conflict *models.ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func Test_Login_WhenCredentialsValid_ShouldReturnVerifiableToken(t *testing.T) {
	service, _ := newTestService(t)

	registered, _, err := service.Register(context.Background(), "Ada", "ada@example.com", "secret123", "", nil)
	assert.NoError(t, err)

	user, token, err := service.Login(context.Background(), "ada@example.com", "secret123")

	assert.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	userID, err := service.tokens.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
}

func Test_Login_WhenPasswordWrong_ShouldFail(t *testing.T) {
	service, _ := newTestService(t)

	_, _, err := service.Register(context.Background(), "Ada", "ada@example.com", "secret123", "", nil)
	assert.NoError(t, err)

	_, _, err = service.Login(context.Background(), "ada@example.com", "wrong-pass")

	var forbidden *models.ForbiddenError
	assert.ErrorAs(t, err, &forbidden)
}

func Test_Login_WhenUserUnknown_ShouldFailTheSameWay(t *testing.T) {
	service, _ := newTestService(t)

	_, _, err := service.Login(context.Background(), "ghost@example.com", "whatever")

	var forbidden *models.ForbiddenError
	assert.ErrorAs(t, err, &forbidden)
}
