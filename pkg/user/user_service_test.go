package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gcs-food-backend/domain"
	"gcs-food-backend/internal/store"
	"gcs-food-backend/pkg/jwt"
	"gcs-food-backend/pkg/query"
)

func newService() (UserService, jwt.JWTService) {
	jwtService := jwt.NewJWTService("test-secret")
	return NewUserService(query.NewClient(store.New()).User, jwtService), jwtService
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	svc, jwtService := newService()
	ctx := context.Background()

	user, err := svc.Register(ctx, domain.RegisterRequest{
		FirstName: "Ana",
		LastName:  "Souza",
		Email:     "ana@example.com",
		Avatar:    "https://example.com/ana.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "user-4", user.ID)
	require.NotNil(t, user.Avatar)
	assert.Nil(t, user.GoogleID)

	res, err := svc.Login(ctx, domain.LoginRequest{Email: "ana@example.com"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, res.User.ID)

	id, _, err := jwtService.GetUserIDByToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		FirstName: "João",
		LastName:  "Silva",
		Email:     "joao@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrEmailRegistered)
}

func TestUserService_LoginUnknownEmail(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Login(context.Background(), domain.LoginRequest{Email: "nobody@example.com"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_Me(t *testing.T) {
	svc, _ := newService()

	user, err := svc.Me(context.Background(), "user-2")
	require.NoError(t, err)
	assert.Equal(t, "Maria", user.FirstName)

	_, err = svc.Me(context.Background(), "user-99")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
