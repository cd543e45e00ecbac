package accounts_test

import (
	"context"
	"testing"

	accounts "github.com/goliatone/go-accounts"
	"github.com/goliatone/go-accounts/middleware/jwtware"
	"github.com/goliatone/go-router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMakeRouteAuthErrorHandler(t *testing.T) {
	handler := accounts.MakeRouteAuthErrorHandler(testLogger{})

	t.Run("missing token reads as authentication required", func(t *testing.T) {
		ctx := router.NewMockContext()

		var body map[string]any
		ctx.On("JSON", router.StatusUnauthorized, mock.Anything).Run(func(args mock.Arguments) {
			body = args.Get(1).(map[string]any)
		}).Return(nil)

		err := handler(ctx, jwtware.ErrJWTMissingOrMalformed)
		require.NoError(t, err)
		assert.Equal(t, "Authentication required.", body["message"])
	})

	t.Run("rejected token reads as invalid or expired", func(t *testing.T) {
		ctx := router.NewMockContext()

		var body map[string]any
		ctx.On("JSON", router.StatusUnauthorized, mock.Anything).Run(func(args mock.Arguments) {
			body = args.Get(1).(map[string]any)
		}).Return(nil)

		err := handler(ctx, accounts.ErrTokenExpired)
		require.NoError(t, err)
		assert.Equal(t, "Invalid or expired token.", body["message"])
	})
}

func TestTokenValidatorAdapter(t *testing.T) {
	service := accounts.NewTokenService([]byte("test-signing-key"), 0, "", nil, nil)

	token, err := service.Generate(MockIdentity{IDVal: "account-123", EmailVal: "pepe@example.com"})
	require.NoError(t, err)

	adapter := accounts.TokenValidatorAdapter(service)

	claims, err := adapter.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "account-123", claims.AccountID())
	assert.Equal(t, "pepe@example.com", claims.Email())

	_, err = adapter.Validate("garbage")
	assert.Error(t, err)
}

func TestContextEnricherAdapter(t *testing.T) {
	claims := validClaims(t, "account-123")

	ctx := accounts.ContextEnricherAdapter(context.Background(), claims)

	got, ok := accounts.GetClaims(ctx)
	require.True(t, ok)
	assert.Equal(t, "account-123", got.AccountID())
}
