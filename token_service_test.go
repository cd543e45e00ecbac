package accounts_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	accounts "github.com/goliatone/go-accounts"
	"github.com/stretchr/testify/assert"
)

func TestNewTokenService(t *testing.T) {
	signingKey := []byte("test-signing-key")
	issuer := "test-issuer"
	audience := jwt.ClaimStrings{"test-audience"}

	t.Run("creates token service with logger", func(t *testing.T) {
		service := accounts.NewTokenService(signingKey, 30*time.Minute, issuer, audience, testLogger{})

		assert.NotNil(t, service)
	})

	t.Run("creates token service with nil logger", func(t *testing.T) {
		service := accounts.NewTokenService(signingKey, 30*time.Minute, issuer, audience, nil)

		assert.NotNil(t, service)
	})
}

func TestTokenService_Generate(t *testing.T) {
	signingKey := []byte("test-signing-key")
	issuer := "test-issuer"
	audience := jwt.ClaimStrings{"test-audience"}

	service := accounts.NewTokenService(signingKey, 30*time.Minute, issuer, audience, testLogger{})

	t.Run("generates valid JWT token", func(t *testing.T) {
		identity := MockIdentity{
			IDVal:       "account-123",
			UsernameVal: "pepe",
			EmailVal:    "pepe@example.com",
		}

		tokenString, err := service.Generate(identity)

		assert.NoError(t, err)
		assert.NotEmpty(t, tokenString)

		token, err := jwt.ParseWithClaims(tokenString, &accounts.JWTClaims{}, func(token *jwt.Token) (any, error) {
			return signingKey, nil
		})

		assert.NoError(t, err)
		assert.True(t, token.Valid)

		claims, ok := token.Claims.(*accounts.JWTClaims)
		assert.True(t, ok)
		assert.Equal(t, "account-123", claims.Subject())
		assert.Equal(t, "account-123", claims.AccountID())
		assert.Equal(t, "pepe@example.com", claims.Email())
		assert.Equal(t, issuer, claims.Issuer)
		assert.Equal(t, audience, claims.Audience)
		assert.NotNil(t, claims.RegisteredClaims.IssuedAt)
		assert.NotNil(t, claims.RegisteredClaims.ExpiresAt)
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("expiration honors the configured TTL", func(t *testing.T) {
		identity := MockIdentity{IDVal: "account-123"}

		tokenString, err := service.Generate(identity)
		assert.NoError(t, err)

		claims, err := service.Validate(tokenString)
		assert.NoError(t, err)

		expected := time.Now().Add(30 * time.Minute)
		assert.WithinDuration(t, expected, claims.Expires(), 5*time.Second)
	})
}

func TestTokenService_Validate(t *testing.T) {
	signingKey := []byte("test-signing-key")
	issuer := "test-issuer"

	service := accounts.NewTokenService(signingKey, 30*time.Minute, issuer, nil, testLogger{})

	t.Run("round trips generated tokens", func(t *testing.T) {
		identity := MockIdentity{
			IDVal:    "account-123",
			EmailVal: "pepe@example.com",
		}

		tokenString, err := service.Generate(identity)
		assert.NoError(t, err)

		claims, err := service.Validate(tokenString)
		assert.NoError(t, err)
		assert.Equal(t, "account-123", claims.AccountID())
		assert.Equal(t, "pepe@example.com", claims.Email())
	})

	t.Run("rejects tokens signed with a different key", func(t *testing.T) {
		other := accounts.NewTokenService([]byte("other-key"), 30*time.Minute, issuer, nil, testLogger{})

		tokenString, err := other.Generate(MockIdentity{IDVal: "account-123"})
		assert.NoError(t, err)

		_, err = service.Validate(tokenString)
		assert.Error(t, err)
		assert.True(t, accounts.IsMalformedError(err))
	})

	t.Run("rejects expired tokens", func(t *testing.T) {
		now := time.Now()
		claims := &accounts.JWTClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "account-123",
				IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
				ExpiresAt: jwt.NewNumericDate(now.Add(-1 * time.Hour)),
			},
		}

		tokenString, err := service.SignClaims(claims)
		assert.NoError(t, err)

		_, err = service.Validate(tokenString)
		assert.Error(t, err)
		assert.True(t, accounts.IsTokenExpiredError(err))
	})

	t.Run("rejects garbage input", func(t *testing.T) {
		_, err := service.Validate("not-a-token")
		assert.Error(t, err)
		assert.True(t, accounts.IsMalformedError(err))
	})

	t.Run("rejects tokens signed with an unexpected method", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Subject: "account-123",
		})
		tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		assert.NoError(t, err)

		_, err = service.Validate(tokenString)
		assert.Error(t, err)
	})
}
