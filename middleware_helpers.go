package accounts

import (
	"context"

	"github.com/goliatone/go-accounts/middleware/jwtware"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-router"
)

// ProtectedRoute builds the bearer token middleware for authenticated routes.
// Validated claims end up in router locals under cfg.GetContextKey() and in
// the standard context for command handlers.
func ProtectedRoute(cfg Config, tokens TokenValidator, errorHandler ...router.ErrorHandler) router.MiddlewareFunc {
	mwCfg := jwtware.Config{
		ContextKey:      cfg.GetContextKey(),
		TokenLookup:     cfg.GetTokenLookup(),
		AuthScheme:      cfg.GetAuthScheme(),
		TokenValidator:  TokenValidatorAdapter(tokens),
		ContextEnricher: ContextEnricherAdapter,
	}

	if len(errorHandler) > 0 && errorHandler[0] != nil {
		mwCfg.ErrorHandler = errorHandler[0]
	}

	return jwtware.New(mwCfg)
}

// TokenValidatorAdapter exposes a TokenValidator through the jwtware
// interface. AuthClaims is a superset of jwtware.AuthClaims so the claims
// value passes through unchanged.
func TokenValidatorAdapter(tokens TokenValidator) jwtware.TokenValidator {
	return tokenValidatorAdapter{tokens: tokens}
}

type tokenValidatorAdapter struct {
	tokens TokenValidator
}

func (a tokenValidatorAdapter) Validate(tokenString string) (jwtware.AuthClaims, error) {
	claims, err := a.tokens.Validate(tokenString)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// ContextEnricherAdapter adapts jwtware.AuthClaims to AuthClaims and stores
// them in the standard context for downstream handler usage.
func ContextEnricherAdapter(c context.Context, claims jwtware.AuthClaims) context.Context {
	authClaims, ok := claims.(AuthClaims)
	if !ok {
		return c
	}
	return WithClaimsContext(c, authClaims)
}

// MakeRouteAuthErrorHandler builds the JSON 401 responder for protected
// routes. A token that never arrived reads differently from one that failed
// validation.
func MakeRouteAuthErrorHandler(logger Logger) router.ErrorHandler {
	if logger == nil {
		logger = defLogger{}
	}
	return func(ctx router.Context, err error) error {
		if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
			return ctx.JSON(router.StatusUnauthorized, map[string]any{
				"message": "Authentication required.",
			})
		}

		if IsTokenExpiredError(err) || IsMalformedError(err) {
			logger.Debug("token rejected", "error", err)
		} else {
			logger.Error("token validation error", "error", err)
		}

		return ctx.JSON(router.StatusUnauthorized, map[string]any{
			"message": "Invalid or expired token.",
		})
	}
}
