package config

import (
	"fmt"
	"time"
)

func (a *BaseConfig) Validate() error {
	if a.GetAuth().GetSigningKey() == defaultSigningKey {
		fmt.Println("WARNING: using default signing key, set auth.signing_key in production")
	}
	return nil
}

const defaultSigningKey = "your-secret-key-change-in-production"

func (a *Auth) GetSigningKey() string {
	if a.SigningKey == "" {
		return defaultSigningKey
	}
	return a.SigningKey
}

func (a *Auth) GetSigningMethod() string {
	if a.SigningMethod == "" {
		return "HS256"
	}
	return a.SigningMethod
}

func (a *Auth) GetContextKey() string {
	if a.ContextKey == "" {
		return "claims"
	}
	return a.ContextKey
}

func (a *Auth) GetTokenTTL() time.Duration {
	expr := a.TokenTTLExpression
	if expr == "" {
		expr = "30m"
	}
	dur, err := time.ParseDuration(expr)
	if err != nil {
		panic(
			fmt.Sprintf("unable to parse time: expr %s", expr),
		)
	}
	return dur
}

func (a *Auth) GetTokenLookup() string {
	if a.TokenLookup == "" {
		return "header:Authorization"
	}
	return a.TokenLookup
}

func (a *Auth) GetAuthScheme() string {
	if a.AuthScheme == "" {
		return "Bearer"
	}
	return a.AuthScheme
}

func (a *Auth) GetIssuer() string {
	if a.Issuer == "" {
		return "go-accounts"
	}
	return a.Issuer
}

func (a *Auth) GetAudience() []string {
	return a.Audience
}

func (p *Persistence) GetPingTimeout() time.Duration {
	expr := p.PingTimeoutExpression
	if expr == "" {
		expr = "5s"
	}
	dur, err := time.ParseDuration(expr)
	if err != nil {
		panic(
			fmt.Sprintf("unable to parse time: expr %s", expr),
		)
	}
	return dur
}
