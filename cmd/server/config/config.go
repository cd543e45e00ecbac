package config

// BaseConfig is the application configuration root. Sections may be nil when
// absent from the loaded sources, getters fall back to defaults.
type BaseConfig struct {
	Server      *Server      `json:"server" koanf:"server"`
	Auth        *Auth        `json:"auth" koanf:"auth"`
	Persistence *Persistence `json:"persistence" koanf:"persistence"`
}

type Server struct {
	Address string `json:"address" koanf:"address"`
	Debug   bool   `json:"debug" koanf:"debug"`
}

type Auth struct {
	SigningKey         string   `json:"signing_key" koanf:"signing_key"`
	SigningMethod      string   `json:"signing_method" koanf:"signing_method"`
	ContextKey         string   `json:"context_key" koanf:"context_key"`
	TokenTTLExpression string   `json:"token_ttl" koanf:"token_ttl"`
	TokenLookup        string   `json:"token_lookup" koanf:"token_lookup"`
	AuthScheme         string   `json:"auth_scheme" koanf:"auth_scheme"`
	Issuer             string   `json:"issuer" koanf:"issuer"`
	Audience           []string `json:"audience" koanf:"audience"`
}

type Persistence struct {
	Driver                string `json:"driver" koanf:"driver"`
	DSN                   string `json:"dsn" koanf:"dsn"`
	Debug                 bool   `json:"debug" koanf:"debug"`
	PingTimeoutExpression string `json:"ping_timeout" koanf:"ping_timeout"`
}

func (a *BaseConfig) GetServer() *Server {
	if a.Server == nil {
		a.Server = &Server{}
	}
	return a.Server
}

func (a *BaseConfig) GetAuth() *Auth {
	if a.Auth == nil {
		a.Auth = &Auth{}
	}
	return a.Auth
}

func (a *BaseConfig) GetPersistence() *Persistence {
	if a.Persistence == nil {
		a.Persistence = &Persistence{}
	}
	return a.Persistence
}

func (s *Server) GetAddress() string {
	if s.Address == "" {
		return ":3000"
	}
	return s.Address
}

func (s *Server) GetDebug() bool {
	return s.Debug
}

func (p *Persistence) GetDriver() string {
	if p.Driver == "" {
		return "sqlite"
	}
	return p.Driver
}

func (p *Persistence) GetDSN() string {
	if p.DSN == "" {
		return "file:accounts.db?cache=shared&_pragma=foreign_keys(1)"
	}
	return p.DSN
}

func (p *Persistence) GetDebug() bool {
	return p.Debug
}

// GetServer satisfies persistence.Config, which uses "server" for the
// connection string.
func (p *Persistence) GetServer() string {
	return p.GetDSN()
}

// GetOtelIdentifier satisfies persistence.Config; empty disables the
// otel query hook.
func (p *Persistence) GetOtelIdentifier() string {
	return ""
}
