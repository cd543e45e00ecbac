package accounts_test

import (
	"context"
	"database/sql"

	accounts "github.com/goliatone/go-accounts"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/uptrace/bun"
)

// MockRepositoryManager implements accounts.RepositoryManager
type MockRepositoryManager struct {
	mock.Mock
}

func (m *MockRepositoryManager) Validate() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockRepositoryManager) MustValidate() {
	m.Called()
}

func (m *MockRepositoryManager) RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error {
	args := m.Called(ctx, opts, f)
	return args.Error(0)
}

func (m *MockRepositoryManager) Accounts() accounts.Accounts {
	args := m.Called()
	return args.Get(0).(accounts.Accounts)
}

func (m *MockRepositoryManager) Profiles() accounts.Profiles {
	args := m.Called()
	return args.Get(0).(accounts.Profiles)
}

// MockAccounts implements accounts.Accounts. The embedded interface covers
// the generic repository surface, only the methods exercised by the handlers
// are mocked.
type MockAccounts struct {
	mock.Mock
	accounts.Accounts
}

func (m *MockAccounts) GetByEmail(ctx context.Context, email string) (*accounts.Account, error) {
	args := m.Called(ctx, email)
	record, _ := args.Get(0).(*accounts.Account)
	return record, args.Error(1)
}

func (m *MockAccounts) GetByEmailTx(ctx context.Context, tx bun.IDB, email string) (*accounts.Account, error) {
	args := m.Called(ctx, tx, email)
	record, _ := args.Get(0).(*accounts.Account)
	return record, args.Error(1)
}

func (m *MockAccounts) FindByEmailOrUsername(ctx context.Context, email, username string) (*accounts.Account, error) {
	args := m.Called(ctx, email, username)
	record, _ := args.Get(0).(*accounts.Account)
	return record, args.Error(1)
}

func (m *MockAccounts) FindByEmailOrUsernameTx(ctx context.Context, tx bun.IDB, email, username string) (*accounts.Account, error) {
	args := m.Called(ctx, tx, email, username)
	record, _ := args.Get(0).(*accounts.Account)
	return record, args.Error(1)
}

func (m *MockAccounts) Create(ctx context.Context, record *accounts.Account, criteria ...repository.InsertCriteria) (*accounts.Account, error) {
	args := m.Called(ctx, record, criteria)
	out, _ := args.Get(0).(*accounts.Account)
	return out, args.Error(1)
}

func (m *MockAccounts) CreateTx(ctx context.Context, tx bun.IDB, record *accounts.Account, criteria ...repository.InsertCriteria) (*accounts.Account, error) {
	args := m.Called(ctx, tx, record, criteria)
	out, _ := args.Get(0).(*accounts.Account)
	return out, args.Error(1)
}

// MockProfiles implements accounts.Profiles
type MockProfiles struct {
	mock.Mock
	accounts.Profiles
}

func (m *MockProfiles) GetByAccountID(ctx context.Context, accountID uuid.UUID) (*accounts.Profile, error) {
	args := m.Called(ctx, accountID)
	record, _ := args.Get(0).(*accounts.Profile)
	return record, args.Error(1)
}

func (m *MockProfiles) GetByAccountIDTx(ctx context.Context, tx bun.IDB, accountID uuid.UUID) (*accounts.Profile, error) {
	args := m.Called(ctx, tx, accountID)
	record, _ := args.Get(0).(*accounts.Profile)
	return record, args.Error(1)
}

func (m *MockProfiles) Create(ctx context.Context, record *accounts.Profile, criteria ...repository.InsertCriteria) (*accounts.Profile, error) {
	args := m.Called(ctx, record, criteria)
	out, _ := args.Get(0).(*accounts.Profile)
	return out, args.Error(1)
}

func (m *MockProfiles) CreateTx(ctx context.Context, tx bun.IDB, record *accounts.Profile, criteria ...repository.InsertCriteria) (*accounts.Profile, error) {
	args := m.Called(ctx, tx, record, criteria)
	out, _ := args.Get(0).(*accounts.Profile)
	return out, args.Error(1)
}

func (m *MockProfiles) UpdateTx(ctx context.Context, tx bun.IDB, record *accounts.Profile, criteria ...repository.UpdateCriteria) (*accounts.Profile, error) {
	args := m.Called(ctx, tx, record, criteria)
	out, _ := args.Get(0).(*accounts.Profile)
	return out, args.Error(1)
}

// MockAuthenticator implements accounts.Authenticator
type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Login(ctx context.Context, email, password string) (*accounts.LoginResult, error) {
	args := m.Called(ctx, email, password)
	result, _ := args.Get(0).(*accounts.LoginResult)
	return result, args.Error(1)
}

func (m *MockAuthenticator) TokenService() accounts.TokenService {
	args := m.Called()
	ts, _ := args.Get(0).(accounts.TokenService)
	return ts
}

// MockTokenService implements accounts.TokenService
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Generate(identity accounts.Identity) (string, error) {
	args := m.Called(identity)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) SignClaims(claims *accounts.JWTClaims) (string, error) {
	args := m.Called(claims)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Validate(tokenString string) (accounts.AuthClaims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(accounts.AuthClaims)
	return claims, args.Error(1)
}

// MockIdentityProvider implements accounts.IdentityProvider
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) VerifyIdentity(ctx context.Context, email, password string) (accounts.Identity, error) {
	args := m.Called(ctx, email, password)
	identity, _ := args.Get(0).(accounts.Identity)
	return identity, args.Error(1)
}

func (m *MockIdentityProvider) FindIdentityByIdentifier(ctx context.Context, identifier string) (accounts.Identity, error) {
	args := m.Called(ctx, identifier)
	identity, _ := args.Get(0).(accounts.Identity)
	return identity, args.Error(1)
}

// MockIdentity implements accounts.Identity
type MockIdentity struct {
	IDVal       string
	NameVal     string
	UsernameVal string
	EmailVal    string
}

func (m MockIdentity) ID() string       { return m.IDVal }
func (m MockIdentity) Name() string     { return m.NameVal }
func (m MockIdentity) Username() string { return m.UsernameVal }
func (m MockIdentity) Email() string    { return m.EmailVal }

type testLogger struct{}

func (testLogger) Debug(string, ...any) {}
func (testLogger) Info(string, ...any)  {}
func (testLogger) Warn(string, ...any)  {}
func (testLogger) Error(string, ...any) {}
