package accounts

import (
	"context"

	"github.com/goliatone/go-errors"
)

// AccountFinder is the store we need to retrieve accounts during login
type AccountFinder interface {
	GetByEmail(ctx context.Context, email string) (*Account, error)
}

// AccountProvider resolves identities from the account store
type AccountProvider struct {
	store  AccountFinder
	logger Logger
}

// NewAccountProvider will create a new AccountProvider
func NewAccountProvider(store AccountFinder) *AccountProvider {
	return &AccountProvider{
		store:  store,
		logger: defLogger{},
	}
}

func (p *AccountProvider) WithLogger(l Logger) *AccountProvider {
	if l != nil {
		p.logger = l
	}
	return p
}

// VerifyIdentity will find the account, compare the password, and return the
// identity. An unknown email and a wrong password yield the same error so
// callers cannot enumerate accounts.
func (p AccountProvider) VerifyIdentity(ctx context.Context, email, password string) (Identity, error) {
	account, err := p.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to retrieve account during verification")
	}

	if account == nil {
		return nil, ErrInvalidCredentials
	}

	if err := ComparePasswordAndHash(password, account.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	return identityFromAccount(account), nil
}

// FindIdentityByIdentifier resolves an identity without a credential check,
// e.g. when rebuilding request context from validated claims.
func (p AccountProvider) FindIdentityByIdentifier(ctx context.Context, identifier string) (Identity, error) {
	account, err := p.store.GetByEmail(ctx, identifier)
	if err != nil {
		return nil, err
	}

	return identityFromAccount(account), nil
}

type authIdentity struct {
	id       string
	name     string
	username string
	email    string
}

func (a authIdentity) ID() string {
	return a.id
}

func (a authIdentity) Name() string {
	return a.name
}

func (a authIdentity) Username() string {
	return a.username
}

func (a authIdentity) Email() string {
	return a.email
}

var _ Identity = authIdentity{}

func identityFromAccount(account *Account) authIdentity {
	return authIdentity{
		id:       account.ID.String(),
		name:     account.Name,
		username: account.Username,
		email:    account.Email,
	}
}
