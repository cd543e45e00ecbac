package accounts

import (
	"context"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/hashid/pkg/hashid"
	"github.com/uptrace/bun"
)

// RegisterAccountMessage carries the registration input. OnResponse, when
// set, receives the created account id and its first bearer token.
type RegisterAccountMessage struct {
	Name       string `json:"name"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	UseHashid  bool
	OnResponse func(*RegisterAccountResponse)
}

func (e RegisterAccountMessage) Type() string { return "account.register" }

// RegisterAccountResponse is handed to OnResponse after a successful run
type RegisterAccountResponse struct {
	AccountID string `json:"account_id"`
	Token     string `json:"token"`
}

// RegisterAccountHandler creates the account row and its empty profile in a
// single transaction, then issues the first token.
type RegisterAccountHandler struct {
	repo   RepositoryManager
	tokens TokenService
}

func NewRegisterAccountHandler(repo RepositoryManager, tokens TokenService) *RegisterAccountHandler {
	return &RegisterAccountHandler{
		repo:   repo,
		tokens: tokens,
	}
}

func (h *RegisterAccountHandler) Execute(ctx context.Context, event RegisterAccountMessage) error {
	select {
	case <-ctx.Done():
		return goerrors.Wrap(
			ctx.Err(),
			goerrors.CategoryOperation,
			"context cancelled during account registration",
		)
	default:
		return h.execute(ctx, event)
	}
}

func (h *RegisterAccountHandler) execute(ctx context.Context, event RegisterAccountMessage) error {
	account := &Account{}
	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	err := h.repo.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if existing, err := h.repo.Accounts().FindByEmailOrUsernameTx(ctx, tx, event.Email, event.Username); err == nil && existing != nil {
			return ErrDuplicateAccount
		} else if err != nil && !goerrors.IsNotFound(err) {
			return goerrors.Wrap(err, goerrors.CategoryInternal, "duplicate account lookup failed")
		}

		hash, err := HashPassword(event.Password)
		if err != nil {
			var richErr *goerrors.Error
			if goerrors.As(err, &richErr) {
				return goerrors.Wrap(richErr, goerrors.CategoryValidation, "invalid password provided")
			}
			return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to hash password")
		}

		account.PasswordHash = hash
		account.Name = event.Name
		account.Email = event.Email
		account.Username = getUsername(event.Username, event.Email)
		if event.UseHashid {
			if id, err := hashid.NewUUID(event.Email); err == nil {
				account.ID = id
			}
		}

		if account, err = h.repo.Accounts().CreateTx(ctx, tx, account); err != nil {
			// the unique indexes on email and username win any race the
			// fast-path lookup missed
			if IsUniqueViolationError(err) {
				return ErrDuplicateAccount
			}
			return goerrors.Wrap(err, goerrors.CategoryConflict, "could not create account")
		}

		if _, err = h.repo.Profiles().CreateTx(ctx, tx, EmptyProfile(account.ID)); err != nil {
			return goerrors.Wrap(err, goerrors.CategoryInternal, "could not create profile")
		}

		return nil
	})

	if err != nil {
		var richErr *goerrors.Error
		if goerrors.As(err, &richErr) {
			return richErr
		}

		return goerrors.Wrap(err, goerrors.CategoryInternal, "account registration transaction failed")
	}

	token, err := h.tokens.Generate(identityFromAccount(account))
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to issue registration token")
	}

	if event.OnResponse != nil {
		event.OnResponse(&RegisterAccountResponse{
			AccountID: account.ID.String(),
			Token:     token,
		})
	}

	return nil
}

func getUsername(username, email string) string {
	if username != "" {
		return username
	}

	if strings.Contains(email, "@") {
		username = strings.Split(email, "@")[0]
	}

	return username
}
