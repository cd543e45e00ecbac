package accounts

import (
	"context"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// UpdateProfileMessage applies a partial update to the profile keyed on
// AccountID. Nil fields are left untouched; empty strings are written.
// AccountID must come from verified token claims, never from the request
// body.
type UpdateProfileMessage struct {
	AccountID  uuid.UUID `json:"account_id"`
	Bio        *string   `json:"bio,omitempty"`
	Country    *string   `json:"country,omitempty"`
	State      *string   `json:"state,omitempty"`
	City       *string   `json:"city,omitempty"`
	AvatarURL  *string   `json:"avatar_url,omitempty"`
	OnResponse func(*Profile)
}

func (e UpdateProfileMessage) Type() string { return "profile.update" }

// UpdateProfileHandler loads the profile, applies the provided fields, and
// persists the row.
type UpdateProfileHandler struct {
	repo RepositoryManager
}

func NewUpdateProfileHandler(repo RepositoryManager) *UpdateProfileHandler {
	return &UpdateProfileHandler{repo: repo}
}

func (h *UpdateProfileHandler) Execute(ctx context.Context, event UpdateProfileMessage) error {
	select {
	case <-ctx.Done():
		return goerrors.Wrap(
			ctx.Err(),
			goerrors.CategoryOperation,
			"context cancelled during profile update",
		)
	default:
		return h.execute(ctx, event)
	}
}

func (h *UpdateProfileHandler) execute(ctx context.Context, event UpdateProfileMessage) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	var record *Profile

	err := h.repo.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		profile, err := h.repo.Profiles().GetByAccountIDTx(ctx, tx, event.AccountID)
		if err != nil {
			if goerrors.IsNotFound(err) {
				return ErrProfileNotFound
			}
			return goerrors.Wrap(err, goerrors.CategoryInternal, "profile lookup failed")
		}

		applyProfilePatch(profile, event)

		now := time.Now()
		profile.UpdatedAt = &now

		if record, err = h.repo.Profiles().UpdateTx(ctx, tx, profile, repository.UpdateByID(profile.ID.String())); err != nil {
			return goerrors.Wrap(err, goerrors.CategoryInternal, "could not update profile")
		}

		return nil
	})

	if err != nil {
		var richErr *goerrors.Error
		if goerrors.As(err, &richErr) {
			return richErr
		}
		return goerrors.Wrap(err, goerrors.CategoryInternal, "profile update transaction failed")
	}

	if event.OnResponse != nil {
		event.OnResponse(record)
	}

	return nil
}

func applyProfilePatch(profile *Profile, event UpdateProfileMessage) {
	if event.Bio != nil {
		profile.Bio = *event.Bio
	}
	if event.Country != nil {
		profile.Country = *event.Country
	}
	if event.State != nil {
		profile.State = *event.State
	}
	if event.City != nil {
		profile.City = *event.City
	}
	if event.AvatarURL != nil {
		profile.AvatarURL = *event.AvatarURL
	}
}
