package accounts

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Account is the credential record created on registration. The identifier
// is immutable once assigned and the row is only ever soft deleted.
type Account struct {
	bun.BaseModel `bun:"table:accounts,alias:acc"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Name          string     `bun:"name,notnull" json:"name,omitempty"`
	Username      string     `bun:"username,notnull,unique" json:"username,omitempty"`
	Email         string     `bun:"email,notnull,unique" json:"email,omitempty"`
	PasswordHash  string     `bun:"password_hash" json:"-"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
	DeletedAt     *time.Time `bun:"deleted_at,soft_delete,nullzero" json:"deleted_at,omitempty"`
}

// Profile holds the mutable public-facing attributes of an account,
// one-to-one keyed on the account id. Rows are created empty alongside the
// account and never independently deleted.
type Profile struct {
	bun.BaseModel `bun:"table:profiles,alias:prf"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	AccountID     uuid.UUID  `bun:"account_id,notnull,unique,type:uuid" json:"account_id,omitempty"`
	Account       *Account   `bun:"rel:belongs-to,join:account_id=id" json:"account,omitempty"`
	Bio           string     `bun:"bio" json:"bio"`
	Country       string     `bun:"country" json:"country"`
	State         string     `bun:"state" json:"state"`
	City          string     `bun:"city" json:"city"`
	AvatarURL     string     `bun:"avatar_url" json:"avatar_url"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// EmptyProfile returns the blank profile row registered with a new account.
func EmptyProfile(accountID uuid.UUID) *Profile {
	return &Profile{
		ID:        uuid.New(),
		AccountID: accountID,
		Bio:       "",
		Country:   "",
		State:     "",
		City:      "",
		AvatarURL: "",
	}
}
