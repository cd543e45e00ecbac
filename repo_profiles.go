package accounts

import (
	"context"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Profiles is the profile repository
type Profiles interface {
	repository.Repository[*Profile]

	GetByAccountID(ctx context.Context, accountID uuid.UUID) (*Profile, error)
	GetByAccountIDTx(ctx context.Context, tx bun.IDB, accountID uuid.UUID) (*Profile, error)
	Create(ctx context.Context, record *Profile, criteria ...repository.InsertCriteria) (*Profile, error)
	CreateTx(ctx context.Context, tx bun.IDB, record *Profile, criteria ...repository.InsertCriteria) (*Profile, error)
}

type profilesRepo struct {
	repository.Repository[*Profile]
	db *bun.DB
}

var (
	_ Profiles                        = (*profilesRepo)(nil)
	_ repository.Repository[*Profile] = (*profilesRepo)(nil)
)

func NewProfilesRepository(db *bun.DB) Profiles {
	repo := repository.NewRepository[*Profile](db, repository.ModelHandlers[*Profile]{
		NewRecord: func() *Profile { return &Profile{} },
		GetID: func(p *Profile) uuid.UUID {
			if p == nil {
				return uuid.Nil
			}
			return p.ID
		},
		SetID: func(p *Profile, id uuid.UUID) {
			if p != nil {
				p.ID = id
			}
		},
	})

	return &profilesRepo{
		Repository: repo,
		db:         db,
	}
}

func (p *profilesRepo) GetByAccountID(ctx context.Context, accountID uuid.UUID) (*Profile, error) {
	return p.GetByAccountIDTx(ctx, p.db, accountID)
}

func (p *profilesRepo) GetByAccountIDTx(ctx context.Context, tx bun.IDB, accountID uuid.UUID) (*Profile, error) {
	record := &Profile{}

	err := tx.NewSelect().
		Model(record).
		Where("?TableAlias.account_id = ?", accountID).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, repository.NewRecordNotFound().
				WithMetadata(map[string]any{
					"account_id": accountID.String(),
				})
		}
		return nil, err
	}

	return record, nil
}

func (p *profilesRepo) Create(ctx context.Context, record *Profile, criteria ...repository.InsertCriteria) (*Profile, error) {
	return p.CreateTx(ctx, p.db, record, criteria...)
}

func (p *profilesRepo) CreateTx(ctx context.Context, tx bun.IDB, record *Profile, criteria ...repository.InsertCriteria) (*Profile, error) {
	if record != nil && record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	return p.Repository.CreateTx(ctx, tx, record, criteria...)
}
