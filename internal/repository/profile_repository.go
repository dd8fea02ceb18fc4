package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/admitly/portal-service/internal/domain"
)

// ProfileRepository reads application profiles. A missing profile is
// reported as pgx.ErrNoRows.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
}

type profileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository returns a Postgres-backed implementation.
func NewProfileRepository(pool *pgxpool.Pool) ProfileRepository {
	return &profileRepository{pool: pool}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	const query = `
        SELECT id, user_id, full_name, email, avatar_url, created_at, updated_at
        FROM profiles WHERE user_id=$1`

	if r.pool == nil {
		return nil, ErrNoDatabase
	}

	var profile domain.Profile
	if err := r.pool.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.FullName,
		&profile.Email,
		&profile.AvatarURL,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &profile, nil
}
