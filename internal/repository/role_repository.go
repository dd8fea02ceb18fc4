package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/admitly/portal-service/internal/domain"
)

// RoleRepository reads role assignments for identities.
type RoleRepository interface {
	ListByUser(ctx context.Context, userID string) (domain.RoleSet, error)
}

type roleRepository struct {
	pool *pgxpool.Pool
}

// NewRoleRepository returns a Postgres-backed implementation.
func NewRoleRepository(pool *pgxpool.Pool) RoleRepository {
	return &roleRepository{pool: pool}
}

func (r *roleRepository) ListByUser(ctx context.Context, userID string) (domain.RoleSet, error) {
	const query = `
        SELECT role FROM user_roles
        WHERE user_id=$1
        ORDER BY created_at ASC`

	if r.pool == nil {
		return nil, ErrNoDatabase
	}

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := domain.RoleSet{}
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, err
		}
		roles = append(roles, domain.ParseRole(label))
	}
	return roles, rows.Err()
}
