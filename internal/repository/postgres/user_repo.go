// internal/repository/postgres/user_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"transporte-service/internal/domain/audit"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository reads the users database to expand an authenticated user id
// into its acting-user context. This service never writes to it.
type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// ResolveActingUser returns the profile, smart-card and delegation ids of a
// user. Every missing value resolves to 0, never null: an unknown user id
// yields a context with only UserID set, and userID <= 0 yields the
// all-zeros system actor.
func (r *UserRepository) ResolveActingUser(ctx context.Context, userID int64) (audit.ActingUser, error) {
	if userID <= 0 {
		return audit.ActingUser{}, nil
	}

	actor := audit.ActingUser{UserID: userID}
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(id_perfil, 0), COALESCE(id_tarjeta, 0), COALESCE(id_delegacion, 0)
		FROM usuarios
		WHERE id_usuario = $1
	`, userID).Scan(&actor.ProfileID, &actor.SmartCardID, &actor.DelegationID)

	if errors.Is(err, pgx.ErrNoRows) {
		return actor, nil
	}
	if err != nil {
		return audit.ActingUser{}, fmt.Errorf("failed to resolve acting user %d: %w", userID, err)
	}
	return actor, nil
}
