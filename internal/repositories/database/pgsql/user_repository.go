package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/touristvillage/portfolio_backend/internal/apperrors"
	"github.com/touristvillage/portfolio_backend/internal/core/domain"
	portsrepo "github.com/touristvillage/portfolio_backend/internal/core/ports/repositories"
	"github.com/touristvillage/portfolio_backend/internal/models"
	"github.com/touristvillage/portfolio_backend/internal/utils/mapping"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userSelect = `
	SELECT user_id, name, email, password_hash, role, responsible_village_id,
	       created_at, created_by, last_updated_at, last_updated_by, deleted_at
	FROM users`

func (r *PgxUserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Name,
		&m.Email,
		&m.PasswordHash,
		&m.Role,
		&m.ResponsibleVillageID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user row: %w", err)
	}

	user, err := mapping.ToDomainUser(m)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", m.UserID, err)
	}
	return &user, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := userSelect + ` WHERE user_id = $1 AND deleted_at IS NULL;`
	return r.scanUser(r.Pool.QueryRow(ctx, query, userID))
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := userSelect + ` WHERE LOWER(email) = LOWER($1) AND deleted_at IS NULL;`
	return r.scanUser(r.Pool.QueryRow(ctx, query, email))
}

// UserBelongsToVillage reports whether the user owns an apartment or holds a
// booking inside the village.
func (r *PgxUserRepository) UserBelongsToVillage(ctx context.Context, userID string, villageID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM apartments a
			WHERE a.owner_id = $1 AND a.village_id = $2
		) OR EXISTS (
			SELECT 1 FROM bookings b
			JOIN apartments a ON a.apartment_id = b.apartment_id
			WHERE b.user_id = $1 AND a.village_id = $2
		);`

	var belongs bool
	if err := r.Pool.QueryRow(ctx, query, userID, villageID).Scan(&belongs); err != nil {
		return false, fmt.Errorf("failed to check village membership for user %s: %w", userID, err)
	}
	return belongs, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (user_id, name, email, password_hash, role, responsible_village_id,
		                   created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.Name,
		m.Email,
		m.PasswordHash,
		m.Role,
		m.ResponsibleVillageID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}
