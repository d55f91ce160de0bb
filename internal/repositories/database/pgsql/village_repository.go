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

type PgxVillageRepository struct {
	BaseRepository
}

func newPgxVillageRepository(pool *pgxpool.Pool) portsrepo.VillageRepositoryFacade {
	return &PgxVillageRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxVillageRepository implements portsrepo.VillageRepositoryFacade
var _ portsrepo.VillageRepositoryFacade = (*PgxVillageRepository)(nil)

const villageSelect = `
	SELECT village_id, name, electricity_price, water_price, phases,
	       created_at, created_by, last_updated_at, last_updated_by
	FROM villages`

func scanVillage(row pgx.Row) (*domain.Village, error) {
	var m models.Village
	err := row.Scan(
		&m.VillageID,
		&m.Name,
		&m.ElectricityPrice,
		&m.WaterPrice,
		&m.Phases,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan village row: %w", err)
	}

	village := mapping.ToDomainVillage(m)
	return &village, nil
}

func (r *PgxVillageRepository) FindVillageByID(ctx context.Context, villageID string) (*domain.Village, error) {
	query := villageSelect + ` WHERE village_id = $1;`
	return scanVillage(r.Pool.QueryRow(ctx, query, villageID))
}

func (r *PgxVillageRepository) ListVillages(ctx context.Context, limit int, offset int) ([]domain.Village, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := villageSelect + `
		ORDER BY name, village_id
		LIMIT $1 OFFSET $2;`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query villages: %w", err)
	}
	defer rows.Close()

	var villages []domain.Village
	for rows.Next() {
		village, err := scanVillage(rows)
		if err != nil {
			return nil, err
		}
		villages = append(villages, *village)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating village rows: %w", err)
	}
	return villages, nil
}
