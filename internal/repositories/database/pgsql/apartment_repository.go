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

type PgxApartmentRepository struct {
	BaseRepository
}

func newPgxApartmentRepository(pool *pgxpool.Pool) portsrepo.ApartmentRepositoryFacade {
	return &PgxApartmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxApartmentRepository implements portsrepo.ApartmentRepositoryFacade
var _ portsrepo.ApartmentRepositoryFacade = (*PgxApartmentRepository)(nil)

// apartmentInfoSelect joins the display fields every listing carries.
const apartmentInfoSelect = `
	SELECT a.apartment_id, a.name, a.village_id, v.name AS village_name, a.phase, a.owner_id, o.name AS owner_name
	FROM apartments a
	JOIN villages v ON v.village_id = a.village_id
	JOIN users o ON o.user_id = a.owner_id`

func (r *PgxApartmentRepository) FindApartmentByID(ctx context.Context, apartmentID string) (*domain.Apartment, error) {
	query := `
		SELECT apartment_id, name, village_id, phase, owner_id,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM apartments
		WHERE apartment_id = $1;
	`
	var m models.Apartment
	err := r.Pool.QueryRow(ctx, query, apartmentID).Scan(
		&m.ApartmentID,
		&m.Name,
		&m.VillageID,
		&m.Phase,
		&m.OwnerID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find apartment by ID %s: %w", apartmentID, err)
	}

	apartment := mapping.ToDomainApartment(m)
	return &apartment, nil
}

func (r *PgxApartmentRepository) FindApartmentInfo(ctx context.Context, apartmentID string) (*domain.ApartmentInfo, error) {
	query := apartmentInfoSelect + ` WHERE a.apartment_id = $1;`

	var info domain.ApartmentInfo
	err := r.Pool.QueryRow(ctx, query, apartmentID).Scan(
		&info.ApartmentID,
		&info.Name,
		&info.VillageID,
		&info.VillageName,
		&info.Phase,
		&info.OwnerID,
		&info.OwnerName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find apartment info for %s: %w", apartmentID, err)
	}
	return &info, nil
}

func (r *PgxApartmentRepository) IsApartmentVisible(ctx context.Context, scope domain.ApartmentScope, apartmentID string) (bool, error) {
	if scope.Unrestricted() {
		return true, nil
	}

	w := &whereBuilder{}
	w.add("a.apartment_id = " + w.arg(apartmentID))
	applyScope(w, scope)

	query := `SELECT EXISTS (SELECT 1 FROM apartments a` + w.clause() + `);`

	var visible bool
	if err := r.Pool.QueryRow(ctx, query, w.args...).Scan(&visible); err != nil {
		return false, fmt.Errorf("failed to check apartment visibility for %s: %w", apartmentID, err)
	}
	return visible, nil
}

func (r *PgxApartmentRepository) ListVisibleApartmentIDs(ctx context.Context, scope domain.ApartmentScope, filter domain.ApartmentFilter) ([]string, error) {
	w := &whereBuilder{}
	applyScope(w, scope)
	applyApartmentFilter(w, filter)

	query := `
		SELECT a.apartment_id
		FROM apartments a
		JOIN villages v ON v.village_id = a.village_id
		JOIN users o ON o.user_id = a.owner_id` + w.clause() + `
		ORDER BY a.name, a.apartment_id;`

	rows, err := r.Pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list visible apartment ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan apartment id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating apartment ids: %w", err)
	}
	return ids, nil
}

func (r *PgxApartmentRepository) ListVisibleApartments(ctx context.Context, scope domain.ApartmentScope, filter domain.ApartmentFilter, limit, offset int) ([]domain.ApartmentInfo, error) {
	w := &whereBuilder{}
	applyScope(w, scope)
	applyApartmentFilter(w, filter)

	query := apartmentInfoSelect + w.clause() + fmt.Sprintf(`
		ORDER BY a.name, a.apartment_id
		LIMIT %s OFFSET %s;`, w.arg(limit), w.arg(offset))

	rows, err := r.Pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list visible apartments: %w", err)
	}
	defer rows.Close()

	var infos []domain.ApartmentInfo
	for rows.Next() {
		var info domain.ApartmentInfo
		if err := rows.Scan(
			&info.ApartmentID,
			&info.Name,
			&info.VillageID,
			&info.VillageName,
			&info.Phase,
			&info.OwnerID,
			&info.OwnerName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan apartment row: %w", err)
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating apartment rows: %w", err)
	}
	return infos, nil
}

func (r *PgxApartmentRepository) ListOwnedApartmentIDs(ctx context.Context, ownerID string) ([]string, error) {
	query := `SELECT apartment_id FROM apartments WHERE owner_id = $1 ORDER BY apartment_id;`

	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list owned apartments for user %s: %w", ownerID, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan owned apartment id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating owned apartment ids: %w", err)
	}
	return ids, nil
}
