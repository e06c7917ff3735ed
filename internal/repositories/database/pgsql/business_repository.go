package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bbroker-app/bbroker_backend/internal/apperrors"
	"github.com/bbroker-app/bbroker_backend/internal/core/domain"
	portsrepo "github.com/bbroker-app/bbroker_backend/internal/core/ports/repositories"
	"github.com/bbroker-app/bbroker_backend/internal/models"
	"github.com/bbroker-app/bbroker_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const businessColumns = `id, user_id, business_name, description, logo, cover_image, location, working_hours,
	main_category, affiliate_category_1, affiliate_category_2, affiliate_category_3, target_market,
	target_age_ranges, rating, review_count, follower_count, view_count, status, is_verified,
	created_at, updated_at, last_active_at`

type PgxBusinessRepository struct {
	BaseRepository
}

// newPgxBusinessRepository creates a new repository for business profile data.
func newPgxBusinessRepository(pool *pgxpool.Pool) portsrepo.BusinessRepositoryFacade {
	return &PgxBusinessRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxBusinessRepository implements portsrepo.BusinessRepositoryFacade
var _ portsrepo.BusinessRepositoryFacade = (*PgxBusinessRepository)(nil)

func scanBusiness(row pgx.Row) (*models.Business, error) {
	var m models.Business
	err := row.Scan(
		&m.BusinessID,
		&m.UserID,
		&m.BusinessName,
		&m.Description,
		&m.Logo,
		&m.CoverImage,
		&m.LocationJSON,
		&m.WorkingHoursJSON,
		&m.MainCategory,
		&m.AffiliateCategory1,
		&m.AffiliateCategory2,
		&m.AffiliateCategory3,
		&m.TargetMarket,
		&m.TargetAgeRangesJSON,
		&m.Rating,
		&m.ReviewCount,
		&m.FollowerCount,
		&m.ViewCount,
		&m.Status,
		&m.IsVerified,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.LastActiveAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindBusinessByID retrieves a business profile by its ID.
func (r *PgxBusinessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE id = $1;`

	m, err := scanBusiness(r.Pool.QueryRow(ctx, query, businessID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find business by ID %s: %w", businessID, err)
	}

	business, err := mapping.ToDomainBusiness(*m)
	if err != nil {
		return nil, err
	}
	return &business, nil
}

// FindBusinessByUserID retrieves the business profile owned by a user.
func (r *PgxBusinessRepository) FindBusinessByUserID(ctx context.Context, userID string) (*domain.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE user_id = $1;`

	m, err := scanBusiness(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find business for user %s: %w", userID, err)
	}

	business, err := mapping.ToDomainBusiness(*m)
	if err != nil {
		return nil, err
	}
	return &business, nil
}

// ListBusinesses retrieves a page of business profiles ordered by creation time.
func (r *PgxBusinessRepository) ListBusinesses(ctx context.Context, limit int, offset int) ([]domain.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses ORDER BY created_at DESC LIMIT $1 OFFSET $2;`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list businesses: %w", err)
	}
	defer rows.Close()

	businesses := make([]domain.Business, 0)
	for rows.Next() {
		m, err := scanBusiness(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan business row: %w", err)
		}
		business, err := mapping.ToDomainBusiness(*m)
		if err != nil {
			return nil, err
		}
		businesses = append(businesses, business)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate business rows: %w", err)
	}
	return businesses, nil
}

// CreateBusinessForUser inserts the business profile and marks the owner as a
// business account in a single transaction. Returns apperrors.ErrDuplicate if
// the user already owns a business profile.
func (r *PgxBusinessRepository) CreateBusinessForUser(ctx context.Context, business domain.Business) error {
	m, err := mapping.ToModelBusiness(business)
	if err != nil {
		return err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	insertQuery := `
		INSERT INTO businesses (id, user_id, business_name, description, logo, cover_image, location, working_hours,
			main_category, affiliate_category_1, affiliate_category_2, affiliate_category_3, target_market,
			target_age_ranges, rating, review_count, follower_count, view_count, status, is_verified,
			created_at, updated_at, last_active_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.BusinessID,
		m.UserID,
		m.BusinessName,
		m.Description,
		m.Logo,
		m.CoverImage,
		m.LocationJSON,
		m.WorkingHoursJSON,
		m.MainCategory,
		m.AffiliateCategory1,
		m.AffiliateCategory2,
		m.AffiliateCategory3,
		m.TargetMarket,
		m.TargetAgeRangesJSON,
		m.Rating,
		m.ReviewCount,
		m.FollowerCount,
		m.ViewCount,
		m.Status,
		m.IsVerified,
		m.CreatedAt,
		m.UpdatedAt,
		m.LastActiveAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: user %s already has a business profile", apperrors.ErrDuplicate, m.UserID)
		}
		return fmt.Errorf("failed to insert business for user %s: %w", m.UserID, err)
	}

	flagQuery := `
		UPDATE users SET has_business_profile = TRUE, current_profile = 'business', updated_at = $1
		WHERE id = $2;
	`
	tag, err := tx.Exec(ctx, flagQuery, m.UpdatedAt, m.UserID)
	if err != nil {
		return fmt.Errorf("failed to flag user %s as business owner: %w", m.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// TouchLastActive records activity on a business profile.
func (r *PgxBusinessRepository) TouchLastActive(ctx context.Context, businessID string, now time.Time) error {
	query := `UPDATE businesses SET last_active_at = $1, updated_at = $1 WHERE id = $2;`

	tag, err := r.Pool.Exec(ctx, query, now, businessID)
	if err != nil {
		return fmt.Errorf("failed to touch last active for business %s: %w", businessID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
