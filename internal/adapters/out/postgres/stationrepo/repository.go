package stationrepo

import (
	"context"
	"errors"

	"kds/internal/core/domain/model/kernel"
	"kds/internal/core/domain/model/station"
	"kds/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// ErrStationCodeExists is the cause reported when a hub already has a station
// with the same code.
var ErrStationCodeExists = errors.New("station code already exists")

// GormStationRepository implements StationRepository using GORM.
type GormStationRepository struct {
	db *gorm.DB
}

func NewGormStationRepository(db *gorm.DB) *GormStationRepository {
	return &GormStationRepository{db: db}
}

// Add saves a new station.
func (r *GormStationRepository) Add(ctx context.Context, s *station.Station) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := fromDomain(s)
	return translate(r.db.WithContext(ctx).Create(&dto).Error)
}

// Update overwrites every column of an existing station.
func (r *GormStationRepository) Update(ctx context.Context, s *station.Station) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := fromDomain(s)
	result := r.db.WithContext(ctx).
		Model(&StationDTO{}).
		Where("id = ? AND hub_id = ?", dto.ID, dto.HubID).
		Select("name", "code", "color", "sort_order", "is_active").
		Updates(&dto)
	if err := translate(result.Error); err != nil {
		return err
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("station", s.ID().String())
	}

	return nil
}

// Get retrieves a station of the hub.
func (r *GormStationRepository) Get(ctx context.Context, hubID, id kernel.UUID) (*station.Station, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StationDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ? AND hub_id = ?", id.Bytes(), hubID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("station", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a station. The order_items foreign key nulls the station of
// the items that were routed to it.
func (r *GormStationRepository) Delete(ctx context.Context, hubID, id kernel.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND hub_id = ?", id.Bytes(), hubID.Bytes()).
		Delete(&StationDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("station", id.String())
	}

	return nil
}

// ListByHub returns the stations of a hub by sort order, then name.
func (r *GormStationRepository) ListByHub(ctx context.Context, hubID kernel.UUID) ([]*station.Station, error) {
	var dtos []StationDTO
	if err := r.db.WithContext(ctx).
		Where("hub_id = ?", hubID.Bytes()).
		Order("sort_order, name").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	stations := make([]*station.Station, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		stations = append(stations, s)
	}

	return stations, nil
}

func translate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return errs.NewValueIsInvalidErrorWithCause("station code", ErrStationCodeExists)
	}
	return err
}
