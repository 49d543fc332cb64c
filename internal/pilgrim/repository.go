package pilgrim

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/vinaythakkar13/yatra-backend/internal/hotel"
)

type Repository interface {
	GetByID(ctx context.Context, id uint) (*Person, error)
	GetByPNR(ctx context.Context, pnr string) (*Person, error)
	RoomsHeldBy(ctx context.Context, personID uint) ([]hotel.Room, error)
	List(ctx context.Context, filter ListFilter) ([]Person, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Person, error) {
	var p Person
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetByPNR(ctx context.Context, pnr string) (*Person, error) {
	var p Person
	err := r.db.WithContext(ctx).
		Where("pnr = ?", strings.ToUpper(strings.TrimSpace(pnr))).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) RoomsHeldBy(ctx context.Context, personID uint) ([]hotel.Room, error) {
	var rooms []hotel.Room
	err := r.db.WithContext(ctx).
		Where("assigned_person_id = ?", personID).
		Order("id ASC").
		Find(&rooms).Error
	return rooms, err
}

// List filters by assignment status and, when YatraID is set, by having a
// non-cancelled registration in that yatra.
func (r *repository) List(ctx context.Context, filter ListFilter) ([]Person, int64, error) {
	var people []Person
	var total int64

	query := r.db.WithContext(ctx).Model(&Person{})
	if filter.RoomAssignmentStatus != "" {
		query = query.Where("pilgrims.room_assignment_status = ?", filter.RoomAssignmentStatus)
	}
	if filter.YatraID != 0 {
		query = query.Where(`EXISTS (
			SELECT 1 FROM registrations reg
			WHERE reg.person_id = pilgrims.id AND reg.yatra_id = ? AND reg.status <> 'cancelled'
		)`, filter.YatraID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("pilgrims.name ILIKE ? OR pilgrims.pnr ILIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := query.Order("pilgrims.id ASC").Limit(filter.Limit).Offset(offset).Find(&people).Error
	if err != nil {
		return nil, 0, err
	}
	return people, total, nil
}
