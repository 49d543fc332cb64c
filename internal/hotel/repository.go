package hotel

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	// Transaction runs fn against a repository bound to one database
	// transaction; fn's error rolls everything back.
	Transaction(ctx context.Context, fn func(repo Repository) error) error

	YatraExists(ctx context.Context, yatraID uint) (bool, error)
	CreateHotel(ctx context.Context, h *Hotel) error
	GetHotel(ctx context.Context, id uint, withRooms bool) (*Hotel, error)
	LockHotel(ctx context.Context, id uint) (*Hotel, error)
	ListHotels(ctx context.Context, yatraID uint) ([]Hotel, error)
	UpdateHotel(ctx context.Context, h *Hotel) error
	DeleteHotel(ctx context.Context, id uint) error

	CreateRooms(ctx context.Context, rooms []Room) error
	ListRooms(ctx context.Context, hotelID uint) ([]Room, error)
	GetRoom(ctx context.Context, id uint) (*Room, error)
	UpdateRoom(ctx context.Context, r *Room) error
	DeleteRooms(ctx context.Context, ids []uint) error
	CountOccupied(ctx context.Context, hotelID uint) (int64, error)

	RecomputeAggregates(ctx context.Context, hotelID uint) (Aggregates, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Transaction(ctx context.Context, fn func(repo Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&repository{db: tx})
	})
}

func (r *repository) YatraExists(ctx context.Context, yatraID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("yatras").Where("id = ?", yatraID).Count(&count).Error
	return count > 0, err
}

// CreateHotel inserts the hotel row only; rooms go through CreateRooms.
func (r *repository) CreateHotel(ctx context.Context, h *Hotel) error {
	return r.db.WithContext(ctx).Omit("Rooms").Create(h).Error
}

func (r *repository) GetHotel(ctx context.Context, id uint, withRooms bool) (*Hotel, error) {
	var h Hotel
	query := r.db.WithContext(ctx)
	if withRooms {
		query = query.Preload("Rooms", func(db *gorm.DB) *gorm.DB {
			return db.Order("floor ASC, room_number ASC")
		})
	}
	if err := query.First(&h, id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

// LockHotel reads the hotel row with SELECT ... FOR UPDATE.
func (r *repository) LockHotel(ctx context.Context, id uint) (*Hotel, error) {
	var h Hotel
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&h, id).Error
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *repository) ListHotels(ctx context.Context, yatraID uint) ([]Hotel, error) {
	var hotels []Hotel
	query := r.db.WithContext(ctx).Order("name ASC")
	if yatraID != 0 {
		query = query.Where("yatra_id = ?", yatraID)
	}
	if err := query.Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}

// UpdateHotel saves descriptive fields and the layout. Aggregates are left
// to RecomputeAggregates.
func (r *repository) UpdateHotel(ctx context.Context, h *Hotel) error {
	return r.db.WithContext(ctx).
		Model(h).
		Select("name", "address", "map_link", "contact_person", "contact_number", "floor_layout", "is_active").
		Updates(h).Error
}

func (r *repository) DeleteHotel(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("hotel_id = ?", id).Delete(&Room{}).Error; err != nil {
		return err
	}
	res := db.Delete(&Hotel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CreateRooms(ctx context.Context, rooms []Room) error {
	if len(rooms) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(rooms, 200).Error
}

func (r *repository) ListRooms(ctx context.Context, hotelID uint) ([]Room, error) {
	var rooms []Room
	err := r.db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("floor ASC, room_number ASC").
		Find(&rooms).Error
	return rooms, err
}

func (r *repository) GetRoom(ctx context.Context, id uint) (*Room, error) {
	var room Room
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// UpdateRoom saves the room's descriptive fields; occupancy belongs to the
// assignment manager.
func (r *repository) UpdateRoom(ctx context.Context, room *Room) error {
	return r.db.WithContext(ctx).
		Model(room).
		Select("bed_count", "daily_charge", "toilet_type").
		Updates(room).Error
}

func (r *repository) DeleteRooms(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&Room{}).Error
}

func (r *repository) CountOccupied(ctx context.Context, hotelID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Room{}).
		Where("hotel_id = ? AND is_occupied = ?", hotelID, true).
		Count(&count).Error
	return count, err
}

func (r *repository) RecomputeAggregates(ctx context.Context, hotelID uint) (Aggregates, error) {
	return RecomputeAggregates(ctx, r.db, hotelID)
}
