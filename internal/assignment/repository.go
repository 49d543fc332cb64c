package assignment

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vinaythakkar13/yatra-backend/internal/hotel"
	"github.com/vinaythakkar13/yatra-backend/internal/pilgrim"
)

// ErrRoomTaken is returned by OccupyRoom when the row is held by someone
// else at write time.
var ErrRoomTaken = errors.New("room already occupied")

type Repository interface {
	Transaction(ctx context.Context, fn func(repo Repository) error) error

	LockPerson(ctx context.Context, personID uint) (*pilgrim.Person, error)
	RoomsHeldBy(ctx context.Context, personID uint) ([]hotel.Room, error)
	// LockHotels locks the existing hotels among ids, in id order, and
	// returns the ids it found.
	LockHotels(ctx context.Context, ids []uint) ([]uint, error)
	LockRoomAt(ctx context.Context, sel RoomSelection) (*hotel.Room, error)

	ReleaseRooms(ctx context.Context, personID uint) (int64, error)
	OccupyRoom(ctx context.Context, roomID, personID uint) error
	SetPersonAssignment(ctx context.Context, personID uint, status string, primaryRoomID *uint) error
	RecomputeHotelAggregates(ctx context.Context, hotelID uint) (hotel.Aggregates, error)

	YatraExists(ctx context.Context, yatraID uint) (bool, error)
	FinalizeDrafts(ctx context.Context, yatraID uint) (int64, error)
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

func (r *repository) LockPerson(ctx context.Context, personID uint) (*pilgrim.Person, error) {
	var p pilgrim.Person
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&p, personID).Error
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

func (r *repository) LockHotels(ctx context.Context, ids []uint) ([]uint, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var found []uint
	err := r.db.WithContext(ctx).
		Model(&hotel.Hotel{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", ids).
		Order("id ASC").
		Pluck("id", &found).Error
	return found, err
}

func (r *repository) LockRoomAt(ctx context.Context, sel RoomSelection) (*hotel.Room, error) {
	var room hotel.Room
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("hotel_id = ? AND floor = ? AND room_number = ?", sel.HotelID, sel.Floor, sel.RoomNumber).
		First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *repository) ReleaseRooms(ctx context.Context, personID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&hotel.Room{}).
		Where("assigned_person_id = ?", personID).
		Updates(map[string]interface{}{
			"is_occupied":        false,
			"assigned_person_id": nil,
		})
	return res.RowsAffected, res.Error
}

// OccupyRoom only writes a vacant row, so a holder committed since the
// validation read surfaces as ErrRoomTaken instead of being overwritten.
func (r *repository) OccupyRoom(ctx context.Context, roomID, personID uint) error {
	res := r.db.WithContext(ctx).
		Model(&hotel.Room{}).
		Where("id = ? AND assigned_person_id IS NULL", roomID).
		Updates(map[string]interface{}{
			"is_occupied":        true,
			"assigned_person_id": personID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRoomTaken
	}
	return nil
}

func (r *repository) SetPersonAssignment(ctx context.Context, personID uint, status string, primaryRoomID *uint) error {
	return r.db.WithContext(ctx).
		Model(&pilgrim.Person{}).
		Where("id = ?", personID).
		Updates(map[string]interface{}{
			"room_assignment_status": status,
			"assigned_room_id":       primaryRoomID,
		}).Error
}

func (r *repository) RecomputeHotelAggregates(ctx context.Context, hotelID uint) (hotel.Aggregates, error) {
	return hotel.RecomputeAggregates(ctx, r.db, hotelID)
}

func (r *repository) YatraExists(ctx context.Context, yatraID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("yatras").Where("id = ?", yatraID).Count(&count).Error
	return count > 0, err
}

func (r *repository) FinalizeDrafts(ctx context.Context, yatraID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&pilgrim.Person{}).
		Where("room_assignment_status = ?", pilgrim.AssignmentDraft).
		Where(`EXISTS (
			SELECT 1 FROM registrations reg
			WHERE reg.person_id = pilgrims.id AND reg.yatra_id = ? AND reg.status <> 'cancelled'
		)`, yatraID).
		Update("room_assignment_status", pilgrim.AssignmentConfirmed)
	return res.RowsAffected, res.Error
}
