package hotel

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/vinaythakkar13/yatra-backend/internal/apperror"
	"github.com/vinaythakkar13/yatra-backend/logger"
)

type Service interface {
	CreateHotel(ctx context.Context, req *CreateHotelRequest) (*Hotel, error)
	UpdateHotel(ctx context.Context, id uint, req *UpdateHotelRequest) (*Hotel, error)
	UpdateLayout(ctx context.Context, id uint, req *UpdateLayoutRequest) (*Hotel, error)
	UpdateRoom(ctx context.Context, roomID uint, req *UpdateRoomRequest) (*Room, error)
	DeleteHotel(ctx context.Context, id uint) error
	GetHotel(ctx context.Context, id uint) (*Hotel, error)
	ListHotels(ctx context.Context, yatraID uint) ([]Hotel, error)
}

type service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) Service {
	return &service{repo: repo, validate: validator.New()}
}

func (s *service) CreateHotel(ctx context.Context, req *CreateHotelRequest) (*Hotel, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validate.Struct(req); err != nil {
		return nil, apperror.Validation("invalid hotel: %v", err)
	}
	floors, err := normalizeLayout(req.Floors)
	if err != nil {
		return nil, err
	}

	h := &Hotel{
		YatraID:       req.YatraID,
		Name:          req.Name,
		Address:       req.Address,
		MapLink:       req.MapLink,
		ContactPerson: req.ContactPerson,
		ContactNumber: req.ContactNumber,
		IsActive:      true,
	}
	if req.IsActive != nil {
		h.IsActive = *req.IsActive
	}
	if err := h.SetLayout(floors); err != nil {
		return nil, err
	}

	err = s.repo.Transaction(ctx, func(repo Repository) error {
		ok, err := repo.YatraExists(ctx, req.YatraID)
		if err != nil {
			return err
		}
		if !ok {
			return apperror.NotFound("yatra %d not found", req.YatraID)
		}

		if err := repo.CreateHotel(ctx, h); err != nil {
			if apperror.IsUniqueViolation(err) {
				return apperror.Conflict("hotel %q already exists", h.Name)
			}
			return err
		}
		if err := repo.CreateRooms(ctx, roomsFor(h.ID, floors, req.RoomDefaults)); err != nil {
			return err
		}
		agg, err := repo.RecomputeAggregates(ctx, h.ID)
		if err != nil {
			return err
		}
		h.applyAggregates(agg)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Infof("Hotel %d (%s) created with %d rooms", h.ID, h.Name, h.TotalRooms)
	return h, nil
}

func (s *service) UpdateHotel(ctx context.Context, id uint, req *UpdateHotelRequest) (*Hotel, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperror.Validation("invalid hotel update: %v", err)
	}

	h, err := s.repo.GetHotel(ctx, id, false)
	if err != nil {
		return nil, notFound(err, "hotel %d not found", id)
	}

	if req.Name != nil {
		h.Name = strings.TrimSpace(*req.Name)
		if h.Name == "" {
			return nil, apperror.Validation("hotel name cannot be empty")
		}
	}
	if req.Address != nil {
		h.Address = *req.Address
	}
	if req.MapLink != nil {
		h.MapLink = *req.MapLink
	}
	if req.ContactPerson != nil {
		h.ContactPerson = *req.ContactPerson
	}
	if req.ContactNumber != nil {
		h.ContactNumber = *req.ContactNumber
	}
	if req.IsActive != nil {
		h.IsActive = *req.IsActive
	}

	if err := s.repo.UpdateHotel(ctx, h); err != nil {
		if apperror.IsUniqueViolation(err) {
			return nil, apperror.Conflict("hotel %q already exists", h.Name)
		}
		return nil, err
	}
	return h, nil
}

// UpdateLayout redefines the hotel's floors. Rooms still declared keep
// their ids and attributes, undeclared rooms are removed, new ones are
// created from the defaults.
func (s *service) UpdateLayout(ctx context.Context, id uint, req *UpdateLayoutRequest) (*Hotel, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperror.Validation("invalid layout: %v", err)
	}
	floors, err := normalizeLayout(req.Floors)
	if err != nil {
		return nil, err
	}

	var h *Hotel
	err = s.repo.Transaction(ctx, func(repo Repository) error {
		var err error
		h, err = repo.LockHotel(ctx, id)
		if err != nil {
			return notFound(err, "hotel %d not found", id)
		}
		if err := ensureVacant(ctx, repo, h); err != nil {
			return err
		}

		existing, err := repo.ListRooms(ctx, id)
		if err != nil {
			return err
		}
		declared := make(map[string]bool)
		for _, f := range floors {
			for _, n := range f.Rooms {
				declared[LocationKey(f.Floor, n)] = true
			}
		}

		var removed []uint
		kept := make(map[string]bool, len(existing))
		for _, room := range existing {
			key := LocationKey(room.Floor, room.RoomNumber)
			if declared[key] {
				kept[key] = true
				continue
			}
			removed = append(removed, room.ID)
		}
		if err := repo.DeleteRooms(ctx, removed); err != nil {
			return err
		}

		var added []Room
		for _, room := range roomsFor(id, floors, req.RoomDefaults) {
			if !kept[LocationKey(room.Floor, room.RoomNumber)] {
				added = append(added, room)
			}
		}
		if err := repo.CreateRooms(ctx, added); err != nil {
			return err
		}

		if err := h.SetLayout(floors); err != nil {
			return err
		}
		if err := repo.UpdateHotel(ctx, h); err != nil {
			return err
		}
		agg, err := repo.RecomputeAggregates(ctx, id)
		if err != nil {
			return err
		}
		h.applyAggregates(agg)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (s *service) UpdateRoom(ctx context.Context, roomID uint, req *UpdateRoomRequest) (*Room, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperror.Validation("invalid room update: %v", err)
	}

	room, err := s.repo.GetRoom(ctx, roomID)
	if err != nil {
		return nil, notFound(err, "room %d not found", roomID)
	}
	if req.BedCount != nil {
		room.BedCount = *req.BedCount
	}
	if req.DailyCharge != nil {
		room.DailyCharge = *req.DailyCharge
	}
	if req.ToiletType != nil {
		room.ToiletType = *req.ToiletType
	}

	if err := s.repo.UpdateRoom(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *service) DeleteHotel(ctx context.Context, id uint) error {
	return s.repo.Transaction(ctx, func(repo Repository) error {
		h, err := repo.LockHotel(ctx, id)
		if err != nil {
			return notFound(err, "hotel %d not found", id)
		}
		if err := ensureVacant(ctx, repo, h); err != nil {
			return err
		}
		return repo.DeleteHotel(ctx, id)
	})
}

func (s *service) GetHotel(ctx context.Context, id uint) (*Hotel, error) {
	h, err := s.repo.GetHotel(ctx, id, true)
	if err != nil {
		return nil, notFound(err, "hotel %d not found", id)
	}
	return h, nil
}

func (s *service) ListHotels(ctx context.Context, yatraID uint) ([]Hotel, error) {
	hotels, err := s.repo.ListHotels(ctx, yatraID)
	if err != nil {
		return nil, err
	}
	if hotels == nil {
		hotels = []Hotel{}
	}
	return hotels, nil
}

func ensureVacant(ctx context.Context, repo Repository, h *Hotel) error {
	occupied, err := repo.CountOccupied(ctx, h.ID)
	if err != nil {
		return err
	}
	if occupied > 0 {
		return apperror.Conflict("hotel %q has %d occupied rooms; release them before structural changes", h.Name, occupied)
	}
	return nil
}

// normalizeLayout trims labels and rejects duplicate floors or room numbers.
func normalizeLayout(floors []FloorLayout) ([]FloorLayout, error) {
	out := make([]FloorLayout, 0, len(floors))
	seenFloors := make(map[string]bool, len(floors))
	for _, f := range floors {
		label := strings.TrimSpace(f.Floor)
		if label == "" {
			return nil, apperror.Validation("floor label is required")
		}
		if seenFloors[label] {
			return nil, apperror.Validation("floor %q declared twice", label)
		}
		seenFloors[label] = true

		seenRooms := make(map[string]bool, len(f.Rooms))
		rooms := make([]string, 0, len(f.Rooms))
		for _, n := range f.Rooms {
			n = strings.TrimSpace(n)
			if n == "" {
				return nil, apperror.Validation("floor %q has an empty room number", label)
			}
			if seenRooms[n] {
				return nil, apperror.Validation("room %q declared twice on floor %q", n, label)
			}
			seenRooms[n] = true
			rooms = append(rooms, n)
		}
		if len(rooms) == 0 {
			return nil, apperror.Validation("floor %q declares no rooms", label)
		}
		out = append(out, FloorLayout{Floor: label, Rooms: rooms})
	}
	return out, nil
}

func roomsFor(hotelID uint, floors []FloorLayout, d RoomDefaults) []Room {
	beds := d.BedCount
	if beds <= 0 {
		beds = 1
	}
	toilet := d.ToiletType
	if toilet == "" {
		toilet = ToiletWestern
	}

	var rooms []Room
	for _, f := range floors {
		for _, n := range f.Rooms {
			rooms = append(rooms, Room{
				HotelID:     hotelID,
				Floor:       f.Floor,
				RoomNumber:  n,
				BedCount:    beds,
				DailyCharge: d.DailyCharge,
				ToiletType:  toilet,
			})
		}
	}
	return rooms
}

func notFound(err error, format string, args ...interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound(format, args...)
	}
	return err
}
