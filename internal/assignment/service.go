package assignment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vinaythakkar13/yatra-backend/internal/apperror"
	"github.com/vinaythakkar13/yatra-backend/internal/hotel"
	"github.com/vinaythakkar13/yatra-backend/internal/pilgrim"
	"github.com/vinaythakkar13/yatra-backend/logger"
)

type Service interface {
	Assign(ctx context.Context, personID uint, rooms []RoomSelection) (*AssignResult, error)
	Release(ctx context.Context, personID uint) (*ReleaseResult, error)
	Reassign(ctx context.Context, personID uint, rooms []RoomSelection) (*AssignResult, error)
	FinalizeDraftAssignments(ctx context.Context, yatraID uint) (*FinalizeResult, error)
	RecomputeHotelAggregates(ctx context.Context, hotelID uint) (hotel.Aggregates, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Assign replaces the person's holding with exactly the requested rooms.
// Every requested room is resolved and checked before anything is written;
// an empty request releases everything.
func (s *service) Assign(ctx context.Context, personID uint, rooms []RoomSelection) (*AssignResult, error) {
	selections, err := normalizeSelections(rooms)
	if err != nil {
		return nil, err
	}

	var result *AssignResult
	err = s.repo.Transaction(ctx, func(repo Repository) error {
		var err error
		result, err = replaceHolding(ctx, repo, personID, selections)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.WithFields(map[string]interface{}{
		"person_id": personID,
		"rooms":     result.RoomsAssigned,
	}).Info("room assignment updated")
	return result, nil
}

// Reassign is Release followed by Assign in one transaction.
func (s *service) Reassign(ctx context.Context, personID uint, rooms []RoomSelection) (*AssignResult, error) {
	selections, err := normalizeSelections(rooms)
	if err != nil {
		return nil, err
	}

	var result *AssignResult
	err = s.repo.Transaction(ctx, func(repo Repository) error {
		if _, err := releaseHolding(ctx, repo, personID); err != nil {
			return err
		}
		var err error
		result, err = replaceHolding(ctx, repo, personID, selections)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Release frees every room the person holds. Releasing nothing succeeds.
func (s *service) Release(ctx context.Context, personID uint) (*ReleaseResult, error) {
	var released int
	err := s.repo.Transaction(ctx, func(repo Repository) error {
		var err error
		released, err = releaseHolding(ctx, repo, personID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &ReleaseResult{PersonID: personID, RoomsReleased: released}, nil
}

// FinalizeDraftAssignments confirms draft holdings of persons with a
// non-cancelled registration in the yatra.
func (s *service) FinalizeDraftAssignments(ctx context.Context, yatraID uint) (*FinalizeResult, error) {
	var count int64
	err := s.repo.Transaction(ctx, func(repo Repository) error {
		ok, err := repo.YatraExists(ctx, yatraID)
		if err != nil {
			return err
		}
		if !ok {
			return apperror.NotFound("yatra %d not found", yatraID)
		}
		count, err = repo.FinalizeDrafts(ctx, yatraID)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Infof("Finalized %d draft room assignments for yatra %d", count, yatraID)
	return &FinalizeResult{YatraID: yatraID, Finalized: count}, nil
}

func (s *service) RecomputeHotelAggregates(ctx context.Context, hotelID uint) (hotel.Aggregates, error) {
	var agg hotel.Aggregates
	err := s.repo.Transaction(ctx, func(repo Repository) error {
		found, err := repo.LockHotels(ctx, []uint{hotelID})
		if err != nil {
			return err
		}
		if len(found) == 0 {
			return apperror.NotFound("hotel %d not found", hotelID)
		}
		agg, err = repo.RecomputeHotelAggregates(ctx, hotelID)
		return err
	})
	return agg, err
}

// replaceHolding runs inside a transaction. Lock order is person, hotels
// (by id), requested rooms (by location), matching the hotel service which
// locks a hotel before touching its rooms.
func replaceHolding(ctx context.Context, repo Repository, personID uint, selections []RoomSelection) (*AssignResult, error) {
	if _, err := lockPerson(ctx, repo, personID); err != nil {
		return nil, err
	}

	held, err := repo.RoomsHeldBy(ctx, personID)
	if err != nil {
		return nil, err
	}
	touched := make(map[uint]bool)
	for _, r := range held {
		touched[r.HotelID] = true
	}
	for _, sel := range selections {
		touched[sel.HotelID] = true
	}
	if _, err := repo.LockHotels(ctx, sortedIDs(touched)); err != nil {
		return nil, err
	}

	// Validation pass over the whole set.
	resolved := make(map[RoomSelection]*hotel.Room, len(selections))
	for _, sel := range lockOrder(selections) {
		room, err := repo.LockRoomAt(ctx, sel)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("room %s on floor %s of hotel %d not found", sel.RoomNumber, sel.Floor, sel.HotelID)
		}
		if err != nil {
			return nil, err
		}
		if room.AssignedPersonID != nil && *room.AssignedPersonID != personID {
			return nil, apperror.Conflict("room %s on floor %s of hotel %d is already assigned to another pilgrim", sel.RoomNumber, sel.Floor, sel.HotelID)
		}
		resolved[sel] = room
	}

	// Commit pass.
	if _, err := repo.ReleaseRooms(ctx, personID); err != nil {
		return nil, err
	}
	var primary *uint
	for _, sel := range selections {
		room := resolved[sel]
		if err := repo.OccupyRoom(ctx, room.ID, personID); err != nil {
			if errors.Is(err, ErrRoomTaken) {
				return nil, apperror.Conflict("room %s on floor %s of hotel %d is already assigned to another pilgrim", sel.RoomNumber, sel.Floor, sel.HotelID)
			}
			return nil, err
		}
		if primary == nil {
			id := room.ID
			primary = &id
		}
	}

	status := pilgrim.AssignmentNone
	if len(selections) > 0 {
		status = pilgrim.AssignmentDraft
	}
	if err := repo.SetPersonAssignment(ctx, personID, status, primary); err != nil {
		return nil, err
	}
	if err := recompute(ctx, repo, touched); err != nil {
		return nil, err
	}

	return &AssignResult{
		PersonID:             personID,
		RoomsAssigned:        len(selections),
		PrimaryRoomID:        primary,
		RoomAssignmentStatus: status,
	}, nil
}

func releaseHolding(ctx context.Context, repo Repository, personID uint) (int, error) {
	if _, err := lockPerson(ctx, repo, personID); err != nil {
		return 0, err
	}

	held, err := repo.RoomsHeldBy(ctx, personID)
	if err != nil {
		return 0, err
	}
	touched := make(map[uint]bool)
	for _, r := range held {
		touched[r.HotelID] = true
	}
	if _, err := repo.LockHotels(ctx, sortedIDs(touched)); err != nil {
		return 0, err
	}

	released, err := repo.ReleaseRooms(ctx, personID)
	if err != nil {
		return 0, err
	}
	if err := repo.SetPersonAssignment(ctx, personID, pilgrim.AssignmentNone, nil); err != nil {
		return 0, err
	}
	if err := recompute(ctx, repo, touched); err != nil {
		return 0, err
	}
	return int(released), nil
}

func lockPerson(ctx context.Context, repo Repository, personID uint) (*pilgrim.Person, error) {
	p, err := repo.LockPerson(ctx, personID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("pilgrim %d not found", personID)
	}
	return p, err
}

func recompute(ctx context.Context, repo Repository, hotels map[uint]bool) error {
	for _, id := range sortedIDs(hotels) {
		if _, err := repo.RecomputeHotelAggregates(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("hotel %d not found", id)
			}
			return err
		}
	}
	return nil
}
