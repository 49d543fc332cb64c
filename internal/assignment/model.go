package assignment

import (
	"sort"
	"strings"

	"github.com/vinaythakkar13/yatra-backend/internal/apperror"
)

// RoomSelection addresses a room by its physical location.
type RoomSelection struct {
	HotelID    uint   `json:"hotel_id" binding:"required"`
	Floor      string `json:"floor" binding:"required"`
	RoomNumber string `json:"room_number" binding:"required"`
}

type AssignRequest struct {
	Rooms []RoomSelection `json:"rooms" binding:"dive"`
}

// AssignResult reports the holding after an assignment. PrimaryRoomID is
// the first requested room, nil when nothing is held.
type AssignResult struct {
	PersonID             uint   `json:"person_id"`
	RoomsAssigned        int    `json:"rooms_assigned"`
	PrimaryRoomID        *uint  `json:"primary_room_id"`
	RoomAssignmentStatus string `json:"room_assignment_status"`
}

type ReleaseResult struct {
	PersonID      uint `json:"person_id"`
	RoomsReleased int  `json:"rooms_released"`
}

type FinalizeResult struct {
	YatraID   uint  `json:"yatra_id"`
	Finalized int64 `json:"finalized"`
}

// normalizeSelections trims, rejects incomplete entries and drops repeats
// while keeping request order.
func normalizeSelections(in []RoomSelection) ([]RoomSelection, error) {
	out := make([]RoomSelection, 0, len(in))
	seen := make(map[RoomSelection]bool, len(in))
	for i, sel := range in {
		sel.Floor = strings.TrimSpace(sel.Floor)
		sel.RoomNumber = strings.TrimSpace(sel.RoomNumber)
		if sel.HotelID == 0 || sel.Floor == "" || sel.RoomNumber == "" {
			return nil, apperror.Validation("room %d: hotel_id, floor and room_number are required", i+1)
		}
		if seen[sel] {
			continue
		}
		seen[sel] = true
		out = append(out, sel)
	}
	return out, nil
}

// lockOrder returns selections sorted so concurrent assignments acquire
// room locks in the same order.
func lockOrder(in []RoomSelection) []RoomSelection {
	out := append([]RoomSelection(nil), in...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].HotelID != out[j].HotelID {
			return out[i].HotelID < out[j].HotelID
		}
		if out[i].Floor != out[j].Floor {
			return out[i].Floor < out[j].Floor
		}
		return out[i].RoomNumber < out[j].RoomNumber
	})
	return out
}

func sortedIDs(set map[uint]bool) []uint {
	ids := make([]uint, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
