package hotel

import (
	"context"

	"gorm.io/gorm"
)

// Aggregates are a hotel's occupancy counters.
type Aggregates struct {
	TotalRooms     int `json:"total_rooms"`
	OccupiedRooms  int `json:"occupied_rooms"`
	AvailableRooms int `json:"available_rooms"`
}

// ComputeAggregates derives the counters from a room set.
func ComputeAggregates(rooms []Room) Aggregates {
	var agg Aggregates
	for _, r := range rooms {
		agg.TotalRooms++
		if r.IsOccupied {
			agg.OccupiedRooms++
		}
	}
	agg.AvailableRooms = agg.TotalRooms - agg.OccupiedRooms
	return agg
}

func (h *Hotel) applyAggregates(agg Aggregates) {
	h.TotalRooms = agg.TotalRooms
	h.OccupiedRooms = agg.OccupiedRooms
	h.AvailableRooms = agg.AvailableRooms
}

// RecomputeAggregates scans the hotel's rooms and rewrites its counters.
// Call it with the transaction that mutated the rooms so the counters
// commit together with the room rows; counters are never adjusted
// incrementally.
func RecomputeAggregates(ctx context.Context, db *gorm.DB, hotelID uint) (Aggregates, error) {
	var counts struct {
		Total    int
		Occupied int
	}
	err := db.WithContext(ctx).
		Model(&Room{}).
		Select("COUNT(*) AS total, COALESCE(SUM(CASE WHEN is_occupied THEN 1 ELSE 0 END), 0) AS occupied").
		Where("hotel_id = ?", hotelID).
		Scan(&counts).Error
	if err != nil {
		return Aggregates{}, err
	}

	agg := Aggregates{
		TotalRooms:     counts.Total,
		OccupiedRooms:  counts.Occupied,
		AvailableRooms: counts.Total - counts.Occupied,
	}

	res := db.WithContext(ctx).
		Model(&Hotel{}).
		Where("id = ?", hotelID).
		Updates(map[string]interface{}{
			"total_rooms":     agg.TotalRooms,
			"occupied_rooms":  agg.OccupiedRooms,
			"available_rooms": agg.AvailableRooms,
		})
	if res.Error != nil {
		return Aggregates{}, res.Error
	}
	if res.RowsAffected == 0 {
		return Aggregates{}, gorm.ErrRecordNotFound
	}
	return agg, nil
}
