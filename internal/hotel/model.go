package hotel

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// FloorLayout declares the room numbers present on one floor.
type FloorLayout struct {
	Floor string   `json:"floor" validate:"required,max=50"`
	Rooms []string `json:"rooms" validate:"required,min=1,dive,required,max=50"`
}

// Hotel represents the hotels table. TotalRooms, OccupiedRooms and
// AvailableRooms are derived from the hotel's rooms and are only ever
// written by RecomputeAggregates.
type Hotel struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	YatraID        uint           `gorm:"not null;index" json:"yatra_id"`
	Name           string         `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	Address        string         `gorm:"type:text" json:"address"`
	MapLink        string         `gorm:"type:text" json:"map_link,omitempty"`
	ContactPerson  string         `gorm:"type:varchar(255)" json:"contact_person,omitempty"`
	ContactNumber  string         `gorm:"type:varchar(20)" json:"contact_number,omitempty"`
	FloorLayout    datatypes.JSON `gorm:"type:jsonb;not null" json:"floor_layout"`
	TotalRooms     int            `gorm:"not null;default:0" json:"total_rooms"`
	OccupiedRooms  int            `gorm:"not null;default:0" json:"occupied_rooms"`
	AvailableRooms int            `gorm:"not null;default:0" json:"available_rooms"`
	IsActive       bool           `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	Rooms []Room `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE" json:"rooms,omitempty"`
}

func (Hotel) TableName() string {
	return "hotels"
}

// Layout decodes the stored floor layout.
func (h *Hotel) Layout() ([]FloorLayout, error) {
	var floors []FloorLayout
	if len(h.FloorLayout) == 0 {
		return floors, nil
	}
	err := json.Unmarshal(h.FloorLayout, &floors)
	return floors, err
}

// SetLayout encodes floors into FloorLayout.
func (h *Hotel) SetLayout(floors []FloorLayout) error {
	b, err := json.Marshal(floors)
	if err != nil {
		return err
	}
	h.FloorLayout = datatypes.JSON(b)
	return nil
}

const (
	ToiletWestern = "western"
	ToiletIndian  = "indian"
)

// Room represents the rooms table. A room is occupied exactly when it has
// an assigned person; a database check constraint enforces the same rule.
type Room struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	HotelID          uint      `gorm:"not null;uniqueIndex:idx_rooms_location,priority:1" json:"hotel_id"`
	Floor            string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_rooms_location,priority:2" json:"floor"`
	RoomNumber       string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_rooms_location,priority:3" json:"room_number"`
	BedCount         int       `gorm:"not null;default:1" json:"bed_count"`
	DailyCharge      float64   `gorm:"type:numeric(10,2);not null;default:0" json:"daily_charge"`
	ToiletType       string    `gorm:"type:varchar(20);not null;default:'western'" json:"toilet_type"`
	IsOccupied       bool      `gorm:"not null;default:false;index" json:"is_occupied"`
	AssignedPersonID *uint     `gorm:"index" json:"assigned_person_id"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Room) TableName() string {
	return "rooms"
}

// LocationKey is the natural key of a room within its hotel.
func LocationKey(floor, roomNumber string) string {
	return floor + "/" + roomNumber
}

// RoomDefaults seeds rooms created from a layout.
type RoomDefaults struct {
	BedCount    int     `json:"bed_count" validate:"omitempty,min=1,max=20"`
	DailyCharge float64 `json:"daily_charge" validate:"omitempty,min=0"`
	ToiletType  string  `json:"toilet_type" validate:"omitempty,oneof=western indian"`
}

type CreateHotelRequest struct {
	YatraID       uint          `json:"yatra_id" validate:"required"`
	Name          string        `json:"name" validate:"required,max=255"`
	Address       string        `json:"address"`
	MapLink       string        `json:"map_link"`
	ContactPerson string        `json:"contact_person" validate:"max=255"`
	ContactNumber string        `json:"contact_number" validate:"max=20"`
	Floors        []FloorLayout `json:"floors" validate:"required,min=1,dive"`
	RoomDefaults  RoomDefaults  `json:"room_defaults"`
	IsActive      *bool         `json:"is_active,omitempty"`
}

// UpdateHotelRequest edits non-structural fields; nil fields are left as is.
type UpdateHotelRequest struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Address       *string `json:"address,omitempty"`
	MapLink       *string `json:"map_link,omitempty"`
	ContactPerson *string `json:"contact_person,omitempty" validate:"omitempty,max=255"`
	ContactNumber *string `json:"contact_number,omitempty" validate:"omitempty,max=20"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

type UpdateLayoutRequest struct {
	Floors       []FloorLayout `json:"floors" validate:"required,min=1,dive"`
	RoomDefaults RoomDefaults  `json:"room_defaults"`
}

type UpdateRoomRequest struct {
	BedCount    *int     `json:"bed_count,omitempty" validate:"omitempty,min=1,max=20"`
	DailyCharge *float64 `json:"daily_charge,omitempty" validate:"omitempty,min=0"`
	ToiletType  *string  `json:"toilet_type,omitempty" validate:"omitempty,oneof=western indian"`
}
