package pilgrim

import (
	"time"

	"github.com/vinaythakkar13/yatra-backend/internal/hotel"
)

// Room assignment confidence, from tentative to final.
const (
	AssignmentNone      = "none"
	AssignmentDraft     = "draft"
	AssignmentConfirmed = "confirmed"
	AssignmentAlloted   = "alloted"
)

// Mirror of the latest registration decision for this pilgrim.
const (
	RegistrationPending   = "pending"
	RegistrationConfirmed = "confirmed"
	RegistrationCancelled = "cancelled"
)

// Person is the pilgrim account behind one or more registrations. The rooms
// a person holds are the rooms whose assigned_person_id points here;
// AssignedRoomID only names the primary one.
type Person struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	PNR                  string    `gorm:"type:varchar(20);not null;uniqueIndex" json:"pnr"`
	Name                 string    `gorm:"type:varchar(255);not null" json:"name"`
	WhatsappNumber       string    `gorm:"type:varchar(20)" json:"whatsapp_number"`
	Age                  int       `json:"age"`
	Gender               string    `gorm:"type:varchar(10)" json:"gender"`
	NumberOfPersons      int       `gorm:"not null;default:1" json:"number_of_persons"`
	RegistrationStatus   string    `gorm:"type:varchar(20);not null;default:'pending';index" json:"registration_status"`
	RoomAssignmentStatus string    `gorm:"type:varchar(20);not null;default:'none';index" json:"room_assignment_status"`
	AssignedRoomID       *uint     `json:"assigned_room_id"`
	CreatedAt            time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Person) TableName() string {
	return "pilgrims"
}

// PersonView is a person with the rooms currently held.
type PersonView struct {
	Person
	Rooms []hotel.Room `json:"rooms"`
}

type ListFilter struct {
	YatraID              uint
	RoomAssignmentStatus string
	Search               string
	Page                 int
	Limit                int
}
