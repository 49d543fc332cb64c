package registration

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/vinaythakkar13/yatra-backend/internal/hotel"
	"github.com/vinaythakkar13/yatra-backend/internal/pilgrim"
)

// Registration status.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
)

// Document review status.
const (
	DocumentPending  = "pending"
	DocumentApproved = "approved"
	DocumentRejected = "rejected"
)

// Registration represents the registrations table. For split bookings PNR
// holds the generated internal PNR (mirrored in InternalPNR) and
// OriginalPNR the real booking reference.
type Registration struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	PersonID        uint           `gorm:"not null;index" json:"person_id"`
	YatraID         uint           `gorm:"not null;index" json:"yatra_id"`
	PNR             string         `gorm:"type:varchar(20);not null;index" json:"pnr"`
	InternalPNR     *string        `gorm:"type:varchar(10)" json:"internal_pnr,omitempty"`
	OriginalPNR     *string        `gorm:"type:varchar(20);index" json:"original_pnr,omitempty"`
	Name            string         `gorm:"type:varchar(255);not null" json:"name"`
	WhatsappNumber  string         `gorm:"type:varchar(20)" json:"whatsapp_number"`
	NumberOfPersons int            `gorm:"not null" json:"number_of_persons"`
	BoardingCity    string         `gorm:"type:varchar(100)" json:"boarding_city"`
	BoardingState   string         `gorm:"type:varchar(100)" json:"boarding_state"`
	ArrivalDate     *time.Time     `gorm:"type:date" json:"arrival_date"`
	ReturnDate      *time.Time     `gorm:"type:date" json:"return_date"`
	TicketImages    datatypes.JSON `gorm:"type:jsonb" json:"ticket_images"`
	TicketType      *string        `gorm:"type:varchar(30)" json:"ticket_type"`
	Status          string         `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	DocumentStatus  string         `gorm:"type:varchar(20);not null;default:'pending';index" json:"document_status"`

	ApprovedByID            *uint      `json:"approved_by_id"`
	ApprovedAt              *time.Time `json:"approved_at"`
	RejectedByID            *uint      `json:"rejected_by_id"`
	RejectedAt              *time.Time `json:"rejected_at"`
	RejectionReason         *string    `gorm:"type:text" json:"rejection_reason"`
	CancelledByID           *uint      `json:"cancelled_by_id"`
	CancelledAt             *time.Time `json:"cancelled_at"`
	CancellationReason      *string    `gorm:"type:text" json:"cancellation_reason"`
	DocumentReviewedByID    *uint      `json:"document_reviewed_by_id"`
	DocumentReviewedAt      *time.Time `json:"document_reviewed_at"`
	DocumentRejectionReason *string    `gorm:"type:text" json:"document_rejection_reason"`
	AdminComments           *string    `gorm:"type:text" json:"admin_comments"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Persons []PersonDetail `gorm:"foreignKey:RegistrationID;constraint:OnDelete:CASCADE" json:"persons"`
}

func (Registration) TableName() string {
	return "registrations"
}

// IsSplit reports whether the registration was carved out of a larger booking.
func (r *Registration) IsSplit() bool {
	return r.OriginalPNR != nil
}

// Images decodes TicketImages.
func (r *Registration) Images() []string {
	var out []string
	if len(r.TicketImages) > 0 {
		_ = json.Unmarshal(r.TicketImages, &out)
	}
	return out
}

func (r *Registration) setImages(urls []string) {
	if urls == nil {
		urls = []string{}
	}
	b, _ := json.Marshal(urls)
	r.TicketImages = datatypes.JSON(b)
}

// clone copies r deeply enough for a before-snapshot.
func (r *Registration) clone() *Registration {
	c := *r
	c.Persons = append([]PersonDetail(nil), r.Persons...)
	c.TicketImages = append(datatypes.JSON(nil), r.TicketImages...)
	return &c
}

// PersonDetail is one traveller of a registration, in submission order.
type PersonDetail struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	RegistrationID uint      `gorm:"not null;index" json:"registration_id"`
	Position       int       `gorm:"not null" json:"position"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Age            int       `json:"age"`
	Gender         string    `gorm:"type:varchar(10)" json:"gender"`
	IsHandicapped  bool      `gorm:"default:false" json:"is_handicapped"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PersonDetail) TableName() string {
	return "registration_persons"
}

type PersonDetailInput struct {
	Name          string `json:"name" validate:"required,max=255"`
	Age           int    `json:"age" validate:"min=0,max=120"`
	Gender        string `json:"gender" validate:"required,oneof=male female other"`
	IsHandicapped bool   `json:"is_handicapped"`
}

type CreateRegistrationRequest struct {
	YatraID         uint                `json:"yatra_id" validate:"required"`
	PNR             string              `json:"pnr" validate:"required,max=20"`
	Name            string              `json:"name" validate:"required,max=255"`
	WhatsappNumber  string              `json:"whatsapp_number" validate:"required,max=20"`
	NumberOfPersons int                 `json:"number_of_persons" validate:"omitempty,min=1"`
	BoardingCity    string              `json:"boarding_city" validate:"max=100"`
	BoardingState   string              `json:"boarding_state" validate:"max=100"`
	ArrivalDate     string              `json:"arrival_date"` // "2006-01-02"
	ReturnDate      string              `json:"return_date"`
	TicketImages    []string            `json:"ticket_images" validate:"dive,required"`
	TicketType      *string             `json:"ticket_type" validate:"omitempty,max=30"`
	Persons         []PersonDetailInput `json:"persons" validate:"required,min=1,dive"`
}

// UpdateRegistrationRequest carries partial edits; nil fields are untouched.
// A non-nil Persons replaces the whole traveller list.
type UpdateRegistrationRequest struct {
	Name           *string              `json:"name" validate:"omitempty,min=1,max=255"`
	WhatsappNumber *string              `json:"whatsapp_number" validate:"omitempty,min=1,max=20"`
	BoardingCity   *string              `json:"boarding_city" validate:"omitempty,max=100"`
	BoardingState  *string              `json:"boarding_state" validate:"omitempty,max=100"`
	ArrivalDate    *string              `json:"arrival_date"`
	ReturnDate     *string              `json:"return_date"`
	TicketImages   *[]string            `json:"ticket_images" validate:"omitempty,dive,required"`
	Persons        *[]PersonDetailInput `json:"persons" validate:"omitempty,min=1,dive"`

	Owner *OwnerProof `json:"owner"`
}

// OwnerProof identifies a pilgrim changing their own registration: the PNR
// it was filed under (or the original PNR of a split) and the WhatsApp
// number on record. Operators do not need one.
type OwnerProof struct {
	PNR            string `json:"pnr" validate:"required,max=20"`
	WhatsappNumber string `json:"whatsapp_number" validate:"required,max=20"`
}

type CancelRequest struct {
	Reason string      `json:"reason"`
	Owner  *OwnerProof `json:"owner"`
}

type ReviewRequest struct {
	Reason   string `json:"reason"`
	Comments string `json:"comments"`
}

type TicketTypeRequest struct {
	TicketType *string `json:"ticket_type" validate:"omitempty,max=30"`
}

type ListFilter struct {
	YatraID        uint
	Status         string
	DocumentStatus string
	Search         string
	Page           int
	Limit          int
}

type PaginatedRegistrations struct {
	Data       []Registration `json:"data"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}

// AssignedRoom is a held room with its hotel name, for PNR lookups.
type AssignedRoom struct {
	RoomID     uint   `json:"room_id"`
	HotelID    uint   `json:"hotel_id"`
	HotelName  string `json:"hotel_name"`
	Floor      string `json:"floor"`
	RoomNumber string `json:"room_number"`
	BedCount   int    `json:"bed_count"`
}

type PnrResolution struct {
	Registration *Registration   `json:"registration"`
	Person       *pilgrim.Person `json:"person"`
	Rooms        []AssignedRoom  `json:"rooms"`
}

type SplitSummary struct {
	OriginalPNR  string `json:"original_pnr"`
	Splits       int64  `json:"splits"`
	TotalPersons int64  `json:"total_persons"`
}

func assignedRooms(rooms []hotel.Room, hotels map[uint]hotel.Hotel) []AssignedRoom {
	out := make([]AssignedRoom, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, AssignedRoom{
			RoomID:     r.ID,
			HotelID:    r.HotelID,
			HotelName:  hotels[r.HotelID].Name,
			Floor:      r.Floor,
			RoomNumber: r.RoomNumber,
			BedCount:   r.BedCount,
		})
	}
	return out
}

// Event is published after a lifecycle change commits.
type Event struct {
	RegistrationID uint      `json:"registration_id"`
	YatraID        uint      `json:"yatra_id"`
	PNR            string    `json:"pnr"`
	Action         string    `json:"action"`
	Status         string    `json:"status"`
	DocumentStatus string    `json:"document_status"`
	ActorID        *uint     `json:"actor_id,omitempty"`
	ActorKind      string    `json:"actor_kind"`
	OccurredAt     time.Time `json:"occurred_at"`
}
