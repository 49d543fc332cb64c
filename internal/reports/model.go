package reports

import (
	"time"
)

const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
	FormatPDF   = "pdf"

	ReportTypeRoomingList = "rooming-list"
	ReportTypeRoster      = "registration-roster"
)

// RoomingListRow is one room of a hotel with its current occupant, if any.
type RoomingListRow struct {
	Floor            string  `json:"floor"`
	RoomNumber       string  `json:"room_number"`
	BedCount         int     `json:"bed_count"`
	ToiletType       string  `json:"toilet_type"`
	DailyCharge      float64 `json:"daily_charge"`
	IsOccupied       bool    `json:"is_occupied"`
	OccupantName     *string `json:"occupant_name"`
	OccupantPNR      *string `json:"occupant_pnr"`
	AssignmentStatus *string `json:"assignment_status"`
}

type RoomingList struct {
	HotelID        uint             `json:"hotel_id"`
	HotelName      string           `json:"hotel_name"`
	TotalRooms     int              `json:"total_rooms"`
	OccupiedRooms  int              `json:"occupied_rooms"`
	AvailableRooms int              `json:"available_rooms"`
	Rows           []RoomingListRow `gorm:"-" json:"rows"`
}

// RosterRow is one registration of a yatra.
type RosterRow struct {
	ID              uint      `json:"id"`
	PNR             string    `json:"pnr"`
	OriginalPNR     *string   `json:"original_pnr"`
	Name            string    `json:"name"`
	WhatsappNumber  string    `json:"whatsapp_number"`
	NumberOfPersons int       `json:"number_of_persons"`
	BoardingCity    string    `json:"boarding_city"`
	Status          string    `json:"status"`
	DocumentStatus  string    `json:"document_status"`
	CreatedAt       time.Time `json:"created_at"`
}

type Roster struct {
	YatraID   uint        `json:"yatra_id"`
	YatraName string      `json:"yatra_name"`
	Status    string      `json:"status,omitempty"`
	Rows      []RosterRow `json:"rows"`
}

// ExportFile is a rendered report ready to be sent as an attachment.
type ExportFile struct {
	Data     []byte
	Filename string
	MIME     string
}
