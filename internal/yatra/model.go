package yatra

import (
	"time"
)

// ============================
// 🔷 GORM Yatra Model
type Yatra struct {
	ID                    uint       `gorm:"primaryKey" json:"id"`
	Name                  string     `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	Description           string     `gorm:"type:text" json:"description"`
	StartDate             time.Time  `gorm:"type:date;not null;index" json:"start_date"`
	EndDate               time.Time  `gorm:"type:date;not null" json:"end_date"`
	RegistrationStartDate *time.Time `gorm:"type:date" json:"registration_start_date,omitempty"`
	RegistrationEndDate   *time.Time `gorm:"type:date" json:"registration_end_date,omitempty"`
	IsActive              bool       `gorm:"default:true;index" json:"is_active"`
	CreatedAt             time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	ActiveRegistrations int `gorm:"-" json:"active_registrations"`
}

func (Yatra) TableName() string {
	return "yatras"
}

const dateLayout = "2006-01-02"

// ============================
// 🟡 Create Yatra Request
type CreateYatraRequest struct {
	Name                  string `json:"name" binding:"required"`
	Description           string `json:"description"`
	StartDate             string `json:"start_date" binding:"required"` // "2006-01-02"
	EndDate               string `json:"end_date" binding:"required"`
	RegistrationStartDate string `json:"registration_start_date,omitempty"`
	RegistrationEndDate   string `json:"registration_end_date,omitempty"`
	IsActive              *bool  `json:"is_active,omitempty"`
}

// ============================
// 🟠 Update Yatra Request
// Only non-nil fields are applied.
type UpdateYatraRequest struct {
	Name                  *string `json:"name,omitempty"`
	Description           *string `json:"description,omitempty"`
	StartDate             *string `json:"start_date,omitempty"`
	EndDate               *string `json:"end_date,omitempty"`
	RegistrationStartDate *string `json:"registration_start_date,omitempty"`
	RegistrationEndDate   *string `json:"registration_end_date,omitempty"`
	IsActive              *bool   `json:"is_active,omitempty"`
}
