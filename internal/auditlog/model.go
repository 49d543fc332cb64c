package auditlog

import (
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActorKind distinguishes operators from pilgrims acting on their own registration.
type ActorKind string

const (
	ActorOperator    ActorKind = "operator"
	ActorSelfService ActorKind = "self_service"
)

// Actor is who performed a mutation. Authorization happens upstream; the
// core only records the identity.
type Actor struct {
	ID   uint      `json:"id"`
	Kind ActorKind `json:"kind"`
}

// IsOperator reports whether a is a non-nil operator.
func (a *Actor) IsOperator() bool {
	return a != nil && a.Kind == ActorOperator
}

// Origin is the request provenance stored with each log entry.
type Origin struct {
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
}

const (
	MaxIPAddressLength = 45
	MaxUserAgentLength = 512
)

// Registration log actions.
const (
	ActionCreated           = "REGISTRATION_CREATED"
	ActionSplitCreated      = "REGISTRATION_SPLIT_CREATED"
	ActionUpdated           = "REGISTRATION_UPDATED"
	ActionCancelled         = "REGISTRATION_CANCELLED"
	ActionApproved          = "REGISTRATION_APPROVED"
	ActionRejected          = "REGISTRATION_REJECTED"
	ActionDocumentApproved  = "DOCUMENT_APPROVED"
	ActionDocumentRejected  = "DOCUMENT_REJECTED"
	ActionTicketTypeUpdated = "TICKET_TYPE_UPDATED"
)

// ErrImmutable is returned by the gorm hooks guarding log rows.
var ErrImmutable = errors.New("registration logs are append-only")

// RegistrationLog represents the registration_logs table
type RegistrationLog struct {
	ID             uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	RegistrationID uint           `gorm:"not null;index" json:"registration_id"`
	Action         string         `gorm:"size:50;not null;index" json:"action"`
	ActorID        *uint          `gorm:"index" json:"actor_id"` // nullable (anonymous self-service)
	ActorKind      ActorKind      `gorm:"size:20;not null" json:"actor_kind"`
	OldValues      datatypes.JSON `gorm:"type:jsonb" json:"old_values"`
	NewValues      datatypes.JSON `gorm:"type:jsonb" json:"new_values"`
	Reason         *string        `gorm:"type:text" json:"reason,omitempty"`
	Comments       *string        `gorm:"type:text" json:"comments,omitempty"`
	IPAddress      string         `gorm:"size:45" json:"ip_address"`
	UserAgent      string         `gorm:"size:512" json:"user_agent"`
	CreatedAt      time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}

// TableName overrides table name for RegistrationLog
func (RegistrationLog) TableName() string {
	return "registration_logs"
}

func (l *RegistrationLog) BeforeUpdate(tx *gorm.DB) error { return ErrImmutable }

func (l *RegistrationLog) BeforeDelete(tx *gorm.DB) error { return ErrImmutable }

// Entry describes a log row before snapshots are taken.
type Entry struct {
	RegistrationID uint
	Action         string
	Actor          *Actor
	Origin         Origin
	Before         interface{}
	After          interface{}
	Reason         *string
	Comments       *string
}

// NewLog snapshots e.Before / e.After and truncates provenance fields.
func NewLog(e Entry) *RegistrationLog {
	log := &RegistrationLog{
		RegistrationID: e.RegistrationID,
		Action:         e.Action,
		ActorKind:      ActorSelfService,
		OldValues:      Snapshot(e.Before),
		NewValues:      Snapshot(e.After),
		Reason:         nonEmpty(e.Reason),
		Comments:       nonEmpty(e.Comments),
		IPAddress:      Truncate(e.Origin.IPAddress, MaxIPAddressLength),
		UserAgent:      Truncate(e.Origin.UserAgent, MaxUserAgentLength),
	}
	if e.Actor != nil {
		id := e.Actor.ID
		if id != 0 {
			log.ActorID = &id
		}
		if e.Actor.Kind != "" {
			log.ActorKind = e.Actor.Kind
		}
	}
	return log
}

// LogFilter narrows log listings.
type LogFilter struct {
	RegistrationID uint   `json:"registration_id"`
	Action         string `json:"action"`
	Page           int    `json:"page"`
	Limit          int    `json:"limit"`
}

// PaginatedLogs represents paginated registration log response
type PaginatedLogs struct {
	Data       []RegistrationLog `json:"data"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}
