package auditlog

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, log *RegistrationLog) error
	GetByFilter(ctx context.Context, filter LogFilter) ([]RegistrationLog, int64, error)
	GetByID(ctx context.Context, id uint) (*RegistrationLog, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository binds to db, which may be a transaction handle so that log
// rows commit or roll back with the mutation they describe.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts a new registration log entry
func (r *repository) Create(ctx context.Context, log *RegistrationLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// GetByFilter retrieves registration logs in the order they were written
func (r *repository) GetByFilter(ctx context.Context, filter LogFilter) ([]RegistrationLog, int64, error) {
	var logs []RegistrationLog
	var total int64

	query := r.db.WithContext(ctx).Model(&RegistrationLog{})
	if filter.RegistrationID != 0 {
		query = query.Where("registration_id = ?", filter.RegistrationID)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := query.Order("created_at ASC, id ASC").
		Limit(filter.Limit).
		Offset(offset).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

// GetByID retrieves a specific registration log by ID
func (r *repository) GetByID(ctx context.Context, id uint) (*RegistrationLog, error) {
	var log RegistrationLog
	if err := r.db.WithContext(ctx).First(&log, id).Error; err != nil {
		return nil, err
	}
	return &log, nil
}
