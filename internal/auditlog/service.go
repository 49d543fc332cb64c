package auditlog

import (
	"context"
	"errors"
	"math"

	"gorm.io/gorm"

	"github.com/vinaythakkar13/yatra-backend/internal/apperror"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Service exposes the read side of the registration log. Writes happen
// inside registration transactions through Repository.Create.
type Service interface {
	GetLogs(ctx context.Context, filter LogFilter) (*PaginatedLogs, error)
	GetLogByID(ctx context.Context, id uint) (*RegistrationLog, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// GetLogs retrieves paginated registration logs
func (s *service) GetLogs(ctx context.Context, filter LogFilter) (*PaginatedLogs, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}

	logs, total, err := s.repo.GetByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []RegistrationLog{}
	}

	return &PaginatedLogs{
		Data:       logs,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	}, nil
}

// GetLogByID retrieves a specific registration log by ID
func (s *service) GetLogByID(ctx context.Context, id uint) (*RegistrationLog, error) {
	log, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("registration log %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return log, nil
}
