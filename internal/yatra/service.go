package yatra

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/vinaythakkar13/yatra-backend/internal/apperror"
)

// Store is the persistence the service needs; *Repository implements it.
type Store interface {
	Create(ctx context.Context, y *Yatra) error
	GetByID(ctx context.Context, id uint) (*Yatra, error)
	List(ctx context.Context, activeOnly bool) ([]Yatra, error)
	Update(ctx context.Context, y *Yatra) error
	CountActiveRegistrations(ctx context.Context, ids []uint) (map[uint]int, error)
}

// Service wraps business logic for yatras
type Service struct {
	Repo Store
}

func NewService(r Store) *Service {
	return &Service{Repo: r}
}

// ===========================
// 🎯 Create Yatra
func (s *Service) CreateYatra(ctx context.Context, req *CreateYatraRequest) (*Yatra, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.Validation("yatra name is required")
	}

	y := &Yatra{
		Name:        name,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		y.IsActive = *req.IsActive
	}

	var err error
	if y.StartDate, err = parseDate("start_date", req.StartDate); err != nil {
		return nil, err
	}
	if y.EndDate, err = parseDate("end_date", req.EndDate); err != nil {
		return nil, err
	}
	if y.RegistrationStartDate, err = parseOptionalDate("registration_start_date", req.RegistrationStartDate); err != nil {
		return nil, err
	}
	if y.RegistrationEndDate, err = parseOptionalDate("registration_end_date", req.RegistrationEndDate); err != nil {
		return nil, err
	}
	if err := validateDates(y); err != nil {
		return nil, err
	}

	if err := s.Repo.Create(ctx, y); err != nil {
		if apperror.IsUniqueViolation(err) {
			return nil, apperror.Conflict("yatra %q already exists", name)
		}
		return nil, err
	}
	return y, nil
}

// ===========================
// 🔍 Get Yatra by ID
func (s *Service) GetYatra(ctx context.Context, id uint) (*Yatra, error) {
	y, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("yatra %d not found", id)
	}
	if err != nil {
		return nil, err
	}

	counts, err := s.Repo.CountActiveRegistrations(ctx, []uint{y.ID})
	if err != nil {
		return nil, err
	}
	y.ActiveRegistrations = counts[y.ID]
	return y, nil
}

// ===========================
// 📄 List Yatras
func (s *Service) ListYatras(ctx context.Context, activeOnly bool) ([]Yatra, error) {
	yatras, err := s.Repo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(yatras))
	for i := range yatras {
		ids[i] = yatras[i].ID
	}
	counts, err := s.Repo.CountActiveRegistrations(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range yatras {
		yatras[i].ActiveRegistrations = counts[yatras[i].ID]
	}
	return yatras, nil
}

// ===========================
// 🛠 Update Yatra
func (s *Service) UpdateYatra(ctx context.Context, id uint, req *UpdateYatraRequest) (*Yatra, error) {
	y, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("yatra %d not found", id)
	}
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperror.Validation("yatra name cannot be empty")
		}
		y.Name = name
	}
	if req.Description != nil {
		y.Description = *req.Description
	}
	if req.IsActive != nil {
		y.IsActive = *req.IsActive
	}
	if req.StartDate != nil {
		if y.StartDate, err = parseDate("start_date", *req.StartDate); err != nil {
			return nil, err
		}
	}
	if req.EndDate != nil {
		if y.EndDate, err = parseDate("end_date", *req.EndDate); err != nil {
			return nil, err
		}
	}
	if req.RegistrationStartDate != nil {
		if y.RegistrationStartDate, err = parseOptionalDate("registration_start_date", *req.RegistrationStartDate); err != nil {
			return nil, err
		}
	}
	if req.RegistrationEndDate != nil {
		if y.RegistrationEndDate, err = parseOptionalDate("registration_end_date", *req.RegistrationEndDate); err != nil {
			return nil, err
		}
	}
	if err := validateDates(y); err != nil {
		return nil, err
	}

	if err := s.Repo.Update(ctx, y); err != nil {
		if apperror.IsUniqueViolation(err) {
			return nil, apperror.Conflict("yatra %q already exists", y.Name)
		}
		return nil, err
	}
	return y, nil
}

func validateDates(y *Yatra) error {
	if y.EndDate.Before(y.StartDate) {
		return apperror.Validation("end_date must not be before start_date")
	}
	if y.RegistrationStartDate != nil && y.RegistrationEndDate != nil &&
		y.RegistrationEndDate.Before(*y.RegistrationStartDate) {
		return apperror.Validation("registration_end_date must not be before registration_start_date")
	}
	return nil
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperror.Validation("invalid %s format, use YYYY-MM-DD", field)
	}
	return t, nil
}

func parseOptionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseDate(field, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
