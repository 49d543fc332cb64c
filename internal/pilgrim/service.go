package pilgrim

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vinaythakkar13/yatra-backend/internal/apperror"
)

type Service interface {
	GetPerson(ctx context.Context, id uint) (*PersonView, error)
	GetPersonByPNR(ctx context.Context, pnr string) (*PersonView, error)
	ListPersons(ctx context.Context, filter ListFilter) ([]Person, int64, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetPerson(ctx context.Context, id uint) (*PersonView, error) {
	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("pilgrim %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return s.withRooms(ctx, p)
}

func (s *service) GetPersonByPNR(ctx context.Context, pnr string) (*PersonView, error) {
	p, err := s.repo.GetByPNR(ctx, pnr)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("no pilgrim with PNR %s", pnr)
	}
	if err != nil {
		return nil, err
	}
	return s.withRooms(ctx, p)
}

func (s *service) ListPersons(ctx context.Context, filter ListFilter) ([]Person, int64, error) {
	switch filter.RoomAssignmentStatus {
	case "", AssignmentNone, AssignmentDraft, AssignmentConfirmed, AssignmentAlloted:
	default:
		return nil, 0, apperror.Validation("unknown room assignment status %q", filter.RoomAssignmentStatus)
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}

	people, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	if people == nil {
		people = []Person{}
	}
	return people, total, nil
}

func (s *service) withRooms(ctx context.Context, p *Person) (*PersonView, error) {
	rooms, err := s.repo.RoomsHeldBy(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return &PersonView{Person: *p, Rooms: rooms}, nil
}
