package pilgrim

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gorm.io/gorm"

	"github.com/vinaythakkar13/yatra-backend/internal/apperror"
	"github.com/vinaythakkar13/yatra-backend/internal/hotel"
)

type fakeRepo struct {
	people []Person
	rooms  []hotel.Room
	last   ListFilter
}

func (f *fakeRepo) GetByID(_ context.Context, id uint) (*Person, error) {
	for _, p := range f.people {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetByPNR(_ context.Context, pnr string) (*Person, error) {
	for _, p := range f.people {
		if p.PNR == strings.ToUpper(strings.TrimSpace(pnr)) {
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) RoomsHeldBy(_ context.Context, personID uint) ([]hotel.Room, error) {
	var out []hotel.Room
	for _, r := range f.rooms {
		if r.AssignedPersonID != nil && *r.AssignedPersonID == personID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) List(_ context.Context, filter ListFilter) ([]Person, int64, error) {
	f.last = filter
	return nil, 0, nil
}

func TestGetPersonWithRooms(t *testing.T) {
	pid := uint(1)
	repo := &fakeRepo{
		people: []Person{{ID: 1, PNR: "ABCDE12345", Name: "Meera"}},
		rooms: []hotel.Room{
			{ID: 10, HotelID: 1, RoomNumber: "101", IsOccupied: true, AssignedPersonID: &pid},
			{ID: 11, HotelID: 1, RoomNumber: "102"},
		},
	}
	svc := NewService(repo)

	view, err := svc.GetPerson(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetPerson: %v", err)
	}
	if len(view.Rooms) != 1 || view.Rooms[0].ID != 10 {
		t.Fatalf("rooms = %+v", view.Rooms)
	}

	byPNR, err := svc.GetPersonByPNR(context.Background(), " abcde12345")
	if err != nil {
		t.Fatalf("GetPersonByPNR: %v", err)
	}
	if byPNR.ID != 1 {
		t.Errorf("resolved %d", byPNR.ID)
	}

	if _, err := svc.GetPerson(context.Background(), 2); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("got %v, want not found", err)
	}
}

func TestListPersonsDefaults(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	people, _, err := svc.ListPersons(context.Background(), ListFilter{Limit: 500})
	if err != nil {
		t.Fatalf("ListPersons: %v", err)
	}
	if people == nil || len(people) != 0 {
		t.Errorf("want empty non-nil slice, got %#v", people)
	}
	if repo.last.Page != 1 || repo.last.Limit != 20 {
		t.Errorf("paging = %d/%d", repo.last.Page, repo.last.Limit)
	}

	if _, _, err := svc.ListPersons(context.Background(), ListFilter{RoomAssignmentStatus: "maybe"}); !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("got %v, want validation", err)
	}
}
