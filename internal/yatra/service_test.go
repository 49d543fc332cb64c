package yatra

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/vinaythakkar13/yatra-backend/internal/apperror"
)

type fakeStore struct {
	yatras map[uint]*Yatra
	counts map[uint]int
	nextID uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{yatras: map[uint]*Yatra{}, counts: map[uint]int{}}
}

func (f *fakeStore) Create(_ context.Context, y *Yatra) error {
	for _, existing := range f.yatras {
		if existing.Name == y.Name {
			return &pgconn.PgError{Code: "23505", ConstraintName: "idx_yatras_name"}
		}
	}
	f.nextID++
	y.ID = f.nextID
	cp := *y
	f.yatras[y.ID] = &cp
	return nil
}

func (f *fakeStore) GetByID(_ context.Context, id uint) (*Yatra, error) {
	y, ok := f.yatras[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *y
	return &cp, nil
}

func (f *fakeStore) List(_ context.Context, activeOnly bool) ([]Yatra, error) {
	var out []Yatra
	for id := uint(1); id <= f.nextID; id++ {
		y, ok := f.yatras[id]
		if !ok || (activeOnly && !y.IsActive) {
			continue
		}
		out = append(out, *y)
	}
	return out, nil
}

func (f *fakeStore) Update(_ context.Context, y *Yatra) error {
	cp := *y
	f.yatras[y.ID] = &cp
	return nil
}

func (f *fakeStore) CountActiveRegistrations(_ context.Context, ids []uint) (map[uint]int, error) {
	out := map[uint]int{}
	for _, id := range ids {
		out[id] = f.counts[id]
	}
	return out, nil
}

func TestCreateYatra(t *testing.T) {
	svc := NewService(newFakeStore())
	ctx := context.Background()

	y, err := svc.CreateYatra(ctx, &CreateYatraRequest{
		Name:      "Kashi 2026",
		StartDate: "2026-11-01",
		EndDate:   "2026-11-10",
	})
	if err != nil {
		t.Fatalf("CreateYatra: %v", err)
	}
	if y.ID == 0 || !y.IsActive {
		t.Fatalf("unexpected yatra %+v", y)
	}

	_, err = svc.CreateYatra(ctx, &CreateYatraRequest{Name: "Kashi 2026", StartDate: "2026-12-01", EndDate: "2026-12-02"})
	if !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("duplicate name: got %v, want conflict", err)
	}
}

func TestCreateYatraValidation(t *testing.T) {
	svc := NewService(newFakeStore())
	cases := map[string]CreateYatraRequest{
		"blank name":       {Name: "  ", StartDate: "2026-11-01", EndDate: "2026-11-02"},
		"bad start":        {Name: "a", StartDate: "01-11-2026", EndDate: "2026-11-02"},
		"end before start": {Name: "a", StartDate: "2026-11-05", EndDate: "2026-11-02"},
		"window reversed":  {Name: "a", StartDate: "2026-11-01", EndDate: "2026-11-02", RegistrationStartDate: "2026-10-10", RegistrationEndDate: "2026-10-01"},
	}
	for name, req := range cases {
		req := req
		t.Run(name, func(t *testing.T) {
			if _, err := svc.CreateYatra(context.Background(), &req); !errors.Is(err, apperror.ErrValidation) {
				t.Fatalf("got %v, want validation error", err)
			}
		})
	}
}

func TestGetYatraIncludesActiveRegistrations(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	y, _ := svc.CreateYatra(context.Background(), &CreateYatraRequest{Name: "Dwarka", StartDate: "2026-11-01", EndDate: "2026-11-03"})
	store.counts[y.ID] = 4

	got, err := svc.GetYatra(context.Background(), y.ID)
	if err != nil {
		t.Fatalf("GetYatra: %v", err)
	}
	if got.ActiveRegistrations != 4 {
		t.Fatalf("active registrations = %d", got.ActiveRegistrations)
	}

	if _, err := svc.GetYatra(context.Background(), 99); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("got %v, want not found", err)
	}
}

func TestUpdateYatra(t *testing.T) {
	svc := NewService(newFakeStore())
	y, _ := svc.CreateYatra(context.Background(), &CreateYatraRequest{Name: "Puri", StartDate: "2026-11-01", EndDate: "2026-11-03"})

	inactive := false
	end := "2026-11-05"
	got, err := svc.UpdateYatra(context.Background(), y.ID, &UpdateYatraRequest{IsActive: &inactive, EndDate: &end})
	if err != nil {
		t.Fatalf("UpdateYatra: %v", err)
	}
	if got.IsActive || got.EndDate.Format(dateLayout) != end {
		t.Fatalf("update not applied: %+v", got)
	}

	active, _ := svc.ListYatras(context.Background(), true)
	if len(active) != 0 {
		t.Fatalf("inactive yatra listed as active: %+v", active)
	}
}

func TestCreateYatraHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(NewService(newFakeStore()))
	r := gin.New()
	r.POST("/yatras", h.CreateYatra)

	body := `{"name":"Kedarnath","start_date":"2026-05-01","end_date":"2026-05-12"}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/yatras", strings.NewReader(body)))
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/yatras", strings.NewReader(body)))
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate status = %d", w.Code)
	}
}
