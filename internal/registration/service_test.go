package registration

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/vinaythakkar13/yatra-backend/internal/apperror"
	"github.com/vinaythakkar13/yatra-backend/internal/auditlog"
	"github.com/vinaythakkar13/yatra-backend/internal/hotel"
	"github.com/vinaythakkar13/yatra-backend/internal/pilgrim"
	"github.com/vinaythakkar13/yatra-backend/internal/pnr"
)

type fakeState struct {
	yatras  map[uint]bool
	regs    map[uint]*Registration
	persons map[uint]pilgrim.Person
	rooms   []hotel.Room
	hotels  map[uint]hotel.Hotel
	logs    []auditlog.RegistrationLog
	nextID  uint
}

func (s *fakeState) clone() *fakeState {
	c := &fakeState{
		yatras:  map[uint]bool{},
		regs:    map[uint]*Registration{},
		persons: map[uint]pilgrim.Person{},
		rooms:   append([]hotel.Room(nil), s.rooms...),
		hotels:  s.hotels,
		logs:    append([]auditlog.RegistrationLog(nil), s.logs...),
		nextID:  s.nextID,
	}
	for k, v := range s.yatras {
		c.yatras[k] = v
	}
	for k, v := range s.regs {
		c.regs[k] = v.clone()
	}
	for k, v := range s.persons {
		c.persons[k] = v
	}
	return c
}

func (s *fakeState) id() uint {
	s.nextID++
	return s.nextID
}

type fakeRepo struct {
	state *fakeState
	// inUse overrides the PNR probe when set.
	inUse func(candidate string) bool
	// createErr, when set, fails the registration insert.
	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{state: &fakeState{
		yatras:  map[uint]bool{1: true},
		regs:    map[uint]*Registration{},
		persons: map[uint]pilgrim.Person{},
		hotels:  map[uint]hotel.Hotel{},
	}}
}

func (f *fakeRepo) Transaction(ctx context.Context, fn func(repo Repository) error) error {
	tx := &fakeRepo{state: f.state.clone(), inUse: f.inUse, createErr: f.createErr}
	if err := fn(tx); err != nil {
		return err
	}
	f.state = tx.state
	return nil
}

func (f *fakeRepo) YatraExists(_ context.Context, id uint) (bool, error) {
	return f.state.yatras[id], nil
}

func (f *fakeRepo) FindActiveByPNR(_ context.Context, value string, yatraID uint) (*Registration, error) {
	for _, r := range f.state.regs {
		if r.PNR == value && r.YatraID == yatraID && r.Status != StatusCancelled {
			return r.clone(), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) PNRInUse(_ context.Context, candidate string) (bool, error) {
	if f.inUse != nil {
		return f.inUse(candidate), nil
	}
	for _, r := range f.state.regs {
		if r.PNR == candidate || (r.InternalPNR != nil && *r.InternalPNR == candidate) {
			return true, nil
		}
	}
	for _, p := range f.state.persons {
		if p.PNR == candidate {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) Create(_ context.Context, reg *Registration) error {
	if f.createErr != nil {
		return f.createErr
	}
	reg.ID = f.state.id()
	reg.CreatedAt = time.Now()
	for i := range reg.Persons {
		reg.Persons[i].ID = f.state.id()
		reg.Persons[i].RegistrationID = reg.ID
	}
	f.state.regs[reg.ID] = reg.clone()
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uint) (*Registration, error) {
	r, ok := f.state.regs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r.clone(), nil
}

func (f *fakeRepo) LockByID(ctx context.Context, id uint) (*Registration, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeRepo) Save(_ context.Context, reg *Registration) error {
	stored, ok := f.state.regs[reg.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c := reg.clone()
	c.Persons = stored.Persons
	f.state.regs[reg.ID] = c
	return nil
}

func (f *fakeRepo) ReplacePersons(_ context.Context, id uint, persons []PersonDetail) error {
	stored, ok := f.state.regs[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Persons = append([]PersonDetail(nil), persons...)
	return nil
}

func (f *fakeRepo) LatestByPNR(_ context.Context, value string) (*Registration, error) {
	var latest *Registration
	for _, r := range f.state.regs {
		if r.PNR != value {
			continue
		}
		if latest == nil || r.CreatedAt.After(latest.CreatedAt) || (r.CreatedAt.Equal(latest.CreatedAt) && r.ID > latest.ID) {
			latest = r
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return latest.clone(), nil
}

func (f *fakeRepo) CountSplits(_ context.Context, original string) (int64, int64, error) {
	var splits, persons int64
	for _, r := range f.state.regs {
		if r.OriginalPNR != nil && *r.OriginalPNR == original && r.Status != StatusCancelled {
			splits++
			persons += int64(r.NumberOfPersons)
		}
	}
	return splits, persons, nil
}

func (f *fakeRepo) List(_ context.Context, filter ListFilter) ([]Registration, int64, error) {
	var out []Registration
	for _, r := range f.state.regs {
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		out = append(out, *r.clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

func (f *fakeRepo) GetPerson(_ context.Context, id uint) (*pilgrim.Person, error) {
	p, ok := f.state.persons[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (f *fakeRepo) GetPersonByPNR(_ context.Context, value string) (*pilgrim.Person, error) {
	for _, p := range f.state.persons {
		if p.PNR == value {
			found := p
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) CreatePerson(_ context.Context, p *pilgrim.Person) error {
	p.ID = f.state.id()
	f.state.persons[p.ID] = *p
	return nil
}

func (f *fakeRepo) UpdatePerson(_ context.Context, id uint, fields map[string]interface{}) error {
	p, ok := f.state.persons[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["registration_status"].(string); ok {
		p.RegistrationStatus = v
	}
	if v, ok := fields["number_of_persons"].(int); ok {
		p.NumberOfPersons = v
	}
	if v, ok := fields["name"].(string); ok {
		p.Name = v
	}
	f.state.persons[id] = p
	return nil
}

func (f *fakeRepo) RoomsHeldBy(_ context.Context, personID uint) ([]hotel.Room, error) {
	var out []hotel.Room
	for _, r := range f.state.rooms {
		if r.AssignedPersonID != nil && *r.AssignedPersonID == personID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) HotelsByID(_ context.Context, ids []uint) (map[uint]hotel.Hotel, error) {
	out := map[uint]hotel.Hotel{}
	for _, id := range ids {
		if h, ok := f.state.hotels[id]; ok {
			out[id] = h
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateLog(_ context.Context, log *auditlog.RegistrationLog) error {
	log.ID = f.state.id()
	f.state.logs = append(f.state.logs, *log)
	return nil
}

type recordingNotifier struct {
	events []Event
	err    error
}

func (n *recordingNotifier) Publish(_ context.Context, ev Event) error {
	n.events = append(n.events, ev)
	return n.err
}

var operator = &auditlog.Actor{ID: 7, Kind: auditlog.ActorOperator}

func threePersonRequest(pnrValue string) *CreateRegistrationRequest {
	return &CreateRegistrationRequest{
		YatraID:        1,
		PNR:            pnrValue,
		Name:           "Ramesh Patel",
		WhatsappNumber: "9876543210",
		ArrivalDate:    "2026-11-02",
		ReturnDate:     "2026-11-09",
		TicketImages:   []string{"https://cdn.example.com/t1.jpg"},
		Persons: []PersonDetailInput{
			{Name: "Ramesh Patel", Age: 54, Gender: "male"},
			{Name: "Sita Patel", Age: 51, Gender: "female"},
			{Name: "Kiran Patel", Age: 22, Gender: "male", IsHandicapped: true},
		},
	}
}

// ownerOf is the proof a pilgrim would send for reg.
func ownerOf(reg *Registration) *OwnerProof {
	return &OwnerProof{PNR: reg.PNR, WhatsappNumber: reg.WhatsappNumber}
}

func cancelBy(reg *Registration, reason string) *CancelRequest {
	return &CancelRequest{Reason: reason, Owner: ownerOf(reg)}
}

func newTestService() (*service, *fakeRepo) {
	repo := newFakeRepo()
	return NewService(repo), repo
}

func actions(logs []auditlog.RegistrationLog) []string {
	out := make([]string, len(logs))
	for i, l := range logs {
		out[i] = l.Action
	}
	return out
}

func TestLifecycleWalkthrough(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	reg, err := svc.Create(ctx, threePersonRequest("4829635210"), nil, auditlog.Origin{IPAddress: "10.0.0.1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if reg.Status != StatusPending || reg.NumberOfPersons != 3 || len(reg.Persons) != 3 {
		t.Fatalf("unexpected registration after create: %+v", reg)
	}
	if reg.Persons[2].Position != 3 || !reg.Persons[2].IsHandicapped {
		t.Errorf("traveller order not preserved: %+v", reg.Persons)
	}
	person := repo.state.persons[reg.PersonID]
	if person.PNR != "4829635210" || person.Name != "Ramesh Patel" || person.RegistrationStatus != pilgrim.RegistrationPending {
		t.Fatalf("person not seeded from first traveller: %+v", person)
	}

	if reg, err = svc.Approve(ctx, reg.ID, "", operator, auditlog.Origin{}); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if reg.Status != StatusApproved || reg.ApprovedByID == nil || *reg.ApprovedByID != 7 || reg.ApprovedAt == nil {
		t.Fatalf("approval not stamped: %+v", reg)
	}
	if got := repo.state.persons[reg.PersonID].RegistrationStatus; got != pilgrim.RegistrationConfirmed {
		t.Fatalf("person mirror = %q, want confirmed", got)
	}

	persons := []PersonDetailInput{
		{Name: "Ramesh Patel", Age: 54, Gender: "male"},
		{Name: "Sita Patel", Age: 51, Gender: "female"},
	}
	if reg, err = svc.Update(ctx, reg.ID, &UpdateRegistrationRequest{Persons: &persons, Owner: ownerOf(reg)}, nil, auditlog.Origin{}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if reg.Status != StatusPending || reg.ApprovedByID != nil || reg.NumberOfPersons != 2 {
		t.Fatalf("edit of approved registration did not revert to pending: %+v", reg)
	}
	if got := len(repo.state.regs[reg.ID].Persons); got != 2 {
		t.Fatalf("stored travellers = %d, want 2", got)
	}

	if reg, err = svc.Cancel(ctx, reg.ID, cancelBy(reg, "change of plans"), nil, auditlog.Origin{}); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if reg.Status != StatusCancelled || reg.CancellationReason == nil || *reg.CancellationReason != "change of plans" {
		t.Fatalf("cancel not recorded: %+v", reg)
	}
	if got := repo.state.persons[reg.PersonID].RegistrationStatus; got != pilgrim.RegistrationCancelled {
		t.Fatalf("person mirror = %q, want cancelled", got)
	}

	if _, err := svc.Approve(ctx, reg.ID, "", operator, auditlog.Origin{}); !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("Approve after cancel: got %v, want conflict", err)
	}

	want := []string{auditlog.ActionCreated, auditlog.ActionApproved, auditlog.ActionUpdated, auditlog.ActionCancelled}
	got := actions(repo.state.logs)
	if len(got) != len(want) {
		t.Fatalf("log actions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("log actions = %v, want %v", got, want)
		}
	}

	created := repo.state.logs[0]
	if created.ActorKind != auditlog.ActorSelfService || created.ActorID != nil || created.IPAddress != "10.0.0.1" {
		t.Errorf("create log provenance: %+v", created)
	}
	if created.OldValues != nil || created.NewValues == nil {
		t.Errorf("create log should carry only an after snapshot")
	}
	approved := repo.state.logs[1]
	if approved.ActorKind != auditlog.ActorOperator || approved.ActorID == nil || *approved.ActorID != 7 {
		t.Errorf("approve log actor: %+v", approved)
	}
	if approved.OldValues == nil || approved.NewValues == nil {
		t.Errorf("transition logs need both snapshots")
	}
}

func TestCreateRejectsDuplicateActivePNR(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	first, err := svc.Create(ctx, threePersonRequest(" 4829635210 "), nil, auditlog.Origin{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.PNR != "4829635210" {
		t.Fatalf("pnr not normalized: %q", first.PNR)
	}

	_, err = svc.Create(ctx, threePersonRequest("4829635210"), nil, auditlog.Origin{})
	if !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("duplicate create: got %v, want conflict", err)
	}
	if len(repo.state.regs) != 1 || len(repo.state.logs) != 1 {
		t.Fatalf("failed create left writes behind: %d regs, %d logs", len(repo.state.regs), len(repo.state.logs))
	}

	if _, err := svc.Cancel(ctx, first.ID, cancelBy(first, ""), nil, auditlog.Origin{}); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	again, err := svc.Create(ctx, threePersonRequest("4829635210"), nil, auditlog.Origin{})
	if err != nil {
		t.Fatalf("re-register after cancel: %v", err)
	}
	if again.PersonID != first.PersonID {
		t.Errorf("second registration should reuse person %d, got %d", first.PersonID, again.PersonID)
	}
	if got := repo.state.persons[again.PersonID].RegistrationStatus; got != pilgrim.RegistrationPending {
		t.Errorf("person mirror = %q, want pending", got)
	}
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *CreateRegistrationRequest)
		kind   error
	}{
		{"no travellers", func(r *CreateRegistrationRequest) { r.Persons = nil }, apperror.ErrValidation},
		{"count mismatch", func(r *CreateRegistrationRequest) { r.NumberOfPersons = 4 }, apperror.ErrValidation},
		{"bad gender", func(r *CreateRegistrationRequest) { r.Persons[0].Gender = "x" }, apperror.ErrValidation},
		{"bad date", func(r *CreateRegistrationRequest) { r.ArrivalDate = "02/11/2026" }, apperror.ErrValidation},
		{"return before arrival", func(r *CreateRegistrationRequest) { r.ReturnDate = "2026-11-01" }, apperror.ErrValidation},
		{"unknown yatra", func(r *CreateRegistrationRequest) { r.YatraID = 99 }, apperror.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService()
			req := threePersonRequest("4829635210")
			tt.mutate(req)
			_, err := svc.Create(context.Background(), req, nil, auditlog.Origin{})
			if !errors.Is(err, tt.kind) {
				t.Fatalf("got %v, want %v", err, tt.kind)
			}
			if len(repo.state.regs) != 0 || len(repo.state.persons) != 0 {
				t.Fatalf("rejected create wrote rows")
			}
		})
	}
}

func TestTransitionConflicts(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	reg, err := svc.Create(ctx, threePersonRequest("4829635210"), nil, auditlog.Origin{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Approve(ctx, reg.ID, "", operator, auditlog.Origin{}); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if _, err := svc.Approve(ctx, reg.ID, "", operator, auditlog.Origin{}); !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("second approve: got %v, want conflict", err)
	}
	if _, err := svc.Reject(ctx, reg.ID, "late", "", operator, auditlog.Origin{}); !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("reject from approved: got %v, want conflict", err)
	}
	if _, err := svc.Cancel(ctx, reg.ID, cancelBy(reg, ""), nil, auditlog.Origin{}); err != nil {
		t.Fatalf("cancel from approved: %v", err)
	}
	if _, err := svc.Reject(ctx, reg.ID, "late", "", operator, auditlog.Origin{}); !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("reject after cancel: got %v, want conflict", err)
	}
	if _, err := svc.Update(ctx, reg.ID, &UpdateRegistrationRequest{Owner: ownerOf(reg)}, nil, auditlog.Origin{}); !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("update after cancel: got %v, want conflict", err)
	}

	// Only the three successful operations were logged.
	if got := len(repo.state.logs); got != 3 {
		t.Fatalf("logs = %d, want 3 (%v)", got, actions(repo.state.logs))
	}
}

func TestRejectFromPending(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	reg, _ := svc.Create(ctx, threePersonRequest("4829635210"), nil, auditlog.Origin{})

	if _, err := svc.Reject(ctx, reg.ID, " ", "", operator, auditlog.Origin{}); !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("reject without reason: got %v, want validation", err)
	}
	if _, err := svc.Reject(ctx, reg.ID, "ticket unreadable", "", nil, auditlog.Origin{}); !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("reject without actor: got %v, want validation", err)
	}

	got, err := svc.Reject(ctx, reg.ID, "ticket unreadable", "call back", operator, auditlog.Origin{})
	if err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if got.Status != StatusRejected || *got.RejectionReason != "ticket unreadable" || *got.AdminComments != "call back" {
		t.Fatalf("rejection not recorded: %+v", got)
	}
	if mirror := repo.state.persons[reg.PersonID].RegistrationStatus; mirror != pilgrim.RegistrationPending {
		t.Errorf("reject must not touch the person mirror, got %q", mirror)
	}
	if _, err := svc.Cancel(ctx, reg.ID, cancelBy(reg, ""), nil, auditlog.Origin{}); !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("cancel after reject: got %v, want conflict", err)
	}
	last := repo.state.logs[len(repo.state.logs)-1]
	if last.Reason == nil || *last.Reason != "ticket unreadable" {
		t.Errorf("reject log reason: %+v", last.Reason)
	}
}

func TestRejectDocumentForcesCancellation(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	reg, _ := svc.Create(ctx, threePersonRequest("4829635210"), nil, auditlog.Origin{})
	if _, err := svc.Approve(ctx, reg.ID, "", operator, auditlog.Origin{}); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	before := len(repo.state.logs)

	got, err := svc.RejectDocument(ctx, reg.ID, "ticket is for another date", "", operator, auditlog.Origin{})
	if err != nil {
		t.Fatalf("RejectDocument: %v", err)
	}
	if got.Status != StatusCancelled || got.DocumentStatus != DocumentRejected {
		t.Fatalf("status=%s document=%s, want cancelled/rejected", got.Status, got.DocumentStatus)
	}
	if got.CancellationReason == nil || *got.CancellationReason != "Documents rejected: ticket is for another date" {
		t.Errorf("cancellation reason = %v", got.CancellationReason)
	}
	if mirror := repo.state.persons[reg.PersonID].RegistrationStatus; mirror != pilgrim.RegistrationCancelled {
		t.Errorf("person mirror = %q, want cancelled", mirror)
	}
	if n := len(repo.state.logs) - before; n != 1 {
		t.Fatalf("document rejection wrote %d logs, want 1", n)
	}
	if a := repo.state.logs[len(repo.state.logs)-1].Action; a != auditlog.ActionDocumentRejected {
		t.Errorf("log action = %s", a)
	}

	if _, err := svc.RejectDocument(ctx, reg.ID, "again", "", operator, auditlog.Origin{}); !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("reject documents of cancelled registration: got %v, want conflict", err)
	}
}

func TestRejectDocumentCascadesFromEveryOpenStatus(t *testing.T) {
	tests := []struct {
		name  string
		setup func(svc *service, id uint) error
	}{
		{"pending", func(*service, uint) error { return nil }},
		{"approved", func(svc *service, id uint) error {
			_, err := svc.Approve(context.Background(), id, "", operator, auditlog.Origin{})
			return err
		}},
		{"rejected", func(svc *service, id uint) error {
			_, err := svc.Reject(context.Background(), id, "ticket unreadable", "", operator, auditlog.Origin{})
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc, repo := newTestService()
			reg, err := svc.Create(ctx, threePersonRequest("4829635210"), nil, auditlog.Origin{})
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			if err := tt.setup(svc, reg.ID); err != nil {
				t.Fatalf("setup: %v", err)
			}

			got, err := svc.RejectDocument(ctx, reg.ID, "wrong travel date", "", operator, auditlog.Origin{})
			if err != nil {
				t.Fatalf("RejectDocument from %s: %v", tt.name, err)
			}
			if got.Status != StatusCancelled || got.DocumentStatus != DocumentRejected {
				t.Fatalf("status=%s document=%s, want cancelled/rejected", got.Status, got.DocumentStatus)
			}
			if got.CancellationReason == nil || *got.CancellationReason != "Documents rejected: wrong travel date" {
				t.Errorf("cancellation reason = %v", got.CancellationReason)
			}
			if mirror := repo.state.persons[reg.PersonID].RegistrationStatus; mirror != pilgrim.RegistrationCancelled {
				t.Errorf("person mirror = %q, want cancelled", mirror)
			}
		})
	}
}

func TestSplitOwnerMayUseOriginalPNR(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	split, err := svc.CreateSplit(ctx, threePersonRequest("4829635210"), operator, auditlog.Origin{})
	if err != nil {
		t.Fatalf("CreateSplit: %v", err)
	}
	wrong := &CancelRequest{Owner: &OwnerProof{PNR: "4829635210", WhatsappNumber: "9999999999"}}
	if _, err := svc.Cancel(ctx, split.ID, wrong, nil, auditlog.Origin{}); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("wrong number: got %v, want not found", err)
	}
	right := &CancelRequest{Owner: &OwnerProof{PNR: "4829635210", WhatsappNumber: "9876543210"}}
	if _, err := svc.Cancel(ctx, split.ID, right, nil, auditlog.Origin{}); err != nil {
		t.Fatalf("Cancel with original pnr: %v", err)
	}
	if got := repo.state.regs[split.ID].Status; got != StatusCancelled {
		t.Fatalf("status = %s", got)
	}
}

func TestApproveDocumentLeavesStatus(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	reg, _ := svc.Create(ctx, threePersonRequest("4829635210"), nil, auditlog.Origin{})
	got, err := svc.ApproveDocument(ctx, reg.ID, "looks fine", operator, auditlog.Origin{})
	if err != nil {
		t.Fatalf("ApproveDocument: %v", err)
	}
	if got.Status != StatusPending || got.DocumentStatus != DocumentApproved || got.DocumentReviewedByID == nil {
		t.Fatalf("unexpected registration: %+v", got)
	}
	if _, err := svc.ApproveDocument(ctx, reg.ID, "", operator, auditlog.Origin{}); !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("second document approval: got %v, want conflict", err)
	}
}

func TestNewImagesResetRejectedDocuments(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	reg, _ := svc.Create(ctx, threePersonRequest("4829635210"), nil, auditlog.Origin{})
	reason := "blurry"
	stored := repo.state.regs[reg.ID]
	stored.DocumentStatus = DocumentRejected
	stored.DocumentRejectionReason = &reason

	images := []string{"https://cdn.example.com/t2.jpg"}
	got, err := svc.Update(ctx, reg.ID, &UpdateRegistrationRequest{TicketImages: &images, Owner: ownerOf(reg)}, nil, auditlog.Origin{})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.DocumentStatus != DocumentPending || got.DocumentRejectionReason != nil {
		t.Fatalf("document status not reset: %+v", got)
	}
	if imgs := got.Images(); len(imgs) != 1 || imgs[0] != images[0] {
		t.Errorf("images = %v", imgs)
	}
}

func TestUpdateRejectsEmptyPersons(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	reg, _ := svc.Create(ctx, threePersonRequest("4829635210"), nil, auditlog.Origin{})
	empty := []PersonDetailInput{}
	if _, err := svc.Update(ctx, reg.ID, &UpdateRegistrationRequest{Persons: &empty, Owner: ownerOf(reg)}, nil, auditlog.Origin{}); !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("got %v, want validation", err)
	}
	if got := len(repo.state.regs[reg.ID].Persons); got != 3 {
		t.Errorf("travellers = %d, want 3", got)
	}
}

func TestUnknownRegistration(t *testing.T) {
	svc, repo := newTestService()
	if _, err := svc.Cancel(context.Background(), 42, &CancelRequest{Owner: &OwnerProof{PNR: "4829635210", WhatsappNumber: "9876543210"}}, nil, auditlog.Origin{}); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("got %v, want not found", err)
	}
	if len(repo.state.logs) != 0 {
		t.Fatalf("failed operation was logged")
	}
}

func TestUpdateTicketType(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	reg, _ := svc.Create(ctx, threePersonRequest("4829635210"), nil, auditlog.Origin{})
	sleeper := "sleeper"
	got, err := svc.UpdateTicketType(ctx, reg.ID, &sleeper, operator, auditlog.Origin{})
	if err != nil {
		t.Fatalf("UpdateTicketType: %v", err)
	}
	if got.TicketType == nil || *got.TicketType != "sleeper" || got.Status != StatusPending {
		t.Fatalf("unexpected registration: %+v", got)
	}
	if a := repo.state.logs[len(repo.state.logs)-1].Action; a != auditlog.ActionTicketTypeUpdated {
		t.Errorf("log action = %s", a)
	}
}

func TestCreateSplit(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	if _, err := svc.CreateSplit(ctx, threePersonRequest("4829635210"), nil, auditlog.Origin{}); !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("split without actor: got %v, want validation", err)
	}

	first, err := svc.CreateSplit(ctx, threePersonRequest("4829635210"), operator, auditlog.Origin{})
	if err != nil {
		t.Fatalf("CreateSplit: %v", err)
	}
	if !pnr.Valid(first.PNR) {
		t.Fatalf("internal pnr %q has the wrong shape", first.PNR)
	}
	if first.InternalPNR == nil || *first.InternalPNR != first.PNR {
		t.Errorf("internal pnr not mirrored: %+v", first.InternalPNR)
	}
	if first.OriginalPNR == nil || *first.OriginalPNR != "4829635210" || !first.IsSplit() {
		t.Errorf("original pnr = %v", first.OriginalPNR)
	}
	if person := repo.state.persons[first.PersonID]; person.PNR != first.PNR {
		t.Errorf("split person keyed by %q, want %q", person.PNR, first.PNR)
	}

	second, err := svc.CreateSplit(ctx, threePersonRequest("4829635210"), operator, auditlog.Origin{})
	if err != nil {
		t.Fatalf("second CreateSplit: %v", err)
	}
	if second.PNR == first.PNR {
		t.Fatalf("split pnrs collide: %s", first.PNR)
	}

	summary, err := svc.CountSplitsByOriginalPnr(ctx, "4829635210")
	if err != nil {
		t.Fatalf("CountSplitsByOriginalPnr: %v", err)
	}
	if summary.Splits != 2 || summary.TotalPersons != 6 {
		t.Fatalf("summary = %+v, want 2 splits / 6 persons", summary)
	}

	if _, err := svc.Cancel(ctx, second.ID, cancelBy(second, ""), nil, auditlog.Origin{}); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	summary, _ = svc.CountSplitsByOriginalPnr(ctx, "4829635210")
	if summary.Splits != 1 {
		t.Fatalf("cancelled split still counted: %+v", summary)
	}
	if a := repo.state.logs[1].Action; a != auditlog.ActionSplitCreated {
		t.Errorf("log action = %s", a)
	}
}

func TestCreateSplitExhaustion(t *testing.T) {
	svc, repo := newTestService()
	probes := 0
	repo.inUse = func(string) bool {
		probes++
		return true
	}

	_, err := svc.CreateSplit(context.Background(), threePersonRequest("4829635210"), operator, auditlog.Origin{})
	if !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("got %v, want conflict", err)
	}
	if probes != pnr.MaxAttempts {
		t.Errorf("probes = %d, want %d", probes, pnr.MaxAttempts)
	}
	if len(repo.state.regs) != 0 || len(repo.state.logs) != 0 {
		t.Fatalf("exhausted split wrote rows")
	}
}

func TestInsertReportsWhichIndexCollided(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		split      bool
		want       string
	}{
		{"internal pnr taken by a concurrent split", indexInternalPNR, true, "concurrent split"},
		{"active pnr registered concurrently", indexActivePNR, false, "already has an active registration"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService()
			repo.createErr = &pgconn.PgError{Code: "23505", ConstraintName: tt.constraint}

			var err error
			if tt.split {
				_, err = svc.CreateSplit(context.Background(), threePersonRequest("4829635210"), operator, auditlog.Origin{})
			} else {
				_, err = svc.Create(context.Background(), threePersonRequest("4829635210"), nil, auditlog.Origin{})
			}
			if !errors.Is(err, apperror.ErrConflict) {
				t.Fatalf("got %v, want conflict", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("message %q does not mention %q", err.Error(), tt.want)
			}
			if len(repo.state.regs) != 0 || len(repo.state.persons) != 0 {
				t.Fatalf("failed insert left rows behind")
			}
		})
	}
}

func TestResolveByPnr(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	if _, err := svc.ResolveByPnr(ctx, "4829635210"); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("got %v, want not found", err)
	}

	old, _ := svc.Create(ctx, threePersonRequest("4829635210"), nil, auditlog.Origin{})
	if _, err := svc.Cancel(ctx, old.ID, cancelBy(old, ""), nil, auditlog.Origin{}); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	current, _ := svc.Create(ctx, threePersonRequest("4829635210"), nil, auditlog.Origin{})
	repo.state.regs[current.ID].CreatedAt = repo.state.regs[old.ID].CreatedAt

	pid := current.PersonID
	repo.state.hotels[5] = hotel.Hotel{ID: 5, Name: "Shanti Niwas"}
	repo.state.rooms = []hotel.Room{
		{ID: 11, HotelID: 5, Floor: "1", RoomNumber: "101", BedCount: 3, IsOccupied: true, AssignedPersonID: &pid},
	}

	res, err := svc.ResolveByPnr(ctx, "4829635210")
	if err != nil {
		t.Fatalf("ResolveByPnr: %v", err)
	}
	if res.Registration.ID != current.ID {
		t.Fatalf("resolved registration %d, want newest %d", res.Registration.ID, current.ID)
	}
	if res.Person == nil || res.Person.ID != pid {
		t.Fatalf("person = %+v", res.Person)
	}
	if len(res.Rooms) != 1 || res.Rooms[0].HotelName != "Shanti Niwas" || res.Rooms[0].RoomNumber != "101" {
		t.Fatalf("rooms = %+v", res.Rooms)
	}
}

func TestPublishesAfterCommit(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()
	n := &recordingNotifier{err: errors.New("broker down")}
	svc.SetNotifier(n)

	reg, err := svc.Create(ctx, threePersonRequest("4829635210"), nil, auditlog.Origin{})
	if err != nil {
		t.Fatalf("publish failure must not fail the operation: %v", err)
	}
	if _, err := svc.Approve(ctx, reg.ID, "", operator, auditlog.Origin{}); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if _, err := svc.Approve(ctx, reg.ID, "", operator, auditlog.Origin{}); err == nil {
		t.Fatalf("expected conflict")
	}

	if len(n.events) != 2 {
		t.Fatalf("events = %d, want 2", len(n.events))
	}
	ev := n.events[1]
	if ev.Action != auditlog.ActionApproved || ev.Status != StatusApproved || ev.ActorKind != string(auditlog.ActorOperator) || ev.YatraID != 1 {
		t.Errorf("event = %+v", ev)
	}
	if n.events[0].ActorKind != string(auditlog.ActorSelfService) || n.events[0].ActorID != nil {
		t.Errorf("anonymous create event = %+v", n.events[0])
	}
}
