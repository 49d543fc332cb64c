package registration

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/vinaythakkar13/yatra-backend/internal/apperror"
	"github.com/vinaythakkar13/yatra-backend/internal/auditlog"
	"github.com/vinaythakkar13/yatra-backend/internal/pilgrim"
	"github.com/vinaythakkar13/yatra-backend/internal/pnr"
	"github.com/vinaythakkar13/yatra-backend/logger"
)

const dateLayout = "2006-01-02"

// Notifier receives lifecycle events after their transaction commits.
type Notifier interface {
	Publish(ctx context.Context, event Event) error
}

type Service interface {
	Create(ctx context.Context, req *CreateRegistrationRequest, actor *auditlog.Actor, origin auditlog.Origin) (*Registration, error)
	CreateSplit(ctx context.Context, req *CreateRegistrationRequest, actor *auditlog.Actor, origin auditlog.Origin) (*Registration, error)
	Update(ctx context.Context, id uint, req *UpdateRegistrationRequest, actor *auditlog.Actor, origin auditlog.Origin) (*Registration, error)
	Cancel(ctx context.Context, id uint, req *CancelRequest, actor *auditlog.Actor, origin auditlog.Origin) (*Registration, error)
	Approve(ctx context.Context, id uint, comments string, actor *auditlog.Actor, origin auditlog.Origin) (*Registration, error)
	Reject(ctx context.Context, id uint, reason, comments string, actor *auditlog.Actor, origin auditlog.Origin) (*Registration, error)
	ApproveDocument(ctx context.Context, id uint, comments string, actor *auditlog.Actor, origin auditlog.Origin) (*Registration, error)
	RejectDocument(ctx context.Context, id uint, reason, comments string, actor *auditlog.Actor, origin auditlog.Origin) (*Registration, error)
	UpdateTicketType(ctx context.Context, id uint, ticketType *string, actor *auditlog.Actor, origin auditlog.Origin) (*Registration, error)

	GetByID(ctx context.Context, id uint) (*Registration, error)
	List(ctx context.Context, filter ListFilter) (*PaginatedRegistrations, error)
	ResolveByPnr(ctx context.Context, pnr string) (*PnrResolution, error)
	CountSplitsByOriginalPnr(ctx context.Context, originalPNR string) (*SplitSummary, error)
}

type service struct {
	repo     Repository
	notifier Notifier
	validate *validator.Validate
	now      func() time.Time
}

func NewService(repo Repository) *service {
	return &service{repo: repo, validate: validator.New(), now: time.Now}
}

// SetNotifier enables event publishing; a nil notifier disables it.
func (s *service) SetNotifier(n Notifier) {
	s.notifier = n
}

// ===========================
// 🎯 Create

func (s *service) Create(ctx context.Context, req *CreateRegistrationRequest, actor *auditlog.Actor, origin auditlog.Origin) (*Registration, error) {
	reg, err := s.buildRegistration(req)
	if err != nil {
		return nil, err
	}

	err = s.repo.Transaction(ctx, func(repo Repository) error {
		return s.insert(ctx, repo, reg, req, auditlog.ActionCreated, actor, origin)
	})
	if err != nil {
		return nil, err
	}

	logger.Infof("Registration %d created for PNR %s", reg.ID, reg.PNR)
	s.publish(ctx, reg, auditlog.ActionCreated, actor)
	return reg, nil
}

// CreateSplit registers part of a booking under a generated internal PNR.
// The caller's PNR is kept as OriginalPNR.
func (s *service) CreateSplit(ctx context.Context, req *CreateRegistrationRequest, actor *auditlog.Actor, origin auditlog.Origin) (*Registration, error) {
	if actor == nil {
		return nil, apperror.Validation("split registrations require an acting operator")
	}
	reg, err := s.buildRegistration(req)
	if err != nil {
		return nil, err
	}
	original := reg.PNR

	err = s.repo.Transaction(ctx, func(repo Repository) error {
		internal, err := pnr.GenerateUnique(ctx, func(ctx context.Context, candidate string) (bool, error) {
			return repo.PNRInUse(ctx, candidate)
		}, pnr.MaxAttempts)
		if errors.Is(err, pnr.ErrExhausted) {
			return apperror.Conflict("could not allocate a unique internal PNR: %v", err)
		}
		if err != nil {
			return err
		}

		reg.PNR = internal
		reg.InternalPNR = &internal
		reg.OriginalPNR = &original
		return s.insert(ctx, repo, reg, req, auditlog.ActionSplitCreated, actor, origin)
	})
	if err != nil {
		return nil, err
	}

	logger.Infof("Split registration %d created: %s from %s", reg.ID, reg.PNR, original)
	s.publish(ctx, reg, auditlog.ActionSplitCreated, actor)
	return reg, nil
}

func (s *service) buildRegistration(req *CreateRegistrationRequest) (*Registration, error) {
	req.PNR = normalizePNR(req.PNR)
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validate.Struct(req); err != nil {
		return nil, apperror.Validation("invalid registration: %v", err)
	}
	if req.NumberOfPersons != 0 && req.NumberOfPersons != len(req.Persons) {
		return nil, apperror.Validation("number_of_persons is %d but %d travellers were listed", req.NumberOfPersons, len(req.Persons))
	}

	reg := &Registration{
		YatraID:         req.YatraID,
		PNR:             req.PNR,
		Name:            req.Name,
		WhatsappNumber:  strings.TrimSpace(req.WhatsappNumber),
		NumberOfPersons: len(req.Persons),
		BoardingCity:    req.BoardingCity,
		BoardingState:   req.BoardingState,
		TicketType:      nonEmpty(req.TicketType),
		Status:          StatusPending,
		DocumentStatus:  DocumentPending,
		Persons:         personDetails(0, req.Persons),
	}
	reg.setImages(req.TicketImages)

	var err error
	if reg.ArrivalDate, err = parseDate("arrival_date", req.ArrivalDate); err != nil {
		return nil, err
	}
	if reg.ReturnDate, err = parseDate("return_date", req.ReturnDate); err != nil {
		return nil, err
	}
	if err := checkTravelWindow(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// insert runs inside a transaction: duplicate check, person find-or-create,
// registration row and its log entry.
func (s *service) insert(ctx context.Context, repo Repository, reg *Registration, req *CreateRegistrationRequest, action string, actor *auditlog.Actor, origin auditlog.Origin) error {
	ok, err := repo.YatraExists(ctx, reg.YatraID)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NotFound("yatra %d not found", reg.YatraID)
	}

	if _, err := repo.FindActiveByPNR(ctx, reg.PNR, reg.YatraID); err == nil {
		return apperror.Conflict("PNR %s already has an active registration for this yatra", reg.PNR)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	person, err := s.findOrCreatePerson(ctx, repo, reg, req)
	if err != nil {
		return err
	}
	reg.PersonID = person.ID

	if err := repo.Create(ctx, reg); err != nil {
		switch {
		case apperror.IsUniqueViolationOn(err, indexInternalPNR):
			return apperror.Conflict("internal PNR %s was allocated by a concurrent split; retry the split", reg.PNR)
		case apperror.IsUniqueViolationOn(err, indexActivePNR):
			return apperror.Conflict("PNR %s already has an active registration for this yatra", reg.PNR)
		case apperror.IsUniqueViolation(err):
			return apperror.Conflict("registration for PNR %s conflicts with an existing row", reg.PNR)
		}
		return err
	}

	return repo.CreateLog(ctx, auditlog.NewLog(auditlog.Entry{
		RegistrationID: reg.ID,
		Action:         action,
		Actor:          actor,
		Origin:         origin,
		After:          reg,
	}))
}

func (s *service) findOrCreatePerson(ctx context.Context, repo Repository, reg *Registration, req *CreateRegistrationRequest) (*pilgrim.Person, error) {
	person, err := repo.GetPersonByPNR(ctx, reg.PNR)
	if err == nil {
		err = repo.UpdatePerson(ctx, person.ID, map[string]interface{}{
			"number_of_persons":   reg.NumberOfPersons,
			"registration_status": pilgrim.RegistrationPending,
		})
		return person, err
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	first := req.Persons[0]
	person = &pilgrim.Person{
		PNR:                  reg.PNR,
		Name:                 strings.TrimSpace(first.Name),
		WhatsappNumber:       reg.WhatsappNumber,
		Age:                  first.Age,
		Gender:               first.Gender,
		NumberOfPersons:      reg.NumberOfPersons,
		RegistrationStatus:   pilgrim.RegistrationPending,
		RoomAssignmentStatus: pilgrim.AssignmentNone,
	}
	if err := repo.CreatePerson(ctx, person); err != nil {
		if apperror.IsUniqueViolation(err) {
			return nil, apperror.Conflict("pilgrim account for PNR %s is being created concurrently", reg.PNR)
		}
		return nil, err
	}
	return person, nil
}

// ===========================
// 🛠 Update

func (s *service) Update(ctx context.Context, id uint, req *UpdateRegistrationRequest, actor *auditlog.Actor, origin auditlog.Origin) (*Registration, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperror.Validation("invalid registration update: %v", err)
	}
	if req.Persons != nil && len(*req.Persons) == 0 {
		return nil, apperror.Validation("persons cannot be empty")
	}

	if err := requireProof(actor, req.Owner); err != nil {
		return nil, err
	}

	return s.mutate(ctx, id, auditlog.ActionUpdated, actor, origin, nil, nil, func(repo Repository, reg *Registration, now time.Time) error {
		if err := checkOwner(reg, actor, req.Owner); err != nil {
			return err
		}
		if err := checkEditable(reg.Status); err != nil {
			return err
		}

		if req.Name != nil {
			reg.Name = strings.TrimSpace(*req.Name)
		}
		if req.WhatsappNumber != nil {
			reg.WhatsappNumber = strings.TrimSpace(*req.WhatsappNumber)
		}
		if req.BoardingCity != nil {
			reg.BoardingCity = *req.BoardingCity
		}
		if req.BoardingState != nil {
			reg.BoardingState = *req.BoardingState
		}
		var err error
		if req.ArrivalDate != nil {
			if reg.ArrivalDate, err = parseDate("arrival_date", *req.ArrivalDate); err != nil {
				return err
			}
		}
		if req.ReturnDate != nil {
			if reg.ReturnDate, err = parseDate("return_date", *req.ReturnDate); err != nil {
				return err
			}
		}
		if err := checkTravelWindow(reg); err != nil {
			return err
		}

		if req.TicketImages != nil {
			reg.setImages(*req.TicketImages)
			if reg.DocumentStatus == DocumentRejected {
				reg.DocumentStatus = DocumentPending
				reg.DocumentRejectionReason = nil
				reg.DocumentReviewedByID = nil
				reg.DocumentReviewedAt = nil
			}
		}

		personFields := map[string]interface{}{}
		if req.Persons != nil {
			reg.Persons = personDetails(reg.ID, *req.Persons)
			reg.NumberOfPersons = len(reg.Persons)
			if err := repo.ReplacePersons(ctx, reg.ID, reg.Persons); err != nil {
				return err
			}
			first := (*req.Persons)[0]
			personFields["name"] = strings.TrimSpace(first.Name)
			personFields["age"] = first.Age
			personFields["gender"] = first.Gender
			personFields["number_of_persons"] = reg.NumberOfPersons
		}
		if req.WhatsappNumber != nil {
			personFields["whatsapp_number"] = reg.WhatsappNumber
		}

		if reg.Status == StatusApproved {
			reg.Status = StatusPending
			reg.ApprovedByID = nil
			reg.ApprovedAt = nil
			personFields["registration_status"] = pilgrim.RegistrationPending
		}
		return repo.UpdatePerson(ctx, reg.PersonID, personFields)
	})
}

// ===========================
// 🔄 Status transitions

func (s *service) Cancel(ctx context.Context, id uint, req *CancelRequest, actor *auditlog.Actor, origin auditlog.Origin) (*Registration, error) {
	if req == nil {
		req = &CancelRequest{}
	}
	if err := requireProof(actor, req.Owner); err != nil {
		return nil, err
	}
	why := optional(req.Reason)
	return s.mutate(ctx, id, auditlog.ActionCancelled, actor, origin, why, nil, func(repo Repository, reg *Registration, now time.Time) error {
		if err := checkOwner(reg, actor, req.Owner); err != nil {
			return err
		}
		if err := checkTransition(reg.Status, StatusCancelled); err != nil {
			return err
		}
		markCancelled(reg, actor, now, why)
		return repo.UpdatePerson(ctx, reg.PersonID, map[string]interface{}{
			"registration_status": pilgrim.RegistrationCancelled,
		})
	})
}

func (s *service) Approve(ctx context.Context, id uint, comments string, actor *auditlog.Actor, origin auditlog.Origin) (*Registration, error) {
	if actor == nil {
		return nil, apperror.Validation("approval requires an acting operator")
	}
	note := optional(comments)
	return s.mutate(ctx, id, auditlog.ActionApproved, actor, origin, nil, note, func(repo Repository, reg *Registration, now time.Time) error {
		if err := checkTransition(reg.Status, StatusApproved); err != nil {
			return err
		}
		reg.Status = StatusApproved
		reg.ApprovedByID = actorID(actor)
		reg.ApprovedAt = &now
		if note != nil {
			reg.AdminComments = note
		}
		return repo.UpdatePerson(ctx, reg.PersonID, map[string]interface{}{
			"registration_status": pilgrim.RegistrationConfirmed,
		})
	})
}

// Reject leaves the pilgrim's room assignment untouched.
func (s *service) Reject(ctx context.Context, id uint, reason, comments string, actor *auditlog.Actor, origin auditlog.Origin) (*Registration, error) {
	if actor == nil {
		return nil, apperror.Validation("rejection requires an acting operator")
	}
	why := optional(reason)
	if why == nil {
		return nil, apperror.Validation("a rejection reason is required")
	}
	note := optional(comments)
	return s.mutate(ctx, id, auditlog.ActionRejected, actor, origin, why, note, func(repo Repository, reg *Registration, now time.Time) error {
		if err := checkTransition(reg.Status, StatusRejected); err != nil {
			return err
		}
		reg.Status = StatusRejected
		reg.RejectedByID = actorID(actor)
		reg.RejectedAt = &now
		reg.RejectionReason = why
		if note != nil {
			reg.AdminComments = note
		}
		return nil
	})
}

// ===========================
// 📄 Document review

func (s *service) ApproveDocument(ctx context.Context, id uint, comments string, actor *auditlog.Actor, origin auditlog.Origin) (*Registration, error) {
	if actor == nil {
		return nil, apperror.Validation("document review requires an acting operator")
	}
	note := optional(comments)
	return s.mutate(ctx, id, auditlog.ActionDocumentApproved, actor, origin, nil, note, func(repo Repository, reg *Registration, now time.Time) error {
		if err := checkDocumentReview(reg); err != nil {
			return err
		}
		reg.DocumentStatus = DocumentApproved
		reg.DocumentReviewedByID = actorID(actor)
		reg.DocumentReviewedAt = &now
		if note != nil {
			reg.AdminComments = note
		}
		return nil
	})
}

// RejectDocument forces the registration to cancelled whatever its status,
// unless it is cancelled already.
func (s *service) RejectDocument(ctx context.Context, id uint, reason, comments string, actor *auditlog.Actor, origin auditlog.Origin) (*Registration, error) {
	if actor == nil {
		return nil, apperror.Validation("document review requires an acting operator")
	}
	why := optional(reason)
	if why == nil {
		return nil, apperror.Validation("a document rejection reason is required")
	}
	note := optional(comments)
	return s.mutate(ctx, id, auditlog.ActionDocumentRejected, actor, origin, why, note, func(repo Repository, reg *Registration, now time.Time) error {
		if err := checkDocumentReview(reg); err != nil {
			return err
		}
		reg.DocumentStatus = DocumentRejected
		reg.DocumentRejectionReason = why
		reg.DocumentReviewedByID = actorID(actor)
		reg.DocumentReviewedAt = &now
		if note != nil {
			reg.AdminComments = note
		}

		cancelReason := "Documents rejected: " + *why
		markCancelled(reg, actor, now, &cancelReason)
		return repo.UpdatePerson(ctx, reg.PersonID, map[string]interface{}{
			"registration_status": pilgrim.RegistrationCancelled,
		})
	})
}

// ===========================
// 🎫 Ticket classification

func (s *service) UpdateTicketType(ctx context.Context, id uint, ticketType *string, actor *auditlog.Actor, origin auditlog.Origin) (*Registration, error) {
	if err := s.validate.Struct(&TicketTypeRequest{TicketType: ticketType}); err != nil {
		return nil, apperror.Validation("invalid ticket type: %v", err)
	}
	value := nonEmpty(ticketType)
	return s.mutate(ctx, id, auditlog.ActionTicketTypeUpdated, actor, origin, nil, nil, func(repo Repository, reg *Registration, now time.Time) error {
		reg.TicketType = value
		return nil
	})
}

// mutate locks the registration, applies change, saves it and writes one
// log entry, all in one transaction. The event is published after commit.
func (s *service) mutate(ctx context.Context, id uint, action string, actor *auditlog.Actor, origin auditlog.Origin, reason, comments *string, change func(repo Repository, reg *Registration, now time.Time) error) (*Registration, error) {
	var reg *Registration
	err := s.repo.Transaction(ctx, func(repo Repository) error {
		var err error
		reg, err = repo.LockByID(ctx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("registration %d not found", id)
		}
		if err != nil {
			return err
		}
		before := reg.clone()

		if err := change(repo, reg, s.now().UTC()); err != nil {
			return err
		}
		if err := repo.Save(ctx, reg); err != nil {
			return err
		}

		return repo.CreateLog(ctx, auditlog.NewLog(auditlog.Entry{
			RegistrationID: reg.ID,
			Action:         action,
			Actor:          actor,
			Origin:         origin,
			Before:         before,
			After:          reg,
			Reason:         reason,
			Comments:       comments,
		}))
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, reg, action, actor)
	return reg, nil
}

// ===========================
// 🔍 Reads

func (s *service) GetByID(ctx context.Context, id uint) (*Registration, error) {
	reg, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("registration %d not found", id)
	}
	return reg, err
}

func (s *service) List(ctx context.Context, filter ListFilter) (*PaginatedRegistrations, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	switch filter.Status {
	case "", StatusPending, StatusApproved, StatusRejected, StatusCancelled:
	default:
		return nil, apperror.Validation("unknown status %q", filter.Status)
	}
	switch filter.DocumentStatus {
	case "", DocumentPending, DocumentApproved, DocumentRejected:
	default:
		return nil, apperror.Validation("unknown document status %q", filter.DocumentStatus)
	}

	regs, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if regs == nil {
		regs = []Registration{}
	}
	return &PaginatedRegistrations{
		Data:       regs,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	}, nil
}

// ResolveByPnr returns the newest registration for pnr with the pilgrim's
// current rooms.
func (s *service) ResolveByPnr(ctx context.Context, value string) (*PnrResolution, error) {
	key := normalizePNR(value)
	if key == "" {
		return nil, apperror.Validation("pnr is required")
	}

	reg, err := s.repo.LatestByPNR(ctx, key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("no registration found for PNR %s", key)
	}
	if err != nil {
		return nil, err
	}

	res := &PnrResolution{Registration: reg, Rooms: []AssignedRoom{}}
	person, err := s.repo.GetPerson(ctx, reg.PersonID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return res, nil
	}
	if err != nil {
		return nil, err
	}
	res.Person = person

	rooms, err := s.repo.RoomsHeldBy(ctx, person.ID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(rooms))
	seen := map[uint]bool{}
	for _, r := range rooms {
		if !seen[r.HotelID] {
			seen[r.HotelID] = true
			ids = append(ids, r.HotelID)
		}
	}
	hotels, err := s.repo.HotelsByID(ctx, ids)
	if err != nil {
		return nil, err
	}
	res.Rooms = assignedRooms(rooms, hotels)
	return res, nil
}

func (s *service) CountSplitsByOriginalPnr(ctx context.Context, originalPNR string) (*SplitSummary, error) {
	key := normalizePNR(originalPNR)
	if key == "" {
		return nil, apperror.Validation("original pnr is required")
	}
	splits, persons, err := s.repo.CountSplits(ctx, key)
	if err != nil {
		return nil, err
	}
	return &SplitSummary{OriginalPNR: key, Splits: splits, TotalPersons: persons}, nil
}

// publish is best effort; the change is already committed.
func (s *service) publish(ctx context.Context, reg *Registration, action string, actor *auditlog.Actor) {
	if s.notifier == nil {
		return
	}
	ev := Event{
		RegistrationID: reg.ID,
		YatraID:        reg.YatraID,
		PNR:            reg.PNR,
		Action:         action,
		Status:         reg.Status,
		DocumentStatus: reg.DocumentStatus,
		ActorKind:      string(auditlog.ActorSelfService),
		OccurredAt:     s.now().UTC(),
	}
	if actor != nil {
		ev.ActorID = actorID(actor)
		ev.ActorKind = string(actor.Kind)
	}
	if err := s.notifier.Publish(ctx, ev); err != nil {
		logger.Error("Failed to publish registration event", err)
	}
}

// requireProof rejects non-operator changes that carry no ownership proof.
func requireProof(actor *auditlog.Actor, proof *OwnerProof) error {
	if actor.IsOperator() {
		return nil
	}
	if proof == nil || strings.TrimSpace(proof.PNR) == "" || strings.TrimSpace(proof.WhatsappNumber) == "" {
		return apperror.Validation("owner pnr and whatsapp_number are required to change a registration")
	}
	return nil
}

// checkOwner runs under the row lock. A mismatch reports the registration
// as missing so ids cannot be probed.
func checkOwner(reg *Registration, actor *auditlog.Actor, proof *OwnerProof) error {
	if actor.IsOperator() {
		return nil
	}
	key := normalizePNR(proof.PNR)
	pnrMatches := key == reg.PNR || (reg.OriginalPNR != nil && key == *reg.OriginalPNR)
	phone := strings.TrimSpace(proof.WhatsappNumber)
	if !pnrMatches || reg.WhatsappNumber == "" || phone != reg.WhatsappNumber {
		return apperror.NotFound("registration %d not found", reg.ID)
	}
	return nil
}

func markCancelled(reg *Registration, actor *auditlog.Actor, now time.Time, reason *string) {
	reg.Status = StatusCancelled
	reg.CancelledByID = actorID(actor)
	reg.CancelledAt = &now
	reg.CancellationReason = reason
}

func personDetails(registrationID uint, in []PersonDetailInput) []PersonDetail {
	out := make([]PersonDetail, len(in))
	for i, p := range in {
		out[i] = PersonDetail{
			RegistrationID: registrationID,
			Position:       i + 1,
			Name:           strings.TrimSpace(p.Name),
			Age:            p.Age,
			Gender:         p.Gender,
			IsHandicapped:  p.IsHandicapped,
		}
	}
	return out
}

func checkTravelWindow(reg *Registration) error {
	if reg.ArrivalDate != nil && reg.ReturnDate != nil && reg.ReturnDate.Before(*reg.ArrivalDate) {
		return apperror.Validation("return_date must not be before arrival_date")
	}
	return nil
}

func parseDate(field, value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return nil, apperror.Validation("invalid %s format, use YYYY-MM-DD", field)
	}
	return &t, nil
}

func normalizePNR(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func actorID(a *auditlog.Actor) *uint {
	if a == nil || a.ID == 0 {
		return nil
	}
	id := a.ID
	return &id
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func nonEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	return optional(*s)
}
