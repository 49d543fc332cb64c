package registration

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vinaythakkar13/yatra-backend/internal/auditlog"
	"github.com/vinaythakkar13/yatra-backend/internal/hotel"
	"github.com/vinaythakkar13/yatra-backend/internal/pilgrim"
)

// Unique indexes on registrations, created by database.Migrate.
const (
	indexActivePNR   = "idx_registrations_active_pnr"
	indexInternalPNR = "idx_registrations_internal_pnr"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(repo Repository) error) error

	YatraExists(ctx context.Context, yatraID uint) (bool, error)
	FindActiveByPNR(ctx context.Context, pnr string, yatraID uint) (*Registration, error)
	// PNRInUse probes every PNR namespace: registration PNRs, internal
	// PNRs and pilgrim accounts.
	PNRInUse(ctx context.Context, candidate string) (bool, error)

	Create(ctx context.Context, reg *Registration) error
	GetByID(ctx context.Context, id uint) (*Registration, error)
	LockByID(ctx context.Context, id uint) (*Registration, error)
	Save(ctx context.Context, reg *Registration) error
	ReplacePersons(ctx context.Context, registrationID uint, persons []PersonDetail) error
	LatestByPNR(ctx context.Context, pnr string) (*Registration, error)
	CountSplits(ctx context.Context, originalPNR string) (splits int64, persons int64, err error)
	List(ctx context.Context, filter ListFilter) ([]Registration, int64, error)

	GetPerson(ctx context.Context, id uint) (*pilgrim.Person, error)
	GetPersonByPNR(ctx context.Context, pnr string) (*pilgrim.Person, error)
	CreatePerson(ctx context.Context, p *pilgrim.Person) error
	UpdatePerson(ctx context.Context, personID uint, fields map[string]interface{}) error
	RoomsHeldBy(ctx context.Context, personID uint) ([]hotel.Room, error)
	HotelsByID(ctx context.Context, ids []uint) (map[uint]hotel.Hotel, error)

	CreateLog(ctx context.Context, log *auditlog.RegistrationLog) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Transaction(ctx context.Context, fn func(repo Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&repository{db: tx})
	})
}

func (r *repository) YatraExists(ctx context.Context, yatraID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("yatras").Where("id = ?", yatraID).Count(&count).Error
	return count > 0, err
}

func (r *repository) FindActiveByPNR(ctx context.Context, pnr string, yatraID uint) (*Registration, error) {
	var reg Registration
	err := r.db.WithContext(ctx).
		Where("pnr = ? AND yatra_id = ? AND status <> ?", pnr, yatraID, StatusCancelled).
		First(&reg).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *repository) PNRInUse(ctx context.Context, candidate string) (bool, error) {
	var inUse bool
	err := r.db.WithContext(ctx).Raw(`
		SELECT EXISTS (SELECT 1 FROM registrations WHERE pnr = ? OR internal_pnr = ?)
			OR EXISTS (SELECT 1 FROM pilgrims WHERE pnr = ?)
	`, candidate, candidate, candidate).Scan(&inUse).Error
	return inUse, err
}

func (r *repository) Create(ctx context.Context, reg *Registration) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Registration, error) {
	var reg Registration
	err := r.db.WithContext(ctx).
		Preload("Persons", orderByPosition).
		First(&reg, id).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// LockByID reads the registration row with SELECT ... FOR UPDATE.
func (r *repository) LockByID(ctx context.Context, id uint) (*Registration, error) {
	var reg Registration
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&reg, id).Error
	if err != nil {
		return nil, err
	}
	err = r.db.WithContext(ctx).
		Where("registration_id = ?", id).
		Order("position ASC").
		Find(&reg.Persons).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// Save writes every registration column; travellers go through ReplacePersons.
func (r *repository) Save(ctx context.Context, reg *Registration) error {
	return r.db.WithContext(ctx).
		Model(reg).
		Select("*").
		Omit("Persons", "CreatedAt").
		Updates(reg).Error
}

func (r *repository) ReplacePersons(ctx context.Context, registrationID uint, persons []PersonDetail) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("registration_id = ?", registrationID).Delete(&PersonDetail{}).Error; err != nil {
		return err
	}
	if len(persons) == 0 {
		return nil
	}
	return db.Create(&persons).Error
}

func (r *repository) LatestByPNR(ctx context.Context, pnr string) (*Registration, error) {
	var reg Registration
	err := r.db.WithContext(ctx).
		Preload("Persons", orderByPosition).
		Where("pnr = ?", pnr).
		Order("created_at DESC, id DESC").
		First(&reg).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *repository) CountSplits(ctx context.Context, originalPNR string) (int64, int64, error) {
	var row struct {
		Splits  int64
		Persons int64
	}
	err := r.db.WithContext(ctx).
		Model(&Registration{}).
		Select("COUNT(*) AS splits, COALESCE(SUM(number_of_persons), 0) AS persons").
		Where("original_pnr = ? AND status <> ?", originalPNR, StatusCancelled).
		Scan(&row).Error
	return row.Splits, row.Persons, err
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Registration, int64, error) {
	var regs []Registration
	var total int64

	query := r.db.WithContext(ctx).Model(&Registration{})
	if filter.YatraID != 0 {
		query = query.Where("yatra_id = ?", filter.YatraID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.DocumentStatus != "" {
		query = query.Where("document_status = ?", filter.DocumentStatus)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("pnr ILIKE ? OR original_pnr ILIKE ? OR name ILIKE ? OR whatsapp_number ILIKE ?", like, like, like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := query.
		Preload("Persons", orderByPosition).
		Order("created_at DESC, id DESC").
		Limit(filter.Limit).
		Offset(offset).
		Find(&regs).Error
	if err != nil {
		return nil, 0, err
	}
	return regs, total, nil
}

func (r *repository) GetPerson(ctx context.Context, id uint) (*pilgrim.Person, error) {
	var p pilgrim.Person
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetPersonByPNR(ctx context.Context, pnr string) (*pilgrim.Person, error) {
	var p pilgrim.Person
	if err := r.db.WithContext(ctx).Where("pnr = ?", pnr).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) CreatePerson(ctx context.Context, p *pilgrim.Person) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) UpdatePerson(ctx context.Context, personID uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&pilgrim.Person{}).
		Where("id = ?", personID).
		Updates(fields).Error
}

func (r *repository) RoomsHeldBy(ctx context.Context, personID uint) ([]hotel.Room, error) {
	var rooms []hotel.Room
	err := r.db.WithContext(ctx).
		Where("assigned_person_id = ?", personID).
		Order("id ASC").
		Find(&rooms).Error
	return rooms, err
}

func (r *repository) HotelsByID(ctx context.Context, ids []uint) (map[uint]hotel.Hotel, error) {
	out := make(map[uint]hotel.Hotel, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var hotels []hotel.Hotel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&hotels).Error; err != nil {
		return nil, err
	}
	for _, h := range hotels {
		out[h.ID] = h
	}
	return out, nil
}

// CreateLog writes through the audit repository on the same handle, so the
// entry commits or rolls back with the change it records.
func (r *repository) CreateLog(ctx context.Context, log *auditlog.RegistrationLog) error {
	return auditlog.NewRepository(r.db).Create(ctx, log)
}

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}
