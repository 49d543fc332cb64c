package yatra

import (
	"context"

	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// ===========================
// 🎯 Create Yatra
func (r *Repository) Create(ctx context.Context, y *Yatra) error {
	return r.DB.WithContext(ctx).Create(y).Error
}

// ===========================
// 🔍 Get Yatra By ID
func (r *Repository) GetByID(ctx context.Context, id uint) (*Yatra, error) {
	var y Yatra
	if err := r.DB.WithContext(ctx).First(&y, id).Error; err != nil {
		return nil, err
	}
	return &y, nil
}

// ===========================
// 📄 List Yatras, most recent first
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]Yatra, error) {
	var yatras []Yatra
	query := r.DB.WithContext(ctx).Order("start_date DESC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&yatras).Error; err != nil {
		return nil, err
	}
	return yatras, nil
}

// ===========================
// 🛠 Update Yatra
func (r *Repository) Update(ctx context.Context, y *Yatra) error {
	return r.DB.WithContext(ctx).Save(y).Error
}

// ===========================
// 📊 Active (non-cancelled) registrations per yatra
func (r *Repository) CountActiveRegistrations(ctx context.Context, ids []uint) (map[uint]int, error) {
	counts := make(map[uint]int, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	var rows []struct {
		YatraID uint
		Total   int
	}
	err := r.DB.WithContext(ctx).
		Table("registrations").
		Select("yatra_id, COUNT(*) AS total").
		Where("yatra_id IN ? AND status <> ?", ids, "cancelled").
		Group("yatra_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.YatraID] = row.Total
	}
	return counts, nil
}
