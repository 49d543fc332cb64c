package reports

import (
	"context"

	"gorm.io/gorm"
)

type ReportRepository interface {
	HotelSummary(ctx context.Context, hotelID uint) (*RoomingList, error)
	RoomingRows(ctx context.Context, hotelID uint) ([]RoomingListRow, error)
	YatraName(ctx context.Context, yatraID uint) (string, error)
	RosterRows(ctx context.Context, yatraID uint, status string) ([]RosterRow, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) HotelSummary(ctx context.Context, hotelID uint) (*RoomingList, error) {
	var list RoomingList
	err := r.db.WithContext(ctx).
		Table("hotels").
		Select("id AS hotel_id, name AS hotel_name, total_rooms, occupied_rooms, available_rooms").
		Where("id = ?", hotelID).
		Take(&list).Error
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *reportRepository) RoomingRows(ctx context.Context, hotelID uint) ([]RoomingListRow, error) {
	var rows []RoomingListRow
	err := r.db.WithContext(ctx).
		Table("rooms AS r").
		Select(`r.floor, r.room_number, r.bed_count, r.toilet_type, r.daily_charge, r.is_occupied,
			p.name AS occupant_name, p.pnr AS occupant_pnr, p.room_assignment_status AS assignment_status`).
		Joins("LEFT JOIN pilgrims p ON p.id = r.assigned_person_id").
		Where("r.hotel_id = ?", hotelID).
		Order("r.floor ASC, r.room_number ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) YatraName(ctx context.Context, yatraID uint) (string, error) {
	var name string
	res := r.db.WithContext(ctx).
		Table("yatras").
		Select("name").
		Where("id = ?", yatraID).
		Scan(&name)
	if res.Error != nil {
		return "", res.Error
	}
	if res.RowsAffected == 0 {
		return "", gorm.ErrRecordNotFound
	}
	return name, nil
}

func (r *reportRepository) RosterRows(ctx context.Context, yatraID uint, status string) ([]RosterRow, error) {
	query := r.db.WithContext(ctx).
		Table("registrations").
		Select("id, pnr, original_pnr, name, whatsapp_number, number_of_persons, boarding_city, status, document_status, created_at").
		Where("yatra_id = ?", yatraID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var rows []RosterRow
	err := query.Order("created_at ASC, id ASC").Scan(&rows).Error
	return rows, err
}
