package reports

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vinaythakkar13/yatra-backend/internal/apperror"
)

type ReportService interface {
	RoomingList(ctx context.Context, hotelID uint) (*RoomingList, error)
	ExportRoomingList(ctx context.Context, hotelID uint, format string) (*ExportFile, error)
	Roster(ctx context.Context, yatraID uint, status string) (*Roster, error)
	ExportRoster(ctx context.Context, yatraID uint, status, format string) (*ExportFile, error)
}

type reportService struct {
	repo     ReportRepository
	exporter ReportExporter
}

func NewReportService(repo ReportRepository, exporter ReportExporter) ReportService {
	return &reportService{repo: repo, exporter: exporter}
}

func (s *reportService) RoomingList(ctx context.Context, hotelID uint) (*RoomingList, error) {
	list, err := s.repo.HotelSummary(ctx, hotelID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("hotel %d not found", hotelID)
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.RoomingRows(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []RoomingListRow{}
	}
	list.Rows = rows
	return list, nil
}

func (s *reportService) ExportRoomingList(ctx context.Context, hotelID uint, format string) (*ExportFile, error) {
	if err := checkFormat(format); err != nil {
		return nil, err
	}
	list, err := s.RoomingList(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	return s.exporter.Export(ReportTypeRoomingList, format, ReportData{RoomingList: list})
}

func (s *reportService) Roster(ctx context.Context, yatraID uint, status string) (*Roster, error) {
	name, err := s.repo.YatraName(ctx, yatraID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("yatra %d not found", yatraID)
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.RosterRows(ctx, yatraID, status)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []RosterRow{}
	}
	return &Roster{YatraID: yatraID, YatraName: name, Status: status, Rows: rows}, nil
}

func (s *reportService) ExportRoster(ctx context.Context, yatraID uint, status, format string) (*ExportFile, error) {
	if err := checkFormat(format); err != nil {
		return nil, err
	}
	roster, err := s.Roster(ctx, yatraID, status)
	if err != nil {
		return nil, err
	}
	return s.exporter.Export(ReportTypeRoster, format, ReportData{Roster: roster})
}

func checkFormat(format string) error {
	switch format {
	case FormatCSV, FormatExcel, FormatPDF:
		return nil
	}
	return apperror.Validation("unsupported format %q, use csv, excel or pdf", format)
}
