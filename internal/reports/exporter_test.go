package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/vinaythakkar13/yatra-backend/internal/apperror"
)

func sampleRoomingList() *RoomingList {
	name, pnr, status := "Meera Shah", "4829635210", "draft"
	return &RoomingList{
		HotelID:        3,
		HotelName:      "Shanti Niwas",
		TotalRooms:     2,
		OccupiedRooms:  1,
		AvailableRooms: 1,
		Rows: []RoomingListRow{
			{Floor: "1", RoomNumber: "101", BedCount: 3, ToiletType: "western", DailyCharge: 1200, IsOccupied: true,
				OccupantName: &name, OccupantPNR: &pnr, AssignmentStatus: &status},
			{Floor: "1", RoomNumber: "102", BedCount: 2, ToiletType: "indian"},
		},
	}
}

func fixedExporter() *reportExporter {
	return &reportExporter{now: func() time.Time { return time.Date(2026, 11, 1, 9, 30, 0, 0, time.UTC) }}
}

func TestExportRoomingListExcel(t *testing.T) {
	file, err := fixedExporter().Export(ReportTypeRoomingList, FormatExcel, ReportData{RoomingList: sampleRoomingList()})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if file.Filename != "rooming_list_hotel_3_20261101_093000.xlsx" || file.MIME != mimeExcel {
		t.Errorf("file = %s (%s)", file.Filename, file.MIME)
	}

	f, err := excelize.OpenReader(bytes.NewReader(file.Data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Rooming List")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}
	if rows[1][6] != "Meera Shah" || rows[1][5] != "Yes" {
		t.Errorf("occupied row = %v", rows[1])
	}
	if rows[2][5] != "No" {
		t.Errorf("vacant row = %v", rows[2])
	}
}

func TestExportRoomingListCSVAndPDF(t *testing.T) {
	e := fixedExporter()

	file, err := e.Export(ReportTypeRoomingList, FormatCSV, ReportData{RoomingList: sampleRoomingList()})
	if err != nil {
		t.Fatalf("csv: %v", err)
	}
	records, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 3 || records[1][7] != "4829635210" || records[1][4] != "1200.00" {
		t.Errorf("records = %v", records)
	}

	file, err = e.Export(ReportTypeRoomingList, FormatPDF, ReportData{RoomingList: sampleRoomingList()})
	if err != nil {
		t.Fatalf("pdf: %v", err)
	}
	if !bytes.HasPrefix(file.Data, []byte("%PDF")) || !strings.HasSuffix(file.Filename, ".pdf") {
		t.Errorf("not a pdf: %s", file.Filename)
	}
}

func TestExportRejectsUnknownInput(t *testing.T) {
	e := fixedExporter()
	if _, err := e.Export("donations", FormatCSV, ReportData{}); err == nil {
		t.Error("unknown report type accepted")
	}
	if _, err := e.Export(ReportTypeRoomingList, FormatCSV, ReportData{}); err == nil {
		t.Error("missing data accepted")
	}
}

type fakeReportRepo struct {
	hotels map[uint]*RoomingList
	rows   []RoomingListRow
}

func (f *fakeReportRepo) HotelSummary(_ context.Context, id uint) (*RoomingList, error) {
	h, ok := f.hotels[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	c := *h
	return &c, nil
}

func (f *fakeReportRepo) RoomingRows(context.Context, uint) ([]RoomingListRow, error) {
	return f.rows, nil
}

func (f *fakeReportRepo) YatraName(_ context.Context, id uint) (string, error) {
	if id != 1 {
		return "", gorm.ErrRecordNotFound
	}
	return "Kashi Yatra", nil
}

func (f *fakeReportRepo) RosterRows(context.Context, uint, string) ([]RosterRow, error) {
	return nil, nil
}

func TestReportServiceErrors(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{hotels: map[uint]*RoomingList{3: {HotelID: 3, HotelName: "Shanti Niwas"}}}, fixedExporter())
	ctx := context.Background()

	if _, err := svc.ExportRoomingList(ctx, 3, "docx"); !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("bad format: got %v", err)
	}
	if _, err := svc.RoomingList(ctx, 9); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("unknown hotel: got %v", err)
	}
	list, err := svc.RoomingList(ctx, 3)
	if err != nil {
		t.Fatalf("RoomingList: %v", err)
	}
	if list.Rows == nil {
		t.Error("rows should be an empty slice")
	}

	roster, err := svc.Roster(ctx, 1, "approved")
	if err != nil {
		t.Fatalf("Roster: %v", err)
	}
	if roster.YatraName != "Kashi Yatra" || roster.Rows == nil {
		t.Errorf("roster = %+v", roster)
	}
	if _, err := svc.ExportRoster(ctx, 2, "", FormatPDF); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("unknown yatra: got %v", err)
	}
}
