package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

const (
	mimeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimeCSV   = "text/csv"
	mimePDF   = "application/pdf"
)

// ReportData carries whichever dataset the report type needs.
type ReportData struct {
	RoomingList *RoomingList
	Roster      *Roster
}

// ReportExporter renders report data to a downloadable file.
type ReportExporter interface {
	Export(reportType, format string, data ReportData) (*ExportFile, error)
}

type reportExporter struct {
	now func() time.Time
}

func NewReportExporter() ReportExporter {
	return &reportExporter{now: time.Now}
}

// table is the format-neutral shape every report is reduced to.
type table struct {
	title   string
	sheet   string
	base    string
	headers []string
	widths  []float64
	rows    [][]string
}

func (e *reportExporter) Export(reportType, format string, data ReportData) (*ExportFile, error) {
	var t table
	switch reportType {
	case ReportTypeRoomingList:
		if data.RoomingList == nil {
			return nil, fmt.Errorf("rooming list data missing")
		}
		t = roomingTable(data.RoomingList)
	case ReportTypeRoster:
		if data.Roster == nil {
			return nil, fmt.Errorf("roster data missing")
		}
		t = rosterTable(data.Roster)
	default:
		return nil, fmt.Errorf("unsupported report type: %s", reportType)
	}

	timestamp := e.now().Format("20060102_150405")
	switch format {
	case FormatExcel:
		b, err := t.excel()
		if err != nil {
			return nil, err
		}
		return &ExportFile{Data: b, Filename: fmt.Sprintf("%s_%s.xlsx", t.base, timestamp), MIME: mimeExcel}, nil
	case FormatCSV:
		b, err := t.csv()
		if err != nil {
			return nil, err
		}
		return &ExportFile{Data: b, Filename: fmt.Sprintf("%s_%s.csv", t.base, timestamp), MIME: mimeCSV}, nil
	case FormatPDF:
		b, err := t.pdf()
		if err != nil {
			return nil, err
		}
		return &ExportFile{Data: b, Filename: fmt.Sprintf("%s_%s.pdf", t.base, timestamp), MIME: mimePDF}, nil
	default:
		return nil, fmt.Errorf("unsupported format for %s: %s", reportType, format)
	}
}

//// ============================
/// ROOMING LIST
//// ============================

func roomingTable(list *RoomingList) table {
	t := table{
		title:   fmt.Sprintf("Rooming List - %s (%d/%d occupied)", list.HotelName, list.OccupiedRooms, list.TotalRooms),
		sheet:   "Rooming List",
		base:    fmt.Sprintf("rooming_list_hotel_%d", list.HotelID),
		headers: []string{"Floor", "Room", "Beds", "Toilet", "Daily Charge", "Occupied", "Occupant", "PNR", "Assignment"},
		widths:  []float64{18, 22, 14, 22, 28, 20, 70, 35, 30},
	}
	for _, r := range list.Rows {
		t.rows = append(t.rows, []string{
			r.Floor,
			r.RoomNumber,
			strconv.Itoa(r.BedCount),
			r.ToiletType,
			fmt.Sprintf("%.2f", r.DailyCharge),
			yesNo(r.IsOccupied),
			deref(r.OccupantName),
			deref(r.OccupantPNR),
			deref(r.AssignmentStatus),
		})
	}
	return t
}

//// ============================
/// REGISTRATION ROSTER
//// ============================

func rosterTable(r *Roster) table {
	title := "Registrations - " + r.YatraName
	if r.Status != "" {
		title += " (" + r.Status + ")"
	}
	t := table{
		title:   title,
		sheet:   "Registrations",
		base:    fmt.Sprintf("registrations_yatra_%d", r.YatraID),
		headers: []string{"ID", "PNR", "Original PNR", "Name", "WhatsApp", "Persons", "Boarding City", "Status", "Documents", "Registered At"},
		widths:  []float64{14, 28, 28, 55, 30, 18, 32, 24, 24, 30},
	}
	for _, row := range r.Rows {
		t.rows = append(t.rows, []string{
			strconv.FormatUint(uint64(row.ID), 10),
			row.PNR,
			deref(row.OriginalPNR),
			row.Name,
			row.WhatsappNumber,
			strconv.Itoa(row.NumberOfPersons),
			row.BoardingCity,
			row.Status,
			row.DocumentStatus,
			row.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	return t
}

//// ============================
/// RENDERERS
//// ============================

func (t table) excel() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", t.sheet); err != nil {
		return nil, err
	}

	for i, header := range t.headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(t.sheet, cell, header)
	}
	for r, row := range t.rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(t.sheet, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (t table) csv() ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(t.headers); err != nil {
		return nil, err
	}
	if err := writer.WriteAll(t.rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (t table) pdf() ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, t.title)
	pdf.Ln(14)

	pdf.SetFont("Arial", "B", 9)
	for i, header := range t.headers {
		pdf.CellFormat(t.widths[i], 7, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, row := range t.rows {
		for i, value := range row {
			pdf.CellFormat(t.widths[i], 6, value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
