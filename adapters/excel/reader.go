package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"fourcast/domain/draw"
	"fourcast/internal/errors"
)

// Expected columns, by header name: Date, Prize Type, Prize Number.
// One row per winning number; rows sharing a date belong to one draw.

var dateLayouts = []string{"2006-01-02", "02 Jan 2006", "2/1/2006", "01/02/2006"}

// DrawReader reads draw history from Excel or CSV files.
type DrawReader struct {
	filePath string
	fileType string // "xlsx" or "csv"

	history *draw.History
	numbers []draw.WinningNumber
	loaded  bool
}

// NewDrawReader creates a reader that handles both Excel and CSV files.
func NewDrawReader(filePath string) *DrawReader {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(filePath)) == ".csv" {
		fileType = "csv"
	}
	return &DrawReader{filePath: filePath, fileType: fileType}
}

// History implements ports.HistoryProvider.
func (r *DrawReader) History(ctx context.Context) (*draw.History, error) {
	if err := r.load(); err != nil {
		return nil, err
	}
	return r.history, nil
}

// WinningNumbers implements ports.NumberProvider.
func (r *DrawReader) WinningNumbers(ctx context.Context) ([]draw.WinningNumber, error) {
	if err := r.load(); err != nil {
		return nil, err
	}
	return r.numbers, nil
}

func (r *DrawReader) load() error {
	if r.loaded {
		return nil
	}
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return errors.NotFound(fmt.Sprintf("draw file %s", r.filePath))
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	default:
		rows, err = r.readExcelRows()
	}
	if err != nil {
		return err
	}
	if len(rows) < 2 {
		return errors.DataFormat("draw file must have a header row and at least one data row")
	}

	history, numbers, err := buildHistory(rows)
	if err != nil {
		return err
	}
	r.history = history
	r.numbers = numbers
	r.loaded = true
	return nil
}

func (r *DrawReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open Excel file")
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, errors.Wrap(err, "failed to read Sheet1")
	}
	return rows, nil
}

func (r *DrawReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open CSV file")
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV file")
	}
	return rows, nil
}

// buildHistory converts raw rows into an ordered draw history plus the full
// winning number list. Sequence indices are assigned by ascending draw date;
// everything downstream orders by sequence, never by the date string.
func buildHistory(rows [][]string) (*draw.History, []draw.WinningNumber, error) {
	dateCol, tierCol, numberCol, err := resolveColumns(rows[0])
	if err != nil {
		return nil, nil, err
	}

	type rawDraw struct {
		date   time.Time
		digits map[draw.PrizeTier]draw.Digit
	}
	byDate := make(map[string]*rawDraw)
	var numbers []draw.WinningNumber

	for i, row := range rows[1:] {
		if len(row) <= dateCol || len(row) <= tierCol || len(row) <= numberCol {
			continue // short row, likely trailing blanks
		}
		date, err := parseDate(strings.TrimSpace(row[dateCol]))
		if err != nil {
			return nil, nil, errors.DataFormat(fmt.Sprintf("row %d: %v", i+2, err))
		}
		tier, err := draw.ParsePrizeTier(strings.ToLower(strings.TrimSpace(row[tierCol])))
		if err != nil {
			return nil, nil, errors.DataFormat(fmt.Sprintf("row %d: %v", i+2, err))
		}
		number := strings.TrimSpace(row[numberCol])
		digit, ok := firstDigit(number)
		if !ok {
			return nil, nil, errors.DataFormat(fmt.Sprintf("row %d: prize number %q has no leading digit", i+2, number))
		}

		numbers = append(numbers, draw.WinningNumber{Number: number, Tier: tier, Date: date})

		key := date.Format("2006-01-02")
		rd, exists := byDate[key]
		if !exists {
			rd = &rawDraw{date: date, digits: make(map[draw.PrizeTier]draw.Digit)}
			byDate[key] = rd
		}
		// One digit per tier per draw: the first starter/consolation row wins.
		if _, taken := rd.digits[tier]; !taken {
			rd.digits[tier] = digit
		}
	}

	draws := make([]*rawDraw, 0, len(byDate))
	for _, rd := range byDate {
		draws = append(draws, rd)
	}
	sort.Slice(draws, func(i, j int) bool { return draws[i].date.Before(draws[j].date) })

	records := make([]draw.DrawRecord, len(draws))
	for i, rd := range draws {
		records[i] = draw.DrawRecord{Seq: i, Date: rd.date, Digits: rd.digits}
	}
	history, err := draw.NewHistory(records)
	if err != nil {
		return nil, nil, errors.Wrap(err, "invalid draw history")
	}
	return history, numbers, nil
}

func resolveColumns(header []string) (dateCol, tierCol, numberCol int, err error) {
	dateCol, tierCol, numberCol = -1, -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "date", "draw date":
			dateCol = i
		case "prize type", "tier":
			tierCol = i
		case "prize number", "number":
			numberCol = i
		}
	}
	if dateCol < 0 || tierCol < 0 || numberCol < 0 {
		return 0, 0, 0, errors.DataFormat("header must contain Date, Prize Type and Prize Number columns")
	}
	return dateCol, tierCol, numberCol, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}

func firstDigit(number string) (draw.Digit, bool) {
	if number == "" {
		return 0, false
	}
	c := number[0]
	if c < '0' || c > '9' {
		return 0, false
	}
	return draw.Digit(c - '0'), true
}
