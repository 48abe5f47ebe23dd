package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/ytget/shockbase/internal/model"
)

// Dataset column headers
const (
	ColumnSeries    = "Series"
	ColumnSubseries = "Subseries"
	ColumnModel     = "Watch Model"
	ColumnYear      = "Year"
	ColumnImageURL  = "Image URL"
)

// Columns lists the dataset header in the order the crawler writes it
var Columns = []string{ColumnSeries, ColumnSubseries, ColumnModel, ColumnYear, ColumnImageURL}

var (
	// ErrMissingColumn is returned when the header lacks a required column
	ErrMissingColumn = errors.New("missing column")

	// ErrInvalidYear is returned when a Year cell is neither blank nor a whole number
	ErrInvalidYear = errors.New("invalid year")

	// ErrEmptyDataset is returned when the input has no header row
	ErrEmptyDataset = errors.New("empty dataset")

	// ErrMalformedRow is returned when a row's field count differs from the header
	ErrMalformedRow = errors.New("malformed row")
)

// MaxYear is the largest Year a dataset row may carry
const MaxYear = 9999

// LoadFile reads a dataset file. Any failure yields no index at all.
func LoadFile(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	idx, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", path, err)
	}
	return idx, nil
}

// Load parses CSV with the dataset header. Columns may appear in any order;
// extra columns are ignored. Every row must have as many fields as the header.
func Load(r io.Reader) (*Index, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyDataset
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	positions, err := columnPositions(header)
	if err != nil {
		return nil, err
	}

	var records []model.WatchRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, csv.ErrFieldCount) {
			return nil, fmt.Errorf("%w: %w", ErrMalformedRow, err)
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		line, _ := reader.FieldPos(0)
		cell := func(column string) string {
			return strings.TrimSpace(row[positions[column]])
		}

		year, err := ParseYear(cell(ColumnYear))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		records = append(records, model.WatchRecord{
			Series:    cell(ColumnSeries),
			Subseries: cell(ColumnSubseries),
			Model:     cell(ColumnModel),
			Year:      year,
			ImageURL:  cell(ColumnImageURL),
		})
	}

	return &Index{records: records}, nil
}

// ParseYear coerces a Year cell: blank is unknown (0), and float renderings
// such as "2012.0" are accepted as long as they are whole numbers in
// [0, MaxYear].
func ParseYear(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return model.UnknownYear, nil
	}

	if year, err := strconv.Atoi(value); err == nil {
		if year < 0 || year > MaxYear {
			return 0, fmt.Errorf("%w: %q out of range", ErrInvalidYear, value)
		}
		return year, nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidYear, value)
	}
	if f < 0 || f > MaxYear {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidYear, value)
	}
	return int(f), nil
}

func columnPositions(header []string) (map[string]int, error) {
	positions := make(map[string]int, len(Columns))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := positions[name]; !dup {
			positions[name] = i
		}
	}

	for _, column := range Columns {
		if _, ok := positions[column]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, column)
		}
	}
	return positions, nil
}
