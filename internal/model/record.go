package model

import "strconv"

// UnknownYear marks a record whose year is blank in the dataset
const UnknownYear = 0

// WatchRecord is a single row of the catalog dataset
type WatchRecord struct {
	Series    string
	Subseries string
	Model     string
	Year      int    // 0 when unknown
	ImageURL  string // full-resolution image reference
}

// RecordKey identifies a record by its full position in the hierarchy
type RecordKey struct {
	Series    string
	Subseries string
	Model     string
}

// Key returns the (series, subseries, model) triple of the record
func (r WatchRecord) Key() RecordKey {
	return RecordKey{Series: r.Series, Subseries: r.Subseries, Model: r.Model}
}

// HasYear reports whether the year is known
func (r WatchRecord) HasYear() bool {
	return r.Year != UnknownYear
}

// FormatYear renders a catalog year, substituting unknown for UnknownYear
func FormatYear(year int, unknown string) string {
	if year == UnknownYear {
		return unknown
	}
	return strconv.Itoa(year)
}

// CSVYear renders the year the way the dataset stores it: blank when unknown
func (r WatchRecord) CSVYear() string {
	return FormatYear(r.Year, "")
}
