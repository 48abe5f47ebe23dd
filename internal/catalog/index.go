package catalog

import (
	"github.com/ytget/shockbase/internal/model"
)

// Resolution is the display metadata of a single model
type Resolution struct {
	ImageURL string
	Year     int
}

// Index is an immutable, ordered view over the catalog records
type Index struct {
	records []model.WatchRecord
}

// New creates an index over a copy of records
func New(records []model.WatchRecord) *Index {
	copied := make([]model.WatchRecord, len(records))
	copy(copied, records)
	return &Index{records: copied}
}

// Len returns the number of loaded records, duplicates included
func (idx *Index) Len() int {
	return len(idx.records)
}

// Records returns a copy of all records in load order
func (idx *Index) Records() []model.WatchRecord {
	out := make([]model.WatchRecord, len(idx.records))
	copy(out, idx.records)
	return out
}

// Series returns the distinct series in first-occurrence order
func (idx *Index) Series() []string {
	return idx.distinct(
		func(model.WatchRecord) bool { return true },
		func(r model.WatchRecord) string { return r.Series },
	)
}

// Subseries returns the distinct subseries of series in first-occurrence order
func (idx *Index) Subseries(series string) []string {
	return idx.distinct(
		func(r model.WatchRecord) bool { return r.Series == series },
		func(r model.WatchRecord) string { return r.Subseries },
	)
}

// Models returns the distinct model names matching both series and subseries
func (idx *Index) Models(series, subseries string) []string {
	return idx.distinct(
		func(r model.WatchRecord) bool { return r.Series == series && r.Subseries == subseries },
		func(r model.WatchRecord) string { return r.Model },
	)
}

// ResolveModel looks a model up by name alone. Model names are not unique
// across series, so the first record in load order wins.
func (idx *Index) ResolveModel(name string) (Resolution, bool) {
	for _, r := range idx.records {
		if r.Model == name {
			return resolutionOf(r), true
		}
	}
	return Resolution{}, false
}

// Resolve looks a model up by its full (series, subseries, model) triple
func (idx *Index) Resolve(series, subseries, name string) (Resolution, bool) {
	key := model.RecordKey{Series: series, Subseries: subseries, Model: name}
	for _, r := range idx.records {
		if r.Key() == key {
			return resolutionOf(r), true
		}
	}
	return Resolution{}, false
}

// distinct collects field values of matching records, keeping the first occurrence
func (idx *Index) distinct(match func(model.WatchRecord) bool, field func(model.WatchRecord) string) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, r := range idx.records {
		if !match(r) {
			continue
		}
		v := field(r)
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}

func resolutionOf(r model.WatchRecord) Resolution {
	return Resolution{ImageURL: r.ImageURL, Year: r.Year}
}
