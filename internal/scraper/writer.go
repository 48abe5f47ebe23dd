package scraper

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ytget/shockbase/internal/catalog"
	"github.com/ytget/shockbase/internal/model"
	"github.com/ytget/shockbase/internal/platform"
)

// WriteCSV writes records with the dataset header. Unknown years are blank.
func WriteCSV(w io.Writer, records []model.WatchRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(catalog.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write([]string{r.Series, r.Subseries, r.Model, r.CSVYear(), r.ImageURL}); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes records to path, creating the parent directory
func WriteCSVFile(path string, records []model.WatchRecord) error {
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
