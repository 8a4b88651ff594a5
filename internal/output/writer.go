package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"ZoonScraper/internal/models"
	"ZoonScraper/pkg/config"
)

// utf8BOM makes spreadsheet tools pick UTF-8 for the Cyrillic headers.
const utf8BOM = "\xef\xbb\xbf"

var csvHeader = []string{"Название", "Рейтинг", "Направления"}

// Saver writes full snapshots of the accumulated records and log history.
// Every save rewrites the target files completely; the per-page partial
// files double as recovery points if the run stops early.
type Saver struct {
	conf config.OutputConfig
}

// NewSaver prepares the output directory.
func NewSaver(conf config.OutputConfig) (*Saver, error) {
	if err := os.MkdirAll(conf.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %q: %w", conf.Dir, err)
	}
	return &Saver{conf: conf}, nil
}

// PartialCSVPath is the snapshot CSV written after page n.
func (s *Saver) PartialCSVPath(page int) string {
	base := strings.TrimSuffix(s.conf.CSVFilename, filepath.Ext(s.conf.CSVFilename))
	return filepath.Join(s.conf.Dir, fmt.Sprintf("%s_page_%02d.csv", base, page))
}

// PartialLogPath is the log snapshot written after page n.
func (s *Saver) PartialLogPath(page int) string {
	base := strings.TrimSuffix(s.conf.LogFilename, filepath.Ext(s.conf.LogFilename))
	return filepath.Join(s.conf.Dir, fmt.Sprintf("%s_page_%02d.txt", base, page))
}

// FinalCSVPath is the canonical CSV written once the run ends.
func (s *Saver) FinalCSVPath() string {
	return filepath.Join(s.conf.Dir, s.conf.CSVFilename)
}

// FinalLogPath is the canonical log written once the run ends.
func (s *Saver) FinalLogPath() string {
	return filepath.Join(s.conf.Dir, s.conf.LogFilename)
}

// SavePartial snapshots everything accumulated through the given page.
func (s *Saver) SavePartial(page int, places []models.Place, logs []string) error {
	if err := writePlacesCSV(s.PartialCSVPath(page), places); err != nil {
		return err
	}
	return writeLog(s.PartialLogPath(page), logs)
}

// SaveFinal writes the canonical CSV and log files.
func (s *Saver) SaveFinal(places []models.Place, logs []string) error {
	if err := writePlacesCSV(s.FinalCSVPath(), places); err != nil {
		return err
	}
	return writeLog(s.FinalLogPath(), logs)
}

func writePlacesCSV(path string, places []models.Place) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(utf8BOM); err != nil {
		return fmt.Errorf("write csv bom: %w", err)
	}

	writer := csv.NewWriter(f)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, place := range places {
		record := []string{
			place.Name,
			formatRating(place.Rating),
			strings.Join(place.Categories, " | "),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv records: %w", err)
	}
	return nil
}

// formatRating keeps a decimal point on whole numbers, so "9" exports as
// "9.0" like the historical files.
func formatRating(rating *float64) string {
	if rating == nil {
		return ""
	}
	text := strconv.FormatFloat(*rating, 'f', -1, 64)
	if !strings.Contains(text, ".") {
		text += ".0"
	}
	return text
}

func writeLog(path string, entries []string) error {
	if err := os.WriteFile(path, []byte(strings.Join(entries, "\n")), 0o644); err != nil {
		return fmt.Errorf("write log file: %w", err)
	}
	return nil
}
