// Package export writes collected odds to timestamped CSV files, one row
// per bookmaker per match per collection cycle.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/lucianofrutuoso/python-bet/internal/pkg/models"
)

var csvHeader = []string{
	"collected_at",
	"competition",
	"home_team",
	"away_team",
	"kickoff",
	"bookmaker",
	"home_odd",
	"draw_odd",
	"away_odd",
	"over_2_5_odd",
	"under_2_5_odd",
}

// CSVExporter writes odds_data_YYYYMMDD_HHMM.csv files into a directory.
type CSVExporter struct {
	dir string
}

func NewCSVExporter(dir string) *CSVExporter {
	if dir == "" {
		dir = "."
	}
	return &CSVExporter{dir: dir}
}

// Export writes the rows to a new timestamped file and returns its path.
// An empty batch writes nothing and returns an empty path.
func (e *CSVExporter) Export(rows []models.OddsRow) (string, error) {
	if len(rows) == 0 {
		return "", nil
	}

	name := fmt.Sprintf("odds_data_%s.csv", time.Now().Format("20060102_1504"))
	path := filepath.Join(e.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("failed to write header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.CollectedAt.UTC().Format(time.RFC3339),
			row.Competition,
			row.HomeTeam,
			row.AwayTeam,
			row.Kickoff.UTC().Format(time.RFC3339),
			row.Bookmaker,
			formatPrice(row.Home),
			formatPrice(row.Draw),
			formatPrice(row.Away),
			formatPrice(row.Over25),
			formatPrice(row.Under25),
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("failed to write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush export file: %w", err)
	}

	return path, nil
}

// formatPrice leaves unquoted outcomes as empty cells rather than zeros.
func formatPrice(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
