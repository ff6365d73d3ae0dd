package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped survey directory under root.
func NewWriter(root string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	baseDir := filepath.Join(root, "survey", timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteHandRecords(records []HandMetric) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Hand,
			strconv.FormatBool(record.Solvable),
			record.Solution,
			strconv.Itoa(record.Matches),
			strconv.Itoa(record.Candidates),
			strconv.Itoa(record.Failures),
			record.Duration.String(),
		})
	}
	header := []string{"hand", "solvable", "solution", "matches", "candidates", "failures", "duration"}
	return w.write("hand_records.csv", header, rows)
}

func (w *Writer) WriteSummary(summary SurveyMetric) error {
	header := []string{"hands", "solvable", "violations", "start_time", "end_time", "duration"}
	row := []string{
		strconv.Itoa(summary.Hands),
		strconv.Itoa(summary.Solvable),
		strconv.Itoa(summary.Violations),
		summary.StartTime.Format(time.RFC3339),
		summary.EndTime.Format(time.RFC3339),
		summary.Duration.String(),
	}
	return w.write("survey_summary.csv", header, [][]string{row})
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	// Create a file
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	// Write header
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}

	// Write each row
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}

	return nil
}
