package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"catan/engine"
)

// TurnRecord is one row of the turn log.
type TurnRecord struct {
	Turn     int
	Player   int
	Action   string
	Move     string
	Roll     int
	Accepted bool
	Error    string
}

// TurnRecords flattens engine updates into log rows.
func TurnRecords(updates []engine.Update) []TurnRecord {
	records := make([]TurnRecord, 0, len(updates))
	for _, u := range updates {
		r := TurnRecord{
			Turn:     u.Turn,
			Player:   u.Move.Player,
			Action:   u.Move.Type.String(),
			Move:     u.Move.String(),
			Roll:     u.Roll,
			Accepted: u.Accepted,
		}
		if u.Err != nil {
			r.Error = u.Err.Error()
		}
		records = append(records, r)
	}
	return records
}

// WriteTurnLog writes records as CSV with a header row.
func WriteTurnLog(w io.Writer, records []TurnRecord) error {
	writer := csv.NewWriter(w)

	header := []string{"turn", "player", "action", "move", "roll", "accepted", "error"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write turn log header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Turn),
			strconv.Itoa(record.Player),
			record.Action,
			record.Move,
			strconv.Itoa(record.Roll),
			strconv.FormatBool(record.Accepted),
			record.Error,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write turn log row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// Writer puts exports for one game under a timestamped directory.
type Writer struct {
	baseDir string
}

// NewWriter creates <root>/exports/<game>/<timestamp>.
func NewWriter(root, game string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000")
	baseDir := filepath.Join(root, "exports", game, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteSnapshot writes s as snapshot.json and snapshot.bin and returns
// both paths.
func (w *Writer) WriteSnapshot(s *Snapshot) ([]string, error) {
	data, err := MarshalJSON(s)
	if err != nil {
		return nil, err
	}
	jsonPath := filepath.Join(w.baseDir, "snapshot.json")
	if err := os.WriteFile(jsonPath, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write snapshot: %w", err)
	}

	binPath := filepath.Join(w.baseDir, "snapshot.bin")
	if err := os.WriteFile(binPath, MarshalBinary(s), 0644); err != nil {
		return nil, fmt.Errorf("failed to write snapshot: %w", err)
	}
	return []string{jsonPath, binPath}, nil
}

// WriteTurns writes the turn log to turns.csv and returns its path.
func (w *Writer) WriteTurns(records []TurnRecord) (string, error) {
	path := filepath.Join(w.baseDir, "turns.csv")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create turn log file: %w", err)
	}
	defer f.Close()

	if err := WriteTurnLog(f, records); err != nil {
		return "", err
	}
	return path, nil
}
