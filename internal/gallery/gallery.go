// Package gallery persists captured lesson snapshots: the parameter set,
// the sampled series, and an SVG render, one directory per capture.
package gallery

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type Snapshot struct {
	ID        string             `json:"id"`
	Lesson    string             `json:"lesson"`
	Title     string             `json:"title"`
	Mode      string             `json:"mode,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
	Params    map[string]float64 `json:"params"`
	Readout   []string           `json:"readout,omitempty"`
}

// Save captures one snapshot and returns its ID. The SVG may be empty,
// in which case no board.svg is written.
func (s *Store) Save(snap Snapshot, series []float64, svg string) (string, error) {
	snap.ID = fmt.Sprintf("%s_%d", snap.Lesson, time.Now().Unix())
	snap.Timestamp = time.Now()

	dir := filepath.Join(s.baseDir, snap.ID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(dir, "series.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"i", "value"}); err != nil {
		return "", err
	}
	for i, v := range series {
		row := []string{strconv.Itoa(i), strconv.FormatFloat(v, 'f', 6, 64)}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	if svg != "" {
		if err := os.WriteFile(filepath.Join(dir, "board.svg"), []byte(svg), 0644); err != nil {
			return "", err
		}
	}

	return snap.ID, nil
}

// List returns every stored snapshot's metadata. A missing data directory
// is an empty gallery, not an error.
func (s *Store) List() ([]Snapshot, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Snapshot{}, nil
		}
		return nil, err
	}

	snaps := make([]Snapshot, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var snap Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			continue
		}
		snaps = append(snaps, snap)
	}
	return snaps, nil
}

func (s *Store) Load(id string) (*Snapshot, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *Store) LoadSeries(id string) ([]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, id, "series.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	series := make([]float64, 0, len(records))
	for i := 1; i < len(records); i++ {
		if len(records[i]) < 2 {
			continue
		}
		v, err := strconv.ParseFloat(records[i][1], 64)
		if err != nil {
			continue
		}
		series = append(series, v)
	}
	return series, nil
}

// LoadSVG returns the stored board render, or an error when the snapshot
// was saved without one.
func (s *Store) LoadSVG(id string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "board.svg"))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
