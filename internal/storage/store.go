package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/musclelab/internal/experiment"
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

type RunMetadata struct {
	ID            string             `json:"id"`
	Timestamp     time.Time          `json:"timestamp"`
	Excitation    string             `json:"excitation"`
	Integrator    string             `json:"integrator"`
	Muscle        string             `json:"muscle"`
	Dt            float64            `json:"dt"`
	Duration      float64            `json:"duration"`
	Amplitude     float64            `json:"amplitude"`
	PulseDuration float64            `json:"pulse_duration"`
	Metrics       map[string]float64 `json:"metrics"`
}

// Traces is the flat column view of a stored run.
type Traces struct {
	Times      []float64
	Drive      []float64
	Activation []float64
	Force      []float64
	CEForce    []float64
	SEEForce   []float64
	SEELength  []float64
	CEVelocity []float64
}

var traceHeader = []string{"time", "u", "a", "force", "ce_force", "see_force", "see_length", "ce_velocity"}

func (s *Store) Save(meta RunMetadata, out *experiment.Outcome) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()

	// rise/decay metrics report NaN when the level was never reached;
	// encoding/json rejects non-finite values
	meta.Metrics = make(map[string]float64, len(out.Activation.Metrics))
	for name, v := range out.Activation.Metrics {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		meta.Metrics[name] = v
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "traces.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(traceHeader); err != nil {
		return "", err
	}

	act := out.Activation
	for i := range act.Times {
		row := []string{
			strconv.FormatFloat(act.Times[i], 'f', 6, 64),
			strconv.FormatFloat(act.Drives[i], 'f', 6, 64),
			strconv.FormatFloat(act.States[i][0], 'f', 8, 64),
		}
		row = append(row,
			formatAt(out.Forces.Force, i),
			formatAt(out.Forces.CEForce, i),
			formatAt(out.Forces.SEEForce, i),
			formatAt(out.Forces.SEELength, i),
			formatAt(out.Forces.CEVelocity, i),
		)
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func formatAt(col []float64, i int) string {
	if i >= len(col) {
		return "0"
	}
	return strconv.FormatFloat(col[i], 'f', 6, 64)
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadTraces(runID string) (*Traces, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "traces.csv"))
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

	tr := &Traces{}
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < len(traceHeader) {
			continue
		}

		vals := make([]float64, 0, len(traceHeader))
		bad := false
		for j := 0; j < len(traceHeader); j++ {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				bad = true
				break
			}
			vals = append(vals, v)
		}
		if bad {
			continue
		}

		tr.Times = append(tr.Times, vals[0])
		tr.Drive = append(tr.Drive, vals[1])
		tr.Activation = append(tr.Activation, vals[2])
		tr.Force = append(tr.Force, vals[3])
		tr.CEForce = append(tr.CEForce, vals[4])
		tr.SEEForce = append(tr.SEEForce, vals[5])
		tr.SEELength = append(tr.SEELength, vals[6])
		tr.CEVelocity = append(tr.CEVelocity, vals[7])
	}

	return tr, nil
}
