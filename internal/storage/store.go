package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/motorsim/internal/alert"
	"github.com/san-kum/motorsim/internal/config"
	"github.com/san-kum/motorsim/internal/export"
	"github.com/san-kum/motorsim/internal/motor"
)

const (
	metadataFile = "metadata.json"
	motorFile    = "motor.yaml"
	channelsFile = "channels.csv"
)

var ErrRunNotFound = errors.New("storage: run not found")

// Store keeps one directory per run under baseDir.
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
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Timestamp   time.Time          `json:"timestamp"`
	Success     bool               `json:"success"`
	Timestep    float64            `json:"timestep"`
	Steps       int                `json:"steps"`
	Designation string             `json:"designation"`
	Metrics     map[string]float64 `json:"metrics"`
	Alerts      []alert.Alert      `json:"alerts"`
}

// Save writes the motor, its result and a metadata summary, and returns the
// new run id.
func (s *Store) Save(name string, def motor.Definition, res *motor.Result) (string, error) {
	runID := uuid.NewString()
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	st := res.Stats()
	meta := RunMetadata{
		ID:          runID,
		Name:        name,
		Timestamp:   time.Now(),
		Success:     res.Success,
		Timestep:    def.Config.Timestep,
		Steps:       res.Len(),
		Designation: st.Designation,
		Metrics:     st.Values(),
		Alerts:      res.Alerts,
	}

	metaData, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(runDir, metadataFile), metaData, 0644); err != nil {
		return "", err
	}

	if err := config.Save(filepath.Join(runDir, motorFile), def); err != nil {
		return "", err
	}

	var channels bytes.Buffer
	if err := export.WriteCSV(&channels, res); err != nil {
		return "", fmt.Errorf("write channels: %w", err)
	}
	if err := os.WriteFile(filepath.Join(runDir, channelsFile), channels.Bytes(), 0644); err != nil {
		return "", err
	}

	return runID, nil
}

// List returns the stored runs, newest first. Directories without readable
// metadata are skipped.
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
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) readRunFile(runID, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return data, err
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := s.readRunFile(runID, metadataFile)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("%s: %w", runID, err)
	}
	return &meta, nil
}

func (s *Store) LoadMotor(runID string) (*motor.Definition, error) {
	data, err := s.readRunFile(runID, motorFile)
	if err != nil {
		return nil, err
	}
	return config.Decode(bytes.NewReader(data))
}

// LoadResult rebuilds the stored result: channels from the csv, alerts and
// the success flag from the metadata.
func (s *Store) LoadResult(runID string) (*motor.Result, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	data, err := s.readRunFile(runID, channelsFile)
	if err != nil {
		return nil, err
	}

	res, err := export.ReadCSV(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", runID, err)
	}
	res.Alerts = meta.Alerts
	res.Success = meta.Success
	return res, nil
}
