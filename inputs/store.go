/*
Package inputs provides puzzle texts.

Sample inputs and their known answers are embedded with the binary and listed
in data/manifest.yaml. Personal puzzle inputs are looked up first in an
optional directory on disk (dayNN.txt), then in the embedded data/dayNN/input.txt.
When neither exists the sample recorded for the requested part stands in
for the input, or the day's first sample when that part has none.
*/
package inputs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed data
var embedded embed.FS

const (
	dataRoot     = "data"
	manifestFile = "manifest.yaml"
	inputFile    = "input.txt"
)

var (
	ErrUnknownDay    = errors.New("day is not in the manifest")
	ErrUnknownSample = errors.New("no sample recorded for part")
)

// Manifest lists the puzzle days with their samples.
type Manifest struct {
	Days []Day `yaml:"days"`
}

// Day describes one puzzle day.
type Day struct {
	Day     int      `yaml:"day"`
	Title   string   `yaml:"title"`
	Samples []Sample `yaml:"samples"`
}

// Sample is a sample input file and the answer it is known to produce.
type Sample struct {
	Part   int    `yaml:"part"`
	File   string `yaml:"file"`
	Answer int    `yaml:"answer"`
}

// Store reads inputs from the embedded data and an optional override directory.
// Implements i.InputSource.
type Store struct {
	fsys     fs.FS
	dir      string
	manifest Manifest
	days     map[int]Day
}

// New creates a store over the embedded data. dir may be empty.
func New(dir string) (*Store, error) {
	data, err := fs.Sub(embedded, dataRoot)
	if err != nil {
		return nil, err
	}
	return NewFromFS(data, dir)
}

// NewFromFS creates a store over fsys, which must hold manifest.yaml at its root.
func NewFromFS(fsys fs.FS, dir string) (*Store, error) {
	raw, err := fs.ReadFile(fsys, manifestFile)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}

	days := make(map[int]Day, len(m.Days))
	for _, d := range m.Days {
		days[d.Day] = d
	}

	return &Store{
		fsys:     fsys,
		dir:      dir,
		manifest: m,
		days:     days,
	}, nil
}

// Manifest returns the decoded manifest.
func (s *Store) Manifest() Manifest {
	return s.manifest
}

// Title returns the puzzle name for day, or "" when the day is unknown.
func (s *Store) Title(day int) string {
	return s.days[day].Title
}

// Input returns the personal input for day. Without one it falls back to the
// sample recorded for part, then to the day's first sample.
func (s *Store) Input(day, part int) (string, error) {
	if s.dir != "" {
		raw, err := os.ReadFile(filepath.Join(s.dir, fmt.Sprintf("day%02d.txt", day)))
		if err == nil {
			return string(raw), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}

	raw, err := fs.ReadFile(s.fsys, path.Join(dayDir(day), inputFile))
	if err == nil {
		return string(raw), nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	d, ok := s.days[day]
	if !ok || len(d.Samples) == 0 {
		return "", fmt.Errorf("day %d: %w", day, ErrUnknownDay)
	}
	for _, sample := range d.Samples {
		if sample.Part == part {
			return s.read(day, sample.File)
		}
	}
	return s.read(day, d.Samples[0].File)
}

// Sample returns the sample input for a day's part and its known answer.
func (s *Store) Sample(day, part int) (string, int, error) {
	d, ok := s.days[day]
	if !ok {
		return "", 0, fmt.Errorf("day %d: %w", day, ErrUnknownDay)
	}

	for _, sample := range d.Samples {
		if sample.Part != part {
			continue
		}
		text, err := s.read(day, sample.File)
		if err != nil {
			return "", 0, err
		}
		return text, sample.Answer, nil
	}
	return "", 0, fmt.Errorf("day %d part %d: %w", day, part, ErrUnknownSample)
}

func (s *Store) read(day int, file string) (string, error) {
	raw, err := fs.ReadFile(s.fsys, path.Join(dayDir(day), file))
	if err != nil {
		return "", fmt.Errorf("day %d: %w", day, err)
	}
	return string(raw), nil
}

func dayDir(day int) string {
	return fmt.Sprintf("day%02d", day)
}
