package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// Output writes per-frame stats as CSV plus YAML snapshots into one directory.
// A nil *Output is valid and discards everything.
type Output struct {
	dir           string
	statsFile     *os.File
	headerWritten bool
}

// NewOutput creates dir and opens stats.csv inside it. Returns nil if dir is empty.
func NewOutput(dir string) (*Output, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	statsPath := filepath.Join(dir, "stats.csv")
	f, err := os.Create(statsPath)
	if err != nil {
		return nil, fmt.Errorf("creating stats.csv: %w", err)
	}

	return &Output{dir: dir, statsFile: f}, nil
}

// WriteFrame appends one row to stats.csv.
func (o *Output) WriteFrame(stats FrameStats) error {
	if o == nil {
		return nil
	}

	if o.statsFile == nil {
		return fmt.Errorf("writing stats: output closed")
	}

	records := []FrameStats{stats}

	if !o.headerWritten {
		if err := gocsv.Marshal(records, o.statsFile); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
		o.headerWritten = true
		return nil
	}

	if err := gocsv.MarshalWithoutHeaders(records, o.statsFile); err != nil {
		return fmt.Errorf("writing stats: %w", err)
	}
	return nil
}

// WriteConfig saves the resolved settings of the run as config.yaml.
func (o *Output) WriteConfig(settings any) error {
	return o.writeYAML("config.yaml", settings)
}

// WriteSummary saves the run summary as summary.yaml.
func (o *Output) WriteSummary(summary Summary) error {
	return o.writeYAML("summary.yaml", summary)
}

func (o *Output) writeYAML(name string, v any) error {
	if o == nil {
		return nil
	}

	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", name, err)
	}

	if err := os.WriteFile(filepath.Join(o.dir, name), data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

func (o *Output) Dir() string {
	if o == nil {
		return ""
	}
	return o.dir
}

// Close flushes stats.csv. Closing twice is a no-op; frames written after Close fail.
func (o *Output) Close() error {
	if o == nil || o.statsFile == nil {
		return nil
	}
	err := o.statsFile.Close()
	o.statsFile = nil
	if err != nil {
		return fmt.Errorf("closing stats.csv: %w", err)
	}
	return nil
}
