package sweep

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// ResultColumns is the fixed schema of every result file. The external
// simulator appends rows matching this column order; the sink only ever
// writes the header.
var ResultColumns = []string{
	"SLO Latency", "SLO Throughput", "Frontend", "Cache", "Backend",
	"Average Latency", "Peak Throughput", "Cumulative Carbon Cost",
	"Frontend Servers", "Cache Servers", "Backend Servers", "Cache Hit Rate",
	"Embodied Cost", "Active Cost", "Idle Cost", "Replacement Cost",
	"Frontend Size (GB)", "Cache Size (GB)", "Backend Size (GB)", "Total Size (GB)",
	"Simulation Years",
}

// ResultFile is one group's result file. The path is handed to the external
// simulator as the append target; rows are never written through this type.
type ResultFile struct {
	Key  GroupKey
	Path string
}

// ResultSink exclusively owns result-file creation. Obtain is idempotent per
// group key: the first call creates the file and writes the header exactly
// once, every later call returns the same file untouched. No two distinct
// keys share a file.
type ResultSink struct {
	dir   string
	files map[GroupKey]*ResultFile
}

// NewResultSink creates a sink writing result files under dir.
func NewResultSink(dir string) *ResultSink {
	return &ResultSink{
		dir:   dir,
		files: make(map[GroupKey]*ResultFile),
	}
}

// Obtain returns the result file for key, creating it with its header on
// first use. Creation or header-write failure is a SinkError.
func (s *ResultSink) Obtain(key GroupKey) (*ResultFile, error) {
	if rf, ok := s.files[key]; ok {
		return rf, nil
	}

	path := filepath.Join(s.dir, resultFileName(key))
	if err := s.createWithHeader(key, path); err != nil {
		return nil, err
	}

	rf := &ResultFile{Key: key, Path: path}
	s.files[key] = rf
	return rf, nil
}

func (s *ResultSink) createWithHeader(key GroupKey, path string) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return &SinkError{Key: key, Path: path, Err: err}
	}

	f, err := os.Create(path)
	if err != nil {
		return &SinkError{Key: key, Path: path, Err: err}
	}

	writer := csv.NewWriter(f)
	if err := writer.Write(ResultColumns); err != nil {
		_ = f.Close()
		return &SinkError{Key: key, Path: path, Err: err}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		_ = f.Close()
		return &SinkError{Key: key, Path: path, Err: err}
	}

	// The handle is not kept open: the external simulator opens the path in
	// append mode itself, so the sink's job ends at the header.
	if err := f.Close(); err != nil {
		return &SinkError{Key: key, Path: path, Err: err}
	}
	return nil
}

// resultFileName derives a group's file name from its key, e.g.
// "results_slo100ms_1000reqs_10y.csv".
func resultFileName(key GroupKey) string {
	return fmt.Sprintf("results_slo%sms_%sreqs_%dy.csv",
		formatAxis(key.SLOLatencyMs), formatAxis(key.SLOThroughputReqsPerSec), key.SimulationYears)
}
