package artifact

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/ShifengHuGit/AWSResourceCollection/models"
)

// reportLog tees report output to the console and the log file.
type reportLog struct {
	io.Writer
	file afero.File
}

func (r *reportLog) Close() error {
	return r.file.Close()
}

// OpenReportLog creates the timestamped log file and returns a writer that
// duplicates everything to the console. Callers route all report output
// through it.
func (s *Store) OpenReportLog() (io.WriteCloser, error) {
	file, err := s.Fs.Create(s.ReportLogPath())
	if err != nil {
		return nil, fmt.Errorf("failed to create report log %s: %w", s.ReportLogPath(), err)
	}
	return &reportLog{Writer: io.MultiWriter(s.Console, file), file: file}, nil
}

// WriteSnapshot dumps the raw API responses as indented JSON and returns the
// file path.
func (s *Store) WriteSnapshot(snap *models.Snapshot) (string, error) {
	file, err := s.Fs.Create(s.SnapshotPath())
	if err != nil {
		return "", fmt.Errorf("failed to create snapshot %s: %w", s.SnapshotPath(), err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return s.SnapshotPath(), nil
}

// WriteFile persists an already-rendered artifact, such as the DOT graph.
func (s *Store) WriteFile(path string, data []byte) error {
	if err := afero.WriteFile(s.Fs, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
