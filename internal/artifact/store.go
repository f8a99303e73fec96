// Package artifact persists a run's output files: the tee'd report log, the
// raw-response JSON snapshot, and the topology graph files. Every file of one
// run carries the same timestamp.
package artifact

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/host"
	"github.com/spf13/afero"

	"github.com/ShifengHuGit/AWSResourceCollection/models"
)

const TimestampLayout = "20060102-150405"

// Store writes artifacts under a single output directory. The filesystem,
// console writer and clock are injectable for tests.
type Store struct {
	Fs      afero.Fs
	Console io.Writer
	Now     func() time.Time

	dir     string
	created time.Time
	stamp   string
}

func NewStore(fs afero.Fs, dir string, opts ...func(*Store)) (*Store, error) {
	s := &Store{
		Fs:      fs,
		Console: os.Stdout,
		Now:     time.Now,
		dir:     dir,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.dir == "" {
		s.dir = "."
	}

	if err := s.Fs.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", s.dir, err)
	}

	// One clock read per run; every artifact name shares it.
	s.created = s.Now()
	s.stamp = s.created.Format(TimestampLayout)
	return s, nil
}

func (s *Store) ReportLogPath() string { return s.path("awsrc-report-%s.log") }
func (s *Store) SnapshotPath() string  { return s.path("awsrc-raw-%s.json") }
func (s *Store) DotPath() string       { return s.path("awsrc-topology-%s.dot") }

// ImagePath is the rendered graph file for the configured format, e.g. png
// or svg.
func (s *Store) ImagePath(format string) string {
	return filepath.Join(s.dir, fmt.Sprintf("awsrc-topology-%s.%s", s.stamp, format))
}

func (s *Store) path(pattern string) string {
	return filepath.Join(s.dir, fmt.Sprintf(pattern, s.stamp))
}

// Metadata assembles the run header embedded in the snapshot. Host details
// are best-effort; a failed lookup falls back to what the runtime knows.
func (s *Store) Metadata(version, accountID, callerARN string, regions []string) models.RunMetadata {
	meta := models.RunMetadata{
		Tool:        "awsrc",
		Version:     version,
		GeneratedAt: s.created,
		AccountID:   accountID,
		CallerARN:   callerARN,
		Regions:     regions,
	}

	if info, err := host.Info(); err == nil {
		meta.Hostname = info.Hostname
		meta.Platform = fmt.Sprintf("%s %s", info.Platform, info.PlatformVersion)
	} else {
		if name, herr := os.Hostname(); herr == nil {
			meta.Hostname = name
		} else {
			meta.Hostname = models.Placeholder
		}
		meta.Platform = runtime.GOOS
	}

	return meta
}
