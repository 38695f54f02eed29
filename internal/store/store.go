package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/complyview/complyview/internal/model"
)

// ReportPrefix is the mandatory filename prefix for report snapshots.
// Get rejects any identifier without this prefix before touching the
// filesystem, which keeps requests from resolving outside the snapshot
// directory.
const ReportPrefix = "compliance_report_"

// reportExt is the snapshot file extension.
const reportExt = ".json"

// Store provides read access to the snapshot directory.
//
// Design decision: The store holds only the directory path and a logger.
// There is no connection state and no cache; snapshot reads are cheap at
// the observed report sizes (tens to low hundreds of findings), and
// rereading on every call keeps concurrent readers coordination-free.
type Store struct {
	// dir is the snapshot directory path.
	dir string

	// logger is used for non-fatal events such as skipped filenames.
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets a custom logger for the store.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates a Store over the given snapshot directory.
// The directory does not need to exist; a missing directory simply
// behaves as an empty store.
func New(dir string, opts ...Option) *Store {
	s := &Store{dir: dir}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}

	return s
}

// Dir returns the snapshot directory path.
func (s *Store) Dir() string {
	return s.dir
}

// List returns descriptors for all snapshot files, sorted by the
// timestamp encoded in the filename, most recent first.
//
// Files whose timestamp segment does not parse are skipped silently;
// a filename written by anything other than the pipeline is not an
// error, it just isn't a report. A missing or unreadable directory
// yields an empty listing, never an error.
func (s *Store) List() []model.ReportDescriptor {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.logger.Debug("snapshot directory not readable", "dir", s.dir, "error", err)
		return []model.ReportDescriptor{}
	}

	reports := make([]model.ReportDescriptor, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		timestamp, ok := timestampSegment(entry.Name())
		if !ok {
			continue
		}

		parsed, err := time.Parse(model.TimestampLayout, timestamp)
		if err != nil {
			s.logger.Debug("skipping report with unparseable timestamp",
				"filename", entry.Name(), "error", err)
			continue
		}

		reports = append(reports, model.NewReportDescriptor(entry.Name(), timestamp, parsed))
	}

	// The timestamp layout is fixed-width, so lexical order equals
	// chronological order. Newest first.
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Timestamp > reports[j].Timestamp
	})

	return reports
}

// Latest loads the most recently written snapshot.
//
// "Most recent" here means greatest filesystem modification time, not
// greatest filename timestamp; the two can diverge when files are copied
// into the directory out of order. Returns ErrNotFound when no matching
// file exists.
func (s *Store) Latest() (*model.ComplianceReport, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: snapshot directory %s", ErrNotFound, s.dir)
	}

	var (
		latestName string
		latestMod  time.Time
	)
	for _, entry := range entries {
		// Unlike List, Latest does not require a parseable timestamp
		// segment; mtime ordering makes the encoded timestamp irrelevant.
		if _, ok := timestampSegment(entry.Name()); entry.IsDir() || !ok {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if latestName == "" || info.ModTime().After(latestMod) {
			latestName = entry.Name()
			latestMod = info.ModTime()
		}
	}

	if latestName == "" {
		return nil, fmt.Errorf("%w: no report snapshots in %s", ErrNotFound, s.dir)
	}

	return s.load(latestName)
}

// Get loads the snapshot with the given filename.
//
// The identifier must begin with the compliance_report_ prefix and must
// exactly equal the name of an existing directory entry. Matching against
// directory entries, rather than joining the identifier onto the
// directory path and probing, is what prevents traversal identifiers
// like "../../etc/passwd" from ever resolving to a path.
func (s *Store) Get(id string) (*model.ComplianceReport, error) {
	if !strings.HasPrefix(id, ReportPrefix) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	for _, entry := range entries {
		if !entry.IsDir() && entry.Name() == id {
			return s.load(id)
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
}

// load reads and parses a snapshot file already known to be a directory
// entry. Unparseable JSON is reported as ErrMalformedReport; a file that
// vanished between listing and reading is ErrNotFound.
func (s *Store) load(name string) (*model.ComplianceReport, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name)) //nolint:gosec // name is validated against directory entries
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to read report %q: %w", name, err)
	}

	var report model.ComplianceReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrMalformedReport, name, err)
	}

	return &report, nil
}

// timestampSegment extracts the timestamp portion of a snapshot filename.
// Returns false when the name does not carry the expected prefix and
// extension.
func timestampSegment(name string) (string, bool) {
	if !strings.HasPrefix(name, ReportPrefix) || !strings.HasSuffix(name, reportExt) {
		return "", false
	}
	return strings.TrimSuffix(strings.TrimPrefix(name, ReportPrefix), reportExt), true
}
