// Package flatfile persists the trip and ticket collections as
// pipe-delimited text files and writes ticket receipts. The format is
// line-oriented: a record count on the first line, then one record per
// line with '|' separating fields. Text fields carry no escaping, so
// the domain layer rejects input containing the delimiter or newlines.
package flatfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/busdesk/busdesk/internal/core/domain"
)

// Snapshot implements ports.Snapshotter over two files in a data
// directory. Saves rewrite the whole file through a temp file and
// rename, so a reader at next load never sees a half-written state.
type Snapshot struct {
	tripsPath   string
	ticketsPath string
}

// NewSnapshot creates a snapshotter for the given data directory and
// file names.
func NewSnapshot(dir, tripsFile, ticketsFile string) *Snapshot {
	return &Snapshot{
		tripsPath:   filepath.Join(dir, tripsFile),
		ticketsPath: filepath.Join(dir, ticketsFile),
	}
}

func (s *Snapshot) SaveTrips(ctx context.Context, trips []*domain.Trip) error {
	lines := make([]string, 0, len(trips))
	for _, t := range trips {
		line, err := encodeTrip(t)
		if err != nil {
			return fmt.Errorf("encode trip %d: %w", t.ID, err)
		}
		lines = append(lines, line)
	}
	if err := writeRecords(s.tripsPath, lines); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrPersistenceFailed, s.tripsPath, err)
	}
	return nil
}

func (s *Snapshot) SaveTickets(ctx context.Context, tickets []*domain.Ticket) error {
	lines := make([]string, 0, len(tickets))
	for _, t := range tickets {
		line, err := encodeTicket(t)
		if err != nil {
			return fmt.Errorf("encode ticket %d: %w", t.ID, err)
		}
		lines = append(lines, line)
	}
	if err := writeRecords(s.ticketsPath, lines); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrPersistenceFailed, s.ticketsPath, err)
	}
	return nil
}

func (s *Snapshot) LoadTrips(ctx context.Context) ([]*domain.Trip, error) {
	lines, err := readRecords(s.tripsPath)
	if err != nil {
		return nil, err
	}
	if lines == nil {
		return nil, nil // first run, file not created yet
	}
	trips := make([]*domain.Trip, 0, len(lines))
	for i, line := range lines {
		t, err := parseTrip(line)
		if err != nil {
			return nil, corrupt(s.tripsPath, i+2, err)
		}
		trips = append(trips, t)
	}
	return trips, nil
}

func (s *Snapshot) LoadTickets(ctx context.Context) ([]*domain.Ticket, error) {
	lines, err := readRecords(s.ticketsPath)
	if err != nil {
		return nil, err
	}
	if lines == nil {
		return nil, nil
	}
	tickets := make([]*domain.Ticket, 0, len(lines))
	for i, line := range lines {
		t, err := parseTicket(line)
		if err != nil {
			return nil, corrupt(s.ticketsPath, i+2, err)
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

// writeRecords rewrites path with a count header followed by one record
// per line. The content lands in a temp file in the same directory
// first and is renamed into place after a successful sync.
func writeRecords(path string, lines []string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	var b strings.Builder
	fmt.Fprintf(&b, "%d\n", len(lines))
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if _, err := tmp.WriteString(b.String()); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// readRecords returns the record lines of path, validating the count
// header against the actual line count. A missing file returns
// (nil, nil): that is the expected state on first run.
func readRecords(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	content := strings.TrimSuffix(string(data), "\n")
	if content == "" {
		return nil, corrupt(path, 1, fmt.Errorf("missing record count"))
	}
	rows := strings.Split(content, "\n")

	count, err := parseInt("record count", rows[0])
	if err != nil {
		return nil, corrupt(path, 1, err)
	}
	if count < 0 {
		return nil, corrupt(path, 1, fmt.Errorf("negative record count %d", count))
	}
	if len(rows)-1 != count {
		return nil, corrupt(path, 1, fmt.Errorf("header says %d records, file has %d", count, len(rows)-1))
	}
	return rows[1:], nil
}

func corrupt(path string, line int, err error) error {
	return fmt.Errorf("%w: %s line %d: %v", domain.ErrCorruptData, path, line, err)
}
