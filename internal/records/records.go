// internal/records/records.go
package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// ErrNoRecords is returned when a provider has nothing to clean.
var ErrNoRecords = errors.New("no records")

// Record is one source item turned into a dirt entity.
type Record struct {
	ID      string `json:"id"`
	Subject string `json:"subject"`
}

// Provider supplies the batch of records for a cleaning session.
type Provider interface {
	Records(ctx context.Context) ([]Record, error)
}

// FileProvider reads a JSON array of records from disk.
type FileProvider struct {
	Path string
	Log  *slog.Logger
}

func (p FileProvider) Records(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read records file: %w", err)
	}

	var recs []Record
	if err := json.Unmarshal(file, &recs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal records: %w", err)
	}
	recs, dropped := Normalize(recs)
	if dropped > 0 {
		logger(p.Log).Warn("dropped invalid records", "path", p.Path, "count", dropped)
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%s: %w", p.Path, ErrNoRecords)
	}
	logger(p.Log).Info("loaded records", "path", p.Path, "count", len(recs))
	return recs, nil
}

// Normalize drops records without an id and repeated ids, keeping the first
// occurrence, and trims subjects. It returns how many records were dropped.
func Normalize(recs []Record) ([]Record, int) {
	seen := make(map[string]struct{}, len(recs))
	out := recs[:0:0]
	for _, r := range recs {
		r.ID = strings.TrimSpace(r.ID)
		if r.ID == "" {
			continue
		}
		if _, dup := seen[r.ID]; dup {
			continue
		}
		seen[r.ID] = struct{}{}
		r.Subject = strings.TrimSpace(r.Subject)
		out = append(out, r)
	}
	return out, len(recs) - len(out)
}

var demoSubjects = []string{
	"Weekly digest: 14 new posts in your groups",
	"Your order has shipped",
	"Last chance: 40% off everything",
	"Reminder: team sync moved to Thursday",
	"Security alert for your account",
	"Newsletter #212 - what we shipped this month",
	"Invoice available",
	"Someone mentioned you in a comment",
}

// DemoProvider generates Count records with random ids.
type DemoProvider struct {
	Count int
}

func (p DemoProvider) Records(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.Count <= 0 {
		return nil, ErrNoRecords
	}
	recs := make([]Record, p.Count)
	for i := range recs {
		recs[i] = Record{
			ID:      uuid.NewString(),
			Subject: demoSubjects[i%len(demoSubjects)],
		}
	}
	return recs, nil
}

func logger(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}
