// Package diagnostics is the boundary to whoever observes engine anomalies.
// Combat math never fails hard; anything suspicious is reported here instead.
package diagnostics

//go:generate mockgen -destination=mock/mock_reporter.go -package=mockdiagnostics -source=reporter.go

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	dnderr "github.com/aleserena/Don-t-slay-the-spire-sub001/internal/errors"
)

// Reporter receives non-fatal anomalies
type Reporter interface {
	Report(err error)
}

// LogReporter writes every report to the standard logger
type LogReporter struct{}

// NewLogReporter creates a reporter backed by the standard logger
func NewLogReporter() *LogReporter {
	return &LogReporter{}
}

// Report logs err with its code and metadata
func (r *LogReporter) Report(err error) {
	if err == nil {
		return
	}
	log.Printf("[DIAGNOSTICS] %s", Format(err))
}

// Format renders err as "<code>: <message> key=value ..." with sorted keys
func Format(err error) string {
	var sb strings.Builder
	sb.WriteString(string(dnderr.GetCode(err)))
	sb.WriteString(": ")
	sb.WriteString(err.Error())

	meta := dnderr.GetMeta(err)
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, " %s=%v", k, meta[k])
	}
	return sb.String()
}

type discard struct{}

func (discard) Report(error) {}

// Discard drops every report
var Discard Reporter = discard{}

// Recorder keeps reports in memory
type Recorder struct {
	mu      sync.Mutex
	reports []error
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Report stores err
func (r *Recorder) Report(err error) {
	if err == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, err)
}

// Reports returns a copy of everything recorded so far
func (r *Recorder) Reports() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]error, len(r.reports))
	copy(out, r.reports)
	return out
}

// Len returns the number of recorded reports
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reports)
}
