package lint

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/fieldbuf/internal/fieldset"
	"github.com/danmuck/fieldbuf/internal/observability"
)

type Config struct {
	Quiet         bool
	FailFast      bool
	MaxRejections int
	SlowWarn      time.Duration
}

func DefaultConfig() Config {
	return Config{
		Quiet:         false,
		FailFast:      false,
		MaxRejections: 0,
		SlowWarn:      250 * time.Millisecond,
	}
}

// Item is one field check: the spec to register and the value that must
// clear its buffer contract.
type Item struct {
	Spec  fieldset.Spec
	Value string
}

// Rejection records one field that failed.
type Rejection struct {
	Field string
	Kind  string
	Err   error
}

// Report summarizes a run. Failed applies the MaxRejections budget;
// Stopped marks a FailFast run that did not reach every item.
type Report struct {
	Title    string
	Checked  int
	Rejected []Rejection
	Duration time.Duration
	Stopped  bool
	Failed   bool
}

// Run checks every item against a fresh registry. Duplicate names
// surface as rejections here, not as load errors, so callers feeding
// hand-built item lists get the same verdict shape as manifest users.
func Run(title string, items []Item, cfg Config) Report {
	start := time.Now()
	registry := fieldset.New()
	report := Report{Title: title}

	for _, item := range items {
		if stop := check(registry, item, cfg, &report); stop {
			report.Stopped = true
			break
		}
	}

	report.Duration = time.Since(start)
	report.Failed = len(report.Rejected) > cfg.MaxRejections
	observability.RecordManifest(len(report.Rejected), report.Duration)
	if cfg.SlowWarn > 0 && report.Duration > cfg.SlowWarn {
		log.Warn().
			Dur("duration", report.Duration).
			Dur("budget", cfg.SlowWarn).
			Msg("lint: slow run")
	}
	log.Info().
		Str("title", title).
		Int("checked", report.Checked).
		Int("rejected", len(report.Rejected)).
		Dur("duration", report.Duration).
		Msg("lint: run complete")
	return report
}

func check(registry *fieldset.Registry, item Item, cfg Config, report *Report) bool {
	report.Checked++
	if err := registry.Register(item.Spec); err != nil {
		return reject(report, item.Spec.Name, err, cfg)
	}
	buf, err := registry.Build(item.Spec.Name, item.Value)
	if err != nil {
		return reject(report, item.Spec.Name, err, cfg)
	}
	observability.RecordCheck(true)
	if !cfg.Quiet {
		snap := buf.Snapshot()
		log.Debug().
			Str("field", item.Spec.Name).
			Int("length", snap.Len()).
			Int("remaining", snap.Remaining()).
			Bool("full", snap.IsFull()).
			Msg("lint: field ok")
	}
	return false
}

func reject(report *Report, field string, err error, cfg Config) bool {
	kind := observability.RejectionKind(err)
	report.Rejected = append(report.Rejected, Rejection{Field: field, Kind: kind, Err: err})
	observability.RecordCheck(false)
	observability.RecordRejection(field, err)
	if !cfg.Quiet {
		log.Error().
			Str("field", field).
			Str("kind", kind).
			Err(err).
			Msg("lint: field rejected")
	}
	return cfg.FailFast
}
