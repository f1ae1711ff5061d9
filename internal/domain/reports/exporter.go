package reports

import (
	"context"
	"fmt"
	"time"

	"gestobra/pkg/logger"
)

// Source loads the full collection a report is selected from.
type Source[T any] interface {
	All(ctx context.Context) ([]T, error)
}

// Recorder observes export outcomes (metrics).
type Recorder interface {
	ObserveReport(entity, reportType, outcome string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveReport(string, string, string) {}

// Export outcomes reported to the Recorder.
const (
	OutcomeRendered = "rendered"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Layout describes how an entity is laid out in an exported table.
type Layout[T any] struct {
	Title   string
	Columns []Column
	Row     func(T) map[string]any
}

// Exporter runs select, build and render for one entity type.
type Exporter[T any] struct {
	entity   string
	source   Source[T]
	selector *Selector[T]
	layout   Layout[T]
	renderer Renderer
	recorder Recorder
	now      func() time.Time
}

// ExporterConfig holds dependencies for Exporter.
type ExporterConfig[T any] struct {
	Entity   string
	Source   Source[T]
	Selector *Selector[T]
	Layout   Layout[T]
	Renderer Renderer
	Recorder Recorder
}

// NewExporter creates an exporter.
func NewExporter[T any](cfg ExporterConfig[T]) *Exporter[T] {
	var recorder Recorder = nopRecorder{}
	if cfg.Recorder != nil {
		recorder = cfg.Recorder
	}
	return &Exporter[T]{
		entity:   cfg.Entity,
		source:   cfg.Source,
		selector: cfg.Selector,
		layout:   cfg.Layout,
		renderer: cfg.Renderer,
		recorder: recorder,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Export selects the records for cfg and renders them.
// Configuration errors are returned before the renderer is contacted.
func (e *Exporter[T]) Export(ctx context.Context, cfg Configuration) (*Output, error) {
	if !e.selector.Supports(cfg.Type) {
		e.recorder.ObserveReport(e.entity, string(cfg.Type), OutcomeRejected)
		return nil, unsupportedType(cfg.Type)
	}

	items, err := e.source.All(ctx)
	if err != nil {
		e.recorder.ObserveReport(e.entity, string(cfg.Type), OutcomeFailed)
		return nil, fmt.Errorf("load %s: %w", e.entity, err)
	}

	selected, err := e.selector.Select(items, cfg)
	if err != nil {
		e.recorder.ObserveReport(e.entity, string(cfg.Type), OutcomeRejected)
		return nil, err
	}

	doc := e.Build(selected, cfg)
	out, err := e.renderer.Render(ctx, doc)
	if err != nil {
		e.recorder.ObserveReport(e.entity, string(cfg.Type), OutcomeFailed)
		logger.Warn(ctx, "report rendering failed",
			"entity", e.entity,
			"type", cfg.Type,
			"error", err,
		)
		return nil, err
	}
	e.recorder.ObserveReport(e.entity, string(cfg.Type), OutcomeRendered)

	logger.Info(ctx, "report exported",
		"entity", e.entity,
		"type", cfg.Type,
		"value", cfg.Value,
		"rows", len(doc.Rows),
	)
	return out, nil
}

// Build lays out selected items as a document.
func (e *Exporter[T]) Build(selected []T, cfg Configuration) Document {
	rows := make([]map[string]any, 0, len(selected))
	for _, item := range selected {
		rows = append(rows, e.layout.Row(item))
	}

	title := e.layout.Title
	if cfg.Type != TypeComplete {
		title = fmt.Sprintf("%s (%s: %s)", title, cfg.Type, cfg.Value)
	}

	return Document{
		Title:       title,
		Entity:      e.entity,
		Config:      cfg,
		Columns:     e.layout.Columns,
		Rows:        rows,
		Flags:       cfg.ContentFlags,
		GeneratedAt: e.now(),
	}
}
