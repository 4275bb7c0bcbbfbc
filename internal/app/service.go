// Package service wires the gallery domain to its adapters and
// implements the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"

	"github.com/flamesblue/omsk-gallery/internal/adapters/commons"
	"github.com/flamesblue/omsk-gallery/internal/adapters/dbprobe"
	"github.com/flamesblue/omsk-gallery/internal/domain/gallery"
	"github.com/flamesblue/omsk-gallery/internal/domain/model"
	"github.com/flamesblue/omsk-gallery/pkg/logger"
	"github.com/flamesblue/omsk-gallery/pkg/metrics"
)

// Defaults matching the curated photos endpoint.
const (
	defaultPhotoLimit = 32
	defaultThumbSize  = 1024
)

// Service implements the API dependencies for the gallery backend.
type Service struct {
	mu sync.RWMutex

	// Core components
	searcher   gallery.Searcher
	aggregator *gallery.Aggregator
	prober     dbprobe.Prober

	// Configuration
	queries    []string
	photoLimit int
	thumbSize  int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithSearcher sets the media search client.
func WithSearcher(searcher gallery.Searcher) Option {
	return func(s *Service) {
		if searcher != nil {
			s.searcher = searcher
		}
	}
}

// WithProber sets the database prober.
func WithProber(prober dbprobe.Prober) Option {
	return func(s *Service) {
		if prober != nil {
			s.prober = prober
		}
	}
}

// WithQueries sets the curated query list for the photos aggregation.
func WithQueries(queries []string) Option {
	return func(s *Service) {
		if len(queries) > 0 {
			s.queries = queries
		}
	}
}

// WithPhotoLimit sets the maximum number of photos returned.
func WithPhotoLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.photoLimit = limit
		}
	}
}

// WithThumbSize sets the requested thumbnail pixel size.
func WithThumbSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.thumbSize = size
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		photoLimit: defaultPhotoLimit,
		thumbSize:  defaultThumbSize,
		logger:     nil, // Resolved when the service starts
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	if len(s.queries) == 0 {
		return ErrNoQueries
	}

	if s.searcher == nil {
		s.searcher = commons.New()
	}
	if s.prober == nil {
		s.prober = dbprobe.New("")
	}

	s.aggregator = gallery.New(s.searcher,
		gallery.WithLimit(s.photoLimit),
		gallery.WithThumbSize(s.thumbSize),
		gallery.WithLogger(s.logger),
	)

	s.started = true
	s.logger.Info(ctx, "gallery service started",
		logger.Int("queries", len(s.queries)),
		logger.Int("photoLimit", s.photoLimit),
		logger.Int("thumbSize", s.thumbSize),
	)

	return nil
}

// Stop shuts down the service. The service holds no background state,
// so stopping only flips the started flag.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "gallery service stopped")
}

// Photos runs the curated aggregation and returns the collected images.
// Per-query failures are absorbed inside the aggregator; the slice may
// shrink but the call never fails.
func (s *Service) Photos(ctx context.Context) []model.Image {
	s.mu.RLock()
	agg := s.aggregator
	queries := s.queries
	s.mu.RUnlock()

	if agg == nil {
		return []model.Image{}
	}

	items := agg.Collect(ctx, queries)
	metrics.UpdateImagesReturned(len(items))
	return items
}

// ProbeDatabase reports optional database connectivity.
func (s *Service) ProbeDatabase(ctx context.Context) dbprobe.Report {
	s.mu.RLock()
	prober := s.prober
	s.mu.RUnlock()

	if prober == nil {
		prober = dbprobe.New("")
	}

	metrics.RecordDBProbe()
	report := prober.Probe(ctx)
	metrics.UpdateDBProbeUp(report.ConnectionStatus == "connected")
	return report
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"started":    s.started,
		"queries":    len(s.queries),
		"photoLimit": s.photoLimit,
		"thumbSize":  s.thumbSize,
	}
}
