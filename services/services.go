// Package services holds the gig business rules between the HTTP handlers and the repositories.
package services

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/tiresomefanatic/FindPRO-Backend/config"
	"github.com/tiresomefanatic/FindPRO-Backend/logger"
	"github.com/tiresomefanatic/FindPRO-Backend/metrics"
	"github.com/tiresomefanatic/FindPRO-Backend/repository"
	"github.com/tiresomefanatic/FindPRO-Backend/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	msgGigNotFound  = "Gig not found"
	msgUserNotFound = "User not found"
	msgInvalidOwner = "Invalid owner"
)

// MediaStore keeps portfolio images outside the database.
type MediaStore interface {
	Upload(ctx context.Context, r io.Reader, contentType, folder string) (string, error)
	Delete(ctx context.Context, url string) error
	Owns(url string) bool
}

type GigService struct {
	gigs        repository.GigRepository
	users       repository.UserRepository
	media       MediaStore
	mediaFolder string
	pagination  config.PaginationConfig
	metrics     *metrics.Metrics
	log         *zap.Logger
	now         func() time.Time
}

// Option customises a GigService.
type Option func(*GigService)

// WithMediaStore enables portfolio uploads and blob cleanup under folder.
func WithMediaStore(media MediaStore, folder string) Option {
	return func(s *GigService) {
		s.media = media
		s.mediaFolder = folder
	}
}

func WithPagination(cfg config.PaginationConfig) Option {
	return func(s *GigService) {
		s.pagination = cfg
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *GigService) {
		s.metrics = m
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(s *GigService) {
		s.log = log
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *GigService) {
		s.now = now
	}
}

func NewGigService(gigs repository.GigRepository, users repository.UserRepository, opts ...Option) *GigService {
	s := &GigService{
		gigs:        gigs,
		users:       users,
		mediaFolder: "portfolio",
		pagination:  config.PaginationConfig{DefaultLimit: 10, MaxLimit: 100},
		metrics:     metrics.Nop(),
		log:         zap.NewNop(),
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// MediaEnabled reports whether a media store is configured.
func (s *GigService) MediaEnabled() bool {
	return s.media != nil
}

// timestamp is the current time at the store's millisecond precision.
func (s *GigService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

func (s *GigService) logger(ctx context.Context) *zap.Logger {
	return logger.From(ctx, s.log)
}

// storeError maps a repository error to an AppError.
func storeError(err error, notFound, failed string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return utils.NotFound(notFound, err)
	}
	return utils.Internal(failed, err)
}

// parseID parses a hex ObjectID. Malformed ids address nothing, so they are NotFound.
func parseID(raw, notFound string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, utils.NotFound(notFound, err)
	}
	return id, nil
}
