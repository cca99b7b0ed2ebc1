package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MutationRecorder counts successful hierarchy writes. metrics.Metrics satisfies it.
type MutationRecorder interface {
	RecordMutation(entity, operation string)
}

type noopRecorder struct{}

func (noopRecorder) RecordMutation(string, string) {}

type options struct {
	now      func() time.Time
	recorder MutationRecorder
	cache    *CacheService
}

// Option configures a service.
type Option func(*options)

// WithClock replaces time.Now for deadline checks.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithRecorder reports hierarchy mutations to r.
func WithRecorder(r MutationRecorder) Option {
	return func(o *options) {
		if r != nil {
			o.recorder = r
		}
	}
}

// WithCache lets a service drop cached aggregates its writes make stale.
func WithCache(c *CacheService) Option {
	return func(o *options) {
		o.cache = c
	}
}

// dropTeamRating forgets the cached team average of structureID.
func (o options) dropTeamRating(ctx context.Context, structureID uuid.UUID) {
	if o.cache == nil {
		return
	}
	_ = o.cache.Delete(ctx, teamRatingPrefix+structureID.String())
}

func applyOptions(opts []Option) options {
	o := options{
		now:      time.Now,
		recorder: noopRecorder{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
