package seeder

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Lumos-Labs-HQ/kons-seed/internal/config"
	"github.com/Lumos-Labs-HQ/kons-seed/internal/database"
	"github.com/Lumos-Labs-HQ/kons-seed/internal/imagery"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

type Seeder struct {
	config    *config.Config
	adapter   database.DatabaseAdapter
	images    imagery.Source
	generator *DataGenerator
	tokens    *TokenGenerator
	out       io.Writer
	log       logrus.FieldLogger
	now       func() time.Time
}

type Option func(*Seeder)

// WithImageSource replaces the dog.ceo client.
func WithImageSource(src imagery.Source) Option {
	return func(s *Seeder) { s.images = src }
}

func WithOutput(w io.Writer) Option {
	return func(s *Seeder) { s.out = w }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Seeder) { s.log = log }
}

// WithSeed makes a run reproducible.
func WithSeed(seed int64) Option {
	return func(s *Seeder) { s.generator = NewDataGenerator(seed) }
}

func New(cfg *config.Config, adapter database.DatabaseAdapter, opts ...Option) *Seeder {
	s := &Seeder{
		config:    cfg,
		adapter:   adapter,
		images:    imagery.NewDogCEO(cfg.Images.Endpoint, time.Duration(cfg.Images.Timeout)*time.Second),
		generator: NewDataGenerator(time.Now().UnixNano()),
		tokens:    NewTokenGenerator(),
		out:       os.Stdout,
		log:       logrus.StandardLogger(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validate checks a request before anything touches the database.
func (s *Seeder) Validate(kind Kind, count int) error {
	if count <= 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidCount, count)
	}

	switch kind {
	case KindProduct:
		if limit := s.config.Generation.MaxProducts; count > limit {
			return fmt.Errorf("%w: requested %d, the limit is %d", ErrProductLimit, count, limit)
		}
	case KindUser, KindTransaction:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	return nil
}

// Run generates count records of kind, one committed unit at a time. On
// error the units committed before the failure are kept and the Summary
// reports how many there were.
func (s *Seeder) Run(ctx context.Context, kind Kind, count int) (*Summary, error) {
	if err := s.Validate(kind, count); err != nil {
		return nil, err
	}

	start := s.now()
	var inserted int
	var err error

	switch kind {
	case KindProduct:
		inserted, err = s.seedProducts(ctx, count)
	case KindUser:
		inserted, err = s.seedUsers(ctx, count)
	case KindTransaction:
		inserted, err = s.seedTransactions(ctx, count)
	}

	summary := &Summary{
		Kind:      kind,
		Requested: count,
		Inserted:  inserted,
		Elapsed:   s.now().Sub(start),
	}

	if err != nil {
		if inserted > 0 {
			fmt.Fprintln(s.out)
			fmt.Fprintln(s.out, color.YellowString("⚠️  Stopped after %d of %d %ss, committed rows are kept", inserted, count, kind))
		}
		return summary, err
	}

	s.log.WithFields(logrus.Fields{
		"kind":      kind,
		"requested": count,
		"inserted":  inserted,
		"elapsed":   summary.Elapsed,
	}).Debug("seeding finished")

	return summary, nil
}

// inUnit runs fn inside its own database transaction, rolling back when fn
// fails.
func (s *Seeder) inUnit(ctx context.Context, fn func(tx database.Tx) error) error {
	tx, err := s.adapter.Begin(ctx)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("unit failed and rollback failed: %v (original: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

func (s *Seeder) announce(format string, args ...interface{}) {
	fmt.Fprintln(s.out, color.CyanString(format, args...))
}
