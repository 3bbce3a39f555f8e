package generation

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/socialynx/backend/pkg/logger"
)

// Service validates generation requests, calls the provider, and archives
// successful results per user.
type Service struct {
	completer Completer
	history   HistoryStore
	log       *slog.Logger
	now       func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock substitutes the time source for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService wires the generation flow. Completer and HistoryStore are
// required; nil panics at startup.
func NewService(completer Completer, history HistoryStore, opts ...Option) *Service {
	if completer == nil {
		panic("generation: Completer is required")
	}
	if history == nil {
		panic("generation: HistoryStore is required")
	}

	s := &Service{
		completer: completer,
		history:   history,
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate produces content for userID and records it in history. The
// history write is best effort: a generated result is never discarded
// because archiving failed.
func (s *Service) Generate(ctx context.Context, userID string, req Request) (*Result, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	result, err := s.completer.Complete(ctx, req)
	if err != nil {
		return nil, err
	}

	rec := Record{
		ID:         uuid.New().String(),
		UserID:     userID,
		Prompt:     req.Prompt,
		Type:       req.Type,
		Tone:       req.Tone,
		Length:     req.Length,
		Result:     result.Text,
		TokensUsed: result.TokensUsed,
		CreatedAt:  s.now(),
	}
	if err := s.history.Save(ctx, rec); err != nil {
		s.log.WarnContext(ctx, "failed to record generation history",
			logger.UserID(userID), logger.Error(err))
	}

	s.log.InfoContext(ctx, "content generated",
		logger.UserID(userID),
		slog.String("type", req.Type),
		slog.Int("tokens_used", result.TokensUsed))

	return result, nil
}

// History returns the user's recent generations, newest first.
func (s *Service) History(ctx context.Context, userID string, limit int) ([]Record, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}

	records, err := s.history.List(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load generation history: %w", err)
	}
	return records, nil
}
