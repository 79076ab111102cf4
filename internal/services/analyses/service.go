package analyses

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"finprobe/internal/domain"
	"finprobe/internal/ports"
	"finprobe/internal/services/ingest"
)

type Service struct {
	repo      ports.AnalysisRepository
	evaluator ports.Evaluator
	ttl       time.Duration
	now       func() time.Time
}

type Option func(*Service)

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func New(repo ports.AnalysisRepository, evaluator ports.Evaluator, ttl time.Duration, opts ...Option) *Service {
	s := &Service{repo: repo, evaluator: evaluator, ttl: ttl, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Evaluate decodes and evaluates doc without storing anything.
func (s *Service) Evaluate(ctx context.Context, doc io.Reader) (domain.Analysis, error) {
	rec, err := ingest.Decode(doc)
	if err != nil {
		return domain.Analysis{}, err
	}
	flags, err := s.evaluator.Evaluate(rec)
	if err != nil {
		return domain.Analysis{}, err
	}
	now := s.now().UTC()
	return domain.Analysis{
		ID:         uuid.NewString(),
		Company:    rec.Company.LegalName,
		Flags:      flags,
		Financials: rec.Financials,
		CreatedAt:  now,
	}, nil
}

// Submit evaluates doc and makes it the current analysis of the session,
// replacing any earlier upload.
func (s *Service) Submit(ctx context.Context, sessionID string, doc io.Reader) (domain.Analysis, error) {
	if sessionID == "" {
		return domain.Analysis{}, fmt.Errorf("submit: empty session id")
	}
	a, err := s.Evaluate(ctx, doc)
	if err != nil {
		return domain.Analysis{}, err
	}
	a.SessionID = sessionID
	if s.ttl > 0 {
		a.ExpiresAt = a.CreatedAt.Add(s.ttl)
	}
	if err := s.repo.Save(ctx, a); err != nil {
		return domain.Analysis{}, fmt.Errorf("save analysis: %w", err)
	}
	return a, nil
}

// Current returns the session's analysis, or domain.ErrNotFound when there is
// none or it has expired.
func (s *Service) Current(ctx context.Context, sessionID string) (domain.Analysis, error) {
	a, found, err := s.repo.Latest(ctx, sessionID)
	if err != nil {
		return domain.Analysis{}, err
	}
	if !found || a.Expired(s.now()) {
		return domain.Analysis{}, domain.ErrNotFound
	}
	return a, nil
}
