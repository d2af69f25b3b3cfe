package challenge

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abhisek/morsely/internal/morse"
)

// WeaknessSource reports the characters a learner struggles with most.
// *tracker.Tracker satisfies it.
type WeaknessSource interface {
	WeakestCharacters(ctx context.Context, n int) ([]string, error)
}

// Service hands out challenges. It prefers the AI generator and falls back
// to the offline generator whenever the AI path fails.
type Service struct {
	weak    WeaknessSource
	ai      Generator
	offline Generator
	config  Config
	log     zerolog.Logger
	newID   func() string

	mu    sync.Mutex
	prior []string
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithGenerator sets the AI generator. Without one every challenge is
// produced offline.
func WithGenerator(g Generator) ServiceOption {
	return func(s *Service) { s.ai = g }
}

// WithOfflineGenerator replaces the default offline generator.
func WithOfflineGenerator(g Generator) ServiceOption {
	return func(s *Service) { s.offline = g }
}

// WithLogger sets the service logger.
func WithLogger(log zerolog.Logger) ServiceOption {
	return func(s *Service) { s.log = log }
}

// WithIDFunc overrides challenge id generation.
func WithIDFunc(f func() string) ServiceOption {
	return func(s *Service) { s.newID = f }
}

// NewService builds a Service reading weaknesses from weak.
func NewService(weak WeaknessSource, cfg Config, opts ...ServiceOption) *Service {
	s := &Service{
		weak:   weak,
		config: cfg,
		log:    zerolog.Nop(),
		newID:  uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	if s.offline == nil {
		s.offline = NewOfflineGenerator(cfg)
	}
	return s
}

// Next returns a challenge targeting the focusCount weakest characters.
// A non-positive focusCount uses the configured default.
func (s *Service) Next(ctx context.Context, focusCount int) (*Challenge, error) {
	if focusCount <= 0 {
		focusCount = s.config.FocusCount
	}

	focus, err := s.weak.WeakestCharacters(ctx, focusCount)
	if err != nil {
		return nil, fmt.Errorf("weakest characters: %w", err)
	}
	if len(focus) == 0 {
		focus = append([]string(nil), StarterFocus...)
	}

	input := GenerateInput{
		Focus: focus,
		Prior: s.recent(),
		Words: s.config.Words,
	}

	text, source := "", SourceOffline
	if s.ai != nil {
		text, err = s.ai.Generate(ctx, input)
		if err == nil {
			source = SourceAI
		} else {
			s.log.Warn().Err(err).
				Strs("focus", focus).
				Bool("rejected", IsValidationError(err)).
				Msg("AI challenge failed, using offline generator")
		}
	}
	if source == SourceOffline {
		text, err = s.offline.Generate(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("offline challenge: %w", err)
		}
	}

	s.remember(text)

	ch := &Challenge{
		ID:     s.newID(),
		Text:   text,
		Morse:  morse.Encode(text),
		Focus:  focus,
		Source: source,
	}
	s.log.Debug().Str("id", ch.ID).Str("source", string(source)).Strs("focus", focus).Msg("challenge issued")
	return ch, nil
}

func (s *Service) recent() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.prior...)
}

func (s *Service) remember(text string) {
	max := s.config.MaxPrior
	if max <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prior = append(s.prior, text)
	if len(s.prior) > max {
		s.prior = s.prior[len(s.prior)-max:]
	}
}
