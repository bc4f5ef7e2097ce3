package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/keyforge/internal/adapter"
	"github.com/MKhiriev/keyforge/internal/crypto"
	"github.com/MKhiriev/keyforge/internal/logger"
	"github.com/MKhiriev/keyforge/internal/surface"
	"github.com/MKhiriev/keyforge/internal/utils"
	"github.com/MKhiriev/keyforge/internal/validators"
	"github.com/MKhiriev/keyforge/models"
)

// DefaultRequestTimeout bounds a generation call when no timeout is given.
const DefaultRequestTimeout = 30 * time.Second

// Call is one issued generation request. It is created by Submit and run
// with Do, usually off the UI goroutine.
type Call struct {
	Ticket

	ctx     context.Context
	request models.GenerationRequest
	adapter adapter.GenerationAdapter
	timeout time.Duration
	logger  *logger.Logger
}

// Request returns the validated request the call sends.
func (c *Call) Request() models.GenerationRequest {
	return c.request
}

// Settled is the outcome of a call.
type Settled struct {
	Ticket

	Request  models.GenerationRequest
	Envelope models.Envelope
	Err      error
	Took     time.Duration
}

// Do sends the request and waits at most the call's timeout for the answer.
// Failures are reported in the outcome, never returned or panicked.
func (c *Call) Do() Settled {
	ctx := utils.WithRequestID(c.ctx, c.RequestID)
	ctx = c.logger.WithContext(ctx)
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	started := time.Now()
	env, err := c.adapter.Generate(ctx, c.request)
	took := time.Since(started)

	if err != nil {
		c.logger.Warn().Err(err).Dur("took", took).Msg("generation call failed")
	}

	return Settled{
		Ticket:   c.Ticket,
		Request:  c.request,
		Envelope: env,
		Err:      err,
		Took:     took,
	}
}

type generationService struct {
	adapter   adapter.GenerationAdapter
	builder   validators.RequestBuilder
	surface   *surface.Manager
	inspector crypto.KeyInspector
	sequencer *Sequencer
	ids       utils.IDGenerator
	timeout   time.Duration

	logger *logger.Logger
}

// NewGenerationService wires the orchestrator. A non-positive timeout falls
// back to DefaultRequestTimeout.
func NewGenerationService(
	generationAdapter adapter.GenerationAdapter,
	builder validators.RequestBuilder,
	manager *surface.Manager,
	inspector crypto.KeyInspector,
	ids utils.IDGenerator,
	timeout time.Duration,
	log *logger.Logger,
) GenerationService {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	return &generationService{
		adapter:   generationAdapter,
		builder:   builder,
		surface:   manager,
		inspector: inspector,
		sequencer: NewSequencer(),
		ids:       ids,
		timeout:   timeout,
		logger:    log,
	}
}

// Submit implements [GenerationService].
func (s *generationService) Submit(ctx context.Context, state UIState, mode models.Mode, form models.FormValues) (UIState, *Call) {
	if mode != state.ActiveMode {
		state = s.SwitchTab(state, mode)
	}

	s.surface.Clear()
	state = state.Dismiss()

	req, err := s.builder.Build(ctx, mode, form)
	if err != nil {
		// a rejected submission supersedes whatever the mode still has in flight
		s.sequencer.Invalidate(mode)
		msg := Humanize(mode, err)
		s.logger.Debug().Err(err).Str("mode", mode.String()).Msg("generation form rejected")
		s.surface.ShowError(msg)
		return state.EndLoading().WithError(msg), nil
	}

	ticket := Ticket{
		Mode:      mode,
		Seq:       s.sequencer.Next(mode),
		RequestID: s.ids.Generate(),
	}
	callLog := s.logger.GetChildLogger()
	callLog.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("mode", mode.String()).
			Uint64("seq", ticket.Seq).
			Str("request_id", ticket.RequestID)
	})
	callLog.Info().Msg("generation request issued")

	return state.BeginLoading(ticket), &Call{
		Ticket:  ticket,
		ctx:     context.WithoutCancel(ctx),
		request: req,
		adapter: s.adapter,
		timeout: s.timeout,
		logger:  callLog,
	}
}

// Settle implements [GenerationService].
func (s *generationService) Settle(state UIState, outcome Settled) UIState {
	if !s.isCurrent(state, outcome.Ticket) {
		s.logger.Debug().
			Str("mode", outcome.Mode.String()).
			Uint64("seq", outcome.Seq).
			Str("request_id", outcome.RequestID).
			Msg("discarding superseded generation response")
		return state
	}

	state = state.EndLoading()
	return s.render(state, outcome)
}

// SwitchTab implements [GenerationService].
func (s *generationService) SwitchTab(state UIState, mode models.Mode) UIState {
	s.sequencer.InvalidateAll()
	s.surface.Clear()
	return state.WithTab(mode)
}

// Dismiss implements [GenerationService].
func (s *generationService) Dismiss(state UIState) UIState {
	s.surface.Clear()
	return state.Dismiss()
}

// Health implements [GenerationService].
func (s *generationService) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.adapter.Health(ctx)
}

func (s *generationService) isCurrent(state UIState, t Ticket) bool {
	return t.Mode == state.ActiveMode &&
		state.Loading &&
		state.InFlight.Seq == t.Seq &&
		s.sequencer.IsLatest(t.Mode, t.Seq)
}
