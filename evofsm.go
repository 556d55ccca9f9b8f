package evofsm

import (
	"log/slog"
	"math/rand/v2"

	"github.com/evofsm/evofsm/internal/logging"
	"github.com/evofsm/evofsm/internal/minimize"
	"github.com/evofsm/evofsm/internal/mutation"
	"github.com/evofsm/evofsm/internal/runtime"
	"github.com/evofsm/evofsm/internal/validator"
	"github.com/evofsm/evofsm/pkg/domain"
)

// Machine is a synthesized, executable finite state machine.
type Machine = runtime.Machine

// RunLog records one run of a machine; see the runtime package.
type RunLog = runtime.RunLog

// Engine is the high-level entry point. It bundles an alphabet with the
// engine configuration (mutation rates, state budget, empty-final policy)
// and the explicit collaborators (random source, logger), and exposes the
// genome and machine operations on top of the internal packages.
type Engine struct {
	alphabet        *domain.Alphabet
	rates           domain.MutationRates
	maxStates       int
	allowEmptyFinal bool
	rng             domain.Rand
	logger          *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithRates sets the mutation rates.
func WithRates(rates domain.MutationRates) Option {
	return func(e *Engine) {
		e.rates = rates
	}
}

// WithMaxStates caps the number of states a mutated genome may grow to.
func WithMaxStates(n int) Option {
	return func(e *Engine) {
		e.maxStates = n
	}
}

// WithAllowEmptyFinalStates configures whether a genome without final states
// is acceptable. Acceptors usually want this off; pure transducers on.
func WithAllowEmptyFinalStates(allow bool) Option {
	return func(e *Engine) {
		e.allowEmptyFinal = allow
	}
}

// WithRand injects the random source used by all stochastic operations.
func WithRand(rng domain.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithLogger sets the structured logger for engine diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an Engine over the given alphabet. Without options it uses
// the default mutation rates, a state budget of 3, empty final-state sets
// allowed, an unseeded random source, and a no-op logger.
func New(alphabet *domain.Alphabet, opts ...Option) *Engine {
	e := &Engine{
		alphabet:        alphabet,
		rates:           domain.DefaultRates(),
		maxStates:       3,
		allowEmptyFinal: true,
		rng:             rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		logger:          logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Alphabet returns the engine's alphabet.
func (e *Engine) Alphabet() *domain.Alphabet { return e.alphabet }

// Rates returns the configured mutation rates.
func (e *Engine) Rates() domain.MutationRates { return e.rates }

// RandomGenome builds a fresh random genome with the given state count.
func (e *Engine) RandomGenome(nStates int, randomEmission bool) domain.Genome {
	return mutation.RandomGenome(e.alphabet, nStates, randomEmission, e.rng)
}

// Mutate applies one round of mutation and returns the offspring.
func (e *Engine) Mutate(g domain.Genome) domain.Genome {
	return mutation.MutateGenome(g, e.rates, e.alphabet, e.rng, e.maxStates, e.allowEmptyFinal, e.logger)
}

// Validate checks a genome for well-formedness.
func (e *Engine) Validate(g domain.Genome) domain.ValidationFlags {
	return validator.Validate(e.alphabet, g, e.allowEmptyFinal)
}

// NewMachine synthesizes an uninitialized machine for a genome. The caller
// owns the lifecycle: Init before use, Free exactly once when done.
func (e *Engine) NewMachine(g domain.Genome) *Machine {
	return runtime.NewMachine(e.alphabet, g, e.logger)
}

// Minimize reduces an initialized machine to its canonical form and encodes
// the result back into a genome with fresh contiguous state ids.
func (e *Engine) Minimize(m *Machine) domain.Genome {
	states, transitions := minimize.Minimize(m)
	return minimize.EncodeGenome(m, states, transitions, false)
}

// Run is a convenience wrapper: it synthesizes a machine for the genome,
// runs the input string against it, and tears the machine down again. The
// run log is written into rlog, which may be nil when only flags matter.
func (e *Engine) Run(g domain.Genome, input string, rlog *RunLog) domain.RunFlags {
	if rlog == nil {
		rlog = &RunLog{}
	}

	m := e.NewMachine(g)
	m.Init()
	defer m.Free()
	m.Reset()

	return m.Run(e.alphabet.StringToSymbols(input), rlog)
}
