package planner

import (
	"go.uber.org/zap"

	"github.com/viam-labs/ladderplan/oracle"
)

// options holds the configurable, defaulted state of a Planner.
// Cribbed from the functional-option pattern used throughout
// go.viam.com/rdk (e.g. robot/web's Option/apply).
type options struct {
	cost   oracle.CostFunc
	logger *zap.Logger
}

// Option configures a Planner at construction time.
type Option interface {
	apply(*options)
}

type funcOption struct {
	f func(*options)
}

func (fo *funcOption) apply(o *options) { fo.f(o) }

func newFuncOption(f func(*options)) *funcOption {
	return &funcOption{f: f}
}

// WithCostFunction overrides the default L1 edge-cost metric.
func WithCostFunction(cost oracle.CostFunc) Option {
	return newFuncOption(func(o *options) {
		o.cost = cost
	})
}

// WithLogger attaches a structured logger. Every mutating operation logs
// one line; a nil logger (the default) discards them.
func WithLogger(logger *zap.Logger) Option {
	return newFuncOption(func(o *options) {
		o.logger = logger
	})
}
