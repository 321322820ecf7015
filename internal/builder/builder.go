// Package builder assembles fiscal documents field by field, enforcing
// the registrar's structural and value constraints as it goes. Every
// operation validates all of its inputs first and only then commits a
// fully built sub-structure, so a failed call never leaves a partial
// write behind.
//
// A builder holds at most one in-progress order and one in-progress
// correction. It is a single-owner, single-writer structure: callers
// needing concurrent assembly use one builder per logical document.
package builder

import (
	"github.com/rezonia/orangedata-go/internal/model"
)

// Kind selects which in-progress document an operation targets.
type Kind int

const (
	KindOrder Kind = iota + 1
	KindCorrection
)

// DefaultGroup is the sentinel device group used when none is given.
const DefaultGroup = "Main"

// Builder accumulates one order and one correction document.
type Builder struct {
	inn          string
	defaultGroup string

	order     *model.OrderDocument
	orderDone bool

	correction     *model.CorrectionDocument
	correctionDone bool
}

// Option configures a Builder.
type Option func(*Builder)

// WithDefaultGroup overrides the sentinel device group.
func WithDefaultGroup(group string) Option {
	return func(b *Builder) {
		if group != "" {
			b.defaultGroup = group
		}
	}
}

// New creates a builder bound to the given taxpayer identifier.
func New(inn string, opts ...Option) *Builder {
	b := &Builder{
		inn:          inn,
		defaultGroup: DefaultGroup,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Order returns the in-progress order document, or nil.
func (b *Builder) Order() *model.OrderDocument {
	return b.order
}

// Correction returns the in-progress correction document, or nil.
func (b *Builder) Correction() *model.CorrectionDocument {
	return b.correction
}

// CloseOrder finalizes the in-progress order and returns it. The
// document is retained so the caller can re-submit after a transient
// transport failure or poll its status; the next BeginOrder discards it.
func (b *Builder) CloseOrder() (*model.OrderDocument, error) {
	if b.order == nil {
		return nil, errNoOrder()
	}
	b.orderDone = true
	return b.order, nil
}

// CloseCorrection finalizes the in-progress correction and returns it.
func (b *Builder) CloseCorrection() (*model.CorrectionDocument, error) {
	if b.correction == nil {
		return nil, errNoCorrection()
	}
	b.correctionDone = true
	return b.correction, nil
}

// State errors share the validation taxonomy: they are caller mistakes
// reported at the offending operation, with no state change.

func errNoOrder() error {
	return model.NewValidationError("document", nil, "state", "no order in progress")
}

func errNoCorrection() error {
	return model.NewValidationError("document", nil, "state", "no correction in progress")
}

func errOrderClosed() error {
	return model.NewValidationError("document", nil, "state", "order already finalized")
}

func errCorrectionClosed() error {
	return model.NewValidationError("document", nil, "state", "correction already finalized")
}

func (b *Builder) mutableOrder() (*model.OrderDocument, error) {
	if b.order == nil {
		return nil, errNoOrder()
	}
	if b.orderDone {
		return nil, errOrderClosed()
	}
	return b.order, nil
}

func (b *Builder) mutableCorrection() (*model.CorrectionDocument, error) {
	if b.correction == nil {
		return nil, errNoCorrection()
	}
	if b.correctionDone {
		return nil, errCorrectionClosed()
	}
	return b.correction, nil
}
