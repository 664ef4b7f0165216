// Package errors provides error handling for lekidtools.
//
// This package re-exports github.com/cockroachdb/errors, providing stack
// traces, wrapping and user-facing hints:
//
//	if err := lekid.CheckGeometry(l, w); err != nil {
//	    return errors.Wrap(err, "inductive meander")
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is            = crdb.Is
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	FlattenHints  = crdb.FlattenHints
	GetAllDetails = crdb.GetAllDetails
)

// Sentinel errors. Wrap them with Wrapf to add context while keeping Is
// matching intact.
var (
	// ErrInvalidParameter indicates a physical parameter outside its domain
	ErrInvalidParameter = New("invalid parameter")

	// ErrDegenerate indicates inputs that make a formula divide by zero
	ErrDegenerate = New("degenerate input")

	// ErrUnsupported indicates a netlist construct or analysis this tool does not handle
	ErrUnsupported = New("unsupported")
)
