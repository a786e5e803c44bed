// Cinecanon - Arthouse Film Catalog and Discovery Ranking
// Copyright 2026 A. Aubertine (aubertine)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/aubertine/cinecanon

// Package validation provides struct validation using go-playground/validator v10.
//
// This package wraps the go-playground/validator library to provide a
// thread-safe singleton validator instance with custom validators and
// human-readable error messages.
//
// # Overview
//
// The package provides:
//   - Thread-safe singleton validator (initialized once, cached struct info)
//   - Error translation to human-readable messages
//   - Built-in validator support (min, max, oneof, gte, lte, etc.)
//   - A custom "decade" validator for decade-bucketed film queries
//
// # Quick Start
//
//	type DecadeRequest struct {
//	    Decade int `validate:"required,decade"`
//	    Limit  int `validate:"min=1,max=500"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    // verr.Error() lists every failing field
//	    // verr.Errors() exposes the individual field failures
//	}
//
// # Custom Validators
//
// decade: the value must be a non-negative multiple of ten:
//
//	1960  -> valid
//	1965  -> invalid ("Decade must be a decade, e.g. 1960")
//	-10   -> invalid
//
// # Error Types
//
// FieldError represents a single field validation failure with accessors
// for the field name, failing tag, tag parameter, and offending value.
// RequestValidationError aggregates every FieldError of one request and
// renders them joined with "; " through its Error method.
//
// # Thread Safety
//
// The singleton validator is initialized once and safe for concurrent use:
//
//	validate := validation.GetValidator()  // Thread-safe
//	err := validation.ValidateStruct(&req) // Thread-safe
//
// # See Also
//
//   - internal/discovery: Ranking request validation
//   - github.com/go-playground/validator/v10: Underlying library
package validation
