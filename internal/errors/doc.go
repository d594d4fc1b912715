// Package errors provides structured error handling for halfscale.
//
// This package provides:
//   - Structured errors with codes, messages, and metadata
//   - Error context preservation through wrapping
//   - Validation error helpers for constructor configs
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.InvalidArgument("missing required field \"characters\"")
//	err := errors.InvalidArgumentf("position must be a 2-element array, got %d elements", n)
//
// Adding metadata:
//
//	err := errors.InvalidArgument("missing required field").
//	    WithMeta("field", "spriteName")
//
// Wrapping errors:
//
//	if err := json.Unmarshal(data, &room); err != nil {
//	    return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode room")
//	}
//
// # Error Checking
//
// Checking decode errors at the caller:
//
//	if errors.IsInvalidArgument(err) {
//	    // the input document was malformed; nothing was scaled
//	}
package errors
