// Package errors provides structured error handling and warnings for varbench.
// It wraps cockroachdb/errors so every error carries a stack trace, and each
// structured type knows how to marshal itself into a zerolog event.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================

var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		log.Printf("varbench-warning: %v\n", w)
	}
	// zerolog warn function, injected lazily to avoid a circular import
	// with pkg/log.
	zerologWarnFunc func(warning error)
)

// SetWarningHandler replaces the library-wide warning handler. Use it to
// silence or redirect warnings such as DegenerateMetricWarning.
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc installs a zerolog-backed warning sink.
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn emits a warning through the zerolog sink when one is installed,
// otherwise through the plain handler.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	Warning types
//
// ===========================================================================

// DegenerateMetricWarning is emitted when a score cannot be computed from
// its inputs, e.g. a rank correlation over a constant importance vector.
// The score itself is reported as 0; this warning is the diagnostic trail.
type DegenerateMetricWarning struct {
	Metric string
	Reason string
}

func (w *DegenerateMetricWarning) Error() string {
	return fmt.Sprintf("'%s' is degenerate and being set to 0: %s", w.Metric, w.Reason)
}

// MarshalZerologObject adds structured warning fields to a zerolog event.
func (w *DegenerateMetricWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("metric", w.Metric).
		Str("reason", w.Reason).
		Str("type", "DegenerateMetricWarning")
}

// NewDegenerateMetricWarning creates a new DegenerateMetricWarning.
func NewDegenerateMetricWarning(metric, reason string) *DegenerateMetricWarning {
	return &DegenerateMetricWarning{Metric: metric, Reason: reason}
}

// FitFailureWarning is emitted when a cross-validator or estimator fails to
// fit and the harness recovers by nulling out the dependent scores.
type FitFailureWarning struct {
	Op  string
	Err error
}

func (w *FitFailureWarning) Error() string {
	return fmt.Sprintf("%s failed to fit, dependent scores set to null: %v", w.Op, w.Err)
}

// MarshalZerologObject adds structured warning fields to a zerolog event.
func (w *FitFailureWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("operation", w.Op).
		AnErr("cause", w.Err).
		Str("type", "FitFailureWarning")
}

// NewFitFailureWarning creates a new FitFailureWarning.
func NewFitFailureWarning(op string, err error) *FitFailureWarning {
	return &FitFailureWarning{Op: op, Err: err}
}

// ===========================================================================
//
//	Structured error types
//
// ===========================================================================

// ConfigError reports an unusable generator or harness configuration, such
// as an unsupported distribution or importance-ranking mode. It is fatal
// and never retried.
type ConfigError struct {
	Param     string
	Value     interface{}
	Supported []string
}

func (e *ConfigError) Error() string {
	if len(e.Supported) > 0 {
		return fmt.Sprintf("varbench: unsupported %s %q. Choose from %v", e.Param, e.Value, e.Supported)
	}
	return fmt.Sprintf("varbench: unsupported %s %q", e.Param, e.Value)
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *ConfigError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param", e.Param).
		Interface("value", e.Value).
		Strs("supported", e.Supported).
		Str("type", "ConfigError")
}

// NewConfigError creates a new ConfigError with a stack trace attached.
func NewConfigError(param string, value interface{}, supported ...string) error {
	err := &ConfigError{Param: param, Value: value, Supported: supported}
	return errors.WithStack(err)
}

// ValidationError reports an input parameter that failed validation, e.g.
// a negative row count or an interaction referencing a non-important column.
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("varbench: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError creates a new ValidationError with a stack trace attached.
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// DimensionError reports a shape mismatch between two inputs.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("varbench: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("type", "DimensionError")
}

// NewDimensionError creates a new DimensionError with a stack trace attached.
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValueError reports an argument whose value is invalid for the operation.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("varbench: %s: %s", e.Op, e.Message)
}

// NewValueError creates a new ValueError with a stack trace attached.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// NotFittedError is returned when Predict or Score is called on an
// estimator before Fit.
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("varbench: %s: this model is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a new NotFittedError with a stack trace attached.
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As reports whether err can be cast to the target type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an existing error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an existing error with a format string.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack attaches a stack trace to an error.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Common sentinel errors
//
// ===========================================================================

var (
	// ErrEmptyData is returned when empty data is passed in.
	ErrEmptyData = New("empty data")

	// ErrSingularMatrix is returned when a matrix cannot be inverted.
	ErrSingularMatrix = New("singular matrix")
)
