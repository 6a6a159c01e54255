package resolver

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Severity ranks a diagnostic.
type Severity int

const (
	// SeverityWarning is advisory.
	SeverityWarning Severity = iota
	// SeverityError prevents downstream type checking for the reference.
	SeverityError
)

// String implements fmt.Stringer
func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Diagnostic is one user-visible resolution problem, located in source.
type Diagnostic struct {
	// Severity ranks the problem.
	Severity Severity
	// Pos locates the problem, zero for import-declaration errors.
	Pos Position
	// Err is the structured error value.
	Err error
}

// String renders the diagnostic in file:line:col form.
func (d *Diagnostic) String() string {
	if d.Pos == (Position{}) {
		return fmt.Sprintf("%v: %v", d.Severity, d.Err)
	}
	return fmt.Sprintf("%v: %v: %v", d.Pos, d.Severity, d.Err)
}

// Reporter collects structured diagnostics for one compilation unit and
// mirrors them to the logger.  Errors never abort the unit; every import
// declaration and reference gets its own diagnostic.
type Reporter struct {
	logger zerolog.Logger
	diags  []*Diagnostic
}

// NewReporter constructs an empty reporter.
func NewReporter(logger zerolog.Logger) *Reporter {
	return &Reporter{logger: logger}
}

// ReportImportErrors records one diagnostic per faulty import declaration.
func (r *Reporter) ReportImportErrors(errs []error) {
	for _, err := range errs {
		r.diags = append(r.diags, &Diagnostic{
			Severity: SeverityError,
			Err:      err,
		})
		r.logger.Error().Err(err).Msg("bad import declaration")
	}
}

// ReportResult records a diagnostic for a failed resolution; resolved
// results are ignored.
func (r *Reporter) ReportResult(result ResolutionResult) {
	if result.IsResolved() {
		return
	}
	diag := &Diagnostic{
		Severity: SeverityError,
		Pos:      result.Ref.Pos,
		Err:      result.Err,
	}
	r.diags = append(r.diags, diag)

	event := r.logger.Error().
		Str("ref", result.Ref.String()).
		Stringer("pos", result.Ref.Pos)
	var ambiguous *AmbiguousReferenceError
	if errors.As(result.Err, &ambiguous) {
		owners := make([]string, len(ambiguous.Candidates))
		for i, sym := range ambiguous.Candidates {
			owners[i] = sym.Owner()
		}
		event = event.Strs("candidates", owners)
	}
	event.Err(result.Err).Msg("unresolvable reference")
}

// Diagnostics returns the collected diagnostics in report order.
func (r *Reporter) Diagnostics() []*Diagnostic {
	return r.diags
}

// HasErrors returns true if any error-severity diagnostic was reported.
func (r *Reporter) HasErrors() bool {
	for _, diag := range r.diags {
		if diag.Severity == SeverityError {
			return true
		}
	}
	return false
}
