package validate

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status distinguishes a check that passed from one that was never really
// performed.
type Status int

const (
	Passed Status = iota
	Failed
	// Unchecked marks a validator that ran but cannot vouch for the property
	// it names. It never blocks the overall verdict and always carries a
	// warning explaining what was not checked.
	Unchecked
)

func (s Status) String() string {
	switch s {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	case Unchecked:
		return "unchecked"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Result is the outcome of one validator. Theorem violations are reported as
// Errors, never as Go errors, so a failing pattern can still be inspected.
type Result struct {
	Name     string   `json:"name"`
	Status   Status   `json:"status"`
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
	// Details is validator specific: KawasakiDetails, MaekawaDetails,
	// VertexDetails, TabDesignDetails, ThicknessDetails or PairingDetails.
	Details any `json:"details,omitempty"`
}

func newResult(name string) Result {
	return Result{Name: name, Errors: []string{}, Warnings: []string{}}
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// finish derives Valid and Status from the recorded errors.
func (r *Result) finish() Result {
	r.Valid = len(r.Errors) == 0
	switch {
	case r.Status == Unchecked:
	case r.Valid:
		r.Status = Passed
	default:
		r.Status = Failed
	}
	return *r
}

// Report aggregates every validator run over one pattern.
type Report struct {
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Pattern   string    `json:"pattern"`
	// Overall is true iff every result is valid.
	Overall bool `json:"overall"`

	KawasakiJustin Result `json:"kawasakiJustin"`
	Maekawa        Result `json:"maekawa"`
	VertexValidity Result `json:"vertexValidity"`
	TabDesign      Result `json:"tabDesign"`
	Thickness      Result `json:"thickness"`
	TabSlitPairing Result `json:"tabSlitPairing"`
}

// Results returns the six results in a fixed order.
func (r *Report) Results() []Result {
	return []Result{r.KawasakiJustin, r.Maekawa, r.VertexValidity, r.TabDesign, r.Thickness, r.TabSlitPairing}
}

// Errors returns every error across all results, prefixed by validator name.
func (r *Report) Errors() []string {
	var out []string
	for _, res := range r.Results() {
		for _, e := range res.Errors {
			out = append(out, res.Name+": "+e)
		}
	}
	return out
}
