package submit

// FormEvent is the pipeline's view of a user-initiated submission
// trigger. The embedding environment (a browser page, the CLI, a test)
// supplies the implementation; the pipeline only ever suppresses the
// default action and reads the bound values.
type FormEvent interface {
	// PreventDefault suppresses whatever native action would otherwise
	// run (for a real form, navigation). Called exactly once per
	// HandleEvent invocation, before anything else.
	PreventDefault()

	// FormID identifies the owning form. Overlapping submissions with
	// the same FormID share a single in-flight request.
	FormID() string

	// FieldValues returns the field-name to value mapping read from the
	// triggering context.
	FieldValues() map[string]string

	// TargetURL returns the URL from the form's URL-bearing field, or
	// "" when the form has none and the pipeline endpoint applies.
	TargetURL() string
}

// BasicEvent is a plain-value FormEvent for embeddings without a real
// event object (the CLI flow, tests).
type BasicEvent struct {
	ID     string
	Values map[string]string
	URL    string

	prevented int
}

func (e *BasicEvent) PreventDefault()                { e.prevented++ }
func (e *BasicEvent) FormID() string                 { return e.ID }
func (e *BasicEvent) FieldValues() map[string]string { return e.Values }
func (e *BasicEvent) TargetURL() string              { return e.URL }

// DefaultPrevented reports how many times PreventDefault ran.
func (e *BasicEvent) DefaultPrevented() int { return e.prevented }
