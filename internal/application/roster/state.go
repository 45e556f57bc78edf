package roster

import "github.com/alexisbeaulieu97/roster/internal/domain/student"

// State is an immutable snapshot of the controller. Every published value is
// a deep copy; mutating it has no effect on the controller.
type State struct {
	// Students holds the result of the last successful list fetch, in
	// server order.
	Students []student.Student
	// Selected is set by a successful load-one and cleared explicitly.
	Selected *student.Student
	// Loading is true while an action is in flight.
	Loading bool
	// Err is the failure of the most recent action, if any.
	Err *student.DomainError
	// Succeeded is true after a successful create or update.
	Succeeded bool
	// Saved is the student returned by the create or update that set
	// Succeeded. It survives the reload that follows the mutation.
	Saved *student.Student
	// Version increases by one with every published snapshot.
	Version uint64
	// Operation is the action that produced the snapshot.
	Operation Operation
}

// ErrorMessage returns the display text of Err, or "" when there is none.
func (s State) ErrorMessage() string {
	if s.Err == nil {
		return ""
	}
	if msg := s.Err.Summary(); msg != "" {
		return msg
	}
	return s.Operation.FallbackMessage()
}

// Find looks up a student in the collection by identifier.
func (s State) Find(id student.ID) (student.Student, bool) {
	for _, st := range s.Students {
		if st.ID == id {
			return st, true
		}
	}
	return student.Student{}, false
}

// LogFields summarises the snapshot for structured logs.
func (s State) LogFields() []interface{} {
	fields := []interface{}{
		"version", s.Version,
		"operation", string(s.Operation),
		"loading", s.Loading,
		"succeeded", s.Succeeded,
		"students", len(s.Students),
	}
	if s.Selected != nil {
		fields = append(fields, "selected_id", s.Selected.ID.String())
	}
	if s.Err != nil {
		fields = append(fields, "error_code", string(s.Err.Code))
	}
	return fields
}

func (s State) clone() State {
	out := s
	if s.Students != nil {
		out.Students = make([]student.Student, len(s.Students))
		copy(out.Students, s.Students)
	}
	if s.Selected != nil {
		selected := *s.Selected
		out.Selected = &selected
	}
	if s.Saved != nil {
		saved := *s.Saved
		out.Saved = &saved
	}
	if s.Err != nil {
		errCopy := *s.Err
		if s.Err.Context != nil {
			errCopy.Context = make(map[string]interface{}, len(s.Err.Context))
			for k, v := range s.Err.Context {
				errCopy.Context[k] = v
			}
		}
		out.Err = &errCopy
	}
	return out
}
