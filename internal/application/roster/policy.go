package roster

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/roster/internal/domain/student"
)

// ReloadPolicy decides how local state is reconciled after a successful
// mutation.
type ReloadPolicy string

const (
	// ReloadFull re-fetches the whole collection and leaves it untouched
	// until the fetch succeeds.
	ReloadFull ReloadPolicy = "full"
	// ReloadPatch applies the mutation to the local collection first,
	// publishes it, then reconciles with a full fetch.
	ReloadPatch ReloadPolicy = "patch"
)

// ParseReloadPolicy parses a configuration value. The empty string selects
// ReloadFull.
func ParseReloadPolicy(raw string) (ReloadPolicy, error) {
	switch ReloadPolicy(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ReloadFull:
		return ReloadFull, nil
	case ReloadPatch:
		return ReloadPatch, nil
	default:
		return "", fmt.Errorf("unknown reload policy %q (want full or patch)", raw)
	}
}

// patch applies a successful mutation to the collection in place of the
// reload it precedes.
func patch(students []student.Student, op Operation, id student.ID, value student.Student) []student.Student {
	switch op {
	case OpCreate:
		if _, exists := indexOf(students, value.ID); exists {
			return students
		}
		return append(students, value)
	case OpUpdate:
		if value.ID == 0 {
			value.ID = id
		}
		if i, exists := indexOf(students, value.ID); exists {
			students[i] = value
		}
		return students
	case OpDelete:
		if i, exists := indexOf(students, id); exists {
			return append(students[:i], students[i+1:]...)
		}
		return students
	default:
		return students
	}
}

func indexOf(students []student.Student, id student.ID) (int, bool) {
	for i, st := range students {
		if st.ID == id {
			return i, true
		}
	}
	return -1, false
}
