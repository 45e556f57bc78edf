package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/roster/internal/domain/student"
)

func TestStateErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Empty(t, State{}.ErrorMessage())
	assert.Equal(t, "not found", State{Err: student.NewHTTPError(404, "Not Found")}.ErrorMessage())
	assert.Equal(t, "error creating student",
		State{Operation: OpCreate, Err: &student.DomainError{Code: student.ErrCodeInternal}}.ErrorMessage())
}

func TestStateLogFields(t *testing.T) {
	t.Parallel()

	selected := student.Student{ID: 4}
	fields := State{
		Version:   3,
		Operation: OpLoadOne,
		Selected:  &selected,
		Err:       student.NewEmptyResultError(""),
	}.LogFields()

	assert.Contains(t, fields, "selected_id")
	assert.Contains(t, fields, "4")
	assert.Contains(t, fields, string(student.ErrCodeEmptyResult))
}

func TestOperationIsMutation(t *testing.T) {
	t.Parallel()

	for _, op := range []Operation{OpCreate, OpUpdate, OpDelete} {
		assert.True(t, op.IsMutation(), op)
	}
	for _, op := range []Operation{OpLoadAll, OpLoadOne, OpClearError, OpNone} {
		assert.False(t, op.IsMutation(), op)
	}
}
