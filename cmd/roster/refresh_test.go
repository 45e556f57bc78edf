package main

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/roster/internal/domain/student"
	"github.com/alexisbeaulieu97/roster/internal/ports"
)

// flakyListTransport stores mutations in memory and answers every List with
// 503, the way a service behind an overloaded read path would.
type flakyListTransport struct {
	mu       sync.Mutex
	students map[student.ID]student.Student
	nextID   student.ID
}

func newFlakyListTransport(seed ...student.Student) *flakyListTransport {
	tr := &flakyListTransport{students: map[student.ID]student.Student{}, nextID: 1}
	for _, s := range seed {
		tr.students[s.ID] = s
		if s.ID >= tr.nextID {
			tr.nextID = s.ID + 1
		}
	}
	return tr
}

func (f *flakyListTransport) List(context.Context) (ports.Response[[]student.Student], error) {
	return ports.Response[[]student.Student]{StatusCode: http.StatusServiceUnavailable, Reason: "Service Unavailable"}, nil
}

func (f *flakyListTransport) Get(_ context.Context, id student.ID) (ports.Response[student.Student], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.students[id]
	if !ok {
		return ports.Response[student.Student]{StatusCode: http.StatusNotFound, Reason: "Not Found"}, nil
	}
	return ports.Response[student.Student]{StatusCode: http.StatusOK, Body: &s}, nil
}

func (f *flakyListTransport) Create(_ context.Context, req student.Request) (ports.Response[student.Student], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := req.WithID(f.nextID)
	f.nextID++
	f.students[s.ID] = s
	return ports.Response[student.Student]{StatusCode: http.StatusCreated, Body: &s}, nil
}

func (f *flakyListTransport) Update(_ context.Context, id student.ID, req student.Request) (ports.Response[student.Student], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.students[id]; !ok {
		return ports.Response[student.Student]{StatusCode: http.StatusNotFound, Reason: "Not Found"}, nil
	}
	s := req.WithID(id)
	f.students[id] = s
	return ports.Response[student.Student]{StatusCode: http.StatusOK, Body: &s}, nil
}

func (f *flakyListTransport) Delete(_ context.Context, id student.ID) (ports.Response[struct{}], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.students[id]; !ok {
		return ports.Response[struct{}]{StatusCode: http.StatusNotFound, Reason: "Not Found"}, nil
	}
	delete(f.students, id)
	return ports.Response[struct{}]{StatusCode: http.StatusNoContent}, nil
}

func (f *flakyListTransport) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.students)
}

func appWithTransport(tr ports.StudentTransport) *AppContext {
	app := newAppContext()
	app.Transport = tr
	return app
}

func TestCreateCommand_ReportsSuccessWhenRefreshFails(t *testing.T) {
	tr := newFlakyListTransport(student.Student{ID: 6, Name: "Luis", Age: 22, Program: "Math", Score: 8})

	res := executeWithApp(t, context.Background(), appWithTransport(tr), "create",
		"--name", "Ana", "--age", "20", "--program", "CS", "--score", "9")

	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "Created student 7 (Ana).")
	require.Contains(t, res.stdout, "refreshing the student list failed: 503 - Service Unavailable")
	require.Contains(t, res.logs, "refresh after change failed")
	require.Equal(t, 2, tr.count())
}

func TestUpdateCommand_ReportsSuccessWhenRefreshFails(t *testing.T) {
	tr := newFlakyListTransport(student.Student{ID: 2, Name: "Luis", Age: 22, Program: "Math", Score: 8})

	res := executeWithApp(t, context.Background(), appWithTransport(tr), "update", "2", "--score", "9.5")

	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "Updated student 2.")
	require.Contains(t, res.stdout, "+score: 9.5")
	require.Contains(t, res.stdout, "refreshing the student list failed")
}

func TestDeleteCommand_ReportsSuccessWhenRefreshFails(t *testing.T) {
	tr := newFlakyListTransport(student.Student{ID: 3, Name: "Ana", Age: 20, Program: "CS", Score: 9})

	res := executeWithApp(t, context.Background(), appWithTransport(tr), "delete", "3")

	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "Deleted student 3.")
	require.NotContains(t, res.stdout, "remain")
	require.Contains(t, res.stdout, "refreshing the student list failed")
	require.Zero(t, tr.count())
}

func TestDeleteCommand_FailedMutationIsStillAnError(t *testing.T) {
	tr := newFlakyListTransport()

	res := executeWithApp(t, context.Background(), appWithTransport(tr), "delete", "9")

	require.Error(t, res.err)
	var cmdErr *commandError
	require.True(t, errors.As(res.err, &cmdErr))
	require.Contains(t, res.err.Error(), "Failed to delete student")
	require.Contains(t, res.err.Error(), "not found")
	require.NotContains(t, res.stdout, "refreshing")
}
