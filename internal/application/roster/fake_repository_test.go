package roster

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/alexisbeaulieu97/roster/internal/domain/student"
)

// fakeRepository is an in-memory StudentRepository with failure injection
// and an optional gate that holds every call until released.
type fakeRepository struct {
	mu       sync.Mutex
	students map[student.ID]student.Student
	nextID   student.ID
	failures map[Operation]*student.DomainError
	calls    []Operation
	gate     chan struct{}

	inFlight    atomic.Int32
	maxInFlight atomic.Int32
}

func newFakeRepository(seed ...student.Student) *fakeRepository {
	repo := &fakeRepository{
		students: make(map[student.ID]student.Student),
		nextID:   1,
		failures: make(map[Operation]*student.DomainError),
	}
	for _, s := range seed {
		repo.students[s.ID] = s
		if s.ID >= repo.nextID {
			repo.nextID = s.ID + 1
		}
	}
	return repo
}

func (f *fakeRepository) failWith(op Operation, err *student.DomainError) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[op] = err
}

func (f *fakeRepository) callLog() []Operation {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Operation(nil), f.calls...)
}

func (f *fakeRepository) enter(op Operation) *student.DomainError {
	n := f.inFlight.Add(1)
	for {
		peak := f.maxInFlight.Load()
		if n <= peak || f.maxInFlight.CompareAndSwap(peak, n) {
			break
		}
	}

	if f.gate != nil {
		<-f.gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, op)
	return f.failures[op]
}

func (f *fakeRepository) leave() {
	f.inFlight.Add(-1)
}

func (f *fakeRepository) sorted() []student.Student {
	out := make([]student.Student, 0, len(f.students))
	for _, s := range f.students {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeRepository) List(context.Context) student.Outcome[[]student.Student] {
	defer f.leave()
	if err := f.enter(OpLoadAll); err != nil {
		return student.Failure[[]student.Student](err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return student.Success(f.sorted())
}

func (f *fakeRepository) Get(_ context.Context, id student.ID) student.Outcome[student.Student] {
	defer f.leave()
	if err := f.enter(OpLoadOne); err != nil {
		return student.Failure[student.Student](err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.students[id]
	if !ok {
		return student.Failure[student.Student](student.NewHTTPError(http.StatusNotFound, "Not Found"))
	}
	return student.Success(s)
}

func (f *fakeRepository) Create(_ context.Context, req student.Request) student.Outcome[student.Student] {
	defer f.leave()
	if err := f.enter(OpCreate); err != nil {
		return student.Failure[student.Student](err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	s := req.WithID(f.nextID)
	f.nextID++
	f.students[s.ID] = s
	return student.Success(s)
}

func (f *fakeRepository) Update(_ context.Context, id student.ID, req student.Request) student.Outcome[student.Student] {
	defer f.leave()
	if err := f.enter(OpUpdate); err != nil {
		return student.Failure[student.Student](err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.students[id]; !ok {
		return student.Failure[student.Student](student.NewHTTPError(http.StatusNotFound, "Not Found"))
	}
	s := req.WithID(id)
	f.students[id] = s
	return student.Success(s)
}

func (f *fakeRepository) Delete(_ context.Context, id student.ID) student.Outcome[struct{}] {
	defer f.leave()
	if err := f.enter(OpDelete); err != nil {
		return student.Failure[struct{}](err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.students[id]; !ok {
		return student.Failure[struct{}](student.NewHTTPError(http.StatusNotFound, "Not Found"))
	}
	delete(f.students, id)
	return student.Success(struct{}{})
}

var _ StudentRepository = (*fakeRepository)(nil)
