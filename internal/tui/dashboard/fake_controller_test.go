package dashboard

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/roster/internal/application/roster"
	"github.com/alexisbeaulieu97/roster/internal/domain/student"
)

type fakeController struct {
	mu    sync.Mutex
	state roster.State
	calls []string
	ids   []student.ID
}

func newFakeController(students ...student.Student) *fakeController {
	return &fakeController{state: roster.State{Students: students, Version: 1}}
}

func (f *fakeController) record(call string, id student.ID) {
	f.calls = append(f.calls, call)
	if id != 0 {
		f.ids = append(f.ids, id)
	}
}

func (f *fakeController) reply(op roster.Operation, mutate func(*roster.State)) <-chan roster.State {
	f.state.Version++
	f.state.Operation = op
	if mutate != nil {
		mutate(&f.state)
	}
	ch := make(chan roster.State, 1)
	ch <- f.state
	close(ch)
	return ch
}

func (f *fakeController) Snapshot() roster.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *fakeController) LoadAll(context.Context) <-chan roster.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("load_all", 0)
	return f.reply(roster.OpLoadAll, nil)
}

func (f *fakeController) LoadOne(_ context.Context, id student.ID) <-chan roster.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("load_one", id)
	return f.reply(roster.OpLoadOne, func(s *roster.State) {
		for _, st := range s.Students {
			if st.ID == id {
				selected := st
				s.Selected = &selected
				return
			}
		}
		s.Err = student.NewHTTPError(404, "Not Found")
	})
}

func (f *fakeController) Delete(_ context.Context, id student.ID) <-chan roster.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("delete", id)
	return f.reply(roster.OpLoadAll, func(s *roster.State) {
		kept := s.Students[:0:0]
		for _, st := range s.Students {
			if st.ID != id {
				kept = append(kept, st)
			}
		}
		s.Students = kept
	})
}

func (f *fakeController) clear(op roster.Operation, mutate func(*roster.State)) roster.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(string(op), 0)
	return <-f.reply(op, mutate)
}

func (f *fakeController) ClearError() roster.State {
	return f.clear(roster.OpClearError, func(s *roster.State) { s.Err = nil })
}

func (f *fakeController) ClearSucceeded() roster.State {
	return f.clear(roster.OpClearSucceeded, func(s *roster.State) { s.Succeeded = false })
}

func (f *fakeController) ClearSelected() roster.State {
	return f.clear(roster.OpClearSelected, func(s *roster.State) { s.Selected = nil })
}

func (f *fakeController) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func sampleStudents() []student.Student {
	return []student.Student{
		{ID: 1, Name: "Ana", Age: 20, Program: "CS", Score: 9.5},
		{ID: 2, Name: "Luis", Age: 22, Program: "Math", Score: 6.0},
		{ID: 3, Name: "Marta", Age: 19, Program: "Physics", Score: 3.2},
	}
}
