package stubserver

import (
	"sort"
	"sync"

	"github.com/alexisbeaulieu97/roster/internal/domain/student"
)

// Store is a concurrency-safe in-memory student table with sequential
// server-assigned identifiers.
type Store struct {
	mu       sync.RWMutex
	students map[student.ID]student.Student
	nextID   student.ID
}

// NewStore creates a store holding the given students. Identifiers of new
// students continue after the highest seeded one.
func NewStore(seed ...student.Student) *Store {
	s := &Store{
		students: make(map[student.ID]student.Student, len(seed)),
		nextID:   1,
	}
	for _, st := range seed {
		s.students[st.ID] = st
		if st.ID >= s.nextID {
			s.nextID = st.ID + 1
		}
	}
	return s
}

// SampleStudents is the data served by `roster serve --seed`.
func SampleStudents() []student.Student {
	return []student.Student{
		{ID: 1, Name: "Ana Torres", Age: 20, Program: "Computer Science", Score: 9.1},
		{ID: 2, Name: "Luis Pérez", Age: 22, Program: "Mathematics", Score: 8.4},
		{ID: 3, Name: "María Gómez", Age: 19, Program: "Physics", Score: 7.8},
		{ID: 4, Name: "Jorge Ramírez", Age: 23, Program: "Chemistry", Score: 6.9},
		{ID: 5, Name: "Sofía Castro", Age: 21, Program: "Biology", Score: 9.6},
	}
}

// List returns all students ordered by identifier.
func (s *Store) List() []student.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]student.Student, 0, len(s.students))
	for _, st := range s.students {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Get returns the student with the given identifier.
func (s *Store) Get(id student.ID) (student.Student, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.students[id]
	return st, ok
}

// Create stores a new student under the next identifier.
func (s *Store) Create(req student.Request) student.Student {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := req.WithID(s.nextID)
	s.nextID++
	s.students[st.ID] = st
	return st
}

// Update replaces an existing student.
func (s *Store) Update(id student.ID, req student.Request) (student.Student, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.students[id]; !ok {
		return student.Student{}, false
	}
	st := req.WithID(id)
	s.students[id] = st
	return st, true
}

// Delete removes a student, reporting whether it existed.
func (s *Store) Delete(id student.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.students[id]; !ok {
		return false
	}
	delete(s.students, id)
	return true
}
