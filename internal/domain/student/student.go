package student

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// MinScore and MaxScore bound Student.Score.
	MinScore = 0.0
	MaxScore = 10.0
)

// ID is the server-assigned identifier of a student.
type ID int64

// String renders the identifier in base 10.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseID parses a positive base-10 identifier.
func ParseID(raw string) (ID, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, NewValidationError("id", fmt.Sprintf("invalid student id %q", raw))
	}
	if value <= 0 {
		return 0, NewValidationError("id", fmt.Sprintf("student id must be positive, got %d", value))
	}
	return ID(value), nil
}

// Student is the entity exposed by the remote service.
type Student struct {
	ID      ID      `json:"id"`
	Name    string  `json:"name"`
	Age     int     `json:"age"`
	Program string  `json:"program"`
	Score   float64 `json:"score"`
}

// Request projects the student onto its mutation payload.
func (s Student) Request() Request {
	return Request{
		Name:    s.Name,
		Age:     s.Age,
		Program: s.Program,
		Score:   s.Score,
	}
}

// Matches reports whether the student's attributes equal the request's.
func (s Student) Matches(req Request) bool {
	return s.Request() == req
}

// Request is the payload for create and update. The identifier travels in
// the path for update and is absent for create.
type Request struct {
	Name    string  `json:"name"`
	Age     int     `json:"age"`
	Program string  `json:"program"`
	Score   float64 `json:"score"`
}

// Validate ensures the request satisfies the entity constraints.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return NewValidationError("name", "name must be non-empty")
	}
	if r.Age <= 0 {
		return NewValidationError("age", fmt.Sprintf("age must be positive, got %d", r.Age))
	}
	if strings.TrimSpace(r.Program) == "" {
		return NewValidationError("program", "program must be non-empty")
	}
	if math.IsNaN(r.Score) || r.Score < MinScore || r.Score > MaxScore {
		return NewValidationError("score", fmt.Sprintf("score must be between %.1f and %.1f, got %v", MinScore, MaxScore, r.Score))
	}
	return nil
}

// WithID materialises the request as a student with the given identifier.
func (r Request) WithID(id ID) Student {
	return Student{
		ID:      id,
		Name:    r.Name,
		Age:     r.Age,
		Program: r.Program,
		Score:   r.Score,
	}
}
