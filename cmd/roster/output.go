package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/alexisbeaulieu97/roster/internal/domain/student"
	"github.com/alexisbeaulieu97/roster/pkg/diff"
)

func writeJSON(w io.Writer, payload any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func renderStudent(w io.Writer, st student.Student) {
	fmt.Fprintf(w, "Student: %d\n", st.ID)
	fmt.Fprintf(w, "Name:    %s\n", st.Name)
	fmt.Fprintf(w, "Age:     %d\n", st.Age)
	fmt.Fprintf(w, "Program: %s\n", st.Program)
	fmt.Fprintf(w, "Score:   %.2f\n", st.Score)
}

// studentFields is the record form compared by `roster update`.
func studentFields(st student.Student) string {
	return diff.Fields(
		"name", st.Name,
		"age", strconv.Itoa(st.Age),
		"program", st.Program,
		"score", strconv.FormatFloat(st.Score, 'f', -1, 64),
	)
}
