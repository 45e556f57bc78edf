package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/roster/internal/domain/student"
)

type requestFlags struct {
	name    string
	age     int
	program string
	score   float64
}

func (f *requestFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Student name")
	cmd.Flags().IntVar(&f.age, "age", 0, "Student age (positive)")
	cmd.Flags().StringVar(&f.program, "program", "", "Program of study")
	cmd.Flags().Float64Var(&f.score, "score", 0, "Score between 0 and 10")
}

// request assembles a Request from the flags.
func (f *requestFlags) request() student.Request {
	return student.Request{Name: f.name, Age: f.age, Program: f.program, Score: f.score}
}

// overlay applies only the flags the user set on top of base.
func (f *requestFlags) overlay(cmd *cobra.Command, base student.Request) student.Request {
	if cmd.Flags().Changed("name") {
		base.Name = f.name
	}
	if cmd.Flags().Changed("age") {
		base.Age = f.age
	}
	if cmd.Flags().Changed("program") {
		base.Program = f.program
	}
	if cmd.Flags().Changed("score") {
		base.Score = f.score
	}
	return base
}

func (f *requestFlags) anyChanged(cmd *cobra.Command) bool {
	for _, name := range []string{"name", "age", "program", "score"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}
