package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/roster/internal/domain/student"
)

type getOptions struct {
	jsonOutput bool
}

func newGetCmd(app *AppContext) *cobra.Command {
	opts := &getOptions{}

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the student as JSON")

	return cmd
}

func runGet(cmd *cobra.Command, app *AppContext, rawID string, opts *getOptions) error {
	id, err := student.ParseID(rawID)
	if err != nil {
		return newCommandError("get student", "parsing the id", err, "Pass a positive numeric id.")
	}

	s, err := openSession(cmd, app, "command.get")
	if err != nil {
		return err
	}
	defer s.Close()

	state, err := s.run("get student", fmt.Sprintf("loading student %d", id), s.ctrl.LoadOne(s.ctx, id))
	if err != nil {
		return err
	}
	if state.Selected == nil {
		return newCommandError("get student", fmt.Sprintf("loading student %d", id),
			fmt.Errorf("no student selected"), "Run 'roster list' to see existing student ids.")
	}

	if opts.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), state.Selected)
	}
	renderStudent(cmd.OutOrStdout(), *state.Selected)
	return nil
}
