package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/roster/internal/domain/student"
	"github.com/alexisbeaulieu97/roster/pkg/diff"
)

type updateOptions struct {
	fields requestFlags
}

func newUpdateCmd(app *AppContext) *cobra.Command {
	opts := &updateOptions{}

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a student and show what changed",
		Example: `  roster update 3 --score 8.75
  roster update 3 --program Math --age 23`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd, app, args[0], opts)
		},
	}

	opts.fields.register(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, app *AppContext, rawID string, opts *updateOptions) error {
	id, err := student.ParseID(rawID)
	if err != nil {
		return newCommandError("update student", "parsing the id", err, "Pass a positive numeric id.")
	}
	if !opts.fields.anyChanged(cmd) {
		return newCommandError("update student", "reading flags", errors.New("no fields to change"),
			"Pass at least one of --name, --age, --program or --score.")
	}

	s, err := openSession(cmd, app, "command.update")
	if err != nil {
		return err
	}
	defer s.Close()

	state, err := s.run("update student", fmt.Sprintf("loading student %d", id), s.ctrl.LoadOne(s.ctx, id))
	if err != nil {
		return err
	}
	if state.Selected == nil {
		return newCommandError("update student", fmt.Sprintf("loading student %d", id),
			errors.New("no student selected"), "Run 'roster list' to see existing student ids.")
	}
	before := *state.Selected

	req := opts.fields.overlay(cmd, before.Request())
	if err := req.Validate(); err != nil {
		return newCommandError("update student", "validating flags", err, "Fix the reported field and try again.")
	}
	if before.Matches(req) {
		fmt.Fprintf(cmd.OutOrStdout(), "Student %d is already up to date.\n", id)
		return nil
	}

	state, refreshErr, err := s.mutate("update student", fmt.Sprintf("saving student %d", id), s.ctrl.Update(s.ctx, id, req))
	if err != nil {
		return err
	}

	after := req.WithID(id)
	if state.Saved != nil {
		after = *state.Saved
	}
	s.logger.Info(s.ctx, "student updated", "student_id", id.String())

	fmt.Fprintf(cmd.OutOrStdout(), "Updated student %d.\n\n", id)
	fmt.Fprint(cmd.OutOrStdout(), diff.Lines(studentFields(before), studentFields(after), "before", "after"))
	warnRefresh(cmd.ErrOrStderr(), refreshErr)
	return nil
}
