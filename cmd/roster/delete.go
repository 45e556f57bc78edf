package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/roster/internal/domain/student"
)

func newDeleteCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a student",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd, app, args[0])
		},
	}

	return cmd
}

func runDelete(cmd *cobra.Command, app *AppContext, rawID string) error {
	id, err := student.ParseID(rawID)
	if err != nil {
		return newCommandError("delete student", "parsing the id", err, "Pass a positive numeric id.")
	}

	s, err := openSession(cmd, app, "command.delete")
	if err != nil {
		return err
	}
	defer s.Close()

	state, refreshErr, err := s.mutate("delete student", fmt.Sprintf("deleting student %d", id), s.ctrl.Delete(s.ctx, id))
	if err != nil {
		return err
	}
	if refreshErr != nil {
		s.logger.Info(s.ctx, "student deleted", "student_id", id.String())
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted student %d.\n", id)
		warnRefresh(cmd.ErrOrStderr(), refreshErr)
		return nil
	}
	s.logger.Info(s.ctx, "student deleted", "student_id", id.String(), "remaining", len(state.Students))

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted student %d. %d students remain.\n", id, len(state.Students))
	return nil
}
