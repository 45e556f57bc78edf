package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/roster/internal/application/roster"
	"github.com/alexisbeaulieu97/roster/internal/domain/student"
)

type createOptions struct {
	fields     requestFlags
	jsonOutput bool
}

func newCreateCmd(app *AppContext) *cobra.Command {
	opts := &createOptions{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a student",
		Example: `  roster create --name Ana --age 20 --program CS --score 9.5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, app, opts)
		},
	}

	opts.fields.register(cmd)
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the created student as JSON")
	for _, name := range []string{"name", "age", "program", "score"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func runCreate(cmd *cobra.Command, app *AppContext, opts *createOptions) error {
	req := opts.fields.request()
	if err := req.Validate(); err != nil {
		return newCommandError("create student", "validating flags", err, "Fix the reported field and try again.")
	}

	s, err := openSession(cmd, app, "command.create")
	if err != nil {
		return err
	}
	defer s.Close()

	state, refreshErr, err := s.mutate("create student", "submitting the new student", s.ctrl.Create(s.ctx, req))
	if err != nil {
		return err
	}
	defer warnRefresh(cmd.ErrOrStderr(), refreshErr)

	created, ok := createdStudent(state, req)
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "Student created.")
		return nil
	}
	s.logger.Info(s.ctx, "student created", "student_id", created.ID.String())

	if opts.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), created)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created student %d (%s).\n", created.ID, created.Name)
	return nil
}

// createdStudent prefers the entity the service returned and falls back to
// searching the reloaded collection.
func createdStudent(state roster.State, req student.Request) (student.Student, bool) {
	if state.Saved != nil {
		return *state.Saved, true
	}
	return findCreated(state, req)
}

// findCreated picks the newest student matching req from the reloaded
// collection. Ids are assigned in increasing order, so the last match wins.
func findCreated(state roster.State, req student.Request) (student.Student, bool) {
	var (
		found student.Student
		ok    bool
	)
	for _, st := range state.Students {
		if st.Matches(req) && (!ok || st.ID > found.ID) {
			found, ok = st, true
		}
	}
	return found, ok
}
