package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/roster/internal/domain/student"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(app *AppContext) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every student known to the service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, app, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, app *AppContext, opts *listOptions) error {
	s, err := openSession(cmd, app, "command.list")
	if err != nil {
		return err
	}
	defer s.Close()

	state, err := s.run("list students", "loading the collection", s.ctrl.LoadAll(s.ctx))
	if err != nil {
		return err
	}
	s.logger.Info(s.ctx, "students listed", "count", len(state.Students))

	if opts.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), listJSONPayload{
			Count:    len(state.Students),
			Students: state.Students,
		})
	}

	if len(state.Students) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No students yet.")
		fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'roster create --name <name> --age <age> --program <program> --score <score>' to add one.")
		return nil
	}
	return renderStudentTable(cmd, state.Students)
}

type listJSONPayload struct {
	Count    int               `json:"count"`
	Students []student.Student `json:"students"`
}

func renderStudentTable(cmd *cobra.Command, students []student.Student) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "ID\tNAME\tAGE\tPROGRAM\tSCORE")
	for _, st := range students {
		fmt.Fprintf(writer, "%d\t%s\t%d\t%s\t%.2f\n", st.ID, st.Name, st.Age, st.Program, st.Score)
	}

	return writer.Flush()
}
