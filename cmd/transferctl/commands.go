package main

import (
	"github.com/spf13/cobra"

	"github.com/yigit/transferdesk/internal/app/models"
	"github.com/yigit/transferdesk/internal/app/services"
	"github.com/yigit/transferdesk/internal/pkg/table"
)

type listFlags struct {
	name string
	page int
	size int
}

func (f *listFlags) bind(cmd *cobra.Command, filterHelp string) {
	cmd.Flags().StringVar(&f.name, "name", "", filterHelp)
	cmd.Flags().IntVar(&f.page, "page", 1, "Page number, starting at 1")
	cmd.Flags().IntVar(&f.size, "size", table.DefaultPageSize, "Rows per page (5, 8, 10, 25 or 100)")
}

func (f *listFlags) query() services.TableQuery {
	page := f.page - 1
	if page < 0 {
		page = 0
	}
	return services.TableQuery{Filter: f.name, Page: page, Size: f.size}
}

// deleteFn is the confirm-then-delete call shared by the record tables
type deleteFn[T any] func(cmd *cobra.Command, id string, confirm *bool) (bool, table.State[T], error)

func newDeleteCmd[T any](a *app, use, short, title string, header []string, row func(T) []string, del deleteFn[T]) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok := yes || confirm(a.in, a.out)
			deleted, st, err := del(cmd, args[0], &ok)
			if err != nil {
				return err
			}
			if !deleted {
				warnColor.Fprintln(a.out, "Cancelled")
				return nil
			}
			successColor.Fprintln(a.out, "Deleted!")
			renderTable(a.out, title, header, st, row)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func newStudentsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "students",
		Short: "List or delete students",
	}

	var flags listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List students",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.services.StudentService.ListStudents(cmd.Context(), flags.query())
			if err != nil {
				return err
			}
			renderTable(a.out, "Students", studentHeader, st, studentRow)
			return nil
		},
	}
	flags.bind(list, "Show only students with this name")

	del := newDeleteCmd(a, "delete ID", "Delete a student", "Students", studentHeader, studentRow,
		func(cmd *cobra.Command, id string, ok *bool) (bool, table.State[models.Student], error) {
			return a.services.StudentService.DeleteStudent(cmd.Context(), id, ok)
		})

	cmd.AddCommand(list, del)
	return cmd
}

func newApprovalsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approvals",
		Short: "List or delete dean approvals",
	}

	var flags listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List approvals waiting for the dean",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.services.ApprovalService.ListDeanApprovals(cmd.Context(), flags.query())
			if err != nil {
				return err
			}
			renderTable(a.out, "Dean Approvals", approvalHeader, st, approvalRow)
			return nil
		},
	}
	flags.bind(list, "Show only approvals for this student name")

	del := newDeleteCmd(a, "delete ID", "Delete a dean approval", "Dean Approvals", approvalHeader, approvalRow,
		func(cmd *cobra.Command, id string, ok *bool) (bool, table.State[models.Approval], error) {
			return a.services.ApprovalService.DeleteDeanApproval(cmd.Context(), id, ok)
		})

	cmd.AddCommand(list, del)
	return cmd
}

func newCollegesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "colleges",
		Short: "Show colleges",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List colleges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			colleges, err := a.services.LookupService.GetColleges(cmd.Context())
			if err != nil {
				return err
			}
			renderColleges(a.out, colleges)
			return nil
		},
	})
	return cmd
}
