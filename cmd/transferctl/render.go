package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/yigit/transferdesk/internal/app/models"
	"github.com/yigit/transferdesk/internal/pkg/table"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

func errorLine(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

func newWriter(w io.Writer) *tablewriter.Table {
	tw := tablewriter.NewWriter(w)
	tw.SetAutoWrapText(false)
	return tw
}

// renderTable writes one page of rows followed by a paging footer
func renderTable[T any](w io.Writer, title string, header []string, st table.State[T], row func(T) []string) {
	titleColor.Fprintf(w, "\n%s\n", title)
	if st.Filter != "" {
		fmt.Fprintf(w, "Filter: %s\n", st.Filter)
	}

	tw := newWriter(w)
	tw.SetHeader(header)
	for _, r := range st.Rows {
		tw.Append(row(r))
	}
	tw.Render()

	page := st.Page + 1
	if st.TotalPages == 0 {
		page = 0
	}
	fmt.Fprintf(w, "Page %d of %d (%d per page, %d total)\n", page, st.TotalPages, st.PageSize, st.TotalItems)
}

func studentRow(s models.Student) []string {
	return []string{s.ID, s.Name, s.PuRegNumber, s.College, s.Program, s.Semester}
}

var studentHeader = []string{"ID", "Name", "PU Reg Number", "College", "Program", "Semester"}

func approvalRow(a models.Approval) []string {
	return []string{a.ID, a.StudentName, a.RegistrationNumber, a.SourceCollege, a.DestinationCollege, a.Program, a.Status}
}

var approvalHeader = []string{"ID", "Student", "Reg Number", "From", "To", "Program", "Status"}

func renderColleges(w io.Writer, colleges []models.College) {
	titleColor.Fprintln(w, "\nColleges")
	tw := newWriter(w)
	tw.SetHeader([]string{"#", "ID", "Name", "Address"})
	for i, c := range colleges {
		tw.Append([]string{strconv.Itoa(i + 1), c.ID, c.CollegeName, c.CollegeAddress})
	}
	tw.Render()
}

// confirm asks the delete question and reports whether the answer was yes.
// Anything other than y or yes, including end of input, declines.
func confirm(in io.Reader, out io.Writer) bool {
	warnColor.Fprint(out, "Are you sure? You won't be able to revert this! [y/N]: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
