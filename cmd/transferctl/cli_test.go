package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/transferdesk/internal/app/models"
	"github.com/yigit/transferdesk/internal/app/services"
	"github.com/yigit/transferdesk/internal/bootstrap"
	"github.com/yigit/transferdesk/internal/config"
	"github.com/yigit/transferdesk/internal/pkg/docstore"
	"github.com/yigit/transferdesk/internal/pkg/filestorage"
	"github.com/yigit/transferdesk/internal/pkg/table"
	"github.com/yigit/transferdesk/internal/seed"
)

func newTestApp(t *testing.T, input string) (*app, *bytes.Buffer, *bootstrap.Services) {
	t.Helper()
	color.NoColor = true

	cfg := &config.Config{}
	cfg.Transfer.UploadPrefix = "edited-pdfs"
	store := docstore.NewMemoryStore()
	blobs, err := filestorage.NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)

	repos, services := bootstrap.BuildServices(cfg, store, blobs, zerolog.Nop())
	require.NoError(t, seed.CreateDefaultData(context.Background(), repos, true, zerolog.Nop()))

	out := &bytes.Buffer{}
	return &app{services: &services, in: strings.NewReader(input), out: out}, out, &services
}

func run(t *testing.T, a *app, args ...string) error {
	t.Helper()
	root := newRootCmd(a)
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

func TestStudentsList(t *testing.T) {
	a, out, _ := newTestApp(t, "")
	require.NoError(t, run(t, a, "students", "list", "--name", "Sita Gurung"))

	text := out.String()
	assert.Contains(t, text, "Filter: Sita Gurung")
	assert.Equal(t, 3, strings.Count(text, "Sita Gurung"), "filter line and two rows")
	assert.NotContains(t, text, "Ram Thapa")
	assert.Contains(t, text, "Page 1 of 1 (5 per page, 2 total)")
}

func TestStudentsDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("declined", func(t *testing.T) {
		a, out, svc := newTestApp(t, "n\n")
		st, err := svc.StudentService.ListStudents(ctx, servicesQuery())
		require.NoError(t, err)

		require.NoError(t, run(t, a, "students", "delete", st.Rows[0].ID))
		assert.Contains(t, out.String(), "Cancelled")

		after, err := svc.StudentService.ListStudents(ctx, servicesQuery())
		require.NoError(t, err)
		assert.Equal(t, st.TotalItems, after.TotalItems)
	})

	t.Run("confirmed", func(t *testing.T) {
		a, out, svc := newTestApp(t, "y\n")
		st, err := svc.StudentService.ListStudents(ctx, servicesQuery())
		require.NoError(t, err)
		victim := st.Rows[1]

		require.NoError(t, run(t, a, "students", "delete", victim.ID))
		assert.Contains(t, out.String(), "Deleted!")
		assert.NotContains(t, out.String(), victim.ID)
	})

	t.Run("yes flag skips the prompt", func(t *testing.T) {
		a, out, svc := newTestApp(t, "")
		st, err := svc.StudentService.ListStudents(ctx, servicesQuery())
		require.NoError(t, err)

		require.NoError(t, run(t, a, "students", "delete", "--yes", st.Rows[0].ID))
		assert.NotContains(t, out.String(), "Are you sure?")
		assert.Contains(t, out.String(), "Deleted!")
	})

	t.Run("unknown id", func(t *testing.T) {
		a, _, _ := newTestApp(t, "")
		assert.Error(t, run(t, a, "students", "delete", "--yes", "missing"))
	})
}

func TestApprovalsAndColleges(t *testing.T) {
	a, out, _ := newTestApp(t, "")
	require.NoError(t, run(t, a, "approvals", "list"))
	assert.Contains(t, out.String(), "Dean Approvals")
	assert.Contains(t, out.String(), "Anita Sharma")

	out.Reset()
	require.NoError(t, run(t, a, "colleges", "list"))
	for _, c := range seed.DefaultColleges {
		assert.Contains(t, out.String(), c.CollegeName)
	}
}

func TestConfirm(t *testing.T) {
	for input, want := range map[string]bool{
		"y\n":   true,
		"YES\n": true,
		" y ":   true,
		"n\n":   false,
		"\n":    false,
		"":      false,
	} {
		assert.Equal(t, want, confirm(strings.NewReader(input), &bytes.Buffer{}), "input %q", input)
	}
}

func TestRenderEmptyTable(t *testing.T) {
	color.NoColor = true
	out := &bytes.Buffer{}
	renderTable(out, "Students", studentHeader, emptyStudents(), studentRow)
	assert.Contains(t, out.String(), "Page 0 of 0")
}

func servicesQuery() services.TableQuery {
	return services.TableQuery{Size: 100}
}

func emptyStudents() table.State[models.Student] {
	return table.State[models.Student]{PageSize: table.DefaultPageSize}
}
