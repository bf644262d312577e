package services

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/transferdesk/internal/app/models"
	"github.com/yigit/transferdesk/internal/app/repositories"
	"github.com/yigit/transferdesk/internal/pkg/apperrors"
	"github.com/yigit/transferdesk/internal/pkg/docstore"
	"github.com/yigit/transferdesk/internal/pkg/form"
)

var pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n%%EOF\n")

type fakeBlobs struct {
	mu      sync.Mutex
	uploads map[string][]byte
	calls   int
	err     error
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{uploads: map[string][]byte{}}
}

func (f *fakeBlobs) Upload(ctx context.Context, path string, r io.Reader) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return f.err
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.uploads[path] = b
	return nil
}

type fixture struct {
	repos    *repositories.Repositories
	blobs    *fakeBlobs
	lookups  LookupService
	pec      models.College
	gces     models.College
	computer models.Program
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	repos := repositories.NewRepositories(docstore.NewMemoryStore())

	pec := models.College{CollegeName: "Pokhara Engineering College", CollegeAddress: "Phirke, Pokhara"}
	gces := models.College{CollegeName: "Gandaki College of Engineering and Science", CollegeAddress: "Lamachaur, Pokhara"}
	computer := models.Program{Name: "Computer Engineering"}
	require.NoError(t, repos.CollegeRepository.Create(ctx, &pec))
	require.NoError(t, repos.CollegeRepository.Create(ctx, &gces))
	require.NoError(t, repos.ProgramRepository.Create(ctx, &computer))

	return &fixture{
		repos:    repos,
		blobs:    newFakeBlobs(),
		lookups:  NewLookupService(repos.CollegeRepository, repos.ProgramRepository),
		pec:      pec,
		gces:     gces,
		computer: computer,
	}
}

func (f *fixture) transferService() TransferService {
	return NewTransferService(f.lookups, f.repos.TransferRepository, f.blobs, "edited-pdfs", zerolog.Nop())
}

func (f *fixture) transferDraft() *form.Draft {
	return form.NewDraft().
		Set(FieldFullName, "Sita Gurung").
		Set(FieldRegistrationNumber, "2019-1-22-0101").
		Set(FieldExamRollNumber, "19070101").
		Set(FieldSourceCollegeName, f.pec.ID).
		Set(FieldDestinationCollegeName, f.gces.ID).
		Set(FieldEmail, "sita@example.com").
		Set(FieldContactNumber, "9800000000").
		Set(FieldProgramEnrolled, f.computer.ID).
		Set(FieldCurrentSemester, "5").
		Set(FieldRemarks, "Family moved").
		Attach(FieldApplicationLetter, &form.File{Name: "letter.pdf", ContentType: "application/pdf", Content: pdfBytes})
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *form.ValidationError
	require.ErrorAs(t, err, &verr)
	return verr.Fields
}

func TestTransferSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("valid request is uploaded then recorded", func(t *testing.T) {
		f := newFixture(t)
		svc := f.transferService()

		req, err := svc.Submit(ctx, f.transferDraft())
		require.NoError(t, err)
		assert.Equal(t, "edited-pdfs/letter.pdf", req.ApplicationLetterPath)
		assert.Equal(t, f.pec.CollegeName, req.SourceCollegeName)
		assert.Equal(t, f.gces.CollegeName, req.DestinationCollegeName)
		assert.Equal(t, "Computer Engineering", req.ProgramEnrolled)
		assert.Equal(t, pdfBytes, f.blobs.uploads["edited-pdfs/letter.pdf"])

		pending, err := svc.ListPending(ctx)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, req.ID, pending[0].ID)
	})

	t.Run("same source and destination is rejected before any upload", func(t *testing.T) {
		f := newFixture(t)
		d := f.transferDraft().Set(FieldDestinationCollegeName, f.pec.ID)

		_, err := f.transferService().Submit(ctx, d)
		assert.Equal(t, "Destination College cannot be the same as Source College", fieldErrors(t, err)[FieldDestinationCollegeName])
		assert.Zero(t, f.blobs.calls)
	})

	t.Run("same college by id and by name is rejected after lookup", func(t *testing.T) {
		f := newFixture(t)
		d := f.transferDraft().Set(FieldDestinationCollegeName, f.pec.CollegeName)

		svc := f.transferService()
		_, err := svc.Submit(ctx, d)
		assert.Equal(t, "Destination College cannot be the same as Source College", fieldErrors(t, err)[FieldDestinationCollegeName])
		assert.Zero(t, f.blobs.calls)

		pending, err := svc.ListPending(ctx)
		require.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("non pdf letter is rejected", func(t *testing.T) {
		f := newFixture(t)
		d := f.transferDraft().Attach(FieldApplicationLetter, &form.File{Name: "letter.png", ContentType: "image/png", Content: []byte("\x89PNG\r\n\x1a\n")})

		_, err := f.transferService().Submit(ctx, d)
		assert.Equal(t, "Invalid file format. Please upload a PDF file.", fieldErrors(t, err)[FieldApplicationLetter])
		assert.Zero(t, f.blobs.calls)
	})

	t.Run("letter declared as pdf but not pdf content is rejected", func(t *testing.T) {
		f := newFixture(t)
		d := f.transferDraft().Attach(FieldApplicationLetter, &form.File{Name: "letter.pdf", ContentType: "application/pdf", Content: []byte("plain text")})

		_, err := f.transferService().Submit(ctx, d)
		assert.Contains(t, fieldErrors(t, err), FieldApplicationLetter)
	})

	t.Run("unknown college is a field error", func(t *testing.T) {
		f := newFixture(t)
		d := f.transferDraft().Set(FieldSourceCollegeName, "no-such-college")

		_, err := f.transferService().Submit(ctx, d)
		assert.Equal(t, "Unknown college", fieldErrors(t, err)[FieldSourceCollegeName])
		assert.Zero(t, f.blobs.calls)
	})

	t.Run("college names are accepted as well as ids", func(t *testing.T) {
		f := newFixture(t)
		d := f.transferDraft().
			Set(FieldSourceCollegeName, f.pec.CollegeName).
			Set(FieldDestinationCollegeName, f.gces.CollegeName)

		req, err := f.transferService().Submit(ctx, d)
		require.NoError(t, err)
		assert.Equal(t, f.gces.CollegeName, req.DestinationCollegeName)
	})

	t.Run("upload failure skips the record", func(t *testing.T) {
		f := newFixture(t)
		f.blobs.err = errors.New("bucket unavailable")
		svc := f.transferService()

		_, err := svc.Submit(ctx, f.transferDraft())
		assert.ErrorIs(t, err, apperrors.ErrRemoteCall)

		pending, err := svc.ListPending(ctx)
		require.NoError(t, err)
		assert.Empty(t, pending)
	})
}

func TestLookupFormOptions(t *testing.T) {
	f := newFixture(t)
	opts, err := f.lookups.GetFormOptions(context.Background())
	require.NoError(t, err)
	assert.Len(t, opts.Colleges, 2)
	assert.Equal(t, []models.Program{f.computer}, opts.Programs)
}
