package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/yigit/transferdesk/internal/app/models"
	"github.com/yigit/transferdesk/internal/app/repositories"
	"github.com/yigit/transferdesk/internal/pkg/filestorage"
	"github.com/yigit/transferdesk/internal/pkg/form"
)

// TransferService handles transfer request submission
type TransferService interface {
	Schema() form.Schema
	// Submit validates the draft, uploads its application letter and
	// records the request. Nothing is uploaded when validation fails.
	Submit(ctx context.Context, draft *form.Draft) (*models.TransferRequest, error)
	ListPending(ctx context.Context) ([]models.TransferRequest, error)
}

type transferServiceImpl struct {
	forms   *form.Controller
	lookups LookupService
	pending *repositories.PendingTransferRepository
	logger  zerolog.Logger
}

// NewTransferService creates a new transfer service. uploadPrefix is the
// blob path prefix for application letters.
func NewTransferService(
	lookups LookupService,
	pending *repositories.PendingTransferRepository,
	blobs filestorage.BlobStore,
	uploadPrefix string,
	lgr zerolog.Logger,
) TransferService {
	return &transferServiceImpl{
		forms:   form.NewController(TransferForm(), blobs, uploadPrefix, lgr),
		lookups: lookups,
		pending: pending,
		logger:  lgr,
	}
}

func (s *transferServiceImpl) Schema() form.Schema {
	return s.forms.Schema()
}

func (s *transferServiceImpl) Submit(ctx context.Context, draft *form.Draft) (*models.TransferRequest, error) {
	if err := s.forms.Schema().Validate(draft); err != nil {
		return nil, err
	}

	source, err := s.lookups.ResolveCollege(ctx, FieldSourceCollegeName, draft.Get(FieldSourceCollegeName))
	if err != nil {
		return nil, err
	}
	destination, err := s.lookups.ResolveCollege(ctx, FieldDestinationCollegeName, draft.Get(FieldDestinationCollegeName))
	if err != nil {
		return nil, err
	}
	if source.ID == destination.ID {
		return nil, form.NewFieldError(FieldDestinationCollegeName, "Destination College cannot be the same as Source College")
	}
	program, err := s.lookups.ResolveProgram(ctx, FieldProgramEnrolled, draft.Get(FieldProgramEnrolled))
	if err != nil {
		return nil, err
	}

	var saved models.TransferRequest
	err = s.forms.Submit(ctx, draft.Get(FieldRegistrationNumber), draft, func(ctx context.Context, sub form.Submission) error {
		letter := sub.Draft.File(FieldApplicationLetter)
		req := models.TransferRequest{
			FullName:               sub.Draft.Get(FieldFullName),
			RegistrationNumber:     sub.Draft.Get(FieldRegistrationNumber),
			ExamRollNumber:         sub.Draft.Get(FieldExamRollNumber),
			SourceCollegeName:      source.CollegeName,
			DestinationCollegeName: destination.CollegeName,
			Email:                  sub.Draft.Get(FieldEmail),
			ContactNumber:          sub.Draft.Get(FieldContactNumber),
			ProgramEnrolled:        program.Name,
			CurrentSemester:        sub.Draft.Get(FieldCurrentSemester),
			Remarks:                sub.Draft.Get(FieldRemarks),
			ApplicationLetterName:  letter.Name,
			ApplicationLetterPath:  sub.BlobPaths[FieldApplicationLetter],
		}

		var err error
		saved, err = s.pending.Add(ctx, req)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("requestID", saved.ID).
		Str("registrationNumber", saved.RegistrationNumber).
		Str("path", saved.ApplicationLetterPath).
		Msg("Transfer request submitted")
	return &saved, nil
}

func (s *transferServiceImpl) ListPending(ctx context.Context) ([]models.TransferRequest, error) {
	return s.pending.List(ctx)
}
