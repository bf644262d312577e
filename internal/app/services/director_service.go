package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/transferdesk/internal/app/models"
	"github.com/yigit/transferdesk/internal/app/models/dto"
	"github.com/yigit/transferdesk/internal/app/repositories"
	"github.com/yigit/transferdesk/internal/pkg/apperrors"
	"github.com/yigit/transferdesk/internal/pkg/auth"
	"github.com/yigit/transferdesk/internal/pkg/form"
	"github.com/yigit/transferdesk/internal/pkg/table"
)

// DirectorService creates and lists college head accounts
type DirectorService interface {
	Schema() form.Schema
	CreateDirector(ctx context.Context, req dto.CreateDirectorRequest) (*models.Director, error)
	ListDirectors(ctx context.Context, q TableQuery) (table.State[models.Director], error)
}

type directorServiceImpl struct {
	forms          *form.Controller
	lookups        LookupService
	credentialRepo *repositories.CredentialRepository
	directorRepo   *repositories.DirectorRepository
	logger         zerolog.Logger
}

// NewDirectorService creates a new director service instance
func NewDirectorService(
	lookups LookupService,
	credentialRepo *repositories.CredentialRepository,
	directorRepo *repositories.DirectorRepository,
	lgr zerolog.Logger,
) DirectorService {
	return &directorServiceImpl{
		forms:          form.NewController(DirectorForm(), nil, "", lgr),
		lookups:        lookups,
		credentialRepo: credentialRepo,
		directorRepo:   directorRepo,
		logger:         lgr,
	}
}

func (s *directorServiceImpl) Schema() form.Schema {
	return s.forms.Schema()
}

func directorDraft(req dto.CreateDirectorRequest) *form.Draft {
	return form.NewDraft().
		Set(FieldName, req.Name).
		Set(FieldEmail, req.Email).
		Set(FieldCollege, req.College).
		Set(FieldAddress, req.Address).
		Set(FieldPassword, req.Password)
}

// CreateDirector creates the credential first and then the users record
// under the credential's id. When the record cannot be written the
// credential is removed again.
func (s *directorServiceImpl) CreateDirector(ctx context.Context, req dto.CreateDirectorRequest) (*models.Director, error) {
	draft := directorDraft(req)
	if err := s.forms.Schema().Validate(draft); err != nil {
		return nil, err
	}

	college, err := s.lookups.ResolveCollege(ctx, FieldCollege, draft.Get(FieldCollege))
	if err != nil {
		return nil, err
	}
	if draft.Get(FieldAddress) == "" {
		draft.Set(FieldAddress, college.CollegeAddress)
	}
	draft.Set(FieldEmail, repositories.NormalizeEmail(draft.Get(FieldEmail)))

	var director *models.Director
	err = s.forms.Submit(ctx, draft.Get(FieldEmail), draft, func(ctx context.Context, sub form.Submission) error {
		email := sub.Draft.Get(FieldEmail)
		exists, err := s.credentialRepo.EmailExists(ctx, email)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.ErrEmailAlreadyExists
		}

		hash, err := auth.HashPassword(sub.Draft.Get(FieldPassword))
		if err != nil {
			return err
		}

		cred := &models.Credential{Email: email, PasswordHash: hash, CreatedAt: time.Now().UTC()}
		if err := s.credentialRepo.Create(ctx, cred); err != nil {
			return err
		}

		d := &models.Director{
			ID:      cred.ID,
			Name:    sub.Draft.Get(FieldName),
			Email:   email,
			College: college.CollegeName,
			Address: sub.Draft.Get(FieldAddress),
		}
		if err := s.directorRepo.CreateDirector(ctx, d); err != nil {
			if rbErr := s.credentialRepo.Delete(context.WithoutCancel(ctx), cred.ID); rbErr != nil {
				s.logger.Error().Err(rbErr).Str("credentialID", cred.ID).Msg("Failed to remove credential after director insert failed")
			}
			return err
		}
		director = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("directorID", director.ID).Str("college", director.College).Msg("Director account created")
	return director, nil
}

func (s *directorServiceImpl) ListDirectors(ctx context.Context, q TableQuery) (table.State[models.Director], error) {
	return directorTable(s.directorRepo).list(ctx, q)
}

func directorTable(repo *repositories.DirectorRepository) recordTable[models.Director] {
	return recordTable[models.Director]{source: table.Source[models.Director]{
		Load: repo.ListDirectors,
		Remove: func(ctx context.Context, id string) error {
			return apperrors.ErrNotSupported
		},
		Key: func(d models.Director) string { return d.Name },
	}}
}
