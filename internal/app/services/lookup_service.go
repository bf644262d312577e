package services

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/yigit/transferdesk/internal/app/models"
	"github.com/yigit/transferdesk/internal/app/models/dto"
	"github.com/yigit/transferdesk/internal/app/repositories"
	"github.com/yigit/transferdesk/internal/pkg/apperrors"
	"github.com/yigit/transferdesk/internal/pkg/form"
)

// LookupService serves the read-only collections that fill select fields
type LookupService interface {
	GetColleges(ctx context.Context) ([]models.College, error)
	GetPrograms(ctx context.Context) ([]models.Program, error)
	GetFormOptions(ctx context.Context) (*dto.FormOptionsResponse, error)
	// ResolveCollege finds a college by id, falling back to its name.
	ResolveCollege(ctx context.Context, field, ref string) (*models.College, error)
	// ResolveProgram finds a program by id, falling back to its name.
	ResolveProgram(ctx context.Context, field, ref string) (*models.Program, error)
}

type lookupServiceImpl struct {
	collegeRepo *repositories.CollegeRepository
	programRepo *repositories.ProgramRepository
}

// NewLookupService creates a new lookup service instance
func NewLookupService(collegeRepo *repositories.CollegeRepository, programRepo *repositories.ProgramRepository) LookupService {
	return &lookupServiceImpl{
		collegeRepo: collegeRepo,
		programRepo: programRepo,
	}
}

func (s *lookupServiceImpl) GetColleges(ctx context.Context) ([]models.College, error) {
	return s.collegeRepo.GetAll(ctx)
}

func (s *lookupServiceImpl) GetPrograms(ctx context.Context) ([]models.Program, error) {
	return s.programRepo.GetAll(ctx)
}

// GetFormOptions fetches colleges and programs concurrently
func (s *lookupServiceImpl) GetFormOptions(ctx context.Context) (*dto.FormOptionsResponse, error) {
	var resp dto.FormOptionsResponse
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		colleges, err := s.collegeRepo.GetAll(gctx)
		resp.Colleges = colleges
		return err
	})
	g.Go(func() error {
		programs, err := s.programRepo.GetAll(gctx)
		resp.Programs = programs
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *lookupServiceImpl) ResolveCollege(ctx context.Context, field, ref string) (*models.College, error) {
	college, err := s.collegeRepo.GetByID(ctx, ref)
	if err == nil {
		return college, nil
	}
	if !errors.Is(err, apperrors.ErrCollegeNotFound) {
		return nil, err
	}

	college, err = s.collegeRepo.FindByName(ctx, ref)
	if err != nil {
		return nil, err
	}
	if college == nil {
		return nil, form.NewFieldError(field, "Unknown college")
	}
	return college, nil
}

func (s *lookupServiceImpl) ResolveProgram(ctx context.Context, field, ref string) (*models.Program, error) {
	program, err := s.programRepo.GetByID(ctx, ref)
	if err == nil {
		return program, nil
	}
	if !errors.Is(err, apperrors.ErrProgramNotFound) {
		return nil, err
	}

	program, err = s.programRepo.FindByName(ctx, ref)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, form.NewFieldError(field, "Unknown program")
	}
	return program, nil
}
