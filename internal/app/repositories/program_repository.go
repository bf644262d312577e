package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/transferdesk/internal/app/models"
	"github.com/yigit/transferdesk/internal/pkg/apperrors"
	"github.com/yigit/transferdesk/internal/pkg/docstore"
	"github.com/yigit/transferdesk/internal/pkg/logger"
)

// ProgramRepository reads and seeds the programs collection
type ProgramRepository struct {
	store docstore.Store
}

// NewProgramRepository creates a new program repository
func NewProgramRepository(store docstore.Store) *ProgramRepository {
	return &ProgramRepository{store: store}
}

// GetAll returns every program in insertion order
func (r *ProgramRepository) GetAll(ctx context.Context) ([]models.Program, error) {
	docs, err := r.store.All(ctx, models.CollectionPrograms)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching programs")
		return nil, storeError("query", err, apperrors.ErrProgramNotFound)
	}
	return decodeAll[models.Program](docs)
}

// GetByID returns one program or apperrors.ErrProgramNotFound
func (r *ProgramRepository) GetByID(ctx context.Context, id string) (*models.Program, error) {
	doc, err := r.store.Get(ctx, models.CollectionPrograms, id)
	if err != nil {
		return nil, storeError("get", err, apperrors.ErrProgramNotFound)
	}
	var program models.Program
	if err := docstore.Decode(doc, &program); err != nil {
		return nil, fmt.Errorf("error decoding program: %w", err)
	}
	return &program, nil
}

// FindByName returns the first program named name, or nil when none is
func (r *ProgramRepository) FindByName(ctx context.Context, name string) (*models.Program, error) {
	docs, err := r.store.Query(ctx, models.CollectionPrograms, "name", name)
	if err != nil {
		return nil, storeError("query", err, apperrors.ErrProgramNotFound)
	}
	programs, err := decodeAll[models.Program](docs)
	if err != nil || len(programs) == 0 {
		return nil, err
	}
	return &programs[0], nil
}

// Create stores a program and sets its ID
func (r *ProgramRepository) Create(ctx context.Context, program *models.Program) error {
	data, err := docstore.Encode(program)
	if err != nil {
		return err
	}
	id, err := r.store.Insert(ctx, models.CollectionPrograms, data)
	if err != nil {
		logger.Error().Err(err).Str("name", program.Name).Msg("Error creating program")
		return storeError("insert", err, apperrors.ErrProgramNotFound)
	}
	program.ID = id
	return nil
}
