package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/transferdesk/internal/app/models"
	"github.com/yigit/transferdesk/internal/pkg/apperrors"
	"github.com/yigit/transferdesk/internal/pkg/docstore"
	"github.com/yigit/transferdesk/internal/pkg/logger"
)

// CollegeRepository reads and seeds the colleges collection
type CollegeRepository struct {
	store docstore.Store
}

// NewCollegeRepository creates a new college repository
func NewCollegeRepository(store docstore.Store) *CollegeRepository {
	return &CollegeRepository{store: store}
}

// GetAll returns every college in insertion order
func (r *CollegeRepository) GetAll(ctx context.Context) ([]models.College, error) {
	docs, err := r.store.All(ctx, models.CollectionColleges)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching colleges")
		return nil, storeError("query", err, apperrors.ErrCollegeNotFound)
	}
	return decodeAll[models.College](docs)
}

// GetByID returns one college or apperrors.ErrCollegeNotFound
func (r *CollegeRepository) GetByID(ctx context.Context, id string) (*models.College, error) {
	doc, err := r.store.Get(ctx, models.CollectionColleges, id)
	if err != nil {
		return nil, storeError("get", err, apperrors.ErrCollegeNotFound)
	}
	var college models.College
	if err := docstore.Decode(doc, &college); err != nil {
		return nil, fmt.Errorf("error decoding college: %w", err)
	}
	return &college, nil
}

// FindByName returns the first college named name, or nil when none is
func (r *CollegeRepository) FindByName(ctx context.Context, name string) (*models.College, error) {
	docs, err := r.store.Query(ctx, models.CollectionColleges, "collegeName", name)
	if err != nil {
		return nil, storeError("query", err, apperrors.ErrCollegeNotFound)
	}
	colleges, err := decodeAll[models.College](docs)
	if err != nil || len(colleges) == 0 {
		return nil, err
	}
	return &colleges[0], nil
}

// Create stores a college and sets its ID
func (r *CollegeRepository) Create(ctx context.Context, college *models.College) error {
	data, err := docstore.Encode(college)
	if err != nil {
		return err
	}
	id, err := r.store.Insert(ctx, models.CollectionColleges, data)
	if err != nil {
		logger.Error().Err(err).Str("collegeName", college.CollegeName).Msg("Error creating college")
		return storeError("insert", err, apperrors.ErrCollegeNotFound)
	}
	college.ID = id
	return nil
}
