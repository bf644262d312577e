package repositories

import (
	"context"

	"github.com/yigit/transferdesk/internal/app/models"
	"github.com/yigit/transferdesk/internal/pkg/docstore"
)

// DirectorRepository handles users documents with role college_head
type DirectorRepository struct {
	users userCollection
}

// NewDirectorRepository creates a new DirectorRepository
func NewDirectorRepository(store docstore.Store) *DirectorRepository {
	return &DirectorRepository{users: userCollection{store: store, role: models.RoleCollegeHead}}
}

// CreateDirector stores the director under director.ID, the id of its
// credential.
func (r *DirectorRepository) CreateDirector(ctx context.Context, director *models.Director) error {
	director.Role = models.RoleCollegeHead
	return r.users.set(ctx, director.ID, director)
}

// ListDirectors fetches every director in insertion order
func (r *DirectorRepository) ListDirectors(ctx context.Context) ([]models.Director, error) {
	docs, err := r.users.list(ctx)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Director](docs)
}
