package repositories

import (
	"context"

	"github.com/yigit/transferdesk/internal/app/models"
	"github.com/yigit/transferdesk/internal/pkg/docstore"
)

// StudentRepository handles users documents with role student
type StudentRepository struct {
	users userCollection
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(store docstore.Store) *StudentRepository {
	return &StudentRepository{users: userCollection{store: store, role: models.RoleStudent}}
}

// ListStudents fetches every student in insertion order
func (r *StudentRepository) ListStudents(ctx context.Context) ([]models.Student, error) {
	docs, err := r.users.list(ctx)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Student](docs)
}

// CreateStudent stores a student and sets its ID
func (r *StudentRepository) CreateStudent(ctx context.Context, student *models.Student) error {
	student.Role = models.RoleStudent
	id, err := r.users.insert(ctx, student)
	if err != nil {
		return err
	}
	student.ID = id
	return nil
}

// DeleteStudent removes one student by id
func (r *StudentRepository) DeleteStudent(ctx context.Context, id string) error {
	return r.users.delete(ctx, id)
}
