package services

import (
	"context"
	"fmt"

	"github.com/yigit/transferdesk/internal/app/models"
	"github.com/yigit/transferdesk/internal/app/repositories"
	"github.com/yigit/transferdesk/internal/pkg/apperrors"
	"github.com/yigit/transferdesk/internal/pkg/table"
)

// StudentService drives the student table
type StudentService interface {
	ListStudents(ctx context.Context, q TableQuery) (table.State[models.Student], error)
	// DeleteStudent reports whether a student was deleted and, if so, the
	// re-fetched table.
	DeleteStudent(ctx context.Context, id string, confirm *bool) (bool, table.State[models.Student], error)
	UpdateStudent(ctx context.Context, id string) error
}

type studentServiceImpl struct {
	students recordTable[models.Student]
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository) StudentService {
	return &studentServiceImpl{
		students: recordTable[models.Student]{source: table.Source[models.Student]{
			Load:   studentRepo.ListStudents,
			Remove: studentRepo.DeleteStudent,
			Key:    func(s models.Student) string { return s.Name },
		}},
	}
}

func (s *studentServiceImpl) ListStudents(ctx context.Context, q TableQuery) (table.State[models.Student], error) {
	return s.students.list(ctx, q)
}

func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id string, confirm *bool) (bool, table.State[models.Student], error) {
	return s.students.remove(ctx, id, confirm)
}

// UpdateStudent is not implemented; editing students is not supported yet
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id string) error {
	return fmt.Errorf("%w: editing students", apperrors.ErrNotSupported)
}
