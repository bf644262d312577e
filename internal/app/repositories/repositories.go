package repositories

import (
	"errors"

	"github.com/yigit/transferdesk/internal/pkg/apperrors"
	"github.com/yigit/transferdesk/internal/pkg/docstore"
)

// Repositories holds all the repository instances
type Repositories struct {
	CollegeRepository    *CollegeRepository
	ProgramRepository    *ProgramRepository
	StudentRepository    *StudentRepository
	DirectorRepository   *DirectorRepository
	CredentialRepository *CredentialRepository
	ApprovalRepository   *ApprovalRepository
	TransferRepository   *PendingTransferRepository
}

// NewRepositories initializes all repositories over one document store
func NewRepositories(store docstore.Store) *Repositories {
	return &Repositories{
		CollegeRepository:    NewCollegeRepository(store),
		ProgramRepository:    NewProgramRepository(store),
		StudentRepository:    NewStudentRepository(store),
		DirectorRepository:   NewDirectorRepository(store),
		CredentialRepository: NewCredentialRepository(store),
		ApprovalRepository:   NewApprovalRepository(store),
		TransferRepository:   NewPendingTransferRepository(),
	}
}

// storeError converts a failed store call into an application error.
// Missing documents become notFound; anything else is a remote-call error.
func storeError(op string, err error, notFound error) error {
	if errors.Is(err, docstore.ErrNotFound) {
		return notFound
	}
	return apperrors.NewRemoteCallError(op, err)
}

func decodeAll[T any](docs []docstore.Document) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		var v T
		if err := docstore.Decode(doc, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
