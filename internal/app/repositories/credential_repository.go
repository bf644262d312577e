package repositories

import (
	"context"
	"strings"

	"github.com/yigit/transferdesk/internal/app/models"
	"github.com/yigit/transferdesk/internal/pkg/apperrors"
	"github.com/yigit/transferdesk/internal/pkg/docstore"
	"github.com/yigit/transferdesk/internal/pkg/logger"
)

// CredentialRepository stores director sign-in accounts
type CredentialRepository struct {
	store docstore.Store
}

// NewCredentialRepository creates a new credential repository
func NewCredentialRepository(store docstore.Store) *CredentialRepository {
	return &CredentialRepository{store: store}
}

// NormalizeEmail is the stored form of an email; addresses compare
// case-insensitively.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// EmailExists checks if a credential already uses email, ignoring case
func (r *CredentialRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	email = NormalizeEmail(email)
	docs, err := r.store.Query(ctx, models.CollectionCredentials, "email", email)
	if err != nil {
		logger.Error().Err(err).Str("email", email).Msg("Error checking credential email")
		return false, storeError("query", err, apperrors.ErrUserNotFound)
	}
	return len(docs) > 0, nil
}

// Create stores a credential with its email lower-cased and sets its ID
func (r *CredentialRepository) Create(ctx context.Context, cred *models.Credential) error {
	cred.Email = NormalizeEmail(cred.Email)
	data, err := docstore.Encode(cred)
	if err != nil {
		return err
	}
	id, err := r.store.Insert(ctx, models.CollectionCredentials, data)
	if err != nil {
		logger.Error().Err(err).Str("email", cred.Email).Msg("Error creating credential")
		return storeError("create credential", err, apperrors.ErrUserNotFound)
	}
	cred.ID = id
	return nil
}

// Get returns a credential by id
func (r *CredentialRepository) Get(ctx context.Context, id string) (*models.Credential, error) {
	doc, err := r.store.Get(ctx, models.CollectionCredentials, id)
	if err != nil {
		return nil, storeError("get", err, apperrors.ErrUserNotFound)
	}
	var cred models.Credential
	if err := docstore.Decode(doc, &cred); err != nil {
		return nil, err
	}
	return &cred, nil
}

// Delete removes a credential by id
func (r *CredentialRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, models.CollectionCredentials, id); err != nil {
		return storeError("delete", err, apperrors.ErrUserNotFound)
	}
	return nil
}
