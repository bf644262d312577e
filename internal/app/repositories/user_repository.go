package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/transferdesk/internal/app/models"
	"github.com/yigit/transferdesk/internal/pkg/apperrors"
	"github.com/yigit/transferdesk/internal/pkg/docstore"
	"github.com/yigit/transferdesk/internal/pkg/logger"
)

// userCollection holds the operations students and directors share: both
// live in the users collection and are told apart by their role field.
type userCollection struct {
	store docstore.Store
	role  models.RoleType
}

func (u userCollection) list(ctx context.Context) ([]docstore.Document, error) {
	docs, err := u.store.Query(ctx, models.CollectionUsers, "role", string(u.role))
	if err != nil {
		logger.Error().Err(err).Str("role", string(u.role)).Msg("Error fetching users by role")
		return nil, storeError("query", err, apperrors.ErrUserNotFound)
	}
	return docs, nil
}

// delete removes the user only if it carries the collection's role, so a
// student id can never remove a director record and vice versa.
func (u userCollection) delete(ctx context.Context, id string) error {
	doc, err := u.store.Get(ctx, models.CollectionUsers, id)
	if err != nil {
		return storeError("get", err, apperrors.ErrUserNotFound)
	}
	if fmt.Sprint(doc.Data["role"]) != string(u.role) {
		return apperrors.ErrUserNotFound
	}

	if err := u.store.Delete(ctx, models.CollectionUsers, id); err != nil {
		logger.Error().Err(err).Str("id", id).Str("role", string(u.role)).Msg("Error deleting user")
		return storeError("delete", err, apperrors.ErrUserNotFound)
	}
	logger.Info().Str("id", id).Str("role", string(u.role)).Msg("User deleted")
	return nil
}

func (u userCollection) set(ctx context.Context, id string, v any) error {
	data, err := docstore.Encode(v)
	if err != nil {
		return err
	}
	data["role"] = string(u.role)
	if err := u.store.Set(ctx, models.CollectionUsers, id, data); err != nil {
		logger.Error().Err(err).Str("id", id).Str("role", string(u.role)).Msg("Error writing user")
		return storeError("insert", err, apperrors.ErrUserNotFound)
	}
	return nil
}

func (u userCollection) insert(ctx context.Context, v any) (string, error) {
	data, err := docstore.Encode(v)
	if err != nil {
		return "", err
	}
	data["role"] = string(u.role)
	id, err := u.store.Insert(ctx, models.CollectionUsers, data)
	if err != nil {
		logger.Error().Err(err).Str("role", string(u.role)).Msg("Error inserting user")
		return "", storeError("insert", err, apperrors.ErrUserNotFound)
	}
	return id, nil
}
