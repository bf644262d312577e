package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/transferdesk/internal/app/models"
	"github.com/yigit/transferdesk/internal/pkg/apperrors"
	"github.com/yigit/transferdesk/internal/pkg/docstore"
	"github.com/yigit/transferdesk/internal/pkg/logger"
)

// ApprovalRepository handles the approvals collection
type ApprovalRepository struct {
	store docstore.Store
}

// NewApprovalRepository creates a new approval repository
func NewApprovalRepository(store docstore.Store) *ApprovalRepository {
	return &ApprovalRepository{store: store}
}

// ListByStage fetches every approval at stage in insertion order
func (r *ApprovalRepository) ListByStage(ctx context.Context, stage models.ApprovalStage) ([]models.Approval, error) {
	docs, err := r.store.Query(ctx, models.CollectionApprovals, "stage", string(stage))
	if err != nil {
		logger.Error().Err(err).Str("stage", string(stage)).Msg("Error fetching approvals")
		return nil, storeError("query", err, apperrors.ErrResourceNotFound)
	}
	return decodeAll[models.Approval](docs)
}

// Create stores an approval and sets its ID
func (r *ApprovalRepository) Create(ctx context.Context, approval *models.Approval) error {
	data, err := docstore.Encode(approval)
	if err != nil {
		return err
	}
	id, err := r.store.Insert(ctx, models.CollectionApprovals, data)
	if err != nil {
		return storeError("insert", err, apperrors.ErrResourceNotFound)
	}
	approval.ID = id
	return nil
}

// Delete removes an approval only if it is at stage
func (r *ApprovalRepository) Delete(ctx context.Context, stage models.ApprovalStage, id string) error {
	doc, err := r.store.Get(ctx, models.CollectionApprovals, id)
	if err != nil {
		return storeError("get", err, apperrors.ErrResourceNotFound)
	}
	if fmt.Sprint(doc.Data["stage"]) != string(stage) {
		return apperrors.ErrResourceNotFound
	}
	if err := r.store.Delete(ctx, models.CollectionApprovals, id); err != nil {
		logger.Error().Err(err).Str("id", id).Msg("Error deleting approval")
		return storeError("delete", err, apperrors.ErrResourceNotFound)
	}
	return nil
}
