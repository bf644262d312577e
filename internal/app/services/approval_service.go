package services

import (
	"context"

	"github.com/yigit/transferdesk/internal/app/models"
	"github.com/yigit/transferdesk/internal/app/repositories"
	"github.com/yigit/transferdesk/internal/pkg/table"
)

// ApprovalService drives the dean approval table
type ApprovalService interface {
	ListDeanApprovals(ctx context.Context, q TableQuery) (table.State[models.Approval], error)
	DeleteDeanApproval(ctx context.Context, id string, confirm *bool) (bool, table.State[models.Approval], error)
}

type approvalServiceImpl struct {
	approvals recordTable[models.Approval]
}

// NewApprovalService creates a new approval service instance
func NewApprovalService(approvalRepo *repositories.ApprovalRepository) ApprovalService {
	return &approvalServiceImpl{
		approvals: recordTable[models.Approval]{source: table.Source[models.Approval]{
			Load: func(ctx context.Context) ([]models.Approval, error) {
				return approvalRepo.ListByStage(ctx, models.StageDean)
			},
			Remove: func(ctx context.Context, id string) error {
				return approvalRepo.Delete(ctx, models.StageDean, id)
			},
			Key: func(a models.Approval) string { return a.StudentName },
		}},
	}
}

func (s *approvalServiceImpl) ListDeanApprovals(ctx context.Context, q TableQuery) (table.State[models.Approval], error) {
	return s.approvals.list(ctx, q)
}

func (s *approvalServiceImpl) DeleteDeanApproval(ctx context.Context, id string, confirm *bool) (bool, table.State[models.Approval], error) {
	return s.approvals.remove(ctx, id, confirm)
}
