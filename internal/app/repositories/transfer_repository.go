package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yigit/transferdesk/internal/app/models"
)

// PendingTransferRepository keeps accepted transfer requests in process.
// Requests are not written to the document store.
type PendingTransferRepository struct {
	mu       sync.RWMutex
	requests []models.TransferRequest
}

// NewPendingTransferRepository creates an empty pending book
func NewPendingTransferRepository() *PendingTransferRepository {
	return &PendingTransferRepository{}
}

// Add assigns an id and submission time and appends the request
func (r *PendingTransferRepository) Add(ctx context.Context, req models.TransferRequest) (models.TransferRequest, error) {
	if err := ctx.Err(); err != nil {
		return models.TransferRequest{}, err
	}
	req.ID = uuid.New().String()
	req.SubmittedAt = time.Now().UTC()

	r.mu.Lock()
	r.requests = append(r.requests, req)
	r.mu.Unlock()
	return req, nil
}

// List returns the accepted requests in submission order
func (r *PendingTransferRepository) List(ctx context.Context) ([]models.TransferRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.TransferRequest, len(r.requests))
	copy(out, r.requests)
	return out, nil
}
