package dto

import "github.com/yigit/transferdesk/internal/app/models"

// TransferSubmissionResponse is returned after a transfer request is accepted
type TransferSubmissionResponse struct {
	Request              models.TransferRequest `json:"request"`
	ApplicationLetterURL string                 `json:"applicationLetterUrl" example:"/uploads/edited-pdfs/letter.pdf"`
}
