package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/transferdesk/internal/app/models/dto"
	"github.com/yigit/transferdesk/internal/app/services"
	"github.com/yigit/transferdesk/internal/middleware"
	"github.com/yigit/transferdesk/internal/pkg/filestorage"
	"github.com/yigit/transferdesk/internal/pkg/form"
)

// TransferController handles transfer request submissions
type TransferController struct {
	transferService services.TransferService
	files           filestorage.URLResolver
	maxUploadSize   int64
}

// NewTransferController creates a new TransferController
func NewTransferController(transferService services.TransferService, files filestorage.URLResolver, maxUploadSize int64) *TransferController {
	return &TransferController{
		transferService: transferService,
		files:           files,
		maxUploadSize:   maxUploadSize,
	}
}

// readDraft copies the multipart fields named by the schema into a draft
func (c *TransferController) readDraft(ctx *gin.Context) (*form.Draft, error) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, c.maxUploadSize)
	if _, err := ctx.MultipartForm(); err != nil {
		return nil, err
	}

	schema := c.transferService.Schema()
	draft := form.NewDraft()
	for _, f := range schema.Fields {
		if f.Type == form.TypeFile {
			continue
		}
		draft.Set(f.Name, ctx.PostForm(f.Name))
	}

	for _, name := range schema.FileFields() {
		fh, err := ctx.FormFile(name)
		if errors.Is(err, http.ErrMissingFile) {
			continue
		}
		if err != nil {
			return nil, err
		}
		file, err := fh.Open()
		if err != nil {
			return nil, err
		}
		content, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, err
		}
		draft.Attach(name, &form.File{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Content:     content,
		})
	}
	return draft, nil
}

// SubmitTransferRequest handles a transfer application
// @Summary Submit a transfer request
// @Description Validates the form, uploads the application letter and records the request
// @Tags transfer-requests
// @Accept multipart/form-data
// @Produce json
// @Param fullName formData string true "Full name"
// @Param registrationNumber formData string true "Registration number"
// @Param examRollNumber formData string true "Examination roll number"
// @Param sourceCollegeName formData string true "Source college id"
// @Param destinationCollegeName formData string true "Destination college id"
// @Param email formData string true "Email"
// @Param contactNumber formData string true "Contact number"
// @Param programEnrolled formData string true "Program id"
// @Param currentSemester formData string true "Current semester"
// @Param remarks formData string true "Reason for transfer"
// @Param applicationLetter formData file true "Application letter (PDF)"
// @Success 201 {object} dto.APIResponse{data=dto.TransferSubmissionResponse} "Transfer request submitted"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 409 {object} dto.ErrorResponse "Submission already in progress"
// @Failure 502 {object} dto.ErrorResponse "Upload failed"
// @Router /transfer-requests [post]
func (c *TransferController) SubmitTransferRequest(ctx *gin.Context) {
	draft, err := c.readDraft(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid multipart form").
				WithDetails(fmt.Sprintf("%v (max upload size %d bytes)", err, c.maxUploadSize))))
		return
	}

	req, err := c.transferService.Submit(ctx, draft)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.TransferSubmissionResponse{
		Request:              *req,
		ApplicationLetterURL: c.files.URL(req.ApplicationLetterPath),
	}, "Transfer request submitted"))
}

// GetPendingTransferRequests lists the requests accepted by this process
// @Summary List pending transfer requests
// @Tags transfer-requests
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.TransferRequest} "Pending transfer requests"
// @Router /transfer-requests [get]
func (c *TransferController) GetPendingTransferRequests(ctx *gin.Context) {
	requests, err := c.transferService.ListPending(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(requests, ""))
}
