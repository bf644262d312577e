package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/transferdesk/internal/app/models/dto"
	"github.com/yigit/transferdesk/internal/app/services"
	"github.com/yigit/transferdesk/internal/pkg/form"
)

// FormController exposes the declarative form definitions
type FormController struct {
	schemas map[string]form.Schema
}

// NewFormController creates a new FormController
func NewFormController(transferService services.TransferService, directorService services.DirectorService) *FormController {
	return &FormController{
		schemas: map[string]form.Schema{
			services.TransferFormName: transferService.Schema(),
			services.DirectorFormName: directorService.Schema(),
		},
	}
}

// FieldValidationResult is the outcome of validating some fields of a form
type FieldValidationResult struct {
	Valid  bool              `json:"valid" example:"false"`
	Errors []form.FieldError `json:"errors"`
}

// GetForm returns the field definitions of one form
// @Summary Get form definition
// @Description Returns the fields, types and validation rules of a form
// @Tags forms
// @Produce json
// @Param name path string true "Form name" Enums(transfer, director)
// @Success 200 {object} dto.APIResponse{data=form.Schema} "Form definition"
// @Failure 404 {object} dto.ErrorResponse "Unknown form"
// @Router /forms/{name} [get]
func (c *FormController) GetForm(ctx *gin.Context) {
	schema, ok := c.schemas[ctx.Param("name")]
	if !ok {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Form not found")))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(schema, ""))
}

// ValidateFields checks the submitted values field by field. Only fields
// present in the body are reported, so a client can validate as the user
// types.
// @Summary Validate form fields
// @Tags forms
// @Accept json
// @Produce json
// @Param name path string true "Form name" Enums(transfer, director)
// @Param request body map[string]string true "Field values"
// @Success 200 {object} dto.APIResponse{data=FieldValidationResult} "Validation result"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Unknown form"
// @Router /forms/{name}/validate [post]
func (c *FormController) ValidateFields(ctx *gin.Context) {
	schema, ok := c.schemas[ctx.Param("name")]
	if !ok {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Form not found")))
		return
	}

	var values map[string]string
	if err := ctx.ShouldBindJSON(&values); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format").WithDetails(err.Error())))
		return
	}

	draft := form.NewDraft()
	for k, v := range values {
		draft.Set(k, v)
	}

	result := FieldValidationResult{Valid: true, Errors: []form.FieldError{}}
	for _, f := range schema.Fields {
		if _, touched := values[f.Name]; !touched {
			continue
		}
		if msg := schema.ValidateField(draft, f.Name); msg != "" {
			result.Valid = false
			result.Errors = append(result.Errors, form.FieldError{Field: f.Name, Message: msg})
		}
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result, ""))
}
