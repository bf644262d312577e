package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/transferdesk/internal/app/models/dto"
	"github.com/yigit/transferdesk/internal/app/services"
	"github.com/yigit/transferdesk/internal/middleware"
	"github.com/yigit/transferdesk/internal/pkg/helpers"
)

// DirectorController handles college head accounts
type DirectorController struct {
	directorService services.DirectorService
}

// NewDirectorController creates a new DirectorController
func NewDirectorController(directorService services.DirectorService) *DirectorController {
	return &DirectorController{directorService: directorService}
}

// CreateDirector adds a director account
// @Summary Add a director
// @Description Creates the director's credential and the paired user record
// @Tags directors
// @Accept json
// @Produce json
// @Param request body dto.CreateDirectorRequest true "Director information"
// @Success 201 {object} dto.APIResponse{data=models.Director} "New Director has been Added"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Failure 502 {object} dto.ErrorResponse "Account creation failed"
// @Router /directors [post]
func (c *DirectorController) CreateDirector(ctx *gin.Context) {
	var req dto.CreateDirectorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid director data").WithDetails(err.Error())))
		return
	}

	director, err := c.directorService.CreateDirector(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(director, "New Director has been Added"))
}

// GetDirectors lists directors as a table
// @Summary List directors
// @Tags directors
// @Produce json
// @Param name query string false "Show only directors with this name"
// @Param page query int false "Zero-based page" default(0)
// @Param size query int false "Page size" Enums(5, 8, 10, 25, 100) default(5)
// @Success 200 {object} dto.APIResponse{data=dto.TableResponse} "Directors retrieved successfully"
// @Failure 502 {object} dto.ErrorResponse "Store unavailable"
// @Router /directors [get]
func (c *DirectorController) GetDirectors(ctx *gin.Context) {
	st, err := c.directorService.ListDirectors(ctx, tableQuery(ctx, "name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(helpers.NewTableResponse(st), ""))
}
