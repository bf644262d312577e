package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/transferdesk/internal/app/models/dto"
	"github.com/yigit/transferdesk/internal/app/services"
	"github.com/yigit/transferdesk/internal/middleware"
)

// LookupController serves colleges and programs
type LookupController struct {
	lookupService services.LookupService
}

// NewLookupController creates a new LookupController
func NewLookupController(lookupService services.LookupService) *LookupController {
	return &LookupController{lookupService: lookupService}
}

// GetColleges lists every college
// @Summary List colleges
// @Tags lookups
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.College} "Colleges retrieved successfully"
// @Failure 502 {object} dto.ErrorResponse "Store unavailable"
// @Router /colleges [get]
func (c *LookupController) GetColleges(ctx *gin.Context) {
	colleges, err := c.lookupService.GetColleges(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(colleges, ""))
}

// GetPrograms lists every program
// @Summary List programs
// @Tags lookups
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Program} "Programs retrieved successfully"
// @Failure 502 {object} dto.ErrorResponse "Store unavailable"
// @Router /programs [get]
func (c *LookupController) GetPrograms(ctx *gin.Context) {
	programs, err := c.lookupService.GetPrograms(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(programs, ""))
}

// GetFormOptions returns the choices of every select field at once
// @Summary Get select field options
// @Tags lookups
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.FormOptionsResponse} "Options retrieved successfully"
// @Failure 502 {object} dto.ErrorResponse "Store unavailable"
// @Router /form-options [get]
func (c *LookupController) GetFormOptions(ctx *gin.Context) {
	opts, err := c.lookupService.GetFormOptions(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(opts, ""))
}
