package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/transferdesk/internal/app/models/dto"
	"github.com/yigit/transferdesk/internal/app/services"
	"github.com/yigit/transferdesk/internal/middleware"
	"github.com/yigit/transferdesk/internal/pkg/helpers"
)

// ApprovalController handles the dean approval table
type ApprovalController struct {
	approvalService services.ApprovalService
}

// NewApprovalController creates a new ApprovalController
func NewApprovalController(approvalService services.ApprovalService) *ApprovalController {
	return &ApprovalController{approvalService: approvalService}
}

// GetDeanApprovals lists approvals at the dean stage
// @Summary List dean approvals
// @Tags approvals
// @Produce json
// @Param name query string false "Show only approvals for this student name"
// @Param page query int false "Zero-based page" default(0)
// @Param size query int false "Page size" Enums(5, 8, 10, 25, 100) default(5)
// @Success 200 {object} dto.APIResponse{data=dto.TableResponse} "Approvals retrieved successfully"
// @Failure 502 {object} dto.ErrorResponse "Store unavailable"
// @Router /dean-approvals [get]
func (c *ApprovalController) GetDeanApprovals(ctx *gin.Context) {
	st, err := c.approvalService.ListDeanApprovals(ctx, tableQuery(ctx, "name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(helpers.NewTableResponse(st), ""))
}

// DeleteDeanApproval deletes an approval after confirmation
// @Summary Delete a dean approval
// @Tags approvals
// @Produce json
// @Param id path string true "Approval ID"
// @Param confirm query bool false "Confirmation"
// @Success 200 {object} dto.APIResponse{data=dto.DeleteResponse} "Deleted or cancelled"
// @Failure 404 {object} dto.ErrorResponse "Approval not found"
// @Failure 428 {object} dto.ErrorResponse "Confirmation required"
// @Router /dean-approvals/{id} [delete]
func (c *ApprovalController) DeleteDeanApproval(ctx *gin.Context) {
	confirm, err := parseConfirm(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	deleted, st, err := c.approvalService.DeleteDeanApproval(ctx, ctx.Param("id"), confirm)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(deleteResponse(deleted, helpers.NewTableResponse(st)), ""))
}
