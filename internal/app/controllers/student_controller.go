package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/transferdesk/internal/app/models/dto"
	"github.com/yigit/transferdesk/internal/app/services"
	"github.com/yigit/transferdesk/internal/middleware"
	"github.com/yigit/transferdesk/internal/pkg/helpers"
)

// StudentController handles the student table
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// GetStudents lists students as a table
// @Summary List students
// @Description Fetches every student, then filters by name and pages in memory
// @Tags students
// @Produce json
// @Param name query string false "Show only students with this name"
// @Param page query int false "Zero-based page" default(0)
// @Param size query int false "Page size" Enums(5, 8, 10, 25, 100) default(5)
// @Success 200 {object} dto.APIResponse{data=dto.TableResponse} "Students retrieved successfully"
// @Failure 502 {object} dto.ErrorResponse "Store unavailable"
// @Router /students [get]
func (c *StudentController) GetStudents(ctx *gin.Context) {
	st, err := c.studentService.ListStudents(ctx, tableQuery(ctx, "name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(helpers.NewTableResponse(st), ""))
}

// UpdateStudent is reserved for student edits
// @Summary Edit a student
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Failure 501 {object} dto.ErrorResponse "Editing students is not yet supported"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	middleware.HandleAPIError(ctx, c.studentService.UpdateStudent(ctx, ctx.Param("id")))
}

// DeleteStudent deletes a student after confirmation
// @Summary Delete a student
// @Description Without confirm the caller is asked to confirm. confirm=false cancels. confirm=true deletes and returns the re-fetched table.
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Param confirm query bool false "Confirmation"
// @Success 200 {object} dto.APIResponse{data=dto.DeleteResponse} "Deleted or cancelled"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 428 {object} dto.ErrorResponse "Confirmation required"
// @Failure 502 {object} dto.ErrorResponse "Store unavailable"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	confirm, err := parseConfirm(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	deleted, st, err := c.studentService.DeleteStudent(ctx, ctx.Param("id"), confirm)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(deleteResponse(deleted, helpers.NewTableResponse(st)), ""))
}

func deleteResponse(deleted bool, table dto.TableResponse) dto.DeleteResponse {
	if !deleted {
		return dto.DeleteResponse{Message: "Cancelled"}
	}
	return dto.DeleteResponse{
		Deleted: true,
		Message: "Deleted!",
		Table:   &table,
	}
}
