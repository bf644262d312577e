package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/transferdesk/internal/app/controllers"
)

// Controllers groups the handlers mounted under /api/v1
type Controllers struct {
	Form     *controllers.FormController
	Lookup   *controllers.LookupController
	Transfer *controllers.TransferController
	Director *controllers.DirectorController
	Student  *controllers.StudentController
	Approval *controllers.ApprovalController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers) {
	// API version group
	v1 := router.Group("/api/v1")

	forms := v1.Group("/forms")
	{
		forms.GET("/:name", c.Form.GetForm)
		forms.POST("/:name/validate", c.Form.ValidateFields)
	}

	// Lookups that fill select fields
	v1.GET("/form-options", c.Lookup.GetFormOptions)
	v1.GET("/colleges", c.Lookup.GetColleges)
	v1.GET("/programs", c.Lookup.GetPrograms)

	transfers := v1.Group("/transfer-requests")
	{
		transfers.POST("", c.Transfer.SubmitTransferRequest)
		transfers.GET("", c.Transfer.GetPendingTransferRequests)
	}

	directors := v1.Group("/directors")
	{
		directors.POST("", c.Director.CreateDirector)
		directors.GET("", c.Director.GetDirectors)
	}

	students := v1.Group("/students")
	{
		students.GET("", c.Student.GetStudents)
		students.PUT("/:id", c.Student.UpdateStudent)
		students.DELETE("/:id", c.Student.DeleteStudent)
	}

	approvals := v1.Group("/dean-approvals")
	{
		approvals.GET("", c.Approval.GetDeanApprovals)
		approvals.DELETE("/:id", c.Approval.DeleteDeanApproval)
	}
}
