package router

import (
	"campusvoice/internal/adapter/api/handler"
	"campusvoice/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupComplaintRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	complaintHandler := handler.GetComplaintHandler()

	complaints := e.Group("/v1/complaints")

	// Submission allows anonymous callers; everything else needs identity.
	complaints.POST("", complaintHandler.CreateComplaint, authMiddleware.OptionalAuthenticate)
	complaints.GET("", complaintHandler.ListComplaints, authMiddleware.Authenticate)
	complaints.GET("/export/csv", complaintHandler.ExportCSV, authMiddleware.Authenticate, adminMiddleware.AdminOnly)
	complaints.GET("/:id", complaintHandler.GetComplaint, authMiddleware.Authenticate)
	complaints.PATCH("/:id", complaintHandler.UpdateComplaint, authMiddleware.Authenticate)
}
