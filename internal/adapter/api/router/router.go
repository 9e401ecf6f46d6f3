package router

import (
	"campusvoice/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupAuthRouter(e)
	SetupUserRouter(e, authMiddleware, adminMiddleware)
	SetupComplaintRouter(e, authMiddleware, adminMiddleware)
	SetupUploadRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
