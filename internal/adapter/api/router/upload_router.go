package router

import (
	"campusvoice/internal/adapter/api/handler"
	"campusvoice/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupUploadRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	uploadHandler := handler.GetUploadHandler()

	uploads := e.Group("/v1/uploads")
	uploads.Use(authMiddleware.OptionalAuthenticate)
	uploads.POST("", uploadHandler.Upload)
}
