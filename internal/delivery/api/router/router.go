// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"contactlog/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ContactHandler *handler.ContactHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	contactHandler *handler.ContactHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		contactHandler: params.ContactHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	contactsGroup := api.Group("/contacts")
	{
		contactsGroup.GET("", r.contactHandler.ListContacts)
		contactsGroup.POST("", r.contactHandler.CreateContact)
		contactsGroup.PATCH("", r.contactHandler.UpdateContact)
		contactsGroup.DELETE("", r.contactHandler.DeleteContact)
		contactsGroup.GET("/:id", r.contactHandler.GetContact)
		contactsGroup.GET("/:id/qrcode", r.contactHandler.ContactQRCode)
	}

	// Bulk seed for development and tests
	api.GET("/fillDB", r.contactHandler.FillDB)
}
