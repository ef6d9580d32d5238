package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "github.com/resolvia-inc/resolvia/internal/interfaces/http/handlers/ticket"
	"github.com/resolvia-inc/resolvia/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler     *tickethandlers.TicketHandler
	ResponseHandler   *tickethandlers.ResponseHandler
	AttachmentHandler *tickethandlers.AttachmentHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		tickets.POST("/:id/resolve", config.TicketHandler.ResolveTicket)
		tickets.POST("/:id/close", config.TicketHandler.CloseTicket)
		tickets.POST("/:id/reopen", config.TicketHandler.ReopenTicket)
		tickets.POST("/:id/assign", config.TicketHandler.AssignTicket)
		tickets.POST("/:id/reminder", config.TicketHandler.SendReminder)

		// Conversation thread
		tickets.POST("/:id/responses", config.ResponseHandler.AddResponse)
		tickets.GET("/:id/responses", config.ResponseHandler.ListResponses)
		tickets.PATCH("/:id/responses/:responseID", config.ResponseHandler.UpdateResponse)
		tickets.DELETE("/:id/responses/:responseID", config.ResponseHandler.DeleteResponse)

		// Attachments
		tickets.POST("/:id/attachments", config.AttachmentHandler.UploadAttachment)
		tickets.GET("/:id/attachments", config.AttachmentHandler.ListAttachments)
		tickets.DELETE("/:id/attachments/:attachmentID", config.AttachmentHandler.DeleteAttachment)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PATCH("/:id", config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id", config.TicketHandler.DeleteTicket)
	}
}
