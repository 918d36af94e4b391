package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/application/ticket/usecases"
	"ticketdesk/internal/interfaces/dto"
	"ticketdesk/internal/shared/authorization"
	"ticketdesk/internal/shared/logger"
	"ticketdesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUseCase *usecases.CreateTicketUseCase
	listTicketsUseCase  *usecases.ListTicketsUseCase
	updateStatusUseCase *usecases.UpdateTicketStatusUseCase
	deleteTicketUseCase *usecases.DeleteTicketUseCase
	logger              logger.Interface
}

func NewTicketHandler(
	createUC *usecases.CreateTicketUseCase,
	listUC *usecases.ListTicketsUseCase,
	updateStatusUC *usecases.UpdateTicketStatusUseCase,
	deleteUC *usecases.DeleteTicketUseCase,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUseCase: createUC,
		listTicketsUseCase:  listUC,
		updateStatusUseCase: updateStatusUC,
		deleteTicketUseCase: deleteUC,
		logger:              logger,
	}
}

type CreateTicketRequest struct {
	Text string `json:"text" binding:"required"`
}

type UpdateTicketStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	Comment string `json:"comment"`
}

func (h *TicketHandler) Create(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	newTicket, err := h.createTicketUseCase.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		Text:   req.Text,
		UserID: c.GetUint("user_id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTicketResponse(newTicket))
}

func (h *TicketHandler) List(c *gin.Context) {
	role := authorization.ParseUserRole(c.GetString(authorization.ContextKeyUserRole))

	tickets, err := h.listTicketsUseCase.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		UserID: c.GetUint("user_id"),
		Role:   role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTicketResponses(tickets))
}

func (h *TicketHandler) UpdateStatus(c *gin.Context) {
	ticketID, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid ticket ID")
		return
	}

	var req UpdateTicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	updatedTicket, err := h.updateStatusUseCase.Execute(c.Request.Context(), usecases.UpdateTicketStatusCommand{
		TicketID: ticketID,
		Status:   req.Status,
		Comment:  req.Comment,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTicketResponse(updatedTicket))
}

func (h *TicketHandler) Delete(c *gin.Context) {
	ticketID, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid ticket ID")
		return
	}

	if err := h.deleteTicketUseCase.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		TicketID: ticketID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ticket deleted successfully"})
}

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
