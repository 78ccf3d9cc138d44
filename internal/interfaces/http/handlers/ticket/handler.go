package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"devdesk/internal/application/ticket/usecases"
	"devdesk/internal/shared/errors"
	"devdesk/internal/shared/logger"
	"devdesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC   usecases.CreateTicketExecutor
	listTicketsUC    usecases.ListTicketsExecutor
	getTicketUC      usecases.GetTicketExecutor
	updateTicketUC   usecases.UpdateTicketExecutor
	deleteTicketUC   usecases.DeleteTicketExecutor
	addCommentUC     usecases.AddCommentExecutor
	listCommentsUC   usecases.ListCommentsExecutor
	deleteCommentUC  usecases.DeleteCommentExecutor
	recordActivityUC usecases.RecordActivityExecutor
	listActivitiesUC usecases.ListActivitiesExecutor
	deleteActivityUC usecases.DeleteActivityExecutor
	logger           logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	getTicketUC usecases.GetTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	addCommentUC usecases.AddCommentExecutor,
	listCommentsUC usecases.ListCommentsExecutor,
	deleteCommentUC usecases.DeleteCommentExecutor,
	recordActivityUC usecases.RecordActivityExecutor,
	listActivitiesUC usecases.ListActivitiesExecutor,
	deleteActivityUC usecases.DeleteActivityExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:   createTicketUC,
		listTicketsUC:    listTicketsUC,
		getTicketUC:      getTicketUC,
		updateTicketUC:   updateTicketUC,
		deleteTicketUC:   deleteTicketUC,
		addCommentUC:     addCommentUC,
		listCommentsUC:   listCommentsUC,
		deleteCommentUC:  deleteCommentUC,
		recordActivityUC: recordActivityUC,
		listActivitiesUC: listActivitiesUC,
		deleteActivityUC: deleteActivityUC,
		logger:           logger,
	}
}

// CreateTicket handles POST /projects/:id/tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	projectID, err := utils.ParseUintParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create ticket request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	cmd, err := req.ToCommand(callerID, projectID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// ListTickets handles GET /projects/:id/tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	projectID, err := utils.ParseUintParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		CallerID:  callerID,
		ProjectID: projectID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetTicket handles GET /tickets/:ticket_id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketID, err := utils.ParseUintParam(c, "ticket_id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		CallerID: callerID,
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateTicket handles PATCH /tickets/:ticket_id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketID, err := utils.ParseUintParam(c, "ticket_id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid update ticket request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), req.ToCommand(callerID, ticketID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// DeleteTicket handles DELETE /tickets/:ticket_id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketID, err := utils.ParseUintParam(c, "ticket_id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		CallerID: callerID,
		TicketID: ticketID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// AddComment handles POST /tickets/:ticket_id/comments
func (h *TicketHandler) AddComment(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketID, err := utils.ParseUintParam(c, "ticket_id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid add comment request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		CallerID: callerID,
		TicketID: ticketID,
		Content:  req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

// ListComments handles GET /tickets/:ticket_id/comments
func (h *TicketHandler) ListComments(c *gin.Context) {
	h.listTicketComments(c, false)
}

// ListMyComments handles GET /tickets/:ticket_id/comments/user
func (h *TicketHandler) ListMyComments(c *gin.Context) {
	h.listTicketComments(c, true)
}

func (h *TicketHandler) listTicketComments(c *gin.Context, authorOnly bool) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketID, err := utils.ParseUintParam(c, "ticket_id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listCommentsUC.Execute(c.Request.Context(), usecases.ListCommentsQuery{
		CallerID:   callerID,
		TicketID:   ticketID,
		AuthorOnly: authorOnly,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteComment handles DELETE /tickets/:ticket_id/comments/:comment_id
func (h *TicketHandler) DeleteComment(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketID, err := utils.ParseUintParam(c, "ticket_id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	commentID, err := utils.ParseUintParam(c, "comment_id", "comment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteCommentUC.Execute(c.Request.Context(), usecases.DeleteCommentCommand{
		CallerID:  callerID,
		TicketID:  ticketID,
		CommentID: commentID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// RecordActivity handles POST /tickets/:ticket_id/activity
func (h *TicketHandler) RecordActivity(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketID, err := utils.ParseUintParam(c, "ticket_id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RecordActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid record activity request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.recordActivityUC.Execute(c.Request.Context(), usecases.RecordActivityCommand{
		CallerID: callerID,
		TicketID: ticketID,
		Action:   req.Action,
		Details:  req.Details,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Activity recorded successfully")
}

// ListActivities handles GET /tickets/:ticket_id/activity
func (h *TicketHandler) ListActivities(c *gin.Context) {
	h.listTicketActivities(c, false)
}

// ListMyActivities handles GET /tickets/:ticket_id/activity/user
func (h *TicketHandler) ListMyActivities(c *gin.Context) {
	h.listTicketActivities(c, true)
}

func (h *TicketHandler) listTicketActivities(c *gin.Context, actorOnly bool) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketID, err := utils.ParseUintParam(c, "ticket_id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listActivitiesUC.Execute(c.Request.Context(), usecases.ListActivitiesQuery{
		CallerID:  callerID,
		TicketID:  ticketID,
		ActorOnly: actorOnly,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteActivity handles DELETE /tickets/:ticket_id/activity/:activity_id
func (h *TicketHandler) DeleteActivity(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketID, err := utils.ParseUintParam(c, "ticket_id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	activityID, err := utils.ParseUintParam(c, "activity_id", "activity entry")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteActivityUC.Execute(c.Request.Context(), usecases.DeleteActivityCommand{
		CallerID:   callerID,
		TicketID:   ticketID,
		ActivityID: activityID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
