package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"voyage/internal/models/db_models"
	"voyage/internal/models/request_models"
	"voyage/internal/services"
	"voyage/pkg/utils"
)

type TripRequestController struct {
	requestService services.TripRequestServiceInterface
}

func NewTripRequestController(requestService services.TripRequestServiceInterface) *TripRequestController {
	return &TripRequestController{
		requestService: requestService,
	}
}

func (t *TripRequestController) RequestToJoin(c *gin.Context) {
	tripID, ok := pathID(c, "id", "trip")
	if !ok {
		return
	}
	caller, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.JoinTripRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	created, err := t.requestService.RequestToJoin(c.Request.Context(), tripID, caller, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{"request": created}, "Request sent")
}

func (t *TripRequestController) ListRequests(c *gin.Context) {
	tripID, ok := pathID(c, "id", "trip")
	if !ok {
		return
	}
	caller, ok := callerID(c)
	if !ok {
		return
	}

	reqs, err := t.requestService.ListRequests(c.Request.Context(), tripID, caller)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"items": reqs}, "Requests fetched successfully")
}

func (t *TripRequestController) Accept(c *gin.Context) {
	t.decide(c, db_models.RequestAccepted)
}

func (t *TripRequestController) Reject(c *gin.Context) {
	t.decide(c, db_models.RequestRejected)
}

func (t *TripRequestController) decide(c *gin.Context, status string) {
	tripID, ok := pathID(c, "id", "trip")
	if !ok {
		return
	}
	requestID, ok := pathID(c, "requestId", "request")
	if !ok {
		return
	}
	caller, ok := callerID(c)
	if !ok {
		return
	}

	updated, err := t.requestService.Decide(c.Request.Context(), tripID, requestID, caller, status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"request": updated}, "Request "+status)
}
