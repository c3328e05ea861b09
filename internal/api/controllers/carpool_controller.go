package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyage/internal/models/request_models"
	"voyage/internal/services"
	"voyage/pkg/utils"
)

type CarpoolController struct {
	carpoolService services.CarpoolServiceInterface
}

func NewCarpoolController(carpoolService services.CarpoolServiceInterface) *CarpoolController {
	return &CarpoolController{
		carpoolService: carpoolService,
	}
}

func (cc *CarpoolController) ListCarpools(c *gin.Context) {
	tripID, ok := pathID(c, "id", "trip")
	if !ok {
		return
	}

	carpools, err := cc.carpoolService.ListCarpools(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"items": carpools}, "Carpools fetched successfully")
}

func (cc *CarpoolController) CreateCarpool(c *gin.Context) {
	tripID, ok := pathID(c, "id", "trip")
	if !ok {
		return
	}
	host, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.CreateCarpoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	carpool, err := cc.carpoolService.CreateCarpool(c.Request.Context(), tripID, host, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{"carpool": carpool}, "Carpool created successfully")
}
