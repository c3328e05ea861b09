package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"voyage/internal/models/request_models"
	"voyage/internal/services"
	"voyage/pkg/utils"
)

// AIController serves the planning endpoints. Every AI result is a 200 with
// either model output or a fixed fallback.
type AIController struct {
	plannerService services.PlannerServiceInterface
}

func NewAIController(plannerService services.PlannerServiceInterface) *AIController {
	return &AIController{
		plannerService: plannerService,
	}
}

// GenerateItinerary godoc
// @Summary Generate and store an itinerary for a trip
// @Tags AI
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /trips/{id}/generate [post]
func (a *AIController) GenerateItinerary(c *gin.Context) {
	tripID, ok := pathID(c, "id", "trip")
	if !ok {
		return
	}
	caller, ok := callerID(c)
	if !ok {
		return
	}

	var extra map[string]any
	if err := c.ShouldBindJSON(&extra); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := a.plannerService.GenerateItinerary(c.Request.Context(), tripID, caller, extra)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"trip": trip}, "Itinerary generated")
}

// Recommendations godoc
// @Summary Activity recommendations for a trip
// @Tags AI
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Param type query string false "Activity type" default(attractions)
// @Success 200 {object} utils.APIResponse
// @Router /trips/{id}/recommendations [get]
func (a *AIController) Recommendations(c *gin.Context) {
	tripID, ok := pathID(c, "id", "trip")
	if !ok {
		return
	}

	recs, err := a.plannerService.Recommendations(c.Request.Context(), tripID, c.DefaultQuery("type", "attractions"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"recommendations": recs}, "Recommendations generated")
}

// PackingList godoc
// @Summary Packing list for a trip
// @Tags AI
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Param context query string false "Additional context"
// @Success 200 {object} utils.APIResponse
// @Router /trips/{id}/packing-list [get]
func (a *AIController) PackingList(c *gin.Context) {
	tripID, ok := pathID(c, "id", "trip")
	if !ok {
		return
	}

	list, err := a.plannerService.PackingList(c.Request.Context(), tripID, c.Query("context"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"packingList": list}, "Packing list generated")
}

// BudgetAnalysis godoc
// @Summary Budget analysis for a trip
// @Tags AI
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Router /trips/{id}/budget-analysis [get]
func (a *AIController) BudgetAnalysis(c *gin.Context) {
	tripID, ok := pathID(c, "id", "trip")
	if !ok {
		return
	}

	analysis, err := a.plannerService.BudgetAnalysis(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"analysis": analysis}, "Budget analyzed")
}

// Suggestions godoc
// @Summary Destination suggestions
// @Tags AI
// @Produce json
// @Security BearerAuth
// @Param location query string true "Starting location"
// @Param budget query int false "Budget in cents"
// @Param duration query int false "Duration in days"
// @Param interests query string false "Comma separated interests"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /trips/suggestions [get]
func (a *AIController) Suggestions(c *gin.Context) {
	var q request_models.SuggestionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	input := services.SuggestionsInput{Location: strings.TrimSpace(q.Location)}
	if input.Location == "" {
		utils.RespondError(c, http.StatusBadRequest, "location is required")
		return
	}

	if q.Budget != "" {
		budget, err := strconv.ParseInt(q.Budget, 10, 64)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "budget must be an integer")
			return
		}
		input.BudgetCents = &budget
	}
	if q.Duration != "" {
		duration, err := strconv.Atoi(q.Duration)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "duration must be an integer")
			return
		}
		input.DurationDays = &duration
	}
	for _, interest := range strings.Split(q.Interests, ",") {
		if interest = strings.TrimSpace(interest); interest != "" {
			input.Interests = append(input.Interests, interest)
		}
	}

	result := a.plannerService.Suggestions(c.Request.Context(), input)
	utils.RespondSuccess(c, gin.H{"tripSuggestions": result}, "Suggestions generated")
}

// Chat godoc
// @Summary Travel assistant chat
// @Tags AI
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.ChatRequest true "Chat payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /trips/chat [post]
func (a *AIController) Chat(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		utils.RespondError(c, http.StatusBadRequest, "message is required")
		return
	}

	answer := a.plannerService.Chat(c.Request.Context(), caller, req)
	utils.RespondSuccess(c, gin.H{"response": answer}, "Chat response generated")
}
