package controllers

import (
	"github.com/gin-gonic/gin"

	"voyage/internal/services"
	"voyage/pkg/utils"
)

type WeatherController struct {
	weatherService services.WeatherServiceInterface
}

func NewWeatherController(weatherService services.WeatherServiceInterface) *WeatherController {
	return &WeatherController{
		weatherService: weatherService,
	}
}

// Current godoc
// @Summary Current weather for a location
// @Tags Integrations
// @Produce json
// @Param location query string false "City or place name"
// @Success 200 {object} utils.APIResponse
// @Router /integrations/weather [get]
func (w *WeatherController) Current(c *gin.Context) {
	report := w.weatherService.Current(c.Request.Context(), c.Query("location"))
	utils.RespondSuccess(c, report, "Weather fetched successfully")
}
