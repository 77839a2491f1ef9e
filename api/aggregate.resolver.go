package api

import (
	"errors"
	"fundreport/internal/domain"

	"github.com/gin-gonic/gin"
)

type aggregateRequest struct {
	DailyData []domain.DailyRecord `json:"dailyData"`
}

func (m ApiHandler) aggregate(c *gin.Context) {
	var requestBody aggregateRequest

	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	report, err := m.AggregationService.Aggregate(c.Request.Context(), requestBody.DailyData)
	if err != nil {
		// bad input, not a server fault
		var integrityErr *domain.IntegrityError
		if errors.As(err, &integrityErr) {
			returnErrorJsonCode(err, c, 400)
			return
		}
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, report)
}
