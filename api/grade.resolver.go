package api

import (
	"fmt"

	"gradeyour401k/internal/domain"
	"gradeyour401k/internal/service"

	"github.com/gin-gonic/gin"
)

type gradeHoldingRequest struct {
	Symbol string  `json:"symbol"`
	Weight float64 `json:"weight"`
	Label  *string `json:"label"`
}

type gradeRequest struct {
	Profile  string                `json:"profile"`
	Provider *string               `json:"provider"`
	Holdings []gradeHoldingRequest `json:"holdings"`
}

func (m ApiHandler) grade(c *gin.Context) {
	var requestBody gradeRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	profile, err := domain.NewProfile(requestBody.Profile)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	var provider *domain.Provider
	if requestBody.Provider != nil && *requestBody.Provider != "" {
		p, err := domain.NewProvider(*requestBody.Provider)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		provider = &p
	}

	if len(requestBody.Holdings) == 0 {
		returnErrorJsonCode(fmt.Errorf("at least one holding is required"), c, 400)
		return
	}

	holdings := []domain.Holding{}
	for _, h := range requestBody.Holdings {
		holdings = append(holdings, domain.Holding{
			Symbol: h.Symbol,
			Weight: h.Weight,
			Label:  h.Label,
		})
	}

	result, err := m.GradeService.Grade(c, service.GradeRequest{
		Profile:  profile,
		Provider: provider,
		Holdings: holdings,
	})
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, result)
}
