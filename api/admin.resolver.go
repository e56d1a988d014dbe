package api

import (
	"fmt"

	"gradeyour401k/internal/domain"
	"gradeyour401k/internal/util"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) importSymbols(c *gin.Context) {
	provider, err := domain.NewProvider(c.Query("provider"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	if url := c.Query("url"); url != "" {
		result, err := m.SymbolImportService.ImportFromUrl(c, provider, url)
		if err != nil {
			returnServiceError(err, c)
			return
		}
		c.JSON(200, result)
		return
	}

	data, err := c.GetRawData()
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if len(data) == 0 {
		returnErrorJsonCode(fmt.Errorf("either a url or a csv body is required"), c, 400)
		return
	}

	result, err := m.SymbolImportService.ImportCsv(c, provider, data)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, result)
}

type ingestScoresRequest struct {
	AsOf string `json:"asOf"`
}

func (m ApiHandler) ingestScores(c *gin.Context) {
	var requestBody ingestScoresRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&requestBody); err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
	}
	asOf, err := util.ParseDate(requestBody.AsOf)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid asOf: %w", err), c, 400)
		return
	}

	result, err := m.ScoreService.IngestScores(c, asOf)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, result)
}

func (m ApiHandler) updateTargets(c *gin.Context) {
	profile, err := domain.NewProfile(c.Param("profile"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	var targets domain.AllocationTargets
	if err := c.ShouldBindJSON(&targets); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if err := targets.Validate(); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	err = m.AllocationTargetRepository.Upsert(nil, profile.ModelProfile(), targets)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"profile": profile.ModelProfile(),
		"targets": targets,
	})
}
