package api

import (
	"fmt"
	"net/http"

	"gradeyour401k/internal/domain"
	"gradeyour401k/internal/logger"
	"gradeyour401k/internal/util"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) getModel(c *gin.Context) {
	provider, err := domain.NewProvider(c.Param("provider"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	profile, err := domain.NewProfile(c.Param("profile"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	snapshot, err := m.ModelService.GetLatest(c, provider, profile.ModelProfile())
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if snapshot == nil {
		returnErrorJsonCode(fmt.Errorf("no %s model has been built for %s", profile.ModelProfile(), provider), c, http.StatusNotFound)
		return
	}

	c.JSON(200, snapshot)
}

type buildModelsRequest struct {
	AsOf     string  `json:"asOf"`
	Provider *string `json:"provider"`
	Profile  *string `json:"profile"`
}

type buildModelsResponse struct {
	Snapshots []domain.Snapshot `json:"snapshots"`
	Error     *string           `json:"error,omitempty"`
}

func (m ApiHandler) buildModels(c *gin.Context) {
	var requestBody buildModelsRequest
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

	if requestBody.Provider == nil && requestBody.Profile == nil {
		snapshots, err := m.ModelService.BuildAll(c, asOf)
		out := buildModelsResponse{Snapshots: snapshots}
		if err != nil {
			logger.FromContext(c).Warnw("some models failed to build", "error", err)
			out.Error = strPtr(err.Error())
			c.JSON(http.StatusMultiStatus, out)
			return
		}
		c.JSON(200, out)
		return
	}

	if requestBody.Provider == nil || requestBody.Profile == nil {
		returnErrorJsonCode(fmt.Errorf("provider and profile must be given together"), c, 400)
		return
	}
	provider, err := domain.NewProvider(*requestBody.Provider)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	profile, err := domain.NewProfile(*requestBody.Profile)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	snapshot, err := m.ModelService.BuildSnapshot(c, asOf, provider, profile.ModelProfile())
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, buildModelsResponse{Snapshots: []domain.Snapshot{*snapshot}})
}

type runDailyModelsRequest struct {
	AsOf string `json:"asOf"`
}

func (m ApiHandler) runDailyModels(c *gin.Context) {
	if m.DailyModelApp == nil {
		returnErrorJsonCode(fmt.Errorf("daily model job is not configured"), c, http.StatusServiceUnavailable)
		return
	}

	var requestBody runDailyModelsRequest
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

	result, err := m.DailyModelApp.Run(c, asOf)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, result)
}
