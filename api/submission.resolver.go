package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func submissionIDParam(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid submission id %q", c.Param("id"))
	}
	return id, nil
}

func (m ApiHandler) createStatementUploadUrl(c *gin.Context) {
	id, err := submissionIDParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	out, err := m.ReportService.CreateStatementUploadUrl(c, id)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, out)
}

func (m ApiHandler) generateReport(c *gin.Context) {
	id, err := submissionIDParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	out, err := m.ReportService.GenerateReport(c, id)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, out)
}
