package domain

import (
	"time"

	"github.com/google/uuid"
)

// Holding is a user-declared position, weighted in percent.
type Holding struct {
	Symbol string  `json:"symbol"`
	Weight float64 `json:"weight"`
	Label  *string `json:"label,omitempty"`
}

type GradeAdjustment struct {
	Name  string  `json:"name"`
	Delta float64 `json:"delta"`
}

// GradeBreakdown explains how a grade was reached.
type GradeBreakdown struct {
	Profile     Profile           `json:"profile"`
	Base        float64           `json:"base"`
	Adjustments []GradeAdjustment `json:"adjustments"`
	Raw         float64           `json:"raw"`
	Grade       float64           `json:"grade"`
}

// GradeSubmission is a graded holdings list as stored, along with the
// documents attached to it.
type GradeSubmission struct {
	ID                 uuid.UUID      `json:"id"`
	Profile            Profile        `json:"profile"`
	Provider           *Provider      `json:"provider,omitempty"`
	Holdings           []Holding      `json:"holdings"`
	Breakdown          GradeBreakdown `json:"breakdown"`
	StatementObjectKey *string        `json:"-"`
	ReportObjectKey    *string        `json:"-"`
	CreatedAt          time.Time      `json:"createdAt"`
}
