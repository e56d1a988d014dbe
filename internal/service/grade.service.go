package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"gradeyour401k/internal/calculator"
	"gradeyour401k/internal/domain"
	"gradeyour401k/internal/logger"
	"gradeyour401k/internal/repository"
)

// GradeService grades user-entered holdings. A ticker is accepted when it is
// active at any provider or is a curated fund, even if the user picked a
// different provider; plans often carry funds their recordkeeper does not
// list.
type GradeService interface {
	Grade(ctx context.Context, req GradeRequest) (*GradeResult, error)
}

type GradeRequest struct {
	Profile  domain.Profile
	Provider *domain.Provider
	Holdings []domain.Holding
}

type GradeResult struct {
	Submission  domain.GradeSubmission `json:"submission"`
	Recommended *domain.Snapshot       `json:"recommended"`
}

type gradeServiceHandler struct {
	SymbolRepository          repository.SymbolRepository
	GradeSubmissionRepository repository.GradeSubmissionRepository
	ModelService              ModelService
}

func NewGradeService(
	symbolRepository repository.SymbolRepository,
	gradeSubmissionRepository repository.GradeSubmissionRepository,
	modelService ModelService,
) GradeService {
	return gradeServiceHandler{
		SymbolRepository:          symbolRepository,
		GradeSubmissionRepository: gradeSubmissionRepository,
		ModelService:              modelService,
	}
}

// normalizeHoldings upper-cases tickers and drops blank rows.
func normalizeHoldings(holdings []domain.Holding) ([]domain.Holding, error) {
	out := []domain.Holding{}
	for i, h := range holdings {
		symbol := strings.ToUpper(strings.TrimSpace(h.Symbol))
		if symbol == "" && h.Weight == 0 {
			continue
		}
		if symbol == "" {
			return nil, fmt.Errorf("%w: holding %d has no symbol", ErrInvalidInput, i+1)
		}
		if math.IsNaN(h.Weight) || h.Weight < 0 || h.Weight > 100 {
			return nil, fmt.Errorf("%w: weight for %s must be between 0 and 100, got %v", ErrInvalidInput, symbol, h.Weight)
		}
		h.Symbol = symbol
		if h.Label != nil && strings.TrimSpace(*h.Label) == "" {
			h.Label = nil
		}
		out = append(out, h)
	}
	return out, nil
}

func (h gradeServiceHandler) Grade(ctx context.Context, req GradeRequest) (*GradeResult, error) {
	holdings, err := normalizeHoldings(req.Holdings)
	if err != nil {
		return nil, err
	}

	tickers := []string{}
	for _, holding := range holdings {
		tickers = append(tickers, holding.Symbol)
	}

	names := map[string]*string{}
	if len(tickers) > 0 {
		symbols, err := h.SymbolRepository.List(nil, repository.SymbolListFilter{
			Symbols:    tickers,
			ActiveOnly: true,
		})
		if err != nil {
			return nil, err
		}
		for _, s := range symbols {
			if existing, ok := names[s.Symbol]; !ok || existing == nil {
				names[s.Symbol] = s.Name
			}
		}
	}

	unknown := map[string]bool{}
	for i, holding := range holdings {
		name, known := names[holding.Symbol]
		_, curated := calculator.LookupFund(holding.Symbol)
		if !known && !curated {
			unknown[holding.Symbol] = true
			continue
		}
		// curated funds are graded on their catalog label, never lineup text
		if holding.Label == nil && name != nil && !curated {
			holdings[i].Label = name
		}
	}
	if len(unknown) > 0 {
		list := []string{}
		for s := range unknown {
			list = append(list, s)
		}
		sort.Strings(list)
		return nil, fmt.Errorf("%w: unknown symbols %s", ErrInvalidInput, strings.Join(list, ", "))
	}

	breakdown := calculator.ExplainGrade(req.Profile, holdings)

	submission, err := h.GradeSubmissionRepository.Add(nil, domain.GradeSubmission{
		Profile:   req.Profile,
		Provider:  req.Provider,
		Holdings:  holdings,
		Breakdown: breakdown,
	})
	if err != nil {
		return nil, err
	}

	result := &GradeResult{Submission: *submission}
	if req.Provider != nil {
		result.Recommended, err = h.ModelService.GetLatest(ctx, *req.Provider, req.Profile.ModelProfile())
		if err != nil {
			return nil, fmt.Errorf("failed to load recommended model: %w", err)
		}
	}

	logger.FromContext(ctx).Infow(
		"graded holdings",
		"submissionID", submission.ID,
		"profile", req.Profile,
		"holdings", len(holdings),
		"grade", breakdown.Grade,
	)

	return result, nil
}
