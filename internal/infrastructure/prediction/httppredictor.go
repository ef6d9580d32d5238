// Package prediction suggests a routing area for new tickets by calling an
// external classification endpoint.
package prediction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/resolvia-inc/resolvia/internal/domain/company"
	"github.com/resolvia-inc/resolvia/internal/shared/logger"
)

const (
	// Maximum response body size for the prediction API (64KB)
	maxPredictionResponseSize = 64 << 10
)

type predictionRequest struct {
	CompanyID           uint            `json:"company_id"`
	CategoryName        string          `json:"category_name"`
	CategoryDescription string          `json:"category_description"`
	Areas               []candidateArea `json:"areas"`
}

type candidateArea struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type predictionResponse struct {
	AreaID *uint `json:"area_id"`
}

// HTTPAreaPredictor asks an external endpoint to pick one of the company's
// active areas for a category. A nil suggestion is a valid answer, not an
// error.
type HTTPAreaPredictor struct {
	endpoint   string
	apiKey     string
	areas      company.AreaRepository
	httpClient *http.Client
	logger     logger.Interface
}

func NewHTTPAreaPredictor(endpoint, apiKey string, timeout time.Duration, areas company.AreaRepository, logger logger.Interface) *HTTPAreaPredictor {
	return &HTTPAreaPredictor{
		endpoint: endpoint,
		apiKey:   apiKey,
		areas:    areas,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (p *HTTPAreaPredictor) Predict(ctx context.Context, companyID uint, categoryName, categoryDescription string) (*uint, error) {
	active, err := p.areas.ListByCompanyID(ctx, companyID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidate areas: %w", err)
	}
	if len(active) == 0 {
		return nil, nil
	}

	candidates := make([]candidateArea, 0, len(active))
	for _, a := range active {
		candidates = append(candidates, candidateArea{ID: a.ID(), Name: a.Name()})
	}

	payload, err := json.Marshal(predictionRequest{
		CompanyID:           companyID,
		CategoryName:        categoryName,
		CategoryDescription: categoryDescription,
		Areas:               candidates,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode prediction request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build prediction request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("prediction request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("prediction endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPredictionResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read prediction response: %w", err)
	}

	var result predictionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode prediction response: %w", err)
	}

	if result.AreaID == nil {
		return nil, nil
	}

	// Only accept suggestions that name one of the candidates we sent.
	for _, c := range candidates {
		if c.ID == *result.AreaID {
			return result.AreaID, nil
		}
	}

	p.logger.Warnw("prediction endpoint suggested unknown area, ignoring",
		"company_id", companyID,
		"area_id", *result.AreaID,
	)
	return nil, nil
}

// NoopAreaPredictor is used when prediction is disabled; every ticket falls
// back to manual area selection.
type NoopAreaPredictor struct{}

func NewNoopAreaPredictor() *NoopAreaPredictor {
	return &NoopAreaPredictor{}
}

func (p *NoopAreaPredictor) Predict(ctx context.Context, companyID uint, categoryName, categoryDescription string) (*uint, error) {
	return nil, nil
}
