package api

import (
	"context"
	"fmt"
	"net/http"
)

// Prediagnose sends a symptom description to the AI triage agent and returns
// its structured assessment.
func (c *Client) Prediagnose(ctx context.Context, req PrediagnosisRequest) (*PrediagnosisResponse, error) {
	var resp PrediagnosisResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/ai/agent", req, &resp); err != nil {
		return nil, fmt.Errorf("prediagnose: %w", err)
	}
	return &resp, nil
}
