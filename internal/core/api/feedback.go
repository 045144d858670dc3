package api

import (
	"context"
	"fmt"
	"net/http"
)

// CreateFeedback submits a rating and suggestion. Any 2xx is accepted; the
// response body is ignored.
func (c *Client) CreateFeedback(ctx context.Context, req FeedbackCreateRequest) error {
	if err := c.doRequest(ctx, http.MethodPost, "/api/feedback", req, nil); err != nil {
		return fmt.Errorf("send feedback: %w", err)
	}
	return nil
}

// MyFeedback lists the feedback this account has submitted.
func (c *Client) MyFeedback(ctx context.Context) ([]Feedback, error) {
	var entries []Feedback
	if err := c.doRequest(ctx, http.MethodGet, "/api/feedback/mine", nil, &entries); err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return entries, nil
}

// GetFeedbackSummary returns the global average rating and count.
func (c *Client) GetFeedbackSummary(ctx context.Context) (*FeedbackSummary, error) {
	var summary FeedbackSummary
	if err := c.doRequest(ctx, http.MethodGet, "/api/feedback/summary", nil, &summary); err != nil {
		return nil, fmt.Errorf("feedback summary: %w", err)
	}
	return &summary, nil
}
