package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"catatanku/pkg/apperr"
	"catatanku/pkg/logger"
)

// MinContentLength is the shortest input worth summarizing; anything below
// is rejected before any upstream call.
const MinContentLength = 30

// Generation parameters are fixed: bounded output, deterministic decoding.
type generationParams struct {
	MaxLength int  `json:"max_length"`
	MinLength int  `json:"min_length"`
	DoSample  bool `json:"do_sample"`
}

type inferenceRequest struct {
	Inputs     string           `json:"inputs"`
	Parameters generationParams `json:"parameters"`
}

type inferenceResult struct {
	SummaryText string `json:"summary_text"`
}

// SummaryService relays note content to a hosted summarization model. It is
// stateless and shares nothing with the note service.
type SummaryService struct {
	Endpoint string
	APIKey   string
	Client   *http.Client
}

func NewSummaryService(endpoint, apiKey string) *SummaryService {
	return &SummaryService{Endpoint: endpoint, APIKey: apiKey, Client: http.DefaultClient}
}

// Summarize returns the model's summary of content. Upstream failures of any
// shape surface as a single opaque upstream error; nothing is retried.
func (s *SummaryService) Summarize(ctx context.Context, content string) (string, error) {
	if len(content) < MinContentLength {
		return "", fmt.Errorf("content too short: %w", apperr.ErrValidation)
	}

	body, err := json.Marshal(inferenceRequest{
		Inputs:     content,
		Parameters: generationParams{MaxLength: 30, MinLength: 8, DoSample: false},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.APIKey)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		logger.Sugar.Errorf("Summarization call failed: %v", err)
		return "", fmt.Errorf("summarization call failed: %w", apperr.ErrUpstream)
	}
	defer resp.Body.Close()

	var results []inferenceResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil || len(results) == 0 || results[0].SummaryText == "" {
		logger.Sugar.Errorf("Malformed summarization response (status %d): %v", resp.StatusCode, err)
		return "", fmt.Errorf("summarization failed: %w", apperr.ErrUpstream)
	}

	return results[0].SummaryText, nil
}
