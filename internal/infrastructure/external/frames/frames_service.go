package frames

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/farplay/blackjack/internal/domain"
	"github.com/hashicorp/go-retryablehttp"
)

// validateResponse mirrors the hub's validation payload. Only the fields the
// core needs are decoded; everything else in the envelope is ignored.
type validateResponse struct {
	Valid   bool `json:"valid"`
	Message struct {
		Data struct {
			FrameActionBody struct {
				ButtonIndex int `json:"button_index"`
			} `json:"frame_action_body"`
		} `json:"data"`
	} `json:"message"`
	Interactor struct {
		CustodyAddress string `json:"custody_address"`
	} `json:"interactor"`
}

type errorResponse struct {
	Code string `json:"code"`
	Msg  string `json:"message"`
}

type frameVerifierImpl struct {
	baseURL string
	apiKey  string
	client  *retryablehttp.Client
}

// NewFrameVerifier creates a verifier backed by a hub validation endpoint.
// Hubs flake under load, so transient failures are retried with backoff
// before surfacing an error.
func NewFrameVerifier(baseURL, apiKey string) domain.FrameVerifier {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.RetryWaitMin = 200 * time.Millisecond
	client.RetryWaitMax = 2 * time.Second
	client.HTTPClient.Timeout = 10 * time.Second
	client.Logger = nil

	return &frameVerifierImpl{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  client,
	}
}

// Verify validates signed frame message bytes and resolves the interactor's
// custody address
func (f *frameVerifierImpl) Verify(ctx context.Context, messageBytes string) (*domain.FrameMessage, error) {
	reqBody := map[string]string{"message_bytes_in_hex": messageBytes}

	var resp validateResponse
	if err := f.sendRequest(ctx, http.MethodPost, f.baseURL+"/v1/validateMessage", reqBody, http.StatusOK, &resp); err != nil {
		return nil, err
	}

	if !resp.Valid {
		return nil, &domain.FrameServiceError{
			StatusCode: http.StatusUnauthorized,
			Code:       "INVALID_SIGNATURE",
			Message:    "frame message failed validation",
		}
	}

	return &domain.FrameMessage{
		Address:     resp.Interactor.CustodyAddress,
		ButtonIndex: resp.Message.Data.FrameActionBody.ButtonIndex,
		Valid:       true,
	}, nil
}

// sendRequest sends an HTTP request and decodes the response
func (f *frameVerifierImpl) sendRequest(ctx context.Context, method, url string, bodyData any, expectedStatus int, out any) error {
	var body io.Reader

	if bodyData != nil {
		jsonBytes, err := json.Marshal(bodyData)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewBuffer(jsonBytes)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("x-api-key", f.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		var errResp errorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Code != "" {
			return &domain.FrameServiceError{
				StatusCode: resp.StatusCode,
				Code:       errResp.Code,
				Message:    errResp.Msg,
			}
		}
		return &domain.FrameServiceError{
			StatusCode: resp.StatusCode,
			Code:       "UNEXPECTED_STATUS",
			Message:    fmt.Sprintf("unexpected status %d - %s", resp.StatusCode, string(respBody)),
		}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
