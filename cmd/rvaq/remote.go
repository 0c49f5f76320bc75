package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"richmondtech/internal/delivery/http/helpers"
	"richmondtech/internal/domain"
)

// remote talks to a running rvaq API using the same response envelope
// the server emits.

func remoteAsk(ctx context.Context, base, question string) (*domain.Answer, error) {
	body, _ := json.Marshal(map[string]string{"question": question})
	var answer domain.Answer
	if err := remoteCall(ctx, http.MethodPost, base+"/ask", "", bytes.NewReader(body), &answer); err != nil {
		return nil, err
	}
	return &answer, nil
}

func remoteHealth(ctx context.Context, base string) (*domain.Health, error) {
	var h domain.Health
	if err := remoteCall(ctx, http.MethodGet, base+"/health", "", nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

func remoteSeed(ctx context.Context, base, token string) (int, error) {
	var out struct {
		ItemsWritten int `json:"items_written"`
	}
	if err := remoteCall(ctx, http.MethodPost, base+"/admin/seed", token, nil, &out); err != nil {
		return 0, err
	}
	return out.ItemsWritten, nil
}

func remoteCall(ctx context.Context, method, url, token string, body *bytes.Reader, dest any) error {
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, method, url, body)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, url, nil)
	}
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", strings.TrimPrefix(url, "https://"), err)
	}
	defer resp.Body.Close()

	var envelope struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}
	if envelope.Error != nil {
		return fmt.Errorf("%s: %s", envelope.Error.Code, envelope.Error.Message)
	}
	if dest != nil && len(envelope.Data) > 0 {
		return json.Unmarshal(envelope.Data, dest)
	}
	return nil
}
