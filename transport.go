package jobseq

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// tokenPath is the OAuth2 password-grant endpoint. Everything else lives
// under apiPrefix.
const (
	tokenPath = "/token"
	apiPrefix = "/api/External/"
)

// authenticate performs the password-grant token exchange and returns the
// access token.
func (c *Client) authenticate(ctx context.Context, username, password string) (string, error) {
	form := url.Values{
		"grant_type": {"password"},
		"username":   {username},
		"password":   {password},
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+tokenPath,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", authError("building token request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded;charset=UTF-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", authError("token exchange failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", authError("token endpoint returned "+resp.Status, statusError(resp.StatusCode))
	}

	var grant struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&grant); err != nil {
		return "", authError("decoding token response", err)
	}
	if grant.AccessToken == "" {
		return "", authError("token response missing access_token", nil)
	}

	c.logger.DebugContext(ctx, "authenticated", "username", username)
	return grant.AccessToken, nil
}

// send performs one authenticated API call and returns the response body.
// target is the path below /api/External/, including any query string.
func (c *Client) send(ctx context.Context, method, target string, body []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+target, reader)
	if err != nil {
		return nil, &Error{Code: "REQUEST", Message: "building request", Cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	c.logger.DebugContext(ctx, "jobseq request", "method", method, "target", target, "bytes", len(body))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Code: "TRANSPORT", Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	c.setServerVersion(resp.Header.Get("X-Api-Version"))

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Code: "TRANSPORT", Message: "reading response", Cause: err}
	}

	c.logger.DebugContext(ctx, "jobseq response", "target", target, "status", resp.StatusCode, "bytes", len(out))

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp.StatusCode)
	}
	return out, nil
}

// runAnalytic posts a request body to the v1 analytic runner identified
// by its UUID.
func (c *Client) runAnalytic(ctx context.Context, analyticID string, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &Error{Code: "REQUEST", Message: "marshalling payload", Cause: err}
	}
	return c.send(ctx, http.MethodPost, "runanalytic?id="+url.QueryEscape(analyticID), payload)
}

// runV2 posts a request body to a named v2 endpoint.
func (c *Client) runV2(ctx context.Context, endpoint string, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &Error{Code: "REQUEST", Message: "marshalling payload", Cause: err}
	}
	return c.send(ctx, http.MethodPost, endpoint, payload)
}

// getLookup fetches a taxonomy list, serving repeats from the LRU cache.
func (c *Client) getLookup(ctx context.Context, target string) ([]byte, error) {
	if cached, ok := c.lookupCache.Get(target); ok {
		c.logger.DebugContext(ctx, "lookup cache hit", "target", target)
		return cached, nil
	}
	out, err := c.send(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	c.lookupCache.Add(target, out)
	return out, nil
}

// RunAnalyticByID runs a v1 analytic by UUID with an arbitrary request
// body (typically a [*Payload]) and returns the decoded response without
// normalization. Pair it with [Extract] for analytics this SDK has no
// typed method for.
func (c *Client) RunAnalyticByID(ctx context.Context, analyticID string, body any) (any, error) {
	raw, err := c.runAnalytic(ctx, analyticID, body)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, decodeError(err)
	}
	return v, nil
}

// RunAnalyticByURI runs a v2 endpoint by name with an arbitrary request
// body and returns the decoded response without normalization.
func (c *Client) RunAnalyticByURI(ctx context.Context, endpoint string, body any) (any, error) {
	raw, err := c.runV2(ctx, endpoint, body)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, decodeError(err)
	}
	return v, nil
}
