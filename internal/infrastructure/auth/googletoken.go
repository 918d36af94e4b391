package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"ticketdesk/internal/shared/biztime"
)

const (
	// googleTokenInfoURL verifies an externally obtained Google ID token.
	googleTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

	// verifyTimeout bounds the outbound verification call.
	verifyTimeout = 8 * time.Second
)

// ErrGoogleClientIDNotConfigured marks the misconfiguration case: the
// deployment has no client identifier, so federated login cannot be
// performed at all. Fatal to the operation, not the process.
var ErrGoogleClientIDNotConfigured = errors.New("google client ID is not configured")

// GoogleIdentity is the verified assertion extracted from a valid ID token.
type GoogleIdentity struct {
	// Email is normalized to trimmed lowercase.
	Email string
	// Sub is the external identity subject id.
	Sub string
}

type googleTokenInfo struct {
	Aud   string `json:"aud"`
	Exp   string `json:"exp"`
	Email string `json:"email"`
	Sub   string `json:"sub"`
}

// GoogleTokenVerifier validates Google ID tokens against the tokeninfo
// endpoint. It holds no mutable state and is safe for concurrent use.
type GoogleTokenVerifier struct {
	clientID    string
	endpointURL string
	httpClient  *http.Client
}

func NewGoogleTokenVerifier(clientID string) *GoogleTokenVerifier {
	return &GoogleTokenVerifier{
		clientID:    clientID,
		endpointURL: googleTokenInfoURL,
		httpClient: &http.Client{
			Timeout: verifyTimeout,
		},
	}
}

// Verify confirms the ID token with Google and checks audience and expiry.
// Transport failures, non-2xx responses, malformed payloads, audience
// mismatches and expired assertions all fail; callers surface every failure
// as the same generic invalid-identity condition.
func (v *GoogleTokenVerifier) Verify(ctx context.Context, idToken string) (*GoogleIdentity, error) {
	if v.clientID == "" {
		return nil, ErrGoogleClientIDNotConfigured
	}

	endpoint := v.endpointURL + "?" + url.Values{"id_token": {idToken}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create tokeninfo request: %w", err)
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tokeninfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("tokeninfo returned status %d", resp.StatusCode)
	}

	var info googleTokenInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode tokeninfo response: %w", err)
	}

	if info.Aud != v.clientID {
		return nil, fmt.Errorf("token audience mismatch")
	}

	exp, err := strconv.ParseInt(info.Exp, 10, 64)
	if err != nil {
		exp = 0
	}
	if exp <= biztime.NowUTC().Unix() {
		return nil, fmt.Errorf("token expired")
	}

	email, err := normalizeEmail(info.Email)
	if err != nil {
		return nil, err
	}

	return &GoogleIdentity{
		Email: email,
		Sub:   info.Sub,
	}, nil
}

func normalizeEmail(email string) (string, error) {
	normalized := trimLower(email)
	if normalized == "" {
		return "", fmt.Errorf("account email missing from token")
	}
	return normalized, nil
}
