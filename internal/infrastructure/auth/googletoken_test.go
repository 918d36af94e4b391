package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVerifier(t *testing.T, clientID string, handler http.HandlerFunc) *GoogleTokenVerifier {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	verifier := NewGoogleTokenVerifier(clientID)
	verifier.endpointURL = server.URL
	return verifier
}

func futureExp() string {
	return fmt.Sprintf("%d", time.Now().Add(time.Hour).Unix())
}

func TestGoogleTokenVerifier_Verify(t *testing.T) {
	verifier := newTestVerifier(t, "client-123", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "some-id-token", r.URL.Query().Get("id_token"))
		fmt.Fprintf(w, `{"aud":"client-123","exp":"%s","email":"  Alice@Example.COM ","sub":"google-sub-1"}`, futureExp())
	})

	identity, err := verifier.Verify(context.Background(), "some-id-token")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", identity.Email)
	assert.Equal(t, "google-sub-1", identity.Sub)
}

func TestGoogleTokenVerifier_Verify_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-2xx response",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
			},
		},
		{
			name: "malformed payload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, "not json")
			},
		},
		{
			name: "audience mismatch",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprintf(w, `{"aud":"other-client","exp":"%s","email":"a@b.com","sub":"s"}`, futureExp())
			},
		},
		{
			name: "expired assertion",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"aud":"client-123","exp":"1000","email":"a@b.com","sub":"s"}`)
			},
		},
		{
			name: "missing email",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprintf(w, `{"aud":"client-123","exp":"%s","email":"","sub":"s"}`, futureExp())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := newTestVerifier(t, "client-123", tt.handler)

			_, err := verifier.Verify(context.Background(), "some-id-token")
			assert.Error(t, err)
		})
	}
}

func TestGoogleTokenVerifier_Verify_MissingClientID(t *testing.T) {
	verifier := NewGoogleTokenVerifier("")

	_, err := verifier.Verify(context.Background(), "some-id-token")
	assert.ErrorIs(t, err, ErrGoogleClientIDNotConfigured)
}
