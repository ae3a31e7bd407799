package utils

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2/google"
)

// ScopeSheets is the spreadsheet scope the roster publisher needs
const ScopeSheets = "https://www.googleapis.com/auth/spreadsheets"

// ServiceAccountClient builds an authenticated HTTP client from a service
// account key file. Tokens are minted and refreshed by the JWT token source,
// so the caller never handles credentials beyond the key path.
func ServiceAccountClient(ctx context.Context, credentialsFile string, scopes ...string) (*http.Client, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	jwtConfig, err := google.JWTConfigFromJSON(data, scopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account key: %w", err)
	}

	return jwtConfig.Client(ctx), nil
}
