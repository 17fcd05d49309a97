package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	Iservices "voice-notes/internal/domain/interfaces/services"
	"voice-notes/internal/infra/logger"
)

const profileEmailPath = "/v2/accounts/~current/settings/Profile.email"

type profileErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ProfileProvider reads the user's email address from the voice platform's
// customer profile API.
type ProfileProvider struct {
	Logger     *logger.Logger
	HttpClient *http.Client
}

func NewProfileProvider(logger *logger.Logger, httpClient *http.Client) *ProfileProvider {
	return &ProfileProvider{Logger: logger, HttpClient: httpClient}
}

// GetProfileEmail fetches the email address of the user the token belongs to.
//
// Parameters:
//   - apiEndpoint: base URL of the platform API, as sent in the request envelope.
//   - token: the API access token of the current request.
//
// Returns Iservices.ErrAccessDenied (wrapped) for 401/403 answers or an ACCESS_DENIED
// error code, and a plain error for every other failure. An empty string with
// a nil error means the profile has no email address.
func (pp *ProfileProvider) GetProfileEmail(ctx context.Context, apiEndpoint string, token string) (string, error) {
	if apiEndpoint == "" {
		return "", fmt.Errorf("profile api endpoint is not set")
	}

	url := strings.TrimRight(apiEndpoint, "/") + profileEmailPath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	req.Header.Set("Accept", "application/json")

	res, err := pp.HttpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if res.StatusCode == http.StatusNoContent {
		return "", nil
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		var apiErr profileErrorBody
		_ = json.Unmarshal(body, &apiErr)

		if res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden || apiErr.Code == "ACCESS_DENIED" {
			pp.Logger.Info(fmt.Sprintf("Profile email access denied: %s %s", res.Status, apiErr.Message))
			return "", fmt.Errorf("%w: %s", Iservices.ErrAccessDenied, res.Status)
		}

		pp.Logger.Error(fmt.Sprintf("Unexpected HTTP status %s response_body %s", res.Status, string(body)))
		return "", fmt.Errorf("unexpected HTTP status: %s", res.Status)
	}

	var email string
	if err := json.Unmarshal(body, &email); err != nil {
		return "", fmt.Errorf("error decoding response JSON: %w", err)
	}

	return strings.TrimSpace(email), nil
}
