package Iservices

import (
	"context"
	"errors"
)

// IProfileService resolves the user's contact address through the voice
// platform's customer profile API.
type IProfileService interface {
	GetProfileEmail(ctx context.Context, apiEndpoint string, token string) (string, error)
}

// ErrAccessDenied is returned (wrapped) when the profile API refuses the
// request because the user has not granted, or has revoked, the permission.
var ErrAccessDenied = errors.New("profile access denied")
