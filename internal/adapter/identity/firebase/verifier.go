// Package firebase verifies Firebase ID tokens with the Firebase Admin SDK.
package firebase

import (
	"context"
	"fmt"

	fb "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/heartmarshall/clearcare-backend/internal/domain"
)

type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// Verifier turns a Firebase ID token into a domain.Identity.
type Verifier struct {
	client idTokenVerifier
}

// NewVerifier initialises a Firebase app and its auth client.
// An empty credentialsFile falls back to application default credentials.
func NewVerifier(ctx context.Context, projectID, credentialsFile string) (*Verifier, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	var cfg *fb.Config
	if projectID != "" {
		cfg = &fb.Config{ProjectID: projectID}
	}

	app, err := fb.NewApp(ctx, cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("get firebase auth client: %w", err)
	}

	return &Verifier{client: client}, nil
}

// VerifyToken validates the ID token's signature, expiry and audience.
func (v *Verifier) VerifyToken(ctx context.Context, token string) (domain.Identity, error) {
	if token == "" {
		return domain.Identity{}, fmt.Errorf("token is empty")
	}

	t, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("verify id token: %w", err)
	}
	if t.UID == "" {
		return domain.Identity{}, fmt.Errorf("id token has no uid")
	}

	email, _ := t.Claims["email"].(string)
	return domain.Identity{UID: t.UID, Email: email}, nil
}
