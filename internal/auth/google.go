package auth

import (
	"context"
	"fmt"

	"github.com/josefahaz/bucksportbaseball/internal/entities"

	"google.golang.org/api/idtoken"
)

// GooglePayload carries the identity fields extracted from a Google ID token.
type GooglePayload struct {
	Email     string
	GoogleID  string
	FirstName string
	LastName  string
}

// GoogleVerifier validates a Google ID token and returns the identity it asserts.
type GoogleVerifier interface {
	Verify(ctx context.Context, token string) (*GooglePayload, error)
}

type googleVerifier struct {
	clientID string
}

// NewGoogleVerifier builds a verifier bound to the OAuth client the frontend uses.
func NewGoogleVerifier(clientID string) GoogleVerifier {
	return &googleVerifier{clientID: clientID}
}

func (v *googleVerifier) Verify(ctx context.Context, token string) (*GooglePayload, error) {
	payload, err := idtoken.Validate(ctx, token, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrInvalidToken, err)
	}

	p := &GooglePayload{
		Email:    claimString(payload.Claims, "email"),
		GoogleID: payload.Subject,
	}
	p.FirstName = claimString(payload.Claims, "given_name")
	p.LastName = claimString(payload.Claims, "family_name")
	if p.Email == "" {
		return nil, fmt.Errorf("%w: token has no email claim", entities.ErrInvalidToken)
	}
	return p, nil
}

func claimString(claims map[string]interface{}, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
