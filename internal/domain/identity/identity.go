package identity

import "context"

// Identity is the account resolved from the external identity provider.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Service is the external identity provider. Sign-up and token verification
// both happen on the provider's side; nothing about credentials is stored
// locally.
type Service interface {
	// SignUp creates a pre-confirmed account. Provider rejections come back
	// as apperror.ErrProvider with the provider's message, transport
	// failures as apperror.ErrInternal.
	SignUp(ctx context.Context, email, password, name string) (*Identity, error)

	// ResolveCaller exchanges the raw Authorization header value for the
	// calling identity. A missing, malformed, or rejected token yields
	// apperror.ErrUnauthorized, never a panic or a 500.
	ResolveCaller(ctx context.Context, authorizationHeader string) (*Identity, error)
}
