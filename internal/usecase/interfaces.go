package usecase

import "context"

// FirebaseAuthClient is the identity provider collaborator; credential
// issuance and verification live entirely behind it.
type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	SignInWithEmailPassword(email, password string) (string, error)
}

// Notifier delivers an event to a connected user; delivery is best effort
// and a disconnected user is silently skipped.
type Notifier interface {
	NotifyUser(userID string, event interface{})
}
