package payment

import "context"

// Provider issues race tickets. Implementations make one attempt per call.
type Provider interface {
	CreateLink(ctx context.Context, userID string) (string, error)
	CheckPaid(ctx context.Context, userID string) (bool, error)
}
