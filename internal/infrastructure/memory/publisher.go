package memory

import (
	"context"
	"log"

	"github.com/admindash/auth-service/internal/application/auth"
)

type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher { return &NoopPublisher{} }

func (p *NoopPublisher) PublishRegistrationSubmitted(ctx context.Context, evt auth.RegistrationSubmittedEvent) error {
	log.Printf("[noop-pub] registration submitted: user_id=%s email=%s", evt.UserID, evt.Email)
	return nil
}

func (p *NoopPublisher) PublishUserApproved(ctx context.Context, evt auth.UserApprovedEvent) error {
	log.Printf("[noop-pub] user approved: user_id=%s email=%s", evt.UserID, evt.Email)
	return nil
}
