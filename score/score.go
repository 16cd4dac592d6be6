package score

import (
	"context"
	"fmt"

	"github.com/telesign/telesign-go/credentials"
	"github.com/telesign/telesign-go/rest"
)

const scoreResource = "/v1/score/%s"

// Client exposes the Score API which rates the fraud risk of a phone number.
type Client struct {
	rest *rest.Client
}

func New(creds credentials.Credentials, optFns ...func(*rest.Options)) *Client {
	return &Client{rest: rest.New(creds, optFns...)}
}

// Score rates phoneNumber in the context of accountLifecycleEvent, one of
// create, sign-in, transact, update or delete. extra may be nil.
func (c *Client) Score(ctx context.Context, phoneNumber, accountLifecycleEvent string, extra *rest.Fields) (*rest.Response, error) {
	fields := rest.NewFields()
	fields.Set("account_lifecycle_event", accountLifecycleEvent)
	fields.Merge(extra)
	return c.rest.Post(ctx, fmt.Sprintf(scoreResource, phoneNumber), fields)
}
