package appverify

import (
	"context"
	"fmt"

	"github.com/telesign/telesign-go/credentials"
	"github.com/telesign/telesign-go/rest"
)

const statusResource = "/v1/mobile/verification/status/%s"

// Client exposes the App Verify API for checking the state of in-app phone
// verification flows by their external ID.
type Client struct {
	rest *rest.Client
}

func New(creds credentials.Credentials, optFns ...func(*rest.Options)) *Client {
	return &Client{rest: rest.New(creds, optFns...)}
}

// Status retrieves the verification state for externalId. extra may be nil.
func (c *Client) Status(ctx context.Context, externalId string, extra *rest.Fields) (*rest.Response, error) {
	return c.rest.Get(ctx, fmt.Sprintf(statusResource, externalId), extra)
}
