package phoneid

import (
	"context"
	"fmt"

	"github.com/telesign/telesign-go/credentials"
	"github.com/telesign/telesign-go/rest"
)

const phoneidResource = "/v1/phoneid/%s"

// Client exposes the PhoneID API which returns carrier, line type and
// contact metadata for a phone number.
type Client struct {
	rest *rest.Client
}

func New(creds credentials.Credentials, optFns ...func(*rest.Options)) *Client {
	return &Client{rest: rest.New(creds, optFns...)}
}

// PhoneID looks up metadata for phoneNumber. extra carries optional
// parameters like account_lifecycle_event and may be nil.
func (c *Client) PhoneID(ctx context.Context, phoneNumber string, extra *rest.Fields) (*rest.Response, error) {
	fields := rest.NewFields()
	fields.Merge(extra)
	return c.rest.Post(ctx, fmt.Sprintf(phoneidResource, phoneNumber), fields)
}
