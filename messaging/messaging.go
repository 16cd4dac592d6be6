package messaging

import (
	"context"
	"fmt"

	"github.com/telesign/telesign-go/credentials"
	"github.com/telesign/telesign-go/rest"
)

const messagingResource = "/v1/messaging"
const statusResource = "/v1/messaging/%s"

// Client exposes the Messaging API: sending SMS and checking delivery status.
type Client struct {
	rest *rest.Client
}

func New(creds credentials.Credentials, optFns ...func(*rest.Options)) *Client {
	return &Client{rest: rest.New(creds, optFns...)}
}

// Message sends a message to phoneNumber. messageType is one of ARN (alerts,
// reminders, notifications), OTP (one time passwords) or MKT (marketing).
// extra fields are passed through to the API as-is and may be nil.
func (c *Client) Message(ctx context.Context, phoneNumber, message, messageType string, extra *rest.Fields) (*rest.Response, error) {
	fields := rest.NewFields()
	fields.Set("phone_number", phoneNumber)
	fields.Set("message", message)
	fields.Set("message_type", messageType)
	fields.Merge(extra)
	return c.rest.Post(ctx, messagingResource, fields)
}

// Status retrieves the delivery status of an earlier message by the
// reference ID the API returned for it.
func (c *Client) Status(ctx context.Context, referenceId string, extra *rest.Fields) (*rest.Response, error) {
	return c.rest.Get(ctx, fmt.Sprintf(statusResource, referenceId), extra)
}
