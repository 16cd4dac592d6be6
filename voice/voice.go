package voice

import (
	"context"
	"fmt"

	"github.com/telesign/telesign-go/credentials"
	"github.com/telesign/telesign-go/rest"
)

const voiceResource = "/v1/voice"
const statusResource = "/v1/voice/%s"

// Client exposes the Voice API: text-to-speech calls and their status.
type Client struct {
	rest *rest.Client
}

func New(creds credentials.Credentials, optFns ...func(*rest.Options)) *Client {
	return &Client{rest: rest.New(creds, optFns...)}
}

// Call places a call to phoneNumber that speaks message. messageType is one
// of ARN, OTP or MKT, same semantics as for messaging. extra may be nil.
func (c *Client) Call(ctx context.Context, phoneNumber, message, messageType string, extra *rest.Fields) (*rest.Response, error) {
	fields := rest.NewFields()
	fields.Set("phone_number", phoneNumber)
	fields.Set("message", message)
	fields.Set("message_type", messageType)
	fields.Merge(extra)
	return c.rest.Post(ctx, voiceResource, fields)
}

// Status retrieves the status of an earlier call by its reference ID.
func (c *Client) Status(ctx context.Context, referenceId string, extra *rest.Fields) (*rest.Response, error) {
	return c.rest.Get(ctx, fmt.Sprintf(statusResource, referenceId), extra)
}
