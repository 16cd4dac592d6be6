package credentials

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// Credentials identify one customer account against the REST API.
// The secret key stays base64 as handed out by the portal and is only
// decoded at signing time. A Credentials value is never mutated after
// construction so it can be shared freely between goroutines.
type Credentials struct {
	CustomerID string
	SecretKey  string
}

var ErrInvalidKeyFormat = errors.New("secret key is not valid base64")

// Decode returns the raw key bytes the HMAC is computed with.
func (c Credentials) Decode() ([]byte, error) {
	rawKey, err := base64.StdEncoding.DecodeString(c.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidKeyFormat, err)
	}
	return rawKey, nil
}
