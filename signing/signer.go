// https://developer.telesign.com/enterprise/docs/authentication
// Every request carries an Authorization header of the form TSA <customer_id>:<signature>
// where the signature is an HMAC-SHA256 over a canonical string the server rebuilds
// independently. Any byte of difference and the request is rejected.
package signing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"time"

	"github.com/go-http-utils/headers"
	"github.com/google/uuid"

	"github.com/telesign/telesign-go/constants"
	"github.com/telesign/telesign-go/credentials"
)

// Options are the per-request knobs of header generation. Zero values mean
// "pick a sane default": Date becomes the current UTC time in RFC 2616 form
// and Nonce becomes a fresh uuid4. Explicit values exist so that callers
// (and tests) can produce a fully deterministic signature.
type Options struct {
	Date      string
	Nonce     string
	UserAgent string
}

// ContentTypeForMethod returns the content type that participates in signing.
// Only body-carrying methods have one; for everything else it is the empty
// string which still contributes an empty line to the canonical string.
func ContentTypeForMethod(method string) string {
	if method == http.MethodPost || method == http.MethodPut {
		return constants.FormContentType
	}
	return ""
}

// StringToSign builds the canonical byte sequence the HMAC is computed over.
// The layout is fixed by the server side:
//
//	METHOD\n<content-type>\n<date>\nx-ts-auth-method:HMAC-SHA256\nx-ts-nonce:<nonce>[\n<encoded fields>]\n<resource>
//
// The fields line is only present when there is a content type, i.e. for
// POST/PUT. GET and DELETE requests exclude their query fields from the
// signed content even when fields are sent. That asymmetry is part of the
// protocol, do not "fix" it.
func StringToSign(method, contentType, date, nonce, encodedFields, resource string) string {
	cs := method
	cs += "\n" + contentType
	cs += "\n" + date
	cs += "\n" + constants.AuthMethodHeader + ":" + constants.AuthMethodHMACSHA256
	cs += "\n" + constants.NonceHeader + ":" + nonce
	if contentType != "" {
		cs += "\n" + encodedFields
	}
	cs += "\n" + resource
	return cs
}

// GenerateHeaders derives the authentication headers for a single request.
// encodedFields must already be in application/x-www-form-urlencoded form;
// encoding correctness is the caller's responsibility. The resource is used
// verbatim, it is not normalized. The function does no I/O and the only
// error path is a secret key that fails base64 decoding.
func GenerateHeaders(creds credentials.Credentials, method, resource, encodedFields string, opts Options) (map[string]string, error) {
	date := opts.Date
	if date == "" {
		date = time.Now().UTC().Format(http.TimeFormat)
	}
	nonce := opts.Nonce
	if nonce == "" {
		nonce = uuid.New().String()
	}
	contentType := ContentTypeForMethod(method)

	rawKey, err := creds.Decode()
	if err != nil {
		return nil, err
	}

	h := hmac.New(sha256.New, rawKey)
	h.Write([]byte(StringToSign(method, contentType, date, nonce, encodedFields, resource)))
	signature := base64.StdEncoding.EncodeToString(h.Sum(nil))

	signedHeaders := map[string]string{
		headers.Authorization:      constants.AuthScheme + " " + creds.CustomerID + ":" + signature,
		constants.DateHeader:       date,
		headers.ContentType:        contentType,
		constants.AuthMethodHeader: constants.AuthMethodHMACSHA256,
		constants.NonceHeader:      nonce,
	}
	if opts.UserAgent != "" {
		signedHeaders[headers.UserAgent] = opts.UserAgent
	}
	return signedHeaders, nil
}
