package constants

import "time"

const (
	// AuthMethodHeader tells the server which hashing scheme signed the request
	AuthMethodHeader = "x-ts-auth-method"

	// NonceHeader carries the single-use token that makes every signature unique
	NonceHeader = "x-ts-nonce"

	// DateHeader participates in signing; go-http-utils/headers does not
	// export a constant for it so it is spelled out here
	DateHeader = "Date"

	// AuthMethodHMACSHA256 is the only auth method this SDK produces
	AuthMethodHMACSHA256 = "HMAC-SHA256"

	// AuthScheme prefixes the Authorization header value ("TSA <customer_id>:<signature>")
	AuthScheme = "TSA"

	// FormContentType is signed and sent for every body-carrying request
	FormContentType = "application/x-www-form-urlencoded"

	// DefaultAPIHost is where requests go unless overridden at client construction
	DefaultAPIHost = "https://rest.telesign.com"

	// DefaultTimeout bounds a whole exchange including reading the response body
	DefaultTimeout = 10 * time.Second

	// SDKName and SDKVersion identify this library in the User-Agent header
	SDKName    = "TeleSignSDK"
	SDKVersion = "1.0.0"
)
