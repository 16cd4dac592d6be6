package testutils

import (
	"os"
	"testing"

	"github.com/joho/godotenv"

	"github.com/telesign/telesign-go/credentials"
)

const (
	EnvVarCustomerId = "TELESIGN_CUSTOMER_ID"
	EnvVarApiKey     = "TELESIGN_API_KEY"
)

// SkipWithoutIntegrationCreds loads credentials for live API tests from the
// environment, with an optional .env file in the working directory as
// fallback. Tests calling this are skipped on developer machines and CI runs
// that have no account configured.
func SkipWithoutIntegrationCreds(t testing.TB) credentials.Credentials {
	//Errors are expected when there is no .env file, the environment decides.
	_ = godotenv.Load()

	customerId := os.Getenv(EnvVarCustomerId)
	apiKey := os.Getenv(EnvVarApiKey)
	if customerId == "" || apiKey == "" {
		t.Skipf("Skipping this test because %s and %s are not set.", EnvVarCustomerId, EnvVarApiKey)
	}
	return credentials.Credentials{
		CustomerID: customerId,
		SecretKey:  apiKey,
	}
}
