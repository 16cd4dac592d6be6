package signing_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/telesign/telesign-go/credentials"
	"github.com/telesign/telesign-go/signing"
)

// Example credentials from the API documentation, not real ones.
var testCreds = credentials.Credentials{
	CustomerID: "FFFFFFFF-EEEE-DDDD-1234-AB1234567890",
	SecretKey:  "EXAMPLETE8sTgg45yusumoN6BYsBVkh+yRJ5czgsnCehZaOYldPJdmFh6NeX8kunZ2zU1YWaUw/0wV6xfw==",
}

const testDate = "Fri, 01 Jan 2021 00:00:00 GMT"
const testNonce = "11111111-1111-1111-1111-111111111111"

func TestExampleCredentialsAreStrictBase64(t *testing.T) {
	//The fixture key must survive the strict decoder the signer uses, otherwise
	//every signing test fails before reaching what it actually asserts.
	rawKey, err := testCreds.Decode()
	if err != nil {
		t.Error(err)
	}
	if len(rawKey) == 0 {
		t.Error("Expected a non-empty decoded key")
	}
}

func TestStringToSignGetCanonicalForm(t *testing.T) {
	expected := "GET\n\nFri, 01 Jan 2021 00:00:00 GMT\nx-ts-auth-method:HMAC-SHA256\nx-ts-nonce:11111111-1111-1111-1111-111111111111\n/v1/test"
	calculated := signing.StringToSign(http.MethodGet, "", testDate, testNonce, "", "/v1/test")
	if calculated != expected {
		t.Errorf("Expected %q, got %q", expected, calculated)
	}
}

func TestStringToSignPostIncludesFieldsLine(t *testing.T) {
	calculated := signing.StringToSign(
		http.MethodPost,
		signing.ContentTypeForMethod(http.MethodPost),
		testDate,
		testNonce,
		"a=1",
		"/v1/test",
	)
	if !strings.Contains(calculated, "\napplication/x-www-form-urlencoded\n") {
		t.Errorf("Expected a content type line in %q", calculated)
	}
	if !strings.HasSuffix(calculated, "\na=1\n/v1/test") {
		t.Errorf("Expected fields line right before the resource line in %q", calculated)
	}
}

func TestStringToSignGetExcludesFields(t *testing.T) {
	//Fields still travel as query string for GET but are deliberately not signed.
	calculated := signing.StringToSign(http.MethodGet, "", testDate, testNonce, "a=1", "/v1/test")
	if strings.Contains(calculated, "a=1") {
		t.Errorf("Fields must not be part of the signed content for GET, got %q", calculated)
	}
}

func TestGenerateHeadersKnownSignature(t *testing.T) {
	signedHeaders, err := signing.GenerateHeaders(testCreds, http.MethodGet, "/v1/test", "", signing.Options{
		Date:  testDate,
		Nonce: testNonce,
	})
	if err != nil {
		t.Error(err)
	}
	expected := "TSA FFFFFFFF-EEEE-DDDD-1234-AB1234567890:RhdMwJywJO9XWT0QaVM8vnmD4IqqY5wtCgf9YzZJO7I="
	if signedHeaders["Authorization"] != expected {
		t.Errorf("Expected %s, got %s", expected, signedHeaders["Authorization"])
	}
}

func TestGenerateHeadersKnownSignaturePost(t *testing.T) {
	signedHeaders, err := signing.GenerateHeaders(testCreds, http.MethodPost, "/v1/test", "a=1", signing.Options{
		Date:  testDate,
		Nonce: testNonce,
	})
	if err != nil {
		t.Error(err)
	}
	expected := "TSA FFFFFFFF-EEEE-DDDD-1234-AB1234567890:9kw4QPyPL0nmenIEE8fmXsBqnilC6ez503Uq0QZ0IsA="
	if signedHeaders["Authorization"] != expected {
		t.Errorf("Expected %s, got %s", expected, signedHeaders["Authorization"])
	}
}

func TestGenerateHeadersDeterministic(t *testing.T) {
	opts := signing.Options{Date: testDate, Nonce: testNonce}
	first, err := signing.GenerateHeaders(testCreds, http.MethodPost, "/v1/test", "a=1", opts)
	if err != nil {
		t.Error(err)
	}
	second, err := signing.GenerateHeaders(testCreds, http.MethodPost, "/v1/test", "a=1", opts)
	if err != nil {
		t.Error(err)
	}
	if first["Authorization"] != second["Authorization"] {
		t.Errorf("Expected identical signatures, got %s and %s", first["Authorization"], second["Authorization"])
	}
}

func TestGenerateHeadersContent(t *testing.T) {
	signedHeaders, err := signing.GenerateHeaders(testCreds, http.MethodPost, "/v1/test", "a=1", signing.Options{
		Date:      testDate,
		Nonce:     testNonce,
		UserAgent: "TeleSignSDK/1.0.0 go/go1.22.3 net-http/go1.22.3",
	})
	if err != nil {
		t.Error(err)
	}
	expectations := map[string]string{
		"Date":             testDate,
		"Content-Type":     "application/x-www-form-urlencoded",
		"x-ts-auth-method": "HMAC-SHA256",
		"x-ts-nonce":       testNonce,
		"User-Agent":       "TeleSignSDK/1.0.0 go/go1.22.3 net-http/go1.22.3",
	}
	for headerName, expected := range expectations {
		if signedHeaders[headerName] != expected {
			t.Errorf("Expected %s=%s, got %s", headerName, expected, signedHeaders[headerName])
		}
	}
}

func TestGenerateHeadersEmptyContentTypeForGet(t *testing.T) {
	signedHeaders, err := signing.GenerateHeaders(testCreds, http.MethodGet, "/v1/test", "", signing.Options{})
	if err != nil {
		t.Error(err)
	}
	contentType, ok := signedHeaders["Content-Type"]
	if !ok {
		t.Error("Expected a Content-Type entry even for GET")
	}
	if contentType != "" {
		t.Errorf("Expected empty Content-Type for GET, got %s", contentType)
	}
}

func TestGenerateHeadersUserAgentOnlyWhenSupplied(t *testing.T) {
	signedHeaders, err := signing.GenerateHeaders(testCreds, http.MethodGet, "/v1/test", "", signing.Options{})
	if err != nil {
		t.Error(err)
	}
	if _, ok := signedHeaders["User-Agent"]; ok {
		t.Error("Expected no User-Agent header when none was supplied")
	}
}

func TestGenerateHeadersDefaults(t *testing.T) {
	signedHeaders, err := signing.GenerateHeaders(testCreds, http.MethodGet, "/v1/test", "", signing.Options{})
	if err != nil {
		t.Error(err)
	}
	if _, err := time.Parse(http.TimeFormat, signedHeaders["Date"]); err != nil {
		t.Errorf("Expected an RFC 2616 date, got %s (%s)", signedHeaders["Date"], err)
	}
	parsedNonce, err := uuid.Parse(signedHeaders["x-ts-nonce"])
	if err != nil {
		t.Errorf("Expected a uuid nonce, got %s (%s)", signedHeaders["x-ts-nonce"], err)
	}
	if parsedNonce.Version() != 4 {
		t.Errorf("Expected a version 4 uuid, got version %d", parsedNonce.Version())
	}

	again, err := signing.GenerateHeaders(testCreds, http.MethodGet, "/v1/test", "", signing.Options{})
	if err != nil {
		t.Error(err)
	}
	if signedHeaders["x-ts-nonce"] == again["x-ts-nonce"] {
		t.Error("Expected consecutive calls to generate different nonces")
	}
}

func TestGenerateHeadersInvalidSecretKey(t *testing.T) {
	badCreds := credentials.Credentials{
		CustomerID: testCreds.CustomerID,
		SecretKey:  "!!!not-base64!!!",
	}
	_, err := signing.GenerateHeaders(badCreds, http.MethodGet, "/v1/test", "", signing.Options{})
	if !errors.Is(err, credentials.ErrInvalidKeyFormat) {
		t.Errorf("Expected ErrInvalidKeyFormat, got %v", err)
	}
}
