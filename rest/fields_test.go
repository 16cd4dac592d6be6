package rest_test

import (
	"testing"

	"github.com/telesign/telesign-go/rest"
)

func TestEncodePreservesInsertionOrder(t *testing.T) {
	//The signed bytes must match the sent bytes so encoding may not re-sort keys.
	fields := rest.NewFields()
	fields.Set("zulu", "1")
	fields.Set("alpha", "2")
	fields.Set("mike", "3")
	expected := "zulu=1&alpha=2&mike=3"
	if fields.Encode() != expected {
		t.Errorf("Expected %s, got %s", expected, fields.Encode())
	}
}

func TestEncodeIsStable(t *testing.T) {
	fields := rest.NewFields()
	fields.Set("phone_number", "15558675309")
	fields.Set("message", "Hello world")
	first := fields.Encode()
	second := fields.Encode()
	if first != second {
		t.Errorf("Expected identical encodings, got %s and %s", first, second)
	}
}

func TestEncodeEscapesValues(t *testing.T) {
	fields := rest.NewFields()
	fields.Set("message", "Hello world & more")
	expected := "message=Hello+world+%26+more"
	if fields.Encode() != expected {
		t.Errorf("Expected %s, got %s", expected, fields.Encode())
	}
}

func TestEncodeRepeatedKeys(t *testing.T) {
	fields := rest.NewFields()
	fields.Add("feature", "a")
	fields.Add("feature", "b")
	fields.Add("other", "c")
	expected := "feature=a&feature=b&other=c"
	if fields.Encode() != expected {
		t.Errorf("Expected %s, got %s", expected, fields.Encode())
	}
}

func TestSetReplacesButKeepsPosition(t *testing.T) {
	fields := rest.NewFields()
	fields.Set("first", "1")
	fields.Set("second", "2")
	fields.Set("first", "updated")
	expected := "first=updated&second=2"
	if fields.Encode() != expected {
		t.Errorf("Expected %s, got %s", expected, fields.Encode())
	}
}

func TestNilFieldsEncodeEmpty(t *testing.T) {
	var fields *rest.Fields
	if fields.Encode() != "" {
		t.Errorf("Expected empty encoding for nil Fields, got %s", fields.Encode())
	}
	if fields.Len() != 0 {
		t.Errorf("Expected zero length for nil Fields, got %d", fields.Len())
	}
}

func TestMerge(t *testing.T) {
	fields := rest.NewFields()
	fields.Set("a", "1")
	extra := rest.NewFields()
	extra.Set("b", "2")
	fields.Merge(extra)
	fields.Merge(nil)
	expected := "a=1&b=2"
	if fields.Encode() != expected {
		t.Errorf("Expected %s, got %s", expected, fields.Encode())
	}
}
