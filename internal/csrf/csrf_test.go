package csrf

import "testing"

func TestGenerateTokenUnique(t *testing.T) {
	a, err := GenerateToken()
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateToken()
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("two generated tokens are identical")
	}
}

func TestValidateToken(t *testing.T) {
	if !ValidateToken("abc", "abc") {
		t.Error("matching tokens rejected")
	}
	if ValidateToken("abc", "xyz") {
		t.Error("mismatched tokens accepted")
	}
	if ValidateToken("", "") {
		t.Error("empty tokens accepted")
	}
}
