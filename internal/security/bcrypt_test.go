package security

import (
	"testing"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(4) // min cost keeps the test fast

	hash, err := h.Hash("s3cret-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "s3cret-password" {
		t.Fatalf("hash equals plaintext")
	}
	if !h.Verify("s3cret-password", hash) {
		t.Fatalf("correct password did not verify")
	}
	if h.Verify("wrong-password", hash) {
		t.Fatalf("wrong password verified")
	}
}

func TestBcryptHasher_SaltedOutputsDiffer(t *testing.T) {
	h := NewBcryptHasher(4)

	first, err := h.Hash("same-input")
	if err != nil {
		t.Fatalf("first hash: %v", err)
	}
	second, err := h.Hash("same-input")
	if err != nil {
		t.Fatalf("second hash: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same input are identical; salt missing")
	}
	if !h.Verify("same-input", first) || !h.Verify("same-input", second) {
		t.Fatalf("both salted hashes should verify")
	}
}

func TestBcryptHasher_MalformedHashFailsClosed(t *testing.T) {
	h := NewBcryptHasher(4)

	if h.Verify("whatever", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash verified")
	}
	if h.Verify("whatever", "") {
		t.Fatalf("empty hash verified")
	}
}

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	h := NewBcryptHasher(-1)

	hash, err := h.Hash("pw")
	if err != nil {
		t.Fatalf("Hash with fallback cost: %v", err)
	}
	if !h.Verify("pw", hash) {
		t.Fatalf("fallback-cost hash did not verify")
	}
}
