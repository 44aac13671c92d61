package security

import (
	"strings"
	"testing"

	"github.com/farshadmz/storefront-backend/pkg/config"
)

func testConfig() config.PasswordConfig {
	// Low-cost parameters keep the test fast; clamping covers the rest.
	return config.PasswordConfig{
		ArgonMemoryKB:    8,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     8,
		ArgonKeyLen:      16,
	}
}

func TestHashAndVerify(t *testing.T) {
	hash, err := HashPassword("hunter2", testConfig())
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$") {
		t.Fatalf("unexpected hash format: %s", hash)
	}

	ok, err := VerifyPassword("hunter2", hash)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if !ok {
		t.Fatal("expected password to verify")
	}

	ok, err = VerifyPassword("wrong", hash)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if ok {
		t.Fatal("expected mismatch to fail verification")
	}
}

func TestHashEmptyPassword(t *testing.T) {
	if _, err := HashPassword("", testConfig()); err == nil {
		t.Fatal("expected error for empty password")
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	for _, encoded := range []string{"", "plain", "$argon2id$v=19$m=8$short", "$bcrypt$x$y$z$w"} {
		if _, err := VerifyPassword("pw", encoded); err == nil {
			t.Fatalf("expected ErrInvalidHash for %q", encoded)
		}
	}
}

func TestHashesAreSalted(t *testing.T) {
	first, err := HashPassword("same-password", testConfig())
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	second, err := HashPassword("same-password", testConfig())
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if first == second {
		t.Fatal("expected distinct salts to produce distinct hashes")
	}
}
