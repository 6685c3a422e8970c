package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"
	"time"
)

func Test_bodyHash(t *testing.T) {
	data := []byte("hello world")
	got := bodyHash(data)

	sum := sha256.Sum256(data)
	want := hex.EncodeToString(sum[:])
	if got != want {
		t.Fatalf("bodyHash mismatch: got %s want %s", got, want)
	}
}

func Test_buildKey(t *testing.T) {
	k := buildKey("POST", "/apply-loans", "borrower@example.com", strings.Repeat("a", 32))
	if !strings.HasPrefix(k, "idemp:post:/apply-loans:") {
		t.Fatalf("buildKey prefix mismatch: %q", k)
	}
	if !strings.Contains(k, ":borrower@example.com:") || !strings.HasSuffix(k, strings.Repeat("a", 32)) {
		t.Fatalf("buildKey missing caller/request segments: %q", k)
	}
}

func Test_validReqID(t *testing.T) {
	t.Run("accepts uuid v4 and 32-hex", func(t *testing.T) {
		valid := []string{
			"3f9a6a1b-3d54-4fbe-8b3a-6b3e8d6b2c88",
			strings.Repeat("a", 32),
			"3f9a6a1b3d544fbe8b3a6b3e8d6b2c88",
		}
		for _, s := range valid {
			if !validReqID(s) {
				t.Fatalf("validReqID should accept %q", s)
			}
		}
	})

	t.Run("rejects bad formats", func(t *testing.T) {
		invalid := []string{
			"",
			strings.Repeat("a", 31),
			strings.Repeat("a", 33),
			strings.Repeat("z", 32),
			"3f9a6a1b-3d54-9fbe-8b3a-6b3e8d6b2c88", // invalid UUID version '9'
		}
		for _, s := range invalid {
			if validReqID(s) {
				t.Fatalf("validReqID should reject %q", s)
			}
		}
	})
}

func Test_provisionalSet_LoadEntry(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()

	key := buildKey("POST", "/apply-loans", "borrower@example.com", strings.Repeat("a", 32))
	entry := idempEntry{
		InProgress: true,
		BodySHA256: bodyHash([]byte(`{"a":1}`)),
		RequestID:  strings.Repeat("a", 32),
		CreatedAt:  time.Now().UTC(),
	}

	ok, err := provisionalSet(context.Background(), rdb, key, entry)
	if err != nil || !ok {
		t.Fatalf("provisionalSet 1: ok=%v err=%v", ok, err)
	}

	ttl := rdb.TTL(context.Background(), key).Val()
	if ttl <= 0 || ttl > provisionalLockTTL {
		t.Fatalf("provisional TTL not set correctly: %v", ttl)
	}

	ok, err = provisionalSet(context.Background(), rdb, key, entry)
	if err != nil {
		t.Fatalf("provisionalSet 2 err: %v", err)
	}
	if ok {
		t.Fatalf("provisionalSet 2 should be false")
	}

	got, err := loadEntry(context.Background(), rdb, key)
	if err != nil {
		t.Fatalf("loadEntry err: %v", err)
	}
	if !got.InProgress || got.RequestID != entry.RequestID || got.BodySHA256 != entry.BodySHA256 {
		t.Fatalf("loaded entry mismatch: %+v vs %+v", got, entry)
	}
}

func Test_saveFinal_Load_TTL(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()

	key := buildKey("POST", "/apply-loans", "borrower@example.com", strings.Repeat("a", 32))
	final := idempEntry{
		Code:       201,
		Body:       []byte(`{"ok":true}`),
		BodySHA256: bodyHash([]byte(`{"ok":true}`)),
		RequestID:  strings.Repeat("a", 32),
		CreatedAt:  time.Now().UTC(),
	}

	ttlWant := 5 * time.Second
	if err := saveFinal(context.Background(), rdb, key, final, ttlWant); err != nil {
		t.Fatalf("saveFinal err: %v", err)
	}

	ttl := rdb.TTL(context.Background(), key).Val()
	if ttl <= 0 || ttl > ttlWant {
		t.Fatalf("final TTL out of range: got %v want <= %v", ttl, ttlWant)
	}

	got, err := loadEntry(context.Background(), rdb, key)
	if err != nil {
		t.Fatalf("load after final err: %v", err)
	}
	if got.Code != 201 || string(got.Body) != `{"ok":true}` || got.InProgress {
		t.Fatalf("final entry mismatch: %+v", got)
	}
}
