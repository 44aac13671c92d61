package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	pkgerrors "github.com/farshadmz/storefront-backend/pkg/errors"
)

type fakeRateStore struct {
	mu     sync.Mutex
	counts map[string]int64
}

func newFakeRateStore() *fakeRateStore {
	return &fakeRateStore{counts: map[string]int64{}}
}

func (f *fakeRateStore) IncrWithTTL(_ context.Context, key string, _ time.Duration) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[key]++
	return f.counts[key], nil
}

func TestSubmitRateLimit_AllowsUnderLimit(t *testing.T) {
	store := newFakeRateStore()
	policy := NewSubmitRateLimitPolicy("inquiry", time.Minute, 2)
	handler := SubmitRateLimit(policy, store, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/products/mug/inquiry", nil)
	req.RemoteAddr = "1.2.3.4:5678"
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSubmitRateLimit_IPLimitTriggers(t *testing.T) {
	store := newFakeRateStore()
	policy := NewSubmitRateLimitPolicy("inquiry", time.Minute, 2)
	handler := SubmitRateLimit(policy, store, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/products/mug/inquiry", nil)
		req.RemoteAddr = "1.2.3.4:5678"
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if i < 2 {
			if rec.Code != http.StatusOK {
				t.Fatalf("expected success before limit, got %d", rec.Code)
			}
			continue
		}

		if rec.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", rec.Code)
		}
		var payload struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
			t.Fatalf("decode error: %v", err)
		}
		if payload.Error.Code != string(pkgerrors.CodeRateLimit) {
			t.Fatalf("unexpected code: %s", payload.Error.Code)
		}
	}
}

func TestSubmitRateLimit_DistinctIPsDoNotShareBudget(t *testing.T) {
	store := newFakeRateStore()
	policy := NewSubmitRateLimitPolicy("inquiry", time.Minute, 1)
	handler := SubmitRateLimit(policy, store, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, addr := range []string{"1.2.3.4:1111", "5.6.7.8:2222"} {
		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected first request from %s to pass, got %d", addr, rec.Code)
		}
	}
}

func TestSubmitRateLimit_DisabledWithoutStore(t *testing.T) {
	policy := NewSubmitRateLimitPolicy("inquiry", time.Minute, 1)
	handler := SubmitRateLimit(policy, nil, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.RemoteAddr = "1.2.3.4:5678"
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("limiter without a store must pass traffic, got %d", rec.Code)
		}
	}
}

func TestSubmitRateLimit_XForwardedForWins(t *testing.T) {
	store := newFakeRateStore()
	policy := NewSubmitRateLimitPolicy("inquiry", time.Minute, 1)
	handler := SubmitRateLimit(policy, store, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(forwarded string) int {
		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.RemoteAddr = "10.0.0.1:9999"
		req.Header.Set("X-Forwarded-For", forwarded)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := send("203.0.113.7"); code != http.StatusOK {
		t.Fatalf("first request blocked: %d", code)
	}
	if code := send("203.0.113.7"); code != http.StatusTooManyRequests {
		t.Fatalf("expected forwarded IP to be throttled, got %d", code)
	}
	if code := send("203.0.113.8"); code != http.StatusOK {
		t.Fatalf("different forwarded IP should pass, got %d", code)
	}
}
