package middleware_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"urecite/middleware"
)

func TestTokenBucket(t *testing.T) {
	t.Parallel()

	tb := middleware.NewTokenBucket(2, 0)
	if !tb.Allow() || !tb.Allow() {
		t.Fatal("first two requests should pass")
	}
	if tb.Allow() {
		t.Error("third request passed an empty bucket with no refill")
	}
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	rl := middleware.NewRateLimiter(2, time.Hour)
	app := fiber.New()
	app.Use(middleware.RateLimit(rl))
	ok := func(c *fiber.Ctx) error { return c.SendString("ok") }
	app.Get("/api/books", ok)
	app.Get("/health", ok)

	codes := make([]int, 0, 3)
	for n := 0; n < 3; n++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/books", nil))
		if err != nil {
			t.Fatal(err)
		}
		codes = append(codes, resp.StatusCode)
	}
	if codes[0] != 200 || codes[1] != 200 || codes[2] != fiber.StatusTooManyRequests {
		t.Errorf("status codes = %v, want [200 200 429]", codes)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("/health status = %d, want 200 when limited", resp.StatusCode)
	}
}

func TestRateLimiter_Prune(t *testing.T) {
	t.Parallel()

	rl := middleware.NewRateLimiter(5, time.Minute)
	rl.Allow("10.0.0.1")
	rl.Allow("10.0.0.2")

	if left := rl.Prune(time.Now().Add(-time.Hour)); left != 2 {
		t.Errorf("Prune(past) left %d buckets, want 2", left)
	}
	if left := rl.Prune(time.Now().Add(time.Hour)); left != 0 {
		t.Errorf("Prune(future) left %d buckets, want 0", left)
	}
}
