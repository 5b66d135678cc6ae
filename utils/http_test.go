package utils_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"urecite/utils"
)

func TestJSONHelpers(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	app.Get("/ok", func(c *fiber.Ctx) error {
		return utils.JSONSuccess(c, fiber.Map{"books": []string{"Genesis"}})
	})
	app.Get("/data", func(c *fiber.Ctx) error {
		return utils.JSONSuccess(c, []int{1, 2})
	})
	app.Get("/err", func(c *fiber.Ctx) error {
		return utils.JSONError(c, fiber.StatusNotFound, "nope")
	})

	tests := []struct {
		path       string
		wantStatus int
		wantKey    string
	}{
		{"/ok", 200, "books"},
		{"/data", 200, "data"},
		{"/err", 404, "error"},
	}

	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
		if err != nil {
			t.Fatal(err)
		}
		var body map[string]any
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("%s: decode error = %v", tt.path, err)
		}
		resp.Body.Close()

		if resp.StatusCode != tt.wantStatus {
			t.Errorf("%s: status = %d, want %d", tt.path, resp.StatusCode, tt.wantStatus)
		}
		if _, ok := body[tt.wantKey]; !ok {
			t.Errorf("%s: body %v missing %q", tt.path, body, tt.wantKey)
		}
		if body["success"] != (tt.wantStatus == 200) {
			t.Errorf("%s: success = %v", tt.path, body["success"])
		}
	}
}

func TestQueryInt(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(utils.QueryInt(c, "limit", 5, 1, 10))
	})

	tests := map[string]int{
		"/":           5,
		"/?limit=abc": 5,
		"/?limit=3":   3,
		"/?limit=0":   1,
		"/?limit=99":  10,
	}
	for target, want := range tests {
		resp, err := app.Test(httptest.NewRequest("GET", target, nil))
		if err != nil {
			t.Fatal(err)
		}
		var got int
		json.NewDecoder(resp.Body).Decode(&got)
		resp.Body.Close()
		if got != want {
			t.Errorf("QueryInt(%s) = %d, want %d", target, got, want)
		}
	}
}
