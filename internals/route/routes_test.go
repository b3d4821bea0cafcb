package routes

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"coachingku_backend/internals/configs"
	helper "coachingku_backend/internals/helpers"
	"coachingku_backend/internals/store"
	"coachingku_backend/internals/store/storetest"
	"coachingku_backend/internals/views"
)

type envelope struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	ErrorCode string              `json:"error_code"`
	Errors    map[string][]string `json:"errors"`
	Data      struct {
		Key          string `json:"key"`
		Message      string `json:"message"`
		RowsAffected int64  `json:"rows_affected"`
		AccessToken  string `json:"access_token"`
		Sections     []struct {
			Kind   string `json:"kind"`
			Metric *struct {
				Label   string `json:"label"`
				Display string `json:"display"`
			} `json:"metric"`
		} `json:"sections"`
	} `json:"data"`
}

func newApp(t *testing.T) (*fiber.App, *store.Store) {
	t.Helper()
	st := storetest.OpenSeeded(t)
	app := fiber.New(fiber.Config{
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		Views:        views.Engine(),
		ErrorHandler: helper.FromFiberError,
	})
	SetupRoutes(app, st)
	return app, st
}

// withAuth turns staff login on for the duration of the test.
func withAuth(t *testing.T, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	oldUser, oldHash, oldSecret := configs.AdminUsername, configs.AdminPasswordHash, configs.JWTSecret
	configs.AdminUsername, configs.AdminPasswordHash, configs.JWTSecret = "admin", string(hash), "test-secret"
	t.Cleanup(func() {
		configs.AdminUsername, configs.AdminPasswordHash, configs.JWTSecret = oldUser, oldHash, oldSecret
	})
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, envelope) {
	t.Helper()
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", req.Method, req.URL, err)
	}
	var env envelope
	if strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		body, _ := io.ReadAll(resp.Body)
		if err := sonic.Unmarshal(body, &env); err != nil {
			t.Fatalf("decode %s: %v", body, err)
		}
	}
	return resp, env
}

func jsonReq(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func formReq(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return req
}

func TestJSONCreateStudent(t *testing.T) {
	app, _ := newApp(t)
	resp, env := do(t, app, jsonReq(http.MethodPost, "/api/students",
		`{"name": "Neha Verma", "course_name": "NEET Batch", "dob": "2007-03-09"}`))
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, body %+v", resp.StatusCode, env)
	}
	if !env.Success || env.Data.RowsAffected != 1 || env.Message != "Student added successfully." {
		t.Fatalf("envelope = %+v", env)
	}

	_, page := do(t, app, httptest.NewRequest(http.MethodGet, "/api/pages/dashboard", nil))
	for _, s := range page.Data.Sections {
		if s.Metric != nil && s.Metric.Label == "Total Students" && s.Metric.Display != "6" {
			t.Fatalf("dashboard students = %s, want 6", s.Metric.Display)
		}
	}
}

func TestFormPostRedirectsWithNotice(t *testing.T) {
	app, _ := newApp(t)
	resp, _ := do(t, app, formReq("/api/leads/status", url.Values{"lead_id": {"2"}, "status": {"Converted"}}))
	if resp.StatusCode != fiber.StatusSeeOther {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	loc := resp.Header.Get(fiber.HeaderLocation)
	if loc != "/pages/leads?notice="+url.QueryEscape("Lead 2 status updated to Converted.") {
		t.Fatalf("location = %q", loc)
	}
}

func TestFormPostValidationRedirectsWithError(t *testing.T) {
	app, _ := newApp(t)
	resp, _ := do(t, app, formReq("/api/students", url.Values{"name": {"No Course"}}))
	if resp.StatusCode != fiber.StatusSeeOther {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if loc := resp.Header.Get(fiber.HeaderLocation); !strings.Contains(loc, "error=course_name+is+required") {
		t.Fatalf("location = %q", loc)
	}
}

func TestJSONValidationIs422(t *testing.T) {
	app, _ := newApp(t)
	resp, env := do(t, app, jsonReq(http.MethodPatch, "/api/leads/7/status", `{"status": "Maybe"}`))
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if env.ErrorCode != "VALIDATION_ERROR" || len(env.Errors["status"]) == 0 {
		t.Fatalf("envelope = %+v", env)
	}

	resp, env = do(t, app, jsonReq(http.MethodPost, "/api/fees/payments", `{"student_id": 1, "course_id": 1, "amount_paid": -5}`))
	if resp.StatusCode != fiber.StatusUnprocessableEntity || len(env.Errors["amount_paid"]) == 0 {
		t.Fatalf("negative amount: status %d, %+v", resp.StatusCode, env)
	}
}

func TestPagesJSONAndUnknownPage(t *testing.T) {
	app, _ := newApp(t)
	resp, env := do(t, app, httptest.NewRequest(http.MethodGet, "/api/pages/fees?pending=on", nil))
	if resp.StatusCode != fiber.StatusOK || env.Data.Key != "fees" {
		t.Fatalf("status %d, env %+v", resp.StatusCode, env)
	}

	resp, env = do(t, app, httptest.NewRequest(http.MethodGet, "/api/pages/nope", nil))
	if resp.StatusCode != fiber.StatusNotFound || env.Success {
		t.Fatalf("unknown page: status %d, env %+v", resp.StatusCode, env)
	}
}

func TestRenderHTMLPage(t *testing.T) {
	app, _ := newApp(t)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/pages/students?course_name=NEET+Batch", nil), -1)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, body)
	}
	if !bytes.Contains(body, []byte("Student Management")) || !bytes.Contains(body, []byte("Showing 2 students")) {
		t.Fatalf("page body missing content")
	}
}

func TestChartPNG(t *testing.T) {
	app, _ := newApp(t)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/pages/leads/charts/lead_status.png?width=50", nil), -1)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK || resp.Header.Get(fiber.HeaderContentType) != "image/png" {
		t.Fatalf("status %d, type %q", resp.StatusCode, resp.Header.Get(fiber.HeaderContentType))
	}
	body, _ := io.ReadAll(resp.Body)
	if !bytes.HasPrefix(body, []byte("\x89PNG")) {
		t.Fatalf("not a png")
	}

	resp, _ = do(t, app, httptest.NewRequest(http.MethodGet, "/api/pages/leads/charts/nope.png", nil))
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("missing chart status = %d", resp.StatusCode)
	}
}

func TestExportCSV(t *testing.T) {
	app, _ := newApp(t)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/tables/lead/export.csv?q=website", nil), -1)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if cd := resp.Header.Get(fiber.HeaderContentDisposition); !strings.Contains(cd, "attachment") {
		t.Fatalf("content-disposition = %q", cd)
	}
	body, _ := io.ReadAll(resp.Body)
	if lines := strings.Count(strings.TrimSpace(string(body)), "\n"); lines != 2 {
		t.Fatalf("csv lines after header = %d: %s", lines, body)
	}

	resp, _ = do(t, app, httptest.NewRequest(http.MethodGet, "/api/tables/sqlite_master/export.csv", nil))
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("unlisted table status = %d", resp.StatusCode)
	}
}

func TestHealth(t *testing.T) {
	app, _ := newApp(t)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	if err != nil || resp.StatusCode != fiber.StatusOK {
		t.Fatalf("health = %v, %v", resp, err)
	}
}

func TestCacheClearRedirectStaysOnSite(t *testing.T) {
	app, _ := newApp(t)
	cases := map[string]string{
		"":                                  "/pages/dashboard?notice=",
		"https://evil.example/pages/fees":   "/pages/dashboard?notice=",
		"//evil.example/pages/fees":         "/pages/dashboard?notice=",
		"javascript:alert(1)":               "/pages/dashboard?notice=",
		"http://example.com/api/pages":      "/pages/dashboard?notice=",
		"http://example.com/pages/fees?p=1": "/pages/fees?p=1&notice=",
		"/pages/students?course_name=NEET":  "/pages/students?course_name=NEET&notice=",
	}
	for ref, want := range cases {
		req := formReq("/api/cache/clear", url.Values{})
		if ref != "" {
			req.Header.Set(fiber.HeaderReferer, ref)
		}
		resp, _ := do(t, app, req)
		if resp.StatusCode != fiber.StatusSeeOther {
			t.Fatalf("%q: status %d", ref, resp.StatusCode)
		}
		if loc := resp.Header.Get(fiber.HeaderLocation); !strings.HasPrefix(loc, want) {
			t.Errorf("%q: Location = %q, want prefix %q", ref, loc, want)
		}
	}
}

func TestStaffGuard(t *testing.T) {
	withAuth(t, "s3cret")
	app, _ := newApp(t)

	// reads stay public
	resp, _ := do(t, app, httptest.NewRequest(http.MethodGet, "/api/pages/dashboard", nil))
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("public read status = %d", resp.StatusCode)
	}

	body := `{"lead_id": 1, "status": "Lost"}`
	resp, _ = do(t, app, jsonReq(http.MethodPost, "/api/leads/status", body))
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("anonymous write status = %d", resp.StatusCode)
	}

	resp, _ = do(t, app, jsonReq(http.MethodPost, "/api/auth/login", `{"username": "admin", "password": "wrong"}`))
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("bad login status = %d", resp.StatusCode)
	}

	resp, env := do(t, app, jsonReq(http.MethodPost, "/api/auth/login", `{"username": "admin", "password": "s3cret"}`))
	if resp.StatusCode != fiber.StatusOK || env.Data.AccessToken == "" {
		t.Fatalf("login status %d, env %+v", resp.StatusCode, env)
	}
	var cookie *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == helper.AccessTokenCookie {
			cookie = ck
		}
	}
	if cookie == nil || !cookie.HttpOnly {
		t.Fatalf("access cookie = %+v", cookie)
	}

	req := jsonReq(http.MethodPost, "/api/leads/status", body)
	req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	resp, env = do(t, app, req)
	if resp.StatusCode != fiber.StatusOK || env.Data.RowsAffected != 1 {
		t.Fatalf("staff write status %d, env %+v", resp.StatusCode, env)
	}

	req = jsonReq(http.MethodPost, "/api/leads/status", body)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+env.Data.AccessToken+"x")
	resp, _ = do(t, app, req)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("tampered token status = %d", resp.StatusCode)
	}
}

func TestTableRowsPaging(t *testing.T) {
	app, _ := newApp(t)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/tables/student/rows?page=2&per_page=2", nil), -1)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	var body struct {
		Data struct {
			Columns []string         `json:"columns"`
			Rows    []map[string]any `json:"rows"`
		} `json:"data"`
		Meta struct {
			Total      int64 `json:"total"`
			TotalPages int   `json:"total_pages"`
			HasNext    bool  `json:"has_next"`
		} `json:"meta"`
	}
	raw, _ := io.ReadAll(resp.Body)
	if err := sonic.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data.Rows) != 2 || body.Meta.Total != 5 || body.Meta.TotalPages != 3 || !body.Meta.HasNext {
		t.Fatalf("page = %d rows, meta %+v", len(body.Data.Rows), body.Meta)
	}
}
