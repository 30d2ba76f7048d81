package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/pusdatin-umc/helpdesk-service/internal/api/http/handlers"
	"github.com/pusdatin-umc/helpdesk-service/internal/auth"
	"github.com/pusdatin-umc/helpdesk-service/internal/draft"
	"github.com/pusdatin-umc/helpdesk-service/internal/events"
	"github.com/pusdatin-umc/helpdesk-service/internal/idempotency"
	"github.com/pusdatin-umc/helpdesk-service/internal/mockdata"
	"github.com/pusdatin-umc/helpdesk-service/internal/observability"
	"github.com/pusdatin-umc/helpdesk-service/internal/persistence"
	"github.com/pusdatin-umc/helpdesk-service/internal/repository"
	"github.com/pusdatin-umc/helpdesk-service/internal/service"
	"github.com/pusdatin-umc/helpdesk-service/internal/storage"
)

type envelope struct {
	Success    bool                `json:"success"`
	Data       json.RawMessage     `json:"data"`
	Message    string              `json:"message"`
	Error      string              `json:"error"`
	StatusCode int                 `json:"statusCode"`
	Details    map[string][]string `json:"details"`
}

func newTestApp(t *testing.T, lookupsPerMinute, burst int) *fiber.App {
	t.Helper()
	ctx := context.Background()
	logger := zap.NewNop()
	metrics := observability.NewMetrics()

	tickets := repository.NewMemoryTicketRepository()
	activities := repository.NewMemoryActivityRepository()
	users := repository.NewMemoryUserRepository()
	assets := repository.NewMemoryAssetRepository()
	borrows := repository.NewMemoryBorrowRequestRepository()

	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	if err := mockdata.Seed(ctx, mockdata.Targets{
		Tickets:    tickets,
		Activities: activities,
		Assets:     assets,
		Borrows:    borrows,
		Users:      users,
	}, hasher.Hash, logger); err != nil {
		t.Fatalf("seed: %v", err)
	}

	objects := storage.NewMemoryStore()
	autosaver := draft.NewAutosaver(draft.NewMemoryStore(), 50*time.Millisecond, logger)
	t.Cleanup(func() { autosaver.Close(context.Background()) })
	dispatcher := events.NewInMemoryDispatcher(logger)
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo:     tickets,
		ActivityRepo:   activities,
		AttachmentRepo: repository.NewMemoryAttachmentRepository(),
		Objects:        objects,
		Drafts:         autosaver,
		Idempotency:    idempotency.NewMemoryStore(time.Hour),
		Dispatcher:     dispatcher,
	})
	assetService := service.NewAssetService(service.AssetDependencies{
		AssetRepo:  assets,
		BorrowRepo: borrows,
		Dispatcher: dispatcher,
	})
	catalog := repository.NewMemoryCatalogRepository(repository.CatalogContent{
		Services:      mockdata.Services(),
		Announcements: mockdata.Announcements(),
		FAQs:          mockdata.FAQs(),
	})

	app := fiber.New(fiber.Config{DisableStartupMessage: true, Immutable: true})
	RegisterMiddlewares(app, MiddlewareConfig{Logger: logger, Metrics: metrics})
	RegisterRoutes(app, RouteConfig{
		Health: handlers.NewHealthHandler("helpdesk", "test", &persistence.Postgres{}, &persistence.Redis{}),
		Auth: handlers.NewAuthHandler(service.NewAuthService(service.AuthDependencies{
			UserRepo: users,
			Tokens:   tokens,
			Hasher:   hasher,
		}), "auth-token", false),
		Tickets:        handlers.NewTicketsHandler(ticketService),
		Drafts:         handlers.NewDraftsHandler(autosaver, metrics),
		Assets:         handlers.NewAssetsHandler(assetService),
		Catalog:        handlers.NewCatalogHandler(service.NewCatalogService(catalog, logger, nil)),
		Files:          handlers.NewFilesHandler(objects),
		AuthMiddleware: auth.NewAuthMiddleware(tokens, users, "auth-token"),
		StatusLimiter:  NewIPRateLimiter(lookupsPerMinute, burst),
		Metrics:        metrics,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, headers map[string]string) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	var env envelope
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			t.Fatalf("decode %s %s: %v (%s)", method, path, err, raw)
		}
	}
	return resp.StatusCode, env
}

func login(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	status, env := doJSON(t, app, fiber.MethodPost, "/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, nil)
	if status != fiber.StatusOK {
		t.Fatalf("login %s: status %d (%s)", username, status, env.Message)
	}
	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil || data.Token == "" {
		t.Fatalf("login %s: no token", username)
	}
	return data.Token
}

func ticketPayload() map[string]string {
	return map[string]string{
		"category":      "network",
		"subject":       "WiFi gedung B tidak bisa diakses",
		"description":   "Sejak pagi WiFi di lantai 2 gedung B tidak dapat terhubung sama sekali.",
		"priority":      "high",
		"reporterName":  "Rina Marlina",
		"reporterEmail": "rina@umc.ac.id",
	}
}

func TestUnknownRouteUsesErrorEnvelope(t *testing.T) {
	app := newTestApp(t, 30, 10)
	status, env := doJSON(t, app, fiber.MethodGet, "/tidak-ada", nil, nil)
	if status != fiber.StatusNotFound {
		t.Fatalf("status %d want 404", status)
	}
	if env.Success || env.Error != "NOT_FOUND" || env.StatusCode != fiber.StatusNotFound {
		t.Fatalf("unexpected envelope %+v", env)
	}
}

func TestCreateTicketAndLookup(t *testing.T) {
	app := newTestApp(t, 30, 10)

	status, env := doJSON(t, app, fiber.MethodPost, "/tickets", ticketPayload(), nil)
	if status != fiber.StatusCreated || !env.Success {
		t.Fatalf("create: status %d %+v", status, env)
	}
	var created struct {
		Ticket struct {
			TicketNumber string `json:"ticketNumber"`
			Status       string `json:"status"`
			StatusLabel  string `json:"statusLabel"`
		} `json:"ticket"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode ticket: %v", err)
	}
	number := created.Ticket.TicketNumber
	if number == "" || created.Ticket.Status != "open" || created.Ticket.StatusLabel != "Menunggu" {
		t.Fatalf("unexpected ticket %+v", created.Ticket)
	}

	status, env = doJSON(t, app, fiber.MethodGet, "/tickets/status/"+number+"?email=lain@umc.ac.id", nil, nil)
	if status != fiber.StatusNotFound || env.Error != "NOT_FOUND" {
		t.Fatalf("email mismatch: status %d %+v", status, env)
	}
	status, _ = doJSON(t, app, fiber.MethodGet, "/tickets/status/"+number+"?email=RINA@umc.ac.id", nil, nil)
	if status != fiber.StatusOK {
		t.Fatalf("lookup: status %d", status)
	}
}

func TestCreateTicketValidation(t *testing.T) {
	app := newTestApp(t, 30, 10)
	status, env := doJSON(t, app, fiber.MethodPost, "/tickets", map[string]string{"subject": "pendek"}, nil)
	if status != fiber.StatusBadRequest || env.Error != "VALIDATION_ERROR" {
		t.Fatalf("status %d %+v", status, env)
	}
	if len(env.Details["subject"]) == 0 || len(env.Details["reporterEmail"]) == 0 {
		t.Fatalf("expected field details, got %v", env.Details)
	}
}

func TestCreateTicketIdempotent(t *testing.T) {
	app := newTestApp(t, 30, 10)
	headers := map[string]string{handlers.IdempotencyHeader: "draft-1234abcd"}

	status, first := doJSON(t, app, fiber.MethodPost, "/tickets", ticketPayload(), headers)
	if status != fiber.StatusCreated {
		t.Fatalf("first submit: %d", status)
	}
	status, second := doJSON(t, app, fiber.MethodPost, "/tickets", ticketPayload(), headers)
	if status != fiber.StatusOK {
		t.Fatalf("replay: %d", status)
	}
	var a, b struct {
		Ticket struct {
			TicketNumber string `json:"ticketNumber"`
		} `json:"ticket"`
		Replayed bool `json:"replayed"`
	}
	_ = json.Unmarshal(first.Data, &a)
	_ = json.Unmarshal(second.Data, &b)
	if a.Ticket.TicketNumber != b.Ticket.TicketNumber || !b.Replayed {
		t.Fatalf("replay returned %s (replayed=%v), want %s", b.Ticket.TicketNumber, b.Replayed, a.Ticket.TicketNumber)
	}
}

func TestStatusLookupRateLimited(t *testing.T) {
	app := newTestApp(t, 1, 2)
	path := "/tickets/status/TKT-20260201-1234?email=ahmad.fauzi@umc.ac.id"
	for i := 0; i < 2; i++ {
		if status, _ := doJSON(t, app, fiber.MethodGet, path, nil, nil); status != fiber.StatusOK {
			t.Fatalf("request %d: status %d", i, status)
		}
	}
	status, env := doJSON(t, app, fiber.MethodGet, path, nil, nil)
	if status != fiber.StatusTooManyRequests || env.Error != "TOO_MANY_REQUESTS" {
		t.Fatalf("status %d %+v", status, env)
	}
}

func TestStaffRoutesRequireRole(t *testing.T) {
	app := newTestApp(t, 30, 10)

	if status, env := doJSON(t, app, fiber.MethodGet, "/tickets", nil, nil); status != fiber.StatusUnauthorized || env.Error != "UNAUTHORIZED" {
		t.Fatalf("anonymous: status %d %+v", status, env)
	}

	lecturer := login(t, app, "ahmad.fauzi", "password123")
	bearer := map[string]string{fiber.HeaderAuthorization: "Bearer " + lecturer}
	if status, _ := doJSON(t, app, fiber.MethodGet, "/tickets", nil, bearer); status != fiber.StatusForbidden {
		t.Fatalf("lecturer: status %d want 403", status)
	}
	if status, _ := doJSON(t, app, fiber.MethodGet, "/tickets/my", nil, bearer); status != fiber.StatusOK {
		t.Fatalf("my tickets: status %d", status)
	}

	staff := login(t, app, "helpdesk", "helpdesk123")
	status, env := doJSON(t, app, fiber.MethodGet, "/tickets?status=open,in_progress", nil, map[string]string{
		fiber.HeaderAuthorization: "Bearer " + staff,
	})
	if status != fiber.StatusOK {
		t.Fatalf("staff list: status %d %+v", status, env)
	}
}

func TestChangeStatusByStaff(t *testing.T) {
	app := newTestApp(t, 30, 10)
	staff := map[string]string{fiber.HeaderAuthorization: "Bearer " + login(t, app, "helpdesk", "helpdesk123")}

	_, env := doJSON(t, app, fiber.MethodPost, "/tickets", ticketPayload(), nil)
	var created struct {
		Ticket struct {
			TicketNumber string `json:"ticketNumber"`
		} `json:"ticket"`
	}
	_ = json.Unmarshal(env.Data, &created)
	path := "/tickets/" + created.Ticket.TicketNumber + "/status"

	if status, env := doJSON(t, app, fiber.MethodPatch, path, map[string]string{"status": "closed"}, staff); status != fiber.StatusConflict || env.Error != "INVALID_TRANSITION" {
		t.Fatalf("open->closed: status %d %+v", status, env)
	}
	if status, env := doJSON(t, app, fiber.MethodPatch, path, map[string]string{"status": "in_progress"}, staff); status != fiber.StatusOK {
		t.Fatalf("open->in_progress: status %d %+v", status, env)
	}
}

func TestDraftRoundTrip(t *testing.T) {
	app := newTestApp(t, 30, 10)
	body := map[string]string{"subject": "Printer lab macet", "description": "Kertas selalu tersangkut"}

	if status, _ := doJSON(t, app, fiber.MethodPut, "/drafts/draft-abcdef12?flush=true", body, nil); status != fiber.StatusOK {
		t.Fatalf("flush: status %d", status)
	}
	status, env := doJSON(t, app, fiber.MethodGet, "/drafts/draft-abcdef12", nil, nil)
	if status != fiber.StatusOK {
		t.Fatalf("load: status %d", status)
	}
	var got struct {
		Subject string `json:"subject"`
	}
	_ = json.Unmarshal(env.Data, &got)
	if got.Subject != "Printer lab macet" {
		t.Fatalf("subject %q", got.Subject)
	}

	if status, _ := doJSON(t, app, fiber.MethodDelete, "/drafts/draft-abcdef12", nil, nil); status != fiber.StatusOK {
		t.Fatalf("discard: status %d", status)
	}
	if status, _ := doJSON(t, app, fiber.MethodGet, "/drafts/draft-abcdef12", nil, nil); status != fiber.StatusNotFound {
		t.Fatalf("after discard: status %d want 404", status)
	}
	if status, _ := doJSON(t, app, fiber.MethodGet, "/drafts/x", nil, nil); status != fiber.StatusBadRequest {
		t.Fatalf("invalid id: status %d want 400", status)
	}
}

func TestCatalogEndpoints(t *testing.T) {
	app := newTestApp(t, 30, 10)
	for _, path := range []string{"/services", "/services/status", "/announcements?limit=2", "/faq", "/faq/categories", "/assets"} {
		status, env := doJSON(t, app, fiber.MethodGet, path, nil, nil)
		if status != fiber.StatusOK || !env.Success {
			t.Fatalf("%s: status %d %+v", path, status, env)
		}
	}
}

func TestReadinessWithMemoryBackends(t *testing.T) {
	app := newTestApp(t, 30, 10)
	status, env := doJSON(t, app, fiber.MethodGet, "/health/ready", nil, nil)
	if status != fiber.StatusOK || !env.Success {
		t.Fatalf("status %d %+v", status, env)
	}
}

func TestIPRateLimiterEvictsIdleClients(t *testing.T) {
	l := NewIPRateLimiter(60, 1)
	now := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	if !l.Allow("10.0.0.1") || l.Allow("10.0.0.1") {
		t.Fatalf("burst of one not enforced")
	}
	now = now.Add(limiterIdleTTL + time.Second)
	l.Allow("10.0.0.2")
	if _, ok := l.clients["10.0.0.1"]; ok {
		t.Fatalf("idle client not evicted")
	}
}

func TestAttachmentUploadAndServe(t *testing.T) {
	app := newTestApp(t, 30, 10)
	png := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	_ = mw.WriteField("email", "ahmad.fauzi@umc.ac.id")
	part, err := mw.CreateFormFile("files", "layar wifi.png")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	_, _ = part.Write(png)
	_ = mw.Close()

	req := httptest.NewRequest(fiber.MethodPost, "/tickets/TKT-20260201-1234/attachments", &body)
	req.Header.Set(fiber.HeaderContentType, mw.FormDataContentType())
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("upload: status %d (%s)", resp.StatusCode, raw)
	}
	var env envelope
	_ = json.NewDecoder(resp.Body).Decode(&env)
	var ticket struct {
		Attachments []struct {
			URL      string `json:"url"`
			MimeType string `json:"mimeType"`
		} `json:"attachments"`
	}
	_ = json.Unmarshal(env.Data, &ticket)
	if len(ticket.Attachments) == 0 {
		t.Fatalf("no attachments recorded")
	}
	last := ticket.Attachments[len(ticket.Attachments)-1]
	if last.MimeType != "image/png" || !strings.HasPrefix(last.URL, storage.LocalPathPrefix) {
		t.Fatalf("unexpected attachment %+v", last)
	}

	fileResp, err := app.Test(httptest.NewRequest(fiber.MethodGet, last.URL, nil), 5000)
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	defer fileResp.Body.Close()
	got, _ := io.ReadAll(fileResp.Body)
	if fileResp.StatusCode != fiber.StatusOK || !bytes.Equal(got, png) {
		t.Fatalf("download: status %d, %d bytes", fileResp.StatusCode, len(got))
	}
	if ct := fileResp.Header.Get(fiber.HeaderContentType); ct != "image/png" {
		t.Fatalf("content type %q", ct)
	}
}
