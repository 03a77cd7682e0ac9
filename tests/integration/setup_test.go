package integration

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"dream/internal/cache"
	"dream/internal/category"
	"dream/internal/entry"
	"dream/internal/events"
	"dream/internal/ledger"
	"dream/internal/logger"
	"dream/internal/server"
	"dream/internal/services"
	"dream/internal/storage"
	"dream/internal/testutil"
	"dream/internal/uuid"
	"dream/internal/validator"
)

const (
	testSecret   = "integration-secret"
	testPasscode = "2468"
)

var shanghai = time.FixedZone("CST", 8*3600)

// testNow is a Sunday.
func testNow() time.Time {
	return time.Date(2026, 3, 15, 10, 30, 0, 0, shanghai)
}

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Repo   *ledger.Repository
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

type appOptions struct {
	passcode bool
	db       *gorm.DB
}

// setupApp creates a full application stack backed by an isolated in-memory
// SQLite with the clock fixed at testNow.
func setupApp(t *testing.T) *testApp {
	t.Helper()
	return setupAppWith(t, appOptions{})
}

func setupAppWith(t *testing.T, opts appOptions) *testApp {
	t.Helper()

	db := opts.db
	if db == nil {
		db = testutil.SetupTestDB(t)
		t.Cleanup(func() { testutil.TeardownTestDB(t, db) })
	}

	passcodeHash := ""
	if opts.passcode {
		hash, err := bcrypt.GenerateFromPassword([]byte(testPasscode), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("hash passcode: %v", err)
		}
		passcodeHash = string(hash)
	}

	trees := category.DefaultTrees()
	now := testutil.FixedClock(testNow())
	repo := ledger.NewRepository(storage.NewGormStore(db))

	ledgerService := services.NewLedgerService(context.Background(), repo, events.NoopPublisher{}, trees, now)
	svc := server.Services{
		Ledger:     ledgerService,
		Analytics:  services.NewAnalyticsService(ledgerService, trees, now),
		Categories: services.NewCategoryService(trees),
		Entries: services.NewEntryService(services.EntryOptions{
			Sessions:  cache.NewLRUCache[*entry.Session](32, time.Hour),
			Ledger:    ledgerService,
			Trees:     trees,
			Now:       now,
			SessionID: uuid.Sequence("session"),
			RecordID:  uuid.Sequence("tx"),
		}),
		Advisor: services.NewAdvisorService(ledgerService, nil),
		Auth:    services.NewAuthService(passcodeHash),
	}

	router := server.NewRouter(svc, server.Options{
		JWTSecret: testSecret,
		TokenTTL:  time.Hour,
		Location:  shanghai,
	})

	return &testApp{DB: db, Repo: repo, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// mustStatus fails the test when rec does not carry want.
func mustStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}

func entryOf(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	return parseJSON(t, rec)["entry"].(map[string]interface{})
}
