// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/study-cards/backend/config"
	"github.com/study-cards/backend/internal/application/adapter"
	"github.com/study-cards/backend/internal/application/usecase/auth"
	"github.com/study-cards/backend/internal/application/usecase/card"
	"github.com/study-cards/backend/internal/application/usecase/report"
	"github.com/study-cards/backend/internal/domain/entity"
	"github.com/study-cards/backend/internal/infra/server/router"
	"github.com/study-cards/backend/internal/integration/adapters"
	"github.com/study-cards/backend/internal/integration/entrypoint/controller"
	"github.com/study-cards/backend/internal/integration/entrypoint/middleware"
	"github.com/study-cards/backend/internal/integration/persistence"
	"github.com/study-cards/backend/internal/integration/persistence/model"
	"github.com/study-cards/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// testNow is the frozen clock for all scenarios, so period defaults are
// deterministic regardless of when the suite runs.
var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

// TestContext holds the test state for each scenario.
type TestContext struct {
	engine   *gin.Engine
	cardRepo adapter.CardRepository
	redis    *mock.Redis

	status int
	body   []byte

	headers     map[string]string
	accessToken string
}

type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			headers: make(map[string]string),
		}
		if err := tc.buildServer(""); err != nil {
			return ctx, err
		}
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if tc := GetTestContext(ctx); tc != nil && tc.redis != nil {
			tc.redis.Close()
		}
		return ctx, nil
	})

	ctx.Step(`^the following study cards exist:$`, theFollowingStudyCardsExist)
	ctx.Step(`^the report API key is "([^"]*)"$`, theReportAPIKeyIs)
	ctx.Step(`^I am authenticated$`, iAmAuthenticated)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response list "([^"]*)" should have (\d+) items$`, theResponseListShouldHaveItems)
}

// buildServer assembles a full in-process API server backed by an
// in-memory database, redis and object storage.
func (tc *TestContext) buildServer(reportAPIKey string) error {
	db, err := mock.NewDb(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.StudyCardModel{},
	)
	if err != nil {
		return fmt.Errorf("failed to open test database: %w", err)
	}

	redisMock, err := mock.NewRedis()
	if err != nil {
		return fmt.Errorf("failed to start test redis: %w", err)
	}
	tc.redis = redisMock

	storage := mock.NewStorage(redisMock.Client, 45*time.Minute)

	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	cardRepo := persistence.NewCardRepository(db)
	reportRepo := persistence.NewReportRepository(db)
	tc.cardRepo = cardRepo

	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)

	now := func() time.Time { return testNow }

	authController := controller.NewAuthController(
		auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService),
		auth.NewLoginUserUseCase(userRepo, passwordService, tokenService),
		auth.NewRefreshTokenUseCase(tokenService),
		auth.NewLogoutUserUseCase(tokenService),
	)

	cardController := controller.NewCardController(
		card.NewCreateCardUseCase(cardRepo),
		card.NewListCardsUseCase(cardRepo),
		card.NewGetCardUseCase(cardRepo),
		card.NewUpdateCardUseCase(cardRepo),
		card.NewDeleteCardUseCase(cardRepo, storage),
		card.NewAttachFileUseCase(cardRepo, storage),
		card.NewGetAttachmentURLUseCase(cardRepo, storage),
	)

	reportController := controller.NewReportController(
		report.NewGetReportUseCaseWithClock(reportRepo, now),
		report.NewGetHistoryUseCaseWithClock(reportRepo, now),
		config.ReportConfig{
			APIKey:      reportAPIKey,
			ProjectCode: "STUDY-CARDS",
			ProjectName: "Study Card Tracker",
			Currency:    "USD",
		},
	)

	healthController := controller.NewHealthController(func() bool { return true })

	r := router.NewRouter(
		healthController,
		authController,
		cardController,
		reportController,
		middleware.NewRateLimiter(),
		middleware.NewAuthMiddleware(tokenService),
		middleware.NewReportKeyMiddleware(reportAPIKey),
	)
	tc.engine = r.Setup("test")
	return nil
}

// Step implementations

func theFollowingStudyCardsExist(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if len(table.Rows) < 2 {
		return fmt.Errorf("expected a header row and at least one data row")
	}

	header := make([]string, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		header[i] = cell.Value
	}

	for _, row := range table.Rows[1:] {
		c := entity.NewStudyCard("", "", "", nil)
		for i, cell := range row.Cells {
			value := cell.Value
			switch header[i] {
			case "title":
				c.Title = value
			case "category":
				c.Category = value
			case "estimated_cost":
				if value != "" {
					cost, err := decimal.NewFromString(value)
					if err != nil {
						return fmt.Errorf("invalid estimated_cost %q: %w", value, err)
					}
					c.EstimatedCost = &cost
				}
			case "is_completed":
				completed, err := strconv.ParseBool(value)
				if err != nil {
					return fmt.Errorf("invalid is_completed %q: %w", value, err)
				}
				c.IsCompleted = completed
			case "created_at":
				created, err := time.Parse("2006-01-02", value)
				if err != nil {
					return fmt.Errorf("invalid created_at %q: %w", value, err)
				}
				c.CreatedAt = created.UTC()
				c.UpdatedAt = c.CreatedAt
			default:
				return fmt.Errorf("unknown column %q", header[i])
			}
		}
		if err := tc.cardRepo.Create(ctx, c); err != nil {
			return fmt.Errorf("failed to seed card %q: %w", c.Title, err)
		}
	}
	return nil
}

func theReportAPIKeyIs(ctx context.Context, key string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	// Rebuilding drops any seeded data; configure the key before seeding.
	if tc.redis != nil {
		tc.redis.Close()
	}
	return tc.buildServer(key)
}

func iAmAuthenticated(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	payload := `{"email":"tester@example.com","name":"Tester","password":"super-secret-1"}`
	if err := tc.do(http.MethodPost, "/api/v1/auth/register", []byte(payload)); err != nil {
		return err
	}
	if tc.status != http.StatusCreated {
		return fmt.Errorf("registration failed with status %d: %s", tc.status, tc.body)
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(tc.body, &body); err != nil {
		return fmt.Errorf("failed to decode registration response: %w", err)
	}
	tc.accessToken = body.AccessToken
	return nil
}

func iSetHeaderTo(ctx context.Context, name, value string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.headers[name] = value
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.do(method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.do(method, endpoint, []byte(body.Content))
}

func theResponseStatusShouldBe(ctx context.Context, expected int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.status != expected {
		return fmt.Errorf("expected status %d, got %d: %s", expected, tc.status, tc.body)
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, path, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	value, err := tc.resolveField(path)
	if err != nil {
		return err
	}
	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("expected field %q to be %q, got %q", path, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, path string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	_, err := tc.resolveField(path)
	return err
}

func theResponseListShouldHaveItems(ctx context.Context, path string, expected int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	value, err := tc.resolveField(path)
	if err != nil {
		return err
	}
	list, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field %q is not a list", path)
	}
	if len(list) != expected {
		return fmt.Errorf("expected %d items in %q, got %d", expected, path, len(list))
	}
	return nil
}

// do performs an in-process request against the engine and records the
// response.
func (tc *TestContext) do(method, endpoint string, body []byte) error {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, endpoint, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}
	for name, value := range tc.headers {
		req.Header.Set(name, value)
	}

	rec := httptest.NewRecorder()
	tc.engine.ServeHTTP(rec, req)

	tc.status = rec.Code
	tc.body = rec.Body.Bytes()
	return nil
}

// resolveField walks a dot-separated path through the decoded response,
// supporting numeric list indexes (e.g. "summaries.0.totalRevenue").
func (tc *TestContext) resolveField(path string) (any, error) {
	var decoded any
	if err := json.Unmarshal(tc.body, &decoded); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}

	current := decoded
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response: %s", path, tc.body)
			}
			current = value
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("invalid list index %q in path %q", segment, path)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("cannot descend into %q at segment %q", path, segment)
		}
	}
	return current, nil
}
