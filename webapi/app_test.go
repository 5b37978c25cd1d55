package webapi_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meucofre/meucofre/internal/fixtures"
	"github.com/meucofre/meucofre/pkg/config"
	"github.com/meucofre/meucofre/pkg/domain"
	"github.com/meucofre/meucofre/pkg/service"
	"github.com/meucofre/meucofre/pkg/validation"
	"github.com/meucofre/meucofre/webapi"
)

const testSecret = "test-secret"

func testConfig() *config.App {
	return &config.App{
		Env:       "test",
		Server:    &config.Server{Host: "localhost", Port: 3000},
		Auth:      &config.Auth{Jwt: &config.Jwt{Secret: testSecret, Expiry: time.Hour}},
		RateLimit: &config.RateLimit{MaxRequests: 1000, Window: time.Minute},
	}
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	val := validation.New()
	log := slog.Default()

	svcs := webapi.Services{
		Accounts: service.NewAccountService(
			fixtures.NewMemCollection[domain.Account](), val, log),
		Transactions: service.NewTransactionService(
			fixtures.NewMemCollection[domain.Transaction](), nil, val, log),
		Installments: service.NewInstallmentService(
			fixtures.NewMemCollection[domain.InstallmentGroup](), val, log),
		Investments: service.NewInvestmentService(service.InvestmentCollections{
			Accounts:     fixtures.NewMemCollection[domain.InvestmentAccount](),
			Transactions: fixtures.NewMemCollection[domain.InvestmentTransaction](),
			Positions:    fixtures.NewMemCollection[domain.InvestmentPosition](),
			Earnings:     fixtures.NewMemCollection[domain.InvestmentEarning](),
		}, val, log),
		Points: service.NewPointsService(service.PointsCollections{
			Programs:   fixtures.NewMemCollection[domain.PointsProgram](),
			Balances:   fixtures.NewMemCollection[domain.PointsBalance](),
			Operations: fixtures.NewMemCollection[domain.PointsOperation](),
			Offers:     fixtures.NewMemCollection[domain.PointsOffer](),
		}, val, log),
		Ai: service.NewAiService(service.AiCollections{
			Sessions: fixtures.NewMemCollection[domain.AiSession](),
			Messages: fixtures.NewMemCollection[domain.AiMessage](),
		}, val, log),
	}
	return webapi.New(testConfig(), svcs, log)
}

func bearerToken(t *testing.T, userID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + signed
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && json.Valid(raw) {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)
	resp, body := doJSON(t, app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "test", body["environment"])
	assert.GreaterOrEqual(t, body["uptime"].(float64), 0.0)
	assert.Greater(t, body["timestamp"].(float64), 0.0)
}

func TestRoutesRequireAuth(t *testing.T) {
	app := newTestApp(t)
	for _, path := range []string{"/accounts", "/transactions", "/installment-groups", "/investments/accounts", "/points/programs", "/ai/sessions"} {
		resp, _ := doJSON(t, app, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "missing token on %s", path)
	}
}

func TestAccountCrudOverHTTP(t *testing.T) {
	app := newTestApp(t)
	token := bearerToken(t, "u1")

	resp, body := doJSON(t, app, http.MethodPost, "/accounts", token, fiber.Map{
		"name":        "Main",
		"accountType": "bank_checking",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := body["data"].(map[string]any)
	id := data["id"].(string)
	assert.Equal(t, "BRL", data["currency"])
	assert.Equal(t, "u1", data["userId"])

	resp, body = doJSON(t, app, http.MethodGet, "/accounts/"+id, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Main", body["data"].(map[string]any)["name"])

	resp, body = doJSON(t, app, http.MethodPatch, "/accounts/"+id, token, fiber.Map{
		"name": "Renamed",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Renamed", body["data"].(map[string]any)["name"])

	resp, body = doJSON(t, app, http.MethodGet, "/accounts", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items := body["data"].(map[string]any)["items"].([]any)
	assert.Len(t, items, 1)

	resp, _ = doJSON(t, app, http.MethodDelete, "/accounts/"+id, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/accounts/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestValidationFailureIsProblemDetails(t *testing.T) {
	app := newTestApp(t)
	token := bearerToken(t, "u1")

	resp, body := doJSON(t, app, http.MethodPost, "/accounts", token, fiber.Map{
		"accountType": "crypto",
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "Validation failed", body["title"])

	errs := body["errors"].(map[string]any)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "accountType")
}

func TestUsersAreIsolated(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/accounts", bearerToken(t, "u1"), fiber.Map{
		"name":        "Main",
		"accountType": "bank_checking",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := body["data"].(map[string]any)["id"].(string)

	resp, _ = doJSON(t, app, http.MethodGet, "/accounts/"+id, bearerToken(t, "u2"), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodGet, "/accounts", bearerToken(t, "u2"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body["data"].(map[string]any)["items"])
}

func TestClassifyUnavailableWithoutModel(t *testing.T) {
	app := newTestApp(t)
	resp, body := doJSON(t, app, http.MethodPost, "/transactions/classify", bearerToken(t, "u1"), nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "Service Unavailable", body["title"])
}

func TestPointsOffersPublicListing(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/points/offers", bearerToken(t, "admin"), fiber.Map{
		"program":     "livelo",
		"title":       "Transfer bonus",
		"description": "80% bonus to Smiles",
		"bonus":       0.8,
		"validUntil":  1763072000000,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := body["data"].(map[string]any)

	// No token needed to browse offers.
	resp, body = doJSON(t, app, http.MethodGet, "/points/offers", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items := body["data"].(map[string]any)["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, created["id"], items[0].(map[string]any)["id"])

	// Publishing without a token is rejected.
	resp, _ = doJSON(t, app, http.MethodPost, "/points/offers", "", fiber.Map{
		"program":     "smiles",
		"title":       "Another",
		"description": "Another bonus",
		"bonus":       0.5,
		"validUntil":  1763072000000,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTransactionCreateOverHTTP(t *testing.T) {
	app := newTestApp(t)
	token := bearerToken(t, "u1")

	resp, body := doJSON(t, app, http.MethodPost, "/transactions", token, fiber.Map{
		"accountId":   "a1",
		"accountType": "card_credit",
		"date":        1700000000000,
		"description": "Coffee",
		"amount":      500,
		"type":        "expense",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(500), data["amount"])
	assert.Equal(t, "expense", data["type"])
}

func TestAiMessageOverHTTP(t *testing.T) {
	app := newTestApp(t)
	token := bearerToken(t, "u1")

	resp, body := doJSON(t, app, http.MethodPost, "/ai/messages", token, fiber.Map{
		"sessionId": "s1",
		"role":      "user",
		"content":   "How much did I spend?",
		"createdAt": 1700000000000,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(1700000000000), data["createdAt"])

	resp, body = doJSON(t, app, http.MethodPost, "/ai/messages", token, fiber.Map{
		"sessionId": "s1",
		"role":      "system",
		"content":   "nope",
		"createdAt": 1700000000000,
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body["errors"].(map[string]any), "role")
}
