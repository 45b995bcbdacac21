package integrationtests

import (
	auction "auction-backend/internal/auctionService"
	bidding "auction-backend/internal/biddingService"
	"auction-backend/internal/repository"
	"auction-backend/internal/server"
	user "auction-backend/internal/userService"
	"auction-backend/utils"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// SetupTestRouter initializes the full router with an in-memory repository
// for integration testing.
func SetupTestRouter() *gin.Engine {
	router, _ := SetupTestRouterWithStore()
	return router
}

// SetupTestRouterWithStore additionally exposes the backing store so tests
// can seed states the API alone cannot reach.
func SetupTestRouterWithStore() (*gin.Engine, *repository.MemoryRepo) {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()
	tokens := utils.NewJWTManager("integration-test-secret", time.Hour)

	auctionSvc := auction.NewAuctionService(repo)
	biddingSvc := bidding.NewBiddingService(repo)
	userSvc := user.NewUserService(repo, tokens)

	return server.SetupRouter(auctionSvc, biddingSvc, userSvc, tokens), repo
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
// An empty token leaves the request unauthenticated.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ParseResponse unmarshals a response envelope into a map.
func ParseResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// ResponseData returns the data object of a response envelope.
func ResponseData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	resp := ParseResponse(t, w)
	data, ok := resp["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %s", w.Body.String())
	return data
}

// RegisterAndLogin registers a fresh user and returns its ID and a session token.
func RegisterAndLogin(t *testing.T, router *gin.Engine, username string) (userID, token string) {
	t.Helper()

	email := fmt.Sprintf("%s@example.com", username)
	w := ExecuteRequest(t, router, http.MethodPost, "/api/users/register", map[string]any{
		"username":         username,
		"email":            email,
		"password":         "password123",
		"confirm_password": "password123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	userID = ResponseData(t, w)["user_id"].(string)

	w = ExecuteRequest(t, router, http.MethodPost, "/api/users/login", map[string]any{
		"email":    email,
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token = ResponseData(t, w)["token"].(string)

	return userID, token
}

// CreateAuction creates an auction item through the API and returns its ID.
func CreateAuction(t *testing.T, router *gin.Engine, token, title string, startingBid float64, endDate time.Time) string {
	t.Helper()

	w := ExecuteRequest(t, router, http.MethodPost, "/api/auctions", map[string]any{
		"title":        title,
		"description":  title + " description",
		"starting_bid": startingBid,
		"end_date":     endDate.UTC().Format(time.RFC3339),
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return ResponseData(t, w)["item_id"].(string)
}
