package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"main/model"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func newAuthRouter() (*gin.Engine, *fakeUserRepo) {
	users := newFakeUserRepo()
	authHandler := NewAuthHandler(&usecase.UserService{Users: users})

	router := gin.New()
	router.POST("/api/register", authHandler.Register)
	router.POST("/api/login", authHandler.Login)
	return router, users
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) Gecko/20100101 Firefox/124.0")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func tokenFrom(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var response utils.Response
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	data, ok := response.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("response missing data object: %s", w.Body.String())
	}
	token, _ := data["token"].(string)
	if token == "" {
		t.Fatalf("response missing token: %s", w.Body.String())
	}
	return token
}

func TestRegisterHandler(t *testing.T) {
	router, _ := newAuthRouter()

	w := postJSON(t, router, "/api/register", map[string]string{
		"name": "alice", "password": "s3cret!!", "role": "admin",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
	}

	claims, err := services.ParseToken(tokenFrom(t, w))
	if err != nil {
		t.Fatalf("registration token does not verify: %v", err)
	}
	if claims.Name != "alice" || claims.Role != model.RoleAdmin {
		t.Errorf("claims mismatch: %+v", claims)
	}

	// registering the same name twice fails
	w = postJSON(t, router, "/api/register", map[string]string{
		"name": "alice", "password": "s3cret!!",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 on duplicate registration, got %d", w.Code)
	}
}

func TestRegisterHandlerValidation(t *testing.T) {
	router, _ := newAuthRouter()

	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing name", map[string]string{"password": "s3cret!!"}},
		{"missing password", map[string]string{"name": "alice"}},
		{"short password", map[string]string{"name": "alice", "password": "abc"}},
		{"unknown role", map[string]string{"name": "alice", "password": "s3cret!!", "role": "root"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := postJSON(t, router, "/api/register", tt.body); w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	router, _ := newAuthRouter()

	if w := postJSON(t, router, "/api/register", map[string]string{
		"name": "alice", "password": "s3cret!!",
	}); w.Code != http.StatusCreated {
		t.Fatalf("registration failed: %d", w.Code)
	}

	w := postJSON(t, router, "/api/login", map[string]string{
		"name": "alice", "password": "s3cret!!",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if _, err := services.ParseToken(tokenFrom(t, w)); err != nil {
		t.Errorf("login token does not verify: %v", err)
	}

	if w := postJSON(t, router, "/api/login", map[string]string{
		"name": "alice", "password": "wrong",
	}); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for wrong password, got %d", w.Code)
	}

	if w := postJSON(t, router, "/api/login", map[string]string{
		"name": "nobody", "password": "s3cret!!",
	}); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown user, got %d", w.Code)
	}
}
