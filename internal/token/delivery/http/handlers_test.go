package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jwt-builder/internal/token/usecase"
	"jwt-builder/pkg/jwt"
	"jwt-builder/pkg/log"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(log.NewNop(), usecase.New(log.NewNop(), jwt.New()), nil)

	r := gin.New()
	h.RegisterTokenRoutes(r)
	h.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json;charset=utf8")
	r.ServeHTTP(w, req)
	return w
}

func TestSignHandler(t *testing.T) {
	r := newTestRouter()
	w := do(r, http.MethodPost, "/tokens", `{"claims":{"iss":"x","iat":1405326600,"exp":null,"Role":["A","B"]},"key":"qwertyuiopasdfghjklzxcvbnm123456","alg":"HS256"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp tokenResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if strings.Count(resp.Token, ".") != 2 {
		t.Fatalf("token = %q", resp.Token)
	}

	// The signed payload round-trips through verify with integers intact.
	w = do(r, http.MethodPost, "/tokens/verify", `{"token":"`+resp.Token+`","key":"qwertyuiopasdfghjklzxcvbnm123456"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("verify status = %d, body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"iat":1405326600`) {
		t.Errorf("verify body = %s", w.Body.String())
	}
}

func TestSignHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   int
	}{
		{"unsupported algorithm", `{"claims":{},"key":"k","alg":"RS256"}`, http.StatusBadRequest, 11001},
		{"missing key", `{"claims":{},"key":"","alg":"HS256"}`, http.StatusBadRequest, 11002},
		{"null claims", `{"claims":null,"key":"k","alg":"HS256"}`, http.StatusBadRequest, 11003},
		{"claims not an object", `{"claims":[1],"key":"k","alg":"HS256"}`, http.StatusBadRequest, http.StatusBadRequest},
		{"malformed body", `{"claims":`, http.StatusBadRequest, http.StatusBadRequest},
	}

	r := newTestRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/tokens", tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			var resp struct {
				ErrorCode int `json:"error_code"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if resp.ErrorCode != tt.wantCode {
				t.Errorf("error_code = %d, want %d", resp.ErrorCode, tt.wantCode)
			}
		})
	}
}

func TestVerifyHandler_WrongKey(t *testing.T) {
	r := newTestRouter()
	w := do(r, http.MethodPost, "/tokens", `{"claims":{"a":1},"key":"k1","alg":"HS512"}`)
	var resp tokenResp
	_ = json.Unmarshal(w.Body.Bytes(), &resp)

	w = do(r, http.MethodPost, "/tokens/verify", `{"token":"`+resp.Token+`","key":"k2"}`)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestGenerateKeyHandler(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		query      string
		wantStatus int
		wantLen    int
	}{
		{"", http.StatusOK, 32},
		{"?length=128", http.StatusOK, 128},
		{"?length=1000", http.StatusBadRequest, 0},
		{"?length=abc", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w := do(r, http.MethodGet, "/api/v1/keys"+tt.query, "")
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			var resp struct {
				Data keyResp `json:"data"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if len(resp.Data.Key) != tt.wantLen || resp.Data.Length != tt.wantLen {
				t.Errorf("key = %q, length = %d", resp.Data.Key, resp.Data.Length)
			}
		})
	}
}

func TestBase64Handlers(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
		wantValue  string
	}{
		{"encode value", "/api/v1/base64/encode", `{"value":"Man"}`, http.StatusOK, "TWFu"},
		{"encode args", "/api/v1/base64/encode", `{"args":["Man"]}`, http.StatusOK, "TWFu"},
		{"encode empty", "/api/v1/base64/encode", `{"value":""}`, http.StatusOK, ""},
		{"encode two args", "/api/v1/base64/encode", `{"args":["a","b"]}`, http.StatusBadRequest, ""},
		{"encode nothing", "/api/v1/base64/encode", `{}`, http.StatusBadRequest, ""},
		{"encode wide rune", "/api/v1/base64/encode", `{"value":"€"}`, http.StatusBadRequest, ""},
		{"decode", "/api/v1/base64/decode", `{"value":"TWFu"}`, http.StatusOK, "Man"},
		{"decode bad length", "/api/v1/base64/decode", `{"value":"TWF"}`, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, tt.path, tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body = %s", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			var resp struct {
				Data codecResp `json:"data"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if resp.Data.Value != tt.wantValue {
				t.Errorf("value = %q, want %q", resp.Data.Value, tt.wantValue)
			}
		})
	}
}
