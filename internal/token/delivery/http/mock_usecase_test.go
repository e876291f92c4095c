package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"jwt-builder/internal/token"
	"jwt-builder/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockTokenUC struct {
	mock.Mock
}

func (m *MockTokenUC) Sign(ctx context.Context, input token.SignInput) (token.SignOutput, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(token.SignOutput), args.Error(1)
}

func (m *MockTokenUC) Verify(ctx context.Context, input token.VerifyInput) (token.VerifyOutput, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(token.VerifyOutput), args.Error(1)
}

func (m *MockTokenUC) GenerateKey(ctx context.Context, length int) (string, error) {
	args := m.Called(ctx, length)
	return args.String(0), args.Error(1)
}

func (m *MockTokenUC) Encode(ctx context.Context, input token.CodecInput) (token.CodecOutput, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(token.CodecOutput), args.Error(1)
}

func (m *MockTokenUC) Decode(ctx context.Context, input token.CodecInput) (token.CodecOutput, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(token.CodecOutput), args.Error(1)
}

func newMockRouter(uc token.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(log.NewNop(), uc, nil)

	r := gin.New()
	h.RegisterTokenRoutes(r)
	h.RegisterRoutes(r.Group("/api/v1"))
	return r
}

// --- Tests ---

func TestSign_PassesRequestThrough(t *testing.T) {
	uc := new(MockTokenUC)
	uc.On("Sign", mock.Anything, mock.MatchedBy(func(in token.SignInput) bool {
		return in.Key == "secret" &&
			in.Alg == "HS384" &&
			in.Claims["iat"] == json.Number("1405326600") &&
			in.Claims["sub"] == "007"
	})).Return(token.SignOutput{Token: "a.b.c"}, nil).Once()

	w := do(newMockRouter(uc), http.MethodPost, "/tokens", `{"claims":{"iat":1405326600,"sub":"007"},"key":"secret","alg":"HS384"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"token":"a.b.c"}`, w.Body.String())
	uc.AssertExpectations(t)
}

func TestSign_MalformedClaimsNeverReachUseCase(t *testing.T) {
	uc := new(MockTokenUC)

	w := do(newMockRouter(uc), http.MethodPost, "/tokens", `{"claims":"text","key":"k","alg":"HS256"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	uc.AssertNotCalled(t, "Sign", mock.Anything, mock.Anything)
}

func TestVerify_MapsUseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{"invalid token", token.ErrInvalidToken, http.StatusUnauthorized, 11004},
		{"missing key", token.ErrMissingKey, http.StatusBadRequest, 11002},
		{"unsupported algorithm", token.ErrUnsupportedAlgorithm, http.StatusBadRequest, 11001},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockTokenUC)
			uc.On("Verify", mock.Anything, token.VerifyInput{Token: "a.b.c", Key: "k"}).
				Return(token.VerifyOutput{}, tt.err).Once()

			w := do(newMockRouter(uc), http.MethodPost, "/tokens/verify", `{"token":"a.b.c","key":"k"}`)

			require.Equal(t, tt.wantStatus, w.Code)
			var resp struct {
				ErrorCode int `json:"error_code"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.ErrorCode)
			uc.AssertExpectations(t)
		})
	}
}

func TestGenerateKey_ForwardsLength(t *testing.T) {
	uc := new(MockTokenUC)
	uc.On("GenerateKey", mock.Anything, 0).Return("default", nil).Once()
	uc.On("GenerateKey", mock.Anything, 7).Return("abcdefg", nil).Once()
	r := newMockRouter(uc)

	w := do(r, http.MethodGet, "/api/v1/keys", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"key":"default"`)

	w = do(r, http.MethodGet, "/api/v1/keys?length=7", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"length":7`)

	uc.AssertExpectations(t)
}

func TestCodec_ForwardsArgs(t *testing.T) {
	uc := new(MockTokenUC)
	uc.On("Decode", mock.Anything, token.CodecInput{Args: []string{"TWFu"}}).
		Return(token.CodecOutput{Value: "Man"}, nil).Once()
	uc.On("Encode", mock.Anything, token.CodecInput{Args: []string{"a", "b"}}).
		Return(token.CodecOutput{}, token.ErrArgument).Once()
	r := newMockRouter(uc)

	w := do(r, http.MethodPost, "/api/v1/base64/decode", `{"value":"TWFu"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"value":"Man"`)

	w = do(r, http.MethodPost, "/api/v1/base64/encode", `{"args":["a","b"]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"error_code":11008`)

	uc.AssertExpectations(t)
}

func TestVerify_ValidatesBeforeUseCase(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"missing token", `{"key":"k"}`, "token: is required"},
		{"two segments", `{"token":"a.b","key":"k"}`, "token: must have three dot-separated segments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockTokenUC)

			w := do(newMockRouter(uc), http.MethodPost, "/tokens/verify", tt.body)

			require.Equal(t, http.StatusBadRequest, w.Code)
			var resp struct {
				ErrorCode int `json:"error_code"`
				Errors    []struct {
					Field    string   `json:"field"`
					Messages []string `json:"messages"`
				} `json:"errors"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, 400, resp.ErrorCode)
			require.Len(t, resp.Errors, 1)
			assert.Equal(t, tt.wantMsg, resp.Errors[0].Field+": "+resp.Errors[0].Messages[0])
			uc.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
		})
	}
}
