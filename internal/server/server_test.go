package server_test

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/orangedata-go/internal/server"
	"github.com/rezonia/orangedata-go/internal/signature"
	"github.com/rezonia/orangedata-go/internal/transport"
)

// registrarStub stands in for the fiscal endpoint behind the bridge.
type registrarStub struct {
	status    int
	reply     string
	path      string
	body      []byte
	signature string
}

func (r *registrarStub) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		r.path = req.URL.Path
		r.body, _ = io.ReadAll(req.Body)
		r.signature = req.Header.Get("X-Signature")
		w.WriteHeader(r.status)
		w.Write([]byte(r.reply))
	})
}

func newTestServer(t *testing.T, stub *registrarStub) (*server.Server, *signature.RSASigner) {
	t.Helper()

	upstream := httptest.NewServer(stub.handler())
	t.Cleanup(upstream.Close)

	registrar, err := transport.New(transport.Config{
		BaseURL: upstream.URL,
		INN:     "1234567890",
	})
	require.NoError(t, err)

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	signer := signature.NewRSASigner(key)

	config := &server.Config{
		Address: ":8080",
		INN:     "1234567890",
		Group:   "Main",
	}
	return server.NewServer(config, signer, registrar), signer
}

func orderBody() map[string]interface{} {
	return map[string]interface{}{
		"id":              "2734-abc",
		"type":            1,
		"customerContact": "user@example.com",
		"taxationSystem":  0,
		"ffdVersion":      "1.05",
		"positions": []map[string]interface{}{
			{"quantity": "2", "price": "10.50", "tax": 1, "text": "Widget"},
		},
		"payments": []map[string]interface{}{
			{"type": 2, "amount": "21.00"},
		},
	}
}

func postJSON(t *testing.T, srv *server.Server, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, &registrarStub{status: 201})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ok", response["status"])
	assert.NotEmpty(t, response["time"])
}

func TestSubmitOrder(t *testing.T) {
	stub := &registrarStub{status: 201}
	srv, signer := newTestServer(t, stub)

	w := postJSON(t, srv, "/api/v1/orders", orderBody())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp server.SubmitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2734-abc", resp.ID)
	assert.True(t, resp.Accepted)

	// The registrar received the canonical document with a signature
	// that verifies against the configured key.
	assert.Equal(t, "/api/v2/documents/", stub.path)
	assert.Contains(t, string(stub.body), `"inn":"1234567890"`)

	assert.NoError(t, signature.Verify(signer.Public(), stub.body, stub.signature))
}

func TestSubmitOrderMalformedBody(t *testing.T) {
	srv, _ := newTestServer(t, &registrarStub{status: 201})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitOrderValidationFailure(t *testing.T) {
	stub := &registrarStub{status: 201}
	srv, _ := newTestServer(t, stub)

	body := orderBody()
	body["type"] = 5
	w := postJSON(t, srv, "/api/v1/orders", body)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp server.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Details, "content.type")
	// Nothing was sent upstream.
	assert.Empty(t, stub.path)
}

func TestSubmitOrderRegistrarConflict(t *testing.T) {
	srv, _ := newTestServer(t, &registrarStub{status: 409})

	w := postJSON(t, srv, "/api/v1/orders", orderBody())
	assert.Equal(t, http.StatusBadGateway, w.Code)

	var resp server.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Details, "CONFLICT")
}

func TestOrderStatus(t *testing.T) {
	stub := &registrarStub{status: 200, reply: `{"status":"done"}`}
	srv, _ := newTestServer(t, stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/2734-abc/status", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"done"}`, w.Body.String())
	assert.Equal(t, "/api/v2/documents/1234567890/status/2734-abc", stub.path)
}

func TestOrderStatusProcessing(t *testing.T) {
	srv, _ := newTestServer(t, &registrarStub{status: 202})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/2734-abc/status", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func correctionBody() map[string]interface{} {
	return map[string]interface{}{
		"id":                  "corr-1",
		"correctionType":      0,
		"type":                1,
		"description":         "cash drawer recount",
		"causeDocumentDate":   "2026-08-15",
		"causeDocumentNumber": "17",
		"taxationSystem":      0,
		"ffdVersion":          "1.05",
		"totalSum":            "100.10",
	}
}

func TestSubmitCorrection(t *testing.T) {
	stub := &registrarStub{status: 201}
	srv, _ := newTestServer(t, stub)

	w := postJSON(t, srv, "/api/v1/corrections", correctionBody())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "/api/v2/corrections/", stub.path)
	assert.Contains(t, string(stub.body), `"causeDocumentDate":"2026-08-15T00:00:00"`)
}

func TestSubmitCorrection12Routing(t *testing.T) {
	stub := &registrarStub{status: 201}
	srv, _ := newTestServer(t, stub)

	body := correctionBody()
	body["ffdVersion"] = "1.2"
	body["positions"] = []map[string]interface{}{
		{"quantity": "1", "price": "100.10", "tax": 1, "text": "Widget"},
	}
	body["payments"] = []map[string]interface{}{
		{"type": 1, "amount": "100.10"},
	}

	w := postJSON(t, srv, "/api/v1/corrections", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "/api/v2/corrections12/", stub.path)
}

func TestSubmitCorrectionBadDate(t *testing.T) {
	srv, _ := newTestServer(t, &registrarStub{status: 201})

	body := correctionBody()
	body["causeDocumentDate"] = "15.08.2026"
	w := postJSON(t, srv, "/api/v1/corrections", body)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCorrectionStatusRevisionQuery(t *testing.T) {
	stub := &registrarStub{status: 200, reply: `{}`}
	srv, _ := newTestServer(t, stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/corrections/corr-1/status", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/api/v2/corrections/1234567890/status/corr-1", stub.path)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/corrections/corr-1/status?ffdVersion=1.2", nil)
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, "/api/v2/corrections12/1234567890/status/corr-1", stub.path)
}
