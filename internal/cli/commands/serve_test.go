package commands

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/scafflint/pkg/lint"
)

func newTestServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	root := t.TempDir()
	handler := NewCheckHandler(lint.NewRunner(lint.NewConfig()), root)
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, root
}

func postCheck(t *testing.T, srv *httptest.Server, body string) (*http.Response, checkResponse) {
	t.Helper()
	resp, err := http.Post(srv.URL+"/v1/check", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var result checkResponse
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	}
	return resp, result
}

func TestServeHealthz(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServeRulesEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, err := http.Get(srv.URL + "/v1/rules")
	require.NoError(t, err)
	defer resp.Body.Close()

	var listing rulesJSONOutput
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listing))
	assert.NotEmpty(t, listing.Rules)
	assert.Equal(t, lint.Count(), listing.Count)
}

func TestServeCheckBlocksViolations(t *testing.T) {
	srv, root := newTestServer(t)
	payload, err := json.Marshal(checkRequest{
		FilePath: root + "/src/controllers/listUsers.ts",
		Phase:    "before-write",
	})
	require.NoError(t, err)

	resp, result := postCheck(t, srv, string(payload))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, result.Blocked)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "CT01")
}

func TestServeCheckAllowsCleanFile(t *testing.T) {
	srv, root := newTestServer(t)
	payload, err := json.Marshal(checkRequest{
		FilePath: root + "/src/controllers/ctrl.listUsers.ts",
		Content:  validController,
		Phase:    "after-write",
	})
	require.NoError(t, err)

	resp, result := postCheck(t, srv, string(payload))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, result.Blocked)
	assert.Equal(t, "controller", result.Category)
}

func TestServeCheckRejectsBadPhase(t *testing.T) {
	srv, root := newTestServer(t)
	payload := `{"file_path":"` + root + `/src/apis/api.users.ts","phase":"whenever"}`
	resp, _ := postCheck(t, srv, payload)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServeCheckRejectsOutsideRoot(t *testing.T) {
	srv, _ := newTestServer(t)
	payload := `{"file_path":"/elsewhere/x.ts","phase":"before-write"}`
	resp, _ := postCheck(t, srv, payload)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestServeCheckRejectsMalformedBody(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, _ := postCheck(t, srv, "{not json")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
