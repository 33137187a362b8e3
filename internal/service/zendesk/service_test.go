package zendesk

import (
	"AssistHub/internal/config"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchResponse = `{
	"count": 2,
	"results": [
		{"id": 1, "title": "Reset password", "html_url": "https://acme.zendesk.com/hc/1", "body": "<p>Click <b>Forgot password</b>.</p>"},
		{"id": 2, "title": "Billing", "html_url": "https://acme.zendesk.com/hc/2", "body": "<div>Invoices are monthly</div>"}
	]
}`

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	conf := &config.Config{}
	conf.Zendesk.Username = "agent@acme.com"
	conf.Zendesk.Password = "secret"
	conf.Zendesk.BaseURL = srv.URL

	s := NewService(conf, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NotNil(t, s)
	return s
}

func TestSearchZendesk(t *testing.T) {
	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, searchPath, r.URL.Path)
		assert.Equal(t, "reset password", r.URL.Query().Get("query"))

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "agent@acme.com", user)
		assert.Equal(t, "secret", pass)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchResponse))
	})

	out, err := s.SearchZendesk(context.Background(), "reset password")
	require.NoError(t, err)

	var articles []string
	require.NoError(t, json.Unmarshal([]byte(out), &articles))
	assert.Equal(t, []string{"Click Forgot password.", "Invoices are monthly"}, articles)
}

func TestSearchZendeskNoResults(t *testing.T) {
	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": []}`))
	})

	out, err := s.SearchZendesk(context.Background(), "nothing")
	require.NoError(t, err)
	assert.Equal(t, "[]", out)
}

func TestSearchArticles(t *testing.T) {
	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(searchResponse))
	})

	articles, err := s.Search(context.Background(), "billing")
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, int64(2), articles[1].ID)
	assert.Equal(t, "Billing", articles[1].Title)
	assert.Equal(t, "Invoices are monthly", articles[1].Body)
}

func TestSearchErrors(t *testing.T) {
	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	_, err := s.SearchZendesk(context.Background(), "x")
	assert.ErrorIs(t, err, ErrConnection)
	assert.ErrorContains(t, err, "401")

	s = newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	})
	_, err = s.Search(context.Background(), "x")
	assert.ErrorIs(t, err, ErrConnection)

	conf := &config.Config{}
	conf.Zendesk.BaseURL = "http://127.0.0.1:1"
	unreachable := NewService(conf, slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err = unreachable.SearchZendesk(context.Background(), "x")
	assert.ErrorIs(t, err, ErrConnection)
}

func TestNewServiceNotConfigured(t *testing.T) {
	assert.Nil(t, NewService(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func TestStripTags(t *testing.T) {
	assert.Equal(t, "a b c", StripTags(`<p class="x">a</p> <br/>b <i>c</i>`))
	assert.Equal(t, "no tags", StripTags("no tags"))
}

func TestToolAndHandleCommand(t *testing.T) {
	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "refund", r.URL.Query().Get("query"))
		_, _ = w.Write([]byte(searchResponse))
	})

	tool, err := s.Tool().AssistantTool()
	require.NoError(t, err)
	assert.Equal(t, openai.AssistantToolTypeFunction, tool.Type)
	assert.Equal(t, SearchCommand, tool.Function.Name)

	out, err := s.HandleCommand(context.Background(), SearchCommand, json.RawMessage(`{"search_string":"refund"}`))
	require.NoError(t, err)
	assert.Contains(t, out, "Invoices are monthly")

	_, err = s.HandleCommand(context.Background(), "other", nil)
	assert.ErrorIs(t, err, ErrUnknownCommand)

	_, err = s.HandleCommand(context.Background(), SearchCommand, json.RawMessage(`not json`))
	assert.Error(t, err)
}
