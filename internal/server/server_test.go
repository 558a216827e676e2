package server

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/funicular/funicular/internal/catalog"
	"github.com/funicular/funicular/internal/database"
	"github.com/funicular/funicular/internal/page"
)

func newTestServer(t *testing.T, mode page.StyleMode) *Server {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.Open(context.Background(), database.Config{
		URL:      "file:" + name + "?mode=memory&cache=shared",
		MaxConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := catalog.NewBunRepository(db, time.Second)
	require.NoError(t, repo.CreateSchema(context.Background()))

	composer := page.NewComposer(nil, page.Options{Mode: mode})
	return New(Config{}, composer, catalog.NewService(repo, nil), nil)
}

func do(t *testing.T, s *Server, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func postForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/games", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func postMultipart(t *testing.T, fields map[string][]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, values := range fields {
		for _, v := range values {
			require.NoError(t, w.WriteField(key, v))
		}
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/games", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestIndex(t *testing.T) {
	s := newTestServer(t, page.StyleInline)

	resp, body := do(t, s, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	require.Contains(t, body, "Hello, World!")
	require.Contains(t, body, "<style>")
}

func TestStylesheet(t *testing.T) {
	s := newTestServer(t, page.StyleLinked)

	resp, body := do(t, s, httptest.NewRequest(http.MethodGet, "/site.css", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/css", resp.Header.Get("Content-Type"))
	require.Equal(t, "max-age=2592000", resp.Header.Get("Cache-Control"))

	// Covers the shell and every catalog document
	require.Contains(t, body, `.sm\:flex-row`)
	require.Contains(t, body, `.open\:flex[open]`)
	require.Contains(t, body, ".i-tabler-plus")

	_, html := do(t, s, httptest.NewRequest(http.MethodGet, "/games", nil))
	require.Contains(t, html, `href="/site.css"`)
	require.NotContains(t, html, "<style>")
}

func TestGamesFlow(t *testing.T) {
	s := newTestServer(t, page.StyleInline)

	resp, body := do(t, s, httptest.NewRequest(http.MethodGet, "/games", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body, "No games...")

	resp, body = do(t, s, httptest.NewRequest(http.MethodGet, "/games?add", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body, "<dialog ")
	require.Contains(t, body, `open=""`)

	resp, body = do(t, s, postForm(url.Values{"submit": {"add"}, "name": {"Chess"}, "description": {"An *old* game"}}))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body, `href="/games/chess"`)
	require.NotContains(t, body, "<dialog")

	_, body = do(t, s, postForm(url.Values{"submit": {"add"}, "name": {"Go"}}))
	require.Contains(t, body, `href="/games/go"`)

	resp, body = do(t, s, httptest.NewRequest(http.MethodGet, "/games/chess", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body, "<em>old</em>")

	resp, body = do(t, s, postMultipart(t, map[string][]string{"submit": {"remove"}, "slugs[]": {"chess", "missing"}}))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotContains(t, body, `href="/games/chess"`)
	require.Contains(t, body, `href="/games/go"`)

	resp, body = do(t, s, postForm(url.Values{"submit": {"remove"}, "slugs_all": {"true"}}))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body, "No games...")
}

func TestUrlencodedSlugs(t *testing.T) {
	s := newTestServer(t, page.StyleInline)

	for _, name := range []string{"Chess", "Go", "Shogi"} {
		do(t, s, postForm(url.Values{"submit": {"add"}, "name": {name}}))
	}

	_, body := do(t, s, postForm(url.Values{"submit": {"remove"}, "slugs": {"chess", "go"}}))
	require.NotContains(t, body, `href="/games/chess"`)
	require.NotContains(t, body, `href="/games/go"`)
	require.Contains(t, body, `href="/games/shogi"`)
}

func TestGameNotFound(t *testing.T) {
	s := newTestServer(t, page.StyleInline)

	resp, body := do(t, s, httptest.NewRequest(http.MethodGet, "/games/nope", nil))
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Contains(t, body, "No game...")
}

type unavailableRepository struct {
	catalog.Repository
}

func (unavailableRepository) List(context.Context) ([]catalog.Game, error) {
	return nil, catalog.ErrUnavailable
}

func TestUnavailableStore(t *testing.T) {
	s := New(Config{}, page.NewComposer(nil, page.Options{}), catalog.NewService(unavailableRepository{}, nil), nil)

	resp, _ := do(t, s, httptest.NewRequest(http.MethodGet, "/games", nil))
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestTruthy(t *testing.T) {
	for _, v := range []string{"true", "on", "1", "yes"} {
		require.True(t, truthy(v), v)
	}
	for _, v := range []string{"", "false", "0", "off"} {
		require.False(t, truthy(v), v)
	}
}
