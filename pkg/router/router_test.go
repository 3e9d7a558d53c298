package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/influencerflow/backend/config"
	"github.com/influencerflow/backend/pkg/errorx"
	"github.com/influencerflow/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

type echoRequest struct {
	Q         string   `json:"q" form:"q"`
	MaxBudget *float64 `json:"max_budget" form:"max_budget"`
}

type echoResponse struct {
	Q         string   `json:"q"`
	MaxBudget *float64 `json:"max_budget"`
	UserID    string   `json:"user_id"`
}

func echo(ctx context.Context, req *echoRequest) (*echoResponse, error) {
	if req.Q == "fail" {
		return nil, errorx.New(errorx.NotFound, "Not found %s", req.Q)
	}

	return &echoResponse{Q: req.Q, MaxBudget: req.MaxBudget, UserID: xcontext.RequestUserID(ctx)}, nil
}

func newTestRouter() *Router {
	ctx := xcontext.WithConfigs(context.Background(), config.Configs{})
	return New(ctx)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) (int64, string, map[string]any) {
	var resp struct {
		Code  int64          `json:"code"`
		Error string         `json:"error"`
		Data  map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Code, resp.Error, resp.Data
}

func Test_GET_BindsQuery(t *testing.T) {
	r := newTestRouter()
	GET(r, "/echo", echo)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/echo?q=fitness&max_budget=250.5&platform=tiktok", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	code, _, data := decode(t, rec)
	require.Equal(t, int64(0), code)
	require.Equal(t, "fitness", data["q"])
	require.Equal(t, 250.5, data["max_budget"])
}

func Test_GET_EmptyValueLeavesFieldUnset(t *testing.T) {
	r := newTestRouter()
	GET(r, "/echo", echo)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/echo?q=a&max_budget=", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	_, _, data := decode(t, rec)
	require.Nil(t, data["max_budget"])
}

func Test_GET_InvalidQuery(t *testing.T) {
	r := newTestRouter()
	GET(r, "/echo", echo)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/echo?max_budget=abc", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	code, _, _ := decode(t, rec)
	require.Equal(t, int64(errorx.BadRequest), code)
}

func Test_POST_BindsJSONAndForm(t *testing.T) {
	r := newTestRouter()
	POST(r, "/echo", echo)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"q":"travel"}`))
	req.Header.Set("Content-Type", "application/json")
	r.Handler().ServeHTTP(rec, req)
	_, _, data := decode(t, rec)
	require.Equal(t, "travel", data["q"])

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("q=food"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.Handler().ServeHTTP(rec, req)
	_, _, data = decode(t, rec)
	require.Equal(t, "food", data["q"])
}

func Test_ErrorResponse(t *testing.T) {
	r := newTestRouter()
	GET(r, "/echo", echo)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/echo?q=fail", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	code, msg, _ := decode(t, rec)
	require.Equal(t, int64(errorx.NotFound), code)
	require.Equal(t, "Not found fail", msg)
}

func Test_MethodNotAllowed(t *testing.T) {
	r := newTestRouter()
	GET(r, "/echo", echo)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/echo", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func Test_BranchMiddlewares(t *testing.T) {
	r := newTestRouter()
	closed := 0
	r.AddCloser(func(ctx context.Context, err error) { closed++ })

	authRouter := r.Branch()
	authRouter.Before(func(ctx context.Context) (context.Context, error) {
		if xcontext.HTTPRequest(ctx).Header.Get("Authorization") == "" {
			return nil, errorx.New(errorx.Unauthenticated, "Need to authenticate")
		}
		return xcontext.WithRequestUserID(ctx, "user1"), nil
	})

	GET(r, "/public", echo)
	GET(authRouter, "/private", echo)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/public?q=a", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/private?q=a", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private?q=a", nil)
	req.Header.Set("Authorization", "Bearer x")
	r.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	_, _, data := decode(t, rec)
	require.Equal(t, "user1", data["user_id"])

	require.Equal(t, 3, closed)
}

func Test_RejectedRequestRunsClosers(t *testing.T) {
	r := newTestRouter()

	var closedPath string
	var closedErr error
	r.AddCloser(func(ctx context.Context, err error) {
		closedPath = xcontext.HTTPRequest(ctx).URL.Path
		closedErr = err
	})
	r.Before(func(ctx context.Context) (context.Context, error) {
		return nil, errorx.New(errorx.Unauthenticated, "Need to authenticate")
	})
	GET(r, "/echo", echo)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/echo?q=a", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	code, msg, _ := decode(t, rec)
	require.Equal(t, int64(errorx.Unauthenticated), code)
	require.Equal(t, "Need to authenticate", msg)

	require.Equal(t, "/echo", closedPath)
	var errx errorx.Error
	require.ErrorAs(t, closedErr, &errx)
	require.Equal(t, errorx.Unauthenticated, errx.Code)
}

func Test_HandlerErrorReachesClosers(t *testing.T) {
	r := newTestRouter()

	var closedErr error
	r.AddCloser(func(ctx context.Context, err error) { closedErr = err })
	GET(r, "/echo", echo)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/echo?q=fail", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Error(t, closedErr)

	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/echo?q=ok", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, closedErr)
}

func Test_ClientIP(t *testing.T) {
	ctx := xcontext.WithConfigs(context.Background(), config.Configs{
		ApiServer: config.APIServerConfigs{TrustedProxies: []string{"10.0.0.1"}},
	})
	r := New(ctx)

	var ips []string
	r.Before(func(ctx context.Context) (context.Context, error) {
		ips = append(ips, xcontext.ClientIP(ctx))
		return ctx, nil
	})
	GET(r, "/echo", echo)

	for _, remoteAddr := range []string{"10.0.0.1:1000", "10.0.0.2:1000"} {
		req := httptest.NewRequest(http.MethodGet, "/echo?q=a", nil)
		req.RemoteAddr = remoteAddr
		req.Header.Set("X-Forwarded-For", "203.0.113.7")
		r.Handler().ServeHTTP(httptest.NewRecorder(), req)
	}

	require.Equal(t, []string{"203.0.113.7", "10.0.0.2"}, ips)
}

func Test_Raw(t *testing.T) {
	r := newTestRouter()
	r.Raw(http.MethodGet, "/page", func(ctx context.Context, w http.ResponseWriter) error {
		w.Header().Set("Content-Type", "text/html")
		_, err := w.Write([]byte("<p>ok</p>"))
		return err
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/page", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "<p>ok</p>", rec.Body.String())
}
