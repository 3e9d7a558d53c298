package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/influencerflow/backend/pkg/xcontext"
	"github.com/rs/cors"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// RawHandlerFunc writes the response by itself, it is used for pages which
// are not JSON.
type RawHandlerFunc func(ctx context.Context, w http.ResponseWriter) error

// MiddlewareFunc runs before the handler. A returned error stops the request
// and the returned context is ignored.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the response is written, even if a middleware
// rejected the request.
type CloserFunc func(ctx context.Context, err error)

type Router struct {
	Inner gin.IRouter

	ctx    context.Context
	engine *gin.Engine
}

func New(ctx context.Context) *Router {
	cfg := xcontext.Configs(ctx)
	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	if err := engine.SetTrustedProxies(cfg.ApiServer.TrustedProxies); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot set trusted proxies: %v", err)
	}
	engine.Use(withRequestContext(ctx))

	return &Router{Inner: engine, ctx: ctx, engine: engine}
}

// Branch returns a router sharing the routes and copying the current
// middlewares. Middlewares added to the branch do not affect the parent.
func (r *Router) Branch() *Router {
	return &Router{
		Inner:  r.Inner.Group(""),
		ctx:    r.ctx,
		engine: r.engine,
	}
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.Inner.Use(wrapMiddleware(middleware))
}

func (r *Router) AddCloser(closer CloserFunc) {
	r.Inner.Use(wrapCloser(closer))
}

func (r *Router) Static(relativePath, root string) {
	r.Inner.Static(relativePath, root)
}

func (r *Router) StaticFile(relativePath, filepath string) {
	r.Inner.StaticFile(relativePath, filepath)
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.GET(pattern, wrapHandler(http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.POST(pattern, wrapHandler(http.MethodPost, handler))
}

func (r *Router) Raw(method, pattern string, handler RawHandlerFunc) {
	r.Inner.Handle(method, pattern, wrapRaw(handler))
}

// Handler returns the root http.Handler with CORS applied.
func (r *Router) Handler() http.Handler {
	cfg := xcontext.Configs(r.ctx).ApiServer
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Authorization"},
		AllowCredentials: true,
	}).Handler(r.engine)
}

// withRequestContext puts the router's values (configs, logger, database...)
// behind the request context, so that every handler only deals with a
// context.Context.
func withRequestContext(base context.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := newRequestContext(c.Request.Context(), base)
		ctx = xcontext.WithHTTPRequest(ctx, c.Request)
		ctx = xcontext.WithClientIP(ctx, c.ClientIP())
		ctx = xcontext.WithStartTime(ctx, time.Now())
		c.Request = c.Request.WithContext(ctx)
	}
}
