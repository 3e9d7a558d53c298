package router

import "context"

// requestContext takes cancellation from the http request and falls back to
// the router's base context for values (configs, logger, database...).
type requestContext struct {
	context.Context
	base context.Context
}

func newRequestContext(reqCtx, base context.Context) context.Context {
	return &requestContext{Context: reqCtx, base: base}
}

func (c *requestContext) Value(key any) any {
	if v := c.Context.Value(key); v != nil {
		return v
	}

	return c.base.Value(key)
}
