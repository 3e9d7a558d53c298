package router

import (
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/influencerflow/backend/pkg/errorx"
	"github.com/influencerflow/backend/pkg/xcontext"
)

func wrapHandler[Request, Response any](method string, handler HandlerFunc[Request, Response]) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := new(Request)
		if err := bindRequest(c, method, req); err != nil {
			abortWithError(c, err)
			return
		}

		resp, err := handler(c.Request.Context(), req)
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.JSON(http.StatusOK, newResponse(resp))
	}
}

func wrapRaw(handler RawHandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := handler(c.Request.Context(), c.Writer); err != nil {
			abortWithError(c, err)
		}
	}
}

func wrapMiddleware(middleware MiddlewareFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, err := middleware(c.Request.Context())
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.Request = c.Request.WithContext(ctx)
	}
}

func wrapCloser(closer CloserFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		var err error
		if last := c.Errors.Last(); last != nil {
			err = last.Err
		}

		closer(c.Request.Context(), err)
	}
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	status, resp := newErrorResponse(err)
	c.AbortWithStatusJSON(status, resp)
}

func bindRequest(c *gin.Context, method string, req any) error {
	ctx := c.Request.Context()

	switch method {
	case http.MethodGet:
		// An empty parameter leaves the field unset.
		query := url.Values{}
		for key, values := range c.Request.URL.Query() {
			if len(values) > 0 && values[0] != "" {
				query[key] = values
			}
		}

		queryReq := &http.Request{URL: &url.URL{RawQuery: query.Encode()}}
		if err := binding.Query.Bind(queryReq, req); err != nil {
			xcontext.Logger(ctx).Debugf("Cannot bind query: %v", err)
			return errorx.New(errorx.BadRequest, "Invalid query parameters")
		}

	case http.MethodPost:
		switch c.ContentType() {
		case binding.MIMEPOSTForm, binding.MIMEMultipartPOSTForm:
			if err := c.ShouldBindWith(req, binding.Form); err != nil {
				xcontext.Logger(ctx).Debugf("Cannot bind form: %v", err)
				return errorx.New(errorx.BadRequest, "Invalid form")
			}

		default:
			if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
				xcontext.Logger(ctx).Debugf("Cannot bind body: %v", err)
				return errorx.New(errorx.BadRequest, "Invalid request body")
			}
		}
	}

	return nil
}
