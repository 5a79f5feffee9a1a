package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"online-llm/pkg/response"
)

// modelsCacheTTL bounds how long a model listing is reused before the
// provider is asked again.
const modelsCacheTTL = time.Minute

const modelsCacheKey = "models"

// generateRequest is the body for both generation endpoints.
type generateRequest struct {
	Prompt  string         `json:"prompt" binding:"required"`
	Options map[string]any `json:"options"`
}

// generate handles a blocking generation request.
func (srv *HTTPServer) generate(c *gin.Context) {
	ctx := c.Request.Context()

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	ctx, cancel := srv.boundRequest(ctx)
	defer cancel()

	text, err := srv.generator.GenerateComplete(ctx, req.Prompt, req.Options)
	if err != nil {
		srv.l.Errorf(ctx, "generate failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	response.OK(c, gin.H{
		"model": srv.generator.Model(),
		"text":  text,
	})
}

// generateStream handles a streaming generation request, relaying each
// fragment as one SSE message event. A provider failure mid-stream is
// relayed as an error event; fragments already sent stay sent.
func (srv *HTTPServer) generateStream(c *gin.Context) {
	ctx := c.Request.Context()

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	ctx, cancel := srv.boundRequest(ctx)
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	for chunk := range srv.generator.GenerateStream(ctx, req.Prompt, req.Options) {
		if chunk.Err != nil {
			srv.l.Errorf(ctx, "stream failed: %v", chunk.Err)
			c.SSEvent("error", chunk.Err.Error())
			c.Writer.Flush()
			return
		}
		c.SSEvent("message", chunk.Text)
		c.Writer.Flush()
	}

	c.SSEvent("done", "")
	c.Writer.Flush()
}

// models lists generation-capable model names, briefly cached so bursts of
// listing requests don't hammer the provider.
func (srv *HTTPServer) models(c *gin.Context) {
	ctx := c.Request.Context()

	if names, ok := srv.modelsCache.Get(modelsCacheKey); ok {
		response.OK(c, gin.H{"models": names})
		return
	}

	names, err := srv.listModels(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "list models failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	srv.modelsCache.Add(modelsCacheKey, names)
	response.OK(c, gin.H{"models": names})
}

// boundRequest applies the edge timeout, if configured.
func (srv *HTTPServer) boundRequest(ctx context.Context) (context.Context, context.CancelFunc) {
	if srv.requestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, srv.requestTimeout)
}
