package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/katalvlaran/citygraph/core"
	"github.com/katalvlaran/citygraph/dijkstra"
	"github.com/katalvlaran/citygraph/graphio"
	"github.com/katalvlaran/citygraph/internal/session"
	"github.com/katalvlaran/citygraph/prim_kruskal"
)

var (
	// ErrBadRequest marks requests rejected before reaching the engine.
	ErrBadRequest = errors.New("server: bad request")

	// ErrNoStore is returned by repository-backed routes when the server
	// was built without a Store.
	ErrNoStore = errors.New("server: no repository configured")
)

// statusFor maps engine and adapter errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, graphio.ErrMalformedInput):
		// Checked before ErrInvalidEdge, which a rejected row also wraps.
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, core.ErrInvalidEdge),
		errors.Is(err, dijkstra.ErrOptionViolation),
		errors.Is(err, prim_kruskal.ErrUnknownMethod),
		errors.Is(err, prim_kruskal.ErrCityNotFound):
		return http.StatusBadRequest
	case errors.Is(err, prim_kruskal.ErrDisconnected),
		errors.Is(err, prim_kruskal.ErrEmptyGraph):
		return http.StatusConflict
	case errors.Is(err, ErrNoStore):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// fail aborts the request with a JSON error body. Malformed input also
// reports the offending line and field.
func (s *Server) fail(c *gin.Context, err error) {
	status := statusFor(err)
	_ = c.Error(err)

	body := gin.H{"error": err.Error()}
	var mi *graphio.MalformedInputError
	if errors.As(err, &mi) {
		body["line"] = mi.Line
		if mi.Field != "" {
			body["field"] = mi.Field
		}
	}
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", zap.Error(err), zap.String("session", c.Param("id")))
	}

	c.AbortWithStatusJSON(status, body)
}
