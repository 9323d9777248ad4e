package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/A-Alhammadi/Intro-to-AI/core"
	"github.com/A-Alhammadi/Intro-to-AI/dfs"
	"github.com/A-Alhammadi/Intro-to-AI/geo"
	"github.com/A-Alhammadi/Intro-to-AI/route"
)

// serviceName names the HTTP server spans.
const serviceName = "waypath"

// errBadRequest marks query parameter problems.
var errBadRequest = errors.New("bad request")

// registerRoutes wires middleware and endpoints.
func (s *Server) registerRoutes() {
	s.router.Use(
		otelgin.Middleware(serviceName),
		requestID(),
		accessLog(s.logger),
		gin.Recovery(),
	)

	s.router.GET("/health", s.handleHealth)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.router.Group("/v1")
	{
		v1.GET("/route", s.handleRoute)
		v1.GET("/compare", s.handleCompare)
		v1.GET("/nodes/:id", s.handleNode)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	st := s.planner.Graph().Stats()
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"vertices": st.Vertices,
		"edges":    st.Edges,
	})
}

// handleRoute answers GET /v1/route.
func (s *Server) handleRoute(c *gin.Context) {
	from, to, maxDepth, err := s.endpoints(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	strategy := s.opts.DefaultStrategy
	if raw, ok := c.GetQuery("strategy"); ok {
		if strategy, err = route.ParseStrategy(raw); err != nil {
			s.fail(c, err)
			return
		}
	}

	key := fmt.Sprintf("route\x00%s\x00%s\x00%s\x00%d", strategy, from, to, maxDepth)
	v, err, _ := s.flight.Do(key, func() (interface{}, error) {
		return s.planner.Plan(c.Request.Context(), route.Request{
			Strategy: strategy, From: from, To: to, MaxDepth: maxDepth,
		})
	})
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, v.(*route.Report))
}

// handleCompare answers GET /v1/compare.
func (s *Server) handleCompare(c *gin.Context) {
	from, to, maxDepth, err := s.endpoints(c)
	if err != nil {
		s.fail(c, err)
		return
	}

	key := fmt.Sprintf("compare\x00%s\x00%s\x00%d", from, to, maxDepth)
	v, err, _ := s.flight.Do(key, func() (interface{}, error) {
		return s.planner.Compare(c.Request.Context(), from, to, maxDepth)
	})
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"from":    from,
		"to":      to,
		"reports": v.([]*route.Report),
	})
}

// nodeView is the body of GET /v1/nodes/:id.
type nodeView struct {
	ID         string          `json:"id"`
	Degree     int             `json:"degree"`
	Neighbors  []string        `json:"neighbors"`
	Coordinate *geo.Coordinate `json:"coordinate,omitempty"`
}

// handleNode answers GET /v1/nodes/:id.
func (s *Server) handleNode(c *gin.Context) {
	id := c.Param("id")
	nbs, err := s.planner.Graph().Neighbors(id)
	if err != nil {
		s.fail(c, err)
		return
	}

	view := nodeView{ID: id, Degree: len(nbs), Neighbors: append([]string{}, nbs...)}
	if m := s.planner.Geo(); m != nil {
		if coord, err := m.Coordinate(id); err == nil {
			view.Coordinate = &coord
		}
	}

	c.JSON(http.StatusOK, view)
}

// endpointQuery binds the query parameters shared by /route and /compare.
type endpointQuery struct {
	From     string `form:"from" binding:"required"`
	To       string `form:"to" binding:"required"`
	MaxDepth *int   `form:"max_depth" binding:"omitempty,min=0"`
}

// endpoints reads from, to and max_depth.
func (s *Server) endpoints(c *gin.Context) (from, to string, maxDepth int, err error) {
	var q endpointQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return "", "", 0, fmt.Errorf("%w: %v", errBadRequest, err)
	}

	maxDepth = s.opts.MaxDepth
	if q.MaxDepth != nil {
		maxDepth = *q.MaxDepth
	}

	return q.From, q.To, maxDepth, nil
}

// fail writes {"error": ...} with the status matching err.
func (s *Server) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request.Context(), "request failed",
			"error", err, "request_id", c.GetString(requestIDKey))
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

// statusFor maps package sentinels to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrUnknownNode):
		return http.StatusNotFound
	case errors.Is(err, geo.ErrUnknownCoordinate), errors.Is(err, route.ErrGeoRequired):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errBadRequest),
		errors.Is(err, route.ErrUnknownStrategy),
		errors.Is(err, dfs.ErrNegativeDepth):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
