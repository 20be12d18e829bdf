package server

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/katalvlaran/citygraph/bfs"
	"github.com/katalvlaran/citygraph/core"
	"github.com/katalvlaran/citygraph/dijkstra"
	"github.com/katalvlaran/citygraph/graphio"
	"github.com/katalvlaran/citygraph/internal/session"
	"github.com/katalvlaran/citygraph/prim_kruskal"
)

// Source values accepted by POST /sessions.
const (
	SourceEmpty = "empty"
	SourceRepo  = "repo"
)

type createRequest struct {
	Source string `json:"source"`
}

type sessionView struct {
	ID     string `json:"id"`
	Cities int    `json:"cities"`
	Edges  int    `json:"edges"`
}

type graphView struct {
	Cities []core.CityEntry `json:"cities"`
	Edges  []core.Edge      `json:"edges"`
}

type edgeRequest struct {
	City1    string   `json:"city1"`
	City2    string   `json:"city2"`
	Distance *float64 `json:"distance"`
}

// pathView carries a null distance when no path exists, since JSON has no
// representation for +Inf.
type pathView struct {
	Found    bool     `json:"found"`
	Path     []string `json:"path"`
	Distance *float64 `json:"distance"`
}

func badRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrBadRequest, fmt.Sprintf(format, args...))
}

func (s *Server) withSession(h func(*gin.Context, *session.Session)) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := s.sessions.Get(c.Param("id"))
		if err != nil {
			s.fail(c, err)
			return
		}
		h(c, sess)
	}
}

func (s *Server) createSession(c *gin.Context) {
	g, err := s.seedGraph(c)
	if err != nil {
		s.fail(c, err)
		return
	}

	sess := s.sessions.Create(g)
	s.log.Info("session created",
		zap.String("session", sess.ID),
		zap.Int("cities", g.CityCount()),
		zap.Int("edges", g.EdgeCount()))

	c.JSON(http.StatusCreated, sessionView{ID: sess.ID, Cities: g.CityCount(), Edges: g.EdgeCount()})
}

// seedGraph builds the initial session graph from the request body:
// a multipart "file" field or a text/csv body is parsed as CSV, a JSON body
// selects a source, and anything else starts empty.
func (s *Server) seedGraph(c *gin.Context) (*core.Graph, error) {
	switch c.ContentType() {
	case "multipart/form-data":
		fh, err := c.FormFile("file")
		if err != nil {
			return nil, badRequest("file field: %v", err)
		}
		f, err := fh.Open()
		if err != nil {
			return nil, badRequest("file field: %v", err)
		}
		defer f.Close()

		return graphio.Read(f, s.opts...)
	case "text/csv":
		return graphio.Read(c.Request.Body, s.opts...)
	case "application/json":
		if c.Request.ContentLength == 0 {
			return core.NewGraph(s.opts...), nil
		}
		var req createRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, badRequest("%v", err)
		}
		switch req.Source {
		case "", SourceEmpty:
			return core.NewGraph(s.opts...), nil
		case SourceRepo:
			if s.store == nil {
				return nil, ErrNoStore
			}
			return s.store.Load(c.Request.Context())
		default:
			return nil, badRequest("unknown source %q", req.Source)
		}
	default:
		return core.NewGraph(s.opts...), nil
	}
}

func (s *Server) deleteSession(c *gin.Context) {
	if err := s.sessions.Delete(c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) getGraph(c *gin.Context, sess *session.Session) {
	c.JSON(http.StatusOK, graphView{
		Cities: sess.Graph.AdjacencyList(),
		Edges:  sess.Graph.Edges(),
	})
}

func (s *Server) addEdge(c *gin.Context, sess *session.Session) {
	var req edgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, badRequest("%v", err))
		return
	}
	if req.Distance == nil {
		s.fail(c, badRequest("distance is required"))
		return
	}
	if err := sess.Graph.AddEdge(req.City1, req.City2, *req.Distance); err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"edge":   core.Edge{City1: req.City1, City2: req.City2, Distance: *req.Distance},
		"cities": sess.Graph.CityCount(),
		"edges":  sess.Graph.EdgeCount(),
	})
}

func (s *Server) findPath(c *gin.Context, sess *session.Session) {
	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		s.fail(c, badRequest("from and to are required"))
		return
	}

	var opts []dijkstra.Option
	if raw := c.Query("max"); raw != "" {
		limit, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			s.fail(c, badRequest("max: %v", err))
			return
		}
		opts = append(opts, dijkstra.WithMaxDistance(limit))
	}

	p, err := dijkstra.FindPath(sess.Graph, from, to, opts...)
	if err != nil {
		s.fail(c, err)
		return
	}

	view := pathView{Found: p.Found(), Path: []string{}}
	if p.Found() {
		d := p.Distance
		view.Path = p.Cities
		view.Distance = &d
	}
	c.JSON(http.StatusOK, view)
}

func (s *Server) components(c *gin.Context, sess *session.Session) {
	comps, err := bfs.Components(sess.Graph)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(comps), "components": comps})
}

func (s *Server) stats(c *gin.Context, sess *session.Session) {
	c.JSON(http.StatusOK, sess.Graph.Stats())
}

// spanningTree answers ?method=kruskal|prim&root=City.
func (s *Server) spanningTree(c *gin.Context, sess *session.Session) {
	tree, err := prim_kruskal.Compute(sess.Graph,
		prim_kruskal.WithMethod(c.DefaultQuery("method", prim_kruskal.MethodKruskal)),
		prim_kruskal.WithRoot(c.Query("root")))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, tree)
}

func (s *Server) save(c *gin.Context, sess *session.Session) {
	if s.store == nil {
		s.fail(c, ErrNoStore)
		return
	}
	if err := s.store.Save(c.Request.Context(), sess.Graph); err != nil {
		s.fail(c, err)
		return
	}
	s.log.Info("session saved", zap.String("session", sess.ID), zap.Int("edges", sess.Graph.EdgeCount()))

	c.JSON(http.StatusOK, gin.H{"saved": true, "edges": sess.Graph.EdgeCount()})
}

// export streams the session graph as CSV, or as a compressed snapshot
// with ?format=snapshot.
func (s *Server) export(c *gin.Context, sess *session.Session) {
	codec, name, mime := graphio.CSV, graphio.DefaultOutput, "text/csv; charset=utf-8"
	switch format := c.DefaultQuery("format", graphio.CSV.Name()); format {
	case graphio.CSV.Name():
	case graphio.Snapshot.Name():
		codec, name, mime = graphio.Snapshot, "graph"+graphio.SnapshotExt, "application/octet-stream"
	default:
		s.fail(c, badRequest("unknown format %q", format))
		return
	}

	var buf bytes.Buffer
	if err := codec.Encode(&buf, sess.Graph); err != nil {
		s.fail(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, mime, buf.Bytes())
}
