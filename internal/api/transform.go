package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/graphcanvas/pkg/graph"
	"github.com/matzehuels/graphcanvas/pkg/httputil"
	"github.com/matzehuels/graphcanvas/pkg/ops"
)

type transformList struct {
	Available []string `json:"available"`
}

// transformRequest is the body of POST /transform/{set}. GraphData is
// ignored for the "class" set.
type transformRequest struct {
	GraphData     graph.Data `json:"graphData"`
	TransformName string     `json:"transformName" validate:"required,max=64"`
	Params        ops.Args   `json:"params" validate:"max=16"`
}

func (s *Server) listTransforms(w http.ResponseWriter, r *http.Request) {
	reg, err := ops.SetByName(chi.URLParam(r, "set"))
	if err != nil {
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, transformList{Available: reg.Names()})
}

func (s *Server) runTransform(w http.ResponseWriter, r *http.Request) {
	set := chi.URLParam(r, "set")
	if _, err := ops.SetByName(set); err != nil {
		httputil.Error(w, err)
		return
	}

	var req transformRequest
	if err := httputil.Decode(w, r, &req); err != nil {
		httputil.Error(w, err)
		return
	}
	if err := s.check(req); err != nil {
		httputil.Error(w, err)
		return
	}

	res, err := s.runner.InvokeWithCacheInfo(r.Context(), set, req.TransformName, req.Params, req.GraphData)
	if err != nil {
		s.logger.Debug("transform failed", "set", set, "op", req.TransformName, "err", err)
		httputil.Error(w, err)
		return
	}
	if res.CacheHit {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
	httputil.JSON(w, http.StatusOK, res.Data)
}
