package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/graphcanvas/pkg/errors"
	"github.com/matzehuels/graphcanvas/pkg/graph"
	"github.com/matzehuels/graphcanvas/pkg/httputil"
	"github.com/matzehuels/graphcanvas/pkg/store"
)

// graphRequest is the body of POST /graphs/create and PUT /graphs/{id}.
type graphRequest struct {
	Name        string     `json:"name" validate:"required,max=128"`
	Description string     `json:"description" validate:"max=2048"`
	GraphData   graph.Data `json:"graphData" validate:"required"`
}

type graphCreated struct {
	Message string        `json:"message"`
	Graph   *store.Record `json:"graph"`
}

func (s *Server) listGraphs(w http.ResponseWriter, r *http.Request) {
	recs, err := s.store.List(r.Context())
	if err != nil {
		httputil.Error(w, err)
		return
	}
	if recs == nil {
		recs = []*store.Record{}
	}
	httputil.JSON(w, http.StatusOK, recs)
}

func (s *Server) getGraph(w http.ResponseWriter, r *http.Request) {
	id, err := graphID(r)
	if err != nil {
		httputil.Error(w, err)
		return
	}
	rec, err := s.store.Get(r.Context(), id)
	if err != nil {
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, rec)
}

func (s *Server) createGraph(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeGraph(w, r)
	if err != nil {
		httputil.Error(w, err)
		return
	}
	rec, err := s.store.Create(r.Context(), &store.Record{
		Name:        req.Name,
		Description: req.Description,
		GraphData:   req.GraphData,
	})
	if err != nil {
		s.logger.Error("create graph", "name", req.Name, "err", err)
		httputil.Error(w, err)
		return
	}
	s.logger.Info("graph created", "id", rec.ID, "vertices", len(rec.GraphData))
	httputil.JSON(w, http.StatusCreated, graphCreated{Message: "Graph created successfully", Graph: rec})
}

func (s *Server) updateGraph(w http.ResponseWriter, r *http.Request) {
	id, err := graphID(r)
	if err != nil {
		httputil.Error(w, err)
		return
	}
	req, err := s.decodeGraph(w, r)
	if err != nil {
		httputil.Error(w, err)
		return
	}
	rec, err := s.store.Update(r.Context(), &store.Record{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		GraphData:   req.GraphData,
	})
	if err != nil {
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, rec)
}

func (s *Server) deleteGraph(w http.ResponseWriter, r *http.Request) {
	id, err := graphID(r)
	if err != nil {
		httputil.Error(w, err)
		return
	}
	if err := s.store.Delete(r.Context(), id); err != nil {
		httputil.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) decodeGraph(w http.ResponseWriter, r *http.Request) (*graphRequest, error) {
	var req graphRequest
	if err := httputil.Decode(w, r, &req); err != nil {
		return nil, err
	}
	if err := s.check(req); err != nil {
		return nil, err
	}
	return &req, nil
}

func graphID(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateID(id); err != nil {
		return "", err
	}
	return id, nil
}
