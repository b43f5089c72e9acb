// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/petar-djukic/script-info/internal/registry"
	"github.com/petar-djukic/script-info/pkg/types"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatHTML = "html"
)

// FiltersResponse lists the known filter names.
type FiltersResponse struct {
	Filters []string `json:"filters" yaml:"filters"`
}

// MethodsResponse lists the operations of one filter class.
type MethodsResponse struct {
	Filter  string             `json:"filter" yaml:"filter"`
	Methods []types.MethodInfo `json:"methods" yaml:"methods"`
	Total   int                `json:"total" yaml:"total"`
}

// Routes holds the handler dependencies.
type Routes struct {
	service Service
	logger  *zap.Logger
}

func (*Routes) health(w http.ResponseWriter, _ *http.Request) {
	writeJSONResponse(w, map[string]string{"status": "healthy"}, http.StatusOK)
}

func (rt *Routes) listFilters(w http.ResponseWriter, _ *http.Request) {
	writeJSONResponse(w, FiltersResponse{Filters: rt.service.Filters()}, http.StatusOK)
}

func (rt *Routes) listMethods(w http.ResponseWriter, r *http.Request) {
	format, ok := requestFormat(w, r, formatJSON, formatYAML)
	if !ok {
		return
	}

	name := chi.URLParam(r, "name")
	methods, err := rt.service.MethodsAvailable(name)
	if err != nil {
		rt.writeServiceError(w, name, err)
		return
	}

	resp := MethodsResponse{Filter: name, Methods: methods, Total: len(methods)}
	if format == formatYAML {
		writeYAMLResponse(w, resp, http.StatusOK)
		return
	}
	writeJSONResponse(w, resp, http.StatusOK)
}

func (rt *Routes) sourceLink(w http.ResponseWriter, r *http.Request) {
	format, ok := requestFormat(w, r, formatJSON, formatHTML)
	if !ok {
		return
	}

	name := chi.URLParam(r, "name")
	link, err := rt.service.SourceLink(name)
	if err != nil {
		rt.writeServiceError(w, name, err)
		return
	}

	if format == formatHTML {
		writeHTMLResponse(w, link.HTML(), http.StatusOK)
		return
	}
	writeJSONResponse(w, link, http.StatusOK)
}

// requestFormat returns the "format" query value, defaulting to the first
// allowed format. It writes a 400 response for any other value.
func requestFormat(w http.ResponseWriter, r *http.Request, allowed ...string) (string, bool) {
	format := r.URL.Query().Get("format")
	if format == "" {
		return allowed[0], true
	}
	for _, a := range allowed {
		if format == a {
			return format, true
		}
	}
	writeErrorResponse(w, "unsupported format: "+format, http.StatusBadRequest)
	return "", false
}

func (rt *Routes) writeServiceError(w http.ResponseWriter, name string, err error) {
	if errors.Is(err, registry.ErrUnsupportedFilter) {
		rt.logger.Warn("unknown filter requested", zap.String("filter", name))
		writeErrorResponse(w, err.Error(), http.StatusNotFound)
		return
	}
	rt.logger.Error("service call failed", zap.String("filter", name), zap.Error(err))
	writeErrorResponse(w, "internal error", http.StatusInternalServerError)
}
