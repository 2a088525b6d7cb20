package demo

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/crumbs/core/cookie"
	"github.com/dmitrymomot/crumbs/core/logger"
	"github.com/dmitrymomot/crumbs/middleware"
)

const visitorCookie = "visitor"

type handlers struct {
	log *slog.Logger
}

type visitResp struct {
	Visitor string `json:"visitor"`
	New     bool   `json:"new"`
}

type configResp struct {
	Domain string `json:"domain"`
	Path   string `json:"path"`
	Prefix string `json:"prefix"`
	Secure bool   `json:"secure"`
}

func (h *handlers) manager(w http.ResponseWriter, r *http.Request) (*cookie.Manager, bool) {
	m, ok := middleware.GetCookieManager(r.Context())
	if !ok {
		h.log.ErrorContext(r.Context(), "cookie manager missing from context", logger.Path(r.URL.Path))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
	return m, ok
}

func (h *handlers) handleGet(w http.ResponseWriter, r *http.Request) {
	m, ok := h.manager(w, r)
	if !ok {
		return
	}

	v, err := m.Get(chi.URLParam(r, "name"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, v)
}

func (h *handlers) handleSet(w http.ResponseWriter, r *http.Request) {
	m, ok := h.manager(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	expire := cookie.Permanent
	if _, present := r.PostForm["expire"]; present {
		e, err := cookie.ParseExpire(r.PostForm.Get("expire"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		expire = e
	}

	httpOnly := false
	if raw := r.PostForm.Get("http_only"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			http.Error(w, "invalid http_only", http.StatusBadRequest)
			return
		}
		httpOnly = b
	}

	err := m.Set(chi.URLParam(r, "name"), r.PostForm.Get("value"), expire, httpOnly)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, cookie.ErrInvalidExpire):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, cookie.ErrHeadersSent):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *handlers) handleClear(w http.ResponseWriter, r *http.Request) {
	m, ok := h.manager(w, r)
	if !ok {
		return
	}

	if err := m.Clear(chi.URLParam(r, "name")); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) handleVisit(w http.ResponseWriter, r *http.Request) {
	m, ok := h.manager(w, r)
	if !ok {
		return
	}

	resp := visitResp{Visitor: m.Value(visitorCookie)}
	if resp.Visitor == "" {
		resp.Visitor = uuid.NewString()
		resp.New = true
		if err := m.Set(visitorCookie, resp.Visitor, cookie.Permanent, true); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		h.log.InfoContext(r.Context(), "new visitor", slog.String("visitor", resp.Visitor))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) handleConfig(w http.ResponseWriter, r *http.Request) {
	m, ok := h.manager(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, configResp{
		Domain: m.Domain(),
		Path:   m.Path(),
		Prefix: m.Prefix(),
		Secure: m.Secure(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
