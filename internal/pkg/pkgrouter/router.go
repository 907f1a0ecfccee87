// Package pkgrouter is a thin layer over httprouter: handlers return a
// value or an error, and the router owns JSON encoding, status mapping
// and per-request ids.
package pkgrouter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/ejd6617/skybound/internal/pkg/pkgerror"
	"github.com/ejd6617/skybound/internal/pkg/pkguid"
)

type HandlerFunc func(ctx context.Context, r *http.Request) (any, error)

type Router struct {
	mux *httprouter.Router
	uid pkguid.StringID
}

type ctxKeyRequestID struct{}

func NewRouter(uid pkguid.StringID) *Router {
	mux := httprouter.New()
	mux.HandleMethodNotAllowed = true
	return &Router{mux: mux, uid: uid}
}

func (r *Router) GET(path string, h HandlerFunc) {
	r.mux.GET(path, r.wrap(h))
}

func (r *Router) POST(path string, h HandlerFunc) {
	r.mux.POST(path, r.wrap(h))
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// RequestID returns the id assigned to this request, or "" outside a
// router-managed context.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyRequestID{}).(string)
	return id
}

func (r *Router) wrap(h HandlerFunc) httprouter.Handle {
	return func(w http.ResponseWriter, req *http.Request, _ httprouter.Params) {
		requestID := r.uid.Generate()
		ctx := context.WithValue(req.Context(), ctxKeyRequestID{}, requestID)
		w.Header().Set("X-Request-Id", requestID)

		result, err := h(ctx, req.WithContext(ctx))
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, envelope{Data: result})
	}
}

type envelope struct {
	Data any `json:"data"`
}

type errorBody struct {
	Error string `json:"error"`
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := pkgerror.HTTPStatus(err)

	message := err.Error()
	var business *pkgerror.Business
	if !errors.As(err, &business) {
		slog.ErrorContext(ctx, "handler failed", "request_id", RequestID(ctx), "error", err)
		message = http.StatusText(status)
	}

	writeJSON(ctx, w, status, errorBody{Error: message})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.ErrorContext(ctx, "failed to write response", "request_id", RequestID(ctx), "error", err)
	}
}
