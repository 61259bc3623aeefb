// Package mux serves parsed listings over HTTP using gorilla/mux.
package mux

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/homes"
	"github.com/fwojciec/homes/crawl"
	"github.com/gorilla/mux"
)

// ShutdownTimeout is the time given for outstanding requests to finish.
const ShutdownTimeout = 5 * time.Second

// ListingParser parses a single listing page.
type ListingParser interface {
	ParseURL(ctx context.Context, url string) (*crawl.Result, error)
}

// Server is the HTTP API for parsing and browsing listings.
type Server struct {
	router *mux.Router

	Parser   ListingParser
	Listings homes.ListingService
	Logger   *slog.Logger
}

// NewServer returns a server with its routes registered.
func NewServer(parser ListingParser, listings homes.ListingService, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		router:   mux.NewRouter(),
		Parser:   parser,
		Listings: listings,
		Logger:   logger,
	}

	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/listings", s.handleListListings).Methods(http.MethodGet)
	s.router.HandleFunc("/listings", s.handleCreateListing).Methods(http.MethodPost)
	s.router.HandleFunc("/listings/{id}", s.handleGetListing).Methods(http.MethodGet)
	s.router.HandleFunc("/listings/{id}", s.handleDeleteListing).Methods(http.MethodDelete)
	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Error(w, r, homes.Errorf(homes.ENOTFOUND, "route not found"))
	})

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Info("server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// listingResponse is a flat listing with its storage metadata.
type listingResponse struct {
	ID        string     `json:"id,omitempty"`
	FetchedAt *time.Time `json:"fetchedAt,omitempty"`
	Warning   string     `json:"warning,omitempty"`
	homes.FlatListing
}

func newListingResponse(saved *homes.SavedListing) listingResponse {
	fetchedAt := saved.FetchedAt
	return listingResponse{
		ID:          saved.ID,
		FetchedAt:   &fetchedAt,
		FlatListing: homes.Project(saved.Listing),
	}
}

type createListingRequest struct {
	URL string `json:"url"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListListings(w http.ResponseWriter, r *http.Request) {
	if s.Listings == nil {
		s.Error(w, r, homes.Errorf(homes.ENOTFOUND, "listing storage is not configured"))
		return
	}

	filter, err := parseFilter(r)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	saved, err := s.Listings.FindListings(r.Context(), filter)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	out := make([]listingResponse, 0, len(saved))
	for _, l := range saved {
		out = append(out, newListingResponse(l))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetListing(w http.ResponseWriter, r *http.Request) {
	if s.Listings == nil {
		s.Error(w, r, homes.Errorf(homes.ENOTFOUND, "listing storage is not configured"))
		return
	}

	saved, err := s.Listings.FindListingByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.Error(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, newListingResponse(saved))
}

func (s *Server) handleDeleteListing(w http.ResponseWriter, r *http.Request) {
	if s.Listings == nil {
		s.Error(w, r, homes.Errorf(homes.ENOTFOUND, "listing storage is not configured"))
		return
	}

	if err := s.Listings.DeleteListing(r.Context(), mux.Vars(r)["id"]); err != nil {
		s.Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCreateListing(w http.ResponseWriter, r *http.Request) {
	var req createListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.Error(w, r, homes.Errorf(homes.EINVALID, "invalid JSON body"))
		return
	}

	result, err := s.Parser.ParseURL(r.Context(), req.URL)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	if result.Skipped {
		s.writeJSON(w, http.StatusConflict, &errorResponse{Error: "listing already parsed"})
		return
	}

	status := http.StatusOK
	resp := listingResponse{FlatListing: homes.Project(result.Listing)}
	if result.Saved != nil {
		status = http.StatusCreated
		resp = newListingResponse(result.Saved)
	}
	if result.NoListingBlock {
		resp.Warning = "page has no listing block"
	}
	s.writeJSON(w, status, resp)
}

func parseFilter(r *http.Request) (homes.ListingFilter, error) {
	var filter homes.ListingFilter
	q := r.URL.Query()

	if v := q.Get("url"); v != "" {
		filter.URL = &v
	}

	var err error
	if filter.Offset, err = parseNonNegative(q.Get("offset"), "offset"); err != nil {
		return filter, err
	}
	if filter.Limit, err = parseNonNegative(q.Get("limit"), "limit"); err != nil {
		return filter, err
	}
	return filter, nil
}

func parseNonNegative(v, name string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, homes.Errorf(homes.EINVALID, "%s must be a non-negative integer", name)
	}
	return n, nil
}

// Error writes err as a JSON error response. Internal errors are logged
// and their details hidden from the client.
func (s *Server) Error(w http.ResponseWriter, r *http.Request, err error) {
	code, message := homes.ErrorCode(err), homes.ErrorMessage(err)
	if code == homes.EINTERNAL {
		s.Logger.Error("http error", "method", r.Method, "path", r.URL.Path, "err", err)
	}
	s.writeJSON(w, ErrorStatusCode(code), &errorResponse{Error: message})
}

// ErrorStatusCode maps an application error code to an HTTP status code.
func ErrorStatusCode(code string) int {
	switch code {
	case homes.EINVALID:
		return http.StatusBadRequest
	case homes.ENOTFOUND:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("encode response", "err", err)
	}
}
