package controllers

import (
	"net/http"

	"github.com/douceurdz/storefront-backend/internal/session"
	"github.com/douceurdz/storefront-backend/pkg/logger"
)

// Page serves the shell for a storefront page. The interesting part of
// the page surface is the guard wrapped around it, not the body.
func Page(name string, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<!doctype html><title>" + name + "</title>"))
	}
}

// PageFallback sends unknown paths to the shop when a session exists
// and to the login page otherwise.
func PageFallback(sessions *session.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sessions != nil {
			if _, ok := sessions.Current(r.Context()); ok {
				http.Redirect(w, r, "/shop", http.StatusSeeOther)
				return
			}
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}
