// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package api

import (
	"net/http"
	"os"
	"strings"

	"github.com/tomtom215/aerocam-hub/internal/config"
	"github.com/tomtom215/aerocam-hub/internal/logging"
)

// Router sets up HTTP routes using the Chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	staticDir     string
}

// NewRouter creates a router for handler. Static files are served from
// cfg.Server.StaticDir when that directory exists.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	router := &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(ChiMiddlewareConfigFrom(cfg)),
	}

	if cfg != nil && cfg.Server.StaticDir != "" {
		if info, err := os.Stat(cfg.Server.StaticDir); err == nil && info.IsDir() {
			router.staticDir = cfg.Server.StaticDir
		} else {
			logging.Warn().Str("static_dir", cfg.Server.StaticDir).Msg("Static directory not found, static files disabled")
		}
	}
	return router
}

// serveStatic serves files from the static directory with cache headers
// based on file type.
func (router *Router) serveStatic() http.Handler {
	fs := http.FileServer(http.Dir(router.staticDir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		switch {
		case strings.HasSuffix(path, ".js") || strings.HasSuffix(path, ".css"):
			w.Header().Set("Cache-Control", "public, max-age=3600")
		case strings.HasSuffix(path, ".png") || strings.HasSuffix(path, ".svg") || strings.HasSuffix(path, ".jpg") || strings.HasSuffix(path, ".webp"):
			w.Header().Set("Cache-Control", "public, max-age=604800")
		case path == "/" || strings.HasSuffix(path, ".html"):
			w.Header().Set("Cache-Control", "public, max-age=300")
		}
		fs.ServeHTTP(w, r)
	})
}
