package main

import (
	"net/http"
	"strings"

	"showbill/internal/app/artists"
	"showbill/internal/app/availability"
	"showbill/internal/app/directory"
	"showbill/internal/app/shows"
	"showbill/internal/app/venues"
	"showbill/internal/httpapi"
	"showbill/internal/middleware"
	"showbill/internal/store"
)

func newHTTPHandler(cfg Config, dataStore *store.Store) http.Handler {
	venueSvc := venues.New(dataStore)
	artistSvc := artists.New(dataStore)
	showSvc := shows.New(dataStore)
	availabilitySvc := availability.New(dataStore)
	directorySvc := directory.New(dataStore)

	routes := httpapi.New(venueSvc, artistSvc, showSvc, availabilitySvc, directorySvc).Routes()

	handler := withCORS(cfg.AllowedOrigins, routes)
	handler = middleware.RequestLogging(handler)
	return middleware.Recovery(handler)
}

func withCORS(allowedOrigins []string, next http.Handler) http.Handler {
	originAllowed := func(origin string) bool {
		if len(allowedOrigins) == 0 || origin == "" {
			return false
		}
		for _, o := range allowedOrigins {
			if strings.EqualFold(o, origin) {
				return true
			}
		}
		return false
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type")
			w.Header().Set("Access-Control-Max-Age", "3600")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
