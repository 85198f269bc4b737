package main

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	cameras "vigil/gen/cameras"
	health "vigil/gen/health"
	camerassvr "vigil/gen/http/cameras/server"
	healthsvr "vigil/gen/http/health/server"
	incidentssvr "vigil/gen/http/incidents/server"
	systemsvr "vigil/gen/http/system/server"
	incidents "vigil/gen/incidents"
	system "vigil/gen/system"
	"vigil/internal/auth"
	vigilmdlwr "vigil/internal/middleware"
	"vigil/internal/snapshot"
	"vigil/internal/stream"
	"vigil/internal/ws"

	goahttp "goa.design/goa/v3/http"
	httpmdlwr "goa.design/goa/v3/http/middleware"
	"goa.design/goa/v3/middleware"
)

// extraHandlers carries the endpoints that live outside the generated
// transport: websocket push, MJPEG live view, snapshot serving and login.
type extraHandlers struct {
	wsHandler     *ws.Handler
	streamHub     *stream.Hub
	snapshots     *snapshot.Store
	authenticator *auth.Authenticator
}

// handleHTTPServer starts configures and starts a HTTP server on the given
// URL. It shuts down the server if any error is received in the error channel.
func handleHTTPServer(ctx context.Context, u *url.URL, healthEndpoints *health.Endpoints, camerasEndpoints *cameras.Endpoints, incidentsEndpoints *incidents.Endpoints, systemEndpoints *system.Endpoints, extras *extraHandlers, wg *sync.WaitGroup, errc chan error, logger *log.Logger, debug bool) {

	// Setup goa log adapter.
	var (
		adapter middleware.Logger
	)
	{
		adapter = middleware.NewLogger(logger)
	}

	// Provide the transport specific request decoder and response encoder.
	// The goa http package has built-in support for JSON, XML and gob.
	// Other encodings can be used by providing the corresponding functions,
	// see goa.design/implement/encoding.
	var (
		dec = goahttp.RequestDecoder
		enc = goahttp.ResponseEncoder
	)

	// Build the service HTTP request multiplexer and configure it to serve
	// HTTP requests to the service endpoints.
	var mux goahttp.Muxer
	{
		mux = goahttp.NewMuxer()
	}

	// Wrap the endpoints with the transport specific layers. The generated
	// server packages contains code generated from the design which maps
	// the service input and output data structures to HTTP requests and
	// responses.
	var (
		healthServer    *healthsvr.Server
		camerasServer   *camerassvr.Server
		incidentsServer *incidentssvr.Server
		systemServer    *systemsvr.Server
	)
	{
		eh := errorHandler(logger)
		healthServer = healthsvr.New(healthEndpoints, mux, dec, enc, eh, nil)
		camerasServer = camerassvr.New(camerasEndpoints, mux, dec, enc, eh, nil)
		incidentsServer = incidentssvr.New(incidentsEndpoints, mux, dec, enc, eh, nil)
		systemServer = systemsvr.New(systemEndpoints, mux, dec, enc, eh, nil)
		if debug {
			servers := goahttp.Servers{healthServer, camerasServer, incidentsServer, systemServer}
			servers.Use(httpmdlwr.Debug(mux, os.Stdout))
		}
	}
	// Configure the mux.
	healthsvr.Mount(mux, healthServer)
	camerassvr.Mount(mux, camerasServer)
	incidentssvr.Mount(mux, incidentsServer)
	systemsvr.Mount(mux, systemServer)

	// Endpoints outside the generated transport share the same muxer.
	mux.Handle("GET", "/ws/events", extras.wsHandler.ServeHTTP)
	mux.Handle("GET", "/ws/events/{camera_id}", extras.wsHandler.ServeHTTP)
	mux.Handle("GET", "/video/stream/{camera_id}", extras.streamHub.ServeStream)
	mux.Handle("GET", "/video/snapshot/{camera_id}", extras.streamHub.ServeSnapshot)
	if extras.snapshots != nil {
		mux.Handle("GET", "/api/v1/snapshots/{*ref}", extras.snapshots.ServeHTTP)
	}
	login := vigilmdlwr.LoginHandler(extras.authenticator)
	mux.Handle("POST", "/api/v1/auth/login", login.ServeHTTP)

	// Wrap the multiplexer with additional middlewares. Middlewares mounted
	// here apply to all the service endpoints.
	var handler http.Handler = mux
	{
		handler = apiAuth(extras.authenticator)(handler)
		handler = httpmdlwr.Log(adapter)(handler)
		handler = httpmdlwr.RequestID()(handler)
	}

	// Start HTTP server using default configuration, change the code to
	// configure the server as required by your service.
	srv := &http.Server{Addr: u.Host, Handler: handler, ReadHeaderTimeout: time.Second * 60}
	for _, m := range healthServer.Mounts {
		logger.Printf("HTTP %q mounted on %s %s", m.Method, m.Verb, m.Pattern)
	}
	for _, m := range camerasServer.Mounts {
		logger.Printf("HTTP %q mounted on %s %s", m.Method, m.Verb, m.Pattern)
	}
	for _, m := range incidentsServer.Mounts {
		logger.Printf("HTTP %q mounted on %s %s", m.Method, m.Verb, m.Pattern)
	}
	for _, m := range systemServer.Mounts {
		logger.Printf("HTTP %q mounted on %s %s", m.Method, m.Verb, m.Pattern)
	}

	(*wg).Add(1)
	go func() {
		defer (*wg).Done()

		// Start HTTP server in a separate goroutine.
		go func() {
			logger.Printf("HTTP server listening on %q", u.Host)
			errc <- srv.ListenAndServe()
		}()

		<-ctx.Done()
		logger.Printf("shutting down HTTP server at %q", u.Host)

		// Shutdown gracefully with a 30s timeout.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			logger.Printf("failed to shutdown: %v", err)
		}
	}()
}

// apiAuth protects /api/v1 routes with the JWT authenticator. The login
// endpoint stays open, as does everything outside /api/v1 (health probes,
// websocket upgrades, live streams).
func apiAuth(authenticator *auth.Authenticator) func(http.Handler) http.Handler {
	guard := vigilmdlwr.AuthMiddleware(authenticator)
	return func(next http.Handler) http.Handler {
		guarded := guard(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, "/api/v1/") || r.URL.Path == "/api/v1/auth/login" {
				next.ServeHTTP(w, r)
				return
			}
			guarded.ServeHTTP(w, r)
		})
	}
}

// errorHandler returns a function that writes and logs the given error.
// The function also writes and logs the error unique ID so that it's possible
// to correlate.
func errorHandler(logger *log.Logger) func(context.Context, http.ResponseWriter, error) {
	return func(ctx context.Context, w http.ResponseWriter, err error) {
		id := ctx.Value(middleware.RequestIDKey).(string)
		_, _ = w.Write([]byte("[" + id + "] encoding: " + err.Error()))
		logger.Printf("[%s] ERROR: %s", id, err.Error())
	}
}
