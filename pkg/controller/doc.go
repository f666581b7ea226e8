// Package controller contains the HTTP middlewares and helper handlers shared
// by the API server.
//
// Middlewares:
//   - WithCORS: permissive CORS headers plus OPTIONS preflight handling.
//   - WithLogger: request-scoped logger, request ID propagation and access logs.
//
// Helpers:
//   - GetClientIP: best-effort client address, also used to key scan quotas.
//   - PprofMux: net/http/pprof handlers for mounting under a debug path.
package controller
