// Package http implements the REST transport of the food ordering service.
//
// It wires chi routes to the service layer and provides the middleware
// chain: CORS, trace ids, access logging, Prometheus metrics, panic recovery,
// gzip compression and optional JWT authentication. Service errors are
// translated to status codes in one place, see writeError.
package http
