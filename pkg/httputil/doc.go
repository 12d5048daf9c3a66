// Package httputil provides JSON request and response helpers for the
// graphcanvas HTTP API.
//
// # Responses
//
// [JSON] writes a value with a status code. [Error] maps a structured error
// from pkg/errors onto an HTTP status with [StatusFor] and writes a body of
// the form:
//
//	{"error": "GRAPH_NOT_FOUND", "message": "graph \"abc\" not found"}
//
// # Requests
//
// [Decode] reads a size-limited JSON body into a request struct and reports
// malformed input as INVALID_INPUT, so handlers can pass the result straight
// to [Error].
package httputil
