// Package clientip resolves the address of the client behind an HTTP
// request and carries it in the request context for logging.
//
// Behind a reverse proxy, name the headers the proxy sets:
//
//	r.Use(clientip.Middleware("X-Forwarded-For", "X-Real-IP"))
//
// With no headers only RemoteAddr is used.
package clientip
