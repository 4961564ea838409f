// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - auth: API key validation (X-API-Key header or api_key query parameter).
//   - rayid: a unique request id (RayID) per request, stored in the fiber
//     locals and echoed in the X-Ray-ID response header for tracing.
//
// RayID must be registered first so every log line, including auth
// rejections, carries the id.
package middleware
