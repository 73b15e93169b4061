// Package middleware contains HTTP middleware for the catalog's Fiber app.
//
// # Components
//
//   - Auth: API key validation for the catalog API routes; the swagger UI
//     stays public.
//   - RayID: attaches a unique request ID to every incoming request, in the
//     context and the response headers, so a fetch can be correlated across
//     the handler, the repository worker, and the feed client logs.
//
// Both are registered globally in the server setup; auth additionally honors
// an empty configured key by letting every request through.
package middleware
