// Package http sends resolved ycurl requests.
//
// It wraps the standard library's http package with:
//   - Configurable timeouts
//   - Redirect handling (on, off, or capped)
//   - Request building from a resolved config entry
//   - Response capture with timing
package http
