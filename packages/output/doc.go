// Package output renders ycurl results and config views.
//
// Supported output formats for a response:
//   - Console: status line, optional headers, pretty body, colored
//   - JSON: one machine-readable object per invocation
//
// The listing helpers (ListRequests, ShowConfig, LegacyCompletion) write
// plain JSON or shell text and highlight it only when color is enabled.
package output
