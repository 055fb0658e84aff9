// Package env handles variable tables and placeholder substitution for ycurl.
//
// It provides functionality for:
//   - Ordered variable tables (declaration order is significant)
//   - Compiling variable definitions that reference earlier definitions
//   - Expanding ${name} placeholders in strings and arbitrary JSON-like records
//   - Loading an extra scope from .env files
package env
