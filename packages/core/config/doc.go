// Package config loads and resolves ycurl configuration documents.
//
// A document declares a base URL, default headers, global variables and a
// list of named requests, each optionally carrying its own variables. Loading
// runs these steps, failing on the first error:
//
//   - Strip lines whose first non-blank character is '#'
//   - Validate the structure against the embedded JSON Schema
//   - Compile the global variables in declaration order
//   - Expand the default headers
//   - For each request: compile its local variables on top of the global
//     ones, expand every string in the request, cast typed literals in the body
//   - Reject duplicate request names
//
// Options (the document's "cli_options" merged with command line flags) live
// here as well.
package config
