// Package runner executes one request from a resolved ycurl config.
//
// A run selects the request by index or name, builds the HTTP request,
// writes the history log, sends it and records the outcome in the history
// store when one is configured.
package runner
