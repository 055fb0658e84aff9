// Package history records what ycurl sent and received.
//
// Two sinks exist. Log is the append-only text file (by default
// $HOME/logs/ycurl.txt) that gets a timestamp header, a request section and a
// response section per invocation. Store is an optional SQLite database with
// one row per executed request, queried by the "history" command.
package history
