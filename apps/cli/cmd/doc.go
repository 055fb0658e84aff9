// Package cmd implements the ycurl CLI commands using Cobra.
//
// The root command sends one request, picked by index or name, from the
// config file given by --file. Without an argument it lists the requests.
//
// Available subcommands:
//   - list: Print the enabled requests as JSON lines
//   - show: Print the resolved config
//   - validate: Load and resolve the config without sending anything
//   - history: Show requests recorded with --history-db
//   - completion: Generate shell completion scripts
//   - version: Show ycurl version information
package cmd
