// Package cli implements the qcc command-line front-end.
//
// Commands are dispatched by subcommand name, with per-command flags parsed
// by the standard flag package:
//
//	qcc config get|set|list
//	qcc ping
//	qcc device list|get
//	qcc job submit|get|list|cancel|watch
//	qcc version
//
// Structured values are printed as indented JSON on stdout. Errors are
// printed on stderr and surface as a non-zero process exit code in main.
// Commands that talk to the cloud build the transport adapter lazily, so
// `qcc config set REFRESH_TOKEN ...` works before any credentials exist.
package cli
