// Package tracing is a thin wrapper around OpenTelemetry so the simulation
// can annotate each think/hungry/eat phase with spans without the rest of
// the code-base depending on the upstream API.  Spans are no-ops until Init
// installs an exporter.
package tracing
