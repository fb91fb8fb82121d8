// Package http exposes a compiled automaton as a small JSON API:
//
//	POST /evaluate    {"input":"101"} or {"symbols":["1","0","1"]}
//	GET  /definition  the validated definition
//	GET  /graph       Mermaid diagram, ?input= highlights a run
//	GET  /health
//	GET  /info
//	GET  /metrics     Prometheus, when WithMetrics is used
package http
