/*
Package observability provides lifecycle hooks for monitoring the dfasim engine.

It includes Prometheus metrics for evaluations, structured debug logging of each
evaluation and a way to combine several hook sets into one.
*/
package observability
