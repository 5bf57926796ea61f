// Package orchestrator coordinates the notice pipeline: resolve a statutory
// form definition, validate and render its field set to HTML, convert the
// output to office-document fixtures, and verify the artifacts on disk.
package orchestrator
