// Package commands defines the projector CLI.
//
// Commands
//
//   - project   Project savings locally and print the year-by-year table
//   - remote    Same as project, computed by a projector gRPC server
//
// Both commands share the input flags. An unparsable amount keeps its default
// value and prints a warning, so a typo never aborts the run.
package commands
