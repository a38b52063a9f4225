// Package writers turns output rows into files on disk or stdout.
//
// Design:
//   • Files are written to a temporary sibling and renamed on Commit, so a
//     reader never sees a partial output.
//   • Rows are delimited text with a trailing newline; an optional comment
//     line records the invoking command.
//   • Every byte written is checksummed for the run summary.
package writers
