// Package pipeline implements the CSV-rows-to-HTML rendering pipeline.
//
// The stages are pure functions over their inputs:
//   - SplitAt separates the header row from the commentary rows
//   - AlignRow applies the row policy when a row's width differs from the headers
//   - EscapeHTML and ProcessText escape free-form cell text
//   - RenderRow renders one row as a <dl> definition list
//   - RenderReport joins rendered rows with <hr /> separators
//   - Shell.Assemble wraps the body in the fixed HTML5 document shell
//
// An optional Markdown intro is rendered by GoldmarkIntro. Reading the CSV
// and writing the result are handled by the callers (internal/table and
// internal/fileutil); nothing in this package touches the filesystem.
package pipeline
