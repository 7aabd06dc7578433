package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: csv2html [command] [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert      Convert a CSV feedback export to an HTML report (default)")
	fmt.Fprintln(w, "  config       Print the effective configuration as YAML")
	fmt.Fprintln(w, "  styles       List available styles")
	fmt.Fprintln(w, "  version      Show version information")
	fmt.Fprintln(w, "  help         Show help for a command")
	fmt.Fprintln(w, "  completion   Generate shell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'csv2html help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: csv2html [convert] [flags] <input.csv> <output.html>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a CSV file to an HTML report: one definition list per row,")
	fmt.Fprintln(w, "pairing each header with the row's cell, rows separated by <hr />.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input     CSV file; the first row holds the headers (second-to-last argument)")
	fmt.Fprintln(w, "  output    HTML file to write (last argument)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>           Document title (default \"Feedback from European Dojo\")")
	fmt.Fprintln(w, "      --intro <path>        Markdown file rendered above the report")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "CSV:")
	fmt.Fprintln(w, "  -d, --delimiter <c>       Field delimiter (default \",\")")
	fmt.Fprintln(w, "      --lazy-quotes         Accept stray quotes in fields")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rows:")
	fmt.Fprintln(w, "      --row-policy <s>      Mismatched row widths: pad (default), strict")
	fmt.Fprintln(w, "      --allow-empty         Render an empty report for empty input")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <name|path>   Style name or CSS file path")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory of custom styles (styles/NAME.css)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "      --no-overwrite        Refuse to replace an existing output file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs and conversion details")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  CSV2HTML_CONFIG, CSV2HTML_TITLE, CSV2HTML_STYLE, CSV2HTML_ASSET_PATH,")
	fmt.Fprintln(w, "  CSV2HTML_DELIMITER, CSV2HTML_ROW_POLICY, CSV2HTML_ALLOW_EMPTY,")
	fmt.Fprintln(w, "  CSV2HTML_LOG_LEVEL, CSV2HTML_SEQ_URL")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: csv2html config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration convert would use, after merging the config")
	fmt.Fprintln(w, "file, CSV2HTML_* variables and flags. Accepts every convert flag.")
}

// printStylesUsage prints usage for the styles command.
func printStylesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: csv2html styles [--asset-path <dir>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List the style names --style accepts.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "styles":
		printStylesUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: csv2html version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: csv2html help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	case "completion":
		printCompletionUsage(env.Stdout)
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return nil
}
