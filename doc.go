// Package csv2html converts CSV feedback exports into a single HTML report
// in which every commentary row becomes a definition list.
//
// # Quick Start
//
// Create a converter and convert CSV bytes:
//
//	conv, err := csv2html.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, csv2html.Input{
//	    CSV: []byte("Name,Comment\nAda,Loved it\n"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("feedback.html", result.HTML, 0644)
//
// Or convert a file in one call, with an atomic write:
//
//	result, err := conv.ConvertFile(ctx, "feedback.csv", "feedback.html")
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. CSV parsing (encoding/csv, byte order mark aware)
//  2. Header split: the first record holds the column labels
//  3. Row alignment against the header width (pad or strict policy)
//  4. Rendering: one <dl> per row, rows separated by <hr />
//  5. Optional Markdown intro via Goldmark, placed above the rows
//  6. Assembly into a fixed HTML5 shell with an inline stylesheet
//
// Cell text is HTML-escaped and each line of a multi-line cell becomes its
// own <div>. Header cells are emitted as they appear in the input.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := csv2html.NewConverter(
//	    csv2html.WithTitle("Spring retro"),
//	    csv2html.WithStyle("print"),
//	    csv2html.WithRowPolicy(csv2html.RowPolicyStrict),
//	    csv2html.WithDelimiter(';'),
//	)
//
// # Custom Styles
//
// Override or add styles with a directory of stylesheets:
//
//	loader, err := csv2html.NewStyleLoader("/path/to/assets")
//	conv, err := csv2html.NewConverter(csv2html.WithStyleLoader(loader))
//
// Asset directory structure:
//
//	assets/
//	└── styles/
//	    └── custom.css
package csv2html
