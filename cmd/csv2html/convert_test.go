package main

// Notes:
// - Seq log shipping (CSV2HTML_SEQ_URL): not exercised, it needs a live server.
// - Output HTML details are covered by the library tests; here we check the
//   CLI wiring: flags, config and environment reach the converter.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/alnah/go-csv2html/internal/config"
)

const feedbackCSV = "Name,Comment\nAlice,Great & <fun>\nBob,\"Two\nlines\"\n"

// countElements counts elements named tag in an HTML document.
func countElements(t *testing.T, doc string, tag string) int {
	t.Helper()
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("html.Parse: %v", err)
	}
	var count int
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			count++
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return count
}

// readOutput returns the content of path or fails the test.
func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	return string(data)
}

// ---------------------------------------------------------------------------
// TestRunConvert_Output - End-to-end conversions through the CLI
// ---------------------------------------------------------------------------

func TestRunConvert_Output(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		csv         string
		args        []string // flags placed before the positionals
		environ     []string
		files       map[string]string // extra files under the temp dir
		wantHTML    []string
		wantNotHTML []string
		wantDL      int
	}{
		{
			name:     "default report",
			csv:      feedbackCSV,
			wantHTML: []string{"<title>Feedback from European Dojo</title>", "<dd><div>Great &amp; &lt;fun&gt;</div></dd>", "<div>Two</div><div>lines</div>", "<hr />"},
			wantDL:   2,
		},
		{
			name:     "title flag is escaped",
			csv:      feedbackCSV,
			args:     []string{"--title", "Q&A"},
			wantHTML: []string{"<title>Q&amp;A</title>"},
			wantDL:   2,
		},
		{
			name:     "semicolon delimiter from env",
			csv:      "Name;Comment\nAlice;fine\n",
			environ:  []string{"CSV2HTML_DELIMITER=;"},
			wantHTML: []string{"<dt>Comment</dt>", "<div>fine</div>"},
			wantDL:   1,
		},
		{
			name:     "short rows are padded",
			csv:      "Name,Comment\nAlice\n",
			wantHTML: []string{"<dt>Comment</dt>\n<dd><div></div></dd>"},
			wantDL:   1,
		},
		{
			name:        "empty input with allow-empty from env",
			csv:         "",
			environ:     []string{"CSV2HTML_ALLOW_EMPTY=true"},
			wantHTML:    []string{"<body>\n"},
			wantNotHTML: []string{"<dl>"},
			wantDL:      0,
		},
		{
			name:     "embedded style",
			csv:      feedbackCSV,
			args:     []string{"--style", "compact"},
			wantDL:   2,
			wantHTML: []string{"<style type=\"text/css\">"},
		},
		{
			name:     "intro file above the report",
			csv:      feedbackCSV,
			args:     []string{"--intro", "INTRO"},
			files:    map[string]string{"intro.md": "Thanks for **coming**."},
			wantHTML: []string{"<strong>coming</strong>"},
			wantDL:   2,
		},
		{
			name:     "config file sets the title",
			csv:      feedbackCSV,
			args:     []string{"--config", "CONFIG"},
			files:    map[string]string{"report.yaml": "document:\n  title: From Config\n"},
			wantHTML: []string{"<title>From Config</title>"},
			wantDL:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			in := writeFile(t, dir, "in.csv", tt.csv)
			out := filepath.Join(dir, "out", "report.html")
			for name, content := range tt.files {
				writeFile(t, dir, name, content)
			}

			args := []string{"csv2html", "convert"}
			for _, a := range tt.args {
				switch a {
				case "INTRO":
					a = filepath.Join(dir, "intro.md")
				case "CONFIG":
					a = filepath.Join(dir, "report.yaml")
				}
				args = append(args, a)
			}
			args = append(args, in, out)

			env, stdout, stderr := testEnv(tt.environ...)
			if code := runMain(args, env); code != ExitSuccess {
				t.Fatalf("runMain() = %d, want %d\nstderr: %s", code, ExitSuccess, stderr.String())
			}
			if !strings.Contains(stdout.String(), "Created "+out) {
				t.Errorf("stdout = %q, want Created line", stdout.String())
			}

			doc := readOutput(t, out)
			for _, want := range tt.wantHTML {
				if !strings.Contains(doc, want) {
					t.Errorf("output should contain %q\ngot: %s", want, doc)
				}
			}
			for _, notWant := range tt.wantNotHTML {
				if strings.Contains(doc, notWant) {
					t.Errorf("output should not contain %q", notWant)
				}
			}
			if got := countElements(t, doc, "dl"); got != tt.wantDL {
				t.Errorf("dl elements = %d, want %d", got, tt.wantDL)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunConvert_LastTwoArguments - Extra leading positionals are ignored
// ---------------------------------------------------------------------------

func TestRunConvert_LastTwoArguments(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeFile(t, dir, "in.csv", feedbackCSV)
	out := filepath.Join(dir, "out.html")

	env, _, stderr := testEnv()
	code := runMain([]string{"csv2html", "ignored", "also-ignored", in, out}, env)
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, want %d\nstderr: %s", code, ExitSuccess, stderr.String())
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output not written: %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestRunConvert_OutputControl - Quiet and verbose modes
// ---------------------------------------------------------------------------

func TestRunConvert_OutputControl(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		flag           string
		wantStdout     []string
		wantEmptyOut   bool
		wantStderrPart string
	}{
		{name: "default", wantStdout: []string{"Created "}},
		{name: "quiet", flag: "-q", wantEmptyOut: true},
		{name: "verbose", flag: "-v", wantStdout: []string{"Created ", "1 rows, 2 columns, 1 adjusted"}, wantStderrPart: "level=DEBUG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			in := writeFile(t, dir, "in.csv", "Name,Comment\nAlice\n")
			out := filepath.Join(dir, "out.html")

			args := []string{"csv2html"}
			if tt.flag != "" {
				args = append(args, tt.flag)
			}
			args = append(args, in, out)

			env, stdout, stderr := testEnv()
			if code := runMain(args, env); code != ExitSuccess {
				t.Fatalf("runMain() = %d\nstderr: %s", code, stderr.String())
			}
			if tt.wantEmptyOut && stdout.Len() != 0 {
				t.Errorf("stdout = %q, want empty", stdout.String())
			}
			for _, want := range tt.wantStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout = %q, want it to contain %q", stdout.String(), want)
				}
			}
			if tt.wantStderrPart != "" && !strings.Contains(stderr.String(), tt.wantStderrPart) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.wantStderrPart)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunConvert_Hints - Failures carry actionable hints
// ---------------------------------------------------------------------------

func TestRunConvert_Hints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		csv      string
		existing bool // output file exists before the run
		args     []string
		wantCode int
		wantHint string
	}{
		{
			name:     "empty table",
			csv:      "",
			wantCode: ExitData,
			wantHint: "--allow-empty",
		},
		{
			name:     "ragged row",
			csv:      "Name,Comment\nAlice,a,b\n",
			args:     []string{"--row-policy", "strict"},
			wantCode: ExitData,
			wantHint: "--row-policy pad",
		},
		{
			name:     "bare quote",
			csv:      "Name\nA\"lice\n",
			wantCode: ExitData,
			wantHint: "--lazy-quotes",
		},
		{
			name:     "existing output with no-overwrite",
			csv:      feedbackCSV,
			existing: true,
			args:     []string{"--no-overwrite"},
			wantCode: ExitIO,
			wantHint: "output.overwrite",
		},
		{
			name:     "unknown style lists available styles",
			csv:      feedbackCSV,
			args:     []string{"--style", "neon"},
			wantCode: ExitUsage,
			wantHint: "available: compact, default, print",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			in := writeFile(t, dir, "in.csv", tt.csv)
			out := filepath.Join(dir, "out.html")
			if tt.existing {
				writeFile(t, dir, "out.html", "keep me")
			}

			args := append([]string{"csv2html"}, tt.args...)
			args = append(args, in, out)

			env, _, stderr := testEnv()
			code := runMain(args, env)
			if code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d\nstderr: %s", code, tt.wantCode, stderr.String())
			}
			if !strings.Contains(stderr.String(), "hint: ") || !strings.Contains(stderr.String(), tt.wantHint) {
				t.Errorf("stderr = %q, want hint mentioning %q", stderr.String(), tt.wantHint)
			}
			if tt.existing && readOutput(t, out) != "keep me" {
				t.Error("existing output was replaced")
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunConvert_MissingInputHint - Missing input file
// ---------------------------------------------------------------------------

func TestRunConvert_MissingInputHint(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	env, _, stderr := testEnv()
	code := runMain([]string{"csv2html", filepath.Join(dir, "nope.csv"), filepath.Join(dir, "out.html")}, env)

	if code != ExitIO {
		t.Errorf("runMain() = %d, want %d", code, ExitIO)
	}
	if !strings.Contains(stderr.String(), "<input.csv> <output.html>") {
		t.Errorf("stderr = %q, want argument order hint", stderr.String())
	}
}

// ---------------------------------------------------------------------------
// TestRunConvert_EnvWarnings - Unknown variables and bad values
// ---------------------------------------------------------------------------

func TestRunConvert_EnvWarnings(t *testing.T) {
	t.Parallel()

	t.Run("typo warns but converts", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := writeFile(t, dir, "in.csv", feedbackCSV)
		env, _, stderr := testEnv("CSV2HTML_TITEL=x")
		code := runMain([]string{"csv2html", in, filepath.Join(dir, "out.html")}, env)

		if code != ExitSuccess {
			t.Fatalf("runMain() = %d\nstderr: %s", code, stderr.String())
		}
		if !strings.Contains(stderr.String(), "CSV2HTML_TITEL") {
			t.Errorf("stderr = %q, want a typo warning", stderr.String())
		}
	})

	t.Run("invalid log level", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv("CSV2HTML_LOG_LEVEL=loud")
		code := runMain([]string{"csv2html", "a.csv", "b.html"}, env)
		if code != ExitUsage {
			t.Errorf("runMain() = %d, want %d", code, ExitUsage)
		}
	})
}

// ---------------------------------------------------------------------------
// TestResolveIntro - Intro source selection
// ---------------------------------------------------------------------------

func TestResolveIntro(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	introPath := writeFile(t, dir, "intro.md", "# Hello")
	bigPath := writeFile(t, dir, "big.md", strings.Repeat("x", config.MaxIntroLength+1))

	cfg := &config.Config{}
	cfg.Document.Intro = "from config"

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr error
	}{
		{name: "config intro when no file", want: "from config"},
		{name: "file wins", path: introPath, want: "# Hello"},
		{name: "missing file", path: filepath.Join(dir, "nope.md"), wantErr: ErrIntroFile},
		{name: "oversized file", path: bigPath, wantErr: config.ErrFieldTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveIntro(tt.path, cfg)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("resolveIntro() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveIntro() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveIntro() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunStyles - Style listing with a custom asset directory
// ---------------------------------------------------------------------------

func TestRunStyles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, filepath.Join("styles", "brand.css"), "dl { margin: 0; }\n")

	t.Run("flag", func(t *testing.T) {
		t.Parallel()

		env, stdout, stderr := testEnv()
		if code := runMain([]string{"csv2html", "styles", "--asset-path", dir}, env); code != ExitSuccess {
			t.Fatalf("runMain() = %d\nstderr: %s", code, stderr.String())
		}
		if got, want := stdout.String(), "brand\ncompact\ndefault\nprint\n"; got != want {
			t.Errorf("styles = %q, want %q", got, want)
		}
	})

	t.Run("env", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv("CSV2HTML_ASSET_PATH=" + dir)
		if code := runMain([]string{"csv2html", "styles"}, env); code != ExitSuccess {
			t.Fatalf("runMain() = %d", code)
		}
		if !strings.Contains(stdout.String(), "brand\n") {
			t.Errorf("styles = %q, want brand listed", stdout.String())
		}
	})

	t.Run("invalid asset path", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv()
		code := runMain([]string{"csv2html", "styles", "--asset-path", filepath.Join(dir, "missing")}, env)
		if code != ExitUsage {
			t.Errorf("runMain() = %d, want %d", code, ExitUsage)
		}
	})
}
