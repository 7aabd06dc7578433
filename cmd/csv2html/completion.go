package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	FilePattern string // glob for file arguments, empty if none
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"row-policy": {Values: []string{"pad", "strict"}},
	"delimiter":  {Values: []string{",", ";"}},

	"config": {FileGlob: "*.yaml,*.yml"},
	"style":  {FileGlob: "*.css"},
	"intro":  {FileGlob: "*.md,*.markdown"},

	"asset-path": {IsDir: true},
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}
		if f.Value.Type() == "bool" {
			fd.Type = flagBool
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case len(meta.Values) > 0:
				fd.Type = flagEnum
				fd.Values = meta.Values
			case meta.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSet.
func getCommands() []commandDef {
	convertFlags := extractFlagsFromFlagSet(newConvertFlagSet(&convertFlags{}))

	return []commandDef{
		{Name: "convert", Desc: "Convert a CSV file to an HTML report", Flags: convertFlags, FilePattern: "*.csv,*.html"},
		{Name: "config", Desc: "Print the effective configuration", Flags: convertFlags},
		{Name: "styles", Desc: "List available styles", Flags: []flagDef{{Long: "asset-path", Type: flagDir, Desc: "directory of custom styles"}}},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command"},
		{Name: "completion", Desc: "Generate shell completion script"},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	var script string
	switch shell {
	case ShellBash:
		script = bashScript(getCommands())
	case ShellZsh:
		script = zshScript(getCommands())
	case ShellFish:
		script = fishScript(getCommands())
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
	_, err := io.WriteString(w, script)
	return err
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: csv2html completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(csv2html completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(csv2html completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    csv2html completion fish > ~/.config/fish/completions/csv2html.fish")
}

// commandNames returns the command names separated by spaces.
func commandNames(cmds []commandDef) string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return strings.Join(names, " ")
}

// globExtensions turns "*.yaml,*.yml" into ["yaml", "yml"].
func globExtensions(glob string) []string {
	var exts []string
	for _, g := range strings.Split(glob, ",") {
		exts = append(exts, strings.TrimPrefix(strings.TrimSpace(g), "*."))
	}
	return exts
}

// bashScript renders a bash completion function.
func bashScript(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString("# bash completion for csv2html\n")
	b.WriteString("_csv2html_completions() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")
	fmt.Fprintf(&b, "    if [[ ${COMP_CWORD} -eq 1 && ${cur} != -* ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\") $(compgen -f -X '!*.csv' -- \"${cur}\"))\n", commandNames(cmds))
	b.WriteString("        return 0\n    fi\n\n")

	// Value completion for the previous flag. Convert flags are the superset.
	b.WriteString("    case \"${prev}\" in\n")
	for _, f := range cmds[0].Flags {
		pattern := "--" + f.Long
		if f.Short != "" {
			pattern += "|-" + f.Short
		}
		switch f.Type {
		case flagEnum:
			fmt.Fprintf(&b, "        %s)\n            COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\"))\n            return 0 ;;\n",
				pattern, strings.Join(f.Values, " "))
		case flagFile:
			fmt.Fprintf(&b, "        %s)\n            COMPREPLY=($(compgen -f -X '!*.@(%s)' -- \"${cur}\"))\n            return 0 ;;\n",
				pattern, strings.Join(globExtensions(f.FileGlob), "|"))
		case flagDir:
			fmt.Fprintf(&b, "        %s)\n            COMPREPLY=($(compgen -d -- \"${cur}\"))\n            return 0 ;;\n", pattern)
		case flagString:
			fmt.Fprintf(&b, "        %s)\n            return 0 ;;\n", pattern)
		}
	}
	b.WriteString("    esac\n\n")

	b.WriteString("    case \"${cmd}\" in\n")
	for _, c := range cmds {
		var words []string
		for _, f := range c.Flags {
			words = append(words, "--"+f.Long)
			if f.Short != "" {
				words = append(words, "-"+f.Short)
			}
		}
		if c.Name == "help" {
			words = strings.Fields(commandNames(cmds))
		}
		if c.Name == "completion" {
			words = []string{string(ShellBash), string(ShellZsh), string(ShellFish)}
		}
		fmt.Fprintf(&b, "        %s)\n            COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\"))\n", c.Name, strings.Join(words, " "))
		if c.FilePattern != "" {
			b.WriteString("            COMPREPLY+=($(compgen -f -- \"${cur}\"))\n")
		}
		b.WriteString("            ;;\n")
	}
	fmt.Fprintf(&b, "        *)\n            COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\") $(compgen -f -- \"${cur}\"))\n            ;;\n",
		bashFlagWords(cmds[0].Flags))
	b.WriteString("    esac\n}\n\n")
	b.WriteString("complete -o filenames -F _csv2html_completions csv2html\n")
	return b.String()
}

// bashFlagWords lists every long and short form of flags.
func bashFlagWords(flags []flagDef) string {
	var words []string
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return strings.Join(words, " ")
}

// zshEscape escapes characters with meaning inside _arguments specs.
func zshEscape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `'\''`, `[`, `\[`, `]`, `\]`, `:`, `\:`)
	return r.Replace(s)
}

// zshScript renders a zsh completion function.
func zshScript(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString("#compdef csv2html\n\n")
	b.WriteString("_csv2html() {\n")
	b.WriteString("    local -a commands\n    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        _files -g '*.csv'\n")
	b.WriteString("        return\n    fi\n\n")
	b.WriteString("    case \"${words[2]}\" in\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        %s)\n            _arguments \\\n", c.Name)
		for _, f := range c.Flags {
			fmt.Fprintf(&b, "                %s \\\n", zshFlagSpec(f))
		}
		switch c.Name {
		case "help":
			b.WriteString("                '1:command:_describe command commands' \\\n")
		case "completion":
			b.WriteString("                '1:shell:(bash zsh fish)' \\\n")
		}
		if c.FilePattern != "" {
			b.WriteString("                '*:file:_files' \\\n")
		}
		b.WriteString("                && return\n            ;;\n")
	}
	b.WriteString("        *)\n            _files\n            ;;\n")
	b.WriteString("    esac\n}\n\n")
	b.WriteString("_csv2html \"$@\"\n")
	return b.String()
}

// zshFlagSpec renders one _arguments flag spec.
func zshFlagSpec(f flagDef) string {
	head := "'--" + f.Long
	if f.Short != "" {
		head = fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'", f.Short, f.Long, f.Short, f.Long)
	}
	desc := zshEscape(f.Desc)
	switch f.Type {
	case flagBool:
		return fmt.Sprintf("%s[%s]'", head, desc)
	case flagEnum:
		return fmt.Sprintf("%s[%s]:%s:(%s)'", head, desc, f.Long, strings.Join(f.Values, " "))
	case flagFile:
		var globs []string
		for _, ext := range globExtensions(f.FileGlob) {
			globs = append(globs, "*."+ext)
		}
		return fmt.Sprintf("%s[%s]:file:_files -g \"%s\"'", head, desc, strings.Join(globs, " "))
	case flagDir:
		return fmt.Sprintf("%s[%s]:directory:_files -/'", head, desc)
	default:
		return fmt.Sprintf("%s[%s]:%s:'", head, desc, f.Long)
	}
}

// fishEscape escapes single quotes for fish strings.
func fishEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s)
}

// fishScript renders fish completions.
func fishScript(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString("# fish completion for csv2html\n\n")
	b.WriteString("function __fish_csv2html_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_csv2html_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $argv[1] = $cmd[2]\n")
	b.WriteString("end\n\n")

	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c csv2html -n '__fish_csv2html_needs_command' -f -a %s -d '%s'\n", c.Name, fishEscape(c.Desc))
	}
	b.WriteString("\n")

	for _, c := range cmds {
		cond := fmt.Sprintf("__fish_csv2html_using_command %s", c.Name)
		for _, f := range c.Flags {
			line := fmt.Sprintf("complete -c csv2html -n '%s' -l %s", cond, f.Long)
			if f.Short != "" {
				line += " -s " + f.Short
			}
			switch f.Type {
			case flagEnum:
				line += fmt.Sprintf(" -x -a '%s'", strings.Join(f.Values, " "))
			case flagFile:
				line += " -r -F"
			case flagDir:
				line += " -x -a '(__fish_complete_directories)'"
			case flagString:
				line += " -x"
			}
			fmt.Fprintf(&b, "%s -d '%s'\n", line, fishEscape(f.Desc))
		}
		switch c.Name {
		case "help":
			fmt.Fprintf(&b, "complete -c csv2html -n '%s' -f -a '%s'\n", cond, commandNames(cmds))
		case "completion":
			fmt.Fprintf(&b, "complete -c csv2html -n '%s' -f -a 'bash zsh fish'\n", cond)
		}
	}
	return b.String()
}
