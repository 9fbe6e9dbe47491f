package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// gen-docs writes shell completions and a man page for safedot's flags.

const (
	appName        = "safedot"
	appDescription = "Manage the Safe Dot privacy indicator service on an Android device over adb."
)

type flagDef struct {
	Short string
	Long  string
	Arg   string
	Desc  string
}

var flags = []flagDef{
	{Short: "-s", Long: "--serial", Arg: "<serial>", Desc: "Serial of the device to manage"},
	{Long: "--adb", Arg: "<path>", Desc: "Path to the adb binary"},
	{Long: "--service", Arg: "<component>", Desc: "Accessibility service component (package/class)"},
	{Long: "--prefs", Arg: "<file>", Desc: "Preferences file"},
	{Long: "--log-file", Arg: "<file>", Desc: "Log file, empty to disable logging"},
	{Long: "--debug", Desc: "Log adb traffic"},
	{Long: "--manufacturer", Arg: "<name>", Desc: "Override the device manufacturer"},
	{Short: "-v", Long: "--version", Desc: "Show version information"},
	{Short: "-h", Long: "--help", Desc: "Show help message"},
}

type example struct {
	Args string
	Desc string
}

var examples = []example{
	{Args: "", Desc: "Open the settings screen for the only connected device."},
	{Args: "-s emulator-5554", Desc: "Manage a specific device."},
	{Args: "--manufacturer xiaomi", Desc: "Preview the auto-start prompt."},
}

func main() {
	files := map[string]string{
		filepath.Join("docs", "completions", appName+".bash"): bashCompletion(),
		filepath.Join("docs", "completions", "_"+appName):     zshCompletion(),
		filepath.Join("docs", "completions", appName+".fish"): fishCompletion(),
		filepath.Join("man", appName+".1"):                    manPage(),
	}
	for path, body := range files {
		if err := writeFile(path, body); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func writeFile(path, body string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(body), 0o644)
}

func names(f flagDef) []string {
	var out []string
	if f.Short != "" {
		out = append(out, f.Short)
	}
	if f.Long != "" {
		out = append(out, f.Long)
	}
	return out
}

func bashCompletion() string {
	var opts []string
	for _, f := range flags {
		opts = append(opts, names(f)...)
	}
	return fmt.Sprintf(`_%[1]s() {
  local cur="${COMP_WORDS[COMP_CWORD]}"
  if [[ ${cur} == -* ]] ; then
    COMPREPLY=( $(compgen -W "%[2]s" -- ${cur}) )
  fi
}
complete -F _%[1]s %[1]s
`, appName, strings.Join(opts, " "))
}

func zshCompletion() string {
	var parts []string
	for _, f := range flags {
		name := f.Long
		if name == "" {
			name = f.Short
		}
		suffix := ""
		if f.Arg != "" {
			// zsh requires = for options with arguments
			name += "="
			suffix = ":value:" + strings.Trim(f.Arg, "<>")
		}
		parts = append(parts, fmt.Sprintf("'%s[%s]%s'", name, f.Desc, suffix))
	}
	return "#compdef " + appName + "\n_arguments " + strings.Join(parts, " ") + "\n"
}

func fishCompletion() string {
	var b strings.Builder
	b.WriteString("complete -c " + appName + " -f\n")
	for _, f := range flags {
		b.WriteString("complete -c " + appName)
		if f.Short != "" {
			b.WriteString(" -s " + strings.TrimPrefix(f.Short, "-"))
		}
		if f.Long != "" {
			b.WriteString(" -l " + strings.TrimPrefix(f.Long, "--"))
		}
		if f.Arg != "" {
			b.WriteString(" -r")
		} else {
			b.WriteString(" -f")
		}
		b.WriteString(" -d \"" + strings.ReplaceAll(f.Desc, "\"", "\\\"") + "\"\n")
	}
	return b.String()
}

func roffEscape(s string) string {
	return strings.ReplaceAll(s, "-", "\\-")
}

func manPage() string {
	var b strings.Builder
	fmt.Fprintf(&b, ".TH \"%s\" \"1\" \"\" \"%s\" \"User Commands\"\n", strings.ToUpper(appName), appName)
	b.WriteString(".SH NAME\n" + appName + " \\- " + appDescription + "\n")

	b.WriteString(".SH SYNOPSIS\n.B " + appName + "\n")
	var synopsis []string
	for _, f := range flags {
		s := roffEscape(strings.Join(names(f), "|"))
		if f.Arg != "" {
			s += " " + f.Arg
		}
		synopsis = append(synopsis, "["+s+"]")
	}
	b.WriteString(strings.Join(synopsis, " ") + "\n")

	b.WriteString(".SH DESCRIPTION\n" + appDescription + "\n")
	b.WriteString(".SH OPTIONS\n")
	for _, f := range flags {
		s := roffEscape(strings.Join(names(f), ", "))
		if f.Arg != "" {
			s += " " + f.Arg
		}
		b.WriteString(".TP\n\\fB" + s + "\\fR\n" + f.Desc + "\n")
	}

	b.WriteString(".SH ENVIRONMENT\n")
	b.WriteString("Every option can also be set with a SAFEDOT_ variable, for example SAFEDOT_SERIAL. A .env file in the working directory is read first.\n")

	b.WriteString(".SH EXAMPLES\n")
	for _, e := range examples {
		cmd := appName
		if e.Args != "" {
			cmd += " " + roffEscape(e.Args)
		}
		b.WriteString(".TP\n\\fB" + cmd + "\\fR\n" + e.Desc + "\n")
	}
	b.WriteString(".SH SEE ALSO\nadb(1)\n")
	return b.String()
}
