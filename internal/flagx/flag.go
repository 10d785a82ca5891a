// Package flagx pre-scans command-line arguments for the few flags that must
// be known before the full flag set is parsed, such as the config file path.
package flagx

import (
	"flag"
	"io"
	"os"
	"strings"
)

// FilterArgs keeps only the flags named in allowedFlags, together with their
// values. Both "-c conf.json" and "-c=conf.json" forms are recognized; a
// following token that starts with "-" is never taken as a value.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// LookupString returns the value of a string flag known under a long and a
// short name. Later occurrences win. Unknown flags are ignored.
func LookupString(args []string, long, short string) string {
	var v string

	filtered := FilterArgs(args, []string{"-" + long, "-" + short, "--" + long})

	fs := flag.NewFlagSet(long, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&v, long, "", "")
	fs.StringVar(&v, short, "", "")
	_ = fs.Parse(filtered)

	return v
}

// JsonConfigFlags returns the config file path given with -c or -config, or
// an empty string.
func JsonConfigFlags() string {
	return LookupString(os.Args[1:], "config", "c")
}

// EnvFileFlags returns the dotenv file path given with -e or -env, or an
// empty string.
func EnvFileFlags() string {
	return LookupString(os.Args[1:], "env", "e")
}
