package tasks

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/pflag"
)

// Command is a fully built shell command line ready to be executed
type Command struct {
	Line string
	// PTY requests a pseudo-terminal so the child sees an interactive session
	PTY bool
}

func (c Command) String() string {
	return c.Line
}

// Builder produces the command from the values parsed into a task's options
type Builder func() Command

// Definition describes a named task and how its parameters map to a command
type Definition struct {
	Name  string
	Short string
	Help  map[string]string

	// Flags declares the task parameters on fs, seeded with their defaults,
	// and returns the builder bound to the parsed values.
	Flags func(fs *pflag.FlagSet) Builder
}

// Bind registers the definition's parameters on fs. Tasks without
// parameters still get a builder.
func (d Definition) Bind(fs *pflag.FlagSet) Builder {
	if d.Flags == nil {
		return func() Command { return Command{} }
	}
	return d.Flags(fs)
}

// Usage returns the help text for a parameter, or an empty string
func (d Definition) Usage(param string) string {
	return d.Help[param]
}

// Parameters lists "name=default" pairs for every visible parameter
func (d Definition) Parameters() []string {
	fs := pflag.NewFlagSet(d.Name, pflag.ContinueOnError)
	d.Bind(fs)

	var params []string
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		def := f.DefValue
		if def == "" {
			def = "<unset>"
		}
		params = append(params, fmt.Sprintf("%s=%s", f.Name, def))
	})
	sort.Strings(params)
	return params
}

// Summary is a one-line description used in listings
func (d Definition) Summary() string {
	params := d.Parameters()
	if len(params) == 0 {
		return d.Short
	}
	return fmt.Sprintf("%s (%s)", d.Short, strings.Join(params, ", "))
}
