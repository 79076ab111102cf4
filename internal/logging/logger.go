package logging

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// New returns a named logger writing to stderr. JSON output is used outside
// development so log shippers can parse it.
func New(name, level, env string) hclog.Logger {
	return NewWithOutput(name, level, env, os.Stderr)
}

func NewWithOutput(name, level, env string, out io.Writer) hclog.Logger {
	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		lvl = hclog.Info
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Output:     out,
		Level:      lvl,
		JSONFormat: env != "" && env != "development",
	})
}
