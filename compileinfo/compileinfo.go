// Package compileinfo reports how the running binary was built, from the
// VCS build settings the Go toolchain embeds. Each reduction tool announces
// this at startup so an output file can be traced to the code that made it.
package compileinfo

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

type CompileInfo struct {
	Package    string
	GoVersion  string
	Commit     string
	CommitTime string
	Modified   bool
}

func (c CompileInfo) String() string {
	mod := ""
	if c.Modified {
		mod = " The working tree was dirty at build time."
	}

	return fmt.Sprintf("This %s binary was built with %s from commit %v (%v).%s", c.Package, c.GoVersion, c.Commit, c.CommitTime, mod)
}

func Get() CompileInfo {
	out := CompileInfo{}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}

	out.GoVersion = info.GoVersion
	out.Package = info.Path
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.CommitTime = s.Value
		case "vcs.modified":
			out.Modified = s.Value == "true"
		}
	}

	return out
}

// Fprint writes the build description to w.
func Fprint(w io.Writer) {
	fmt.Fprintf(w, "%s\n", Get())
}

// PrintToStdErr writes the build description to standard error, keeping
// standard output clean for the tools' result summaries.
func PrintToStdErr() {
	Fprint(os.Stderr)
}
