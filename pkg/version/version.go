package version

import "strings"

// version is the current version of alchemy.
// Set using -ldflags "-X go.minekube.com/alchemy/pkg/version.version=v1.2.3"
var version string = "unknown"

func String() string {
	return version
}

// UserAgent identifies alchemy in logs and generated files.
func UserAgent() string {
	s := strings.Builder{}
	s.WriteString("Minekube-Alchemy/")
	if v := String(); v != "" {
		s.WriteString(v)
	} else {
		s.WriteString("Dirty")
	}
	return s.String()
}
