package validation

import (
	"regexp"
)

// Constants obtained from https://github.com/kubernetes/apimachinery/blob/master/pkg/util/validation/validation.go
const (
	qnameCharFmt           = "[A-Za-z0-9]"
	qnameExtCharFmt        = "[-A-Za-z0-9_.]"
	qualifiedNameFmt       = "(" + qnameCharFmt + qnameExtCharFmt + "*)?" + qnameCharFmt
	QualifiedNameMaxLength = 63
	QualifiedNameErrMsg    = "must consist of alphanumeric characters, " +
		"'-', '_' or '.', and must start and end with an alphanumeric character"
)

var qualifiedNameRegexp = regexp.MustCompile("^" + qualifiedNameFmt + "$")

// ValidPresetName reports whether str can be used as a potion preset name.
func ValidPresetName(str string) bool {
	return str != "" && len(str) <= QualifiedNameMaxLength && qualifiedNameRegexp.MatchString(str)
}

// Namespaced keys as used for registry entries, e.g. "minecraft:speed".
var (
	keyNamespaceRegexp = regexp.MustCompile(`^[a-z0-9_.-]+$`)
	keyValueRegexp     = regexp.MustCompile(`^[a-z0-9_./-]+$`)
)

// ValidKeyNamespace reports whether str is a valid key namespace.
func ValidKeyNamespace(str string) bool {
	return keyNamespaceRegexp.MatchString(str)
}

// ValidKeyValue reports whether str is a valid key value.
func ValidKeyValue(str string) bool {
	return keyValueRegexp.MatchString(str)
}
