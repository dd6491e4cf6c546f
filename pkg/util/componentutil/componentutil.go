package componentutil

import (
	"strings"

	"go.minekube.com/common/minecraft/component"
	"go.minekube.com/common/minecraft/component/codec"
	"go.minekube.com/common/minecraft/component/codec/legacy"
)

// ParseTextComponent parses s as json text component if it starts with '{'
// and as legacy text otherwise. Legacy text may use either '§' or '&'
// as formatting code prefix, but not both.
func ParseTextComponent(s string) (c component.Component, err error) {
	switch {
	case strings.HasPrefix(s, "{"):
		c, err = (&codec.Json{}).Unmarshal([]byte(s))
	case strings.ContainsRune(s, legacy.DefaultChar):
		c, err = (&legacy.Legacy{}).Unmarshal([]byte(s))
	default:
		c, err = (&legacy.Legacy{Char: legacy.AmpersandChar}).Unmarshal([]byte(s))
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Legacy renders c as legacy text using '§' formatting codes.
// A nil component renders empty.
func Legacy(c component.Component) string {
	if c == nil {
		return ""
	}
	b := new(strings.Builder)
	_ = (&legacy.Legacy{}).Marshal(b, c)
	return b.String()
}
