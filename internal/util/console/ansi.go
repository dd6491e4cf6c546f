package console

import (
	"go.minekube.com/common/minecraft/component"

	"go.minekube.com/alchemy/pkg/util/componentutil"
)

// Ansi renders c for terminals by way of its legacy text.
func Ansi(c component.Component) string {
	return AnsiFromLegacy(componentutil.Legacy(c))
}
