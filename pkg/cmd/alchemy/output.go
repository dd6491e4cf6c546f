package alchemy

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"go.minekube.com/alchemy/internal/util/console"
	"go.minekube.com/alchemy/pkg/config"
	"go.minekube.com/alchemy/pkg/item/meta"
	"go.minekube.com/alchemy/pkg/item/tag"
)

// writeTag writes the item tag of p to w in the given format.
func writeTag(w io.Writer, p meta.Potion, format config.Output) error {
	c := tag.EncodePotion(p)
	var (
		b   []byte
		err error
	)
	switch format {
	case config.SNBTOutput:
		var s string
		s, err = tag.ToSNBT(c)
		b = []byte(s + "\n")
	case config.JSONOutput:
		b, err = tag.ToJSON(c)
		b = append(b, '\n')
	case config.YAMLOutput:
		b, err = tag.ToYAML(c)
	case config.BinaryOutput:
		buf := new(bytes.Buffer)
		err = c.Write(buf)
		b = buf.Bytes()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// writeSummary writes a human readable description of p to w as shown
// in game, followed by the potion color.
func writeSummary(w io.Writer, p meta.Potion) error {
	b := new(strings.Builder)
	b.WriteString(console.Ansi(meta.Title(p)))
	b.WriteByte('\n')
	for _, line := range meta.Tooltip(p) {
		b.WriteString("  ")
		b.WriteString(console.Ansi(line))
		b.WriteByte('\n')
	}
	if p.HasColor() {
		fmt.Fprintf(b, "Color: %s (custom)\n", p.Color())
	} else {
		fmt.Fprintf(b, "Color: %s (mixed)\n", p.DisplayColor())
	}
	_, err := io.WriteString(w, b.String())
	return err
}
