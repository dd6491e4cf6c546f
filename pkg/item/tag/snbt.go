package tag

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Tnze/go-mc/nbt"
	"gopkg.in/yaml.v3"

	"go.minekube.com/alchemy/pkg/util/errs"
)

// ToSNBT converts c to stringified NBT as accepted by in-game commands.
// Example: {CustomPotionColor:16711680,CustomPotionEffects:[{Id:1B,...}]}
// Byte tags are rendered signed, so an amplifier of 200 reads -56B.
func ToSNBT(c Compound) (string, error) {
	buf := new(bytes.Buffer)
	if err := c.Write(buf); err != nil {
		return "", fmt.Errorf("error marshalling compound to binary: %w", err)
	}
	var raw nbt.RawMessage
	if _, err := nbt.NewDecoder(buf).Decode(&raw); err != nil {
		return "", fmt.Errorf("error reading binary tag: %w", err)
	}
	s := raw.String()
	if strings.HasPrefix(s, "<Invalid") {
		return "", fmt.Errorf("error stringifying binary tag: %s", s)
	}
	return signBytes(s), nil
}

// ParseSNBT parses a stringified compound tag.
// Byte literals may be signed (-56b) or unsigned (200b).
func ParseSNBT(snbt string) (Compound, error) {
	snbt = signBytes(strings.TrimSpace(snbt))
	msg := nbt.StringifiedMessage(snbt)
	if len(snbt) < 2 || msg.TagType() != nbt.TagCompound {
		return nil, errs.InvalidArgument("snbt must be a compound tag {...}")
	}

	buf := new(bytes.Buffer)
	if err := msg.MarshalNBT(buf); err != nil {
		return nil, fmt.Errorf("error parsing snbt: %w", err)
	}

	rd := io.MultiReader(
		bytes.NewReader([]byte{nbt.TagCompound, 0, 0}), // type and empty name of the root compound
		buf,                        // payload
		bytes.NewReader([]byte{0}), // end root compound
	)
	c, err := Read(rd)
	if err != nil {
		return nil, fmt.Errorf("error reading snbt binary: %w", err)
	}
	return c, nil
}

// signBytes rewrites unsigned byte literals 128B-255B outside of quoted
// strings to their signed form. go-mc stringifies byte tags unsigned while
// its parser and vanilla read them as signed.
func signBytes(snbt string) string {
	var sb strings.Builder
	sb.Grow(len(snbt))
	for i := 0; i < len(snbt); {
		switch c := snbt[i]; {
		case c == '"' || c == '\'':
			j := i + 1
			for j < len(snbt) && snbt[j] != c {
				if snbt[j] == '\\' {
					j++
				}
				j++
			}
			j = min(j+1, len(snbt))
			sb.WriteString(snbt[i:j])
			i = j
		case isLiteralChar(c):
			j := i
			for j < len(snbt) && isLiteralChar(snbt[j]) {
				j++
			}
			sb.WriteString(signByte(snbt[i:j], snbt[j:]))
			i = j
		default:
			sb.WriteByte(c)
			i++
		}
	}
	return sb.String()
}

func isLiteralChar(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c == '_' || c == '-' || c == '.' || c == '+'
}

// signByte returns the signed form of lit if it is an unsigned byte
// literal above 127. Compound keys are returned unchanged.
func signByte(lit, rest string) string {
	if len(lit) < 2 || strings.HasPrefix(strings.TrimLeft(rest, " \t\r\n"), ":") {
		return lit
	}
	suffix := lit[len(lit)-1]
	if suffix != 'b' && suffix != 'B' {
		return lit
	}
	n, err := strconv.ParseUint(lit[:len(lit)-1], 10, 8)
	if err != nil || n < 128 {
		return lit
	}
	return strconv.FormatInt(int64(int8(n)), 10) + string(suffix)
}

// ToJSON converts c to JSON. Byte tags become numbers.
func ToJSON(c Compound) (json.RawMessage, error) {
	return json.Marshal(c)
}

// ToYAML converts c to YAML.
func ToYAML(c Compound) ([]byte, error) {
	return yaml.Marshal(map[string]any(c))
}
