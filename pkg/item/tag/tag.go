// Package tag converts item metadata from and to named binary tags (NBT)
// as stored in item stacks, in binary and stringified form.
package tag

import (
	"io"

	"github.com/sandertv/gophertunnel/minecraft/nbt"
)

// Compound is a compound binary tag.
//
// Integer getters accept any integer tag width since tags written by
// other tools do not always use the vanilla width.
type Compound map[string]any

func (c Compound) Bool(name string) (bool, bool) {
	val, ok := c.Int64(name)
	return val != 0, ok
}

func (c Compound) Int(name string) (int, bool) {
	i, ok := c.Int64(name)
	return int(i), ok
}

func (c Compound) Int64(name string) (ret int64, ok bool) {
	var val any
	if val, ok = c[name]; !ok {
		return
	}
	switch v := val.(type) {
	case uint8:
		ret = int64(v)
	case int8:
		ret = int64(v)
	case int16:
		ret = int64(v)
	case int32:
		ret = int64(v)
	case int64:
		ret = v
	case int:
		ret = int64(v)
	default:
		ok = false
	}
	return
}

func (c Compound) String(name string) (ret string, ok bool) {
	var val any
	if val, ok = c[name]; ok {
		ret, ok = val.(string)
	}
	return
}

func (c Compound) Compound(name string) (ret Compound, ok bool) {
	var val any
	if val, ok = c[name]; ok {
		ret, ok = val.(map[string]any)
		if !ok {
			ret, ok = val.(Compound)
		}
	}
	return
}

// List returns the compounds of a list tag. Elements that are not
// compounds are skipped.
func (c Compound) List(name string) (ret []Compound, ok bool) {
	var val any
	if val, ok = c[name]; !ok {
		return
	}
	switch l := val.(type) {
	case []Compound:
		return l, true
	case []map[string]any:
		for _, e := range l {
			ret = append(ret, e)
		}
	case []any:
		for _, e := range l {
			switch n := e.(type) {
			case map[string]any:
				ret = append(ret, n)
			case Compound:
				ret = append(ret, n)
			}
		}
	default:
		return nil, false
	}
	return ret, true
}

// Strings returns the strings of a list tag. Elements that are not
// strings are skipped.
func (c Compound) Strings(name string) (ret []string, ok bool) {
	var val any
	if val, ok = c[name]; !ok {
		return
	}
	switch l := val.(type) {
	case []string:
		return l, true
	case []any:
		for _, e := range l {
			if s, isStr := e.(string); isStr {
				ret = append(ret, s)
			}
		}
	default:
		return nil, false
	}
	return ret, true
}

// Read reads a big-endian compound tag as found in Java edition files.
func Read(rd io.Reader) (Compound, error) {
	v := Compound{}
	err := NewDecoder(rd).Decode(&v)
	return v, err
}

func NewDecoder(r io.Reader) *nbt.Decoder {
	return nbt.NewDecoderWithEncoding(r, nbt.BigEndian)
}

func NewEncoder(w io.Writer) *nbt.Encoder {
	return nbt.NewEncoderWithEncoding(w, nbt.BigEndian)
}

// Write writes c as big-endian compound tag.
func Write(w io.Writer, c Compound) error {
	return NewEncoder(w).Encode(c)
}

func (c Compound) Write(w io.Writer) error {
	return Write(w, c)
}
