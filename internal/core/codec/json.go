package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"

	perr "langshift/internal/platform/errors"
)

// DecodeJSON parses a single JSON document.
// Member order is preserved and numbers keep their literal text.
func DecodeJSON(text string) (Value, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	v, err := readJSON(dec)
	if err != nil {
		return Value{}, formatErr("json", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, formatErr("json", errors.New("unexpected data after top-level value"))
	}
	return v, nil
}

func readJSON(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, io.ErrUnexpectedEOF
		}
		return Value{}, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			out := Map()
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := kt.(string)
				if !ok {
					return Value{}, errors.New("object key must be a string")
				}
				val, err := readJSON(dec)
				if err != nil {
					return Value{}, err
				}
				out.Set(key, val)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return out, nil
		case '[':
			out := Seq()
			for dec.More() {
				val, err := readJSON(dec)
				if err != nil {
					return Value{}, err
				}
				out.Items = append(out.Items, val)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return out, nil
		default:
			return Value{}, errors.New("unexpected delimiter " + t.String())
		}
	case string:
		return String(t), nil
	case json.Number:
		return Number(t.String()), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	}
	return Value{}, errors.New("unexpected token")
}

// EncodeJSON renders v with two space indentation
func EncodeJSON(v Value) string {
	var b strings.Builder
	writeJSON(&b, v, 0)
	return b.String()
}

func writeJSON(b *strings.Builder, v Value, depth int) {
	switch v.Kind {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		if v.Bool {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindNumber:
		b.WriteString(v.Text)
	case KindString:
		b.WriteString(quoteJSON(v.Text))
	case KindSeq:
		if len(v.Items) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteString("[\n")
		for i, it := range v.Items {
			indent(b, depth+1)
			writeJSON(b, it, depth+1)
			if i < len(v.Items)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		indent(b, depth)
		b.WriteByte(']')
	case KindMap:
		if len(v.Members) == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteString("{\n")
		for i, m := range v.Members {
			indent(b, depth+1)
			b.WriteString(quoteJSON(m.Key))
			b.WriteString(": ")
			writeJSON(b, m.Value, depth+1)
			if i < len(v.Members)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		indent(b, depth)
		b.WriteByte('}')
	}
}

func quoteJSON(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s) // strings always encode
	return strings.TrimSuffix(buf.String(), "\n")
}

func indent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}

func formatErr(format string, err error) error {
	return perr.WithOp(perr.Wrapf(err, perr.ErrorCodeFormat, "invalid %s", strings.ToUpper(format)), "decode:"+format)
}
