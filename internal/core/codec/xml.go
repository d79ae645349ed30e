package codec

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"unicode"
)

// TextKey holds element text when the element also carries attributes or children
const TextKey = "_text"

// RootElement wraps documents that do not have a single top-level element
const RootElement = "root"

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>`

// element is the single pass accumulator for one open tag
type element struct {
	name        string
	value       Value // mapping of attributes and children
	text        strings.Builder
	selfClosing bool
}

// DecodeXML maps elements to a value tree. The result is a mapping keyed by
// top-level element names. Attributes become sibling keys of child elements,
// text joins them under TextKey, repeated siblings collapse into a sequence and
// self closing tags decode to a mapping of their attributes.
func DecodeXML(text string) (Value, error) {
	raw := []byte(text)
	dec := xml.NewDecoder(strings.NewReader(text))
	// input is already text; a declared encoding is informational only
	dec.CharsetReader = func(_ string, r io.Reader) (io.Reader, error) { return r, nil }

	doc := &element{value: Map()}
	stack := []*element{doc}
	sawElement := false

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Value{}, formatErr("xml", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			sawElement = true
			el := &element{name: t.Name.Local, value: Map()}
			off := int(dec.InputOffset())
			el.selfClosing = off >= 2 && off <= len(raw) && string(raw[off-2:off]) == "/>"
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
					continue
				}
				el.value.Set(a.Name.Local, String(a.Value))
			}
			stack = append(stack, el)

		case xml.EndElement:
			el := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			addChild(&stack[len(stack)-1].value, el.name, el.finish())

		case xml.CharData:
			stack[len(stack)-1].text.Write(t)
		}
	}

	if !sawElement {
		return Value{}, formatErr("xml", errors.New("no elements found"))
	}
	if strings.TrimSpace(doc.text.String()) != "" {
		return Value{}, formatErr("xml", errors.New("text outside of the document element"))
	}
	return doc.value, nil
}

func (e *element) finish() Value {
	txt := strings.TrimSpace(e.text.String())
	if len(e.value.Members) == 0 {
		switch {
		case txt != "":
			return String(txt)
		case e.selfClosing:
			return Map()
		default:
			return Null()
		}
	}
	if txt != "" {
		e.value.Members = append([]Member{{Key: TextKey, Value: String(txt)}}, e.value.Members...)
	}
	return e.value
}

// addChild collapses repeated sibling names into a sequence.
// Element values are never sequences, so an existing sequence came from repeats.
func addChild(parent *Value, name string, v Value) {
	prev, ok := parent.Get(name)
	switch {
	case !ok:
		parent.Set(name, v)
	case prev.Kind == KindSeq:
		prev.Items = append(prev.Items, v)
		parent.Set(name, prev)
	default:
		parent.Set(name, Seq(prev, v))
	}
}

// EncodeXML renders v as an XML document. A mapping with exactly one non
// sequence member becomes the document element; anything else is wrapped in
// RootElement.
func EncodeXML(v Value) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	if v.Kind == KindMap && len(v.Members) == 1 && v.Members[0].Value.Kind != KindSeq {
		writeElement(&b, elementName(v.Members[0].Key), v.Members[0].Value, 0)
		return b.String()
	}
	writeElement(&b, RootElement, v, 0)
	return b.String()
}

func writeElement(b *strings.Builder, name string, v Value, depth int) {
	switch v.Kind {
	case KindSeq:
		if depth == 0 {
			// a bare top-level sequence still needs one document element
			openTag(b, name, depth)
			for _, it := range v.Items {
				writeElement(b, "item", it, depth+1)
			}
			closeTag(b, name, depth, true)
			return
		}
		for _, it := range v.Items {
			writeElement(b, name, it, depth)
		}
	case KindMap:
		if len(v.Members) == 0 {
			b.WriteByte('\n')
			writeIndent(b, depth)
			b.WriteString("<" + name + "/>")
			return
		}
		openTag(b, name, depth)
		nested := false
		for _, m := range v.Members {
			if m.Key == TextKey && m.Value.Kind != KindMap && m.Value.Kind != KindSeq {
				b.WriteString(escapeXML(scalarText(m.Value)))
				continue
			}
			writeElement(b, elementName(m.Key), m.Value, depth+1)
			nested = true
		}
		closeTag(b, name, depth, nested)
	default:
		b.WriteByte('\n')
		writeIndent(b, depth)
		b.WriteString("<" + name + ">")
		b.WriteString(escapeXML(scalarText(v)))
		b.WriteString("</" + name + ">")
	}
}

func openTag(b *strings.Builder, name string, depth int) {
	b.WriteByte('\n')
	writeIndent(b, depth)
	b.WriteString("<" + name + ">")
}

func closeTag(b *strings.Builder, name string, depth int, nested bool) {
	if nested {
		b.WriteByte('\n')
		writeIndent(b, depth)
	}
	b.WriteString("</" + name + ">")
}

func writeIndent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}

func scalarText(v Value) string {
	switch v.Kind {
	case KindString, KindNumber:
		return v.Text
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

func escapeXML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;", "'", "&apos;")
	return r.Replace(s)
}

// elementName turns a mapping key into a well formed element name
func elementName(key string) string {
	if key == "" {
		return "_"
	}
	var b strings.Builder
	for i, r := range key {
		ok := r == '_' || unicode.IsLetter(r) || (i > 0 && (unicode.IsDigit(r) || r == '-' || r == '.'))
		if !ok {
			if i == 0 && (unicode.IsDigit(r) || r == '-' || r == '.') {
				b.WriteByte('_')
				b.WriteRune(r)
				continue
			}
			b.WriteByte('_')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
