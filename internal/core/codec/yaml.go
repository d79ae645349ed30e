package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// numericLiteral is the only shape coerced to a number; it is also valid JSON
var numericLiteral = regexp.MustCompile(`^-?(?:0|[1-9][0-9]*)(?:\.[0-9]+)?(?:[eE][+-]?[0-9]+)?$`)

// DecodeYAML parses the supported YAML subset: block mappings with one key per
// line, "- " block sequences and plain or quoted scalars. Flow collections
// (other than the literal [] and {}), anchors, aliases, explicit tags, block
// scalars and multi document streams are rejected.
func DecodeYAML(text string) (Value, error) {
	dec := yaml.NewDecoder(strings.NewReader(text))

	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, formatErr("yaml", errors.New("empty document"))
		}
		return Value{}, formatErr("yaml", err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return Value{}, formatErr("yaml", errors.New("multi-document streams are not supported"))
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return Value{}, formatErr("yaml", errors.New("empty document"))
	}

	v, err := fromNode(doc.Content[0])
	if err != nil {
		return Value{}, formatErr("yaml", err)
	}
	return v, nil
}

func fromNode(n *yaml.Node) (Value, error) {
	if n.Anchor != "" {
		return Value{}, unsupported(n, "anchors")
	}
	if n.Style&yaml.TaggedStyle != 0 {
		return Value{}, unsupported(n, "explicit tags")
	}

	switch n.Kind {
	case yaml.AliasNode:
		return Value{}, unsupported(n, "aliases")

	case yaml.MappingNode:
		if n.Style&yaml.FlowStyle != 0 && len(n.Content) > 0 {
			return Value{}, unsupported(n, "flow mappings")
		}
		out := Map()
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, val := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return Value{}, unsupported(k, "complex keys")
			}
			if k.Value == "<<" && k.Style == 0 {
				return Value{}, unsupported(k, "merge keys")
			}
			if k.Line == val.Line && val.Kind == yaml.MappingNode && len(val.Content) > 0 {
				return Value{}, unsupported(val, "more than one key per line")
			}
			child, err := fromNode(val)
			if err != nil {
				return Value{}, err
			}
			out.Set(k.Value, child)
		}
		return out, nil

	case yaml.SequenceNode:
		if n.Style&yaml.FlowStyle != 0 && len(n.Content) > 0 {
			return Value{}, unsupported(n, "flow sequences")
		}
		out := Seq()
		for _, c := range n.Content {
			child, err := fromNode(c)
			if err != nil {
				return Value{}, err
			}
			out.Items = append(out.Items, child)
		}
		return out, nil

	case yaml.ScalarNode:
		if n.Style&(yaml.LiteralStyle|yaml.FoldedStyle) != 0 {
			return Value{}, unsupported(n, "block scalars")
		}
		if n.Style&(yaml.SingleQuotedStyle|yaml.DoubleQuotedStyle) != 0 {
			return String(n.Value), nil
		}
		return coerce(n.Value), nil
	}
	return Value{}, fmt.Errorf("line %d: unexpected node", n.Line)
}

// coerce maps an unquoted scalar onto the value model
func coerce(s string) Value {
	switch s {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	case "null", "~", "":
		return Null()
	}
	if numericLiteral.MatchString(s) {
		return Number(s)
	}
	return String(s)
}

func unsupported(n *yaml.Node, what string) error {
	return fmt.Errorf("line %d: %s are not supported", n.Line, what)
}

// EncodeYAML renders v as block style YAML with two space indentation.
// Strings that would read back as another kind are quoted.
func EncodeYAML(v Value) string {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	_ = enc.Encode(toNode(v)) // node trees built here always encode
	_ = enc.Close()
	return strings.TrimSuffix(buf.String(), "\n")
}

func toNode(v Value) *yaml.Node {
	switch v.Kind {
	case KindMap:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		if len(v.Members) == 0 {
			n.Style = yaml.FlowStyle
		}
		for _, m := range v.Members {
			n.Content = append(n.Content, strNode(m.Key), toNode(m.Value))
		}
		return n
	case KindSeq:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		if len(v.Items) == 0 {
			n.Style = yaml.FlowStyle
		}
		for _, it := range v.Items {
			n.Content = append(n.Content, toNode(it))
		}
		return n
	case KindString:
		return strNode(v.Text)
	case KindNumber:
		return &yaml.Node{Kind: yaml.ScalarNode, Value: v.Text}
	case KindBool:
		if v.Bool {
			return &yaml.Node{Kind: yaml.ScalarNode, Value: "true"}
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Value: "false"}
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Value: "null"}
	}
}

// strNode quotes anything the subset decoder would not read back verbatim
func strNode(s string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	if strings.ContainsAny(s, "\n\r\t") || !Equal(coerce(s), String(s)) || s != strings.TrimSpace(s) {
		n.Style = yaml.DoubleQuotedStyle
	}
	return n
}
