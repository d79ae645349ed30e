// Package codec converts between JSON, YAML and XML through a shared value tree
package codec

// Kind tags the variant held by a Value
type Kind uint8

// Value variants
const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindSeq
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindSeq:
		return "sequence"
	case KindMap:
		return "mapping"
	default:
		return "unknown"
	}
}

// Member is one ordered mapping entry
type Member struct {
	Key   string
	Value Value
}

// Value is the intermediate tree every format round trips through.
// Numbers keep their literal text so encoders can reproduce them exactly.
type Value struct {
	Kind    Kind
	Text    string // string content or number literal
	Bool    bool
	Items   []Value
	Members []Member
}

// Null returns the null value
func Null() Value { return Value{Kind: KindNull} }

// String returns a string value
func String(s string) Value { return Value{Kind: KindString, Text: s} }

// Number returns a number value holding literal as written
func Number(literal string) Value { return Value{Kind: KindNumber, Text: literal} }

// Bool returns a boolean value
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Seq returns a sequence value
func Seq(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{Kind: KindSeq, Items: items}
}

// Map returns a mapping value preserving member order
func Map(members ...Member) Value {
	if members == nil {
		members = []Member{}
	}
	return Value{Kind: KindMap, Members: members}
}

// Get returns the member value for key
func (v Value) Get(key string) (Value, bool) {
	for _, m := range v.Members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Set replaces the member for key in place or appends a new one
func (v *Value) Set(key string, val Value) {
	for i := range v.Members {
		if v.Members[i].Key == key {
			v.Members[i].Value = val
			return
		}
	}
	v.Members = append(v.Members, Member{Key: key, Value: val})
}

// Equal reports deep equality; member order matters
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNull:
		return true
	case KindString, KindNumber:
		return a.Text == b.Text
	case KindBool:
		return a.Bool == b.Bool
	case KindSeq:
		if len(a.Items) != len(b.Items) {
			return false
		}
		for i := range a.Items {
			if !Equal(a.Items[i], b.Items[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(a.Members) != len(b.Members) {
			return false
		}
		for i := range a.Members {
			if a.Members[i].Key != b.Members[i].Key || !Equal(a.Members[i].Value, b.Members[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}
