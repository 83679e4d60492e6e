// Package htmlnode implements a minimal HTML element tree.
//
// A tree is built from two node kinds: Leaf, which carries a text value and
// optionally wraps it in a single tag, and Parent, which wraps an ordered,
// non-empty list of child nodes. Serialization writes markup exactly as
// stored: values and attribute values are not escaped.
package htmlnode

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for serialization.
var (
	ErrMissingValue  = errors.New("leaf node needs a value")
	ErrMissingTag    = errors.New("parent node needs a tag")
	ErrEmptyChildren = errors.New("parent node needs at least one child")
)

// Node is an element of an HTML tree.
type Node interface {
	// Serialize renders the node and its descendants as markup.
	Serialize() (string, error)
}

// Attr is a single attribute key/value pair.
type Attr struct {
	Key   string
	Value string
}

// Attributes is an ordered attribute list with unique keys.
type Attributes []Attr

// Set returns the list with key bound to value. An existing key keeps its
// position and gets the new value.
func (a Attributes) Set(key, value string) Attributes {
	for i := range a {
		if a[i].Key == key {
			a[i].Value = value
			return a
		}
	}
	return append(a, Attr{Key: key, Value: value})
}

// Get returns the value bound to key.
func (a Attributes) Get(key string) (string, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// writeTo renders the attributes as ` k1="v1" k2="v2"` in insertion order.
func (a Attributes) writeTo(b *strings.Builder) {
	for _, attr := range a {
		b.WriteByte(' ')
		b.WriteString(attr.Key)
		b.WriteString(`="`)
		b.WriteString(attr.Value)
		b.WriteByte('"')
	}
}

func (a Attributes) equal(other Attributes) bool {
	if len(a) != len(other) {
		return false
	}
	for i := range a {
		if a[i] != other[i] {
			return false
		}
	}
	return true
}

// Leaf is a childless node. An empty Tag renders Value as raw text.
type Leaf struct {
	Tag   string
	Value *string
	Attrs Attributes
}

// NewLeaf creates a Leaf with the given tag, value and attributes.
func NewLeaf(tag, value string, attrs ...Attr) *Leaf {
	l := &Leaf{Tag: tag, Value: &value}
	for _, attr := range attrs {
		l.Attrs = l.Attrs.Set(attr.Key, attr.Value)
	}
	return l
}

// Text creates an untagged Leaf holding raw text.
func Text(value string) *Leaf {
	return NewLeaf("", value)
}

// Serialize renders the leaf. It fails with ErrMissingValue when Value is nil.
func (l *Leaf) Serialize() (string, error) {
	if l.Value == nil {
		return "", ErrMissingValue
	}
	if l.Tag == "" {
		return *l.Value, nil
	}

	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(l.Tag)
	l.Attrs.writeTo(&b)
	b.WriteByte('>')
	b.WriteString(*l.Value)
	b.WriteString("</")
	b.WriteString(l.Tag)
	b.WriteByte('>')
	return b.String(), nil
}

// Parent is a tagged node wrapping an ordered list of children.
type Parent struct {
	Tag      string
	Children []Node
	Attrs    Attributes
}

// NewParent creates a Parent with the given tag, children and attributes.
func NewParent(tag string, children []Node, attrs ...Attr) *Parent {
	p := &Parent{Tag: tag, Children: children}
	for _, attr := range attrs {
		p.Attrs = p.Attrs.Set(attr.Key, attr.Value)
	}
	return p
}

// Append adds children to the end of the child list.
func (p *Parent) Append(children ...Node) {
	p.Children = append(p.Children, children...)
}

// Serialize renders the parent and its children in order.
// It fails with ErrMissingTag or ErrEmptyChildren on a malformed parent and
// propagates the first child error.
func (p *Parent) Serialize() (string, error) {
	if p.Tag == "" {
		return "", ErrMissingTag
	}
	if len(p.Children) == 0 {
		return "", fmt.Errorf("%w: <%s>", ErrEmptyChildren, p.Tag)
	}

	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(p.Tag)
	p.Attrs.writeTo(&b)
	b.WriteByte('>')
	for i, child := range p.Children {
		if child == nil {
			return "", fmt.Errorf("<%s> child %d: %w", p.Tag, i, ErrMissingValue)
		}
		html, err := child.Serialize()
		if err != nil {
			return "", fmt.Errorf("<%s> child %d: %w", p.Tag, i, err)
		}
		b.WriteString(html)
	}
	b.WriteString("</")
	b.WriteString(p.Tag)
	b.WriteByte('>')
	return b.String(), nil
}

// Equal reports whether a and b are structurally identical: same variant,
// tag, value, attributes and, recursively, children.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case *Leaf:
		y, ok := b.(*Leaf)
		if !ok || x == nil || y == nil {
			return ok && x == y
		}
		if x.Tag != y.Tag || !x.Attrs.equal(y.Attrs) {
			return false
		}
		if x.Value == nil || y.Value == nil {
			return x.Value == y.Value
		}
		return *x.Value == *y.Value
	case *Parent:
		y, ok := b.(*Parent)
		if !ok || x == nil || y == nil {
			return ok && x == y
		}
		if x.Tag != y.Tag || !x.Attrs.equal(y.Attrs) || len(x.Children) != len(y.Children) {
			return false
		}
		for i := range x.Children {
			if !Equal(x.Children[i], y.Children[i]) {
				return false
			}
		}
		return true
	case nil:
		return b == nil
	default:
		return false
	}
}
