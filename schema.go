package jsonschema

// Schema wraps a checked schema document. A Schema is immutable and safe for
// concurrent use.
type Schema struct {
	root    *Node
	formats *Registry
}

// New decodes and checks doc and returns a Schema for it. doc uses the
// generic value model produced by encoding/json or yaml.v3. Defects in the
// document are reported as *SchemaError.
func New(doc map[string]any, opts ...Option) (*Schema, error) {
	root, err := ParseNode(doc)
	if err != nil {
		return nil, err
	}
	return newSchema(root, opts), nil
}

// MustNew is like [New] but panics on error.
func MustNew(doc map[string]any, opts ...Option) *Schema {
	s, err := New(doc, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// FromNode checks a Node tree built in Go and returns a Schema for it. The
// Schema takes ownership of root; the caller must not modify it afterwards.
// A tree in which a node contains itself is a *SchemaError.
func FromNode(root *Node, opts ...Option) (*Schema, error) {
	if root == nil {
		root = &Node{}
	}
	if err := checkNode(root, ""); err != nil {
		return nil, err
	}
	return newSchema(root, opts), nil
}

func newSchema(root *Node, opts []Option) *Schema {
	s := &Schema{root: root}
	for _, opt := range opts {
		opt(s)
	}
	if s.formats == nil {
		s.formats = DefaultRegistry
	}
	return s
}

// Get returns the whole schema document.
func (s *Schema) Get() *Node {
	return s.root
}

// GetByPath returns the node at a dotted path such as "properties.price" or
// "price". The empty path returns the root. An unresolvable segment yields a
// *PathError.
func (s *Schema) GetByPath(path string) (*Node, error) {
	return resolvePath(s.root, path)
}

// Validate checks data against the schema. It returns nil when data conforms,
// a *ValidationError for the first violated constraint, or a *SchemaError
// when evaluation reaches a format the registry does not know.
func (s *Schema) Validate(data any) error {
	e := evaluator{formats: s.formats}
	return e.check(s.root, data, location{})
}

// CheckFormat applies the format keyword of node to value, honouring oneOf,
// anyOf and allOf on node. field names the value in errors. node is not
// checked like a Schema document and must not contain itself. A format name
// unknown to the registry yields a *SchemaError whatever the value.
func (s *Schema) CheckFormat(value any, node *Node, field string) error {
	if node == nil {
		return nil
	}
	e := evaluator{formats: s.formats}
	return e.checkFormat(node, value, location{data: field})
}

// Formats returns the registry the schema resolves formats against.
func (s *Schema) Formats() *Registry {
	return s.formats
}
