package java

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/javaimports/info"
)

type scope struct {
	parent     *scope
	class      *class
	declared   info.IdentifierSet
	unresolved info.IdentifierSet
	pending    []*extender
}

func newScope(parent *scope, c *class) *scope {
	return &scope{parent: parent, class: c, declared: info.IdentifierSet{}, unresolved: info.IdentifierSet{}}
}

func (s *scope) resolvable(id info.Identifier) bool {
	for current := s; current != nil; current = current.parent {
		if current.declared.Has(id) {
			return true
		}
	}
	return false
}

// class is a type declared in the scanned file, name is its nesting path (Outer.Inner)
type class struct {
	name     info.Selector
	kind     string
	extends  info.Selector
	members  info.IdentifierSet
	closed   bool
	topLevel bool
}

// inheritsObject is true for classes whose chain implicitly ends at java.lang.Object
func (c *class) inheritsObject() bool {
	return c.kind == "class_declaration" || c.kind == "record_declaration" || c.kind == "enum_declaration"
}

// extender tracks identifiers a class still misses while its superclass chain is walked
type extender struct {
	class      *class
	unresolved info.IdentifierSet
	parent     info.Selector
	visited    map[*class]bool
}

func (e *extender) done() bool {
	return e.parent.IsZero() || len(e.unresolved) == 0
}

// scanner walks a syntax tree recording identifiers that the file cannot resolve on its own
type scanner struct {
	source  []byte
	current *scope
	path    []info.Identifier
	classes []*class
	orphans []*extender
}

func newScanner(source []byte) *scanner {
	return &scanner{source: source, current: newScope(nil, nil)}
}

func (s *scanner) declare(node *sitter.Node) {
	if node == nil {
		return
	}
	s.current.declared.Add(info.Identifier(node.Content(s.source)))
}

func (s *scanner) use(node *sitter.Node) {
	if node == nil {
		return
	}
	id := info.Identifier(node.Content(s.source))
	if id == "" || id == "var" || s.current.resolvable(id) {
		return
	}
	s.current.unresolved.Add(id)
}

func (s *scanner) open(c *class) {
	s.current = newScope(s.current, c)
}

func (s *scanner) close() {
	closing := s.current
	parent := closing.parent
	if closing.class == nil {
		parent.unresolved.AddAll(closing.unresolved.Difference(closing.declared))
	}
	for _, ext := range closing.pending {
		ext.unresolved = ext.unresolved.Difference(closing.declared)
		s.extend(ext)
		if ext.done() {
			parent.unresolved.AddAll(ext.unresolved)
			continue
		}
		parent.pending = append(parent.pending, ext)
	}
	s.current = parent
}

// finish settles top level classes, classes still missing a parent become orphans
func (s *scanner) finish() info.IdentifierSet {
	root := s.current
	for _, ext := range root.pending {
		ext.unresolved = ext.unresolved.Difference(root.declared)
		s.extend(ext)
		if ext.done() {
			root.unresolved.AddAll(ext.unresolved)
			continue
		}
		s.orphans = append(s.orphans, ext)
	}
	root.pending = nil
	return root.unresolved.Difference(root.declared)
}

func (s *scanner) lookup(selector info.Selector, self *class) *class {
	for _, c := range s.classes {
		if c != self && c.name.EndsWith(selector) {
			return c
		}
	}
	return nil
}

// extend absorbs members of superclasses declared in the file
func (s *scanner) extend(ext *extender) {
	for !ext.done() {
		parent := s.lookup(ext.parent, ext.class)
		if parent == nil || !parent.closed {
			return
		}
		if ext.visited[parent] {
			ext.parent = info.Selector{}
			return
		}
		ext.visited[parent] = true
		ext.unresolved = ext.unresolved.Difference(parent.members)
		ext.parent = parent.extends
		if ext.parent.IsZero() && parent.inheritsObject() {
			ext.unresolved = ext.unresolved.Difference(info.JavaLangObject.Declarations())
		}
	}
}

func (s *scanner) visitChildren(node *sitter.Node) {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		s.visit(node.NamedChild(i))
	}
}

func (s *scanner) visitExcept(node *sitter.Node, skip *sitter.Node) {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if skip != nil && sameNode(child, skip) {
			continue
		}
		s.visit(child)
	}
}

func (s *scanner) withScope(fn func()) {
	s.open(nil)
	fn()
	s.close()
}

func (s *scanner) visit(node *sitter.Node) {
	if node == nil {
		return
	}
	switch node.Type() {
	case "package_declaration", "import_declaration", "module_declaration", "line_comment", "block_comment",
		"break_statement", "continue_statement", "this", "super":
	case "identifier", "type_identifier":
		s.use(node)
	case "class_declaration", "interface_declaration", "enum_declaration", "record_declaration", "annotation_type_declaration":
		s.visitClass(node)
	case "method_declaration", "constructor_declaration", "compact_constructor_declaration":
		s.visitMethod(node)
	case "annotation_type_element_declaration":
		name := node.ChildByFieldName("name")
		s.declare(name)
		s.visitExcept(node, name)
	case "block", "constructor_body", "switch_block", "for_statement", "catch_clause", "try_with_resources_statement", "class_body":
		s.withScope(func() { s.visitChildren(node) })
	case "enhanced_for_statement":
		s.withScope(func() { s.visitDeclaring(node) })
	case "lambda_expression":
		s.withScope(func() {
			params := node.ChildByFieldName("parameters")
			if params != nil && params.Type() == "identifier" {
				s.declare(params)
			} else {
				s.visit(params)
			}
			s.visit(node.ChildByFieldName("body"))
		})
	case "inferred_parameters":
		for i := 0; i < int(node.NamedChildCount()); i++ {
			s.declare(node.NamedChild(i))
		}
	case "variable_declarator", "formal_parameter", "catch_formal_parameter", "resource", "instanceof_expression", "enum_constant":
		s.visitDeclaring(node)
	case "spread_parameter":
		s.visitChildren(node)
	case "type_parameter":
		for i := 0; i < int(node.NamedChildCount()); i++ {
			child := node.NamedChild(i)
			if child.Type() == "type_identifier" {
				s.declare(child)
				continue
			}
			s.visit(child)
		}
	case "field_access":
		s.visit(node.ChildByFieldName("object"))
	case "method_invocation":
		if object := node.ChildByFieldName("object"); object != nil {
			s.visit(object)
		} else {
			s.use(node.ChildByFieldName("name"))
		}
		s.visit(node.ChildByFieldName("type_arguments"))
		s.visit(node.ChildByFieldName("arguments"))
	case "scoped_type_identifier", "scoped_identifier", "method_reference":
		if node.NamedChildCount() > 0 {
			s.visit(node.NamedChild(0))
		}
	case "marker_annotation", "annotation":
		s.visit(node.ChildByFieldName("name"))
	case "labeled_statement", "switch_label":
		for i := 0; i < int(node.NamedChildCount()); i++ {
			if child := node.NamedChild(i); child.Type() != "identifier" {
				s.visit(child)
			}
		}
	default:
		s.visitChildren(node)
	}
}

// visitDeclaring declares the node name then visits everything else
func (s *scanner) visitDeclaring(node *sitter.Node) {
	name := node.ChildByFieldName("name")
	if name != nil && name.Type() == "identifier" {
		s.declare(name)
		s.visitExcept(node, name)
		return
	}
	s.visitChildren(node)
}

func (s *scanner) visitMethod(node *sitter.Node) {
	name := node.ChildByFieldName("name")
	s.declare(name)
	s.withScope(func() {
		for i := 0; i < int(node.NamedChildCount()); i++ {
			if child := node.NamedChild(i); child.Type() == "type_parameters" {
				s.visit(child)
			}
		}
		for i := 0; i < int(node.NamedChildCount()); i++ {
			child := node.NamedChild(i)
			if (name != nil && sameNode(child, name)) || child.Type() == "type_parameters" {
				continue
			}
			s.visit(child)
		}
	})
}

func (s *scanner) visitClass(node *sitter.Node) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	name := info.Identifier(nameNode.Content(s.source))
	s.declare(nameNode)
	s.path = append(s.path, name)
	c := &class{name: info.NewSelector(s.path...), kind: node.Type(), topLevel: len(s.path) == 1}
	s.classes = append(s.classes, c)

	// the superclass is a use of the enclosing scope, it needs an import like any other type
	superclass := node.ChildByFieldName("superclass")
	if superclass != nil && superclass.NamedChildCount() > 0 {
		parentType := superclass.NamedChild(0)
		c.extends, _ = typeSelector(parentType, s.source)
		s.visit(parentType)
	}

	s.open(c)
	body := node.ChildByFieldName("body")
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if sameNode(child, nameNode) || (superclass != nil && sameNode(child, superclass)) || (body != nil && sameNode(child, body)) {
			continue
		}
		s.visit(child)
	}
	if body != nil {
		s.visitBody(body)
	}
	s.closeClass(c)
	s.path = s.path[:len(s.path)-1]
}

// visitBody visits class members directly in the class scope
func (s *scanner) visitBody(body *sitter.Node) {
	for i := 0; i < int(body.NamedChildCount()); i++ {
		child := body.NamedChild(i)
		if child.Type() == "enum_body_declarations" {
			s.visitBody(child)
			continue
		}
		s.visit(child)
	}
}

func (s *scanner) closeClass(c *class) {
	current := s.current
	c.members = current.declared.Clone()
	c.closed = true
	ext := &extender{
		class:      c,
		unresolved: current.unresolved.Difference(current.declared),
		parent:     c.extends,
		visited:    map[*class]bool{},
	}
	if ext.parent.IsZero() && c.inheritsObject() {
		ext.unresolved = ext.unresolved.Difference(info.JavaLangObject.Declarations())
	}
	current.pending = append(current.pending, ext)
	s.close()
}

func sameNode(a, b *sitter.Node) bool {
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}
