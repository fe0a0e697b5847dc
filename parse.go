// Package lispy parses and evaluates one-line integer s-expressions such as
// (+ 1 (* 2 3)).
package lispy

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
)

type NodeType int

const (
	NodeProgram NodeType = iota
	NodeNumber
	NodeOperator
	NodeGroup
)

var nodeTypeNames = [...]string{
	NodeProgram:  "program",
	NodeNumber:   "number",
	NodeOperator: "operator",
	NodeGroup:    "group",
}

func (t NodeType) String() string {
	if t < 0 || int(t) >= len(nodeTypeNames) {
		return fmt.Sprintf("NodeType(%d)", int(t))
	}
	return nodeTypeNames[t]
}

// Node is a syntax tree node. Each child is owned by exactly one parent.
type Node struct {
	t        NodeType
	v        string
	col      int
	children []*Node
}

func NewNumber(text string) *Node {
	return &Node{t: NodeNumber, v: text}
}

func NewOperator(symbol string) *Node {
	return &Node{t: NodeOperator, v: symbol}
}

func NewGroup(children ...*Node) *Node {
	return &Node{t: NodeGroup, children: children}
}

func NewProgram(children ...*Node) *Node {
	return &Node{t: NodeProgram, children: children}
}

func (n *Node) Type() NodeType {
	return n.t
}

// Text returns the raw text of a number or operator leaf.
func (n *Node) Text() string {
	return n.v
}

// Column returns the 1-based column the node starts at, or 0 for nodes
// that were not produced by the parser.
func (n *Node) Column() int {
	return n.col
}

func (n *Node) Children() []*Node {
	return n.children
}

type Parser struct {
	grammar *participle.Parser[program]
}

func NewParser() *Parser {
	return &Parser{grammar: lispyGrammar}
}

var defaultParser = NewParser()

// Parse parses a single input line read from standard input.
func Parse(line string) (*Node, error) {
	return defaultParser.ParseString("<stdin>", line)
}

// ParseString parses line. Errors are always of type *ParseError.
func (p *Parser) ParseString(filename, line string) (*Node, error) {
	ast, err := p.grammar.ParseString(filename, line)
	if err != nil {
		return nil, newParseError(filename, err)
	}

	root := &Node{t: NodeProgram, col: 1}
	for _, e := range ast.Evaluands {
		n := e.node()
		if n.t == NodeGroup && len(n.children) == 1 && n.children[0].t == NodeOperator {
			return nil, &ParseError{
				Filename: filename,
				Line:     e.Pos.Line,
				Column:   n.col,
				Message:  fmt.Sprintf("operator %q has no operands", n.children[0].v),
			}
		}
		root.children = append(root.children, n)
	}
	return root, nil
}

func newParseError(filename string, err error) *ParseError {
	var perr participle.Error
	if errors.As(err, &perr) {
		pos := perr.Position()
		return &ParseError{
			Filename: filename,
			Line:     pos.Line,
			Column:   pos.Column,
			Message:  perr.Message(),
		}
	}
	return &ParseError{
		Filename: filename,
		Line:     1,
		Column:   1,
		Message:  err.Error(),
	}
}

func (e *evaluand) node() *Node {
	if e.Number != nil {
		return &Node{t: NodeNumber, v: *e.Number, col: e.Pos.Column}
	}
	n := &Node{t: NodeGroup, col: e.Form.Pos.Column}
	for _, child := range e.Form.Exprs {
		n.children = append(n.children, child.node())
	}
	return n
}

func (o *operator) node() *Node {
	return &Node{t: NodeOperator, v: o.Symbol, col: o.Pos.Column}
}

func (e *expr) node() *Node {
	switch {
	case e.Number != nil:
		return &Node{t: NodeNumber, v: *e.Number, col: e.Pos.Column}
	case e.Operator != nil:
		return e.Operator.node()
	}
	n := &Node{t: NodeGroup, col: e.Group.Pos.Column}
	for _, child := range e.Group.Exprs {
		n.children = append(n.children, child.node())
	}
	return n
}

// String prints the tree back as s-expression text.
func (n *Node) String() string {
	if n == nil {
		return ""
	}
	var buf bytes.Buffer
	switch n.t {
	case NodeProgram:
		for i, child := range n.children {
			if i > 0 {
				buf.WriteByte(' ')
			}
			buf.WriteString(child.String())
		}
	case NodeGroup:
		buf.WriteByte('(')
		for i, child := range n.children {
			if i > 0 {
				buf.WriteByte(' ')
			}
			buf.WriteString(child.String())
		}
		buf.WriteByte(')')
	default:
		buf.WriteString(n.v)
	}
	return buf.String()
}

// Tree returns an indented listing of the tree, one node per line with its
// tag, starting column and contents.
func (n *Node) Tree() string {
	var buf bytes.Buffer
	n.writeTree(&buf, 0)
	return buf.String()
}

func (n *Node) writeTree(buf *bytes.Buffer, depth int) {
	if n == nil {
		return
	}
	buf.WriteString(strings.Repeat("  ", depth))
	switch n.t {
	case NodeProgram:
		buf.WriteString(n.t.String())
	case NodeGroup:
		fmt.Fprintf(buf, "%v:%d", n.t, n.col)
	default:
		fmt.Fprintf(buf, "%v:%d '%s'", n.t, n.col, n.v)
	}
	buf.WriteByte('\n')
	for _, child := range n.children {
		child.writeTree(buf, depth+1)
	}
}
