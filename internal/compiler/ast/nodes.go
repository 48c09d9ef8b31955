package ast

import (
	"github.com/natalie-lang/natalie-sub003/internal/compiler/lexer"
	"github.com/natalie-lang/natalie-sub003/internal/compiler/sexp"
)

func newBase(t NodeType, tok lexer.Token) base { return base{typ: t, tok: tok} }

// AliasNode represents `alias new_name existing_name`.
type AliasNode struct {
	base
	NewName, ExistingName Node
}

func NewAlias(tok lexer.Token, newName, existingName Node) *AliasNode {
	return &AliasNode{newBase(Alias, tok), newName, existingName}
}
func (n *AliasNode) ToSexp() *sexp.Sexp {
	return sexp.New("alias", sexpOrNil(n.NewName), sexpOrNil(n.ExistingName))
}

// ArgNode represents a single method parameter, covering required,
// optional (with Default), splat, keyword, keyword-splat, and block forms.
type ArgNode struct {
	base
	Name            string
	Default         Node
	Splat, KwSplat  bool
	Block, Keyword  bool
}

func NewArg(tok lexer.Token, name string) *ArgNode {
	return &ArgNode{base: newBase(Arg, tok), Name: name}
}
func (n *ArgNode) ToSexp() *sexp.Sexp {
	s := sexp.New("arg", n.Name)
	if n.Default != nil {
		s.Push(n.Default.ToSexp())
	}
	return s
}

// ArrayNode represents an array literal `[a, b, c]`.
type ArrayNode struct {
	base
	Items []Node
}

func NewArray(tok lexer.Token, items []Node) *ArrayNode {
	return &ArrayNode{newBase(Array, tok), items}
}
func (n *ArrayNode) ToSexp() *sexp.Sexp {
	return &sexp.Sexp{Head: "array", Items: nodesToItems(n.Items)}
}

// ArrayPatternNode represents `in [a, b, *rest]` pattern matching.
type ArrayPatternNode struct {
	base
	Items []Node
	Splat Node
}

func NewArrayPattern(tok lexer.Token, items []Node, splat Node) *ArrayPatternNode {
	return &ArrayPatternNode{newBase(ArrayPattern, tok), items, splat}
}
func (n *ArrayPatternNode) ToSexp() *sexp.Sexp {
	s := &sexp.Sexp{Head: "array_pattern", Items: nodesToItems(n.Items)}
	if n.Splat != nil {
		s.Push(n.Splat.ToSexp())
	}
	return s
}

// AssignmentNode represents `target = value`.
type AssignmentNode struct {
	base
	Target, Value Node
}

func NewAssignment(tok lexer.Token, target, value Node) *AssignmentNode {
	return &AssignmentNode{newBase(Assignment, tok), target, value}
}
func (n *AssignmentNode) ToSexp() *sexp.Sexp {
	return sexp.New("asgn", sexpOrNil(n.Target), sexpOrNil(n.Value))
}

// BeginNode represents a `begin ... end` block, optionally with
// rescue/else/ensure clauses attached.
type BeginNode struct {
	base
	Body, ElseBody, EnsureBody []Node
	RescueNodes                []*BeginRescueNode
}

func NewBegin(tok lexer.Token) *BeginNode { return &BeginNode{base: newBase(Begin, tok)} }
func (n *BeginNode) ToSexp() *sexp.Sexp {
	s := sexp.New("begin", &sexp.Sexp{Head: "body", Items: nodesToItems(n.Body)})
	for _, r := range n.RescueNodes {
		s.Push(r.ToSexp())
	}
	if len(n.ElseBody) > 0 {
		s.Push(&sexp.Sexp{Head: "else", Items: nodesToItems(n.ElseBody)})
	}
	if len(n.EnsureBody) > 0 {
		s.Push(&sexp.Sexp{Head: "ensure", Items: nodesToItems(n.EnsureBody)})
	}
	return s
}

// BeginRescueNode represents a single `rescue Exception => name` clause.
type BeginRescueNode struct {
	base
	Exceptions []Node
	Name       Node
	Body       []Node
}

func NewBeginRescue(tok lexer.Token) *BeginRescueNode {
	return &BeginRescueNode{base: newBase(BeginRescue, tok)}
}
func (n *BeginRescueNode) ToSexp() *sexp.Sexp {
	s := sexp.New("resbody", &sexp.Sexp{Head: "exceptions", Items: nodesToItems(n.Exceptions)})
	if n.Name != nil {
		s.Push(n.Name.ToSexp())
	}
	s.Push(&sexp.Sexp{Head: "body", Items: nodesToItems(n.Body)})
	return s
}

// NameToNode synthesizes the `$! -> name` assignment implied by a rescue
// clause that binds a name. The parser records the name in Name and does not
// insert this node into the rescue body.
func (n *BeginRescueNode) NameToNode() Node {
	return NewAssignment(n.tok, n.Name, NewIdentifier(n.tok, "$!", false))
}

// BlockNode represents an ordered sequence of statements: a method body, a
// program body, a begin/if/while body, etc.
type BlockNode struct {
	base
	Statements []Node
}

func NewBlock(tok lexer.Token, statements []Node) *BlockNode {
	return &BlockNode{newBase(Block, tok), statements}
}
func (n *BlockNode) ToSexp() *sexp.Sexp {
	if len(n.Statements) == 1 {
		return n.Statements[0].ToSexp()
	}
	return &sexp.Sexp{Head: "block", Items: nodesToItems(n.Statements)}
}

// BlockPassNode represents `&block` in an argument list.
type BlockPassNode struct {
	base
	Value Node
}

func NewBlockPass(tok lexer.Token, value Node) *BlockPassNode {
	return &BlockPassNode{newBase(BlockPass, tok), value}
}
func (n *BlockPassNode) ToSexp() *sexp.Sexp { return sexp.New("block_pass", sexpOrNil(n.Value)) }

// BreakNode represents `break` or `break value`.
type BreakNode struct {
	base
	Value Node
}

func NewBreak(tok lexer.Token, value Node) *BreakNode { return &BreakNode{newBase(Break, tok), value} }
func (n *BreakNode) ToSexp() *sexp.Sexp {
	if n.Value == nil {
		return sexp.New("break")
	}
	return sexp.New("break", n.Value.ToSexp())
}

// CallNode represents a method call `receiver.message(args) { block }`.
// Receiver is nil for an implicit-self call.
type CallNode struct {
	base
	Receiver Node
	Message  string
	Args     []Node
	Block    *IterNode
}

func NewCall(tok lexer.Token, receiver Node, message string, args []Node) *CallNode {
	return &CallNode{base: newBase(Call, tok), Receiver: receiver, Message: message, Args: args}
}
func (n *CallNode) ToSexp() *sexp.Sexp {
	s := sexp.New("call", sexpOrNil(n.Receiver), n.Message)
	for _, a := range n.Args {
		s.Push(a.ToSexp())
	}
	return s
}

// CaseNode represents `case subject; when ...; else ...; end`.
type CaseNode struct {
	base
	Subject Node
	Whens   []*CaseWhenNode
	Else    []Node
}

func NewCase(tok lexer.Token, subject Node) *CaseNode {
	return &CaseNode{base: newBase(Case, tok), Subject: subject}
}
func (n *CaseNode) ToSexp() *sexp.Sexp {
	s := sexp.New("case", sexpOrNil(n.Subject))
	for _, w := range n.Whens {
		s.Push(w.ToSexp())
	}
	if len(n.Else) == 1 {
		s.Push(n.Else[0].ToSexp())
	} else if len(n.Else) > 1 {
		s.Push(&sexp.Sexp{Head: "block", Items: nodesToItems(n.Else)})
	}
	return s
}

// CaseInNode represents the pattern-matching form `case subject; in pattern`.
type CaseInNode struct {
	base
	Subject  Node
	Patterns []Node // each a guarded (pattern, body) pair via CaseWhenNode
	Else     []Node
}

func NewCaseIn(tok lexer.Token, subject Node) *CaseInNode {
	return &CaseInNode{base: newBase(CaseIn, tok), Subject: subject}
}
func (n *CaseInNode) ToSexp() *sexp.Sexp {
	s := sexp.New("case_in", sexpOrNil(n.Subject))
	for _, p := range n.Patterns {
		s.Push(p.ToSexp())
	}
	if len(n.Else) > 0 {
		s.Push(&sexp.Sexp{Head: "else", Items: nodesToItems(n.Else)})
	}
	return s
}

// CaseWhenNode represents one `when cond1, cond2 then body` clause.
type CaseWhenNode struct {
	base
	Conditions []Node
	Body       []Node
}

func NewCaseWhen(tok lexer.Token, conditions, body []Node) *CaseWhenNode {
	return &CaseWhenNode{newBase(CaseWhen, tok), conditions, body}
}
func (n *CaseWhenNode) ToSexp() *sexp.Sexp {
	s := sexp.New("when", &sexp.Sexp{Head: "conditions", Items: nodesToItems(n.Conditions)})
	s.Push(&sexp.Sexp{Head: "body", Items: nodesToItems(n.Body)})
	return s
}

// ClassNode represents `class Name < Superclass ... end`.
type ClassNode struct {
	base
	Name       Node
	Superclass Node
	Body       []Node
}

func NewClass(tok lexer.Token, name, superclass Node, body []Node) *ClassNode {
	return &ClassNode{newBase(Class, tok), name, superclass, body}
}
func (n *ClassNode) ToSexp() *sexp.Sexp {
	return sexp.New("class", sexpOrNil(n.Name), sexpOrNil(n.Superclass),
		&sexp.Sexp{Head: "body", Items: nodesToItems(n.Body)})
}

// Colon2Node represents `Owner::Name` where Owner is itself an expression.
type Colon2Node struct {
	base
	Owner Node
	Name  string
}

func NewColon2(tok lexer.Token, owner Node, name string) *Colon2Node {
	return &Colon2Node{newBase(Colon2, tok), owner, name}
}
func (n *Colon2Node) ToSexp() *sexp.Sexp { return sexp.New("colon2", sexpOrNil(n.Owner), n.Name) }

// Colon3Node represents `::Name`, a top-level constant lookup.
type Colon3Node struct {
	base
	Name string
}

func NewColon3(tok lexer.Token, name string) *Colon3Node {
	return &Colon3Node{newBase(Colon3, tok), name}
}
func (n *Colon3Node) ToSexp() *sexp.Sexp { return sexp.New("colon3", n.Name) }

// ConstantNode represents a bare constant reference `Name`.
type ConstantNode struct {
	base
	Name string
}

func NewConstant(tok lexer.Token, name string) *ConstantNode {
	return &ConstantNode{newBase(Constant, tok), name}
}
func (n *ConstantNode) ToSexp() *sexp.Sexp { return sexp.New("const", n.Name) }

// DefNode represents `def name(params) ... end`, with SelfReceiver set for
// `def self.name`.
type DefNode struct {
	base
	Name         string
	SelfReceiver bool
	Params       []*ArgNode
	Body         []Node
}

func NewDef(tok lexer.Token, name string, params []*ArgNode, body []Node) *DefNode {
	return &DefNode{base: newBase(Def, tok), Name: name, Params: params, Body: body}
}
func (n *DefNode) ToSexp() *sexp.Sexp {
	params := make([]interface{}, len(n.Params))
	for i, p := range n.Params {
		params[i] = p.ToSexp()
	}
	head := "def"
	if n.SelfReceiver {
		head = "defs"
	}
	return sexp.New(head, n.Name, &sexp.Sexp{Head: "args", Items: params},
		&sexp.Sexp{Head: "body", Items: nodesToItems(n.Body)})
}

// DefinedNode represents `defined?(expr)`.
type DefinedNode struct {
	base
	Value Node
}

func NewDefined(tok lexer.Token, value Node) *DefinedNode {
	return &DefinedNode{newBase(Defined, tok), value}
}
func (n *DefinedNode) ToSexp() *sexp.Sexp { return sexp.New("defined", sexpOrNil(n.Value)) }

// EvaluateToStringNode represents the `#{...}` body inside an interpolated
// literal: a statement sequence whose final value is converted to a string.
type EvaluateToStringNode struct {
	base
	Body []Node
}

func NewEvaluateToString(tok lexer.Token, body []Node) *EvaluateToStringNode {
	return &EvaluateToStringNode{newBase(EvaluateToString, tok), body}
}
func (n *EvaluateToStringNode) ToSexp() *sexp.Sexp {
	return &sexp.Sexp{Head: "evstr", Items: nodesToItems(n.Body)}
}

// FalseNode represents the `false` literal.
type FalseNode struct{ base }

func NewFalse(tok lexer.Token) *FalseNode   { return &FalseNode{newBase(False, tok)} }
func (n *FalseNode) ToSexp() *sexp.Sexp     { return sexp.New("false") }

// FloatNode represents a floating point literal.
type FloatNode struct {
	base
	Value float64
}

func NewFloat(tok lexer.Token, value float64) *FloatNode {
	return &FloatNode{newBase(Float, tok), value}
}
func (n *FloatNode) ToSexp() *sexp.Sexp { return sexp.New("lit", n.Value) }

// HashNode represents a hash literal `{ k1 => v1, k2 => v2 }`. Keys and
// Values are parallel slices rather than a HashPair node, matching how the
// original parser builds the hash sexp directly from two arrays.
type HashNode struct {
	base
	Keys, Values []Node
}

func NewHash(tok lexer.Token, keys, values []Node) *HashNode {
	return &HashNode{newBase(Hash, tok), keys, values}
}
func (n *HashNode) ToSexp() *sexp.Sexp {
	s := &sexp.Sexp{Head: "hash"}
	for i := range n.Keys {
		s.Push(sexpOrNil(n.Keys[i]))
		s.Push(sexpOrNil(n.Values[i]))
	}
	return s
}

// HashPatternNode represents `in {key:, **rest}` pattern matching.
type HashPatternNode struct {
	base
	Keys   []string
	Values []Node
	Rest   Node
}

func NewHashPattern(tok lexer.Token, keys []string, values []Node, rest Node) *HashPatternNode {
	return &HashPatternNode{newBase(HashPattern, tok), keys, values, rest}
}
func (n *HashPatternNode) ToSexp() *sexp.Sexp {
	s := sexp.New("hash_pattern")
	for i, k := range n.Keys {
		s.Push(k)
		s.Push(sexpOrNil(n.Values[i]))
	}
	if n.Rest != nil {
		s.Push(n.Rest.ToSexp())
	}
	return s
}

// IdentifierNode represents a bare name: a local variable reference if
// IsLocal, otherwise a parenthesis-less method call. Per-scope
// local-variable tracking decides which at parse time.
type IdentifierNode struct {
	base
	Name    string
	IsLocal bool
}

func NewIdentifier(tok lexer.Token, name string, isLocal bool) *IdentifierNode {
	return &IdentifierNode{newBase(Identifier, tok), name, isLocal}
}
func (n *IdentifierNode) ToSexp() *sexp.Sexp {
	if n.IsLocal {
		return sexp.New("lvar", n.Name)
	}
	return sexp.New("call", nil, n.Name)
}

// IfNode represents `if cond; then_body; else else_body; end` (and `unless`,
// which the parser builds with the condition wrapped in a NotNode).
type IfNode struct {
	base
	Condition  Node
	Then, Else []Node
}

func NewIf(tok lexer.Token, condition Node, then, els []Node) *IfNode {
	return &IfNode{newBase(If, tok), condition, then, els}
}
func (n *IfNode) ToSexp() *sexp.Sexp {
	s := sexp.New("if", sexpOrNil(n.Condition),
		&sexp.Sexp{Head: "then", Items: nodesToItems(n.Then)})
	if len(n.Else) > 0 {
		s.Push(&sexp.Sexp{Head: "else", Items: nodesToItems(n.Else)})
	}
	return s
}

// IntegerNode represents an integer literal.
type IntegerNode struct {
	base
	Value int64
}

func NewInteger(tok lexer.Token, value int64) *IntegerNode {
	return &IntegerNode{newBase(Integer, tok), value}
}
func (n *IntegerNode) ToSexp() *sexp.Sexp { return sexp.New("lit", n.Value) }

// IterNode attaches a block (`do...end` or `{...}`) to the call it follows.
type IterNode struct {
	base
	Call   Node
	Params []*ArgNode
	Body   []Node
}

func NewIter(tok lexer.Token, call Node, params []*ArgNode, body []Node) *IterNode {
	return &IterNode{base: newBase(Iter, tok), Call: call, Params: params, Body: body}
}
func (n *IterNode) ToSexp() *sexp.Sexp {
	params := make([]interface{}, len(n.Params))
	for i, p := range n.Params {
		params[i] = p.ToSexp()
	}
	return sexp.New("iter", sexpOrNil(n.Call), &sexp.Sexp{Head: "args", Items: params},
		&sexp.Sexp{Head: "body", Items: nodesToItems(n.Body)})
}

// InterpolatedRegexpNode represents a regexp literal containing `#{}`.
type InterpolatedRegexpNode struct {
	base
	Segments []Node
	Options  string
}

func NewInterpolatedRegexp(tok lexer.Token, segments []Node, options string) *InterpolatedRegexpNode {
	return &InterpolatedRegexpNode{newBase(InterpolatedRegexp, tok), segments, options}
}
func (n *InterpolatedRegexpNode) ToSexp() *sexp.Sexp {
	return &sexp.Sexp{Head: "dregx", Items: nodesToItems(n.Segments)}
}

// InterpolatedShellNode represents a backtick literal containing `#{}`.
type InterpolatedShellNode struct {
	base
	Segments []Node
}

func NewInterpolatedShell(tok lexer.Token, segments []Node) *InterpolatedShellNode {
	return &InterpolatedShellNode{newBase(InterpolatedShell, tok), segments}
}
func (n *InterpolatedShellNode) ToSexp() *sexp.Sexp {
	return &sexp.Sexp{Head: "dxstr", Items: nodesToItems(n.Segments)}
}

// InterpolatedStringNode represents a double-quoted literal containing `#{}`.
type InterpolatedStringNode struct {
	base
	Segments []Node
}

func NewInterpolatedString(tok lexer.Token, segments []Node) *InterpolatedStringNode {
	return &InterpolatedStringNode{newBase(InterpolatedString, tok), segments}
}
func (n *InterpolatedStringNode) ToSexp() *sexp.Sexp {
	return &sexp.Sexp{Head: "dstr", Items: nodesToItems(n.Segments)}
}

// KeywordArgNode represents `name: value` in a call's argument list.
type KeywordArgNode struct {
	base
	Name  string
	Value Node
}

func NewKeywordArg(tok lexer.Token, name string, value Node) *KeywordArgNode {
	return &KeywordArgNode{newBase(KeywordArg, tok), name, value}
}
func (n *KeywordArgNode) ToSexp() *sexp.Sexp { return sexp.New("kwarg", n.Name, sexpOrNil(n.Value)) }

// KeywordSplatNode represents `**opts` in a call's argument list.
type KeywordSplatNode struct {
	base
	Value Node
}

func NewKeywordSplat(tok lexer.Token, value Node) *KeywordSplatNode {
	return &KeywordSplatNode{newBase(KeywordSplat, tok), value}
}
func (n *KeywordSplatNode) ToSexp() *sexp.Sexp { return sexp.New("kwsplat", sexpOrNil(n.Value)) }

// LogicalAndNode represents `left && right` (and `and`).
type LogicalAndNode struct {
	base
	Left, Right Node
}

func NewLogicalAnd(tok lexer.Token, left, right Node) *LogicalAndNode {
	return &LogicalAndNode{newBase(LogicalAnd, tok), left, right}
}
func (n *LogicalAndNode) ToSexp() *sexp.Sexp {
	return sexp.New("and", sexpOrNil(n.Left), sexpOrNil(n.Right))
}

// LogicalOrNode represents `left || right` (and `or`).
type LogicalOrNode struct {
	base
	Left, Right Node
}

func NewLogicalOr(tok lexer.Token, left, right Node) *LogicalOrNode {
	return &LogicalOrNode{newBase(LogicalOr, tok), left, right}
}
func (n *LogicalOrNode) ToSexp() *sexp.Sexp {
	return sexp.New("or", sexpOrNil(n.Left), sexpOrNil(n.Right))
}

// MatchNode represents `regexp =~ arg` specifically, which (unlike a
// regular call) can introduce new local variables from named captures.
type MatchNode struct {
	base
	Regexp, Arg Node
}

func NewMatch(tok lexer.Token, regexp, arg Node) *MatchNode {
	return &MatchNode{newBase(Match, tok), regexp, arg}
}
func (n *MatchNode) ToSexp() *sexp.Sexp {
	return sexp.New("match", sexpOrNil(n.Regexp), sexpOrNil(n.Arg))
}

// ModuleNode represents `module Name ... end`.
type ModuleNode struct {
	base
	Name Node
	Body []Node
}

func NewModule(tok lexer.Token, name Node, body []Node) *ModuleNode {
	return &ModuleNode{newBase(Module, tok), name, body}
}
func (n *ModuleNode) ToSexp() *sexp.Sexp {
	return sexp.New("module", sexpOrNil(n.Name), &sexp.Sexp{Head: "body", Items: nodesToItems(n.Body)})
}

// MultipleAssignmentNode represents `a, b, *c = value`.
type MultipleAssignmentNode struct {
	base
	Targets []Node
	Value   Node
}

func NewMultipleAssignment(tok lexer.Token, targets []Node, value Node) *MultipleAssignmentNode {
	return &MultipleAssignmentNode{newBase(MultipleAssignment, tok), targets, value}
}
func (n *MultipleAssignmentNode) ToSexp() *sexp.Sexp {
	s := &sexp.Sexp{Head: "masgn", Items: nodesToItems(n.Targets)}
	if n.Value != nil {
		s.Push(n.Value.ToSexp())
	}
	return s
}

// AddLocals walks each assignment target and registers any identifiers it
// binds into locals.
func (n *MultipleAssignmentNode) AddLocals(locals map[string]bool) {
	for _, target := range n.Targets {
		addLocalsFromTarget(target, locals)
	}
}

func addLocalsFromTarget(target Node, locals map[string]bool) {
	switch t := target.(type) {
	case *IdentifierNode:
		locals[t.Name] = true
	case *SplatNode:
		if id, ok := t.Value.(*IdentifierNode); ok {
			locals[id.Name] = true
		}
	case *MultipleAssignmentNode:
		t.AddLocals(locals)
	case *CallNode, *Colon2Node, *Colon3Node:
		// not an identifier binding: a.b=, Foo::BAR, ::BAR are not new locals.
	}
}

// NextNode represents `next` or `next value`.
type NextNode struct {
	base
	Value Node
}

func NewNext(tok lexer.Token, value Node) *NextNode { return &NextNode{newBase(Next, tok), value} }
func (n *NextNode) ToSexp() *sexp.Sexp {
	if n.Value == nil {
		return sexp.New("next")
	}
	return sexp.New("next", n.Value.ToSexp())
}

// NilNode represents the `nil` literal.
type NilNode struct{ base }

func NewNil(tok lexer.Token) *NilNode { return &NilNode{newBase(Nil, tok)} }
func (n *NilNode) ToSexp() *sexp.Sexp { return sexp.New("nil") }

// NilSexpNode is a placeholder Node that serialises to nil. The parser does
// not produce it (empty bodies are empty slices).
type NilSexpNode struct{ base }

func NewNilSexp(tok lexer.Token) *NilSexpNode { return &NilSexpNode{newBase(NilSexp, tok)} }
func (n *NilSexpNode) ToSexp() *sexp.Sexp     { return nil }

// NotNode represents `!value` and `not value`.
type NotNode struct {
	base
	Value Node
}

func NewNot(tok lexer.Token, value Node) *NotNode { return &NotNode{newBase(Not, tok), value} }
func (n *NotNode) ToSexp() *sexp.Sexp             { return sexp.New("not", sexpOrNil(n.Value)) }

// OpAssignNode represents `target OP= value` for arithmetic/bitwise ops,
// e.g. `x += 1`.
type OpAssignNode struct {
	base
	Target Node
	Op     string
	Value  Node
}

func NewOpAssign(tok lexer.Token, target Node, op string, value Node) *OpAssignNode {
	return &OpAssignNode{newBase(OpAssign, tok), target, op, value}
}
func (n *OpAssignNode) ToSexp() *sexp.Sexp {
	return sexp.New("op_asgn", sexpOrNil(n.Target), n.Op, sexpOrNil(n.Value))
}

// OpAssignAccessorNode represents `receiver.message OP= value`, e.g.
// `obj.count += 1`.
type OpAssignAccessorNode struct {
	base
	Receiver Node
	Message  string
	Op       string
	Args     []Node
	Value    Node
}

func NewOpAssignAccessor(tok lexer.Token, receiver Node, message, op string, args []Node, value Node) *OpAssignAccessorNode {
	return &OpAssignAccessorNode{base: newBase(OpAssignAccessor, tok), Receiver: receiver, Message: message, Op: op, Args: args, Value: value}
}
func (n *OpAssignAccessorNode) ToSexp() *sexp.Sexp {
	return sexp.New("op_asgn_accessor", sexpOrNil(n.Receiver), n.Message, n.Op, sexpOrNil(n.Value))
}

// OpAssignAndNode represents `target &&= value`.
type OpAssignAndNode struct {
	base
	Target, Value Node
}

func NewOpAssignAnd(tok lexer.Token, target, value Node) *OpAssignAndNode {
	return &OpAssignAndNode{newBase(OpAssignAnd, tok), target, value}
}
func (n *OpAssignAndNode) ToSexp() *sexp.Sexp {
	return sexp.New("op_asgn_and", sexpOrNil(n.Target), sexpOrNil(n.Value))
}

// OpAssignOrNode represents `target ||= value`.
type OpAssignOrNode struct {
	base
	Target, Value Node
}

func NewOpAssignOr(tok lexer.Token, target, value Node) *OpAssignOrNode {
	return &OpAssignOrNode{newBase(OpAssignOr, tok), target, value}
}
func (n *OpAssignOrNode) ToSexp() *sexp.Sexp {
	return sexp.New("op_asgn_or", sexpOrNil(n.Target), sexpOrNil(n.Value))
}

// PinNode represents `^identifier` in a pattern-match, pinning the pattern
// to the variable's current value instead of rebinding it.
type PinNode struct {
	base
	Identifier Node
}

func NewPin(tok lexer.Token, identifier Node) *PinNode {
	return &PinNode{newBase(Pin, tok), identifier}
}
func (n *PinNode) ToSexp() *sexp.Sexp { return sexp.New("pin", sexpOrNil(n.Identifier)) }

// RangeNode represents `first..last` / `first...last`.
type RangeNode struct {
	base
	First, Last Node
	Exclusive   bool
}

func NewRange(tok lexer.Token, first, last Node, exclusive bool) *RangeNode {
	return &RangeNode{newBase(Range, tok), first, last, exclusive}
}
func (n *RangeNode) ToSexp() *sexp.Sexp {
	head := "irange"
	if n.Exclusive {
		head = "erange"
	}
	return sexp.New(head, sexpOrNil(n.First), sexpOrNil(n.Last))
}

// RegexpNode represents a non-interpolated regexp literal.
type RegexpNode struct {
	base
	Pattern, Options string
}

func NewRegexp(tok lexer.Token, pattern, options string) *RegexpNode {
	return &RegexpNode{newBase(Regexp, tok), pattern, options}
}
func (n *RegexpNode) ToSexp() *sexp.Sexp { return sexp.New("regexp", n.Pattern, n.Options) }

// ReturnNode represents `return` or `return value`.
type ReturnNode struct {
	base
	Value Node
}

func NewReturn(tok lexer.Token, value Node) *ReturnNode {
	return &ReturnNode{newBase(Return, tok), value}
}
func (n *ReturnNode) ToSexp() *sexp.Sexp {
	if n.Value == nil {
		return sexp.New("return")
	}
	return sexp.New("return", n.Value.ToSexp())
}

// SafeCallNode represents `receiver&.message(args)`.
type SafeCallNode struct {
	base
	Receiver Node
	Message  string
	Args     []Node
	Block    *IterNode
}

func NewSafeCall(tok lexer.Token, receiver Node, message string, args []Node) *SafeCallNode {
	return &SafeCallNode{base: newBase(SafeCall, tok), Receiver: receiver, Message: message, Args: args}
}
func (n *SafeCallNode) ToSexp() *sexp.Sexp {
	s := sexp.New("safe_call", sexpOrNil(n.Receiver), n.Message)
	for _, a := range n.Args {
		s.Push(a.ToSexp())
	}
	return s
}

// SclassNode represents `class << value ... end`, the singleton-class
// reopen form.
type SclassNode struct {
	base
	Value Node
	Body  []Node
}

func NewSclass(tok lexer.Token, value Node, body []Node) *SclassNode {
	return &SclassNode{newBase(Sclass, tok), value, body}
}
func (n *SclassNode) ToSexp() *sexp.Sexp {
	return sexp.New("sclass", sexpOrNil(n.Value), &sexp.Sexp{Head: "body", Items: nodesToItems(n.Body)})
}

// SelfNode represents the `self` keyword.
type SelfNode struct{ base }

func NewSelf(tok lexer.Token) *SelfNode { return &SelfNode{newBase(Self, tok)} }
func (n *SelfNode) ToSexp() *sexp.Sexp  { return sexp.New("self") }

// ShellNode represents a non-interpolated backtick literal.
type ShellNode struct {
	base
	Value string
}

func NewShell(tok lexer.Token, value string) *ShellNode {
	return &ShellNode{newBase(Shell, tok), value}
}
func (n *ShellNode) ToSexp() *sexp.Sexp { return sexp.New("xstr", n.Value) }

// SplatNode represents `*value` as an assignment target, e.g. in
// `a, *rest = list`.
type SplatNode struct {
	base
	Value Node
}

func NewSplat(tok lexer.Token, value Node) *SplatNode {
	return &SplatNode{newBase(Splat, tok), value}
}
func (n *SplatNode) ToSexp() *sexp.Sexp { return sexp.New("splat", sexpOrNil(n.Value)) }

// SplatValueNode represents `*value` used as a call argument or array
// element, expanding its contents rather than binding them.
type SplatValueNode struct {
	base
	Value Node
}

func NewSplatValue(tok lexer.Token, value Node) *SplatValueNode {
	return &SplatValueNode{newBase(SplatValue, tok), value}
}
func (n *SplatValueNode) ToSexp() *sexp.Sexp { return sexp.New("splat_value", sexpOrNil(n.Value)) }

// StabbyProcNode represents `->(params) { body }`.
type StabbyProcNode struct {
	base
	Params []*ArgNode
	Body   []Node
}

func NewStabbyProc(tok lexer.Token, params []*ArgNode, body []Node) *StabbyProcNode {
	return &StabbyProcNode{newBase(StabbyProc, tok), params, body}
}
func (n *StabbyProcNode) ToSexp() *sexp.Sexp {
	params := make([]interface{}, len(n.Params))
	for i, p := range n.Params {
		params[i] = p.ToSexp()
	}
	return sexp.New("stabby_proc", &sexp.Sexp{Head: "args", Items: params},
		&sexp.Sexp{Head: "body", Items: nodesToItems(n.Body)})
}

// StringNode represents a non-interpolated string literal.
type StringNode struct {
	base
	Value string
}

func NewString(tok lexer.Token, value string) *StringNode {
	return &StringNode{newBase(String, tok), value}
}
func (n *StringNode) ToSexp() *sexp.Sexp { return sexp.New("str", n.Value) }

// SuperNode represents `super(args)` / `super` (zsuper, no parens: forwards
// the enclosing method's own arguments, tracked via ParensUsed).
type SuperNode struct {
	base
	Args       []Node
	Block      *IterNode
	ParensUsed bool
}

func NewSuper(tok lexer.Token, args []Node, parensUsed bool) *SuperNode {
	return &SuperNode{base: newBase(Super, tok), Args: args, ParensUsed: parensUsed}
}
func (n *SuperNode) ToSexp() *sexp.Sexp {
	if !n.ParensUsed && len(n.Args) == 0 {
		return sexp.New("zsuper")
	}
	return &sexp.Sexp{Head: "super", Items: nodesToItems(n.Args)}
}

// SymbolNode represents a symbol literal `:name`.
type SymbolNode struct {
	base
	Name string
}

func NewSymbol(tok lexer.Token, name string) *SymbolNode {
	return &SymbolNode{newBase(Symbol, tok), name}
}
func (n *SymbolNode) ToSexp() *sexp.Sexp { return sexp.New("sym", n.Name) }

// ToArrayNode wraps a value to be implicitly coerced with to_a. The parser
// does not produce it: a multiple assignment keeps a single right-hand value
// as is, and gathers several comma-separated values into an ArrayNode.
type ToArrayNode struct {
	base
	Value Node
}

func NewToArray(tok lexer.Token, value Node) *ToArrayNode {
	return &ToArrayNode{newBase(ToArray, tok), value}
}
func (n *ToArrayNode) ToSexp() *sexp.Sexp { return sexp.New("to_ary", sexpOrNil(n.Value)) }

// TrueNode represents the `true` literal.
type TrueNode struct{ base }

func NewTrue(tok lexer.Token) *TrueNode { return &TrueNode{newBase(True, tok)} }
func (n *TrueNode) ToSexp() *sexp.Sexp  { return sexp.New("true") }

// UntilNode represents `until cond; body; end` (and the `begin...end until`
// post-check form, tracked via PreCheck).
type UntilNode struct {
	base
	Condition Node
	Body      []Node
	PreCheck  bool
}

func NewUntil(tok lexer.Token, condition Node, body []Node, preCheck bool) *UntilNode {
	return &UntilNode{newBase(Until, tok), condition, body, preCheck}
}
func (n *UntilNode) ToSexp() *sexp.Sexp {
	return sexp.New("until", sexpOrNil(n.Condition), &sexp.Sexp{Head: "body", Items: nodesToItems(n.Body)}, n.PreCheck)
}

// WhileNode represents `while cond; body; end` (and the post-check form).
type WhileNode struct {
	base
	Condition Node
	Body      []Node
	PreCheck  bool
}

func NewWhile(tok lexer.Token, condition Node, body []Node, preCheck bool) *WhileNode {
	return &WhileNode{newBase(While, tok), condition, body, preCheck}
}
func (n *WhileNode) ToSexp() *sexp.Sexp {
	return sexp.New("while", sexpOrNil(n.Condition), &sexp.Sexp{Head: "body", Items: nodesToItems(n.Body)}, n.PreCheck)
}

// YieldNode represents `yield` / `yield(args)`.
type YieldNode struct {
	base
	Args []Node
}

func NewYield(tok lexer.Token, args []Node) *YieldNode {
	return &YieldNode{newBase(Yield, tok), args}
}
func (n *YieldNode) ToSexp() *sexp.Sexp {
	return &sexp.Sexp{Head: "yield", Items: nodesToItems(n.Args)}
}
