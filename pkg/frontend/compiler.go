/******************************************************************************\
* The Ori Programming Language                                                 *
*                                                                              *
* Copyright 2023-2026 The Ori Authors                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package frontend

import (
	"strconv"

	"github.com/orilang/ori/pkg/bytecode"
	"github.com/orilang/ori/pkg/errs"
)

// precedence is a level in the expression precedence ladder, from lowest
// (precNone) to highest (precPrimary). Each infix operator's rule records the
// level it binds at.
type precedence int

const (
	precNone       precedence = iota
	precAssignment            // =
	precOr                    // or, ||
	precAnd                   // and, &&
	precEquality              // == !=
	precComparison            // < > <= >=
	precTerm                  // + -
	precFactor                // * /
	precUnary                 // ! -
	precCall                  // . ()
	precPrimary
)

// A parseFn compiles one expression form. canAssign tells whether an `=` seen
// right after the expression may be treated as an assignment; it is true only
// at assignment-or-lower precedence, which is what rejects `a + b = c` while
// accepting `a = b = c`.
type parseFn func(c *compiler, canAssign bool)

// A parseRule tells the Pratt parser what to do with a token: how to compile
// an expression starting with it (prefix), how to compile an infix expression
// whose left operand was followed by it (infix), and at which precedence the
// infix form binds.
type parseRule struct {
	prefix     parseFn
	infix      parseFn
	precedence precedence
}

// rules is the parse rule table, indexed by TokenKind. Filled in by init
// because the infix entries refer (through the parse functions) back to the
// table itself.
var rules [TokenKindCount]parseRule

func init() {
	rules[TokenKindLeftParen] = parseRule{prefix: (*compiler).grouping}
	rules[TokenKindMinus] = parseRule{prefix: (*compiler).unary, infix: (*compiler).binary, precedence: precTerm}
	rules[TokenKindPlus] = parseRule{infix: (*compiler).binary, precedence: precTerm}
	rules[TokenKindSlash] = parseRule{infix: (*compiler).binary, precedence: precFactor}
	rules[TokenKindStar] = parseRule{infix: (*compiler).binary, precedence: precFactor}
	rules[TokenKindBang] = parseRule{prefix: (*compiler).unary}
	rules[TokenKindBangEqual] = parseRule{infix: (*compiler).binary, precedence: precEquality}
	rules[TokenKindEqualEqual] = parseRule{infix: (*compiler).binary, precedence: precEquality}
	rules[TokenKindGreater] = parseRule{infix: (*compiler).binary, precedence: precComparison}
	rules[TokenKindGreaterEqual] = parseRule{infix: (*compiler).binary, precedence: precComparison}
	rules[TokenKindLess] = parseRule{infix: (*compiler).binary, precedence: precComparison}
	rules[TokenKindLessEqual] = parseRule{infix: (*compiler).binary, precedence: precComparison}
	rules[TokenKindIdentifier] = parseRule{prefix: (*compiler).variable}
	rules[TokenKindString] = parseRule{prefix: (*compiler).stringLiteral}
	rules[TokenKindNumber] = parseRule{prefix: (*compiler).number}
	rules[TokenKindFalse] = parseRule{prefix: (*compiler).literal}
	rules[TokenKindNull] = parseRule{prefix: (*compiler).literal}
	rules[TokenKindTrue] = parseRule{prefix: (*compiler).literal}
}

// getRule returns the parse rule for the given token kind. Token kinds
// without an explicit entry get the zero rule: no prefix, no infix, precNone.
func getRule(kind TokenKind) *parseRule {
	return &rules[kind]
}

// A compiler translates a token stream into bytecode, in a single pass: it is
// a Pratt parser whose parse functions emit instructions directly instead of
// building a syntax tree.
//
// A compiler is built for one Compile call and discarded; it is not
// reentrant.
type compiler struct {
	// scanner provides the token stream, one token at a time.
	scanner *Scanner

	// chunk is the Chunk receiving the compiled bytecode.
	chunk *bytecode.Chunk

	// heap interns the string and identifier constants the compiler creates.
	// Sharing it with the VM is what makes interning hold program-wide.
	heap *bytecode.Heap

	// previous and current are the two-token window the parser looks at.
	previous Token
	current  Token

	// errors collects everything reported so far.
	errors *errs.CompileTimeCollection

	// hadError is a sticky flag: set by the first error, never cleared.
	hadError bool

	// panicMode suppresses cascading error reports until the parser
	// resynchronizes at a statement boundary.
	panicMode bool
}

// Compile compiles source into chunk. String and identifier constants are
// interned through heap. On success returns nil; otherwise returns every
// error reported, in source order, and the chunk contents are meaningless.
func Compile(source string, chunk *bytecode.Chunk, heap *bytecode.Heap) *errs.CompileTimeCollection {
	c := &compiler{
		scanner: NewScanner(source),
		chunk:   chunk,
		heap:    heap,
		errors:  &errs.CompileTimeCollection{},
	}

	c.advance()

	for !c.match(TokenKindEOF) {
		c.declaration()
	}

	c.endCompiler()

	if c.hadError {
		return c.errors
	}
	return nil
}

//
// Error reporting
//

// errorAt reports an error at the given token. While in panic mode all
// reports are suppressed; the first report of a region enters panic mode.
func (c *compiler) errorAt(token Token, message string) {
	if c.panicMode {
		return
	}
	c.panicMode = true

	lexeme := ""
	atEnd := false
	switch token.Kind {
	case TokenKindEOF:
		atEnd = true
	case TokenKindError:
		// The message already tells the story; no lexeme to point at.
	default:
		lexeme = token.Lexeme
	}

	c.errors.Add(errs.NewCompileTime(token.Line, lexeme, atEnd, "%v", message))
	c.hadError = true
}

// error reports an error at the previous token.
func (c *compiler) error(message string) {
	c.errorAt(c.previous, message)
}

// errorAtCurrent reports an error at the current token.
func (c *compiler) errorAtCurrent(message string) {
	c.errorAt(c.current, message)
}

//
// Token window
//

// advance reads the next token into the window. Error tokens are reported and
// skipped here, so the rest of the parser only ever sees valid tokens.
func (c *compiler) advance() {
	c.previous = c.current

	for {
		c.current = c.scanner.Token()
		if c.current.Kind != TokenKindError {
			break
		}

		c.errorAtCurrent(c.current.Lexeme)
	}
}

// consume reads the next token, validating that the current one has the given
// kind; reports message as an error otherwise.
func (c *compiler) consume(kind TokenKind, message string) {
	if c.current.Kind == kind {
		c.advance()
		return
	}

	c.errorAtCurrent(message)
}

// check tells whether the current token has the given kind, without consuming
// it.
func (c *compiler) check(kind TokenKind) bool {
	return c.current.Kind == kind
}

// match consumes the current token if it has the given kind. Returns true if
// it did.
func (c *compiler) match(kind TokenKind) bool {
	if !c.check(kind) {
		return false
	}
	c.advance()
	return true
}

//
// Bytecode emission
//

// emitByte appends one byte to the chunk, attributed to the line of the token
// just parsed.
func (c *compiler) emitByte(b uint8) {
	c.chunk.Write(b, c.previous.Line)
}

// emitBytes appends two bytes to the chunk.
func (c *compiler) emitBytes(b1, b2 uint8) {
	c.emitByte(b1)
	c.emitByte(b2)
}

// emitReturn appends the return instruction that ends every chunk.
func (c *compiler) emitReturn() {
	c.emitByte(uint8(bytecode.OpReturn))
}

// makeConstant adds value to the chunk's constant pool and returns its index.
// The index must fit the one-byte operand encoding; beyond that it's an
// error, and zero is returned as a placeholder.
func (c *compiler) makeConstant(value bytecode.Value) uint8 {
	constant := c.chunk.AddConstant(value)
	if constant > 255 {
		c.error("Too many constants in one chunk.")
		return 0
	}

	return uint8(constant)
}

// emitConstant appends an instruction loading value onto the stack.
func (c *compiler) emitConstant(value bytecode.Value) {
	c.emitBytes(uint8(bytecode.OpConstant), c.makeConstant(value))
}

// endCompiler finishes the chunk.
func (c *compiler) endCompiler() {
	c.emitReturn()
}

//
// The Pratt parser core
//

// parsePrecedence parses any expression at the given precedence level or
// higher. This is the heart of the Pratt parser: one prefix rule for the
// token that starts the expression, then infix rules for as long as the next
// token binds at least as tightly as prec.
func (c *compiler) parsePrecedence(prec precedence) {
	c.advance()

	prefix := getRule(c.previous.Kind).prefix
	if prefix == nil {
		c.error("Expect expression.")
		return
	}

	// Assignment is only allowed while parsing at assignment-or-lower
	// precedence; the flag threads down so that `variable` can tell a valid
	// assignment target from the tail of a larger expression.
	canAssign := prec <= precAssignment
	prefix(c, canAssign)

	for prec <= getRule(c.current.Kind).precedence {
		c.advance()
		infix := getRule(c.previous.Kind).infix
		infix(c, canAssign)
	}

	// If the `=` is still there after parsing a full expression, nobody could
	// use it as an assignment: the target wasn't assignable.
	if canAssign && c.match(TokenKindEqual) {
		c.error("Invalid assignment target.")
	}
}

// expression parses an expression of any precedence.
func (c *compiler) expression() {
	c.parsePrecedence(precAssignment)
}

//
// Prefix and infix parse functions
//

// grouping compiles a parenthesized expression. The `(` has already been
// consumed.
func (c *compiler) grouping(canAssign bool) {
	c.expression()
	c.consume(TokenKindRightParen, "Expect ')' after expression.")
}

// unary compiles a unary operator expression. The operator has already been
// consumed.
func (c *compiler) unary(canAssign bool) {
	operatorKind := c.previous.Kind

	// Compile the operand. precUnary rather than one higher, so unary
	// operators nest: !!x, --x.
	c.parsePrecedence(precUnary)

	switch operatorKind {
	case TokenKindBang:
		c.emitByte(uint8(bytecode.OpNot))
	case TokenKindMinus:
		c.emitByte(uint8(bytecode.OpNegate))
	}
}

// binary compiles a binary operator expression. The operator has already been
// consumed and the left operand already compiled.
func (c *compiler) binary(canAssign bool) {
	operatorKind := c.previous.Kind

	// Compile the right operand. One level higher than the operator's own
	// precedence makes the operator left-associative.
	rule := getRule(operatorKind)
	c.parsePrecedence(rule.precedence + 1)

	switch operatorKind {
	case TokenKindBangEqual:
		c.emitBytes(uint8(bytecode.OpEqual), uint8(bytecode.OpNot))
	case TokenKindEqualEqual:
		c.emitByte(uint8(bytecode.OpEqual))
	case TokenKindGreater:
		c.emitByte(uint8(bytecode.OpGreater))
	case TokenKindGreaterEqual:
		c.emitBytes(uint8(bytecode.OpLess), uint8(bytecode.OpNot))
	case TokenKindLess:
		c.emitByte(uint8(bytecode.OpLess))
	case TokenKindLessEqual:
		c.emitBytes(uint8(bytecode.OpGreater), uint8(bytecode.OpNot))
	case TokenKindPlus:
		c.emitByte(uint8(bytecode.OpAdd))
	case TokenKindMinus:
		c.emitByte(uint8(bytecode.OpSubtract))
	case TokenKindStar:
		c.emitByte(uint8(bytecode.OpMultiply))
	case TokenKindSlash:
		c.emitByte(uint8(bytecode.OpDivide))
	}
}

// number compiles a number literal.
func (c *compiler) number(canAssign bool) {
	value, _ := strconv.ParseFloat(c.previous.Lexeme, 64)
	c.emitConstant(bytecode.NewValueNumber(value))
}

// stringLiteral compiles a string literal, trimming the surrounding quotes
// and interning the content.
func (c *compiler) stringLiteral(canAssign bool) {
	lexeme := c.previous.Lexeme
	s := c.heap.CopyString(lexeme[1 : len(lexeme)-1])
	c.emitConstant(bytecode.NewValueObj(s))
}

// literal compiles a keyword literal: false, null or true.
func (c *compiler) literal(canAssign bool) {
	switch c.previous.Kind {
	case TokenKindFalse:
		c.emitByte(uint8(bytecode.OpFalse))
	case TokenKindNull:
		c.emitByte(uint8(bytecode.OpNull))
	case TokenKindTrue:
		c.emitByte(uint8(bytecode.OpTrue))
	}
}

// variable compiles a reference to (or assignment of) a named variable.
func (c *compiler) variable(canAssign bool) {
	c.namedVariable(c.previous, canAssign)
}

// namedVariable compiles the access to the variable named by name: a set if
// an `=` follows and assignment is allowed here, a get otherwise. The
// assigned value stays on the stack; the surrounding expression statement
// pops it.
func (c *compiler) namedVariable(name Token, canAssign bool) {
	arg := c.identifierConstant(name)

	if canAssign && c.match(TokenKindEqual) {
		c.expression()
		c.emitBytes(uint8(bytecode.OpSetGlobal), arg)
	} else {
		c.emitBytes(uint8(bytecode.OpGetGlobal), arg)
	}
}

// identifierConstant interns the given token's lexeme and adds it to the
// constant pool as a string. Returns the constant pool index.
func (c *compiler) identifierConstant(name Token) uint8 {
	return c.makeConstant(bytecode.NewValueObj(c.heap.CopyString(name.Lexeme)))
}

//
// Declarations and statements
//

// declaration parses one declaration: a `let` declaration or a statement.
// This is also where the parser recovers from panic mode, statement
// boundaries being the synchronization points.
func (c *compiler) declaration() {
	if c.match(TokenKindLet) {
		c.letDeclaration()
	} else {
		c.statement()
	}

	if c.panicMode {
		c.synchronize()
	}
}

// letDeclaration parses a `let` declaration. The `let` has already been
// consumed. Without an initializer the variable defaults to null.
func (c *compiler) letDeclaration() {
	global := c.parseVariable("Expect variable name.")

	if c.match(TokenKindEqual) {
		c.expression()
	} else {
		c.emitByte(uint8(bytecode.OpNull))
	}

	c.consume(TokenKindSemicolon, "Expect ';' after variable declaration.")

	c.defineVariable(global)
}

// parseVariable consumes an identifier token and interns it as a constant.
// Returns the constant pool index.
func (c *compiler) parseVariable(errorMessage string) uint8 {
	c.consume(TokenKindIdentifier, errorMessage)
	return c.identifierConstant(c.previous)
}

// defineVariable emits the instruction that binds the value on the top of the
// stack to the global with the given name constant.
func (c *compiler) defineVariable(global uint8) {
	c.emitBytes(uint8(bytecode.OpDefineGlobal), global)
}

// statement parses one statement.
func (c *compiler) statement() {
	if c.match(TokenKindPrint) {
		c.printStatement()
	} else {
		c.expressionStatement()
	}
}

// printStatement parses a print statement. The `print` has already been
// consumed.
func (c *compiler) printStatement() {
	c.expression()
	c.consume(TokenKindSemicolon, "Expect ';' after value.")
	c.emitByte(uint8(bytecode.OpPrint))
}

// expressionStatement parses an expression statement: an expression evaluated
// for its side effects, whose value is immediately discarded.
func (c *compiler) expressionStatement() {
	c.expression()
	c.consume(TokenKindSemicolon, "Expect ';' after expression.")
	c.emitByte(uint8(bytecode.OpPop))
}

// synchronize skips tokens until a likely statement boundary: just after a
// semicolon, or just before a token that can start a declaration or
// statement. This keeps one syntax error from producing a cascade of
// nonsense reports.
func (c *compiler) synchronize() {
	c.panicMode = false

	for c.current.Kind != TokenKindEOF {
		if c.previous.Kind == TokenKindSemicolon {
			return
		}

		switch c.current.Kind {
		case TokenKindClass, TokenKindFunction, TokenKindLet, TokenKindFor,
			TokenKindIf, TokenKindWhile, TokenKindPrint, TokenKindReturn:
			return
		}

		c.advance()
	}
}
