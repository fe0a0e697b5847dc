package lispy

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var lispyLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `-?[0-9]+`},
	{Name: "Operator", Pattern: `[-+*/]`},
	{Name: "Punct", Pattern: `[()]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

// program is the whole input line. Top-level groups must not be empty;
// nested groups are matched generically.
type program struct {
	Evaluands []*evaluand `@@*`
}

type evaluand struct {
	Pos    lexer.Position
	Number *string `  @Number`
	Form   *form   `| @@`
}

type form struct {
	Pos   lexer.Position
	Exprs []*expr `"(" @@+ ")"`
}

type operator struct {
	Pos    lexer.Position
	Symbol string `@Operator`
}

type expr struct {
	Pos      lexer.Position
	Number   *string   `  @Number`
	Operator *operator `| @@`
	Group    *group    `| @@`
}

type group struct {
	Pos   lexer.Position
	Exprs []*expr `"(" @@* ")"`
}

var lispyGrammar = participle.MustBuild[program](
	participle.Lexer(lispyLexer),
	participle.Elide("Whitespace"),
)

// Grammar returns the EBNF of the accepted language.
func Grammar() string {
	return lispyGrammar.String()
}
