package token

// keywords maps Python keyword spellings to their token kinds. Soft
// keywords (match, case, type) stay plain identifiers: the shapes this
// tool parses never need them.
var keywords = map[string]Kind{
	"class":    KwClass,
	"def":      KwDef,
	"async":    KwAsync,
	"await":    KwAwait,
	"pass":     KwPass,
	"return":   KwReturn,
	"import":   KwImport,
	"from":     KwFrom,
	"as":       KwAs,
	"if":       KwIf,
	"elif":     KwElif,
	"else":     KwElse,
	"for":      KwFor,
	"while":    KwWhile,
	"try":      KwTry,
	"except":   KwExcept,
	"finally":  KwFinally,
	"with":     KwWith,
	"raise":    KwRaise,
	"assert":   KwAssert,
	"del":      KwDel,
	"global":   KwGlobal,
	"nonlocal": KwNonlocal,
	"lambda":   KwLambda,
	"yield":    KwYield,
	"break":    KwBreak,
	"continue": KwContinue,
	"and":      KwAnd,
	"or":       KwOr,
	"not":      KwNot,
	"in":       KwIn,
	"is":       KwIs,
	"None":     KwNone,
	"True":     KwTrue,
	"False":    KwFalse,
}

// LookupKeyword returns the keyword kind for s, or Ident when s is not a
// keyword.
func LookupKeyword(s string) Kind {
	if k, ok := keywords[s]; ok {
		return k
	}
	return Ident
}
