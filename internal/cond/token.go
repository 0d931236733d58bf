package cond

// TokenKind classifies a scanned token.
type TokenKind int

const (
	TokenWord TokenKind = iota
	TokenNumber
	TokenString
	TokenOperator
	TokenKeyword
)

// Token is one lexical unit of a pseudo-code line. Text holds the canonical
// form (for TokenString, the content without quotes); Raw keeps the source
// spelling so detectors can tell canonicalized matches from literal ones.
type Token struct {
	Kind TokenKind
	Text string
	Raw  string
}

// lexer scans a single input line and produces tokens.
type lexer struct {
	input    string
	position int
	tokens   []Token
}

// Tokenize scans the line into word, number, quoted-string and comparison
// operator tokens. Unrecognized punctuation is dropped.
func Tokenize(input string) []Token {
	l := &lexer{input: input, tokens: make([]Token, 0)}
	for l.position < len(l.input) {
		switch c := l.input[l.position]; {
		case c == '\'' || c == '"':
			l.lexString(c)
		case c == '=':
			l.position++
			if l.position < len(l.input) && l.input[l.position] == '=' {
				l.position++
				l.addToken(TokenOperator, "==", "==")
			} else {
				l.addToken(TokenOperator, "==", "=")
			}
		case c == '!':
			if l.position+1 < len(l.input) && l.input[l.position+1] == '=' {
				l.addToken(TokenOperator, "!=", "!=")
				l.position += 2
			} else {
				l.position++
			}
		case c == '>' || c == '<':
			raw := string(c)
			l.position++
			// ">=" and "<=" collapse onto the bare operator
			if l.position < len(l.input) && l.input[l.position] == '=' {
				raw += "="
				l.position++
			}
			l.addToken(TokenOperator, string(c), raw)
		case isWordStart(c):
			l.lexWord()
		case isDigit(c):
			l.lexNumber()
		default:
			l.position++
		}
	}
	return l.tokens
}

func (l *lexer) addToken(kind TokenKind, text, raw string) {
	l.tokens = append(l.tokens, Token{Kind: kind, Text: text, Raw: raw})
}

// lexString scans a quoted literal. An unterminated quote consumes the rest
// of the line.
func (l *lexer) lexString(quote byte) {
	start := l.position
	l.position++
	for l.position < len(l.input) && l.input[l.position] != quote {
		l.position++
	}
	end := l.position
	if l.position < len(l.input) {
		l.position++ // closing quote
	}
	l.addToken(TokenString, l.input[start+1:end], l.input[start:l.position])
}

func (l *lexer) lexWord() {
	start := l.position
	for l.position < len(l.input) && isWordChar(l.input[l.position]) {
		l.position++
	}
	word := l.input[start:l.position]
	l.addToken(TokenWord, word, word)
}

func (l *lexer) lexNumber() {
	start := l.position
	seenDot := false
	for l.position < len(l.input) {
		c := l.input[l.position]
		if c == '.' && !seenDot {
			seenDot = true
		} else if !isDigit(c) {
			break
		}
		l.position++
	}
	num := l.input[start:l.position]
	l.addToken(TokenNumber, num, num)
}

func isWordStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWordChar(c byte) bool {
	return isWordStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
