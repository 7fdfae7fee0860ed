package parser

// TokenType defines the kinds of tokens produced by the lexer.
type TokenType int

const (
	TokenText     TokenType = iota // anything that is not a marker or a number
	TokenMinterm                   // 'm'
	TokenMaxterm                   // 'M'
	TokenDontCare                  // 'd' or 'D'
	TokenNumber                    // maximal run of decimal digits
	TokenEOF                       // end of input
)

func (t TokenType) String() string {
	switch t {
	case TokenText:
		return "Text"
	case TokenMinterm:
		return "Minterm"
	case TokenMaxterm:
		return "Maxterm"
	case TokenDontCare:
		return "DontCare"
	case TokenNumber:
		return "Number"
	case TokenEOF:
		return "EOF"
	default:
		return "Unknown"
	}
}

// Token is a single lexical token with its byte offset in the input.
type Token struct {
	Type     TokenType
	Value    string
	Position int
}

// Lexer scans equation text into tokens.
//
// Every 'm', 'M', 'd' and 'D' byte is a marker token, even inside a word: only
// the first occurrence of each marker matters to the parser, wherever it is.
type Lexer struct {
	input    string
	position int
	tokens   []Token
}

// NewLexer returns a new Lexer over input.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		tokens: make([]Token, 0),
	}
}

// Tokenize processes the entire input and returns its tokens, terminated by
// a TokenEOF.
func (l *Lexer) Tokenize() []Token {
	for l.position < len(l.input) {
		start := l.position
		switch c := l.input[l.position]; {
		case c == 'm':
			l.addToken(TokenMinterm, "m", start)
			l.position++
		case c == 'M':
			l.addToken(TokenMaxterm, "M", start)
			l.position++
		case c == 'd' || c == 'D':
			l.addToken(TokenDontCare, string(c), start)
			l.position++
		case isDigit(c):
			l.lexNumber()
		default:
			// position incrementing is handled inside `lexText`
			l.lexText()
		}
	}

	l.addToken(TokenEOF, "", l.position)
	return l.tokens
}

// lexNumber scans a maximal run of decimal digits.
func (l *Lexer) lexNumber() {
	start := l.position
	for l.position < len(l.input) && isDigit(l.input[l.position]) {
		l.position++
	}
	l.addToken(TokenNumber, l.input[start:l.position], start)
}

// lexText scans everything up to the next marker or digit.
func (l *Lexer) lexText() {
	start := l.position
	for l.position < len(l.input) {
		c := l.input[l.position]
		if isMarker(c) || isDigit(c) {
			break
		}
		l.position++
	}
	l.addToken(TokenText, l.input[start:l.position], start)
}

func (l *Lexer) addToken(tokenType TokenType, value string, pos int) {
	l.tokens = append(l.tokens, Token{
		Type:     tokenType,
		Value:    value,
		Position: pos,
	})
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isMarker(c byte) bool {
	return c == 'm' || c == 'M' || c == 'd' || c == 'D'
}
