package parser

import (
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/gnoswap-labs/minlog/internal/types"
)

var (
	ErrMalformedEquation = errors.New("improper equation format, could not find a m/M to indicate start of minterms or maxterms")
	ErrNoTerms           = errors.New("no terms supplied in the equation")
	ErrTermOverflow      = errors.New("term does not fit in 32 bits")
)

// Parse converts equation text into its mode, required terms and don't-care
// terms.
//
// The first 'M' anywhere in the text selects maxterms; otherwise the first 'm'
// selects minterms. The first 'd' or 'D' introduces the don't-care terms. The
// relative position of these two markers splits the text into a term part and
// a don't-care part, and every run of decimal digits in a part is one term, in
// order of appearance. Duplicates are kept.
func Parse(logger *zap.Logger, text string) (types.Equation, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	tokens := NewLexer(text).Tokenize()

	dcStart, maxStart, minStart := -1, -1, -1
	for _, tok := range tokens {
		switch {
		case tok.Type == TokenDontCare && dcStart < 0:
			dcStart = tok.Position
		case tok.Type == TokenMaxterm && maxStart < 0:
			maxStart = tok.Position
		case tok.Type == TokenMinterm && minStart < 0:
			minStart = tok.Position
		}
	}

	var eq types.Equation
	var termStart int
	switch {
	case maxStart >= 0:
		eq.Mode = types.Maxterms
		termStart = maxStart
	case minStart >= 0:
		eq.Mode = types.Minterms
		termStart = minStart
	default:
		return eq, fmt.Errorf("%w: %q", ErrMalformedEquation, text)
	}
	logger.Debug("found term marker", zap.String("marker", eq.Mode.Marker()), zap.Int("offset", termStart))

	// [termFrom, termTo) and [dcFrom, dcTo) are byte ranges of text
	termFrom, termTo := 0, len(text)
	dcFrom, dcTo := 0, 0
	switch {
	case dcStart < 0:
	case dcStart < termStart:
		dcFrom, dcTo = 0, termStart
		termFrom = termStart
	default:
		termTo = dcStart
		dcFrom, dcTo = dcStart, len(text)
	}

	if dcStart >= 0 {
		logger.Debug("found dont care marker", zap.Int("offset", dcStart))
	}
	logger.Debug("term substring", zap.String("text", text[termFrom:termTo]))

	var err error
	eq.Terms, err = collectTerms(logger, tokens, termFrom, termTo)
	if err != nil {
		return eq, err
	}

	if dcStart >= 0 {
		logger.Debug("dont care substring", zap.String("text", text[dcFrom:dcTo]))
		eq.DontCares, err = collectTerms(logger, tokens, dcFrom, dcTo)
		if err != nil {
			return eq, err
		}
	}

	if len(eq.Terms) == 0 {
		return eq, fmt.Errorf("%w: %q", ErrNoTerms, text)
	}

	return eq, nil
}

// collectTerms converts every number token starting within [from, to) into
// a term. Markers are single bytes, so a number never straddles a boundary.
func collectTerms(logger *zap.Logger, tokens []Token, from, to int) ([]types.Term, error) {
	var terms []types.Term
	for _, tok := range tokens {
		if tok.Type != TokenNumber || tok.Position < from || tok.Position >= to {
			continue
		}
		v, err := strconv.ParseUint(tok.Value, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %s at offset %d", ErrTermOverflow, tok.Value, tok.Position)
		}
		logger.Debug("adding term", zap.Uint64("term", v))
		terms = append(terms, types.Term(v))
	}
	return terms, nil
}
