package parser

import (
	"github.com/ava12/eqdef/lexer"
	"github.com/ava12/eqdef/source"
)

// recognizer either consumes a prefix of input and returns a value with the rest of input,
// or fails leaving no trace: a caller resumes from the cursor it passed in.
type recognizer[T any] func(c source.Cursor) (T, source.Cursor, error)

// alternative is a named recognizer, names are used for tracing only.
type alternative[T any] struct {
	name  string
	parse recognizer[T]
}

// firstOf tries alternatives in order and returns the first success.
// If all alternatives fail, the error that got furthest into input is returned (earlier alternative wins a tie),
// lead errors are not taken into account. If all failures are lead errors, fallback error is returned,
// or the first lead error if there is no fallback.
func firstOf[T any](p *Parser, c source.Cursor, fallback func(source.Cursor) error, alts ...alternative[T]) (T, source.Cursor, error) {
	var (
		zero      T
		best      error
		bestPos   = -1
		firstLead error
	)

	for _, alt := range alts {
		res, next, e := alt.parse(c)
		if e == nil {
			return res, next, nil
		}

		p.traceFailure(alt.name, c, e)
		if isFatal(e) {
			return zero, c, e
		}

		if isLead(e) {
			if firstLead == nil {
				firstLead = e
			}
			continue
		}

		pos := errorOffset(e)
		if pos > bestPos {
			best, bestPos = e, pos
		}
	}

	if best != nil {
		return zero, c, best
	}

	if fallback != nil {
		return zero, c, fallback(c)
	}

	return zero, c, firstLead
}

// separatedBlanks1 fetches one or more elements separated by one or more blanks.
// If an element after a separator fails, the separator is left unconsumed.
func separatedBlanks1[T any](c source.Cursor, elem recognizer[T]) ([]T, source.Cursor, error) {
	first, c, e := elem(c)
	if e != nil {
		return nil, c, e
	}

	res := []T{first}
	for {
		sep := lexer.SkipSpace(c)
		if sep.Offset() == c.Offset() {
			break
		}

		item, next, e := elem(sep)
		if e != nil {
			break
		}

		res = append(res, item)
		c = next
	}

	return res, c, nil
}

// many1 applies item repeatedly until it fails, at least one success is required.
// The error of the first failed attempt is returned when there are no successes.
// Every success must consume input, otherwise repetition stops.
func many1[T any](c source.Cursor, item recognizer[T]) ([]T, source.Cursor, error) {
	var res []T
	for {
		value, next, e := item(c)
		if e != nil {
			if len(res) == 0 || isFatal(e) {
				return nil, c, e
			}
			break
		}

		res = append(res, value)
		if next.Offset() <= c.Offset() {
			break
		}

		c = next
	}

	return res, c, nil
}
