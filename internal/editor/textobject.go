package editor

import (
	"github.com/dshills/vix/internal/text"
)

// TextObject returns the range of a syntactic unit around a position.
// Outer variants widen the inner range by one byte on each side when the
// executor composes them.
type TextObject struct {
	// Find returns the inner range at pos, invalid when there is none.
	Find func(txt text.Text, pos int) text.Range

	// Outer selects the widened variant.
	Outer bool
}

// objectWord covers the run of same-class characters at pos.
func objectWord(txt text.Text, pos int) text.Range {
	size := txt.Size()
	if size == 0 || pos >= size {
		return text.EmptyRange()
	}
	cl := classAt(txt, pos)
	start := pos
	for start > 0 && classAt(txt, txt.CharPrev(start)) == cl {
		start = txt.CharPrev(start)
	}
	end := pos
	for end < size && classAt(txt, end) == cl {
		end = txt.CharNext(end)
	}
	return text.Range{Start: start, End: end}
}

// objectLongword covers the whitespace-delimited run at pos.
func objectLongword(txt text.Text, pos int) text.Range {
	size := txt.Size()
	if size == 0 || pos >= size {
		return text.EmptyRange()
	}
	cl := longwordClassAt(txt, pos)
	start := pos
	for start > 0 && longwordClassAt(txt, txt.CharPrev(start)) == cl {
		start = txt.CharPrev(start)
	}
	end := pos
	for end < size && longwordClassAt(txt, end) == cl {
		end = txt.CharNext(end)
	}
	return text.Range{Start: start, End: end}
}

// objectSentence covers the sentence containing pos.
func objectSentence(txt text.Text, pos int) text.Range {
	start := sentencePrev(txt, pos)
	end := sentenceNext(txt, pos)
	if start >= end {
		return text.EmptyRange()
	}
	return text.Range{Start: start, End: end}
}

// objectParagraph covers the block of non-empty lines containing pos.
func objectParagraph(txt text.Text, pos int) text.Range {
	size := txt.Size()
	start := txt.LineBegin(pos)
	for start > 0 {
		prev := txt.LinePrev(start)
		if txt.LineBegin(prev) == txt.LineEnd(prev) {
			break
		}
		if prev == start {
			break
		}
		start = prev
	}
	end := txt.LineNext(pos)
	for end < size && txt.LineBegin(end) != txt.LineEnd(end) {
		next := txt.LineNext(end)
		if next == end {
			break
		}
		end = next
	}
	return text.Range{Start: start, End: end}
}

// objectPair builds a bracket-pair object. The inner range excludes the
// delimiters.
func objectPair(open, close byte) func(txt text.Text, pos int) text.Range {
	return func(txt text.Text, pos int) text.Range {
		size := txt.Size()
		if size == 0 {
			return text.EmptyRange()
		}
		if pos > size-1 {
			pos = size - 1
		}
		// Walk back to the unbalanced opener enclosing pos.
		depth := 0
		start := text.EPOS
		for i := pos; i >= 0; i-- {
			b, _ := txt.ByteAt(i)
			switch b {
			case close:
				if i != pos {
					depth++
				}
			case open:
				if depth == 0 {
					start = i
					i = -1
				} else {
					depth--
				}
			}
			if start != text.EPOS {
				break
			}
		}
		if start == text.EPOS {
			return text.EmptyRange()
		}
		depth = 0
		for i := start; i < size; i++ {
			b, _ := txt.ByteAt(i)
			switch b {
			case open:
				depth++
			case close:
				depth--
				if depth == 0 {
					return text.Range{Start: start + 1, End: i}
				}
			}
		}
		return text.EmptyRange()
	}
}

// objectQuote builds a quoted-span object. Quotes pair up from the line
// begin; the inner range excludes the quotes.
func objectQuote(quote byte) func(txt text.Text, pos int) text.Range {
	return func(txt text.Text, pos int) text.Range {
		begin := txt.LineBegin(pos)
		end := txt.LineEnd(pos)
		var openAt = text.EPOS
		for i := begin; i < end; i++ {
			b, _ := txt.ByteAt(i)
			if b != quote {
				continue
			}
			if openAt == text.EPOS {
				openAt = i
				continue
			}
			if pos >= openAt && pos <= i {
				return text.Range{Start: openAt + 1, End: i}
			}
			openAt = text.EPOS
		}
		return text.EmptyRange()
	}
}

// objectEntire covers the whole buffer.
func objectEntire(txt text.Text, pos int) text.Range {
	return text.Range{Start: 0, End: txt.Size()}
}

// objectLine covers the line including its newline.
func objectLine(txt text.Text, pos int) text.Range {
	return text.Range{Start: txt.LineBegin(pos), End: txt.LineNext(pos)}
}

// objectFunction covers the nearest enclosing brace block.
func objectFunction(txt text.Text, pos int) text.Range {
	inner := objectPair('{', '}')(txt, pos)
	if !inner.Valid() {
		return text.EmptyRange()
	}
	return inner
}

// innerOuter derives the object pair for a Find function.
func innerOuter(find func(text.Text, int) text.Range) (TextObject, TextObject) {
	return TextObject{Find: find}, TextObject{Find: find, Outer: true}
}

// Named text objects, inner and outer variants.
var (
	ObjectWordInner, ObjectWordOuter           = innerOuter(objectWord)
	ObjectLongwordInner, ObjectLongwordOuter   = innerOuter(objectLongword)
	ObjectSentenceInner, ObjectSentenceOuter   = innerOuter(objectSentence)
	ObjectParagraphInner, ObjectParagraphOuter = innerOuter(objectParagraph)
	ObjectParenInner, ObjectParenOuter         = innerOuter(objectPair('(', ')'))
	ObjectBracketInner, ObjectBracketOuter     = innerOuter(objectPair('[', ']'))
	ObjectBraceInner, ObjectBraceOuter         = innerOuter(objectPair('{', '}'))
	ObjectAngleInner, ObjectAngleOuter         = innerOuter(objectPair('<', '>'))
	ObjectQuoteInner, ObjectQuoteOuter         = innerOuter(objectQuote('"'))
	ObjectSingleInner, ObjectSingleOuter       = innerOuter(objectQuote('\''))
	ObjectBacktickInner, ObjectBacktickOuter   = innerOuter(objectQuote('`'))
	ObjectEntireInner, ObjectEntireOuter       = innerOuter(objectEntire)
	ObjectFunctionInner, ObjectFunctionOuter   = innerOuter(objectFunction)
	ObjectLineInner, ObjectLineOuter           = innerOuter(objectLine)
)
