package text

import "regexp"

// SearchForward finds the first match at or after pos, wrapping to the
// start of the buffer. Returns an invalid range when nothing matches.
func (b *Buffer) SearchForward(pos int, re *regexp.Regexp) Range {
	pos = b.clampPos(pos)
	if loc := re.FindIndex(b.content[pos:]); loc != nil {
		return Range{Start: pos + loc[0], End: pos + loc[1]}
	}
	if loc := re.FindIndex(b.content[:pos]); loc != nil {
		return Range{Start: loc[0], End: loc[1]}
	}
	return EmptyRange()
}

// SearchBackward finds the last match strictly before pos, wrapping to the
// end of the buffer. Returns an invalid range when nothing matches.
func (b *Buffer) SearchBackward(pos int, re *regexp.Regexp) Range {
	pos = b.clampPos(pos)
	if locs := re.FindAllIndex(b.content[:pos], -1); len(locs) > 0 {
		last := locs[len(locs)-1]
		return Range{Start: last[0], End: last[1]}
	}
	if locs := re.FindAllIndex(b.content[pos:], -1); len(locs) > 0 {
		last := locs[len(locs)-1]
		return Range{Start: pos + last[0], End: pos + last[1]}
	}
	return EmptyRange()
}
