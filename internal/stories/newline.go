package stories

import "golang.org/x/text/transform"

// newlines rewrites "\r\n" and a lone "\r" to "\n", so files with old Mac
// line endings split into records the same way as Unix ones.
type newlines struct {
	transform.NopResetter
}

func (newlines) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}

		c := src[nSrc]
		if c == '\r' {
			// "\r" at the end of a chunk may be the first half of "\r\n".
			if nSrc+1 == len(src) && !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			c = '\n'
			if nSrc+1 < len(src) && src[nSrc+1] == '\n' {
				nSrc++
			}
		}

		dst[nDst] = c
		nDst++
		nSrc++
	}
	return nDst, nSrc, nil
}
