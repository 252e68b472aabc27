package font

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/figtype/core/option"
)

// Parse reads a FIGfont from its textual representation (usually the
// contents of a `.flf` file).
//
// A FIGfont starts with a header line
//
//     flf2a$ 6 5 16 15 11 0 24463 229
//     |  | | | |  |  |  |  |   |     |
//     |  | | | |  |  |  |  |   |     +-- code-tag count
//     |  | | | |  |  |  |  |   +-- full layout
//     |  | | | |  |  |  |  +-- print direction
//     |  | | | |  |  |  +-- comment lines
//     |  | | | |  |  +-- old layout
//     |  | | | |  +-- max length
//     |  | | | +-- baseline
//     |  | | +-- height
//     |  | +-- hardblank
//     +--+-- signature
//
// followed by comment lines and glyph blocks. Glyphs for the code points
// 32…126 are mandatory and positional. Further glyphs are introduced by
// a code tag line. Every row of a glyph ends with an end mark, the last row
// with a doubled one.
//
// Parse returns a *ParseError for malformed data. No partial font is returned
// in case of an error.
func Parse(data []byte) (*Font, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, parseErr(MalformedHeader, 1, "empty font data")
	}
	lr := newLineReader(data)
	h, err := parseHeader(lr)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("font header = %v", h)
	f := &Font{
		header:  h,
		comment: make([]string, 0, h.CommentLines),
		glyphs:  newGlyphTable(),
	}
	for i := 0; i < h.CommentLines; i++ {
		line, ok := lr.next()
		if !ok {
			return nil, parseErr(UnexpectedEndOfInput, lr.lineno()+1,
				"font declares %d comment lines, found %d", h.CommentLines, i)
		}
		f.comment = append(f.comment, line)
	}
	for r := FirstRequired; r <= LastRequired; r++ {
		if lr.restIsBlank() {
			return nil, parseErr(UnexpectedEndOfInput, lr.lineno()+1,
				"missing glyph for required character %q", r)
		}
		rows, err := readGlyph(lr, h.Height, r)
		if err != nil {
			return nil, err
		}
		f.glyphs.put(r, makeGlyph(rows))
	}
	if err = readDeutsch(lr, f); err != nil {
		return nil, err
	}
	if err = readTagged(lr, f); err != nil {
		return nil, err
	}
	tracer().Debugf("font has %d glyphs", f.glyphs.Len())
	return f, nil
}

func parseHeader(lr *lineReader) (Header, error) {
	h := Header{
		PrintDirection: option.Int64(),
		FullLayout:     option.Int64(),
		CodetagCount:   option.Int64(),
	}
	line, _ := lr.next()
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return h, parseErr(MalformedHeader, 1, "missing signature")
	}
	sig := []rune(fields[0])
	if !strings.HasPrefix(fields[0], "flf2") || len(sig) < 6 {
		return h, parseErr(MalformedHeader, 1, "not a FIGfont signature: %q", fields[0])
	}
	h.Signature = string(sig[:len(sig)-1])
	h.Hardblank = sig[len(sig)-1]
	if len(fields) < 6 {
		return h, parseErr(MalformedHeader, 1, "header needs 5 numeric fields, has %d",
			len(fields)-1)
	}
	var nums [8]int
	for i := 0; i < len(nums) && i+1 < len(fields); i++ {
		n, err := strconv.Atoi(fields[i+1])
		if err != nil {
			return h, parseErr(MalformedHeader, 1, "header field #%d is not a number: %q",
				i+1, fields[i+1])
		}
		nums[i] = n
	}
	h.Height, h.Baseline, h.MaxLength = nums[0], nums[1], nums[2]
	h.OldLayout, h.CommentLines = nums[3], nums[4]
	if len(fields) > 6 {
		h.PrintDirection = option.SomeInt64(nums[5])
	}
	if len(fields) > 7 {
		h.FullLayout = option.SomeInt64(nums[6])
	}
	if len(fields) > 8 {
		h.CodetagCount = option.SomeInt64(nums[7])
	}
	return h, h.validate(1)
}

// readGlyph reads a block of height rows and strips the end marks.
func readGlyph(lr *lineReader, height int, r rune) ([]string, error) {
	rows := make([]string, height)
	for i := 0; i < height; i++ {
		line, ok := lr.next()
		if !ok {
			return nil, parseErr(InvalidGlyphRowCount, lr.lineno()+1,
				"glyph %U ends after %d of %d rows", r, i, height)
		}
		content, marks := stripEndMarks(line)
		if marks == 0 {
			return nil, parseErr(InvalidGlyphRowCount, lr.lineno(),
				"glyph %U: row %d has no end mark", r, i+1)
		}
		if marks > 1 && i < height-1 {
			return nil, parseErr(InvalidGlyphRowCount, lr.lineno(),
				"glyph %U has %d rows, font height is %d", r, i+1, height)
		}
		rows[i] = content
	}
	return rows, nil
}

// stripEndMarks removes trailing whitespace and the trailing run of end
// marks from a glyph row. The end mark is the last non-blank character.
func stripEndMarks(line string) (string, int) {
	line = strings.TrimRight(line, " \t\r")
	if line == "" {
		return "", 0
	}
	mark, size := utf8.DecodeLastRuneInString(line)
	n := 0
	for strings.HasSuffix(line, string(mark)) {
		line = line[:len(line)-size]
		n++
	}
	return line, n
}

// readDeutsch reads the untagged glyphs for Ä Ö Ü ä ö ü ß, which FLF 2
// fonts may place directly after '~'.
func readDeutsch(lr *lineReader, f *Font) error {
	line, ok := lr.peek()
	if !ok || isBlank(line) {
		return nil
	}
	if looksLikeCodeTag(line) {
		return nil
	}
	for _, r := range deutsch {
		if lr.restIsBlank() {
			tracer().Debugf("font ends within Deutsch block, before %q", r)
			return nil
		}
		rows, err := readGlyph(lr, f.header.Height, r)
		if err != nil {
			return err
		}
		g := makeGlyph(rows)
		if g.IsEmpty() {
			continue
		}
		f.glyphs.put(r, g)
	}
	return nil
}

// readTagged reads code-tagged glyphs until the end of input.
func readTagged(lr *lineReader, f *Font) error {
	count := 0
	for {
		line, ok := lr.peek()
		if !ok {
			break
		}
		if isBlank(line) {
			if lr.restIsBlank() {
				break
			}
			return parseErr(InvalidCodeTag, lr.lineno()+1, "blank line in place of code tag")
		}
		lr.next()
		code, err := parseCodeTag(line, lr.lineno())
		if err != nil {
			return err
		}
		if lr.eof() {
			return parseErr(UnexpectedEndOfInput, lr.lineno()+1,
				"missing glyph for code tag %d", code)
		}
		rows, err := readGlyph(lr, f.header.Height, rune(code))
		if err != nil {
			return err
		}
		count++
		if code < 0 {
			tracer().Debugf("skipping glyph for translation table entry %d", code)
			continue
		}
		if f.glyphs.put(rune(code), makeGlyph(rows)) {
			tracer().Debugf("glyph %U redefined in line %d", code, lr.lineno()-f.header.Height)
		}
	}
	if !f.header.CodetagCount.IsNone() && f.header.CodetagCount.Unwrap() != int64(count) {
		tracer().Infof("font declares %d code-tagged glyphs, found %d",
			f.header.CodetagCount.Unwrap(), count)
	}
	return nil
}

// parseCodeTag reads the code from a code tag line. Codes may be decimal,
// hexadecimal (0x…) or octal (0…). Anything after the code is a comment.
func parseCodeTag(line string, lineno int) (int64, error) {
	code, problem := scanCodeTag(line)
	if problem != "" {
		return 0, parseErr(InvalidCodeTag, lineno, "%s", problem)
	}
	return code, nil
}

func scanCodeTag(line string) (int64, string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, "missing code"
	}
	code, err := strconv.ParseInt(fields[0], 0, 64)
	if err != nil {
		return 0, "not a character code: " + strconv.Quote(fields[0])
	}
	if code == -1 {
		return 0, "code -1 is illegal"
	}
	if code > unicode.MaxRune || code < math.MinInt32 {
		return 0, "code " + fields[0] + " out of range"
	}
	return code, ""
}

// looksLikeCodeTag is true if line starts with a number, whether or not it
// is a legal code.
func looksLikeCodeTag(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	tag := strings.TrimLeft(fields[0], "+-")
	return tag != "" && tag[0] >= '0' && tag[0] <= '9'
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// --- Line reader -----------------------------------------------------------

type lineReader struct {
	lines []string
	n     int // number of lines consumed
}

func newLineReader(data []byte) *lineReader {
	s := strings.TrimSuffix(string(data), "\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return &lineReader{lines: lines}
}

func (lr *lineReader) next() (string, bool) {
	if lr.n >= len(lr.lines) {
		return "", false
	}
	lr.n++
	return lr.lines[lr.n-1], true
}

func (lr *lineReader) peek() (string, bool) {
	if lr.n >= len(lr.lines) {
		return "", false
	}
	return lr.lines[lr.n], true
}

func (lr *lineReader) eof() bool {
	return lr.n >= len(lr.lines)
}

// lineno is the 1-based number of the line read last.
func (lr *lineReader) lineno() int {
	return lr.n
}

func (lr *lineReader) restIsBlank() bool {
	for _, l := range lr.lines[lr.n:] {
		if !isBlank(l) {
			return false
		}
	}
	return true
}
