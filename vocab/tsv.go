package vocab

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// header is the fixed first line of a vocabulary file.
const header = "Token\tScore"

// escape replaces literal newline and carriage-return bytes with the
// two-character sequences \n and \r so the file stays line-based. A token
// that itself contains those literal two-character sequences is ambiguous
// on reload; this matches the documented format.
func escape(token string) string {
	token = strings.ReplaceAll(token, "\r", `\r`)
	token = strings.ReplaceAll(token, "\n", `\n`)
	return token
}

// unescape reverses escape.
func unescape(token string) string {
	token = strings.ReplaceAll(token, `\n`, "\n")
	token = strings.ReplaceAll(token, `\r`, "\r")
	return token
}

// Write writes the vocabulary to w in the TSV format, highest scores
// first. The write loop stops at the first failure and returns it; a
// partially written stream is a legitimate failure artifact and is not
// rolled back.
func Write(w io.Writer, v *Vocabulary) error {
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	for _, e := range v.Entries() {
		if _, err := fmt.Fprintf(w, "%s\t%.4f\n", escape(e.Token), e.Score); err != nil {
			return err
		}
	}

	return nil
}

// Read parses a vocabulary from r.
//
// The header line is skipped. Every other line is split on its last tab
// character (tolerating tokens that contain spaces or even tabs); lines
// with no tab or an unparsable score are skipped silently rather than
// aborting the load.
func Read(r io.Reader) (*Vocabulary, error) {
	v := New()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	first := true
	for scanner.Scan() {
		line := scanner.Text()

		if first {
			first = false
			if strings.HasPrefix(line, "Token\t") {
				continue
			}
		}

		idx := strings.LastIndexByte(line, '\t')
		if idx < 0 {
			continue
		}

		score, err := strconv.ParseFloat(line[idx+1:], 64)
		if err != nil {
			continue
		}

		v.Add(unescape(line[:idx]), score)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return v, nil
}
