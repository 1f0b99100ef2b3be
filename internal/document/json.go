// ============================================================================
// cleanfloat - Floating-point artifact cleaner
// ============================================================================
//
// Package:     document
// Description: JSON document cleaning on the decoder token stream
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package document

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/msto63/cleanfloat/foundation/core/errors"
	"github.com/msto63/cleanfloat/foundation/core/log"
)

// CleanJSON copies the JSON values read from r to w with every non-integer
// number cleaned. Key order and integer literals are kept. The output is
// compact unless indent is set, one top-level value per line.
func (c *Cleaner) CleanJSON(r io.Reader, w io.Writer, indent string) (Stats, error) {
	const op = "clean_json"

	timer := c.logger.StartTimer(op).WithLevel(log.LevelInfo)

	var stats Stats
	out := &jsonWriter{w: bufio.NewWriter(w), indent: indent}

	dec := json.NewDecoder(r)
	dec.UseNumber()

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			if len(out.stack) > 0 {
				err = io.ErrUnexpectedEOF
			} else {
				break
			}
		}
		if err != nil {
			docErr := errors.DocumentSyntax(op, err, "JSON").WithDetail("offset", dec.InputOffset())
			timer.StopWithError(docErr)
			return stats, docErr
		}

		switch v := tok.(type) {
		case json.Delim:
			out.delim(v)
		case json.Number:
			literal, _ := c.cleanLiteral(string(v), "json", &stats)
			out.value(literal)
		case string:
			if out.expectingKey() {
				out.key(quote(v))
			} else {
				out.value(quote(v))
			}
		case bool:
			if v {
				out.value("true")
			} else {
				out.value("false")
			}
		case nil:
			out.value("null")
		}
	}

	if err := out.flush(); err != nil {
		docErr := errors.DocumentWrite(op, err)
		timer.StopWithError(docErr)
		return stats, docErr
	}

	timer.Stop(log.Fields{"numbers": stats.Numbers, "cleaned": stats.Cleaned})
	return stats, nil
}

type jsonFrame struct {
	object    bool
	count     int
	expectKey bool
}

// jsonWriter re-serializes a token stream. The first write error is kept
// and reported by flush.
type jsonWriter struct {
	w      *bufio.Writer
	indent string
	stack  []jsonFrame
	err    error
}

func (jw *jsonWriter) write(s string) {
	if jw.err != nil {
		return
	}
	_, jw.err = jw.w.WriteString(s)
}

func (jw *jsonWriter) newline() {
	if jw.indent == "" {
		return
	}
	jw.write("\n")
	jw.write(strings.Repeat(jw.indent, len(jw.stack)))
}

func (jw *jsonWriter) top() *jsonFrame {
	if len(jw.stack) == 0 {
		return nil
	}
	return &jw.stack[len(jw.stack)-1]
}

func (jw *jsonWriter) expectingKey() bool {
	f := jw.top()
	return f != nil && f.object && f.expectKey
}

func (jw *jsonWriter) key(quoted string) {
	f := jw.top()
	if f.count > 0 {
		jw.write(",")
	}
	f.count++
	f.expectKey = false
	jw.newline()
	jw.write(quoted)
	if jw.indent != "" {
		jw.write(": ")
	} else {
		jw.write(":")
	}
}

// beforeValue writes the separator an array element needs
func (jw *jsonWriter) beforeValue() {
	f := jw.top()
	if f == nil || f.object {
		return
	}
	if f.count > 0 {
		jw.write(",")
	}
	f.count++
	jw.newline()
}

func (jw *jsonWriter) afterValue() {
	f := jw.top()
	if f == nil {
		jw.write("\n")
		return
	}
	if f.object {
		f.expectKey = true
	}
}

func (jw *jsonWriter) value(text string) {
	jw.beforeValue()
	jw.write(text)
	jw.afterValue()
}

func (jw *jsonWriter) delim(d json.Delim) {
	switch d {
	case '{', '[':
		jw.beforeValue()
		jw.write(d.String())
		jw.stack = append(jw.stack, jsonFrame{object: d == '{', expectKey: d == '{'})
	case '}', ']':
		f := jw.stack[len(jw.stack)-1]
		jw.stack = jw.stack[:len(jw.stack)-1]
		if f.count > 0 {
			jw.newline()
		}
		jw.write(d.String())
		jw.afterValue()
	}
}

func (jw *jsonWriter) flush() error {
	if jw.err != nil {
		return jw.err
	}
	return jw.w.Flush()
}

// quote encodes s as a JSON string without HTML escaping
func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}
