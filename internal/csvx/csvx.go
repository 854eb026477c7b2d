// Package csvx tokenizes the hand-curated CSV corpora this pipeline
// ingests. The stdlib encoding/csv reader is deliberately not used here:
// the source files contain unterminated quotes and ragged rows that the
// pipeline must survive row by row, with the exact recovery semantics the
// downstream JSON contract was built against (an unterminated quote is
// implicitly closed at end of input rather than failing the run).
package csvx

import (
	"strings"
)

// Parse tokenizes raw CSV text into rows of fields.
//
// Quoted fields may contain commas, doubled quotes (unescaped to a single
// quote) and embedded newlines, so one logical row may span several
// physical lines. A leading UTF-8 byte-order mark is stripped. The header
// row, if any, is returned like any other row; skipping it is the
// caller's job.
func Parse(raw string) [][]string {
	raw = strings.TrimPrefix(raw, "\uFEFF")

	var rows [][]string
	idx := 0
	for idx < len(raw) {
		fields, next := readRow(raw, idx)
		if next == idx {
			break
		}
		idx = next
		if fields != nil {
			rows = append(rows, fields)
		}
	}
	return rows
}

// readRow consumes one logical row starting at start and returns the
// fields plus the index of the next row.
func readRow(raw string, start int) ([]string, int) {
	if start >= len(raw) {
		return nil, start
	}

	var fields []string
	idx := start

	for idx < len(raw) {
		var field string
		if raw[idx] == '"' {
			field, idx = readQuotedField(raw, idx+1)
		} else {
			field, idx = readBareField(raw, idx)
		}
		fields = append(fields, field)

		if idx < len(raw) && raw[idx] == ',' {
			idx++
			continue
		}
		// End of row: consume the newline sequence.
		for idx < len(raw) && (raw[idx] == '\r' || raw[idx] == '\n') {
			idx++
		}
		break
	}

	return fields, idx
}

// readQuotedField reads from just past an opening quote to the matching
// close quote. A missing close quote is treated as closed at end of
// input; the truncated field is kept.
func readQuotedField(raw string, idx int) (string, int) {
	var sb strings.Builder
	for idx < len(raw) {
		if raw[idx] == '"' {
			if idx+1 < len(raw) && raw[idx+1] == '"' {
				sb.WriteByte('"')
				idx += 2
				continue
			}
			idx++ // closing quote
			return sb.String(), idx
		}
		sb.WriteByte(raw[idx])
		idx++
	}
	return sb.String(), idx
}

// readBareField reads an unquoted field up to the next comma or newline.
func readBareField(raw string, idx int) (string, int) {
	begin := idx
	for idx < len(raw) && raw[idx] != ',' && raw[idx] != '\n' && raw[idx] != '\r' {
		idx++
	}
	return raw[begin:idx], idx
}
