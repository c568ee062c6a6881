// Package fingerprint computes a stable, content-derived identifier for
// a generated crossword, used to detect duplicates across generations.
package fingerprint

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/crossplay/backend/pkg/grid"
)

// Of returns a 16-character lowercase hex fingerprint of g's committed
// layout: the grid contents and the placed words, canonically
// serialized so that two grids with identical content always produce
// the same fingerprint.
//
// The canonical form deliberately mirrors Python's
// json.dumps(obj, sort_keys=True, ensure_ascii=False): comma-space and
// colon-space separators, per-object keys sorted alphabetically,
// non-ASCII left unescaped. sort_keys only reorders the keys within
// each word object, never the words list itself — the reference
// implementation hashes words in placement (commit) order, so this
// does too, to keep fingerprints byte-for-byte reproducible against it
// for the same grid.
func Of(g *grid.Grid) string {
	canonical := canonicalize(g)
	sum := md5.Sum([]byte(canonical))
	return hex.EncodeToString(sum[:8])
}

func canonicalize(g *grid.Grid) string {
	var sb strings.Builder
	sb.WriteByte('{')
	sb.WriteString(`"grid": `)
	writeGridArray(&sb, g.ToArray())
	sb.WriteString(`, "words": `)
	writeWords(&sb, g.Words())
	sb.WriteByte('}')
	return sb.String()
}

func writeGridArray(sb *strings.Builder, rows [][]string) {
	sb.WriteByte('[')
	for i, row := range rows {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('[')
		for j, cell := range row {
			if j > 0 {
				sb.WriteString(", ")
			}
			writeJSONString(sb, cell)
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')
}

func writeWords(sb *strings.Builder, words []grid.PlacedWord) {
	sb.WriteByte('[')
	for i, w := range words {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('{')
		sb.WriteString(`"direction": `)
		writeJSONString(sb, w.Direction.String())
		sb.WriteString(`, "startCol": `)
		sb.WriteString(fmt.Sprintf("%d", w.Col))
		sb.WriteString(`, "startRow": `)
		sb.WriteString(fmt.Sprintf("%d", w.Row))
		sb.WriteString(`, "word": `)
		writeJSONString(sb, w.Word)
		sb.WriteByte('}')
	}
	sb.WriteByte(']')
}

// writeJSONString writes s as a JSON string literal, escaping only what
// JSON requires (quote, backslash, control characters) and leaving
// non-ASCII bytes untouched, matching ensure_ascii=False.
func writeJSONString(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 {
				sb.WriteString(fmt.Sprintf(`\u%04x`, r))
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('"')
}
