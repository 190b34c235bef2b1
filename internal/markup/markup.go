// Package markup renders the simple inline markup that dataset meanings and
// example sentences carry (<b>, <i>, <br> and friends). It produces
// sanitized HTML for the web page and styled segments or plain text for the
// terminal, and never passes through tags outside a small allowlist.
package markup

import (
	"html/template"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// allowed lists the inline elements kept in HTML output. Attributes are
// always dropped.
var allowed = map[atom.Atom]bool{
	atom.B:      true,
	atom.Strong: true,
	atom.I:      true,
	atom.Em:     true,
	atom.U:      true,
	atom.Sub:    true,
	atom.Sup:    true,
	atom.Br:     true,
}

// dropContent lists elements whose text must not leak into the output.
var dropContent = map[atom.Atom]bool{
	atom.Script: true,
	atom.Style:  true,
}

// HTML sanitizes s for embedding in a page. Allowed tags are re-emitted
// without attributes, all other tags are stripped, text is escaped and any
// element left open is closed at the end.
func HTML(s string) template.HTML {
	var (
		b     strings.Builder
		open  []atom.Atom
		skipN int
	)

	z := html.NewTokenizer(strings.NewReader(s))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// io.EOF or a tokenizer error; either way the input is exhausted.
			break
		}

		tok := z.Token()
		switch tt {
		case html.TextToken:
			if skipN == 0 {
				b.WriteString(html.EscapeString(tok.Data))
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			if dropContent[tok.DataAtom] && tt == html.StartTagToken {
				skipN++
				continue
			}
			if skipN > 0 || !allowed[tok.DataAtom] {
				continue
			}
			if tok.DataAtom == atom.Br {
				b.WriteString("<br>")
				continue
			}
			b.WriteString("<" + tok.DataAtom.String() + ">")
			open = append(open, tok.DataAtom)
		case html.EndTagToken:
			if dropContent[tok.DataAtom] {
				if skipN > 0 {
					skipN--
				}
				continue
			}
			if skipN > 0 || !allowed[tok.DataAtom] {
				continue
			}
			// Close up to the matching open element; stray end tags are dropped.
			for i := len(open) - 1; i >= 0; i-- {
				if open[i] != tok.DataAtom {
					continue
				}
				for j := len(open) - 1; j >= i; j-- {
					b.WriteString("</" + open[j].String() + ">")
				}
				open = open[:i]
				break
			}
		}
	}

	for i := len(open) - 1; i >= 0; i-- {
		b.WriteString("</" + open[i].String() + ">")
	}

	return template.HTML(b.String())
}

// Style is the emphasis applied to a run of text.
type Style uint8

// Emphasis flags
const (
	Bold Style = 1 << iota
	Italic
	Underline
)

// Segment is a run of text sharing one style. A Segment with Text "\n" and
// no style marks a line break.
type Segment struct {
	Text  string
	Style Style
}

// Segments flattens s into styled runs of unescaped text for terminals.
func Segments(s string) []Segment {
	var (
		out   []Segment
		depth = map[Style]int{}
		skipN int
	)

	current := func() Style {
		var st Style
		for k, n := range depth {
			if n > 0 {
				st |= k
			}
		}
		return st
	}

	z := html.NewTokenizer(strings.NewReader(s))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}

		tok := z.Token()
		switch tt {
		case html.TextToken:
			if skipN > 0 || tok.Data == "" {
				continue
			}
			st := current()
			if n := len(out); n > 0 && out[n-1].Style == st && out[n-1].Text != "\n" {
				out[n-1].Text += tok.Data
				continue
			}
			out = append(out, Segment{Text: tok.Data, Style: st})
		case html.StartTagToken, html.SelfClosingTagToken:
			switch {
			case dropContent[tok.DataAtom] && tt == html.StartTagToken:
				skipN++
			case tok.DataAtom == atom.Br:
				out = append(out, Segment{Text: "\n"})
			default:
				if st := styleOf(tok.DataAtom); st != 0 {
					depth[st]++
				}
			}
		case html.EndTagToken:
			if dropContent[tok.DataAtom] {
				if skipN > 0 {
					skipN--
				}
				continue
			}
			if st := styleOf(tok.DataAtom); st != 0 && depth[st] > 0 {
				depth[st]--
			}
		}
	}

	return out
}

// Plain returns s with every tag removed and entities decoded.
func Plain(s string) string {
	var b strings.Builder
	for _, seg := range Segments(s) {
		b.WriteString(seg.Text)
	}
	return b.String()
}

func styleOf(a atom.Atom) Style {
	switch a {
	case atom.B, atom.Strong:
		return Bold
	case atom.I, atom.Em:
		return Italic
	case atom.U:
		return Underline
	default:
		return 0
	}
}
