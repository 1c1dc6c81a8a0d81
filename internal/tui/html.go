package tui

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	xhtml "golang.org/x/net/html"
)

// quotePrefix marks quoted lines, repeated once per nesting level.
const quotePrefix = "│ "

// openLink tracks an <a> element whose text is still being collected.
// start is the byte offset in the current line where the link text began.
type openLink struct {
	href  string
	start int
}

type listLevel struct {
	ordered bool
	n       int
}

// htmlToText converts HTML content to word-wrapped plain text lines.
// Payload text is HTML-escaped, so entities are decoded first and the
// result is tokenized; this also unfolds BGG quote markup that arrives
// entity-encoded. Quoted passages (blockquote, gg-markup-quote and the
// site's div class="quote" format) are prefixed per nesting level and
// wrap within the prefix.
func htmlToText(htmlContent string, width int) []string {
	decoded := html.UnescapeString(htmlContent)
	tokenizer := xhtml.NewTokenizer(strings.NewReader(decoded))

	var (
		lines      []string
		cur        bytes.Buffer
		quoteDepth int
		links      []openLink
		divQuotes  []bool // per open <div>: whether it raised quoteDepth
		lists      []listLevel
		skipText   bool // inside <script> or <style>
	)

	endLine := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		for i := range links {
			links[i].start = 0
		}
	}
	// breakLine moves to a fresh line without emitting a blank one.
	breakLine := func() {
		if cur.Len() > 0 {
			endLine()
		}
	}
	// breakParagraph additionally separates blocks with one blank line.
	breakParagraph := func() {
		breakLine()
		if n := len(lines); n > 0 && lines[n-1] != "" {
			lines = append(lines, "")
		}
	}
	writeText := func(text string) {
		if cur.Len() == 0 {
			if quoteDepth > 0 {
				prefix := strings.Repeat(quotePrefix, quoteDepth)
				cur.WriteString(prefix)
				for i := range links {
					if links[i].start == 0 {
						links[i].start = len(prefix)
					}
				}
			}
			text = strings.TrimLeft(text, " \t\r\n")
		}
		cur.WriteString(text)
	}

loop:
	for {
		tokenType := tokenizer.Next()
		switch tokenType {
		case xhtml.ErrorToken:
			// End of input or parse error.
			break loop

		case xhtml.StartTagToken, xhtml.SelfClosingTagToken:
			name, hasAttr := tokenizer.TagName()
			selfClosing := tokenType == xhtml.SelfClosingTagToken
			switch string(name) {
			case "br":
				endLine()
			case "p":
				breakParagraph()
			case "blockquote", "gg-markup-quote":
				breakLine()
				if !selfClosing {
					quoteDepth++
				}
			case "div":
				breakLine()
				isQuote := false
				for hasAttr {
					key, val, more := tokenizer.TagAttr()
					if string(key) == "class" && string(val) == "quote" {
						isQuote = true
					}
					if !more {
						break
					}
				}
				if !selfClosing {
					divQuotes = append(divQuotes, isQuote)
					if isQuote {
						quoteDepth++
					}
				}
			case "a":
				href := ""
				for hasAttr {
					key, val, more := tokenizer.TagAttr()
					if string(key) == "href" {
						href = string(val)
					}
					if !more {
						break
					}
				}
				links = append(links, openLink{href: href, start: cur.Len()})
			case "ul":
				breakLine()
				lists = append(lists, listLevel{ordered: false})
			case "ol":
				breakLine()
				lists = append(lists, listLevel{ordered: true})
			case "li":
				breakLine()
				if n := len(lists); n > 0 && lists[n-1].ordered {
					lists[n-1].n++
					writeText(fmt.Sprintf("%d. ", lists[n-1].n))
				} else {
					writeText("- ")
				}
			case "script", "style":
				if !selfClosing {
					skipText = true
				}
			}

		case xhtml.EndTagToken:
			name, _ := tokenizer.TagName()
			switch string(name) {
			case "p":
				breakParagraph()
			case "blockquote", "gg-markup-quote":
				breakLine()
				if quoteDepth > 0 {
					quoteDepth--
				}
			case "div":
				breakLine()
				if n := len(divQuotes); n > 0 {
					if divQuotes[n-1] && quoteDepth > 0 {
						quoteDepth--
					}
					divQuotes = divQuotes[:n-1]
				}
			case "a":
				if n := len(links); n > 0 {
					l := links[n-1]
					links = links[:n-1]
					resolveLink(&cur, l)
				}
			case "ul", "ol":
				breakLine()
				if n := len(lists); n > 0 {
					lists = lists[:n-1]
				}
			case "li":
				breakLine()
			case "script", "style":
				skipText = false
			}

		case xhtml.TextToken:
			if skipText {
				continue
			}
			raw := string(tokenizer.Text())
			if strings.TrimSpace(raw) == "" {
				// Whitespace between elements separates inline content.
				if raw != "" && endsWithText(&cur) {
					cur.WriteByte(' ')
				}
				continue
			}
			writeText(collapseSpace(raw))
		}
	}

	breakLine()

	if len(lines) == 0 {
		return wrapText(decoded, width)
	}

	// wrapText carries quote prefixes onto continuation lines.
	var wrapped []string
	for _, line := range lines {
		if line == "" {
			wrapped = append(wrapped, "")
			continue
		}
		wrapped = append(wrapped, wrapText(line, width)...)
	}
	return wrapped
}

// resolveLink appends the href after the link text, skipping it when the
// text already is the URL. BGG renders long link texts pre-truncated
// with a "..." tail; those are replaced by the full URL instead of
// printing both.
func resolveLink(cur *bytes.Buffer, l openLink) {
	if l.href == "" || l.start > cur.Len() {
		return
	}
	text := cur.String()[l.start:]
	switch {
	case text == l.href:
		// Text already shows the URL.
	case strings.HasSuffix(text, "...") && strings.HasPrefix(l.href, strings.TrimSuffix(text, "...")):
		cur.Truncate(l.start)
		cur.WriteString(l.href)
	default:
		cur.WriteString(" (" + l.href + ")")
	}
}

// collapseSpace folds whitespace runs into single spaces, preserving
// whether the text touched its neighbors.
func collapseSpace(s string) string {
	out := strings.Join(strings.Fields(s), " ")
	if out == "" {
		return ""
	}
	if startsWithSpace(s) {
		out = " " + out
	}
	if endsWithSpace(s) {
		out += " "
	}
	return out
}

func startsWithSpace(s string) bool {
	return s != "" && (s[0] == ' ' || s[0] == '\t' || s[0] == '\n' || s[0] == '\r')
}

func endsWithSpace(s string) bool {
	if s == "" {
		return false
	}
	c := s[len(s)-1]
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func endsWithText(cur *bytes.Buffer) bool {
	b := cur.Bytes()
	return len(b) > 0 && b[len(b)-1] != ' '
}

var urlRe = regexp.MustCompile(`https?://[^\s]+`)

// linkifyLines wraps URLs in OSC 8 escape sequences so terminals that
// support hyperlinks make them clickable. Trailing punctuation stays
// outside the link target.
func linkifyLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = urlRe.ReplaceAllStringFunc(line, func(match string) string {
			url := strings.TrimRight(match, ".,;:!?)'\"")
			if url == "" {
				return match
			}
			trailer := match[len(url):]
			return "\x1b]8;;" + url + "\x1b\\" + url + "\x1b]8;;\x1b\\" + trailer
		})
	}
	return out
}
