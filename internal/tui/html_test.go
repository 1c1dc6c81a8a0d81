package tui

import (
	"strings"
	"testing"
)

func TestHTMLToTextBasics(t *testing.T) {
	tests := []struct {
		name  string
		html  string
		width int
		want  []string
	}{
		{
			name:  "bare text passes through",
			html:  "Wingspan",
			width: 80,
			want:  []string{"Wingspan"},
		},
		{
			name:  "empty input",
			html:  "",
			width: 80,
			want:  []string{""},
		},
		{
			name:  "br breaks the line",
			html:  "2-4 players<br>60 minutes",
			width: 80,
			want:  []string{"2-4 players", "60 minutes"},
		},
		{
			name:  "p separates paragraphs with a blank line",
			html:  "<p>First block</p><p>Second block</p>",
			width: 80,
			want:  []string{"First block", "", "Second block"},
		},
		{
			name:  "inline markup stripped",
			html:  "a <b>bold</b> and <i>italic</i> claim",
			width: 80,
			want:  []string{"a bold and italic claim"},
		},
		{
			name:  "entities decoded",
			html:  "&quot;Catan&quot; &amp; friends",
			width: 80,
			want:  []string{`"Catan" & friends`},
		},
		{
			name:  "script content dropped",
			html:  "<script>var x = 1;</script>done",
			width: 80,
			want:  []string{"done"},
		},
		{
			name:  "style content dropped inline",
			html:  "a<style>p{}</style>b",
			width: 80,
			want:  []string{"ab"},
		},
		{
			name:  "long text word-wraps",
			html:  "Terraforming Mars is a heavy engine builder",
			width: 20,
			want:  []string{"Terraforming Mars is", "a heavy engine", "builder"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dropTrailingBlank(htmlToText(tt.html, tt.width))
			assertLines(t, got, dropTrailingBlank(tt.want))
		})
	}
}

func TestHTMLToTextQuotes(t *testing.T) {
	tests := []struct {
		name  string
		html  string
		width int
		want  []string
	}{
		{
			name:  "blockquote gets a prefix",
			html:  "<blockquote>rules as written</blockquote>",
			width: 80,
			want:  []string{"│ rules as written"},
		},
		{
			name:  "gg-markup-quote gets a prefix",
			html:  "<gg-markup-quote>quoted reply</gg-markup-quote>",
			width: 80,
			want:  []string{"│ quoted reply"},
		},
		{
			name:  "nesting deepens the prefix",
			html:  "<gg-markup-quote>outer<gg-markup-quote>inner</gg-markup-quote></gg-markup-quote>",
			width: 80,
			want:  []string{"│ outer", "│ │ inner"},
		},
		{
			name:  "div class=quote is the site's forum format",
			html:  `before<div class='quote'><div class='quotebody'>inner quote</div></div>after`,
			width: 80,
			want:  []string{"before", "│ inner quote", "after"},
		},
		{
			name:  "quote title and body",
			html:  `<div class='quote'><div class='quotetitle'><p><b>user wrote:</b></p></div><div class='quotebody'><i>quoted text</i></div></div>rest of message`,
			width: 80,
			want:  []string{"│ user wrote:", "", "│ quoted text", "rest of message"},
		},
		{
			name:  "entity-encoded forum quote unfolds",
			html:  `&lt;font color=#2121A4&gt;&lt;div class='quote'&gt;&lt;div class='quotetitle'&gt;&lt;p&gt;&lt;b&gt;mrpoison wrote:&lt;/b&gt;&lt;/p&gt;&lt;/div&gt;&lt;div class='quotebody'&gt;&lt;i&gt;Yes, but that rule is under the &quot;Factory Selection&quot;.&lt;/i&gt;&lt;/div&gt;&lt;/div&gt;&lt;/font&gt;&lt;br/&gt;&lt;br/&gt;Seems logical to me.`,
			width: 80,
			want: []string{
				"│ mrpoison wrote:",
				"",
				`│ Yes, but that rule is under the "Factory Selection".`,
				"",
				"",
				"Seems logical to me.",
			},
		},
		{
			name:  "quoted text wraps within its prefix",
			html:  "<blockquote>Measure twice and cut once every time</blockquote>",
			width: 18,
			want:  []string{"│ Measure twice", "│ and cut once", "│ every time"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dropTrailingBlank(htmlToText(tt.html, tt.width))
			assertLines(t, got, dropTrailingBlank(tt.want))
		})
	}
}

func TestHTMLToTextLinksAndLists(t *testing.T) {
	tests := []struct {
		name  string
		html  string
		width int
		want  []string
	}{
		{
			name:  "href appended after link text",
			html:  `<a href="https://boardgamegeek.com/thread/9">rules thread</a>`,
			width: 80,
			want:  []string{"rules thread (https://boardgamegeek.com/thread/9)"},
		},
		{
			name:  "link text that is already the URL",
			html:  `<a href="https://bgg.cc">https://bgg.cc</a>`,
			width: 80,
			want:  []string{"https://bgg.cc"},
		},
		{
			name:  "pre-truncated link text replaced by the full URL",
			html:  `<a href="https://example.org/long/path/file">https://example.org/long/p...</a>`,
			width: 80,
			want:  []string{"https://example.org/long/path/file"},
		},
		{
			name:  "truncated link inside a quote",
			html:  `<blockquote><a href="https://example.org/long/path/file">https://example.org/long/p...</a></blockquote>`,
			width: 80,
			want:  []string{"│ https://example.org/long/path/file"},
		},
		{
			name:  "unordered list",
			html:  "<ul><li>meeples</li><li>dice</li></ul>",
			width: 80,
			want:  []string{"- meeples", "- dice"},
		},
		{
			name:  "ordered list counts",
			html:  "<ol><li>Setup</li><li>Play</li><li>Score</li></ol>",
			width: 80,
			want:  []string{"1. Setup", "2. Play", "3. Score"},
		},
		{
			name:  "mixed document",
			html:  `<p>Welcome to <b>BoardGameGeek</b>!</p><p>Check out:</p><ul><li>Strategy games</li><li>Party games</li></ul><p>Visit <a href="https://bgg.cc">BGG</a> for more.</p>`,
			width: 80,
			want: []string{
				"Welcome to BoardGameGeek!",
				"",
				"Check out:",
				"",
				"- Strategy games",
				"- Party games",
				"",
				"Visit BGG (https://bgg.cc) for more.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dropTrailingBlank(htmlToText(tt.html, tt.width))
			assertLines(t, got, dropTrailingBlank(tt.want))
		})
	}
}

func TestLinkifyLines(t *testing.T) {
	const osc8Close = "\x1b]8;;\x1b\\"

	got := linkifyLines([]string{"Visit https://bgg.cc today"})
	want := "Visit \x1b]8;;https://bgg.cc\x1b\\https://bgg.cc" + osc8Close + " today"
	if got[0] != want {
		t.Errorf("linkified line = %q, want %q", got[0], want)
	}

	got = linkifyLines([]string{"Read https://bgg.cc/thread/9."})
	if !strings.HasSuffix(got[0], osc8Close+".") {
		t.Errorf("trailing period should stay outside the link, got %q", got[0])
	}

	got = linkifyLines([]string{"no links here"})
	if got[0] != "no links here" {
		t.Errorf("line without URL changed: %q", got[0])
	}
}

func TestCollapseSpace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a  b", "a b"},
		{"\n  a\tb  ", " a b "},
		{"plain", "plain"},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := collapseSpace(tt.in); got != tt.want {
			t.Errorf("collapseSpace(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// dropTrailingBlank removes trailing blank lines; closing block tags may
// leave one behind and the views never render it.
func dropTrailingBlank(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
