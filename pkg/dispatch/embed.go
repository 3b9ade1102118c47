package dispatch

import (
	"fmt"
	"strings"

	"github.com/keywatch/keywatch/ent"
)

// embedColor is the fixed accent color used on every outgoing embed
// (0xFF4500, Reddit's orange).
const embedColor = 16729344

// footerText is carried in the footer of every embed.
const footerText = "keywatch"

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type embed struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	URL         string       `json:"url,omitempty"`
	Color       int          `json:"color"`
	Fields      []embedField `json:"fields,omitempty"`
	Footer      embedFooter  `json:"footer"`
}

type embedFooter struct {
	Text string `json:"text"`
}

type embedPayload struct {
	Embeds []embed `json:"embeds"`
}

// singleEmbed renders the single-match payload.
func singleEmbed(m *ent.Match) embedPayload {
	snippet := truncate(m.Snippet, 200)

	author := "[deleted]"
	if m.Author != nil && *m.Author != "" {
		author = *m.Author
	}

	fields := []embedField{
		{Name: "Keyword", Value: m.MatchedPhrase, Inline: true},
		{Name: "Subreddit", Value: "r/" + m.Community, Inline: true},
		{Name: "Author", Value: "u/" + author, Inline: true},
	}
	if len(m.AlsoMatched) > 0 {
		fields = append(fields, embedField{
			Name:   "Also Matched",
			Value:  strings.Join(m.AlsoMatched, ", "),
			Inline: false,
		})
	}

	return embedPayload{Embeds: []embed{{
		Title:       fmt.Sprintf("Keyword Match in r/%s", m.Community),
		Description: snippet,
		URL:         m.RedditURL,
		Color:       embedColor,
		Fields:      fields,
		Footer:      embedFooter{Text: footerText},
	}}}
}

// batchEmbed renders the batched payload for n >= 2 matches.
func batchEmbed(matches []*ent.Match) embedPayload {
	n := len(matches)
	fields := make([]embedField, 0, n)
	for _, m := range matches {
		snippet := truncate(m.Snippet, 100)
		fields = append(fields, embedField{
			Name:   fmt.Sprintf("%s in r/%s", m.MatchedPhrase, m.Community),
			Value:  fmt.Sprintf("%s\n[View post](%s)", snippet, m.RedditURL),
			Inline: false,
		})
	}

	return embedPayload{Embeds: []embed{{
		Title:       fmt.Sprintf("%d New Keyword Matches", n),
		Description: fmt.Sprintf("Batch alert — %d matches detected recently.", n),
		Color:       embedColor,
		Fields:      fields,
		Footer:      embedFooter{Text: footerText},
	}}}
}

// truncate returns s unchanged if it is within limit chars, otherwise the
// first limit-3 chars followed by "...".
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	if limit <= 3 {
		return string(r[:limit])
	}
	return string(r[:limit-3]) + "..."
}
