package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_EmptyInput(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\t"} {
		result := Normalize(raw)
		assert.Equal(t, "", result.Text)
		assert.Nil(t, result.Tokens)
		assert.Nil(t, result.Sentences)
	}
}

func TestNormalize_Markdown(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"link", "check [this thread](https://example.com/x)", "check this thread"},
		{"bold", "this is **important** news", "this is important news"},
		{"italic", "a *subtle* point", "a subtle point"},
		{"strike", "~~wrong~~ right", "wrong right"},
		{"inline code", "run `go build` first", "run go build first"},
		{"blockquote", ">quoted line", "quoted line"},
		{"heading", "### Section Title", "section title"},
		{"rule", "above\n---\nbelow", "above below"},
		{"superscript", "citation^1 needed", "citation1 needed"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Normalize(c.raw).Text)
		})
	}
}

func TestNormalize_StripsURLs(t *testing.T) {
	got := Normalize("see https://example.com/path?q=1 for details")
	assert.Equal(t, "see for details", got.Text)
}

func TestNormalize_Tokenize(t *testing.T) {
	got := Normalize("Don't Panic! Run-time error #42")
	assert.Equal(t, []string{"don't", "panic", "run-time", "error", "42"}, got.Tokens)
}

func TestNormalize_SentenceSegmentation(t *testing.T) {
	got := Normalize("First sentence. Second one! Is this the third? Yes.")
	assert.Equal(t, []string{
		"first sentence.",
		"second one!",
		"is this the third?",
		"yes.",
	}, got.Sentences)
}

func TestNormalize_ShortTextUnchanged(t *testing.T) {
	got := Normalize("hello world")
	assert.Equal(t, "hello world", got.Text)
	assert.Equal(t, []string{"hello", "world"}, got.Tokens)
}
