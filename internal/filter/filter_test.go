package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdaveas/clipstash/internal/history"
)

func mkItems(texts ...string) []history.Item {
	items := make([]history.Item, len(texts))
	for i, t := range texts {
		items[i] = history.Item{ID: t, Text: t}
	}
	return items
}

func texts(matches []Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Item.Text
	}
	return out
}

func TestApplyEmptyQueryIsIdentity(t *testing.T) {
	items := mkItems("gamma", "beta", "alpha")

	matches := Apply(items, "")

	require.Len(t, matches, 3)
	for i, m := range matches {
		assert.Equal(t, i, m.Index)
		assert.Equal(t, items[i], m.Item)
	}
}

func TestApplySubsequenceMatching(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		query   string
		matches bool
	}{
		{"in-order subsequence skipping characters", "ab cd", "acd", true},
		{"order violation", "ab cd", "dc", false},
		{"case-insensitive", "Hello World", "hw", true},
		{"exact string", "alpha", "alpha", true},
		{"query longer than text", "ab", "abc", false},
		{"whitespace is a literal character", "a b", "a b", true},
		{"punctuation participates in the scan", "x://y", "//", true},
		{"no shared characters", "alpha", "zq", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := Apply(mkItems(tt.text), tt.query)
			if tt.matches {
				assert.Len(t, matches, 1)
			} else {
				assert.Empty(t, matches)
			}
		})
	}
}

func TestApplyPreservesOriginalOrder(t *testing.T) {
	items := mkItems("gamma", "beta", "alpha")

	matches := Apply(items, "a")

	// All three contain "a"; relative recency order is untouched.
	assert.Equal(t, []string{"gamma", "beta", "alpha"}, texts(matches))
}

func TestApplyIndexFidelity(t *testing.T) {
	items := mkItems("kubectl get pods", "git status", "make test", "git push")

	for _, query := range []string{"", "git", "gt", "ss"} {
		for _, m := range Apply(items, query) {
			assert.Equal(t, items[m.Index], m.Item, "query %q", query)
		}
	}
}

func TestApplyNarrowing(t *testing.T) {
	items := mkItems("gamma", "beta", "alpha")

	matches := Apply(items, "al")

	require.Len(t, matches, 1)
	assert.Equal(t, 2, matches[0].Index)
	assert.Equal(t, "alpha", matches[0].Item.Text)
}

func TestApplyEmptyInput(t *testing.T) {
	assert.Empty(t, Apply(nil, ""))
	assert.Empty(t, Apply(nil, "x"))
}
