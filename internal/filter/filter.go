// Package filter narrows a history snapshot with case-insensitive
// subsequence matching. A candidate matches when every query character can
// be found in the candidate's text scanning left to right, each match
// consuming its position. The filter is a pure membership test: no scoring,
// no reordering — matches keep their original relative order, and each
// match carries its original (unfiltered) index so selection and numeric
// entry can resolve back to the raw history.
package filter

import (
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/sdaveas/clipstash/internal/history"
)

// Match pairs an item with its position in the unfiltered history at
// filter time.
type Match struct {
	Index int
	Item  history.Item
}

// Apply returns the matches for query in their original order. An empty
// query is the identity: every item matches at its own index.
func Apply(items []history.Item, query string) []Match {
	matches := make([]Match, 0, len(items))
	for i, it := range items {
		if query == "" || fuzzy.MatchFold(query, it.Text) {
			matches = append(matches, Match{Index: i, Item: it})
		}
	}
	return matches
}
