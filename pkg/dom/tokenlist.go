package dom

import "strings"

// TokenList is a live view over an element's class attribute, in the style of
// DOMTokenList. Mutations go through the attribute API so the element's
// OnAttributeChanged hook observes them.
type TokenList struct {
	el *Element
}

// ClassList returns the element's class token list.
func (e *Element) ClassList() *TokenList {
	return &TokenList{el: e}
}

func (t *TokenList) tokens() []string {
	raw, _ := t.el.GetAttribute("class")
	return strings.Fields(raw)
}

func (t *TokenList) store(tokens []string) {
	t.el.SetAttribute("class", strings.Join(tokens, " "))
}

// Contains reports whether the given token is present.
func (t *TokenList) Contains(token string) bool {
	for _, tok := range t.tokens() {
		if tok == token {
			return true
		}
	}
	return false
}

// Add appends the given tokens, skipping ones already present.
func (t *TokenList) Add(tokens ...string) {
	current := t.tokens()
	changed := false
	for _, token := range tokens {
		if token == "" {
			continue
		}
		exists := false
		for _, tok := range current {
			if tok == token {
				exists = true
				break
			}
		}
		if !exists {
			current = append(current, token)
			changed = true
		}
	}
	if changed {
		t.store(current)
	}
}

// Remove deletes the given tokens if present.
func (t *TokenList) Remove(tokens ...string) {
	current := t.tokens()
	kept := current[:0]
	for _, tok := range current {
		drop := false
		for _, token := range tokens {
			if tok == token {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, tok)
		}
	}
	if len(kept) != len(current) {
		t.store(kept)
	}
}

// String returns the serialized class attribute value.
func (t *TokenList) String() string {
	raw, _ := t.el.GetAttribute("class")
	return raw
}
