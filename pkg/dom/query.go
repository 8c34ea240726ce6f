package dom

import "strings"

// matchesSelector implements the selector subset the core needs:
// tag names, "#id", ".class", and "[attr]" / "[attr=value]".
func matchesSelector(e *Element, selector string) bool {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return false
	}
	switch selector[0] {
	case '#':
		id, _ := e.GetAttribute("id")
		return id == selector[1:]
	case '.':
		return e.ClassList().Contains(selector[1:])
	case '[':
		body := strings.TrimSuffix(selector[1:], "]")
		if name, value, ok := strings.Cut(body, "="); ok {
			got, present := e.GetAttribute(name)
			return present && got == strings.Trim(value, `"'`)
		}
		return e.HasAttribute(body)
	default:
		return e.tag == strings.ToLower(selector)
	}
}

func queryDepthFirst(roots []*Element, selector string, all bool) []*Element {
	var found []*Element
	var walk func(e *Element) bool
	walk = func(e *Element) bool {
		if matchesSelector(e, selector) {
			found = append(found, e)
			if !all {
				return true
			}
		}
		for _, c := range e.children {
			if walk(c) && !all {
				return true
			}
		}
		return false
	}
	for _, root := range roots {
		if walk(root) && !all {
			break
		}
	}
	return found
}

// QuerySelector returns the first element in the shadow tree matching the
// selector, or nil.
func (s *ShadowRoot) QuerySelector(selector string) *Element {
	found := queryDepthFirst(s.children, selector, false)
	if len(found) == 0 {
		return nil
	}
	return found[0]
}

// QuerySelectorAll returns all elements in the shadow tree matching the
// selector, in document order.
func (s *ShadowRoot) QuerySelectorAll(selector string) []*Element {
	return queryDepthFirst(s.children, selector, true)
}

// QuerySelector returns the first descendant matching the selector, not
// descending into shadow trees.
func (e *Element) QuerySelector(selector string) *Element {
	found := queryDepthFirst(e.children, selector, false)
	if len(found) == 0 {
		return nil
	}
	return found[0]
}
