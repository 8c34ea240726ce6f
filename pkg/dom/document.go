package dom

// Document owns the connected tree. Elements appended under its body become
// connected; removed subtrees become disconnected.
type Document struct {
	body *Element
}

// NewDocument creates a document with an empty body.
func NewDocument() *Document {
	body := NewElement("body")
	body.docRoot = true
	return &Document{body: body}
}

// Body returns the document's root container element.
func (d *Document) Body() *Element {
	return d.body
}
