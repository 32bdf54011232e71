package builder

// AppendText concatenates text onto the end of the element's text content.
// Non-empty text renders as a single text node placed before all
// structural children.
func (e Element) AppendText(text string) Element {
	e.text += text
	return e
}

// AppendTextConditional concatenates text when condition is true.
func (e Element) AppendTextConditional(text string, condition bool) Element {
	if !condition {
		return e
	}
	return e.AppendText(text)
}

// PrependText concatenates text onto the start of the element's text
// content.
func (e Element) PrependText(text string) Element {
	e.text = text + e.text
	return e
}

// PrependTextConditional prepends text when condition is true.
func (e Element) PrependTextConditional(text string, condition bool) Element {
	if !condition {
		return e
	}
	return e.PrependText(text)
}

// ReplaceText overwrites the element's text content. An empty string means
// no text node is rendered.
func (e Element) ReplaceText(text string) Element {
	e.text = text
	return e
}

// ReplaceTextConditional overwrites the text when condition is true.
func (e Element) ReplaceTextConditional(text string, condition bool) Element {
	if !condition {
		return e
	}
	return e.ReplaceText(text)
}
