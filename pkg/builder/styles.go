package builder

// AddStyle appends one inline style declaration. Duplicate keys are kept;
// this layer never deduplicates styles.
func (e Element) AddStyle(property, value string) Element {
	e.styles = appended(e.styles, Style{Key: property, Value: value})
	return e
}

// AddStyleConditional appends one declaration when condition is true.
func (e Element) AddStyleConditional(property, value string, condition bool) Element {
	if !condition {
		return e
	}
	return e.AddStyle(property, value)
}

// AddStyleList appends many declarations, preserving the input order.
func (e Element) AddStyleList(styles []Style) Element {
	e.styles = appended(e.styles, styles...)
	return e
}

// AddStyleListConditional appends the whole style list when condition is
// true; the list is never filtered per item.
func (e Element) AddStyleListConditional(styles []Style, condition bool) Element {
	if !condition {
		return e
	}
	return e.AddStyleList(styles)
}

// RemoveStyle removes every declaration whose key equals property,
// preserving the order of the rest.
func (e Element) RemoveStyle(property string) Element {
	e.styles = filtered(e.styles, func(s Style) bool { return s.Key != property })
	return e
}

// ReplaceStyleList replaces the entire style list.
func (e Element) ReplaceStyleList(styles []Style) Element {
	e.styles = copied(styles)
	return e
}
