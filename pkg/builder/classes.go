package builder

// AddClass appends one class. Duplicates are preserved; the rendered class
// attribute joins classes in call order.
func (e Element) AddClass(class string) Element {
	e.classes = appended(e.classes, class)
	return e
}

// AddClassConditional appends one class when condition is true.
func (e Element) AddClassConditional(class string, condition bool) Element {
	if !condition {
		return e
	}
	return e.AddClass(class)
}

// AddClassList appends many classes, preserving the input order.
func (e Element) AddClassList(classes []string) Element {
	e.classes = appended(e.classes, classes...)
	return e
}

// AddClassListConditional appends the whole class list when condition is
// true; the list is never filtered per item.
func (e Element) AddClassListConditional(classes []string, condition bool) Element {
	if !condition {
		return e
	}
	return e.AddClassList(classes)
}

// RemoveClass removes every occurrence of the given class, preserving the
// order of the rest.
func (e Element) RemoveClass(class string) Element {
	e.classes = filtered(e.classes, func(c string) bool { return c != class })
	return e
}

// ReplaceClassList replaces the entire class list.
func (e Element) ReplaceClassList(classes []string) Element {
	e.classes = copied(classes)
	return e
}
