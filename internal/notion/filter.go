package notion

// Filter is a composable database query filter expression. Builders below
// cover the comparison operators the dashboard policies need: equals,
// does-not-equal, on-or-after, and is-empty / is-not-empty.
type Filter map[string]any

// And combines filters so a record must match all of them.
func And(filters ...Filter) Filter {
	return Filter{"and": filters}
}

// Or combines filters so a record must match at least one of them.
func Or(filters ...Filter) Filter {
	return Filter{"or": filters}
}

// SelectEquals matches records whose select property has the given label.
func SelectEquals(property, value string) Filter {
	return Filter{
		"property": property,
		"select":   map[string]any{"equals": value},
	}
}

// SelectDoesNotEqual matches records whose select property does not have the
// given label. Records with the property unset also match.
func SelectDoesNotEqual(property, value string) Filter {
	return Filter{
		"property": property,
		"select":   map[string]any{"does_not_equal": value},
	}
}

// CheckboxEquals matches records whose checkbox property has the given value.
func CheckboxEquals(property string, value bool) Filter {
	return Filter{
		"property": property,
		"checkbox": map[string]any{"equals": value},
	}
}

// DateOnOrAfter matches records whose date property is on or after the given
// ISO-8601 date.
func DateOnOrAfter(property, iso string) Filter {
	return Filter{
		"property": property,
		"date":     map[string]any{"on_or_after": iso},
	}
}

// DateIsEmpty matches records whose date property is unset.
func DateIsEmpty(property string) Filter {
	return Filter{
		"property": property,
		"date":     map[string]any{"is_empty": true},
	}
}

// DateIsNotEmpty matches records whose date property is set.
func DateIsNotEmpty(property string) Filter {
	return Filter{
		"property": property,
		"date":     map[string]any{"is_not_empty": true},
	}
}
