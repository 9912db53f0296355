package github

// fieldMode selects how a FieldUpdate changes a multi-valued field.
type fieldMode int

const (
	fieldNoChange fieldMode = iota
	fieldAddRemove
	fieldReplace
)

// FieldUpdate describes a change to a multi-valued issue field such as
// labels or assignees. It is exactly one of: no change, add/remove against
// the current value, or a full replacement. The zero value is no change.
type FieldUpdate struct {
	mode    fieldMode
	add     []string
	remove  []string
	replace []string
}

// NoChange returns an update that leaves the field untouched.
func NoChange() FieldUpdate {
	return FieldUpdate{}
}

// AddRemove returns an update that adds and then removes values relative to
// the current value. With both sets empty it is NoChange.
func AddRemove(add, remove []string) FieldUpdate {
	if len(add) == 0 && len(remove) == 0 {
		return NoChange()
	}
	return FieldUpdate{mode: fieldAddRemove, add: add, remove: remove}
}

// Replace returns an update that substitutes values for the current value.
// An empty values clears the field.
func Replace(values []string) FieldUpdate {
	return FieldUpdate{mode: fieldReplace, replace: values}
}

// NeedsSnapshot reports whether Resolve needs the field's current value.
// A replacement never does.
func (u FieldUpdate) NeedsSnapshot() bool {
	return u.mode == fieldAddRemove
}

// IsNoChange reports whether the update leaves the field untouched.
func (u FieldUpdate) IsNoChange() bool {
	return u.mode == fieldNoChange
}

// Resolve computes the field's new value from current.
//
// A replacement yields the replacement values with duplicates removed and
// usedReplace set. An add/remove yields (current ∪ add) \ remove, keeping
// the order of current followed by add. For NoChange, changed is false and
// the field must be left out of the update.
func (u FieldUpdate) Resolve(current []string) (values []string, usedReplace bool, changed bool) {
	switch u.mode {
	case fieldReplace:
		return dedupe(u.replace, nil), true, true
	case fieldAddRemove:
		removed := make(map[string]struct{}, len(u.remove))
		for _, v := range u.remove {
			removed[v] = struct{}{}
		}
		merged := make([]string, 0, len(current)+len(u.add))
		merged = append(merged, current...)
		merged = append(merged, u.add...)
		return dedupe(merged, removed), false, true
	default:
		return nil, false, false
	}
}

// dedupe returns values in first-seen order without duplicates or any value
// in skip. The result is never nil.
func dedupe(values []string, skip map[string]struct{}) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := skip[v]; ok {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
