package main

// Element is a handle to one interactive region of the UI.
type Element interface {
	Role() Role
}

// textArea is the append-only output region. Lines are never removed
// within a session; the view shows only the tail.
type textArea struct {
	lines []string
}

func (t *textArea) Role() Role { return RoleOutput }

func (t *textArea) Append(line string) {
	t.lines = append(t.lines, line)
}

// Tail returns up to n of the most recent lines.
func (t *textArea) Tail(n int) []string {
	if n <= 0 || len(t.lines) == 0 {
		return nil
	}
	if len(t.lines) <= n {
		return t.lines
	}
	return t.lines[len(t.lines)-n:]
}

// numberField is a single-line editable numeric input.
type numberField struct {
	role    Role
	label   string
	value   string
	cursor  int
	focused bool
}

func newNumberField(role Role, label string) *numberField {
	return &numberField{role: role, label: label}
}

func (f *numberField) Role() Role { return f.role }

func (f *numberField) SetValue(v string) {
	f.value = v
	f.cursor = len(v)
}

// acceptsRune limits fields to characters that can appear in a number.
// Anything else falls through to the command keys.
func (f *numberField) acceptsRune(ch string) bool {
	if len(ch) != 1 {
		return false
	}
	c := ch[0]
	return (c >= '0' && c <= '9') || c == '.' || c == '-'
}

func (f *numberField) Insert(ch string) {
	f.value = f.value[:f.cursor] + ch + f.value[f.cursor:]
	f.cursor++
}

func (f *numberField) Backspace() {
	if f.cursor > 0 {
		f.value = f.value[:f.cursor-1] + f.value[f.cursor:]
		f.cursor--
	}
}

func (f *numberField) Delete() {
	if f.cursor < len(f.value) {
		f.value = f.value[:f.cursor] + f.value[f.cursor+1:]
	}
}

func (f *numberField) Left() {
	if f.cursor > 0 {
		f.cursor--
	}
}

func (f *numberField) Right() {
	if f.cursor < len(f.value) {
		f.cursor++
	}
}

// button is the discrete draw trigger.
type button struct {
	label   string
	focused bool
}

func (b *button) Role() Role { return RoleDraw }

// elements is the resolved set of required regions. Built once during
// bootstrap and never mutated afterwards; consumers receive it
// explicitly instead of reaching for globals.
type elements struct {
	output *textArea
	depth  *numberField
	length *numberField
	draw   *button
	canvas *Surface
}

// resolveElements checks every required role against the assembled
// widget set. A role is missing when it is absent, nil, or bound to
// the wrong kind of element. All five lookups run before failing so
// the diagnostic is complete in one report.
func resolveElements(set map[Role]Element) (*elements, error) {
	var missing []Role
	els := &elements{}

	for _, role := range requiredRoles {
		el, ok := set[role]
		if !ok || el == nil {
			missing = append(missing, role)
			continue
		}
		switch role {
		case RoleOutput:
			if v, ok := el.(*textArea); ok {
				els.output = v
				continue
			}
		case RoleDepth:
			if v, ok := el.(*numberField); ok {
				els.depth = v
				continue
			}
		case RoleLength:
			if v, ok := el.(*numberField); ok {
				els.length = v
				continue
			}
		case RoleDraw:
			if v, ok := el.(*button); ok {
				els.draw = v
				continue
			}
		case RoleCanvas:
			if v, ok := el.(*Surface); ok {
				els.canvas = v
				continue
			}
		}
		missing = append(missing, role)
	}

	if len(missing) > 0 {
		return nil, &MissingElementsError{Roles: missing}
	}
	return els, nil
}
