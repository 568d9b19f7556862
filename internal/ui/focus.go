package ui

import "cuenta/internal/form"

// FocusManager tracks which form field has the cursor and cycles through
// them in tab order.
type FocusManager struct {
	Current  form.Field
	Order    []form.Field
	OnChange func(from, to form.Field)
}

// NewFocusManager focuses the first field of order.
func NewFocusManager(order ...form.Field) *FocusManager {
	f := &FocusManager{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

func (f *FocusManager) index() int {
	for i, id := range f.Order {
		if id == f.Current {
			return i
		}
	}
	return -1
}

func (f *FocusManager) move(delta int) form.Field {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	i := f.index()
	if i < 0 && delta < 0 {
		i = 0
	}
	return f.set(f.Order[((i+delta)%n+n)%n])
}

func (f *FocusManager) set(to form.Field) form.Field {
	from := f.Current
	f.Current = to
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
	return to
}

// Next moves focus forward, wrapping at the end.
func (f *FocusManager) Next() form.Field { return f.move(1) }

// Prev moves focus backward, wrapping at the start.
func (f *FocusManager) Prev() form.Field { return f.move(-1) }

// Last reports whether the last field in order is focused.
func (f *FocusManager) Last() bool {
	return len(f.Order) > 0 && f.Current == f.Order[len(f.Order)-1]
}

// SetFocus focuses id. Returns false if id is not in Order.
func (f *FocusManager) SetFocus(id form.Field) bool {
	for _, o := range f.Order {
		if o == id {
			f.set(id)
			return true
		}
	}
	return false
}
