package domain

// FormMode is the state of the record form.
type FormMode int

const (
	FormClosed FormMode = iota
	FormAdd
	FormEdit
)

func (m FormMode) String() string {
	switch m {
	case FormAdd:
		return "add"
	case FormEdit:
		return "edit"
	default:
		return "closed"
	}
}

// FormFields are the raw values of the record form as typed by the user.
// ID is the hidden identifier input; empty means "new record".
type FormFields struct {
	ID         string
	FirstName  string
	LastName   string
	Email      string
	Department string
	Role       string
}

// FormState is what the form region renders.
type FormState struct {
	Mode   FormMode
	Fields FormFields
	Error  string // validation notification, empty when none
}

// Open reports whether the form region is visible.
func (f FormState) Open() bool { return f.Mode != FormClosed }

// Title is the heading shown above the form.
func (f FormState) Title() string {
	if f.Mode == FormEdit {
		return "Edit Employee"
	}
	return "Add Employee"
}
