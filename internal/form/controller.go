// Package form holds the add/edit record form state machine.
//
//	closed --OpenAdd--> add
//	closed --OpenEdit--> edit
//	add|edit --Cancel / accepted Submit--> closed
//
// A rejected Submit leaves the state and the typed values where they were.
package form

import (
	"strconv"
	"strings"

	"github.com/csg33k/roster/internal/domain"
	"github.com/csg33k/roster/internal/validator"
)

type Controller struct {
	state domain.FormState
}

func New() *Controller {
	return &Controller{}
}

// State returns a copy of the current form state.
func (c *Controller) State() domain.FormState {
	return c.state
}

// OpenAdd shows an empty form for a new record.
func (c *Controller) OpenAdd() {
	c.state = domain.FormState{Mode: domain.FormAdd}
}

// OpenEdit shows the form populated from e.
func (c *Controller) OpenEdit(e domain.Employee) {
	c.state = domain.FormState{
		Mode: domain.FormEdit,
		Fields: domain.FormFields{
			ID:         strconv.FormatInt(e.ID, 10),
			FirstName:  e.FirstName,
			LastName:   e.LastName,
			Email:      e.Email,
			Department: e.Department,
			Role:       e.Role,
		},
	}
}

// Cancel closes the form and discards whatever was typed.
func (c *Controller) Cancel() {
	c.state = domain.FormState{}
}

// Submit turns the typed fields into a candidate record. next supplies the
// identifier when the hidden id field is empty. When the candidate fails
// validation the form stays open with the typed values and an error message,
// and ok is false. Otherwise the form closes and the record is returned.
func (c *Controller) Submit(f domain.FormFields, next func() int64) (e domain.Employee, ok bool) {
	f = trimFields(f)
	e = domain.Employee{
		FirstName:  f.FirstName,
		LastName:   f.LastName,
		Email:      f.Email,
		Department: f.Department,
		Role:       f.Role,
	}

	idOK := true
	if f.ID != "" {
		id, err := strconv.ParseInt(f.ID, 10, 64)
		idOK = err == nil && id > 0
		e.ID = id
	}

	if !idOK || !validator.Valid(e) {
		mode := c.state.Mode
		if mode == domain.FormClosed {
			mode = domain.FormAdd
		}
		c.state = domain.FormState{Mode: mode, Fields: f, Error: validator.Message}
		return domain.Employee{}, false
	}

	if f.ID == "" {
		e.ID = next()
	}
	c.state = domain.FormState{}
	return e, true
}

func trimFields(f domain.FormFields) domain.FormFields {
	return domain.FormFields{
		ID:         strings.TrimSpace(f.ID),
		FirstName:  strings.TrimSpace(f.FirstName),
		LastName:   strings.TrimSpace(f.LastName),
		Email:      strings.TrimSpace(f.Email),
		Department: strings.TrimSpace(f.Department),
		Role:       strings.TrimSpace(f.Role),
	}
}
