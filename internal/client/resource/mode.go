package resource

import "fmt"

// ModeKind enumerates the form states.
type ModeKind int

const (
	ModeClosed ModeKind = iota
	ModeCreate
	ModeEdit
)

// Mode is the form state: Closed, CreateMode or EditMode(id). The edit
// target is carried by the variant itself, so a closed form can never hold
// an edit target.
type Mode struct {
	kind ModeKind
	id   int64
}

func Closed() Mode {
	return Mode{kind: ModeClosed}
}

func CreateMode() Mode {
	return Mode{kind: ModeCreate}
}

func EditMode(id int64) Mode {
	return Mode{kind: ModeEdit, id: id}
}

func (m Mode) Kind() ModeKind {
	return m.kind
}

// IsOpen reports whether the form is shown.
func (m Mode) IsOpen() bool {
	return m.kind != ModeClosed
}

// EditingID returns the edit target, if any.
func (m Mode) EditingID() (int64, bool) {
	if m.kind != ModeEdit {
		return 0, false
	}
	return m.id, true
}

func (m Mode) String() string {
	switch m.kind {
	case ModeCreate:
		return "create"
	case ModeEdit:
		return fmt.Sprintf("edit(%d)", m.id)
	default:
		return "closed"
	}
}
