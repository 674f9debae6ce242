package planner

import "fmt"

// ErrUnknownEditorNode indicates an editor ID with no building behind it
type ErrUnknownEditorNode struct {
	ID string
}

func (e *ErrUnknownEditorNode) Error() string {
	return fmt.Sprintf("no building with id %q", e.ID)
}

// ErrDuplicateEditorNode indicates an editor ID that is already taken
type ErrDuplicateEditorNode struct {
	ID string
}

func (e *ErrDuplicateEditorNode) Error() string {
	return fmt.Sprintf("building id %q is already in use", e.ID)
}

// ErrUnsupportedSetting indicates a configuration change the building kind does not have
type ErrUnsupportedSetting struct {
	ID      string
	Kind    string
	Setting string
}

func (e *ErrUnsupportedSetting) Error() string {
	return fmt.Sprintf("building %q (%s) has no %s setting", e.ID, e.Kind, e.Setting)
}
