package diet

import "fmt"

// ValidationError rejects an input and leaves the store unchanged.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NotFoundError reports an operation on a product absent from both the
// catalog and the manual pool. The store is left unchanged, so undo/redo
// sequences stay safe to replay.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("food %q is not part of the plan", e.Name)
}
