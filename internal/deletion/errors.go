package deletion

import "errors"

// Errors returned by the deletion lifecycle
var (
	// ErrTaskNotFound means the operation's target does not exist in the
	// state the operation expects.
	ErrTaskNotFound = errors.New("task not found")

	// ErrBatchTooLarge means a batch request exceeded the configured cap.
	// The request is rejected wholesale, before any mutation.
	ErrBatchTooLarge = errors.New("batch exceeds maximum size")

	// ErrNotInRecycleBin means a restore was attempted for a task id with
	// no recycle record.
	ErrNotInRecycleBin = errors.New("task not in recycle bin")
)

// StorageError wraps a failure of the storage collaborator with context
// about the lifecycle operation that triggered it.
type StorageError struct {
	Op     string // Operation that failed (e.g., "soft-delete", "restore")
	TaskID string
	Err    error
}

func (e *StorageError) Error() string {
	if e.TaskID == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.TaskID + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError creates a new StorageError
func NewStorageError(op, taskID string, err error) error {
	return &StorageError{
		Op:     op,
		TaskID: taskID,
		Err:    err,
	}
}
