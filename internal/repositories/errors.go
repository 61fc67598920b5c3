package repositories

import "fmt"

// Err is a RepositoryError implementation shared by in-memory backends.
type Err struct {
	op          string
	msg         string
	notFound    bool
	conflict    bool
	unavailable bool
}

// Error implements the error interface.
func (e *Err) Error() string {
	if e == nil {
		return ""
	}
	if e.op != "" {
		return fmt.Sprintf("%s: %s", e.op, e.msg)
	}
	return e.msg
}

// IsNotFound reports whether the error represents a missing record.
func (e *Err) IsNotFound() bool { return e != nil && e.notFound }

// IsConflict reports whether the error represents a conflicting write.
func (e *Err) IsConflict() bool { return e != nil && e.conflict }

// IsUnavailable reports whether the error represents a backend outage.
func (e *Err) IsUnavailable() bool { return e != nil && e.unavailable }

// NewNotFound constructs a not-found repository error.
func NewNotFound(op string, msg string) *Err {
	return &Err{op: op, msg: msg, notFound: true}
}

// NewConflict constructs a conflict repository error.
func NewConflict(op string, msg string) *Err {
	return &Err{op: op, msg: msg, conflict: true}
}

// NewUnavailable constructs an unavailable repository error.
func NewUnavailable(op string, msg string) *Err {
	return &Err{op: op, msg: msg, unavailable: true}
}
