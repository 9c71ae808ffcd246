package introspect

import "fmt"

// Error is the interface implemented by all extraction errors.
type Error interface {
	error
	// Code returns a stable error code for programmatic handling.
	Code() string
}

// baseError provides common functionality for extraction errors.
type baseError struct {
	code    string
	message string
	cause   error
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Code() string {
	return e.code
}

func (e *baseError) Unwrap() error {
	return e.cause
}

// MalformedParamError reports a parameter declaration that cannot be
// classified: a missing name, a missing type, or an unknown variant.
// CommandPath is the full path of the offending command.
type MalformedParamError struct {
	baseError
	CommandPath string
	Param       string
}

// NewMalformedParamError creates a new malformed parameter error.
func NewMalformedParamError(commandPath, param, message string) *MalformedParamError {
	return &MalformedParamError{
		baseError: baseError{
			code:    "MALFORMED_PARAM",
			message: fmt.Sprintf("command %q: parameter %q: %s", commandPath, param, message),
		},
		CommandPath: commandPath,
		Param:       param,
	}
}

// DuplicateChildError reports a group command declaring two children
// under the same name. CommandPath is the full path of the parent.
type DuplicateChildError struct {
	baseError
	CommandPath string
	Child       string
}

// NewDuplicateChildError creates a new duplicate child error.
func NewDuplicateChildError(commandPath, child string) *DuplicateChildError {
	return &DuplicateChildError{
		baseError: baseError{
			code:    "DUPLICATE_CHILD",
			message: fmt.Sprintf("command %q: duplicate subcommand %q", commandPath, child),
		},
		CommandPath: commandPath,
		Child:       child,
	}
}

// InvalidCommandError reports a command node that cannot be extracted
// at all: a nil command object or an empty name.
type InvalidCommandError struct {
	baseError
	CommandPath string
}

// NewInvalidCommandError creates a new invalid command error.
func NewInvalidCommandError(commandPath, message string) *InvalidCommandError {
	return &InvalidCommandError{
		baseError: baseError{
			code:    "INVALID_COMMAND",
			message: fmt.Sprintf("command %q: %s", commandPath, message),
		},
		CommandPath: commandPath,
	}
}
