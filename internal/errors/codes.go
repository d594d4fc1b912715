package errors

// Code represents an error code
type Code string

// Error codes. The scaling core is total and never fails; only the
// serialization boundary and constructor validation produce errors, so the
// code set is small.
const (
	CodeOK              Code = "OK"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeInternal        Code = "INTERNAL"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}
