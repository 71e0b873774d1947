package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"

	// Domain codes. These signal a defective catalog or caller, never an
	// incomplete draft: user-facing findings travel as coc7e.Issue values.
	CodeFormulaResolution Code = "FORMULA_RESOLUTION"
	CodeConfiguration     Code = "CONFIGURATION"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}
