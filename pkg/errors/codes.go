package errors

import "net/http"

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes
const (
	ErrCodeInternal      ErrorCode = "COMMON_001"
	ErrCodeBadRequest    ErrorCode = "COMMON_002"
	ErrCodeNotFound      ErrorCode = "COMMON_003"
	ErrCodeValidation    ErrorCode = "COMMON_004"
	ErrCodeSerialization ErrorCode = "COMMON_005"
	ErrCodeTimeout       ErrorCode = "COMMON_006"
)

// Mechanism file error codes
const (
	// ErrCodeBlockNotFound is returned when a mechanism file has no
	// REACTIONS...END section at all.
	ErrCodeBlockNotFound ErrorCode = "MECH_001"

	// ErrCodeUnitsInvalid is returned when the units header carries a token
	// that is neither a known energy unit nor a mole basis.
	ErrCodeUnitsInvalid ErrorCode = "MECH_002"
)

// Reaction entry error codes
const (
	// ErrCodeEquationUnparseable is returned when the reaction-equation line of
	// an entry does not match the composed first-line pattern. No record can be
	// built without reactant/product identity, so this is a hard per-entry error.
	ErrCodeEquationUnparseable ErrorCode = "RXN_001"

	// ErrCodeBlockMalformed is returned when an auxiliary keyword (LOW, TROE,
	// PLOG, ...) is present in an entry but its slash block does not match the
	// expected arity. Distinct from the keyword being absent, which is a normal
	// state reported as a nil value with no error.
	ErrCodeBlockMalformed ErrorCode = "RXN_002"

	// ErrCodeNumericCoercion is returned when a token in a matched block cannot
	// be converted to the expected numeric type.
	ErrCodeNumericCoercion ErrorCode = "RXN_003"

	// ErrCodeEmptyEntry is returned when an entry with no usable content reaches
	// the aggregator.
	ErrCodeEmptyEntry ErrorCode = "RXN_004"
)

// Aliases kept short for call sites.
const (
	CodeInternal     = ErrCodeInternal
	CodeInvalidParam = ErrCodeBadRequest
	CodeNotFound     = ErrCodeNotFound
	CodeUnknown      = ErrorCode("UNKNOWN")
	CodeOK           = ErrorCode("OK")
)

// httpStatusByCode maps error codes to the HTTP status the API layer should
// answer with. Codes not listed here map to 500.
var httpStatusByCode = map[ErrorCode]int{
	ErrCodeBadRequest:          http.StatusBadRequest,
	ErrCodeValidation:          http.StatusBadRequest,
	ErrCodeNotFound:            http.StatusNotFound,
	ErrCodeTimeout:             http.StatusGatewayTimeout,
	ErrCodeBlockNotFound:       http.StatusUnprocessableEntity,
	ErrCodeUnitsInvalid:        http.StatusUnprocessableEntity,
	ErrCodeEquationUnparseable: http.StatusUnprocessableEntity,
	ErrCodeBlockMalformed:      http.StatusUnprocessableEntity,
	ErrCodeNumericCoercion:     http.StatusUnprocessableEntity,
	ErrCodeEmptyEntry:          http.StatusUnprocessableEntity,
}

// HTTPStatus returns the HTTP status code associated with c.
func (c ErrorCode) HTTPStatus() int {
	if s, ok := httpStatusByCode[c]; ok {
		return s
	}
	return http.StatusInternalServerError
}
