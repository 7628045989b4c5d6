package domain

// Kind identifies one of the closed set of failure categories the service
// can report. The transport layer maps each kind to an HTTP status; nothing
// else about an error is inspected outside this package.
type Kind int

const (
	// KindInvalidIdentifier reports a malformed resource identifier.
	KindInvalidIdentifier Kind = iota + 1
	// KindMissingRequiredField reports a required field that is absent or blank.
	KindMissingRequiredField
	// KindInvalidFormat reports a field that fails its format rule.
	KindInvalidFormat
	// KindInvalidEnum reports a value outside an enumerated set.
	KindInvalidEnum
	// KindInvalidDate reports a malformed, impossible, or future calendar date.
	KindInvalidDate
	// KindImmutableField reports an attempt to change an immutable field.
	KindImmutableField
	// KindUnknownField reports a payload key outside the operation's allow-list.
	KindUnknownField
	// KindNotFound reports that the target entity does not exist.
	KindNotFound
	// KindDanglingReference reports a foreign key to a nonexistent record.
	KindDanglingReference
	// KindEmailInUse reports a registration with an already-taken email.
	KindEmailInUse
	// KindWeakPassword reports a password failing the strength policy.
	KindWeakPassword
	// KindInvalidCredentials reports a failed login. Unknown email and wrong
	// password both produce this kind so callers cannot tell them apart.
	KindInvalidCredentials
)

// Error is the tagged failure value carried through the call chain. Field
// names the offending payload field when one exists.
type Error struct {
	Kind    Kind
	Message string
	Field   string
}

func (e *Error) Error() string { return e.Message }

// NewError builds an Error without an associated field.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// FieldError builds an Error attached to a named payload field.
func FieldError(kind Kind, field, message string) *Error {
	return &Error{Kind: kind, Message: message, Field: field}
}

// NotFound reports that the named entity does not exist.
func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Message: entity + " not found"}
}

// DanglingReference reports that the entity referenced by field is absent.
func DanglingReference(entity, field string) *Error {
	return &Error{Kind: KindDanglingReference, Field: field, Message: "referenced " + entity + " not found"}
}

// ErrInvalidCredentials is the single login failure value. A dedicated
// variable keeps the "email not found" and "wrong password" paths literally
// identical.
var ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials, Message: "invalid credentials"}
