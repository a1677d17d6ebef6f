package variant

import (
	"fmt"
	"strings"
)

// Foreign call status codes.
const (
	SysCallOK               uint32 = 0
	SysCallInvalidMethod    uint32 = 1
	SysCallInvalidArgument  uint32 = 2
	SysCallTooManyArguments uint32 = 3
	SysCallTooFewArguments  uint32 = 4
	SysCallInstanceIsNull   uint32 = 5
)

// CallStatus is the raw status a Runtime reports for a call. Argument is
// the offending argument index for an invalid argument, or the expected
// argument count for the arity errors. Expected is the foreign type code
// the argument should have had.
type CallStatus struct {
	Code     uint32
	Argument int32
	Expected uint32
}

// CallErrorKind classifies a failed dynamic call.
type CallErrorKind uint8

const (
	CallInvalidMethod CallErrorKind = iota + 1
	CallInvalidArgument
	CallTooManyArguments
	CallTooFewArguments
	CallInstanceIsNull
)

var callErrorNames = [...]string{
	CallInvalidMethod:    "invalid method",
	CallInvalidArgument:  "invalid argument",
	CallTooManyArguments: "too many arguments",
	CallTooFewArguments:  "too few arguments",
	CallInstanceIsNull:   "instance is null",
}

func (k CallErrorKind) String() string {
	if int(k) < len(callErrorNames) && callErrorNames[k] != "" {
		return callErrorNames[k]
	}
	return "unknown call error"
}

// CallError is returned by Variant.Call.
type CallError struct {
	Kind     CallErrorKind
	Method   string
	Argument int
	Expected Tag
}

func (e *CallError) Error() string {
	var b strings.Builder
	if e.Method != "" {
		fmt.Fprintf(&b, "call to %q: ", e.Method)
	}
	b.WriteString(e.Kind.String())
	switch e.Kind {
	case CallInvalidArgument:
		fmt.Fprintf(&b, " at index %d, expected %s", e.Argument, e.Expected)
	case CallTooManyArguments, CallTooFewArguments:
		fmt.Fprintf(&b, ", expected %d", e.Argument)
	}
	return b.String()
}

// Is matches call errors by kind.
func (e *CallError) Is(target error) bool {
	if t, ok := target.(*CallError); ok {
		return e.Kind == t.Kind
	}
	return false
}

// CallErrorFromSys maps a foreign call status. It returns nil for success
// and panics on a code it does not know, since that means the runtime and
// this package disagree about the protocol.
func CallErrorFromSys(s CallStatus) *CallError {
	var kind CallErrorKind
	switch s.Code {
	case SysCallOK:
		return nil
	case SysCallInvalidMethod:
		kind = CallInvalidMethod
	case SysCallInvalidArgument:
		kind = CallInvalidArgument
	case SysCallTooManyArguments:
		kind = CallTooManyArguments
	case SysCallTooFewArguments:
		kind = CallTooFewArguments
	case SysCallInstanceIsNull:
		kind = CallInstanceIsNull
	default:
		panic(fmt.Sprintf("variant: unknown call error code %d", s.Code))
	}
	e := &CallError{Kind: kind, Argument: int(s.Argument)}
	if kind == CallInvalidArgument {
		if tag, err := TagFromSys(s.Expected); err == nil {
			e.Expected = tag
		}
	}
	return e
}

// CallStatusFor builds the status a Runtime should report for err. A nil
// err is success.
func CallStatusFor(err *CallError) CallStatus {
	if err == nil {
		return CallStatus{Code: SysCallOK}
	}
	s := CallStatus{Argument: int32(err.Argument)}
	switch err.Kind {
	case CallInvalidMethod:
		s.Code = SysCallInvalidMethod
	case CallInvalidArgument:
		s.Code = SysCallInvalidArgument
		s.Expected = err.Expected.Sys()
	case CallTooManyArguments:
		s.Code = SysCallTooManyArguments
	case CallTooFewArguments:
		s.Code = SysCallTooFewArguments
	case CallInstanceIsNull:
		s.Code = SysCallInstanceIsNull
	}
	return s
}
