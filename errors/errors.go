// Package errors defines the failure taxonomy of the query engine. Every failure is an
// issue.Reported carrying one of the issue codes declared in this package. Operators
// panic with such a value; Catch turns the panic back into an error at the caller
// boundary.
package errors

import (
	"runtime"

	"github.com/lyraproj/issue/issue"
)

type (
	// Caused is a reported failure that keeps a reference to the failure that caused it.
	Caused struct {
		issue.Reported
		cause error
	}
)

// Error creates a Reported with the given issue code and arguments. The location of the
// reported issue is the location of the function that called Error.
// Typical use is to panic with the returned value
func Error(code issue.Code, args issue.H) issue.Reported {
	return issue.NewReported(code, issue.SEVERITY_ERROR, args, callerLocation(2))
}

// Wrap creates a Reported just like Error but retains the given cause so that it can
// be obtained using Unwrap.
func Wrap(code issue.Code, cause error, args issue.H) *Caused {
	if args == nil {
		args = issue.H{}
	}
	args[`cause`] = cause
	return &Caused{issue.NewReported(code, issue.SEVERITY_ERROR, args, callerLocation(2)), cause}
}

func (e *Caused) Unwrap() error {
	return e.cause
}

// Catch calls the given function and returns the issue.Reported that it panics with, if
// any. Panics with other values are propagated.
func Catch(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			var ok bool
			if err, ok = r.(error); !ok || CodeOf(err) == `` {
				panic(r)
			}
		}
	}()
	f()
	return nil
}

// CodeOf returns the issue code of the given error or of the first error in its chain of
// causes that has one. An empty code is returned when no such error exists.
func CodeOf(err error) issue.Code {
	for err != nil {
		switch e := err.(type) {
		case *Caused:
			return e.Code()
		case issue.Reported:
			return e.Code()
		case interface{ Unwrap() error }:
			err = e.Unwrap()
		default:
			return ``
		}
	}
	return ``
}

func callerLocation(skip int) issue.Location {
	_, file, line, _ := runtime.Caller(skip)
	return issue.NewLocation(file, line, 0)
}
