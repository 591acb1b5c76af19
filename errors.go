/*
 * errors.go, part of gaussian-wranger.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 */

package chem

// Error is the interface the packages in this library implement for
// their errors. Decorate allows adding information to the error as it
// goes up the calling stack, without wrapping it into another type.
// The decoration slice should contain a list of the functions in the
// calling stack, plus, for each, any relevant extra information in the
// format "FunctionName: extra info".
type Error interface {
	Error() string
	Decorate(string) []string
	Critical() bool
}

// CError is the concrete error type of the package.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

// Decorate adds dec to the decoration slice of the error and returns
// the resulting slice. If dec is empty it only returns the slice.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical returns whether the error is critical or can be ignored.
// All CErrors are critical.
func (err CError) Critical() bool { return true }

// errDecorate asserts that err implements Error, decorates it with the
// caller's name and returns it. Errors from outside the library are
// wrapped into a CError first.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	err2, ok := err.(Error)
	if !ok {
		err2 = CError{err.Error(), []string{}}
	}
	err2.Decorate(caller)
	return err2
}

// PanicMsg is the type used for the messages of panics raised on
// programming errors, as opposed to runtime conditions, which use
// CError.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilMolecule    = PanicMsg("gaussian-wranger: nil molecule")
	ErrAtomOutOfRange = PanicMsg("gaussian-wranger: requested atom out of range")
)
