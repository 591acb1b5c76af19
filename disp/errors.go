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

package disp

// CError is the concrete error type of the package. It follows the
// decorated-error scheme of the root chem package.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

// Decorate adds dec to the decoration slice of the error and returns
// the resulting slice. An empty dec only returns the slice.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical returns whether the error is critical. All disp errors are.
func (err CError) Critical() bool { return true }

type errorInt interface {
	Error() string
	Decorate(string) []string
}

func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	err2, ok := err.(errorInt)
	if !ok {
		return CError{err.Error(), []string{caller}}
	}
	err2.Decorate(caller)
	return err2.(error)
}

// PanicMsg is the type for panics on programming errors.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }
