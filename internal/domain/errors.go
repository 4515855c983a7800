package domain

import "errors"

var (
	// ErrUnknownIndividual indicates a parent or couple entry references a
	// name missing from the individuals section. Fatal at construction.
	ErrUnknownIndividual = errors.New("unknown individual")

	// ErrIndividualNotFound indicates a queried name does not exist in the
	// built family graph.
	ErrIndividualNotFound = errors.New("individual not found")

	// ErrInvalidGender indicates a gender code outside the accepted set.
	ErrInvalidGender = errors.New("invalid gender code")

	// ErrMissingSection indicates a family description lacks one of its
	// required sections.
	ErrMissingSection = errors.New("missing description section")
)
