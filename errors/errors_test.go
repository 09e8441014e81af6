/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("Player", "123")

	expected := `Player with key "123" not found`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}

	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestAlreadyExistsError(t *testing.T) {
	err := NewAlreadyExistsError("RatingSystem", "ABC")

	expected := `RatingSystem with key "ABC" already exists`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrAlreadyExists) {
		t.Error("AlreadyExistsError should match ErrAlreadyExists")
	}

	if !IsAlreadyExists(err) {
		t.Error("IsAlreadyExists should return true for AlreadyExistsError")
	}
}

func TestInvalidArgumentError(t *testing.T) {
	tests := []struct {
		name     string
		argument string
		message  string
		expected string
	}{
		{
			name:     "WithArgument",
			argument: "parameter",
			message:  "must not be nil",
			expected: `invalid argument "parameter": must not be nil`,
		},
		{
			name:     "WithoutArgument",
			argument: "",
			message:  "model class name is empty",
			expected: "invalid argument: model class name is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewInvalidArgumentError(tt.argument, tt.message)
			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Error("InvalidArgumentError should match ErrInvalidArgument")
			}
			if !IsInvalidArgument(err) {
				t.Error("IsInvalidArgument should return true for InvalidArgumentError")
			}
		})
	}
}
