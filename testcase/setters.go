package testcase

import (
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidPriority is returned when a priority is not a known value.
var ErrInvalidPriority = errors.New("invalid priority")

// ErrInvalidType is returned when a type is not a known value.
var ErrInvalidType = errors.New("invalid type")

// ErrInvalidPlatform is returned when a platform is not a known value.
var ErrInvalidPlatform = errors.New("invalid platform")

// SetTitle returns an UpdateSetter that sets the case title.
func SetTitle(title string) UpdateSetter {
	return func(tc *TestCase) error {
		if title == "" {
			return ErrInvalidTestCaseTitle
		}
		tc.Title = title
		return nil
	}
}

// SetPriority returns an UpdateSetter that sets the case priority.
func SetPriority(priority Priority) UpdateSetter {
	return func(tc *TestCase) error {
		if !priority.IsValid() {
			return ErrInvalidPriority
		}
		tc.Priority = priority
		return nil
	}
}

// SetType returns an UpdateSetter that sets the case type.
func SetType(caseType Type) UpdateSetter {
	return func(tc *TestCase) error {
		if !caseType.IsValid() {
			return ErrInvalidType
		}
		tc.Type = caseType
		return nil
	}
}

// SetPrecondition returns an UpdateSetter that sets the case precondition.
func SetPrecondition(precondition string) UpdateSetter {
	return func(tc *TestCase) error {
		tc.Precondition = precondition
		return nil
	}
}

// SetNote returns an UpdateSetter that sets the case note.
func SetNote(note string) UpdateSetter {
	return func(tc *TestCase) error {
		tc.Note = note
		return nil
	}
}

// SetSection returns an UpdateSetter that moves the case into a section.
// A nil section makes the case uncategorized.
func SetSection(sectionID *uuid.UUID) UpdateSetter {
	return func(tc *TestCase) error {
		tc.SectionID = sectionID
		return nil
	}
}

// SetPlatform returns an UpdateSetter that sets the case platform.
func SetPlatform(platform Platform) UpdateSetter {
	return func(tc *TestCase) error {
		if !platform.IsValid() {
			return ErrInvalidPlatform
		}
		tc.PlatformType = platform
		return nil
	}
}

// SetSteps returns an UpdateSetter that replaces the step list. Steps
// without an ID get one assigned.
func SetSteps(steps Steps) UpdateSetter {
	return func(tc *TestCase) error {
		if len(steps) == 0 {
			return ErrNoSteps
		}
		for i := range steps {
			if steps[i].ID == uuid.Nil {
				steps[i].ID = uuid.New()
			}
		}
		tc.Steps = steps
		return nil
	}
}
