package prompt

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// Validators for use with Input.WithValidator and Password.WithValidator.
// Combine with prompt.All to chain several checks.

// MinLength rejects values shorter than n characters.
func MinLength(n int) func(string) error {
	return func(value string) error {
		if utf8.RuneCountInString(value) < n {
			return fmt.Errorf("must be at least %d characters", n)
		}
		return nil
	}
}

// MaxLength rejects values longer than n characters.
func MaxLength(n int) func(string) error {
	return func(value string) error {
		if utf8.RuneCountInString(value) > n {
			return fmt.Errorf("must be at most %d characters", n)
		}
		return nil
	}
}

// Matches rejects values that do not match the pattern. The message is shown
// as the inline error.
func Matches(pattern, message string) func(string) error {
	re := regexp.MustCompile(pattern)
	return func(value string) error {
		if !re.MatchString(value) {
			return fmt.Errorf("%s", message)
		}
		return nil
	}
}

// All runs each validator in order and returns the first failure.
func All(validators ...func(string) error) func(string) error {
	return func(value string) error {
		for _, v := range validators {
			if err := v(value); err != nil {
				return err
			}
		}
		return nil
	}
}
