package app

import "fmt"

type OptionError struct {
	Name         string
	InvalidValue any
}

func (e OptionError) Error() string {
	if e.InvalidValue == nil {
		return fmt.Sprintf("Expected an option '%s' to be provided", e.Name)
	}
	return fmt.Sprintf("Option '%s' received invalid value '%v'", e.Name, e.InvalidValue)
}
