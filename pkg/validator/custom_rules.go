package validator

import "fmt"

// ValidateCustom validates value against the pattern registered as name.
// A nil registry behaves like an empty one.
func ValidateCustom(registry *Registry, value, name string) Result {
	if registry == nil {
		return customNotFound(name)
	}
	re, ok := registry.Lookup(name)
	if !ok {
		return customNotFound(name)
	}
	if !re.MatchString(value) {
		return invalid(ErrInvalidFormat, "validation.custom",
			fmt.Sprintf("Invalid input for %s.", name),
			map[string]any{"rule": name},
		)
	}
	return valid()
}

func customNotFound(name string) Result {
	return invalid(ErrCustomRuleNotFound, "validation.custom_not_found",
		fmt.Sprintf("Custom validation %s not found.", name),
		map[string]any{"rule": name},
	)
}
