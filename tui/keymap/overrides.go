package keymap

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
)

var bindingType = reflect.TypeOf(key.Binding{})

// ApplyOverrides applies keybinding overrides to any struct of key.Binding fields.
// Config keys are the snake_case form of the field names.
//
// Example:
//
//	km := keymap.Default()
//	ApplyOverrides(&km, map[string][]string{"select": {"l"}}) // -> km.Select
func ApplyOverrides(km interface{}, overrides map[string][]string) {
	if len(overrides) == 0 {
		return
	}

	v := reflect.ValueOf(km)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return
	}
	v = v.Elem()
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() || t.Field(i).Type != bindingType {
			continue
		}

		keys, ok := overrides[camelToSnake(t.Field(i).Name)]
		if !ok || len(keys) == 0 {
			continue
		}

		// Keep the help description, show the first new key
		current := field.Interface().(key.Binding)
		field.Set(reflect.ValueOf(key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(keys[0], current.Help().Desc),
		)))
	}
}

func fieldKeys(km interface{}) []string {
	t := reflect.TypeOf(km).Elem()
	var keys []string
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Type == bindingType {
			keys = append(keys, camelToSnake(t.Field(i).Name))
		}
	}
	return keys
}

// camelToSnake converts a CamelCase string to snake_case.
// Examples: Select -> select, PageDown -> page_down, HTTPServer -> http_server
func camelToSnake(s string) string {
	runes := []rune(s)
	var result strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && !unicode.IsUpper(runes[i-1])
			nextLower := i > 0 && i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || nextLower {
				result.WriteRune('_')
			}
			result.WriteRune(unicode.ToLower(r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
