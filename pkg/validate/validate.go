// Package validate provides struct-tag validation for request payloads.
//
// Supported rules (comma-separated in the `validate` tag):
//
//	required        field must be present: non-nil pointer, non-blank string,
//	                non-empty slice, non-zero number
//	nullable        if empty, skip all remaining rules for this field
//	email           valid email address
//	url             valid http/https URL
//	min=N           string: min char length | slice: min length | number: min value
//	max=N           string: max char length | slice: max length | number: max value
//	gte=N           number >= N
//	lte=N           number <= N
//	in=a|b|c        value must be one of the listed items
//	dive            validate every element of a slice of structs
//
// Pointer fields are dereferenced before rules run; a nil pointer without
// `required` skips its rules, so optional numbers can still carry ranges.
//
// Errors are keyed by JSON path, nested elements included:
//
//	type Item  struct { Qty int `json:"quantity" validate:"min=1"` }
//	type Order struct { Items []Item `json:"items" validate:"required,min=1,dive"` }
//
//	validate.Struct(Order{Items: []Item{{Qty: 0}}})
//	// → Errors{"items[0].quantity": "The quantity must be at least 1."}
package validate

import (
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Errors maps a field path to the message of its first failing rule.
type Errors map[string]string

// Error joins the messages in path order so the output is deterministic.
func (e Errors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return strings.Join(parts, "; ")
}

// Struct validates all exported fields of v that carry a `validate` tag.
// The returned map is never nil; it is empty when v is valid.
func Struct(v interface{}) Errors {
	errs := make(Errors)
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return errs
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return errs
	}
	walk(rv, "", errs)
	return errs
}

// HasErrors returns true when errs is non-empty.
func HasErrors(errs Errors) bool { return len(errs) > 0 }

func walk(rv reflect.Value, prefix string, errs Errors) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}

		name := jsonFieldName(field)
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}
		checkField(rv.Field(i), name, path, splitRules(tag), errs)
	}
}

func checkField(value reflect.Value, name, path string, rules []string, errs Errors) {
	present := false
	if value.Kind() == reflect.Ptr {
		if value.IsNil() {
			if hasRule(rules, "required") {
				errs[path] = fmt.Sprintf("The %s field is required.", name)
			}
			return
		}
		value = value.Elem()
		present = true
	}

	if hasRule(rules, "nullable") && isEmpty(value) {
		return
	}

	for _, rule := range rules {
		switch rule {
		case "nullable":
			continue
		case "required":
			if present {
				continue // a set pointer is present even when it points at zero
			}
		case "dive":
			diveInto(value, path, errs)
			continue
		}
		if msg := applyRule(rule, name, value); msg != "" {
			errs[path] = msg
			return
		}
	}
}

func diveInto(value reflect.Value, path string, errs Errors) {
	if value.Kind() != reflect.Slice && value.Kind() != reflect.Array {
		return
	}
	for i := 0; i < value.Len(); i++ {
		elem := value.Index(i)
		for elem.Kind() == reflect.Ptr && !elem.IsNil() {
			elem = elem.Elem()
		}
		if elem.Kind() == reflect.Struct {
			walk(elem, fmt.Sprintf("%s[%d]", path, i), errs)
		}
	}
}

// ─── Rules ────────────────────────────────────────────────────────────────────

func applyRule(rule, field string, v reflect.Value) string {
	raw := fmt.Sprintf("%v", v.Interface())
	key, param, _ := strings.Cut(rule, "=")

	switch key {
	case "required":
		if isEmpty(v) {
			return fmt.Sprintf("The %s field is required.", field)
		}

	case "email":
		if !emailRE.MatchString(raw) {
			return fmt.Sprintf("The %s must be a valid email address.", field)
		}
	case "url":
		u, err := url.ParseRequestURI(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Sprintf("The %s must be a valid URL.", field)
		}

	case "min":
		n := mustParseFloat(param)
		switch {
		case isNumericKind(v):
			if toFloat(v) < n {
				return fmt.Sprintf("The %s must be at least %s.", field, param)
			}
		case v.Kind() == reflect.Slice || v.Kind() == reflect.Array:
			if float64(v.Len()) < n {
				return fmt.Sprintf("The %s must have at least %s items.", field, param)
			}
		default:
			if float64(len([]rune(raw))) < n {
				return fmt.Sprintf("The %s must be at least %s characters.", field, param)
			}
		}
	case "max":
		n := mustParseFloat(param)
		switch {
		case isNumericKind(v):
			if toFloat(v) > n {
				return fmt.Sprintf("The %s must not be greater than %s.", field, param)
			}
		case v.Kind() == reflect.Slice || v.Kind() == reflect.Array:
			if float64(v.Len()) > n {
				return fmt.Sprintf("The %s must not have more than %s items.", field, param)
			}
		default:
			if float64(len([]rune(raw))) > n {
				return fmt.Sprintf("The %s must not exceed %s characters.", field, param)
			}
		}
	case "gte":
		if toFloat(v) < mustParseFloat(param) {
			return fmt.Sprintf("The %s must be greater than or equal to %s.", field, param)
		}
	case "lte":
		if toFloat(v) > mustParseFloat(param) {
			return fmt.Sprintf("The %s must be less than or equal to %s.", field, param)
		}

	case "in":
		for _, a := range strings.Split(param, "|") {
			if raw == strings.TrimSpace(a) {
				return ""
			}
		}
		return fmt.Sprintf("The selected %s is invalid.", field)

	default:
		return fmt.Sprintf("The %s has an unknown validation rule %q.", field, key)
	}

	return ""
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

var emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	case reflect.Bool:
		return false // false is a value, not an absence
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	}
	return false
}

func isNumericKind(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func toFloat(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return v.Float()
	}
	f, _ := strconv.ParseFloat(fmt.Sprintf("%v", v.Interface()), 64)
	return f
}

func mustParseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}

func jsonFieldName(f reflect.StructField) string {
	name := f.Tag.Get("json")
	if name == "" || name == "-" {
		return strings.ToLower(f.Name)
	}
	if idx := strings.Index(name, ","); idx != -1 {
		name = name[:idx]
	}
	return name
}

// splitRules splits a tag on commas. Multi-value params use "|" (in=a|b),
// so commas always separate rules.
func splitRules(tag string) []string {
	parts := strings.Split(tag, ",")
	rules := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			rules = append(rules, p)
		}
	}
	return rules
}

func hasRule(rules []string, target string) bool {
	for _, r := range rules {
		if r == target {
			return true
		}
	}
	return false
}
