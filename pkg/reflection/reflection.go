// Package reflection maps component properties onto host element attributes.
//
// Property names are camelCase, attribute names are case-insensitive
// lower-kebab. The mapping is bidirectional and must stay consistent: setting
// either side updates the other, unless the component shadows the property
// with its own accessor pair, in which case reflection is suppressed.
package reflection

import (
	"strconv"
	"strings"
	"unicode"
)

// AttrType selects the serialization used when a property value crosses the
// attribute boundary.
type AttrType int

const (
	// TypeString reflects the value verbatim.
	TypeString AttrType = iota
	// TypeBoolean reflects true as an attribute present with an empty string
	// value; absence of the attribute reads back as false.
	TypeBoolean
	// TypeNumber reflects via decimal formatting; values read back as float64.
	TypeNumber
)

func (t AttrType) String() string {
	switch t {
	case TypeBoolean:
		return "boolean"
	case TypeNumber:
		return "number"
	default:
		return "string"
	}
}

// globalAttrs is the fixed table of global HTML property↔attribute mappings
// applied to declared properties whose names are not plain kebab conversions.
var globalAttrs = map[string]string{
	"accessKey":            "accesskey",
	"ariaActiveDescendant": "aria-activedescendant",
	"ariaChecked":          "aria-checked",
	"ariaCurrent":          "aria-current",
	"ariaDescribedBy":      "aria-describedby",
	"ariaDisabled":         "aria-disabled",
	"ariaExpanded":         "aria-expanded",
	"ariaHidden":           "aria-hidden",
	"ariaInvalid":          "aria-invalid",
	"ariaLabel":            "aria-label",
	"ariaLabelledBy":       "aria-labelledby",
	"ariaLive":             "aria-live",
	"ariaPressed":          "aria-pressed",
	"ariaReadOnly":         "aria-readonly",
	"ariaRequired":         "aria-required",
	"ariaSelected":         "aria-selected",
	"dir":                  "dir",
	"hidden":               "hidden",
	"id":                   "id",
	"lang":                 "lang",
	"role":                 "role",
	"tabIndex":             "tabindex",
	"title":                "title",
}

// globalProps is the reverse of globalAttrs, built once at init.
var globalProps = func() map[string]string {
	m := make(map[string]string, len(globalAttrs))
	for prop, attr := range globalAttrs {
		m[attr] = prop
	}
	return m
}()

// AttributeName returns the attribute reflected by the given property name.
// Global HTML properties use the fixed table; everything else converts
// camelCase to lower-kebab (fooBar -> foo-bar).
func AttributeName(prop string) string {
	if attr, ok := globalAttrs[prop]; ok {
		return attr
	}
	var sb strings.Builder
	for _, r := range prop {
		if unicode.IsUpper(r) {
			sb.WriteByte('-')
			sb.WriteRune(unicode.ToLower(r))
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// PropertyName returns the property that reflects the given attribute name.
// Attribute names are case-insensitive.
func PropertyName(attr string) string {
	attr = strings.ToLower(attr)
	if prop, ok := globalProps[attr]; ok {
		return prop
	}
	var sb strings.Builder
	upper := false
	for _, r := range attr {
		if r == '-' {
			upper = true
			continue
		}
		if upper {
			sb.WriteRune(unicode.ToUpper(r))
			upper = false
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Serialize converts a property value into its attribute form.
// The second result is false when the attribute should be absent (boolean
// false, or a nil value of any type).
func Serialize(t AttrType, value any) (string, bool) {
	if value == nil {
		return "", false
	}
	switch t {
	case TypeBoolean:
		b, _ := value.(bool)
		return "", b
	case TypeNumber:
		switch n := value.(type) {
		case float64:
			return strconv.FormatFloat(n, 'f', -1, 64), true
		case int:
			return strconv.Itoa(n), true
		default:
			return "", false
		}
	default:
		s, ok := value.(string)
		if !ok {
			return "", false
		}
		return s, true
	}
}

// Deserialize converts an attribute value into the property form for the
// given type. present is false when the attribute is absent from the host.
// Numbers come back as float64; unparsable numeric attributes come back nil.
func Deserialize(t AttrType, value string, present bool) any {
	switch t {
	case TypeBoolean:
		return present
	case TypeNumber:
		if !present {
			return nil
		}
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil
		}
		return n
	default:
		if !present {
			return nil
		}
		return value
	}
}
