package svg

import (
	"strconv"
)

// Attribute is a single name="value" pair. The value is converted to text
// when the attribute is created and never again.
type Attribute struct {
	name  string
	value string
}

func NewAttribute(name, value string) Attribute {
	return Attribute{name: name, value: value}
}

func FloatAttribute(name string, value float64) Attribute {
	return Attribute{name: name, value: formatFloat(value)}
}

func IntAttribute(name string, value int) Attribute {
	return Attribute{name: name, value: strconv.Itoa(value)}
}

func BoolAttribute(name string, value bool) Attribute {
	return Attribute{name: name, value: strconv.FormatBool(value)}
}

func (a Attribute) Name() string  { return a.name }
func (a Attribute) Value() string { return a.value }

func (a *Attribute) SetValue(value string) {
	a.value = value
}

// String renders the attribute as it appears inside a tag. Values are not
// escaped.
func (a Attribute) String() string {
	return a.name + `="` + a.value + `"`
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
