package randgen

import (
	"flag"
	"fmt"
	"sort"
	"strings"
)

// oneof is a flag.Getter that limits the flag value to a fixed set of choices.
type oneof struct {
	choices map[string]interface{}
	value   string
}

var _ flag.Getter = (*oneof)(nil)

func (o *oneof) String() string {
	return o.value
}

func (o *oneof) Get() interface{} {
	return o
}

func (o *oneof) Set(v string) error {
	if _, ok := o.choices[v]; !ok {
		return fmt.Errorf("%q is not one of the choices of %s", v, o.choicesString())
	}
	o.value = v
	return nil
}

func (o oneof) choicesString() string {
	// Sort the choices to stabilize the output
	choices := make([]string, 0, len(o.choices))
	for c := range o.choices {
		choices = append(choices, fmt.Sprintf("%q", c))
	}
	sort.Strings(choices)
	return "(" + strings.Join(choices, ", ") + ")"
}

func (o oneof) getValue() interface{} {
	return o.choices[o.value]
}
