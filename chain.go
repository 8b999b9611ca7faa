package pixfilter

import (
	"fmt"
	"strings"
)

// Step is a single filter application inside a Chain.
type Step struct {
	ID     FilterID
	Params Params
}

// Chain implements a list of filters that can be applied to an image at once.
type Chain struct {
	Steps []Step
}

// NewChain creates a new chain and initializes it with the given list of steps.
func NewChain(steps ...Step) *Chain {
	return &Chain{
		Steps: steps,
	}
}

// ParseChain builds a chain from a comma separated list of filter identifiers.
// Every step shares the same parameters. Unlike Apply, unknown names are reported.
func ParseChain(list string, params Params) (*Chain, error) {
	c := NewChain()
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		id := ParseFilter(name)
		if id == FilterUnknown {
			return nil, fmt.Errorf("unknown filter %q", name)
		}
		c.Add(id, params)
	}
	return c, nil
}

// Add appends a filter to the chain.
func (c *Chain) Add(id FilterID, params Params) {
	c.Steps = append(c.Steps, Step{ID: id, Params: params})
}

// Apply runs all the steps in order on the current backend, each one filtering
// the output of the previous one. An empty chain returns a copy of pix.
func (c *Chain) Apply(pix []uint8, width, height int) []uint8 {
	return c.Run(CurrentBackend(), pix, width, height)
}

// Run is like Apply but executes every step on the given backend.
func (c *Chain) Run(b Backend, pix []uint8, width, height int) []uint8 {
	if len(c.Steps) == 0 {
		out := make([]uint8, len(pix))
		copy(out, pix)
		return out
	}
	out := pix
	for _, s := range c.Steps {
		out = applyFilter(b, out, width, height, s.ID, s.Params)
	}
	return out
}

// String returns the chain as a comma separated list of filter identifiers.
func (c *Chain) String() string {
	names := make([]string, len(c.Steps))
	for i, s := range c.Steps {
		names[i] = s.ID.String()
	}
	return strings.Join(names, ",")
}
