package doctor

import (
	"errors"
	"fmt"
)

// Resource is the kind of cluster resource a check runs against
type Resource int

const (
	Nodes Resource = iota
	Pods
	Services
	Events
)

var ErrInvalidResource = errors.New("invalid resource")

var resourceNames = map[Resource]string{
	Nodes:    "nodes",
	Pods:     "pods",
	Services: "services",
	Events:   "events",
}

// Resources lists every valid resource in the order they are documented
var Resources = []Resource{Nodes, Pods, Services, Events}

func (r Resource) String() string {
	if name, ok := resourceNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Resource(%d)", int(r))
}

// Namespaced reports whether listings of r can be filtered by namespace
func (r Resource) Namespaced() bool {
	return r != Nodes
}

// ParseResource maps a --check value to a Resource. The match is exact.
func ParseResource(s string) (Resource, error) {
	for _, r := range Resources {
		if resourceNames[r] == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w %q. Use 'nodes', 'pods', 'services', or 'events'", ErrInvalidResource, s)
}
