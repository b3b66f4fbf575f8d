package vcdgen

import "strings"

// Scope is a named node of the module hierarchy declared in the VCD header.
type Scope struct {
	Name     string  `yaml:"name"`
	Children []Scope `yaml:"children"`
}

// DefaultScopes returns the fixed hierarchy used for stress test dumps.
func DefaultScopes() Scope {
	return Scope{
		Name: "top",
		Children: []Scope{
			{Name: "cpu", Children: []Scope{
				{Name: "alu"},
				{Name: "regfile"},
				{Name: "control"},
			}},
			{Name: "mem", Children: []Scope{
				{Name: "cache"},
				{Name: "arbiter"},
			}},
			{Name: "io"},
		},
	}
}

// Flatten returns the full dotted path of s and of all its descendants in
// pre-order, children visited in declaration order.
func (s Scope) Flatten() []string {
	return s.flatten("", nil)
}

func (s Scope) flatten(parent string, paths []string) []string {
	path := joinScopePath(parent, s.Name)
	paths = append(paths, path)
	for _, c := range s.Children {
		paths = c.flatten(path, paths)
	}
	return paths
}

func joinScopePath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

// validScopeName rejects names that would break the dotted path or be read
// as a VCD keyword.
func validScopeName(name string) bool {
	return name != "" && !strings.HasPrefix(name, "$") && !strings.ContainsAny(name, " \t\r\n.")
}
