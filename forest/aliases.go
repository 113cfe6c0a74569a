// Package forest: field aliasing as static configuration.
//
// Aliases is resolved once at construction into a fixed struct of
// role → storage-key mappings, so the core stays free of stringly-typed
// lookups while the external configurability contract is preserved.
package forest

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Logical role names; each alias defaults to its role name.
const (
	RoleID       = "id"
	RoleChildren = "children"
	RoleBranch   = "branch"
	RoleIndex    = "index"
	RoleNext     = "next"
	RoleParent   = "parent"
	RolePrev     = "prev"
	RoleSiblings = "siblings"
)

// Aliases maps each logical role to its storage key. ID and Children name
// the two keys the library reads/writes on Node payloads; the remaining
// six name the keys under which Snapshot.Relations materializes the
// derived relation set. All eight must be non-empty and pairwise distinct.
type Aliases struct {
	ID       string `yaml:"id"`
	Children string `yaml:"children"`
	Branch   string `yaml:"branch"`
	Index    string `yaml:"index"`
	Next     string `yaml:"next"`
	Parent   string `yaml:"parent"`
	Prev     string `yaml:"prev"`
	Siblings string `yaml:"siblings"`
}

// DefaultAliases returns the role-name defaults:
// id, children, branch, index, next, parent, prev, siblings.
func DefaultAliases() Aliases {
	return Aliases{
		ID:       RoleID,
		Children: RoleChildren,
		Branch:   RoleBranch,
		Index:    RoleIndex,
		Next:     RoleNext,
		Parent:   RoleParent,
		Prev:     RolePrev,
		Siblings: RoleSiblings,
	}
}

// ParseAliases resolves an alias set from a YAML document of role → key
// overrides (JSON is valid YAML, so JSON documents work too). Omitted
// roles keep their defaults. The resolved set is validated before return.
//
//	aliases, err := forest.ParseAliases([]byte("id: uid\nchildren: items"))
//
// Complexity: O(len(data)).
func ParseAliases(data []byte) (Aliases, error) {
	a := DefaultAliases()
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &a); err != nil {
			return Aliases{}, fmt.Errorf("forest: parse aliases: %w", err)
		}
	}
	if err := a.validate(); err != nil {
		return Aliases{}, err
	}

	return a, nil
}

// validate enforces the alias contract: every key non-empty, all eight
// pairwise distinct. Returns ErrAliasEmpty or ErrAliasCollision.
func (a Aliases) validate() error {
	pairs := [...]struct{ role, key string }{
		{RoleID, a.ID},
		{RoleChildren, a.Children},
		{RoleBranch, a.Branch},
		{RoleIndex, a.Index},
		{RoleNext, a.Next},
		{RoleParent, a.Parent},
		{RolePrev, a.Prev},
		{RoleSiblings, a.Siblings},
	}

	seen := make(map[string]string, len(pairs))
	for _, p := range pairs {
		if p.key == "" {
			return fmt.Errorf("%w: role %s", ErrAliasEmpty, p.role)
		}
		if other, dup := seen[p.key]; dup {
			return fmt.Errorf("%w: roles %s and %s both map to %q", ErrAliasCollision, other, p.role, p.key)
		}
		seen[p.key] = p.role
	}

	return nil
}

// IDOf returns n's id under the configured key. The second return is
// false when the key is absent or does not hold a non-empty string.
// Complexity: O(1).
func (a Aliases) IDOf(n Node) (string, bool) {
	if n == nil {
		return "", false
	}
	id, ok := n[a.ID].(string)

	return id, ok && id != ""
}

// ChildrenOf returns n's canonical child slice, or nil for a leaf. The
// returned slice is the live storage, not a copy. Forests that went
// through NewTree always hold children as []Node, so no conversion
// happens here.
// Complexity: O(1).
func (a Aliases) ChildrenOf(n Node) []Node {
	if n == nil {
		return nil
	}
	kids, _ := n[a.Children].([]Node)

	return kids
}
