package accounts

import (
	"fmt"
	"strings"

	"github.com/homeledger-dev/homeledger/internal/model"
)

// PathSeparator joins account names in a hierarchy path.
const PathSeparator = " / "

// maxPathDepth caps ancestor walks. Real charts are a handful of levels
// deep; hitting the ceiling means the parent links are malformed.
const maxPathDepth = 20

// WarningKind names a recoverable chart-of-accounts condition.
type WarningKind string

const (
	// WarnOrphanAccount marks an account whose ParentID does not resolve.
	// Orphans are promoted to the root level rather than rejected.
	WarnOrphanAccount WarningKind = "orphan-account"
	// WarnCycleSuspected marks an ancestry walk that hit a repeated node
	// or the depth ceiling.
	WarnCycleSuspected WarningKind = "cycle-suspected"
	// WarnTypeMismatch marks a child whose type differs from its parent's.
	// Mixed hierarchies stay permitted; this only surfaces them.
	WarnTypeMismatch WarningKind = "type-mismatch"
)

// Warning describes one recoverable condition found while traversing the
// chart. Traversal never fails on bad data; it degrades and reports.
type Warning struct {
	Kind      WarningKind
	AccountID string
	Detail    string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s [%s]: %s", w.Kind, w.AccountID, w.Detail)
}

// Node is one account in the built forest.
type Node struct {
	Account  model.Account
	Children []*Node
}

// BuildForest partitions a flat account list into a forest. Children keep
// the input order. An account whose ParentID points nowhere is promoted
// to the root level and reported as an orphan.
func BuildForest(accts []model.Account) ([]*Node, []Warning) {
	nodes := make(map[string]*Node, len(accts))
	for _, a := range accts {
		nodes[a.ID] = &Node{Account: a}
	}

	var roots []*Node
	var warnings []Warning
	for _, a := range accts {
		n := nodes[a.ID]
		if a.ParentID == "" {
			roots = append(roots, n)
			continue
		}
		parent, ok := nodes[a.ParentID]
		if !ok {
			warnings = append(warnings, Warning{
				Kind:      WarnOrphanAccount,
				AccountID: a.ID,
				Detail:    fmt.Sprintf("parent %q not found, promoted to root", a.ParentID),
			})
			roots = append(roots, n)
			continue
		}
		parent.Children = append(parent.Children, n)
	}
	return roots, warnings
}

// ChildIndex builds a parent ID -> direct children mapping in one pass.
// Orphans are indexed under the empty key together with true roots.
func ChildIndex(accts []model.Account) map[string][]model.Account {
	known := make(map[string]bool, len(accts))
	for _, a := range accts {
		known[a.ID] = true
	}
	idx := make(map[string][]model.Account)
	for _, a := range accts {
		parent := a.ParentID
		if !known[parent] {
			parent = ""
		}
		idx[parent] = append(idx[parent], a)
	}
	return idx
}

// Path walks from acct to its root and joins the names root-first.
// The walk stops at maxPathDepth or on a repeated node; either way the
// partial path is returned along with a cycle warning.
func Path(acct model.Account, accts []model.Account) (string, []Warning) {
	byID := make(map[string]model.Account, len(accts))
	for _, a := range accts {
		byID[a.ID] = a
	}

	names := []string{acct.Name}
	visited := map[string]bool{acct.ID: true}
	var warnings []Warning

	cur := acct
	for depth := 0; cur.ParentID != ""; depth++ {
		if depth >= maxPathDepth {
			warnings = append(warnings, Warning{
				Kind:      WarnCycleSuspected,
				AccountID: acct.ID,
				Detail:    fmt.Sprintf("ancestry deeper than %d levels, path truncated", maxPathDepth),
			})
			break
		}
		parent, ok := byID[cur.ParentID]
		if !ok {
			break // dangling parent, partial path is the best we can do
		}
		if visited[parent.ID] {
			warnings = append(warnings, Warning{
				Kind:      WarnCycleSuspected,
				AccountID: acct.ID,
				Detail:    fmt.Sprintf("parent chain revisits %q, path truncated", parent.ID),
			})
			break
		}
		visited[parent.ID] = true
		names = append(names, parent.Name)
		cur = parent
	}

	// Collected leaf-first; reverse in place.
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, PathSeparator), warnings
}

// DescendantIDs returns the inclusive set of account IDs under rootID.
// Iterative with a visited set, so malformed parent links cannot make it
// loop forever.
func DescendantIDs(rootID string, accts []model.Account) map[string]bool {
	children := make(map[string][]string)
	for _, a := range accts {
		if a.ParentID != "" {
			children[a.ParentID] = append(children[a.ParentID], a.ID)
		}
	}

	ids := map[string]bool{rootID: true}
	stack := []string{rootID}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, child := range children[cur] {
			if ids[child] {
				continue
			}
			ids[child] = true
			stack = append(stack, child)
		}
	}
	return ids
}

// TypeMismatches reports every child whose type differs from its parent's.
// A clean chart has none; cross-type nesting still works everywhere else.
func TypeMismatches(accts []model.Account) []Warning {
	byID := make(map[string]model.Account, len(accts))
	for _, a := range accts {
		byID[a.ID] = a
	}

	var warnings []Warning
	for _, a := range accts {
		if a.ParentID == "" {
			continue
		}
		parent, ok := byID[a.ParentID]
		if !ok {
			continue // orphan, reported by BuildForest
		}
		if a.Type != parent.Type {
			warnings = append(warnings, Warning{
				Kind:      WarnTypeMismatch,
				AccountID: a.ID,
				Detail:    fmt.Sprintf("type %s under %s parent %q", a.Type, parent.Type, parent.ID),
			})
		}
	}
	return warnings
}
