package css

import (
	"fmt"
	"strings"

	"github.com/npillmayer/docpp"
)

// Stylesheet is an ordered list of style rules. Rules are owned by value:
// they are copied on the way in and on the way out.
type Stylesheet struct {
	rules []*StyleRule
}

// NewStylesheet creates a stylesheet holding copies of rules.
func NewStylesheet(rules ...*StyleRule) *Stylesheet {
	sheet := &Stylesheet{}
	for _, r := range rules {
		sheet.PushBack(r)
	}
	return sheet
}

// Size returns the number of rules.
func (sheet *Stylesheet) Size() int {
	return len(sheet.rules)
}

// Empty checks if this stylesheet contains any rules.
func (sheet *Stylesheet) Empty() bool {
	return len(sheet.rules) == 0
}

// Rules returns copies of all rules in order.
func (sheet *Stylesheet) Rules() []*StyleRule {
	rules := make([]*StyleRule, len(sheet.rules))
	for i, r := range sheet.rules {
		rules[i] = r.Clone()
	}
	return rules
}

// Clone returns a deep copy of sheet.
func (sheet *Stylesheet) Clone() *Stylesheet {
	if sheet == nil {
		return nil
	}
	return NewStylesheet(sheet.rules...)
}

// Set replaces sheet with a copy of other.
func (sheet *Stylesheet) Set(other *Stylesheet) {
	if other == nil {
		sheet.rules = nil
		return
	}
	sheet.rules = other.Clone().rules
}

// AppendRules appends copies of the rules from another stylesheet.
func (sheet *Stylesheet) AppendRules(other *Stylesheet) {
	if other == nil {
		return
	}
	for _, r := range other.rules {
		sheet.PushBack(r)
	}
}

// PushBack appends a copy of r. Nil rules are ignored.
// It returns sheet to allow for chaining.
func (sheet *Stylesheet) PushBack(r *StyleRule) *Stylesheet {
	if r != nil {
		sheet.rules = append(sheet.rules, r.Clone())
	}
	return sheet
}

// PushFront prepends a copy of r. Nil rules are ignored.
// It returns sheet to allow for chaining.
func (sheet *Stylesheet) PushFront(r *StyleRule) *Stylesheet {
	if r != nil {
		sheet.rules = append([]*StyleRule{r.Clone()}, sheet.rules...)
	}
	return sheet
}

// Insert overwrites the rule at position i with a copy of r. i == Size()
// appends.
func (sheet *Stylesheet) Insert(i int, r *StyleRule) error {
	if r == nil {
		return fmt.Errorf("%w: cannot insert nil rule", docpp.ErrInvalidArgument)
	}
	if i < 0 || i > len(sheet.rules) {
		return fmt.Errorf("%w: insert rule at %d of %d", docpp.ErrOutOfRange, i, len(sheet.rules))
	}
	if i == len(sheet.rules) {
		sheet.PushBack(r)
		return nil
	}
	sheet.rules[i] = r.Clone()
	return nil
}

// At returns a copy of the rule at position i.
func (sheet *Stylesheet) At(i int) (*StyleRule, error) {
	if i < 0 || i >= len(sheet.rules) {
		return nil, fmt.Errorf("%w: rule %d of %d", docpp.ErrOutOfRange, i, len(sheet.rules))
	}
	return sheet.rules[i].Clone(), nil
}

// Front returns a copy of the first rule.
func (sheet *Stylesheet) Front() (*StyleRule, error) {
	return sheet.At(0)
}

// Back returns a copy of the last rule.
func (sheet *Stylesheet) Back() (*StyleRule, error) {
	return sheet.At(len(sheet.rules) - 1)
}

// Erase removes the rule at position i. Later rules move down by one.
func (sheet *Stylesheet) Erase(i int) error {
	if i < 0 || i >= len(sheet.rules) {
		return fmt.Errorf("%w: erase rule %d of %d", docpp.ErrOutOfRange, i, len(sheet.rules))
	}
	sheet.rules = append(sheet.rules[:i], sheet.rules[i+1:]...)
	return nil
}

// EraseRule removes the first rule equal to r, or fails with
// docpp.ErrNotFound.
func (sheet *Stylesheet) EraseRule(r *StyleRule) error {
	i := sheet.FindRule(r)
	if i == docpp.NotFound {
		tracer().Debugf("stylesheet: no rule to erase matches %v", r)
		return fmt.Errorf("%w: no matching rule", docpp.ErrNotFound)
	}
	return sheet.Erase(i)
}

// Find returns the position of the first rule with the given selector, or
// docpp.NotFound.
func (sheet *Stylesheet) Find(selector string) int {
	for i, r := range sheet.rules {
		if r.selector == selector {
			return i
		}
	}
	return docpp.NotFound
}

// FindRule returns the position of the first rule equal to r, or
// docpp.NotFound.
func (sheet *Stylesheet) FindRule(r *StyleRule) int {
	for i, rule := range sheet.rules {
		if rule.Equal(r) {
			return i
		}
	}
	return docpp.NotFound
}

// Swap exchanges the rules at positions i and j.
func (sheet *Stylesheet) Swap(i, j int) error {
	n := len(sheet.rules)
	if i < 0 || j < 0 || i >= n || j >= n {
		return fmt.Errorf("%w: swap rules %d and %d of %d", docpp.ErrOutOfRange, i, j, n)
	}
	sheet.rules[i], sheet.rules[j] = sheet.rules[j], sheet.rules[i]
	return nil
}

// Equal compares the rules of both stylesheets in order.
func (sheet *Stylesheet) Equal(other *Stylesheet) bool {
	if sheet == nil || other == nil {
		return sheet == other
	}
	if len(sheet.rules) != len(other.rules) {
		return false
	}
	for i := range sheet.rules {
		if !sheet.rules[i].Equal(other.rules[i]) {
			return false
		}
	}
	return true
}

// Get renders all rules with formatting f at indentation level `indent`.
func (sheet *Stylesheet) Get(f docpp.Formatting, indent int) string {
	var b strings.Builder
	for _, r := range sheet.rules {
		b.WriteString(r.Get(f, indent))
	}
	return b.String()
}

func (sheet *Stylesheet) String() string {
	return sheet.Get(docpp.Compact, 0)
}
