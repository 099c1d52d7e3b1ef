package changelog

import "fmt"

// CategoryType is one of the fixed kinds of change a changelog entry can have.
type CategoryType int

const (
	Added CategoryType = iota
	Changed
	Breaking
	Deprecated
	Docs
	Experimental
	Fixed
	Improved
	Noted
	Performance
	Refactored
	Removed
	Security
	Style
	Tests
	Unreleased
	Workaround
)

// AllCategories returns every category in declaration order.
func AllCategories() []CategoryType {
	return []CategoryType{
		Added, Changed, Breaking, Deprecated, Docs, Experimental, Fixed, Improved,
		Noted, Performance, Refactored, Removed, Security, Style, Tests, Unreleased,
		Workaround,
	}
}

// PresentationOrder returns the order in which categories are emitted inside a
// changes block. It is independent of the order used in the source document.
func PresentationOrder() []CategoryType {
	return []CategoryType{
		Unreleased, Breaking, Added, Fixed, Workaround, Changed, Removed, Improved,
		Docs, Tests, Refactored, Deprecated, Experimental, Noted, Performance,
		Style, Security,
	}
}

// Key returns the YAML key used for the category in a changes block.
func (c CategoryType) Key() string {
	switch c {
	case Added:
		return "added"
	case Changed:
		return "changed"
	case Breaking:
		return "breaking"
	case Deprecated:
		return "deprecated"
	case Docs:
		return "docs"
	case Experimental:
		return "experimental"
	case Fixed:
		return "fixed"
	case Improved:
		return "improved"
	case Noted:
		return "noted"
	case Performance:
		return "performance"
	case Refactored:
		return "refactored"
	case Removed:
		return "removed"
	case Security:
		return "security"
	case Style:
		return "style"
	case Tests:
		return "tests"
	case Unreleased:
		return "unreleased"
	case Workaround:
		return "workaround"
	default:
		panic(fmt.Sprintf("unknown category type %d", int(c)))
	}
}

// Icon returns the emoji identifier shown in front of every entry of the category.
func (c CategoryType) Icon() string {
	switch c {
	case Added:
		return "star2"
	case Changed:
		return "hammer_and_wrench"
	case Breaking:
		return "triangular_flag_on_post"
	case Deprecated:
		return "spider_web"
	case Docs:
		return "book"
	case Experimental:
		return "alembic"
	case Fixed:
		return "lady_beetle"
	case Improved:
		return "art"
	case Noted:
		return "beetle"
	case Performance:
		return "zap"
	case Refactored:
		return "recycle"
	case Removed:
		return "fire"
	case Security:
		return "lock"
	case Style:
		return "gem"
	case Tests:
		return "vertical_traffic_light"
	case Unreleased:
		return "soon"
	case Workaround:
		return "see_no_evil"
	default:
		panic(fmt.Sprintf("unknown category type %d", int(c)))
	}
}

// Label returns the human-readable label of the category.
func (c CategoryType) Label() string {
	switch c {
	case Added:
		return "added"
	case Changed:
		return "changed"
	case Breaking:
		return "breaking"
	case Deprecated:
		return "deprecated"
	case Docs:
		return "docs"
	case Experimental:
		return "experimental"
	case Fixed:
		return "fixed"
	case Improved:
		return "improved"
	case Noted:
		return "known issue"
	case Performance:
		return "performance"
	case Refactored:
		return "refactor"
	case Removed:
		return "removed"
	case Security:
		return "security"
	case Style:
		return "style"
	case Tests:
		return "test"
	case Unreleased:
		return "unreleased"
	case Workaround:
		return "workaround"
	default:
		panic(fmt.Sprintf("unknown category type %d", int(c)))
	}
}

// String implements fmt.Stringer.
func (c CategoryType) String() string {
	return c.Key()
}

// ParseCategory maps a changes-block key to its category.
func ParseCategory(key string) (CategoryType, bool) {
	for _, c := range AllCategories() {
		if c.Key() == key {
			return c, true
		}
	}
	return 0, false
}
