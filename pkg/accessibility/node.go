package accessibility

import (
	"github.com/GatoImorrivel/vizia/pkg/cache"
	"github.com/GatoImorrivel/vizia/pkg/entity"
)

// NodeID identifies a node in the accessibility tree. IDs are derived
// from entity handles so a node keeps its identity across updates for
// as long as the entity is alive.
type NodeID uint64

// IDFor returns the accessibility node ID for an entity.
func IDFor(e entity.Entity) NodeID {
	return NodeID(e)
}

// Role describes what kind of element a node represents to assistive
// technology.
type Role int

const (
	RoleUnknown Role = iota
	RoleWindow
	RoleLabel
	RoleButton
	RoleCheckBox
	RoleSlider
	RoleTextInput
)

func (r Role) String() string {
	switch r {
	case RoleWindow:
		return "window"
	case RoleLabel:
		return "label"
	case RoleButton:
		return "button"
	case RoleCheckBox:
		return "checkbox"
	case RoleSlider:
		return "slider"
	case RoleTextInput:
		return "textinput"
	default:
		return "unknown"
	}
}

// Node is the assistive-technology description of a single element.
type Node struct {
	Role   Role
	Label  string
	Value  string
	Bounds cache.Rect
}

// Describer is implemented by views that contribute to the
// accessibility tree. Views that do not implement it are invisible to
// assistive technology but their children are still visited.
type Describer interface {
	DescribeNode(node *Node)
}
