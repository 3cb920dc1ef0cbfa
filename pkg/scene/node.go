// Package scene provides the object tree that specs run against.
//
// A Node is a positioned, optionally textured element with an ordered list of
// children. Draw order follows the children slice: the head is drawn first
// (backmost), the tail last (frontmost). The harness hands each spec the root
// node; objects a spec creates are attached under it and removed again at the
// test boundary.
package scene

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Node is an element of the scene tree.
type Node struct {
	name    string
	image   *ebiten.Image // nil for pure containers
	x, y    float64
	visible bool
	alpha   float64

	parent   *Node
	children []*Node
}

// NewNode creates a detached node. The image may be nil for a container node.
func NewNode(name string, img *ebiten.Image) *Node {
	return &Node{
		name:     name,
		image:    img,
		visible:  true,
		alpha:    1.0,
		children: make([]*Node, 0),
	}
}

// Name returns the node name.
func (n *Node) Name() string {
	return n.name
}

// Image returns the node image, which may be nil.
func (n *Node) Image() *ebiten.Image {
	return n.image
}

// SetImage sets the node image.
func (n *Node) SetImage(img *ebiten.Image) {
	n.image = img
}

// Position returns the node position relative to its parent.
func (n *Node) Position() (float64, float64) {
	return n.x, n.y
}

// SetPosition sets the node position relative to its parent.
func (n *Node) SetPosition(x, y float64) {
	n.x = x
	n.y = y
}

// Visible returns whether the node itself is visible.
func (n *Node) Visible() bool {
	return n.visible
}

// SetVisible sets the node visibility.
func (n *Node) SetVisible(v bool) {
	n.visible = v
}

// Alpha returns the node opacity (0.0 to 1.0).
func (n *Node) Alpha() float64 {
	return n.alpha
}

// SetAlpha sets the node opacity, clamped to [0, 1].
func (n *Node) SetAlpha(a float64) {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	n.alpha = a
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the child slice in draw order.
func (n *Node) Children() []*Node {
	return n.children
}

// Child returns the first direct child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// AddChild appends a child at the end of the slice (frontmost).
// A child already attached elsewhere is detached from its old parent first.
func (n *Node) AddChild(child *Node) {
	if child == nil || child == n {
		return
	}
	if child.parent != nil && child.parent != n {
		child.parent.RemoveChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches a direct child. Detaching a node that is not a child
// is a no-op.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			c.parent = nil
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// RemoveAllChildren detaches every direct child. The harness calls this at
// each test boundary so one spec's objects do not leak into the next.
func (n *Node) RemoveAllChildren() {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = n.children[:0]
}

// AbsolutePosition returns the position with all ancestor offsets applied.
func (n *Node) AbsolutePosition() (float64, float64) {
	x, y := n.x, n.y
	if n.parent != nil {
		px, py := n.parent.AbsolutePosition()
		x += px
		y += py
	}
	return x, y
}

// EffectiveAlpha returns the opacity with all ancestor opacities multiplied in.
func (n *Node) EffectiveAlpha() float64 {
	alpha := n.alpha
	if n.parent != nil {
		alpha *= n.parent.EffectiveAlpha()
	}
	return alpha
}

// IsEffectivelyVisible reports whether the node and all its ancestors are visible.
func (n *Node) IsEffectivelyVisible() bool {
	if !n.visible {
		return false
	}
	if n.parent != nil {
		return n.parent.IsEffectivelyVisible()
	}
	return true
}

// Draw renders the node and its children onto screen in slice order.
func (n *Node) Draw(screen *ebiten.Image) {
	n.draw(screen, 0, 0, 1.0)
}

func (n *Node) draw(screen *ebiten.Image, parentX, parentY, parentAlpha float64) {
	if !n.visible {
		return
	}

	absX := parentX + n.x
	absY := parentY + n.y
	effectiveAlpha := parentAlpha * n.alpha

	if n.image != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(absX, absY)
		if effectiveAlpha < 1.0 {
			op.ColorScale.ScaleAlpha(float32(effectiveAlpha))
		}
		screen.DrawImage(n.image, op)
	}

	for _, child := range n.children {
		child.draw(screen, absX, absY, effectiveAlpha)
	}
}

// String renders the subtree in an indented form, for debugging.
func (n *Node) String() string {
	var sb strings.Builder
	n.printTree(&sb, 0)
	return sb.String()
}

func (n *Node) printTree(sb *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	visibility := "visible"
	if !n.visible {
		visibility = "hidden"
	}
	fmt.Fprintf(sb, "%s- %s: pos=(%.0f,%.0f) (%s) children=%d\n",
		indent, n.name, n.x, n.y, visibility, len(n.children))
	for _, child := range n.children {
		child.printTree(sb, depth+1)
	}
}
