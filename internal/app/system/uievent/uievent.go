// Package uievent models click handling over a tree of UI elements.
//
// A click is delivered to its target node first and then bubbles to each
// ancestor in turn. Any handler may call StopPropagation, after which no
// ancestor sees the event. Card actions rely on this so that Contact and
// Portfolio never trigger the card's own navigation.
package uievent

import (
	"errors"
	"fmt"
)

// ErrUnknownTarget is returned when a click names a node not in the tree.
var ErrUnknownTarget = errors.New("unknown event target")

// Event is a single click travelling up the tree.
type Event struct {
	Target  string // node the click landed on
	Current string // node whose handler is running

	handled []string
	stopped bool
}

// StopPropagation keeps the event from reaching any further ancestor.
func (e *Event) StopPropagation() { e.stopped = true }

// Stopped reports whether a handler consumed the event.
func (e *Event) Stopped() bool { return e.stopped }

// Handled lists the nodes whose handlers ran, innermost first.
func (e *Event) Handled() []string { return append([]string(nil), e.handled...) }

// Handler reacts to a click on a node.
type Handler func(e *Event)

// Node is one element of a UI tree. A nil OnClick lets the event pass
// straight through to the parent.
type Node struct {
	ID      string
	OnClick Handler

	parent   *Node
	children []*Node
}

// NewNode returns a detached node.
func NewNode(id string, onClick Handler) *Node {
	return &Node{ID: id, OnClick: onClick}
}

// Append attaches children to n and returns n for chaining.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

// Parent returns the enclosing node, or nil at the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the direct children in insertion order.
func (n *Node) Children() []*Node { return append([]*Node(nil), n.children...) }

// Find returns the node with the given id in n's subtree, or nil.
func (n *Node) Find(id string) *Node {
	if n.ID == id {
		return n
	}
	for _, c := range n.children {
		if found := c.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// Click dispatches a click on targetID within root and returns the event
// after propagation ends.
func Click(root *Node, targetID string) (*Event, error) {
	target := root.Find(targetID)
	if target == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, targetID)
	}
	ev := &Event{Target: targetID}
	for n := target; n != nil; n = n.parent {
		if n.OnClick == nil {
			continue
		}
		ev.Current = n.ID
		n.OnClick(ev)
		ev.handled = append(ev.handled, n.ID)
		if ev.stopped {
			break
		}
	}
	ev.Current = ""
	return ev, nil
}
