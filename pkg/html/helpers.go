package html

import "fmt"

// Textf creates a formatted text node.
func Textf(format string, args ...any) *Node {
	return Text(fmt.Sprintf(format, args...))
}

// Group collects children into a slice without a wrapper element.
// Useful for passing a computed set of nodes to a parent constructor.
func Group(children ...*Node) []*Node {
	result := make([]*Node, 0, len(children))
	for _, child := range children {
		if child != nil {
			result = append(result, child)
		}
	}
	return result
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *Node) *Node {
	if condition {
		return node
	}
	return nil
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *Node) *Node {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() *Node) *Node {
	if condition {
		return fn()
	}
	return nil
}

// Unless is the inverse of If.
// Returns the node if condition is false.
func Unless(condition bool, node *Node) *Node {
	if !condition {
		return node
	}
	return nil
}

// Range maps a slice to nodes.
func Range[T any](items []T, fn func(item T, index int) *Node) []*Node {
	result := make([]*Node, 0, len(items))
	for i, item := range items {
		node := fn(item, i)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}

// Repeat creates n nodes using the given function.
func Repeat(n int, fn func(i int) *Node) []*Node {
	if n <= 0 {
		return nil
	}
	result := make([]*Node, 0, n)
	for i := 0; i < n; i++ {
		node := fn(i)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}
