// Package svg builds SVG documents as a tree of nodes and renders them to
// text. It only writes: there is no parser and no schema validation, and
// attribute names and values are emitted exactly as given.
//
// Every node is created by a constructor (NewRect, NewPath, NewDocument,
// ...) and configured with chained setters that return the node's own
// type:
//
//	doc := svg.NewDocumentSized(200, 200)
//	layer := svg.AppendTo(doc, svg.NewNamedLayer("shapes"))
//	svg.AppendTo(layer, svg.NewRect(0, 0, 100, 100)).Stroke("red").StrokeWidth(2)
//	fmt.Println(doc)
//
// Builders are not safe for concurrent mutation.
package svg

// Node is anything a container can hold.
type Node interface {
	// String renders the node and all of its children.
	String() string
	// Clone returns an independent deep copy.
	Clone() Node
}

// Appender is implemented by every container node.
type Appender interface {
	Append(Node) Node
}

// AppendTo appends a copy of child to parent and returns that copy with its
// concrete type, so it can be configured further after it was added.
func AppendTo[N Node](parent Appender, child N) N {
	return parent.Append(child).(N)
}
