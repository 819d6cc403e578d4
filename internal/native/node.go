package native

import (
	"github.com/dshills/chartcfg/internal/key"
	"github.com/dshills/chartcfg/internal/notify"
)

// UpdateListener is invoked after a node materializes itself into its
// parent chain.
type UpdateListener func(n *Node)

// Node is the base of every configuration entity. It owns an Object and,
// for nested entities, knows its parent and the key it lives under.
//
// A child node starts detached when its parent does not yet hold the child
// object. The first write through SetAndAddToParent registers the object
// in the parent and, recursively, in every missing ancestor so that no
// intermediate object is dropped when the tree is handed to the engine.
type Node struct {
	object   *Object
	parent   *Node
	childKey key.Key
	listener UpdateListener
	notifier *notify.Notifier
	source   string
}

// NewNode creates a root node around obj. A nil obj creates a new object.
func NewNode(obj *Object) *Node {
	if obj == nil {
		obj = New()
	}
	return &Node{object: obj}
}

// NewChildNode creates a node stored under childKey in parent. When obj is
// nil the existing child object of parent is reused, or a detached one is
// created.
func NewChildNode(parent *Node, childKey key.Key, obj *Object) *Node {
	if obj == nil && parent != nil {
		obj = parent.object.GetObject(childKey)
	}
	if obj == nil {
		obj = New()
	}
	return &Node{object: obj, parent: parent, childKey: childKey}
}

// Object returns the backing object.
func (n *Node) Object() *Object { return n.object }

// Parent returns the parent node, nil for roots.
func (n *Node) Parent() *Node { return n.parent }

// ChildKey returns the key under which the node is stored in its parent.
func (n *Node) ChildKey() key.Key { return n.childKey }

// Root returns the topmost ancestor.
func (n *Node) Root() *Node {
	if n.parent != nil {
		return n.parent.Root()
	}
	return n
}

// SetUpdateListener registers a listener called on every materialization.
func (n *Node) SetUpdateListener(l UpdateListener) { n.listener = l }

// SetNotifier attaches a change notifier. Changes anywhere in the tree are
// delivered to the notifier of the root.
func (n *Node) SetNotifier(nt *notify.Notifier) { n.notifier = nt }

// Notifier returns the notifier of the root node, or nil.
func (n *Node) Notifier() *notify.Notifier { return n.Root().notifier }

// SetSource names the entity in change events.
func (n *Node) SetSource(source string) { n.source = source }

// Path returns the dotted path of k from the root node.
func (n *Node) Path(k key.Key) string {
	var keys []key.Key
	for cur := n; cur != nil && cur.parent != nil; cur = cur.parent {
		keys = append([]key.Key{cur.childKey}, keys...)
	}
	if k != nil {
		keys = append(keys, k)
	}
	return key.Path(keys...)
}

// Attached reports whether the node is reachable from the root object.
func (n *Node) Attached() bool {
	if n.parent == nil {
		return true
	}
	child := n.parent.object.GetObject(n.childKey)
	return child == n.object && n.parent.Attached()
}

// Has reports whether k is set on this node.
func (n *Node) Has(k key.Key) bool { return n.object.Has(k) }

// Set stores v under k and emits a change event. It does not attach the
// node to its parent.
func (n *Node) Set(k key.Key, v Value) {
	if !key.IsValid(k) {
		return
	}
	old, _ := n.object.Get(k)
	n.object.Set(k, v)
	n.notify(k, old, v)
}

// SetAndAddToParent stores v under k and materializes the ancestor chain.
func (n *Node) SetAndAddToParent(k key.Key, v Value) {
	n.Set(k, v)
	n.AddToParent()
}

// Remove deletes keys and emits delete events for those present.
func (n *Node) Remove(keys ...key.Key) {
	for _, k := range keys {
		old, ok := n.object.Get(k)
		if !ok {
			continue
		}
		n.object.Remove(k)
		n.notify(k, old, Value{})
	}
}

// AddToParent registers this node in its parent if missing, recursively.
func (n *Node) AddToParent() {
	if n.listener != nil {
		n.listener(n)
	}
	if n.parent != nil && key.IsValid(n.childKey) && !n.parent.object.Has(n.childKey) {
		n.parent.object.SetObject(n.childKey, n.object)
		n.parent.AddToParent()
	}
}

func (n *Node) notify(k key.Key, old, v Value) {
	nt := n.Notifier()
	if nt == nil {
		return
	}
	source := n.source
	if source == "" && n.childKey != nil {
		source = n.childKey.Value()
	}
	if v.IsUndefined() {
		nt.NotifyDelete(n.Path(k), old.Interface(), source)
		return
	}
	nt.NotifySet(n.Path(k), old.Interface(), v.Interface(), source)
}
