// Package notify delivers change events for configuration nodes.
//
// Observers subscribe to every change or to a property path and its
// descendants. Delivery is synchronous on the caller's goroutine: the node
// graph is owned by a single host event loop, and observers may themselves
// mutate the graph or subscribe while being notified.
package notify

// ChangeType represents the type of configuration change.
type ChangeType int

const (
	// ChangeSet indicates a value was set or updated.
	ChangeSet ChangeType = iota

	// ChangeDelete indicates a value was removed.
	ChangeDelete

	// ChangeReload indicates a defaults layer was replaced.
	ChangeReload
)

// String returns the change type name.
func (c ChangeType) String() string {
	switch c {
	case ChangeSet:
		return "set"
	case ChangeDelete:
		return "delete"
	case ChangeReload:
		return "reload"
	default:
		return "unknown"
	}
}

// Change represents a configuration change event.
type Change struct {
	// Path is the dotted path of the changed property, relative to the
	// root node. Empty for reload events.
	Path string

	// Type is the type of change.
	Type ChangeType

	// OldValue is the previous value (may be nil).
	OldValue any

	// NewValue is the new value (nil for deletes).
	NewValue any

	// Source identifies the entity or layer that produced the change.
	Source string
}

// Observer is called when a change occurs.
type Observer func(change Change)

// Subscription represents an active observer subscription.
type Subscription struct {
	id       uint64
	path     string
	notifier *Notifier
}

// Unsubscribe removes this subscription. It is safe to call from inside an
// observer.
func (s *Subscription) Unsubscribe() {
	if s.notifier != nil {
		s.notifier.unsubscribe(s.id)
		s.notifier = nil
	}
}

// Path returns the subscribed path, empty for global subscriptions.
func (s *Subscription) Path() string {
	return s.path
}

// Notifier manages change subscriptions.
type Notifier struct {
	globalObservers map[uint64]Observer
	pathObservers   map[string]map[uint64]Observer
	nextID          uint64
	muted           int
}

// New creates a new Notifier.
func New() *Notifier {
	return &Notifier{
		globalObservers: make(map[uint64]Observer),
		pathObservers:   make(map[string]map[uint64]Observer),
	}
}

// Subscribe registers an observer for all changes.
func (n *Notifier) Subscribe(observer Observer) *Subscription {
	id := n.nextID
	n.nextID++
	n.globalObservers[id] = observer
	return &Subscription{id: id, notifier: n}
}

// SubscribePath registers an observer for changes to path and below.
// Subscribing to "plugins.zoom" receives changes to "plugins.zoom.pan.enabled".
func (n *Notifier) SubscribePath(path string, observer Observer) *Subscription {
	id := n.nextID
	n.nextID++
	if n.pathObservers[path] == nil {
		n.pathObservers[path] = make(map[uint64]Observer)
	}
	n.pathObservers[path][id] = observer
	return &Subscription{id: id, path: path, notifier: n}
}

// Mute suppresses delivery until the returned function is called. Calls
// nest.
func (n *Notifier) Mute() (unmute func()) {
	n.muted++
	done := false
	return func() {
		if !done {
			done = true
			n.muted--
		}
	}
}

// Notify sends a change to all matching observers.
func (n *Notifier) Notify(change Change) {
	if n == nil || n.muted > 0 {
		return
	}

	var observers []Observer
	for _, obs := range n.globalObservers {
		observers = append(observers, obs)
	}

	if change.Path != "" {
		for path, pathObs := range n.pathObservers {
			if path == change.Path || isParentPath(path, change.Path) {
				for _, obs := range pathObs {
					observers = append(observers, obs)
				}
			}
		}
	} else {
		for _, pathObs := range n.pathObservers {
			for _, obs := range pathObs {
				observers = append(observers, obs)
			}
		}
	}

	// Observers may subscribe or unsubscribe, so the set is fixed first.
	for _, obs := range observers {
		obs(change)
	}
}

// NotifySet is a convenience method for set changes.
func (n *Notifier) NotifySet(path string, oldValue, newValue any, source string) {
	n.Notify(Change{Path: path, Type: ChangeSet, OldValue: oldValue, NewValue: newValue, Source: source})
}

// NotifyDelete is a convenience method for delete changes.
func (n *Notifier) NotifyDelete(path string, oldValue any, source string) {
	n.Notify(Change{Path: path, Type: ChangeDelete, OldValue: oldValue, Source: source})
}

// NotifyReload is a convenience method for reload events.
func (n *Notifier) NotifyReload(source string) {
	n.Notify(Change{Type: ChangeReload, Source: source})
}

// Count returns the number of active subscriptions.
func (n *Notifier) Count() int {
	count := len(n.globalObservers)
	for _, obs := range n.pathObservers {
		count += len(obs)
	}
	return count
}

func (n *Notifier) unsubscribe(id uint64) {
	delete(n.globalObservers, id)
	for path, observers := range n.pathObservers {
		delete(observers, id)
		if len(observers) == 0 {
			delete(n.pathObservers, path)
		}
	}
}

// isParentPath checks if parent is a parent path of child.
func isParentPath(parent, child string) bool {
	if parent == "" {
		return true
	}
	return len(child) > len(parent) && child[:len(parent)] == parent && child[len(parent)] == '.'
}

// Batch collects changes and delivers them together on Commit.
type Batch struct {
	notifier *Notifier
	changes  []Change
}

// NewBatch creates a new batch for collecting changes.
func (n *Notifier) NewBatch() *Batch {
	return &Batch{notifier: n}
}

// Add adds a change to the batch.
func (b *Batch) Add(change Change) {
	b.changes = append(b.changes, change)
}

// Commit sends all batched changes to observers.
func (b *Batch) Commit() {
	changes := b.changes
	b.changes = nil
	for _, change := range changes {
		b.notifier.Notify(change)
	}
}

// Discard clears the batch without sending notifications.
func (b *Batch) Discard() {
	b.changes = nil
}

// Len returns the number of pending changes.
func (b *Batch) Len() int {
	return len(b.changes)
}
