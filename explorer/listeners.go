package explorer

// ListenerID identifies a registered listener for later removal.
type ListenerID int

type listenerEntry struct {
	id ListenerID
	fn func()
}

// listenerList is a small publish/subscribe registry. Both scopes of
// notification (node-local and store-global) use one of these; listeners run
// synchronously in registration order.
type listenerList struct {
	nextID  ListenerID
	entries []listenerEntry
}

func (l *listenerList) add(fn func()) ListenerID {
	l.nextID++
	l.entries = append(l.entries, listenerEntry{id: l.nextID, fn: fn})
	return l.nextID
}

func (l *listenerList) remove(id ListenerID) {
	for i, entry := range l.entries {
		if entry.id == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

func (l *listenerList) notify() {
	for _, entry := range l.entries {
		entry.fn()
	}
}
