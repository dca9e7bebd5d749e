package sheet

// Notification reports a consequence of handling an event to the host
// UI.
type Notification interface {
	isNotification()
}

func (TableChanged) isNotification() {}
func (ShowEditor) isNotification()   {}
func (HideEditor) isNotification()   {}

// TableChanged signals the snapshot was mutated and should be redrawn.
type TableChanged struct{}

// ShowEditor signals the host to open the inline editor over the cell
// described by Rect, seeded with Initial.
type ShowEditor struct {
	Initial string
	Rect    Rect
}

// HideEditor signals the host to close the inline editor.
type HideEditor struct{}
