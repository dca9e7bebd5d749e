package sheet

// Event is one discrete input command for the edit session.
type Event interface {
	isEvent()
}

func (StartEdit) isEvent()   {}
func (StartAppend) isEvent() {}
func (StartDelete) isEvent() {}
func (Submit) isEvent()      {}
func (Abort) isEvent()       {}
func (Move) isEvent()        {}

// StartEdit opens the inline editor on the cell under the cursor.
type StartEdit struct{}

// StartAppend begins appending a new row at the end of the table.
type StartAppend struct{}

// StartDelete requests removal of the row under the cursor.
type StartDelete struct{}

// Submit delivers the editor's text for the pending edit or append cell.
type Submit struct {
	Value string
}

// Abort cancels an in-progress edit or append.
type Abort struct{}

// Move shifts the cursor one cell.
type Move struct {
	Direction Direction
}

// Direction of a cursor move.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)
