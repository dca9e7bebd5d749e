package sheet

// DataController is the external authority that approves or rejects
// mutations before they reach the visible table. A false result is a
// normal rejection, not a failure; err reports transport trouble only.
// Calls are synchronous from the session's perspective.
type DataController interface {
	// Populate returns the initial rows, called once at mount.
	Populate() (rows []Row, err error)
	// RequestAdd submits a completed row; key is the permanent row key
	// on approval.
	RequestAdd(values []string) (key string, approved bool, err error)
	// RequestEdit submits a single-cell change.
	RequestEdit(rowKey, colKey, value string) (approved bool, err error)
	// RequestDelete requests removal of a row.
	RequestDelete(rowKey string) (approved bool, err error)
}
