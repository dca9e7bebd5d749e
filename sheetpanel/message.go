package sheetpanel

// SizeMsg signals panel size computed by the root model's layout.
type SizeMsg struct {
	Width  int
	Height int
}
