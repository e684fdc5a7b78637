package tui

type viewState int

const (
	viewList viewState = iota
	viewHelp
)

// candidate is a generated name shown in the list.
type candidate struct {
	Name   string
	Marked bool
}

// namesGeneratedMsg carries a finished batch. When replace is set the batch
// replaces the list, otherwise it is appended. names holds whatever was
// generated before err.
type namesGeneratedMsg struct {
	names   []string
	replace bool
	err     error
}
