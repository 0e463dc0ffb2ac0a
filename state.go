package icat

// State is the position of a run across all of its inputs. Create one with
// NewState, pass the same pointer to every Transform call of the run, and do
// not share it between goroutines.
type State struct {
	// LineNumber is the number the next numbered line receives.
	LineNumber uint64
	// LineBeginning is true when the next byte read starts a new line.
	LineBeginning bool
	// PrevLineBlank is true when the last completed line was empty.
	PrevLineBlank bool
}

// NewState returns the state of a run that has not read anything yet.
func NewState() *State {
	return &State{LineNumber: 1, LineBeginning: true}
}

// Reset returns st to the state produced by NewState.
func (st *State) Reset() {
	*st = State{LineNumber: 1, LineBeginning: true}
}

// fresh treats a zero State as a new run.
func (st *State) fresh() {
	if st.LineNumber == 0 {
		st.Reset()
	}
}
