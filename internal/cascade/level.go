package cascade

// Level is the depth of the current selection
type Level int

const (
	NoSelection Level = iota
	SeriesChosen
	SubseriesChosen
	ModelChosen
)

// String returns a readable name for logs
func (l Level) String() string {
	switch l {
	case NoSelection:
		return "NoSelection"
	case SeriesChosen:
		return "SeriesChosen"
	case SubseriesChosen:
		return "SubseriesChosen"
	case ModelChosen:
		return "ModelChosen"
	default:
		return "Unknown"
	}
}

// SelectionState is the controller-owned selection. It is only ever handed
// out by value.
type SelectionState struct {
	Series    string
	Subseries string
	Model     string
	Level     Level
}

// Noun names the list a status count refers to
type Noun string

const (
	NounNone      Noun = ""
	NounSubseries Noun = "subseries"
	NounModels    Noun = "models"
)

// Status is the summary shown in the status bar: the size of the list
// populated last and the year of the last chosen model.
type Status struct {
	Count   int
	Noun    Noun
	Year    int
	HasYear bool
}
