package cascade

import (
	"slices"

	"github.com/google/uuid"

	"github.com/ytget/shockbase/internal/catalog"
)

// Catalog is the query surface the controller reads from
type Catalog interface {
	Series() []string
	Subseries(series string) []string
	Models(series, subseries string) []string
	Resolve(series, subseries, model string) (catalog.Resolution, bool)
}

// Request describes an image resolve started by choosing a model
type Request struct {
	ID         string
	Generation uint64
	Model      string
	ImageURL   string
	Year       int
}

// View is a snapshot of everything the presentation layer renders
type View struct {
	State            SelectionState
	SubseriesOptions []string
	ModelOptions     []string
	Status           Status
	Generation       uint64
}

// Controller owns the selection state. It is meant to be driven from the UI
// thread only.
type Controller struct {
	catalog Catalog
	series  []string

	state            SelectionState
	subseriesOptions []string
	modelOptions     []string
	status           Status
	generation       uint64
}

// New creates a controller in the NoSelection state
func New(c Catalog) *Controller {
	return &Controller{catalog: c, series: c.Series()}
}

// ChooseSeries selects a series, recomputes the subseries options and clears
// every finer selection. A series the catalog does not list is ignored.
func (c *Controller) ChooseSeries(series string) bool {
	if !slices.Contains(c.series, series) {
		return false
	}

	subseries := c.catalog.Subseries(series)

	c.generation++
	c.state = SelectionState{Series: series, Level: SeriesChosen}
	c.subseriesOptions = subseries
	c.modelOptions = nil
	c.status = Status{Count: len(subseries), Noun: NounSubseries}
	return true
}

// ChooseSubseries selects one of the current subseries options and
// recomputes the model options. It is ignored without a chosen series or for
// a value the current series does not offer.
func (c *Controller) ChooseSubseries(subseries string) bool {
	if c.state.Level < SeriesChosen {
		return false
	}
	if !slices.Contains(c.subseriesOptions, subseries) {
		return false
	}

	models := c.catalog.Models(c.state.Series, subseries)

	c.generation++
	c.state = SelectionState{Series: c.state.Series, Subseries: subseries, Level: SubseriesChosen}
	c.modelOptions = models
	c.status = Status{Count: len(models), Noun: NounModels}
	return true
}

// ChooseModel selects one of the current model options and returns the image
// request to run off the UI thread. The full series/subseries path is
// required.
func (c *Controller) ChooseModel(model string) (Request, bool) {
	if c.state.Level < SubseriesChosen {
		return Request{}, false
	}
	if !slices.Contains(c.modelOptions, model) {
		return Request{}, false
	}

	res, ok := c.catalog.Resolve(c.state.Series, c.state.Subseries, model)
	if !ok {
		return Request{}, false
	}

	c.generation++
	c.state.Model = model
	c.state.Level = ModelChosen
	c.status.Year = res.Year
	c.status.HasYear = true

	return Request{
		ID:         uuid.NewString(),
		Generation: c.generation,
		Model:      model,
		ImageURL:   res.ImageURL,
		Year:       res.Year,
	}, true
}

// State returns a copy of the current selection
func (c *Controller) State() SelectionState {
	return c.state
}

// View returns a snapshot of the selection, options and status
func (c *Controller) View() View {
	return View{
		State:            c.state,
		SubseriesOptions: slices.Clone(c.subseriesOptions),
		ModelOptions:     slices.Clone(c.modelOptions),
		Status:           c.status,
		Generation:       c.generation,
	}
}

// SubseriesOptions returns the options for the chosen series
func (c *Controller) SubseriesOptions() []string {
	return slices.Clone(c.subseriesOptions)
}

// ModelOptions returns the options for the chosen subseries
func (c *Controller) ModelOptions() []string {
	return slices.Clone(c.modelOptions)
}

// SeriesOptions returns the series the catalog lists
func (c *Controller) SeriesOptions() []string {
	return slices.Clone(c.series)
}

// Status returns the current status summary
func (c *Controller) Status() Status {
	return c.status
}

// Current reports whether generation still matches the latest selection
func (c *Controller) Current(generation uint64) bool {
	return generation == c.generation
}
