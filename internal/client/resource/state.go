package resource

// Display selects how the list is derived when the form is closed. Search
// and paging are exclusive: the last search or page event decides.
type Display int

const (
	DisplayPage Display = iota
	DisplaySearch
)

func (d Display) String() string {
	if d == DisplaySearch {
		return "search"
	}
	return "page"
}

// PageEvent carries a new page window. Both values are applied together.
type PageEvent struct {
	Index int
	Size  int
}

// State is everything a Controller knows about its kind.
type State[E any] struct {
	Collection []E
	Display    Display
	Search     string
	PageIndex  int
	PageSize   int
	Mode       Mode
	Form       Form
	Err        error // last remote failure, nil after a successful call
}

// Visible derives the records to list from s. key extracts the search field.
func Visible[E any](s State[E], key func(E) string) []E {
	if s.Mode.IsOpen() {
		return []E{}
	}
	if s.Display == DisplaySearch {
		if len(s.Search) == 0 {
			return []E{}
		}
		return Filter(s.Collection, s.Search, key, SearchLimit)
	}
	return Page(s.Collection, s.PageIndex, s.PageSize)
}
