package slot

// Duplicate records a marker that more than one child was tagged with.
type Duplicate[M Marker] struct {
	Marker M
	Count  int // number of tagged children, including the one that won
}

// Report describes how a list of children resolved against a Set.
type Report[M Marker] struct {
	Layout       string
	Children     int // non-nil children seen
	Filled       []M
	Unmatched    []M
	Duplicates   []Duplicate[M]
	Unrecognized int // children dropped because they carry no marker of the set
}

// Clean reports whether nothing was dropped: no duplicates and no
// unrecognized children. Unmatched markers do not make a report unclean.
func (r Report[M]) Clean() bool {
	return len(r.Duplicates) == 0 && r.Unrecognized == 0
}

// Missing returns the markers of required that resolved to nothing.
func (r Report[M]) Missing(required ...M) []M {
	var missing []M
	for _, want := range required {
		for _, m := range r.Unmatched {
			if m == want {
				missing = append(missing, want)
				break
			}
		}
	}
	return missing
}

// Summary converts the report to marker names for observers that do not
// know the layout's marker type.
func (r Report[M]) Summary() Summary {
	s := Summary{
		Layout:       r.Layout,
		Children:     r.Children,
		Filled:       names(r.Filled),
		Unmatched:    names(r.Unmatched),
		Unrecognized: r.Unrecognized,
	}
	if len(r.Duplicates) > 0 {
		s.Duplicates = make(map[string]int, len(r.Duplicates))
		for _, d := range r.Duplicates {
			s.Duplicates[d.Marker.String()] = d.Count
		}
	}
	return s
}

func names[M Marker](markers []M) []string {
	if len(markers) == 0 {
		return nil
	}
	out := make([]string, len(markers))
	for i, m := range markers {
		out[i] = m.String()
	}
	return out
}

// Summary is the type-erased form of a Report.
type Summary struct {
	Layout       string
	Children     int
	Filled       []string
	Unmatched    []string
	Duplicates   map[string]int
	Unrecognized int
}

// Observer receives a Summary for every resolution a layout performs.
type Observer interface {
	ObserveResolve(Summary)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Summary)

// ObserveResolve implements Observer.
func (f ObserverFunc) ObserveResolve(s Summary) { f(s) }

// Observers fans a summary out to several observers.
type Observers []Observer

// ObserveResolve implements Observer.
func (o Observers) ObserveResolve(s Summary) {
	for _, obs := range o {
		if obs != nil {
			obs.ObserveResolve(s)
		}
	}
}
