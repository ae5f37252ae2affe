package model

// Slide represents one hero carousel entry on the home page.
// Image holds either a data URI or a plain URL.
type Slide struct {
	ID       string `json:"id"`
	Image    string `json:"image"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// SlideUpdate carries a partial slide edit. Empty fields keep the
// previously stored value.
type SlideUpdate struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
}
