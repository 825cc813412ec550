package views

// ViewState holds the dimensions shared by all view models
type ViewState struct {
	Width  int
	Height int
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// chromeHeight is the number of rows taken by the title and status bars
const chromeHeight = 6

func bodyHeight(total int) int {
	if h := total - chromeHeight; h > 3 {
		return h
	}
	return 3
}
