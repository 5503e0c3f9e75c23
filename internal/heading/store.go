package heading

import "strconv"

// Store holds the current heading together with the text mirror shown in
// the editable heading field. The text may hold unparsed input while the
// user types; the heading always stays canonical.
type Store struct {
	value Heading
	text  string
}

// NewStore returns a store at North with text "0"
func NewStore() Store {
	return Store{value: 0, text: "0"}
}

// Heading returns the current canonical heading
func (s *Store) Heading() Heading {
	return s.value
}

// Text returns the current contents of the heading field
func (s *Store) Text() string {
	return s.text
}

// Set normalizes raw and updates both the heading and its text mirror
func (s *Store) Set(raw int) Heading {
	s.value = Normalize(raw)
	s.text = strconv.Itoa(int(s.value))
	return s.value
}

// SetText records text as typed. When it parses as an integer the heading
// is updated and the text rewritten to the normalized value. Returns false
// when the text was not an integer; the heading is then left unchanged.
func (s *Store) SetText(text string) bool {
	s.text = text
	raw, err := Parse(text)
	if err != nil {
		return false
	}
	s.Set(raw)
	return true
}

// Advance moves the heading by step degrees and refreshes the text mirror
func (s *Store) Advance(step int) Heading {
	return s.Set(int(s.value) + step)
}
