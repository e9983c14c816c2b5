package score

// Book maps match ids to recorded scores. A missing key means the match has
// not been played yet.
type Book map[string]Score

func NewBook() Book {
	return make(Book)
}

// Set stores the score for a match, overwriting any earlier result.
func (b Book) Set(matchID string, s Score) error {
	if err := s.Validate(); err != nil {
		return err
	}
	b[matchID] = s
	return nil
}

// Clear removes a stored score. Clearing an unplayed match is a no-op.
func (b Book) Clear(matchID string) {
	delete(b, matchID)
}

func (b Book) Get(matchID string) (Score, bool) {
	s, ok := b[matchID]
	return s, ok
}

func (b Book) Clone() Book {
	out := make(Book, len(b))
	for id, s := range b {
		out[id] = s
	}
	return out
}
