package test

// GeneratorStub yields identifiers from a fixed sequence, repeating the last
// one once the sequence is exhausted.
type GeneratorStub struct {
	IDs  []string
	next int
}

// Generate returns the next configured identifier.
func (s *GeneratorStub) Generate() string {
	if len(s.IDs) == 0 {
		return "COM-000000-000"
	}
	id := s.IDs[s.next]
	if s.next < len(s.IDs)-1 {
		s.next++
	}
	return id
}
