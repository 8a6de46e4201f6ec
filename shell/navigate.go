package shell

func goHandler() Handler {
	return vocabulary{keyword: Go, words: map[string]HandlerFunc{
		"to":   goTo,
		"back": goBack,
	}}
}

// goTo selects a storage. An unknown storage is not an error: the selection is
// left unchanged and the user is told so.
func goTo(s *Session, in Input) error {
	name, err := argument(s, in, "Storage name")
	if err != nil {
		return err
	}
	if !s.Inventory.SetCurrent(name) {
		s.log.Printf("GO to %q: no such storage, selection unchanged", name)
		s.Printf("No storage named %q, %s.", name, where(s))
		return nil
	}
	l, _ := s.Inventory.Current()
	s.Printf("Now in %s.", l.Name())
	return nil
}

func goBack(s *Session, in Input) error {
	if err := s.Inventory.GoBack(); err != nil {
		return err
	}
	s.Printf("Back, %s.", where(s))
	return nil
}

// where describes the current storage.
func where(s *Session) string {
	l, err := s.Inventory.Current()
	if err != nil {
		return "no storage selected"
	}
	return "current storage is " + l.Name()
}
