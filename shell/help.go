package shell

import (
	"fmt"

	"github.com/etnz/pantry/docs"
)

func helpHandler() Handler {
	v := vocabulary{
		keyword: Help,
		bare:    func(s *Session, in Input) error { return s.Help(Unknown) },
		words:   make(map[string]HandlerFunc),
	}
	topics, err := docs.GetAllTopics()
	if err != nil {
		panic(fmt.Sprintf("listing embedded help topics: %v", err))
	}
	for _, topic := range topics {
		v.words[topic] = func(s *Session, in Input) error { return s.Topic(topic) }
	}
	return v
}

func exitHandler() Handler {
	return vocabulary{
		keyword: Exit,
		bare: func(s *Session, in Input) error {
			s.Stop()
			s.Printf("Bye.")
			return nil
		},
	}
}
