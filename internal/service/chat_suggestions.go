package service

const (
	defaultSuggestionMood = 2
	suggestionTip         = "Pick a question that resonates with you, or start with your own thoughts!"
)

var questionsByMood = map[int][]string{
	0: {
		"I'm really struggling right now. Can we talk about what's making you feel this way?",
		"Have you reached out to anyone for support?",
		"Would it help to think about one small thing that might make you feel better?",
	},
	1: {
		"It sounds like things are tough. What's the main thing bothering you?",
		"Have you tried any coping strategies that have helped before?",
		"Would talking through this help?",
	},
	2: {
		"How has your day been treating you?",
		"What's one thing you could do today to feel a bit better?",
		"Is there anything on your mind you'd like to talk about?",
	},
	3: {
		"That's great! What's been going well for you?",
		"Any challenges or wins worth celebrating?",
		"How can we keep this positive momentum going?",
	},
	4: {
		"Wow, you seem to be in a great place! What's contributing to this?",
		"Any practices or habits helping you feel this good?",
		"How can we maintain this positive feeling?",
	},
	5: {
		"You seem to be thriving! What's your secret?",
		"What habits or routines are working best for you?",
		"How can you help others who are struggling?",
	},
}

// questionsFor returns a copy of the question set for mood, falling back to
// the neutral set for values outside the scale.
func questionsFor(mood int) []string {
	questions, ok := questionsByMood[mood]
	if !ok {
		questions = questionsByMood[defaultSuggestionMood]
	}
	return append([]string(nil), questions...)
}
