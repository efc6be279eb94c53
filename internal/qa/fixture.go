package qa

// mockQuestions stands in for storage. It is never mutated; MockQuestions
// hands out deep copies.
var mockQuestions = []Question{
	{
		ID:          1,
		Body:        "How do I negotiate a salary increase when I've been in the same role for 3 years? I feel like I'm being underpaid but I'm not sure how to approach this conversation with my manager.",
		Category:    CategorySalary,
		Timestamp:   "2 hours ago",
		AnswerCount: 3,
		Answers: []Answer{
			{
				ID:        1,
				Body:      "I was in a similar situation last year. I prepared by researching market rates and documenting my achievements. The key is to focus on your value contribution, not just time served. Schedule a formal meeting and present your case with data.",
				Timestamp: "1 hour ago",
			},
			{
				ID:        2,
				Body:      "Before asking for a raise, I always recommend having a backup plan. Update your resume, maybe even explore other opportunities. This gives you confidence and leverage in the negotiation.",
				Timestamp: "45 minutes ago",
			},
		},
	},
	{
		ID:          2,
		Body:        "I'm the only woman on my engineering team and often feel like my ideas aren't taken seriously. How can I assert myself more effectively in meetings without seeming aggressive?",
		Category:    CategoryWorkplace,
		Timestamp:   "5 hours ago",
		AnswerCount: 5,
		Answers: []Answer{
			{
				ID:        3,
				Body:      "I've found that sending a follow-up email after meetings helps. Something like 'As discussed, I think we should consider...' This creates a paper trail and reinforces your contributions.",
				Timestamp: "3 hours ago",
			},
		},
	},
	{
		ID:          3,
		Body:        "Should I pursue an MBA while working full-time? I'm worried about the time commitment but I feel like it might be necessary for career advancement.",
		Category:    CategoryCareerProgression,
		Timestamp:   "1 day ago",
		AnswerCount: 2,
		Answers:     []Answer{},
	},
}

// MockQuestions returns a fresh copy of the built-in question set.
func MockQuestions() []Question {
	out := make([]Question, 0, len(mockQuestions))
	for _, q := range mockQuestions {
		out = append(out, q.Clone())
	}
	return out
}
