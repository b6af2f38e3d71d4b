package planner

import "time"

var quotes = []string{
	"Small consistent steps beat occasional giant leaps.",
	"Focus on progress, not perfection — one topic at a time.",
	"Short, consistent sessions compound into mastery.",
	"Break a task down: tiny wins build momentum.",
	"Energy first: hydrate, breathe, then start.",
	"Active practice > passive reading. Try it for 20 minutes.",
	"A clear plan beats vague intentions. Plan one small victory today.",
}

// DailyQuote rotates through the quote table once per calendar day.
func DailyQuote(now time.Time) string {
	days := int(now.Unix() / 86400)
	if days < 0 {
		days = -days
	}
	return quotes[days%len(quotes)]
}
