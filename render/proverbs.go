package render

import (
	"hash/fnv"
)

// proverbs are shown on the game-over box
var proverbs = []string{
	"So close, yet so far.",
	"Almost only counts in horseshoes.",
	"A miss is as good as a mile.",
	"Close, but no cigar.",
	"Near miss, far cry.",
	"Don't count apples before eating.",
	"Slow and steady wins the race.",
	"Every expert was once a beginner.",
	"Fall seven times, stand up eight.",
	"Practice makes perfect.",
	"Rome wasn't built in a day.",
	"Better luck next time.",
}

// Proverb picks a proverb for a game session
// The same session always gets the same line so redraws do not flicker
func Proverb(sessionID string) string {
	h := fnv.New32a()
	h.Write([]byte(sessionID))
	return proverbs[h.Sum32()%uint32(len(proverbs))]
}
