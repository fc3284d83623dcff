package codec

import (
	"strconv"
	"strings"
)

// Placeholders use Unicode Private Use Area characters, which cannot appear
// in either dialect and survive every rewrite pass untouched.
const (
	// softBreak marks an explicit line break until final cleanup, so the
	// trailing-whitespace sweep cannot eat the two spaces that encode it.
	softBreak = "\uE000"

	stashOpen  = "\uE002"
	stashClose = "\uE003"
)

// stash parks finished blocks (code fences, generated containers) behind
// placeholders so later passes cannot rewrite their content. Blocks are
// reinserted verbatim by restore.
type stash struct {
	blocks []string
}

func (s *stash) put(block string) string {
	s.blocks = append(s.blocks, block)
	return stashOpen + strconv.Itoa(len(s.blocks)-1) + stashClose
}

func (s *stash) restore(text string) string {
	for i, block := range s.blocks {
		key := stashOpen + strconv.Itoa(i) + stashClose
		text = strings.Replace(text, key, block, 1)
	}
	return text
}
