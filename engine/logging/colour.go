package logging

// fnv64a hash function.
const offset64 = 14695981039346656037
const prime64 = 1099511628211

type hasher uint64

func newHasher() hasher { return offset64 }

// Update the hash with a string.
func (h *hasher) string(data string) {
	f := *h
	for _, c := range data {
		f ^= hasher(c)
		f *= prime64
	}
	*h = f
}

var scopeColours = []string{
	"\033[36m", // cyan
	"\033[35m", // magenta
	"\033[34m", // blue
	"\033[32m", // green
	"\033[96m", // bright cyan
	"\033[95m", // bright magenta
	"\033[94m", // bright blue
	"\033[92m", // bright green
}

// scopeColour picks a stable colour for a scope name.
func scopeColour(scope string) string {
	if !isTerminal {
		return ""
	}
	h := newHasher()
	h.string(scope)
	return scopeColours[uint64(h)%uint64(len(scopeColours))]
}
