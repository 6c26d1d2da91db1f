package tokenizer

const (
	// MaxLen is the sequence length the model expects.
	MaxLen = 100
	// PadValue fills sequences shorter than MaxLen.
	PadValue = 0
)

// PadSequence returns a copy of seq of exactly maxLen: longer sequences keep
// their first maxLen values and shorter ones are padded at the end.
func PadSequence(seq []int, maxLen int, value int) []int {
	out := make([]int, maxLen)
	n := copy(out, seq)
	for i := n; i < maxLen; i++ {
		out[i] = value
	}
	return out
}
