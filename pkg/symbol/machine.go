package symbol

// Run drives a step function over input, starting from state, and
// concatenates whatever each step emits. A step may emit nothing or several
// symbols. The final state is discarded so every call starts fresh.
func Run[S, I, O any](state S, step func(S, I) (S, []O), input []I) []O {
	out := make([]O, 0, len(input))
	for _, in := range input {
		var emitted []O
		state, emitted = step(state, in)
		out = append(out, emitted...)
	}
	return out
}
