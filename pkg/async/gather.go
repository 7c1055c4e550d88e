package async

// GatherN waits for every channel and returns the results in argument order.
func GatherN[R any](cs ...<-chan R) <-chan []R {
	return Promise(func() []R {
		results := make([]R, len(cs))
		for i, f := range cs {
			results[i] = <-f
		}
		return results
	})
}

// Collect gathers attempts in argument order. If any failed, it returns the
// error of the earliest failed attempt and no values.
func Collect[R any](cs ...<-chan Result[R]) ([]R, error) {
	results := <-GatherN(cs...)

	values := make([]R, len(results))
	for i, r := range results {
		if r.Err != nil {
			return nil, r.Err
		}
		values[i] = r.Value
	}
	return values, nil
}
