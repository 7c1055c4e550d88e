// Package async runs independent computations on their own goroutines and
// hands back channels that deliver their results.
package async

// Promise runs f on a new goroutine and delivers its result once.
func Promise[R any](f func() R) <-chan R {
	out := make(chan R, 1)
	go func() {
		out <- f()
	}()
	return out
}

// Result is a value or the error that prevented it.
type Result[R any] struct {
	Value R
	Err   error
}

// Attempt is Promise for functions that can fail.
func Attempt[R any](f func() (R, error)) <-chan Result[R] {
	return Promise(func() Result[R] {
		v, err := f()
		return Result[R]{Value: v, Err: err}
	})
}
