package errorutils

// Must returns value if there is no error, otherwise it panics.
// Only for setup code where there is nothing sensible to do on failure.
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}

	return value
}
