package cmd

// UsageError reports a malformed command line (argument count, unknown
// flag, bad flag value). It is printed together with the usage text.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// usageError wraps err unless it already is a *UsageError.
func usageError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*UsageError); ok {
		return err
	}

	return &UsageError{Err: err}
}
