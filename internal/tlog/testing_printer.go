package tlog

// TestingPrinter subset of *testing.T used to report errors.
type TestingPrinter interface {
	Helper()
	Log(a ...any)
	Error(a ...any)
}
