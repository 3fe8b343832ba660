package argzx

// Config controls how the raw argv is sliced and validated.
// The zero value strips the program and script paths and requires at least
// one token after them.
type Config struct {
	// SkipDefaultArgv uses argv verbatim instead of dropping its first two
	// entries.
	SkipDefaultArgv bool

	// ContinueWithDefaultArgv tolerates a verbatim argv shorter than two
	// tokens. Only meaningful together with SkipDefaultArgv.
	ContinueWithDefaultArgv bool
}
