package config

// Source files
var SourceFileExtensions = []string{".mml", ".sml"}

// Type names used by annotations and the constraint language.
const (
	TypeInt  = "int"
	TypeBool = "bool"
)

// Fresh-name prefixes minted by the analyses.
const (
	FreshTypeVarPrefix = "TV_"
	FreshRegPrefix     = "v"
)

// ZeroRegister always holds zero in generated code.
const ZeroRegister = "x0"

// REPL
const (
	ReplPrompt  = "ml> "
	ReplHistory = ".minml_history"
)
