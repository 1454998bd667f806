package i

// Logger is a component logger taking preformatted messages.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
	Debug(string)
}
