package words

// defaultWords seeds the game when no stored words are usable.
var defaultWords = []string{
	"GOPHER", "CHANNEL", "ROUTINE", "INTERFACE", "POINTER",
	"CLOSURE", "PACKAGE", "COMPILE", "DEBUG", "RUNTIME",
	"SLICE", "STRUCT", "METHOD", "BUFFER", "MUTEX",
	"SOCKET", "BINARY", "VENDOR", "MODULE", "LAMBDA",
}
