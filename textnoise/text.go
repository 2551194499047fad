package textnoise

var defaultEngine = New(Config{})

// ApplyTextNoise applies noise with the default engine: built-in alphabets,
// the shared math/rand/v2 generator and lenient fault handling.
func ApplyTextNoise(text, tier, language string) (string, error) {
	return defaultEngine.Apply(text, tier, language)
}
