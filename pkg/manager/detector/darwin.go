package detector

// GetDarwinManager returns the backend used on macOS. Homebrew is the only one.
func GetDarwinManager() string {
	return "brew"
}
