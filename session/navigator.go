package session

// Navigator is the capability the store uses to move the UI between routes
// after login, registration, and logout. It is a required dependency:
// consumers without real navigation (tests, headless tools) supply a
// recording implementation rather than leaving it nil.
type Navigator interface {
	NavigateTo(path string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(path string)

// NavigateTo implements Navigator.
func (f NavigatorFunc) NavigateTo(path string) {
	f(path)
}
