package interfaces

// TokenSource supplies and revokes the bearer token used by the HTTP adapter.
type TokenSource interface {
	Token() string
	// Clear drops the token and the stored user profile together.
	Clear() error
}

// Navigator tracks the current route and moves to another.
type Navigator interface {
	CurrentRoute() string
	Navigate(route string)
}

// TitleSetter records the title of the current screen.
type TitleSetter interface {
	SetTitle(title string)
}
