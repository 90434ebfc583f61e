package colors

// Theme is the colour table the patch widgets read. It is loaded from the
// settings store by value; widgets never hold references into it.
type Theme struct {
	Canvas               Color
	CanvasText           Color
	CanvasDots           Color
	ObjectBackground     Color
	ObjectOutline        Color
	ObjectSelectedOutline Color
	GUIBackground        Color
	GUIForeground        Color
	Signal               Color
	Connection           Color
}

// ByName resolves a theme name from the settings store. Unknown names fall
// back to the light palette.
func ByName(name string) Theme {
	if name == "dark" {
		return DarkTheme()
	}
	return DefaultTheme()
}

// DefaultTheme matches the stock light palette.
func DefaultTheme() Theme {
	return Theme{
		Canvas:                RGB8(246, 246, 246),
		CanvasText:            RGB8(30, 30, 30),
		CanvasDots:            RGB8(200, 200, 200),
		ObjectBackground:      RGB8(255, 255, 255),
		ObjectOutline:         RGB8(178, 178, 178),
		ObjectSelectedOutline: RGB8(66, 162, 200),
		GUIBackground:         RGB8(252, 252, 252),
		GUIForeground:         RGB8(20, 20, 20),
		Signal:                RGB8(255, 133, 0),
		Connection:            RGB8(120, 120, 120),
	}
}

// DarkTheme is the inverted palette.
func DarkTheme() Theme {
	return Theme{
		Canvas:                RGB8(28, 28, 30),
		CanvasText:            RGB8(230, 230, 230),
		CanvasDots:            RGB8(62, 62, 66),
		ObjectBackground:      RGB8(44, 44, 48),
		ObjectOutline:         RGB8(110, 110, 116),
		ObjectSelectedOutline: RGB8(86, 180, 220),
		GUIBackground:         RGB8(38, 38, 42),
		GUIForeground:         RGB8(235, 235, 235),
		Signal:                RGB8(255, 150, 40),
		Connection:            RGB8(150, 150, 150),
	}
}
