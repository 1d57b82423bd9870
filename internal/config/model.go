package config

var defaultConfig = Config{
	Display: "",
	QuitKey: 37,
	Adopt:   true,
}

type Config struct {
	// Display to manage, empty means $DISPLAY.
	Display string `yaml:"display"`
	// QuitKey is the keycode that stops the window manager, 0 disables it.
	QuitKey uint8 `yaml:"quit_key"`
	// Adopt frames windows that already exist at startup.
	Adopt bool `yaml:"adopt"`
}
