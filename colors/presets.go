package colors

// Preset constructors for commonly used colors.
// The primary and secondary presets sit on the RGB color wheel at full
// saturation; the remaining presets are their half-intensity variants.

// White constructs the color white.
func White() Color { return New(1.0, 1.0, 1.0) }

// Black constructs the color black.
func Black() Color { return New(0.0, 0.0, 0.0) }

// Grey constructs the color grey.
func Grey() Color { return New(0.5, 0.5, 0.5) }

// Red constructs the color red.
func Red() Color { return New(1.0, 0.0, 0.0) }

// Orange constructs the color orange.
func Orange() Color { return New(1.0, 0.5, 0.0) }

// Yellow constructs the color yellow.
func Yellow() Color { return New(1.0, 1.0, 0.0) }

// Lime constructs the color lime (or chartreuse green).
func Lime() Color { return New(0.5, 1.0, 0.0) }

// Green constructs the color green.
func Green() Color { return New(0.0, 1.0, 0.0) }

// Mint constructs the color mint (or spring green).
func Mint() Color { return New(0.0, 1.0, 0.5) }

// Cyan constructs the color cyan.
func Cyan() Color { return New(0.0, 1.0, 1.0) }

// Azure constructs the color azure.
func Azure() Color { return New(0.0, 0.5, 1.0) }

// Blue constructs the color blue.
func Blue() Color { return New(0.0, 0.0, 1.0) }

// Violet constructs the color violet.
func Violet() Color { return New(0.5, 0.0, 1.0) }

// Magenta constructs the color magenta.
func Magenta() Color { return New(1.0, 0.0, 1.0) }

// Pink constructs the color pink.
func Pink() Color { return New(1.0, 0.0, 0.5) }

// Maroon constructs the color maroon.
func Maroon() Color { return New(0.5, 0.0, 0.0) }

// Brown constructs the color brown.
func Brown() Color { return New(0.5, 0.25, 0.0) }

// Olive constructs the color olive.
func Olive() Color { return New(0.5, 0.5, 0.0) }

// Teal constructs the color teal.
func Teal() Color { return New(0.0, 0.5, 0.5) }

// Navy constructs the color navy.
func Navy() Color { return New(0.0, 0.0, 0.5) }

// Purple constructs the color purple.
func Purple() Color { return New(0.5, 0.0, 0.5) }

// Silver constructs the color silver.
func Silver() Color { return New(0.75, 0.75, 0.75) }

// Transparent constructs a fully transparent black.
func Transparent() Color { return NewRGBA(0, 0, 0, 0) }
