package entity

// ThemePreference preferencia guardada por el perfil.
type ThemePreference string

// Preferencias posibles. Auto delega en el esquema de color del sistema.
const (
	ThemeLight ThemePreference = "light"
	ThemeDark  ThemePreference = "dark"
	ThemeAuto  ThemePreference = "auto"
)

// ResolvedTheme tema efectivo tras resolver Auto.
type ResolvedTheme string

const (
	ResolvedLight ResolvedTheme = "light"
	ResolvedDark  ResolvedTheme = "dark"
)

// themeOrder orden del ciclo de Toggle.
var themeOrder = []ThemePreference{ThemeLight, ThemeDark, ThemeAuto}

// ParseThemePreference convierte un texto en preferencia; ok=false si no es válida.
func ParseThemePreference(s string) (ThemePreference, bool) {
	for _, p := range themeOrder {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// Next devuelve la siguiente preferencia del ciclo light → dark → auto → light.
// Un valor desconocido arranca el ciclo en light.
func (p ThemePreference) Next() ThemePreference {
	for i, t := range themeOrder {
		if t == p {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}
