package theme

import "sync"

// SchemeSource es la preferencia de color del sistema operativo del perfil.
type SchemeSource interface {
	PrefersDark() bool
	// Subscribe registra fn para cada cambio; devuelve la función para darse de baja.
	Subscribe(fn func(dark bool)) (unsubscribe func())
}

// SystemScheme guarda la última preferencia reportada por el navegador
// (cabecera Sec-CH-Prefers-Color-Scheme) y avisa a los suscriptores cuando cambia.
type SystemScheme struct {
	mu        sync.Mutex
	dark      bool
	nextID    int
	listeners map[int]func(bool)
}

// NewSystemScheme construye la fuente con un valor inicial.
func NewSystemScheme(dark bool) *SystemScheme {
	return &SystemScheme{dark: dark, listeners: make(map[int]func(bool))}
}

// PrefersDark devuelve la última preferencia conocida.
func (s *SystemScheme) PrefersDark() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dark
}

// Set registra la preferencia actual. Solo notifica si cambió.
func (s *SystemScheme) Set(dark bool) {
	s.mu.Lock()
	if s.dark == dark {
		s.mu.Unlock()
		return
	}
	s.dark = dark
	fns := make([]func(bool), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(dark)
	}
}

// Subscribe implementa SchemeSource.
func (s *SystemScheme) Subscribe(fn func(bool)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Listeners número de suscriptores activos.
func (s *SystemScheme) Listeners() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listeners)
}
