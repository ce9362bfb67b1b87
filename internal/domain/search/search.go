// Package search filtra listados en memoria por texto libre.
package search

import "strings"

// Field extrae un campo de texto de un registro. ok=false indica que el campo
// no está definido para ese registro (nunca coincide).
type Field[T any] func(T) (value string, ok bool)

// FilterByQuery devuelve los registros cuyo algún campo contiene query, sin
// distinguir mayúsculas. Con query vacía devuelve todos. El orden de entrada se
// conserva y records no se modifica: el resultado es siempre un slice nuevo.
func FilterByQuery[T any](records []T, query string, fields ...Field[T]) []T {
	out := make([]T, 0, len(records))
	if query == "" {
		return append(out, records...)
	}
	needle := strings.ToLower(query)
	for _, r := range records {
		if matches(r, needle, fields) {
			out = append(out, r)
		}
	}
	return out
}

func matches[T any](r T, needle string, fields []Field[T]) bool {
	for _, f := range fields {
		if f == nil {
			continue
		}
		v, ok := f(r)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

// Text convierte un getter simple en Field; la cadena vacía cuenta como no definida.
func Text[T any](get func(T) string) Field[T] {
	return func(r T) (string, bool) {
		v := get(r)
		return v, v != ""
	}
}
