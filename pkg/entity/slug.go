package entity

import "strings"

// Slug derives the canonical customer identifier from a display name.
// Spaces become underscores, ASCII letters are lowered, digits, '_' and '-'
// pass through, and every other rune is dropped. The transform is lossy on
// purpose: accented letters disappear ("Déjà" -> "dj") and existing
// workspaces depend on that, so the rule must not change.
func Slug(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r == ' ':
			b.WriteByte('_')
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	return b.String()
}
