package i18n

import (
	"testing"

	"github.com/cayro-uniformes/internal/constants"
)

func TestResolveLocale(t *testing.T) {
	cases := []struct {
		header string
		want   string
	}{
		{"es-MX,es;q=0.9", constants.LocaleEsMX},
		{"es", constants.LocaleEsMX},
		{"en-US,en;q=0.8", constants.LocaleEnUS},
		{"en-GB", constants.LocaleEnUS},
		{"fr-FR,de;q=0.5", constants.LocaleEsMX},
		{"", constants.LocaleEsMX},
		{"fr-FR, en;q=0.7", constants.LocaleEnUS},
	}
	for _, tc := range cases {
		if got := ResolveLocale(tc.header); got != tc.want {
			t.Fatalf("ResolveLocale(%q) want %s got %s", tc.header, tc.want, got)
		}
	}
}

func TestTranslationFallbacks(t *testing.T) {
	if got := T(constants.LocaleEnUS, "sale.not_found"); got != "Sale not found" {
		t.Fatalf("en translation want 'Sale not found' got %q", got)
	}
	if got := T(constants.LocaleEsMX, "sale.not_found"); got != "Venta no encontrada" {
		t.Fatalf("es translation want 'Venta no encontrada' got %q", got)
	}
	// idioma desconocido cae al catálogo es-MX
	if got := T("fr-FR", "sale.not_found"); got != "Venta no encontrada" {
		t.Fatalf("unknown locale fallback want es-MX message got %q", got)
	}
	// clave desconocida se devuelve tal cual
	if got := T(constants.LocaleEsMX, "clave.inexistente"); got != "clave.inexistente" {
		t.Fatalf("unknown key want key itself got %q", got)
	}
}
