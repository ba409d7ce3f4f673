package services

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Keyword sets driving the global pre-transition rules. Restart and close
// match the whole normalized message; capture triggers match by containment.
var (
	captureKeywords = []string{"firminopolis", "firminópolis", "graciosa", "novo lar", "casa", "lote", "financiamento"}
	closeKeywords   = []string{"encerrar", "parar", "finalizar", "cancelar", "sair"}
	restartKeywords = []string{"menu", "reiniciar", "reinicio", "reset", "restart", "voltar"}
)

// Restrictive allow-list of consumer providers. Business domains are
// rejected on purpose; leads are expected to come from personal addresses.
var validEmailDomains = []string{
	"gmail.com", "hotmail.com", "outlook.com", "yahoo.com", "yahoo.com.br",
	"icloud.com", "uol.com.br", "bol.com.br", "terra.com.br", "gmail.com.br",
}

// Normalize lowercases, trims and strips diacritics so keyword matching is
// accent-insensitive ("Reinício" matches "reinicio").
func Normalize(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(stripper, text)
	if err != nil {
		return text
	}
	return out
}

// IsRestartKeyword reports whether the normalized text is a restart command
func IsRestartKeyword(normalized string) bool {
	return matchesAny(normalized, restartKeywords)
}

// IsCloseKeyword reports whether the normalized text is a close command
func IsCloseKeyword(normalized string) bool {
	return matchesAny(normalized, closeKeywords)
}

// ContainsCaptureKeyword reports whether the normalized text mentions any
// term that indicates buying interest.
func ContainsCaptureKeyword(normalized string) bool {
	for _, kw := range captureKeywords {
		if strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}

func matchesAny(normalized string, keywords []string) bool {
	for _, kw := range keywords {
		if normalized == kw {
			return true
		}
	}
	return false
}

// ValidateEmail accepts addresses with exactly one "@" whose domain is on
// the consumer-provider allow-list. Not RFC validation by design.
func ValidateEmail(text string) bool {
	if strings.Count(text, "@") != 1 {
		return false
	}

	domain := strings.ToLower(text[strings.IndexByte(text, '@')+1:])
	for _, d := range validEmailDomains {
		if domain == d {
			return true
		}
	}
	return false
}
