package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "firminopolis", Normalize("  Firminópolis  "))
	assert.Equal(t, "reinicio", Normalize("Reinício"))
	assert.Equal(t, "menu", Normalize("MENU"))
	assert.Equal(t, "novo lar", Normalize("Novo Lar"))
}

func TestRestartKeywords(t *testing.T) {
	for _, kw := range []string{"menu", "reiniciar", "reinicio", "reset", "restart", "voltar"} {
		assert.True(t, IsRestartKeyword(kw), kw)
	}

	// Exact match only
	assert.False(t, IsRestartKeyword("quero ver o menu"))
	assert.False(t, IsRestartKeyword("1"))
}

func TestCloseKeywords(t *testing.T) {
	for _, kw := range []string{"encerrar", "parar", "finalizar", "cancelar", "sair"} {
		assert.True(t, IsCloseKeyword(kw), kw)
	}
	assert.False(t, IsCloseKeyword("quero encerrar"))
}

func TestCaptureKeywordsMatchBySubstring(t *testing.T) {
	assert.True(t, ContainsCaptureKeyword(Normalize("Tenho interesse no lançamento em Firminópolis")))
	assert.True(t, ContainsCaptureKeyword(Normalize("quero uma casa")))
	assert.True(t, ContainsCaptureKeyword(Normalize("como funciona o financiamento?")))
	assert.False(t, ContainsCaptureKeyword(Normalize("bom dia")))
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("user@gmail.com"))
	assert.True(t, ValidateEmail("user@YAHOO.COM.BR"))
	assert.False(t, ValidateEmail("user@randomdomain.xyz"))
	assert.False(t, ValidateEmail("no-at-symbol"))
	assert.False(t, ValidateEmail("two@signs@gmail.com"))
	assert.False(t, ValidateEmail(""))
}
