package usuario_test

import (
	"testing"

	"github.com/Harols34/convertia-hub-790d3cfd/internal/usuario"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCodigoUnico(t *testing.T) {
	tests := []struct {
		name            string
		numeroDocumento string
		nombreCompleto  string
		want            string
	}{
		{"basic", "12345", "Juan Perez", "12345_juan"},
		{"single name", "98765", "MARIA", "98765_maria"},
		{"extra whitespace", "55", "  Ana   Lucia Gomez ", "55_ana"},
		{"tab separated", "7", "Luis\tFernando", "7_luis"},
		{"empty name", "42", "", "42_"},
		{"document with spaces", " 12345 ", "Juan Perez", "12345_juan"},
		{"accented name kept as-is", "10", "Óscar Díaz", "10_óscar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, usuario.GenerateCodigoUnico(tt.numeroDocumento, tt.nombreCompleto))
		})
	}
}

func TestGenerateCodigoUnico_Deterministic(t *testing.T) {
	first := usuario.GenerateCodigoUnico("12345", "Juan Perez")
	second := usuario.GenerateCodigoUnico("12345", "Juan Perez")
	assert.Equal(t, first, second)
}
