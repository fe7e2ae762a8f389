package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "11988887777", NormalizePhone("(11) 98888-7777"))
	assert.Equal(t, "11988887777", NormalizePhone("11988887777"))
	assert.Equal(t, "5511988887777", NormalizePhone("+55 11 98888-7777"))
	assert.Equal(t, "", NormalizePhone("sem numero"))
}

func TestIsPhoneValid(t *testing.T) {
	assert.True(t, IsPhoneValid("(11) 98888-7777"))
	assert.True(t, IsPhoneValid("1133334444"))          // fixo, 10 dígitos
	assert.True(t, IsPhoneValid("+55 11 98888-7777"))   // com país, 13 dígitos
	assert.False(t, IsPhoneValid("98888"))              // curto demais
	assert.False(t, IsPhoneValid("55511988887777999"))  // longo demais
	assert.False(t, IsPhoneValid(""))
}
