package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("opcode $a9", From("opcode $%02x", 0xa9))
	assert.Equal("plain", From("plain"))
}
