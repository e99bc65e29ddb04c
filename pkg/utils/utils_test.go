package utils

import (
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampToUint32(t *testing.T) {
	assert.Equal(t, uint32(0), ClampToUint32(-3))
	assert.Equal(t, uint32(0), ClampToUint32(0))
	assert.Equal(t, uint32(3), ClampToUint32(3))
	assert.Equal(t, uint32(math.MaxUint32), ClampToUint32(math.MaxInt))
}

func TestGenerateRocketID(t *testing.T) {
	id := GenerateRocketID(7)

	assert.Regexp(t, regexp.MustCompile(`^rocket-7-[0-9a-f]{8}$`), id)
	assert.NotEqual(t, id, GenerateRocketID(7))
}
