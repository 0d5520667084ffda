package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/questlog-api/internal/pkg/idgen"
)

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("quest")
	assert.Equal(t, "quest_1", gen.Generate())
	assert.Equal(t, "quest_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestUUIDGenerator(t *testing.T) {
	id := idgen.NewUUID("char").Generate()
	require.True(t, strings.HasPrefix(id, "char_"))

	_, err := uuid.Parse(strings.TrimPrefix(id, "char_"))
	assert.NoError(t, err)

	assert.NotEqual(t, idgen.NewUUID("").Generate(), idgen.NewUUID("").Generate())
}
