package sl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErr(t *testing.T) {
	assert.Equal(t, "boom", Err(errors.New("boom")).Value.String())
	assert.Equal(t, "", Err(nil).Value.String())
}

func TestSecret(t *testing.T) {
	assert.Equal(t, "sk-1***", Secret("key", "sk-12345").Value.String())
	assert.Equal(t, "***", Secret("key", "abc").Value.String())
	assert.Equal(t, "", Secret("key", "").Value.String())
}
