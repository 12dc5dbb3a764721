package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPtr(t *testing.T) {
	s := Ptr("payments")
	assert.Equal(t, "payments", *s)

	f := Ptr(0.85)
	*f = 0.9
	assert.Equal(t, 0.9, *f)
	assert.NotSame(t, Ptr(1), Ptr(1))
}
