package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSteps(t *testing.T) {
	n, err := steps(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = steps([]string{"3"})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = steps([]string{"all"})
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = steps([]string{"-2"})
	assert.Error(t, err)
	_, err = steps([]string{"dos"})
	assert.Error(t, err)
}

func TestRun_SinComando(t *testing.T) {
	assert.Error(t, run(nil))
}
