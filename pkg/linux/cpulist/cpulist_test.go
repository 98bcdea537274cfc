package cpulist

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	b := bytes.NewBufferString(`0-4,7-13,8,9,10`)
	cpus, err := Parse(b)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4, 7, 8, 9, 10, 11, 12, 13, 8, 9, 10}, cpus)
}

func TestParseSingle(t *testing.T) {
	cpus, err := Parse(bytes.NewBufferString("0\n"))
	require.NoError(t, err)
	require.Equal(t, []int{0}, cpus)
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse(bytes.NewBufferString("0-x"))
	require.Error(t, err)

	_, err = Parse(bytes.NewBufferString("cpu0"))
	require.Error(t, err)
}
