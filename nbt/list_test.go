package nbt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestList_Accessors(t *testing.T) {
	l := makeList(TypeString, String("a"), String("b"), String("c"))

	require.Equal(t, TypeList, l.Type())
	require.Equal(t, TypeString, l.Subtype())
	require.Equal(t, 3, l.Len())
	require.Equal(t, String("b"), l.At(1))
}

func TestList_At_OutOfRange(t *testing.T) {
	l := makeList(TypeByte, Byte(1))

	require.Panics(t, func() { l.At(1) })
	require.Panics(t, func() { l.At(-1) })
}

func TestList_All(t *testing.T) {
	l := makeList(TypeInt, Int(10), Int(20), Int(30))

	var got []Tag
	for i, item := range l.All() {
		require.Equal(t, len(got), i)
		got = append(got, item)
	}
	require.Equal(t, []Tag{Int(10), Int(20), Int(30)}, got)

	// Early break stops the iteration.
	seen := 0
	for range l.All() {
		seen++
		break
	}
	require.Equal(t, 1, seen)
}
