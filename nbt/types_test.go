package nbt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTagType_String(t *testing.T) {
	tests := []struct {
		tagType TagType
		want    string
	}{
		{TypeEnd, "End"},
		{TypeByte, "Byte"},
		{TypeShort, "Short"},
		{TypeInt, "Int"},
		{TypeLong, "Long"},
		{TypeFloat, "Float"},
		{TypeDouble, "Double"},
		{TypeByteArray, "ByteArray"},
		{TypeString, "String"},
		{TypeList, "List"},
		{TypeCompound, "Compound"},
		{TypeIntArray, "IntArray"},
		{TypeLongArray, "LongArray"},
		{TagType(13), "Unknown"},
		{TagType(255), "Unknown"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, tt.tagType.String())
	}
}

func TestTagType_Valid(t *testing.T) {
	for c := TypeEnd; c <= TypeLongArray; c++ {
		require.True(t, c.valid())
	}

	require.False(t, TagType(13).valid())
	require.False(t, TagType(255).valid())
}

func TestTag_Type(t *testing.T) {
	tests := []struct {
		tag  Tag
		want TagType
	}{
		{End{}, TypeEnd},
		{Byte(0), TypeByte},
		{Short(0), TypeShort},
		{Int(0), TypeInt},
		{Long(0), TypeLong},
		{Float(0), TypeFloat},
		{Double(0), TypeDouble},
		{ByteArray{}, TypeByteArray},
		{String(""), TypeString},
		{makeList(TypeEnd), TypeList},
		{makeCompound(), TypeCompound},
		{IntArray{}, TypeIntArray},
		{LongArray{}, TypeLongArray},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, tt.tag.Type())
	}
}
