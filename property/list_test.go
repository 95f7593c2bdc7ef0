package property_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/docpp"
	"github.com/npillmayer/docpp/property"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOrder(t *testing.T) {
	l := property.NewList(property.New("id", "main"))
	l.PushBack(property.New("class", "wide"))
	l.PushFront(property.New("lang", "en"))
	want := []property.Property{
		property.New("lang", "en"),
		property.New("id", "main"),
		property.New("class", "wide"),
	}
	if diff := cmp.Diff(want, l.Properties()); diff != "" {
		t.Errorf("unexpected property order (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, l.Find("id"))
	assert.Equal(t, docpp.NotFound, l.Find("style"))
	front, err := l.Front()
	require.NoError(t, err)
	assert.Equal(t, "lang", front.Key)
	back, err := l.Back()
	require.NoError(t, err)
	assert.Equal(t, "class", back.Key)
}

func TestListErrors(t *testing.T) {
	var l property.List
	_, err := l.Front()
	assert.True(t, errors.Is(err, docpp.ErrOutOfRange))
	assert.True(t, errors.Is(l.Erase(0), docpp.ErrOutOfRange))
	assert.True(t, errors.Is(l.Swap(0, 1), docpp.ErrOutOfRange))
	assert.True(t, errors.Is(l.Insert(3, property.New("a", "b")), docpp.ErrOutOfRange))
	err = l.EraseKey("x")
	assert.True(t, errors.Is(err, docpp.ErrNotFound))
}

func TestListMutation(t *testing.T) {
	l := property.Of("a", "1", "b", "2", "c", "3")
	require.NoError(t, l.Swap(0, 2))
	require.NoError(t, l.Erase(1))
	require.NoError(t, l.Insert(2, property.New("d", "4")))
	require.NoError(t, l.Insert(0, property.New("e", "5")))
	l.Set(property.New("d", "44"))
	assert.Equal(t, `[e="5" a="1" d="44"]`, l.String())
	v, ok := l.Get("d")
	assert.True(t, ok)
	assert.Equal(t, "44", v)
}

func TestMarkupSkipsEmpty(t *testing.T) {
	l := property.Of("src", "x.png", "alt", "", "", "orphan")
	assert.Equal(t, ` src="x.png"`, l.Markup())
	assert.Equal(t, 3, l.Size())
}

func TestCloneIsIndependent(t *testing.T) {
	l := property.Of("a", "1")
	c := l.Clone()
	c.PushBack(property.New("b", "2"))
	assert.Equal(t, 1, l.Size())
	assert.False(t, l.Equal(c))
	c2 := l.Clone()
	assert.True(t, l.Equal(c2))
}
