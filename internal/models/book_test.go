package models

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBook_Validate(t *testing.T) {
	valid := Book{
		Title:       "Database Design",
		Description: "Relational modelling basics",
		Price:       19.99,
		Image:       "https://example.com/db.png",
	}

	tests := []struct {
		name    string
		mutate  func(b *Book)
		wantErr string
	}{
		{
			name:   "valid book",
			mutate: func(b *Book) {},
		},
		{
			name:   "zero price is allowed",
			mutate: func(b *Book) { b.Price = 0 },
		},
		{
			name:    "empty title",
			mutate:  func(b *Book) { b.Title = "   " },
			wantErr: "title",
		},
		{
			name:    "empty description",
			mutate:  func(b *Book) { b.Description = "" },
			wantErr: "description",
		},
		{
			name:    "negative price",
			mutate:  func(b *Book) { b.Price = -1 },
			wantErr: "price",
		},
		{
			name:    "NaN price",
			mutate:  func(b *Book) { b.Price = math.NaN() },
			wantErr: "price",
		},
		{
			name:    "empty image",
			mutate:  func(b *Book) { b.Image = "" },
			wantErr: "image",
		},
		{
			name: "several fields missing",
			mutate: func(b *Book) {
				b.Title = ""
				b.Image = ""
			},
			wantErr: "title, image",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := valid
			tt.mutate(&b)

			err := b.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, IsKind(err, KindStorageWrite))
		})
	}
}

func TestBook_ValidateNil(t *testing.T) {
	var b *Book
	err := b.Validate()
	require.Error(t, err)
	assert.True(t, IsKind(err, KindStorageWrite))
}

func TestBook_SameContent(t *testing.T) {
	a := Book{ID: 1, Title: "T", Description: "d", Price: 10, Image: "i"}

	b := a
	b.ID = 42
	assert.True(t, a.SameContent(b), "ID must not affect content comparison")

	b = a
	b.Title = "other"
	assert.True(t, a.SameContent(b), "title must not affect content comparison")

	b = a
	b.Price = 12
	assert.False(t, a.SameContent(b))

	b = a
	b.Description = "changed"
	assert.False(t, a.SameContent(b))

	b = a
	b.Image = "changed"
	assert.False(t, a.SameContent(b))
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleUser.IsValid())
	assert.False(t, Role("guest").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestKindError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewKindError(KindStorageWrite, "failed to insert book", cause)

	assert.Equal(t, "StorageWriteError: failed to insert book: disk full", err.Error())
	assert.ErrorIs(t, err, cause)

	wrapped := errors.Join(errors.New("context"), err)
	kind, ok := KindOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindStorageWrite, kind)
	assert.True(t, IsKind(wrapped, KindStorageWrite))
	assert.False(t, IsKind(wrapped, KindRemoteWrite))

	_, ok = KindOf(cause)
	assert.False(t, ok)
	assert.False(t, IsKind(nil, KindStorageInit))
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "StorageInitError", KindStorageInit.String())
	assert.Equal(t, "StorageWriteError", KindStorageWrite.String())
	assert.Equal(t, "RemoteWriteError", KindRemoteWrite.String())
	assert.Equal(t, "ErrorKind(99)", ErrorKind(99).String())

	err := NewKindError(KindRemoteWrite, "delete rejected", nil)
	assert.Equal(t, "RemoteWriteError: delete rejected", err.Error())
}
