package filename

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Metadata(t *testing.T) {
	e := New()
	assert.Equal(t, "filename", e.Name())
	assert.Nil(t, e.SupportedExtensions())
	assert.Equal(t, 1, e.Priority())
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "underscores become spaces",
			path: "/uploads/machine_learning_notes.pdf",
			want: "machine learning notes",
		},
		{
			name: "hyphens become spaces",
			path: "web-development-guide.txt",
			want: "web development guide",
		},
		{
			name: "no separators",
			path: "syllabus.pdf",
			want: "syllabus",
		},
		{
			name: "no extension",
			path: "reading_list",
			want: "reading list",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New().Extract(context.Background(), tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
