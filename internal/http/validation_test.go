package http

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestValidateCreateBook(t *testing.T) {
	tests := []struct {
		name         string
		req          CreateBookRequest
		want         NewBook
		wantFields   []string
		wantMessages []string
	}{
		{
			name: "valid input is trimmed",
			req:  CreateBookRequest{Title: strPtr("  1984 "), Author: strPtr("George Orwell\n")},
			want: NewBook{Title: "1984", Author: "George Orwell"},
		},
		{
			name:         "missing title",
			req:          CreateBookRequest{Author: strPtr("Orwell")},
			wantFields:   []string{"title"},
			wantMessages: []string{"Title is required"},
		},
		{
			name:         "missing author",
			req:          CreateBookRequest{Title: strPtr("1984")},
			wantFields:   []string{"author"},
			wantMessages: []string{"Author is required"},
		},
		{
			name:       "both empty",
			req:        CreateBookRequest{Title: strPtr(""), Author: strPtr("  ")},
			wantFields: []string{"title", "author"},
		},
		{
			name:         "title too long",
			req:          CreateBookRequest{Title: strPtr(strings.Repeat("x", 256)), Author: strPtr("A")},
			wantFields:   []string{"title"},
			wantMessages: []string{"Title too long (max 255 characters)"},
		},
		{
			name: "length is counted in characters after trimming",
			req:  CreateBookRequest{Title: strPtr("  " + strings.Repeat("ß", 255) + "  "), Author: strPtr("A")},
			want: NewBook{Title: strings.Repeat("ß", 255), Author: "A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errs := ValidateCreateBook(tt.req)

			if len(tt.wantFields) == 0 {
				assert.Empty(t, errs)
				assert.Equal(t, tt.want, got)
				return
			}

			assert.Equal(t, NewBook{}, got)
			fields := make([]string, 0, len(errs))
			for _, e := range errs {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tt.wantFields, fields)

			for i, msg := range tt.wantMessages {
				assert.Equal(t, msg, errs[i].Message)
			}
		})
	}
}
