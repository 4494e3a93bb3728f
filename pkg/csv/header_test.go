package csv_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shapestone/shape-csvn/pkg/csv"
)

func TestHeader(t *testing.T) {
	buf := []byte("id,\"full name\",email,id\n1,Alice,a@example.com,9\n")
	fields, err := csv.Tokenize(buf)
	require.NoError(t, err)

	h := csv.NewHeader(buf, fields)
	require.Equal(t, 4, h.Len())
	require.Equal(t, []string{"id", "full name", "email", "id"}, h.Names())

	tests := []struct {
		name   string
		want   int
		wantOK bool
	}{
		{"id", 0, true},
		{"full name", 1, true},
		{"email", 2, true},
		{"Email", -1, false},
		{"Alice", -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, ok := h.Index(tt.name)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, col)

			col, ok = h.IndexBytes([]byte(tt.name))
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, col)
		})
	}

	// a value looked up through a row descriptor
	emailCol, ok := h.IndexBytes(fields[2].Bytes(buf))
	require.True(t, ok)
	require.Equal(t, 2, emailCol)
}

func TestHeader_Empty(t *testing.T) {
	h := csv.NewHeader(nil, nil)
	require.Equal(t, 0, h.Len())

	_, ok := h.Index("anything")
	require.False(t, ok)
}

func TestTokenizer_Header(t *testing.T) {
	tok, err := csv.New(csv.WithDelimiter(';'), csv.WithSkipLeadingSpace(true))
	require.NoError(t, err)

	buf := []byte("a; b; c\n1;2;3")
	fields, err := tok.Tokenize(buf)
	require.NoError(t, err)

	h := tok.Header(buf, fields)
	col, ok := h.Index("c")
	require.True(t, ok)
	require.Equal(t, 2, col)
}
