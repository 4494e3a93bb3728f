package csv_test

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"testing"

	shapecsv "github.com/shapestone/shape-csvn/pkg/csv"
)

// benchData builds rows of mixed plain and quoted fields.
func benchData(rows int) []byte {
	var buf bytes.Buffer
	buf.WriteString("id,name,email,note\n")
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&buf, "%d,user%d,user%d@example.com,\"says \"\"hi\"\", twice\"\n", i, i, i)
	}
	return buf.Bytes()
}

func BenchmarkTokenizer_Parse(b *testing.B) {
	for _, rows := range []int{10, 1000, 100000} {
		data := benchData(rows)
		n, err := shapecsv.Count(data)
		if err != nil {
			b.Fatal(err)
		}
		fields := make([]shapecsv.Field, n)

		b.Run(fmt.Sprintf("rows=%d", rows), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c := shapecsv.NewCursor()
				if _, err := shapecsv.Parse(data, &c, fields); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkRecords is the apples-to-apples comparison with encoding/csv.
func BenchmarkRecords(b *testing.B) {
	for _, rows := range []int{10, 1000, 100000} {
		data := benchData(rows)

		b.Run(fmt.Sprintf("shape/rows=%d", rows), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				fields, err := shapecsv.Tokenize(data)
				if err != nil {
					b.Fatal(err)
				}
				_ = shapecsv.Records(data, fields)
			}
		})

		b.Run(fmt.Sprintf("encoding/rows=%d", rows), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
				if err != nil {
					b.Fatal(err)
				}
				_ = records
			}
		})
	}
}
