package conv

import (
	"testing"

	"github.com/viant/schemaconv/schema"
)

type benchRecord struct {
	Id     int32
	Name   string
	Score  float64
	Active bool
}

func BenchmarkStruct_Positional(b *testing.B) {
	converter, err := New(
		schema.MustParse("struct<id:int,name:string,score:double,active:boolean>"),
		schema.MustParse("struct<id:bigint,name:varchar(8),score:decimal(10,2)>"),
	)
	if err != nil {
		b.Fatal(err)
	}
	src := []interface{}{int32(1), "Jane Doe Smith", 99.555, true}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := converter.Convert(src); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkStruct_GoStruct(b *testing.B) {
	converter, err := New(
		schema.MustParse("struct<id:int,name:string,score:double,active:boolean>"),
		schema.MustParse("struct<active:string,id:bigint,name:string>"),
		WithStructByName(true),
	)
	if err != nil {
		b.Fatal(err)
	}
	src := &benchRecord{Id: 1, Name: "Jane", Score: 99.5, Active: true}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := converter.Convert(src); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPrimitive_Text(b *testing.B) {
	converter, err := New(schema.Long, schema.String)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := converter.Convert(int64(i)); err != nil {
			b.Fatal(err)
		}
	}
}
