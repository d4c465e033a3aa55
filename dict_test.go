package yml_test

import (
	"reflect"
	"testing"

	yml "github.com/Divaltor/yandex-market-language"
)

func TestDictKeepsInsertionOrder(t *testing.T) {
	d := yml.NewDict()
	d.Set("b", 1)
	d.Set("a", 2)
	d.Set("c", nil)
	d.Set("b", 3) // overwrite keeps the original slot

	if got, want := d.Keys(), []string{"b", "a", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	v, ok := d.Get("b")
	if !ok || v != 3 {
		t.Fatalf("Get(b) = %v, %v", v, ok)
	}
}

func TestDictClean(t *testing.T) {
	d := yml.NewDict()
	d.Set("a", 1)
	d.Set("b", "")
	d.Set("c", nil)

	cleaned := d.Clean()
	if got, want := cleaned.Keys(), []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("cleaned keys = %v, want %v", got, want)
	}
	if d.Len() != 3 {
		t.Fatalf("Clean must not mutate the receiver, len = %d", d.Len())
	}
}

func TestDictMarshalJSONOrdered(t *testing.T) {
	d := yml.NewDict()
	d.Set("z", 1)
	d.Set("a", []string{"x"})
	d.Set("missing", nil)

	raw, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	want := `{"z":1,"a":["x"],"missing":null}`
	if string(raw) != want {
		t.Fatalf("json = %s, want %s", raw, want)
	}
}
