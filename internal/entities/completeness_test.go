package entities

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assetforge/halfscale/internal/pkg/geometry"
	"github.com/assetforge/halfscale/internal/scaling"
)

// Compile-time completeness guards. These unkeyed literals list every field
// of every scalable record: adding a field to a record without revisiting its
// Halved implementation (and these guards) breaks the build here instead of
// silently dropping the field at runtime.
var (
	_ = Character{"", "", geometry.Point{}}
	_ = Room{"", "", []Character(nil)}
	_ = Item{"", "", geometry.Size{}}
	_ = Inventory{[]Item(nil)}
)

// TestHalvedCompleteness populates every field of every record with a
// non-zero value, halves it, and fails if any output field came back as its
// zero value. A field forgotten by a Halved implementation shows up here as
// a zero in the output.
func TestHalvedCompleteness(t *testing.T) {
	t.Run("Character", func(t *testing.T) { checkHalvedCompleteness[Character](t) })
	t.Run("Room", func(t *testing.T) { checkHalvedCompleteness[Room](t) })
	t.Run("Item", func(t *testing.T) { checkHalvedCompleteness[Item](t) })
	t.Run("Inventory", func(t *testing.T) { checkHalvedCompleteness[Inventory](t) })
}

func checkHalvedCompleteness[T scaling.Halver[T]](t *testing.T) {
	t.Helper()

	var src T
	populate(reflect.ValueOf(&src).Elem())

	out := src.Halved()

	requireNoZeroFields(t, reflect.ValueOf(out), reflect.TypeOf(out).Name())
}

// populate sets every field reachable from v to a non-zero sample value.
func populate(v reflect.Value) {
	switch v.Kind() {
	case reflect.String:
		v.SetString("sample")
	case reflect.Float64:
		v.SetFloat(64)
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			populate(v.Field(i))
		}
	case reflect.Slice:
		elem := reflect.New(v.Type().Elem()).Elem()
		populate(elem)
		v.Set(reflect.Append(reflect.MakeSlice(v.Type(), 0, 1), elem))
	default:
		panic(fmt.Sprintf("populate: unhandled kind %s", v.Kind()))
	}
}

// requireNoZeroFields walks the value and fails on any zero leaf.
func requireNoZeroFields(t *testing.T, v reflect.Value, path string) {
	t.Helper()

	switch v.Kind() {
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			requireNoZeroFields(t, v.Field(i), path+"."+v.Type().Field(i).Name)
		}
	case reflect.Slice:
		require.Positive(t, v.Len(), "%s: populated collection came back empty", path)
		for i := 0; i < v.Len(); i++ {
			requireNoZeroFields(t, v.Index(i), fmt.Sprintf("%s[%d]", path, i))
		}
	default:
		assert.False(t, v.IsZero(), "%s: field was not carried through Halved", path)
	}
}
