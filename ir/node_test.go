package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sample() *Node {
	return FromKeyVals([]KeyVal{
		{Key: "name", Val: FromString("4.8.1")},
		{Key: "basis", Val: FromKeyVals([]KeyVal{
			{Key: "brew_event", Val: FromInt(123)},
		})},
		{Key: "tags", Val: FromSlice([]*Node{FromString("a"), FromString("b")})},
		{Key: "nothing", Val: Null()},
	})
}

func TestNilIsAbsent(t *testing.T) {
	var n *Node
	if !n.IsAbsent() {
		t.Fatal("nil should be absent")
	}
	if got := n.Get("x"); !got.IsAbsent() {
		t.Errorf("Get on nil gave %s", got.Kind())
	}
	if got := n.Index(0); !got.IsAbsent() {
		t.Errorf("Index on nil gave %s", got.Kind())
	}
	if n.Len() != 0 || n.Has("x") || n.Keys() != nil {
		t.Error("nil should be empty")
	}
	if got := n.Clone(); !got.IsAbsent() {
		t.Errorf("Clone of nil gave %s", got.Kind())
	}
}

func TestGet(t *testing.T) {
	y := sample()
	if s, ok := y.Get("name").AsString(); !ok || s != "4.8.1" {
		t.Errorf("got %q %v", s, ok)
	}
	if !y.Get("missing").IsAbsent() {
		t.Error("missing field should be absent")
	}
	if y.Get("nothing").IsAbsent() {
		t.Error("null field should not be absent")
	}
	if !y.Get("nothing").IsNull() {
		t.Error("null field should be null")
	}
	if !y.Get("name").Get("x").IsAbsent() {
		t.Error("field of string should be absent")
	}
	if !y.Get("tags").Index(2).IsAbsent() {
		t.Error("out of range index should be absent")
	}
	if !y.Get("tags").Index(-1).IsAbsent() {
		t.Error("negative index should be absent")
	}
}

func TestSetKeepsOrder(t *testing.T) {
	y := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromInt(1)},
		{Key: "b", Val: FromInt(2)},
	})
	y.Set("a", FromInt(3))
	y.Set("c", FromInt(4))
	if diff := cmp.Diff([]string{"a", "b", "c"}, y.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if i, _ := y.Get("a").AsInt(); i != 3 {
		t.Errorf("a = %d", i)
	}
}

func TestCloneIsDeep(t *testing.T) {
	y := sample()
	c := y.Clone()
	if !Equal(y, c) {
		t.Fatal("clone differs")
	}
	c.Get("basis").Set("brew_event", FromInt(5))
	c.Get("tags").Append(FromString("c"))
	if i, _ := y.Lookup("basis.brew_event").AsInt(); i != 123 {
		t.Errorf("original mutated: %d", i)
	}
	if y.Get("tags").Len() != 2 {
		t.Errorf("original tags mutated: %d", y.Get("tags").Len())
	}
}

func TestAsInt(t *testing.T) {
	if i, ok := FromFloat(3.0).AsInt(); !ok || i != 3 {
		t.Errorf("got %d %v", i, ok)
	}
	if _, ok := FromFloat(3.5).AsInt(); ok {
		t.Error("3.5 is not an int")
	}
	if _, ok := FromString("3").AsInt(); ok {
		t.Error("string is not an int")
	}
}
