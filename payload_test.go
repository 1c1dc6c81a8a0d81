package boardgamegeek

import (
	"errors"
	"reflect"
	"testing"
)

func TestPayloadKeepsInsertionOrder(t *testing.T) {
	p := NewPayload().
		Set("id", 13).
		Set("name", "CATAN").
		Set("yearpublished", 1995)

	want := []string{"id", "name", "yearpublished"}
	if got := p.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if p.Len() != 3 {
		t.Errorf("Len() = %d, want 3", p.Len())
	}
}

func TestPayloadSetReplaceKeepsPosition(t *testing.T) {
	p := NewPayload().
		Set("id", 13).
		Set("name", "CATAN").
		Set("id", 14)

	want := []string{"id", "name"}
	if got := p.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if got := p.GetInt("id"); got != 14 {
		t.Errorf("GetInt(\"id\") = %d, want 14", got)
	}
}

func TestPayloadRequire(t *testing.T) {
	p := NewPayload().Set("id", 13)

	v, err := p.Require("id")
	if err != nil {
		t.Fatalf("Require(\"id\") error = %v", err)
	}
	if v != 13 {
		t.Errorf("Require(\"id\") = %v, want 13", v)
	}

	_, err = p.Require("name")
	if err == nil {
		t.Fatal("expected error for absent key, got nil")
	}
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	if valErr.Message != "missing 'name'" {
		t.Errorf("Message = %q, want %q", valErr.Message, "missing 'name'")
	}
}

func TestPayloadGetterDefaults(t *testing.T) {
	p := NewPayload()

	if got := p.GetString("absent"); got != "" {
		t.Errorf("GetString() = %q, want empty", got)
	}
	if got := p.GetInt("absent"); got != 0 {
		t.Errorf("GetInt() = %d, want 0", got)
	}
	if got := p.GetFloat("absent"); got != 0 {
		t.Errorf("GetFloat() = %g, want 0", got)
	}
	if p.GetBool("absent") {
		t.Error("GetBool() = true, want false")
	}
	if p.GetPayload("absent") != nil {
		t.Error("GetPayload() != nil, want nil")
	}
	if p.GetList("absent") != nil {
		t.Error("GetList() != nil, want nil")
	}
}

func TestPayloadCoercion(t *testing.T) {
	t.Run("int from string", func(t *testing.T) {
		p := NewPayload().Set("numplays", "42")
		if got := p.GetInt("numplays"); got != 42 {
			t.Errorf("GetInt() = %d, want 42", got)
		}
	})

	t.Run("int from unparseable string", func(t *testing.T) {
		p := NewPayload().Set("numplays", "often")
		if got := p.GetInt("numplays"); got != 0 {
			t.Errorf("GetInt() = %d, want 0", got)
		}
	})

	t.Run("float from string", func(t *testing.T) {
		p := NewPayload().Set("rating", "7.5")
		if got := p.GetFloat("rating"); got != 7.5 {
			t.Errorf("GetFloat() = %g, want 7.5", got)
		}
	})

	t.Run("string from int", func(t *testing.T) {
		p := NewPayload().Set("rating", 8)
		if got := p.GetString("rating"); got != "8" {
			t.Errorf("GetString() = %q, want %q", got, "8")
		}
	})

	t.Run("bool from numeric string", func(t *testing.T) {
		p := NewPayload().Set("own", "1").Set("want", "0")
		if !p.GetBool("own") {
			t.Error("GetBool(\"own\") = false, want true")
		}
		if p.GetBool("want") {
			t.Error("GetBool(\"want\") = true, want false")
		}
	})

	t.Run("bool from int", func(t *testing.T) {
		p := NewPayload().Set("own", 1).Set("want", 0)
		if !p.GetBool("own") {
			t.Error("GetBool(\"own\") = false, want true")
		}
		if p.GetBool("want") {
			t.Error("GetBool(\"want\") = true, want false")
		}
	})

	t.Run("bool from non numeric string", func(t *testing.T) {
		p := NewPayload().Set("own", "yes")
		if p.GetBool("own") {
			t.Error("GetBool(\"own\") = true, want false")
		}
	})
}

func TestPayloadNested(t *testing.T) {
	stats := NewPayload().Set("usersrated", 115000)
	p := NewPayload().Set("stats", stats)

	got := p.GetPayload("stats")
	if got == nil {
		t.Fatal("GetPayload(\"stats\") = nil")
	}
	if got.GetInt("usersrated") != 115000 {
		t.Errorf("usersrated = %d, want 115000", got.GetInt("usersrated"))
	}

	// a scalar under the key is not a payload
	if p := NewPayload().Set("stats", "none"); p.GetPayload("stats") != nil {
		t.Error("GetPayload() on scalar value != nil, want nil")
	}
}

func TestPayloadGetStringList(t *testing.T) {
	p := NewPayload().Set("mechanics", []any{"Dice Rolling", "Trading", NewPayload()})

	want := []string{"Dice Rolling", "Trading"}
	if got := p.GetStringList("mechanics"); !reflect.DeepEqual(got, want) {
		t.Errorf("GetStringList() = %v, want %v", got, want)
	}
}

func TestPayloadGetPayloadList(t *testing.T) {
	p := NewPayload().Set("versions", []any{
		NewPayload().Set("id", 254188),
		"not a payload",
		NewPayload().Set("id", 300001),
	})

	got := p.GetPayloadList("versions")
	if len(got) != 2 {
		t.Fatalf("len(GetPayloadList()) = %d, want 2", len(got))
	}
	if got[0].GetInt("id") != 254188 || got[1].GetInt("id") != 300001 {
		t.Errorf("ids = %d, %d, want 254188, 300001", got[0].GetInt("id"), got[1].GetInt("id"))
	}
}

func TestPayloadNilReceiver(t *testing.T) {
	var p *Payload

	if p.Len() != 0 {
		t.Errorf("Len() = %d, want 0", p.Len())
	}
	if p.Has("id") {
		t.Error("Has() = true, want false")
	}
	if _, ok := p.Get("id"); ok {
		t.Error("Get() ok = true, want false")
	}
	if p.GetString("id") != "" {
		t.Error("GetString() != empty on nil payload")
	}
	if _, err := p.Require("id"); err == nil {
		t.Error("Require() on nil payload succeeded, want error")
	}
}
