package alert

import (
	"encoding/json"
	"testing"
)

func TestAlert_String(t *testing.T) {
	a := New(Error, Geometry, "Core diameter must not be 0", "Grain 1")
	want := "ERROR (geometry) Grain 1: Core diameter must not be 0"
	if a.String() != want {
		t.Errorf("String() = %q, want %q", a.String(), want)
	}
}

func TestAlert_JSON(t *testing.T) {
	a := New(Warning, Constraint, "Max pressure exceeded configured limit", "Motor")

	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"level":"WARNING","type":"constraint","description":"Max pressure exceeded configured limit","location":"Motor"}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}

	var back Alert
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != a {
		t.Errorf("got %+v, want %+v", back, a)
	}
}

func TestFilter(t *testing.T) {
	alerts := []Alert{
		New(Error, Constraint, "a", "Motor"),
		New(Warning, Constraint, "b", "N/A"),
		New(Error, Geometry, "c", "Nozzle"),
	}

	errs := Filter(alerts, Error)
	if len(errs) != 2 || errs[0].Description != "a" || errs[1].Description != "c" {
		t.Errorf("Filter(Error) = %v", errs)
	}
	if got := Filter(alerts, Warning); len(got) != 1 {
		t.Errorf("Filter(Warning) = %v", got)
	}
	if got := Filter(nil, Warning); len(got) != 0 {
		t.Errorf("Filter(nil) = %v", got)
	}
}

func TestRelocate(t *testing.T) {
	in := []Alert{New(Error, Geometry, "x", "")}
	out := Relocate(in, "Grain 2")
	if out[0].Location != "Grain 2" {
		t.Errorf("location = %q", out[0].Location)
	}
	if in[0].Location != "" {
		t.Error("Relocate modified its input")
	}
}
