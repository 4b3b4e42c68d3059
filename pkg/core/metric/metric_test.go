package metric

import (
	"encoding/json"
	"testing"
)

func TestDivGuardsZeroDenominator(t *testing.T) {
	if m := Div(10, 2); m.Or(-1) != 5 {
		t.Errorf("Expected 5, got %f", m.Or(-1))
	}
	if m := Div(10, 0); m.IsDefined() {
		t.Error("Expected undefined metric for zero denominator")
	}

	// A genuine zero stays distinguishable from the guard state.
	m := Div(0, 10)
	v, ok := m.Value()
	if !ok || v != 0 {
		t.Errorf("Expected defined zero, got %f (defined=%v)", v, ok)
	}
}

func TestPercent(t *testing.T) {
	if m := Percent(25, 100); m.Or(-1) != 25 {
		t.Errorf("Expected 25%%, got %f", m.Or(-1))
	}
	if m := Percent(25, 0); m.IsDefined() {
		t.Error("Expected undefined percent for zero denominator")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	type payload struct {
		Defined   Metric `json:"defined"`
		Undefined Metric `json:"undefined"`
	}

	data, err := json.Marshal(payload{Defined: Defined(12.5)})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"defined":12.5,"undefined":null}` {
		t.Errorf("Unexpected encoding: %s", data)
	}

	var back payload
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.Defined.Or(-1) != 12.5 {
		t.Errorf("Expected 12.5 after round trip, got %f", back.Defined.Or(-1))
	}
	if back.Undefined.IsDefined() {
		t.Error("Expected null to decode as undefined")
	}
}
