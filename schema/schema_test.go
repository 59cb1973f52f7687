package schema

import "testing"

func TestDescribe_NonEmpty(t *testing.T) {
	d := Describe()
	if len(d.Terminals) == 0 {
		t.Error("Describe().Terminals is empty")
	}
	if len(d.NonTerminals) == 0 {
		t.Error("Describe().NonTerminals is empty")
	}
	if len(d.EnumViews) == 0 {
		t.Error("Describe().EnumViews is empty")
	}
	if len(d.ManualAccessors) == 0 {
		t.Error("Describe().ManualAccessors is empty")
	}
}

func TestDescribe_NoDuplicateNonTerminals(t *testing.T) {
	d := Describe()
	seen := make(map[string]bool)
	for _, nt := range d.NonTerminals {
		if seen[nt.Name] {
			t.Errorf("non-terminal %q described more than once", nt.Name)
		}
		seen[nt.Name] = true
	}
}

func TestDescribe_EnumViewMembersAreDescribed(t *testing.T) {
	d := Describe()
	names := make(map[string]bool)
	for _, nt := range d.NonTerminals {
		names[nt.Name] = true
	}
	for _, ev := range d.EnumViews {
		for _, m := range ev.Members {
			if !names[m] {
				t.Errorf("enum view %q references member %q, which has no NonTerminal entry", ev.Name, m)
			}
		}
	}
}

func TestDescribe_ManualAccessorsReferenceRealNodeKinds(t *testing.T) {
	d := Describe()
	names := make(map[string]bool)
	for _, nt := range d.NonTerminals {
		names[nt.Name] = true
	}
	for _, m := range d.ManualAccessors {
		if !names[m.NodeKind] {
			t.Errorf("manual accessor %v.%v references node kind %q, which has no NonTerminal entry", m.NodeKind, m.Accessor, m.NodeKind)
		}
	}
}

func TestFieldShape_String(t *testing.T) {
	tests := []struct {
		shape FieldShape
		want  string
	}{
		{FieldSingle, "single"},
		{FieldOptional, "optional"},
		{FieldRepeated, "repeated"},
	}
	for _, tt := range tests {
		if got := tt.shape.String(); got != tt.want {
			t.Errorf("FieldShape(%v).String() = %q, want %q", int(tt.shape), got, tt.want)
		}
	}
}
