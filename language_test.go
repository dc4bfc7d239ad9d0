package sway

import "testing"

func TestLanguagePill(t *testing.T) {
	p := NewLanguagePill(DefaultLanguages())
	if p.Open() || p.Selected().Code != "ID" {
		t.Fatalf("initial state = %+v", p.State())
	}

	var picked []string
	p.OnPick = func(l Language) { picked = append(picked, l.Code) }

	p.Toggle()
	if !p.Open() {
		t.Fatal("Toggle did not open")
	}
	p.Pick("EN")
	if p.Open() || p.Selected().Label != "English" {
		t.Errorf("after Pick(EN): %+v", p.State())
	}

	p.Toggle()
	p.Pick("FR")
	if p.Open() || p.Selected().Code != "EN" {
		t.Errorf("unknown code changed the selection: %+v", p.State())
	}
	if len(picked) != 1 || picked[0] != "EN" {
		t.Errorf("OnPick saw %v, want [EN]", picked)
	}
}

func TestLanguagePillEmpty(t *testing.T) {
	p := NewLanguagePill(nil)
	if p.Selected() != (Language{}) || len(p.Languages()) != 0 {
		t.Error("empty pill should select the zero Language")
	}
}
