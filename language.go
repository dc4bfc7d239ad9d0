package sway

// Language is one entry of the language pill.
type Language struct {
	Code  string
	Label string
	Flag  string
}

// DefaultLanguages lists the locales the header offers.
func DefaultLanguages() []Language {
	return []Language{
		{Code: "ID", Label: "Indonesia", Flag: "🇮🇩"},
		{Code: "EN", Label: "English", Flag: "🇺🇸"},
	}
}

// LanguageState is the render snapshot of a LanguagePill.
type LanguageState struct {
	Open     bool
	Selected Language
}

// LanguagePill is a single click-toggled dropdown, independent of the menu's
// dropdown state. Picking a language closes it.
type LanguagePill struct {
	langs    []Language
	selected int
	open     bool

	// OnPick, when set, fires after a language is picked.
	OnPick func(Language)
}

// NewLanguagePill starts closed with the first language selected.
func NewLanguagePill(langs []Language) *LanguagePill {
	return &LanguagePill{langs: append([]Language(nil), langs...)}
}

// Toggle opens or closes the pill.
func (p *LanguagePill) Toggle() {
	p.open = !p.open
}

// Close closes the pill.
func (p *LanguagePill) Close() {
	p.open = false
}

// Open reports whether the list is showing.
func (p *LanguagePill) Open() bool {
	return p.open
}

// Pick selects the language with code and closes the pill. Unknown codes
// only close it.
func (p *LanguagePill) Pick(code string) {
	p.open = false
	for i, l := range p.langs {
		if l.Code == code {
			p.selected = i
			if p.OnPick != nil {
				p.OnPick(l)
			}
			return
		}
	}
}

// Languages returns the offered languages.
func (p *LanguagePill) Languages() []Language {
	return append([]Language(nil), p.langs...)
}

// Selected returns the current language. An empty pill returns the zero
// Language.
func (p *LanguagePill) Selected() Language {
	if len(p.langs) == 0 {
		return Language{}
	}
	return p.langs[p.selected]
}

// State returns a render snapshot.
func (p *LanguagePill) State() LanguageState {
	return LanguageState{Open: p.open, Selected: p.Selected()}
}
