package tool

import "strconv"

// SettingsField is one editable row in a settings modal. Toggle fields flip
// on click; the others open a text prompt seeded with Value.
type SettingsField struct {
	Label  string
	Value  string
	Toggle bool
	Set    func(string)
}

// SettingsUI collects the fields a tool wants to expose. The container owns
// rendering; tools only declare rows, so DrawSettings stays headless and
// testable.
type SettingsUI struct {
	fields []SettingsField
}

func (u *SettingsUI) StringField(label, value string, set func(string)) {
	u.fields = append(u.fields, SettingsField{Label: label, Value: value, Set: set})
}

func (u *SettingsUI) IntField(label string, value int, set func(int)) {
	u.fields = append(u.fields, SettingsField{
		Label: label,
		Value: strconv.Itoa(value),
		Set: func(s string) {
			if n, err := strconv.Atoi(s); err == nil {
				set(n)
			}
		},
	})
}

func (u *SettingsUI) FloatField(label string, value float64, set func(float64)) {
	u.fields = append(u.fields, SettingsField{
		Label: label,
		Value: strconv.FormatFloat(value, 'g', -1, 64),
		Set: func(s string) {
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				set(f)
			}
		},
	})
}

func (u *SettingsUI) BoolField(label string, value bool, set func(bool)) {
	u.fields = append(u.fields, SettingsField{
		Label:  label,
		Value:  strconv.FormatBool(value),
		Toggle: true,
		Set: func(string) {
			set(!value)
		},
	})
}

func (u *SettingsUI) Fields() []SettingsField {
	return u.fields
}
