// Package header models the fixed 12-line `##` directive block that opens a
// base language file and carries locale metadata.
package header

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LineCount is the number of directive lines in a canonical header. Header
// replacement always drops exactly this many lines from the front of a
// document whose first line starts with `##`.
const LineCount = 12

// Profile describes one locale's canonical header. Field order matches the
// directive order in the rendered block.
type Profile struct {
	Name        string   `yaml:"name"`
	OwnName     string   `yaml:"ownname"`
	ISOCode     string   `yaml:"isocode"`
	Plural      int      `yaml:"plural"`
	TextDir     string   `yaml:"textdir"`
	DigitSep    string   `yaml:"digitsep"`
	DigitSepCur string   `yaml:"digitsepcur"`
	DecimalSep  string   `yaml:"decimalsep"`
	WinLangID   string   `yaml:"winlangid"`
	GRFLangID   string   `yaml:"grflangid"`
	Genders     []string `yaml:"gender"`
	Cases       []string `yaml:"case"`
}

// KoKore is the Korean mixed-script profile used by the reference pipeline.
var KoKore = Profile{
	Name:        "Korean (Mixed Script)",
	OwnName:     "韓國語",
	ISOCode:     "ko_Kore",
	Plural:      11,
	TextDir:     "ltr",
	DigitSep:    ",",
	DigitSepCur: ",",
	DecimalSep:  ".",
	WinLangID:   "0x0c12",
	GRFLangID:   "0x3b",
	Genders:     []string{"m", "f"},
	Cases:       []string{"case1"},
}

// Lines renders the profile as its canonical directive block, one `##` line
// per field, in directive order.
func (p *Profile) Lines() []string {
	return []string{
		"##name " + p.Name,
		"##ownname " + p.OwnName,
		"##isocode " + p.ISOCode,
		fmt.Sprintf("##plural %d", p.Plural),
		"##textdir " + p.TextDir,
		"##digitsep " + p.DigitSep,
		"##digitsepcur " + p.DigitSepCur,
		"##decimalsep " + p.DecimalSep,
		"##winlangid " + p.WinLangID,
		"##grflangid " + p.GRFLangID,
		"##gender " + strings.Join(p.Genders, " "),
		"##case " + strings.Join(p.Cases, " "),
	}
}

// LoadProfile reads a profile definition from a YAML file, so new locales can
// ship as data instead of code.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read header profile: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse header profile: %w", err)
	}
	return &p, nil
}
