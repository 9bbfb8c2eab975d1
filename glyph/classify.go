package glyph

import (
	"image/color"
	"sort"
	"strings"

	"fontbits/config"
)

// InkClassifier decides whether a pixel belongs to a glyph shape (ink) or
// to the empty space around it (background).
type InkClassifier func(c color.NRGBA) bool

// NotWhite treats pure white as background and every other color as ink.
// Alpha is ignored, so a transparent black pixel is ink.
func NotWhite(c color.NRGBA) bool {
	return int(c.R)+int(c.G)+int(c.B) != 3*255
}

// OpaqueNotWhite is NotWhite with fully transparent pixels as background.
func OpaqueNotWhite(c color.NRGBA) bool {
	return c.A != 0 && NotWhite(c)
}

// Alpha is meant for atlases drawn on a transparent background: a pixel is
// ink when it is at least half opaque, whatever its color.
func Alpha(c color.NRGBA) bool {
	return c.A >= 0x80
}

var classifiers = map[string]InkClassifier{
	"not-white":        NotWhite,
	"opaque-not-white": OpaqueNotWhite,
	"alpha":            Alpha,
}

// Classifiers lists the names accepted by ClassifierByName.
func Classifiers() []string {
	names := make([]string, 0, len(classifiers))
	for name := range classifiers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ClassifierByName(name string) (InkClassifier, error) {
	classify, ok := classifiers[name]
	if !ok {
		return nil, &config.Error{Field: "ink", Value: name, Reason: "unknown ink policy, expected one of " + strings.Join(Classifiers(), ", ")}
	}
	return classify, nil
}
