package ui

import "strings"

// ButtonType is the semantic type of a button.
type ButtonType string

const (
	ButtonDefault ButtonType = "default"
	ButtonPrimary ButtonType = "primary"
	ButtonDashed  ButtonType = "dashed"
	ButtonDanger  ButtonType = "danger"
	ButtonLink    ButtonType = "link"
)

// ButtonSize controls horizontal padding.
type ButtonSize string

const (
	ButtonSmall  ButtonSize = "small"
	ButtonMedium ButtonSize = "default"
	ButtonLarge  ButtonSize = "large"
)

// ButtonProps is the passthrough configuration of a button. Zero values mean
// "not set" and never override a default during Merge.
type ButtonProps struct {
	Type     ButtonType
	Size     ButtonSize
	Disabled bool
	Loading  bool
	Ghost    bool
	Icon     string
}

// Merge returns p with every field set in over applied on top.
func (p ButtonProps) Merge(over *ButtonProps) ButtonProps {
	if over == nil {
		return p
	}
	if over.Type != "" {
		p.Type = over.Type
	}
	if over.Size != "" {
		p.Size = over.Size
	}
	if over.Icon != "" {
		p.Icon = over.Icon
	}
	p.Disabled = p.Disabled || over.Disabled
	p.Loading = p.Loading || over.Loading
	p.Ghost = p.Ghost || over.Ghost
	return p
}

// Clickable reports whether a click on the button should fire.
func (p ButtonProps) Clickable() bool {
	return !p.Disabled && !p.Loading
}

func (p ButtonProps) padding() int {
	switch p.Size {
	case ButtonSmall:
		return 1
	case ButtonLarge:
		return 3
	}
	return 2
}

// Button is a labelled button primitive.
type Button struct {
	Label string
	Props ButtonProps
}

// Classes returns the style classes applied to the button, base class first.
func (b Button) Classes(focused bool) []string {
	classes := []string{ButtonPrefix}
	if b.Props.Type != "" && b.Props.Type != ButtonDefault {
		classes = append(classes, ButtonPrefix+"-"+string(b.Props.Type))
	}
	if b.Props.Ghost {
		classes = append(classes, ButtonPrefix+"-ghost")
	}
	if !b.Props.Clickable() {
		classes = append(classes, ButtonPrefix+"-disabled")
	} else if focused {
		classes = append(classes, ButtonPrefix+"-focused")
	}
	return classes
}

// Render draws the button. Later classes take precedence over earlier ones.
func (b Button) Render(sheet StyleSheet, focused bool) string {
	classes := b.Classes(focused)
	style := sheet.Get(classes[len(classes)-1])
	for i := len(classes) - 2; i >= 0; i-- {
		style = style.Inherit(sheet.Get(classes[i]))
	}

	label := b.Label
	switch {
	case b.Props.Loading:
		label = IconGlyph(IconLoading, IconOutlined) + " " + label
	case b.Props.Icon != "":
		label = b.Props.Icon + " " + label
	}
	pad := strings.Repeat(" ", b.Props.padding())
	return style.Render(pad + label + pad)
}
