// Package font contains helpers to parse fonts into [fontprov.Provider]
// values and obtain information from them (name, family, missing runes,
// etc.), alongside a [Library] type to manage fonts by name.
//
// The font engine is selected once, at load time, through a [Backend].
// From that point on, fonts are used only through the provider
// interface, so code drawing text never knows which engine is behind.
//
// Using a [Library] is actually rather uncommon, as most programs
// don't use more than a couple fonts and will generally be better off
// avoiding the abstraction.
package font
