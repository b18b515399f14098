// Package widgets builds concrete controls out of view.View nodes: labels,
// buttons, sliders, the window caption bar and the tooltip presenter.
//
// Widgets are constructed, not subclassed. A constructor returns a view
// with its Kind set and its callback slots filled; composite widgets
// (Slider, Caption) are small structs that own their child views and are
// reachable from the view through View.Data.
//
//	quit := widgets.NewButton("&Quit", 0, func(*view.View) { chrome.Quit() })
//	volume := widgets.NewSlider("Volume: %d", 8, 0, 100, nil)
//	root := layout.NewVStack(caption.View, layout.NewHStack(volume.View, layout.NewSpacer(), quit))
package widgets
