// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package control renders a single focusable input control (button, link,
// checkbox or text field) and normalizes keyboard and pointer interaction
// across the different kinds.
//
// A Control maps its Kind to an element tag, derives the tab order from an
// injected FocusState and wraps the caller's key-up, drag and mouse-out
// handlers:
//
//   - Enter on a button-like control clicks the originating element.
//   - Enter on a text-like control calls OnSubmit.
//   - Drag and mouse-out on a button-like control blur the originating element.
//
// Any handler may call Event.PreventDefault to suppress the built-in
// behavior. Drivers (see control/html and ui/tui) turn the rendered Element
// into something on screen and feed events back into it.
package control
