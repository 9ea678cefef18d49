// Package forms holds the editable, unsaved state behind the console's
// create and edit screens.
//
// Every form validates locally before anything is sent. Checks run in a
// fixed order and the first failure is returned as a *ValidationError, so a
// rejected submission never reaches the network. Struct-level rules use
// go-playground/validator; ordered cross-field rules are written by hand and
// report through the same type.
package forms
