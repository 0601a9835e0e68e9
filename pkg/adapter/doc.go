// Package adapter reshapes form.Presentation values into the props a UI
// binding expects.
//
// Adapters are pure: no side effects, no hidden state. PassThrough suits
// bindings whose controls already speak (value, onChangeText, onCleared,
// error); InputEvents suits bindings that deliver change events carrying the
// new value. Registry keeps adapters addressable by name so a binding can be
// chosen at runtime.
package adapter
