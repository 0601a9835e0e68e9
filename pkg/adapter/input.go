package adapter

import "github.com/goliatone/go-formstate/pkg/form"

// ChangeTarget is the element a change event originates from.
type ChangeTarget struct {
	Name  string
	Value string
}

// ChangeEvent is an input change notification.
type ChangeEvent struct {
	Target ChangeTarget
}

// InputProps is the props shape for event-driven text inputs. Validity and
// the clear callback are dropped; Error is "" unless it should be shown.
type InputProps struct {
	Name     string            `yaml:"name"`
	Value    string            `yaml:"value"`
	Error    string            `yaml:"error,omitempty"`
	OnChange func(ChangeEvent) `yaml:"-"`
}

// InputEvents maps OnChangeText onto an event-style OnChange handler that
// reads the new value from the event target.
func InputEvents() Adapter[InputProps] {
	return Func[InputProps](func(p form.Presentation) InputProps {
		onChangeText := p.OnChangeText
		return InputProps{
			Name:  p.Key,
			Value: p.Value,
			Error: p.Error,
			OnChange: func(ev ChangeEvent) {
				if onChangeText != nil {
					onChangeText(ev.Target.Value)
				}
			},
		}
	})
}
